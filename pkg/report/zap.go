package report

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink writes events as structured zap log entries.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink wraps logger. A nil logger discards events.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger}
}

func (s *ZapSink) Report(e Event) {
	fields := make([]zap.Field, 0, 7)
	fields = append(fields, zap.String("kind", string(e.Kind)))
	if e.RunID != "" {
		fields = append(fields, zap.String("run", e.RunID))
	}
	if e.Key != "" {
		fields = append(fields, zap.String("student", e.Key))
	}
	if e.Field != "" {
		fields = append(fields, zap.String("field", e.Field))
	}
	if e.Value != "" {
		fields = append(fields, zap.String("value", e.Value))
	}
	if e.Origin != "" {
		fields = append(fields, zap.String("origin", e.Origin))
	}

	msg := e.Reason
	if msg == "" {
		msg = string(e.Kind)
	}
	if ce := s.logger.Check(zapLevel(e.Severity), msg); ce != nil {
		ce.Write(fields...)
	}
}

func zapLevel(s Severity) zapcore.Level {
	switch s {
	case SeverityDebug:
		return zapcore.DebugLevel
	case SeverityWarn:
		return zapcore.WarnLevel
	case SeverityError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
