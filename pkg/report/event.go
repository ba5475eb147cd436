package report

import (
	"sync"
)

// Severity ranks an event.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Kind classifies what happened.
type Kind string

const (
	KindRunStarted        Kind = "run_started"
	KindRunFinished       Kind = "run_finished"
	KindSourceLoaded      Kind = "source_loaded"
	KindSourceSkipped     Kind = "source_skipped"
	KindFieldResolved     Kind = "field_resolved"
	KindFieldMissing      Kind = "field_missing"
	KindInvalidCode       Kind = "invalid_code"
	KindContractViolation Kind = "contract_violation"
	KindArtifactWritten   Kind = "artifact_written"
	KindArtifactFailed    Kind = "artifact_failed"
)

// Event is one structured diagnostic. Key, Field, Value and Origin are set
// when they apply.
type Event struct {
	RunID    string
	Severity Severity
	Kind     Kind
	Key      string
	Field    string
	Value    string
	Reason   string
	Origin   string
}

// Sink receives events. The engine never formats events itself.
type Sink interface {
	Report(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) Report(e Event) { f(e) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// MultiSink fans events out to several sinks in order.
type MultiSink []Sink

func (m MultiSink) Report(e Event) {
	for _, s := range m {
		if s != nil {
			s.Report(e)
		}
	}
}

// Collector keeps events in memory.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

// Report appends e.
func (c *Collector) Report(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

// Events returns a copy of the collected events.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Filter returns the collected events of the given kind.
func (c *Collector) Filter(kind Kind) []Event {
	var out []Event
	for _, e := range c.Events() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
