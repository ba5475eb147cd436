package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	tableloader "github.com/goliatone/go-certgen/internal/table/loader"
	"github.com/goliatone/go-certgen/pkg/derive"
	"github.com/goliatone/go-certgen/pkg/document"
	"github.com/goliatone/go-certgen/pkg/packager"
	"github.com/goliatone/go-certgen/pkg/record"
	"github.com/goliatone/go-certgen/pkg/report"
	"github.com/goliatone/go-certgen/pkg/table"
)

// DefaultIdentifier is the column correlating rows across sources.
const DefaultIdentifier = string(record.FieldStudentID)

var (
	// ErrNoTemplate aborts a run that has no template shell.
	ErrNoTemplate = errors.New("orchestrator: template is required")
	// ErrNoSources aborts a run without a single readable source.
	ErrNoSources = errors.New("orchestrator: no sources")
	// ErrNoWriter is returned when neither a writer nor an output directory
	// is configured.
	ErrNoWriter = errors.New("orchestrator: archive writer or output directory is required")
)

// Option customises the engine.
type Option func(*Engine)

// WithLoader injects the loader used for Request.Origins.
func WithLoader(loader table.Loader) Option {
	return func(e *Engine) {
		e.loader = loader
	}
}

// WithSink routes diagnostics to sink.
func WithSink(sink report.Sink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithWriter injects the archive writer. It takes precedence over
// Request.OutputDir.
func WithWriter(writer packager.ArchiveWriter) Option {
	return func(e *Engine) {
		e.writer = writer
	}
}

// WithIdentifier overrides the identifier column.
func WithIdentifier(column string) Option {
	return func(e *Engine) {
		if column != "" {
			e.identifier = column
		}
	}
}

// WithPhrases overrides the certificate wording.
func WithPhrases(p derive.Phrases) Option {
	return func(e *Engine) {
		e.phrases = p
	}
}

// WithSeeds appends defaults applied after the built-in seeds.
func WithSeeds(seeds ...record.Seed) Option {
	return func(e *Engine) {
		e.seeds = append(e.seeds, seeds...)
	}
}

// WithEscaper sets how values are encoded before they enter the document.
func WithEscaper(escaper document.Escaper) Option {
	return func(e *Engine) {
		e.escaper = escaper
	}
}

// WithPackagerOptions forwards options to the artifact packager.
func WithPackagerOptions(options ...packager.Option) Option {
	return func(e *Engine) {
		e.packagerOptions = append(e.packagerOptions, options...)
	}
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id string) Option {
	return func(e *Engine) {
		e.runID = id
	}
}

// Engine produces one certificate per complete, valid student record.
type Engine struct {
	loader          table.Loader
	sink            report.Sink
	writer          packager.ArchiveWriter
	identifier      string
	phrases         derive.Phrases
	seeds           []record.Seed
	escaper         document.Escaper
	packagerOptions []packager.Option
	runID           string
}

// New constructs an Engine. Missing collaborators fall back to the built-in
// implementations.
func New(options ...Option) *Engine {
	e := &Engine{
		identifier: DefaultIdentifier,
		phrases:    derive.DefaultPhrases(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.loader == nil {
		e.loader = tableloader.New(table.NewLoaderOptions())
	}
	if e.sink == nil {
		e.sink = report.Discard
	}
	if e.escaper == nil {
		e.escaper = document.MarkupEscaper{}
	}
	return e
}

// Request describes one run.
type Request struct {
	// Shell is the template archive. Required.
	Shell *document.Shell

	// Tables are already parsed sources, scanned before Origins.
	Tables []*table.Table

	// Origins are loaded through the engine's loader. Unreadable origins are
	// reported and skipped.
	Origins []table.Origin

	// Date is the certificate date (DD.MM.YYYY). Its last four characters
	// give the issuing year.
	Date string

	// OutputDir receives the archives when no writer was injected.
	OutputDir string
}

// Run processes every entity key found in the sources. Entity failures are
// reported and tallied; only a missing template, missing sources, an invalid
// date or context cancellation end the run early.
func (e *Engine) Run(ctx context.Context, req Request) (report.Summary, error) {
	if ctx == nil {
		return report.Summary{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return report.Summary{}, err
	}
	if req.Shell == nil {
		return report.Summary{}, ErrNoTemplate
	}

	runID := e.runID
	if runID == "" {
		runID = uuid.NewString()
	}
	summary := report.Summary{RunID: runID}
	emit := func(ev report.Event) {
		ev.RunID = runID
		e.sink.Report(ev)
	}
	emit(report.Event{Severity: report.SeverityInfo, Kind: report.KindRunStarted, Value: req.Date})

	year, err := derive.YearFromDate(req.Date)
	if err != nil {
		return summary, fmt.Errorf("orchestrator: certificate date: %w", err)
	}

	tables, err := e.collectTables(ctx, req, emit)
	if err != nil {
		return summary, err
	}

	tpl, err := req.Shell.Template(document.WithEscaper(e.escaper))
	if err != nil {
		return summary, fmt.Errorf("orchestrator: parse template: %w", err)
	}

	writer := e.writer
	if writer == nil {
		if req.OutputDir == "" {
			return summary, ErrNoWriter
		}
		writer = packager.NewDirWriter(req.OutputDir)
	}
	pack, err := packager.New(req.Shell, writer, e.packagerOptions...)
	if err != nil {
		return summary, fmt.Errorf("orchestrator: packager: %w", err)
	}

	required := tpl.RequiredFields()
	for _, name := range pack.RequiredFields() {
		if name == record.FieldStudentID && e.identifier != DefaultIdentifier {
			continue
		}
		required.Add(name)
	}

	index := table.NewIndex(e.identifier, tables...)
	p := &pipeline{
		resolver: record.NewResolver(index, required, record.WithSeeds(e.defaultSeeds(req.Date, year)...)),
		deriver:  derive.New(year, derive.WithPhrases(e.phrases)),
		template: tpl,
		packager: pack,
		emit:     emit,
	}

	keys := index.Keys()
	summary.Entities = len(keys)
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		artifact, skip := p.process(ctx, key)
		if skip != nil {
			summary.Skipped = append(summary.Skipped, *skip)
			continue
		}
		summary.Processed++
		summary.Artifacts = append(summary.Artifacts, artifact.Name)
	}

	emit(report.Event{Severity: report.SeverityInfo, Kind: report.KindRunFinished, Reason: summary.String()})
	return summary, nil
}

func (e *Engine) collectTables(ctx context.Context, req Request, emit func(report.Event)) ([]*table.Table, error) {
	tables := make([]*table.Table, 0, len(req.Tables)+len(req.Origins))
	for _, t := range req.Tables {
		if t != nil {
			tables = append(tables, t)
		}
	}
	for _, origin := range req.Origins {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := e.loader.Load(ctx, origin)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			emit(report.Event{
				Severity: report.SeverityWarn,
				Kind:     report.KindSourceSkipped,
				Origin:   origin.Location(),
				Reason:   err.Error(),
			})
			continue
		}
		emit(report.Event{
			Severity: report.SeverityDebug,
			Kind:     report.KindSourceLoaded,
			Origin:   origin.Location(),
			Value:    fmt.Sprintf("%d rows", t.Rows()),
		})
		tables = append(tables, t)
	}
	if len(tables) == 0 {
		return nil, ErrNoSources
	}
	return tables, nil
}

// defaultSeeds are applied to every record before the scan.
func (e *Engine) defaultSeeds(date string, year int) []record.Seed {
	seeds := []record.Seed{
		{Field: record.FieldDate, Value: date},
		{Field: record.FieldYear, Value: strconv.Itoa(year)},
		{Field: record.FieldReligionLabel, Value: e.phrases.FillSubject},
		{Field: record.FieldElective1Name, Value: e.phrases.FillSubject},
		{Field: record.FieldElective2Name, Value: e.phrases.FillSubject},
		{Field: record.FieldReligion, Value: ""},
		{Field: record.FieldElective1Note, Value: ""},
		{Field: record.FieldElective2Note, Value: ""},
	}
	return append(seeds, e.seeds...)
}
