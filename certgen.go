// Package certgen exposes the certificate engine from the module root for
// callers that want a single import.
package certgen

import (
	"context"
	"fmt"

	tableloader "github.com/goliatone/go-certgen/internal/table/loader"
	"github.com/goliatone/go-certgen/pkg/document"
	"github.com/goliatone/go-certgen/pkg/orchestrator"
	"github.com/goliatone/go-certgen/pkg/report"
	"github.com/goliatone/go-certgen/pkg/table"
)

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// Summary aliases report.Summary.
type Summary = report.Summary

// Option aliases orchestrator.Option.
type Option = orchestrator.Option

// NewEngine exposes the engine constructor from the top-level module.
func NewEngine(options ...Option) *orchestrator.Engine {
	return orchestrator.New(options...)
}

// NewLoader constructs a table loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...table.LoaderOption) table.Loader {
	return tableloader.New(table.NewLoaderOptions(options...))
}

// Discover lists the table files below dir matching patterns (all CSV and
// spreadsheet files when none are given).
func Discover(ctx context.Context, dir string, patterns ...string) ([]table.Origin, error) {
	return tableloader.Discover(ctx, dir, patterns...)
}

// Generate reads the template archive and every table below tablesDir, then
// writes one certificate per complete student record into outputDir.
func Generate(ctx context.Context, templatePath, tablesDir, outputDir, date string, options ...Option) (Summary, error) {
	shell, err := document.OpenShell(templatePath, document.DefaultContentPath)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", orchestrator.ErrNoTemplate, err)
	}
	origins, err := Discover(ctx, tablesDir)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", orchestrator.ErrNoSources, err)
	}
	return orchestrator.New(options...).Run(ctx, Request{
		Shell:     shell,
		Origins:   origins,
		Date:      date,
		OutputDir: outputDir,
	})
}
