// Package main provides the certgen binary: it merges the student tables,
// derives the certificate fields and writes one document per student.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-certgen/internal/config"
	"github.com/goliatone/go-certgen/internal/prompt"
	tableloader "github.com/goliatone/go-certgen/internal/table/loader"
	"github.com/goliatone/go-certgen/pkg/document"
	"github.com/goliatone/go-certgen/pkg/orchestrator"
	"github.com/goliatone/go-certgen/pkg/packager"
	"github.com/goliatone/go-certgen/pkg/record"
	"github.com/goliatone/go-certgen/pkg/report"
)

const (
	Version = "0.1.0"
	appName = "certgen"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(prompt.NewSurveyDriver()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	flags      config.Config
	noPrompt   bool
	noEscape   bool
}

func newRootCmd(driver prompt.Driver) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Generate student certificates from spreadsheet tables",
		Long: `certgen reads every table below the tables directory, merges the rows
of each student, derives the certificate wording and writes one document per
student into the output directory.

Students with missing fields or invalid codes are skipped and listed in the
log file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), driver, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML, default certgen.yaml if present)")
	flags.StringVar(&opts.flags.Tables, "tables", "", "Directory holding the student tables")
	flags.StringSliceVar(&opts.flags.TablePatterns, "pattern", nil, "Glob patterns selecting table files (repeatable)")
	flags.StringVar(&opts.flags.Template, "template", "", "Template document (.docx)")
	flags.StringVarP(&opts.flags.Output, "output", "o", "", "Output directory for the certificates")
	flags.StringVar(&opts.flags.LogFile, "log-file", "", "Log file, truncated on every run")
	flags.StringVar(&opts.flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.flags.Date, "date", "", "Certificate date (DD.MM.YYYY)")
	flags.StringVar(&opts.flags.IdentifierColumn, "id-column", "", "Column identifying a student across tables")
	flags.BoolVar(&opts.noPrompt, "no-prompt", false, "Fail instead of prompting for missing input")
	flags.BoolVar(&opts.noEscape, "no-escape", false, "Insert values without markup escaping")
	flags.BoolVar(&opts.flags.StripMarkup, "strip-markup", false, "Remove HTML-like tags from values before escaping")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, driver prompt.Driver, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg = cfg.Merge(opts.flags)
	if opts.noEscape {
		off := false
		cfg.EscapeValues = &off
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	printBanner(stdout)

	logger, err := newLogger(cfg.LogFile, cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Date == "" {
		if opts.noPrompt || driver == nil {
			return errors.New("certificate date is required (use --date)")
		}
		date, err := prompt.Date(ctx, driver)
		if err != nil {
			return fmt.Errorf("read date: %w", err)
		}
		cfg.Date = date
	}

	shell, err := document.OpenShell(cfg.Template, cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("%w: %v", orchestrator.ErrNoTemplate, err)
	}

	origins, err := tableloader.Discover(ctx, cfg.Tables, cfg.TablePatterns...)
	if err != nil {
		return fmt.Errorf("%w: %v", orchestrator.ErrNoSources, err)
	}

	logger.Info("Datensätze werden gelesen und Zeugnisse geschrieben.",
		zap.String("tables", cfg.Tables),
		zap.Int("files", len(origins)),
		zap.String("template", cfg.Template),
		zap.String("output", cfg.Output),
	)

	engine := orchestrator.New(engineOptions(cfg, logger)...)
	summary, err := engine.Run(ctx, orchestrator.Request{
		Shell:     shell,
		Origins:   origins,
		Date:      cfg.Date,
		OutputDir: cfg.Output,
	})
	if err != nil {
		return err
	}

	logger.Info("Zeugnisse sind fertig", zap.String("run", summary.RunID), zap.String("summary", summary.String()))
	fmt.Fprintln(stdout, summary.String())
	for _, skip := range summary.Skipped {
		fmt.Fprintf(stdout, "  skipped %s: %s\n", skip.Key, skip.Reason)
	}
	return nil
}

func engineOptions(cfg config.Config, logger *zap.Logger) []orchestrator.Option {
	var escaper document.Escaper = document.MarkupEscaper{}
	switch {
	case !cfg.Escape():
		escaper = document.NoEscape{}
	case cfg.StripMarkup:
		escaper = document.StripMarkup{}
	}
	nameFields := make([]record.FieldName, len(cfg.NameFields))
	for i, f := range cfg.NameFields {
		nameFields[i] = record.FieldName(f)
	}
	return []orchestrator.Option{
		orchestrator.WithSink(report.NewZapSink(logger)),
		orchestrator.WithIdentifier(cfg.IdentifierColumn),
		orchestrator.WithEscaper(escaper),
		orchestrator.WithPackagerOptions(
			packager.WithNameTemplate(cfg.NameTemplate, nameFields...),
			packager.WithNameGlobals(cfg.NameGlobals),
		),
	}
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, "╔═══════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║             certgen v"+Version+"                    ║")
	fmt.Fprintln(w, "║        Zeugnisgenerator für Schulen           ║")
	fmt.Fprintln(w, "╚═══════════════════════════════════════════════╝")
}
