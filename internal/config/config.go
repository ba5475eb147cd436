// Package config holds the certgen run configuration. Values resolve in the
// order defaults, certgen.yaml, command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	tableloader "github.com/goliatone/go-certgen/internal/table/loader"
	"github.com/goliatone/go-certgen/pkg/derive"
	"github.com/goliatone/go-certgen/pkg/document"
	"github.com/goliatone/go-certgen/pkg/orchestrator"
	"github.com/goliatone/go-certgen/pkg/packager"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "certgen.yaml"

// Config describes one certgen run.
type Config struct {
	Tables           string            `yaml:"tables"`
	TablePatterns    []string          `yaml:"tablePatterns"`
	Template         string            `yaml:"template"`
	Output           string            `yaml:"output"`
	LogFile          string            `yaml:"logFile"`
	LogLevel         string            `yaml:"logLevel"`
	Date             string            `yaml:"date"`
	IdentifierColumn string            `yaml:"identifierColumn"`
	ContentPath      string            `yaml:"contentPath"`
	NameTemplate     string            `yaml:"nameTemplate"`
	NameFields       []string          `yaml:"nameFields"`
	NameGlobals      map[string]string `yaml:"nameGlobals"`
	EscapeValues     *bool             `yaml:"escapeValues"`
	StripMarkup      bool              `yaml:"stripMarkup"`
}

// Default returns the built-in configuration.
func Default() Config {
	escape := true
	nameFields := make([]string, len(packager.DefaultNameFields))
	for i, f := range packager.DefaultNameFields {
		nameFields[i] = string(f)
	}
	return Config{
		Tables:           "tables",
		TablePatterns:    append([]string(nil), tableloader.DefaultPatterns...),
		Template:         "template.docx",
		Output:           "zeugnisse",
		LogFile:          "log_file.log",
		LogLevel:         "info",
		IdentifierColumn: orchestrator.DefaultIdentifier,
		ContentPath:      document.DefaultContentPath,
		NameTemplate:     packager.DefaultNameTemplate,
		NameFields:       nameFields,
		EscapeValues:     &escape,
	}
}

// Load reads path over the defaults. A missing DefaultFile is not an error;
// any other missing path is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg.Merge(file), nil
}

// Merge returns c with every non-zero value of override applied.
func (c Config) Merge(override Config) Config {
	out := c
	setString(&out.Tables, override.Tables)
	setString(&out.Template, override.Template)
	setString(&out.Output, override.Output)
	setString(&out.LogFile, override.LogFile)
	setString(&out.LogLevel, override.LogLevel)
	setString(&out.Date, override.Date)
	setString(&out.IdentifierColumn, override.IdentifierColumn)
	setString(&out.ContentPath, override.ContentPath)
	setString(&out.NameTemplate, override.NameTemplate)
	if len(override.TablePatterns) > 0 {
		out.TablePatterns = append([]string(nil), override.TablePatterns...)
	}
	if len(override.NameFields) > 0 {
		out.NameFields = append([]string(nil), override.NameFields...)
	}
	if len(override.NameGlobals) > 0 {
		globals := make(map[string]string, len(out.NameGlobals)+len(override.NameGlobals))
		for k, v := range out.NameGlobals {
			globals[k] = v
		}
		for k, v := range override.NameGlobals {
			globals[k] = v
		}
		out.NameGlobals = globals
	}
	if override.EscapeValues != nil {
		escape := *override.EscapeValues
		out.EscapeValues = &escape
	}
	if override.StripMarkup {
		out.StripMarkup = true
	}
	return out
}

func setString(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

// Escape reports whether values are markup-escaped before substitution.
func (c Config) Escape() bool {
	return c.EscapeValues == nil || *c.EscapeValues
}

// Validate checks the paths and, when set, the date. An empty date is valid
// here because the CLI may still prompt for it.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Tables) == "" {
		problems = append(problems, "tables directory is required")
	}
	if strings.TrimSpace(c.Template) == "" {
		problems = append(problems, "template path is required")
	}
	if strings.TrimSpace(c.Output) == "" {
		problems = append(problems, "output directory is required")
	}
	if strings.TrimSpace(c.LogFile) == "" {
		problems = append(problems, "log file is required")
	}
	if strings.TrimSpace(c.NameTemplate) == "" {
		problems = append(problems, "name template is required")
	}
	if len(c.TablePatterns) == 0 {
		problems = append(problems, "at least one table pattern is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}
	if c.Date != "" {
		if _, err := derive.YearFromDate(c.Date); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}
