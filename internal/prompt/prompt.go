// Package prompt asks the operator for run inputs on the terminal.
package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-certgen/pkg/derive"
)

// ErrAborted signals the operator aborted input (e.g. Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// InputConfig configures a text input prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// Driver abstracts the terminal so callers can be tested without one.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

// DriverFunc adapts a function to Driver.
type DriverFunc func(ctx context.Context, cfg InputConfig) (string, error)

func (f DriverFunc) Input(ctx context.Context, cfg InputConfig) (string, error) {
	return f(ctx, cfg)
}

type surveyDriver struct{}

// NewSurveyDriver returns a Driver backed by survey.
func NewSurveyDriver() Driver {
	return surveyDriver{}
}

func (surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return cfg.Validator(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// Date asks for the certificate date until a value with a trailing year is
// entered.
func Date(ctx context.Context, driver Driver) (string, error) {
	validate := func(value string) error {
		_, err := derive.YearFromDate(value)
		return err
	}
	answer, err := driver.Input(ctx, InputConfig{
		Message:   "Bitte geben Sie das Datum für die Zeugnisse an:",
		Help:      "Format TT.MM.JJJJ, z. B. 24.06.2024",
		Validator: validate,
	})
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if err := validate(answer); err != nil {
		return "", err
	}
	return answer, nil
}
