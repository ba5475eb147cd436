package document

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-certgen/pkg/record"
)

var placeholderPattern = regexp.MustCompile(`\{([\p{L}\p{N}_]+)\}`)

// ErrContractViolation is wrapped when a placeholder has no value at
// substitution time.
var ErrContractViolation = errors.New("document: placeholder without value")

// ErrEmptyTemplate is returned when the template carries no content.
var ErrEmptyTemplate = errors.New("document: template is empty")

// ContractViolationError lists the placeholders that had no value.
type ContractViolationError struct {
	Key    string
	Fields []record.FieldName
}

func (e *ContractViolationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("document: entity %q: no value for placeholders %s", e.Key, strings.Join(names, ", "))
}

func (e *ContractViolationError) Unwrap() error {
	return ErrContractViolation
}

// Values supplies field values for substitution.
type Values interface {
	Key() string
	Lookup(name record.FieldName) (string, bool)
}

// Template is a parsed placeholder-bearing document.
type Template struct {
	content      string
	placeholders record.FieldSet
	escaper      Escaper
}

// TemplateOption customises a Template.
type TemplateOption func(*Template)

// WithEscaper sets how values are encoded before insertion.
func WithEscaper(e Escaper) TemplateOption {
	return func(t *Template) {
		if e != nil {
			t.escaper = e
		}
	}
}

// Parse scans content for {name} placeholders.
func Parse(content string, options ...TemplateOption) (*Template, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyTemplate
	}
	t := &Template{content: content, escaper: NoEscape{}}
	for _, match := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		t.placeholders.Add(record.FieldName(match[1]))
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t, nil
}

// Content returns the raw template text.
func (t *Template) Content() string {
	return t.content
}

// Placeholders returns the distinct placeholder names in first-seen order.
func (t *Template) Placeholders() record.FieldSet {
	return record.NewFieldSet(t.placeholders.Names()...)
}

// RequiredFields returns the placeholders plus the fields every record needs.
func (t *Template) RequiredFields() record.FieldSet {
	set := t.Placeholders()
	for _, name := range record.AlwaysRequired {
		set.Add(name)
	}
	return set
}

// Instantiate substitutes every placeholder with its escaped value. It fails
// with a *ContractViolationError when any placeholder lacks a value, and does
// not re-scan substituted text.
func (t *Template) Instantiate(values Values) (string, error) {
	if values == nil {
		return "", errors.New("document: values are required")
	}

	var missing []record.FieldName
	for _, name := range t.placeholders.Names() {
		if _, ok := values.Lookup(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", &ContractViolationError{Key: values.Key(), Fields: missing}
	}

	escaped := make(map[record.FieldName]string, t.placeholders.Len())
	for _, name := range t.placeholders.Names() {
		value, _ := values.Lookup(name)
		escaped[name] = t.escaper.Escape(value)
	}

	return placeholderPattern.ReplaceAllStringFunc(t.content, func(token string) string {
		return escaped[record.FieldName(token[1:len(token)-1])]
	}), nil
}
