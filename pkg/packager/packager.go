package packager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-certgen/pkg/document"
	"github.com/goliatone/go-certgen/pkg/record"
	"github.com/goliatone/go-certgen/pkg/render/template"
	"github.com/goliatone/go-certgen/pkg/render/template/gotemplate"
)

// DefaultNameTemplate names artifacts after the student id, class and name.
const DefaultNameTemplate = "[{{ schueler_id|filename }}] [{{ klasse|filename }}] {{ vorname|filename }} {{ familienname|filename }}.docx"

// DefaultNameFields are the fields DefaultNameTemplate reads.
var DefaultNameFields = []record.FieldName{
	record.FieldStudentID,
	record.FieldClass,
	record.FieldFirstName,
	record.FieldLastName,
}

// ErrNameCollision is returned when two entities of one run map to the same
// artifact name.
var ErrNameCollision = errors.New("packager: artifact name collision")

// Values supplies the fields used for naming.
type Values interface {
	Key() string
	Values() map[record.FieldName]string
}

// Artifact describes one written bundle.
type Artifact struct {
	Key      string
	Name     string
	Location string
}

// Option customises a Packager.
type Option func(*Packager)

// WithNameTemplate overrides the artifact name pattern and the fields it
// needs.
func WithNameTemplate(pattern string, fields ...record.FieldName) Option {
	return func(p *Packager) {
		if strings.TrimSpace(pattern) == "" {
			return
		}
		p.nameTemplate = pattern
		p.nameFields = append([]record.FieldName(nil), fields...)
	}
}

// WithNameGlobals makes values such as the school name available to every
// name pattern. Record fields of the same name take precedence.
func WithNameGlobals(globals map[string]string) Option {
	return func(p *Packager) {
		for key, value := range globals {
			if p.globals == nil {
				p.globals = make(map[string]any, len(globals))
			}
			p.globals[key] = value
		}
	}
}

// WithRenderer injects the template renderer used for names.
func WithRenderer(r template.TemplateRenderer) Option {
	return func(p *Packager) {
		p.renderer = r
	}
}

// Packager bundles instantiated content with the template shell. Content is
// passed per call; the shell is never modified.
type Packager struct {
	shell        *document.Shell
	writer       ArchiveWriter
	renderer     template.TemplateRenderer
	nameTemplate string
	nameFields   []record.FieldName
	globals      map[string]any
	used         map[string]string
}

// New builds a Packager writing through writer.
func New(shell *document.Shell, writer ArchiveWriter, options ...Option) (*Packager, error) {
	if shell == nil {
		return nil, errors.New("packager: shell is required")
	}
	if writer == nil {
		return nil, errors.New("packager: archive writer is required")
	}
	p := &Packager{
		shell:        shell,
		writer:       writer,
		nameTemplate: DefaultNameTemplate,
		nameFields:   append([]record.FieldName(nil), DefaultNameFields...),
		used:         make(map[string]string),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithoutAutoescape(), gotemplate.WithGlobalData(p.globals))
		if err != nil {
			return nil, fmt.Errorf("packager: name renderer: %w", err)
		}
		p.renderer = engine
	} else if len(p.globals) > 0 {
		if err := p.renderer.GlobalContext(p.globals); err != nil {
			return nil, fmt.Errorf("packager: name globals: %w", err)
		}
	}
	return p, nil
}

// RequiredFields lists the fields naming needs, so the resolver can demand
// them.
func (p *Packager) RequiredFields() []record.FieldName {
	return append([]record.FieldName(nil), p.nameFields...)
}

// Name renders the artifact name for values.
func (p *Packager) Name(values Values) (string, error) {
	data := make(map[string]string)
	for k, v := range values.Values() {
		data[string(k)] = v
	}
	if _, ok := data[string(record.FieldStudentID)]; !ok {
		data[string(record.FieldStudentID)] = values.Key()
	}
	name, err := p.renderer.RenderString(p.nameTemplate, data)
	if err != nil {
		return "", fmt.Errorf("packager: render name: %w", err)
	}
	name = gotemplate.SafeFileName(name)
	if name == "" {
		return "", fmt.Errorf("packager: empty artifact name for %q", values.Key())
	}
	return name, nil
}

// Files returns the bundle for content: every static shell entry plus the
// content entry.
func (p *Packager) Files(content string) []document.Entry {
	files := p.shell.Entries()
	return append(files, document.Entry{Name: p.shell.ContentPath(), Data: []byte(content)})
}

// Package names, assembles and writes the artifact of one entity.
func (p *Packager) Package(ctx context.Context, values Values, content string) (Artifact, error) {
	name, err := p.Name(values)
	if err != nil {
		return Artifact{}, err
	}
	if owner, taken := p.used[name]; taken && owner != values.Key() {
		return Artifact{}, fmt.Errorf("%w: %q used by %q and %q", ErrNameCollision, name, owner, values.Key())
	}

	location, err := p.writer.WriteArchive(ctx, name, p.Files(content))
	if err != nil {
		return Artifact{}, fmt.Errorf("packager: write %s: %w", name, err)
	}
	p.used[name] = values.Key()
	return Artifact{Key: values.Key(), Name: name, Location: location}, nil
}
