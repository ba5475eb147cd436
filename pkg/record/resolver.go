package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-certgen/pkg/table"
)

// ErrMissingField is wrapped when a required field was never resolved.
var ErrMissingField = errors.New("record: required field missing")

// MissingFieldsError lists the unresolved required fields of one entity.
type MissingFieldsError struct {
	Key    string
	Fields []FieldName
}

func (e *MissingFieldsError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("record: entity %q: missing %s", e.Key, strings.Join(names, ", "))
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingField
}

// Seed is a caller-supplied default assigned before any source is scanned.
// Sources may override seeds.
type Seed struct {
	Field FieldName
	Value string
}

// Assignment describes one value copied from a source cell into a record.
type Assignment struct {
	Field  FieldName
	Value  string
	Origin string
	Row    int
}

// Resolution is the outcome of resolving one entity.
type Resolution struct {
	Record      *Record
	Assignments []Assignment
	Missing     []FieldName
}

// Complete reports whether the resolution left no required field unset.
func (r Resolution) Complete() bool {
	return len(r.Missing) == 0
}

// Err returns a *MissingFieldsError for incomplete resolutions and nil
// otherwise.
func (r Resolution) Err() error {
	if r.Complete() {
		return nil
	}
	key := ""
	if r.Record != nil {
		key = r.Record.Key()
	}
	return &MissingFieldsError{Key: key, Fields: append([]FieldName(nil), r.Missing...)}
}

// Resolver merges the rows of every source that match an entity key into one
// record. Sources are scanned in index order and rows in source order; a
// later non-absent cell overwrites an earlier one.
type Resolver struct {
	index    *table.Index
	required FieldSet
	scan     FieldSet
	seeds    []Seed
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithSeeds registers default values applied to every record before the
// scan. Seeds are applied in the given order.
func WithSeeds(seeds ...Seed) ResolverOption {
	return func(r *Resolver) {
		r.seeds = append(r.seeds, seeds...)
	}
}

// NewResolver builds a resolver for the required field set. AlwaysRequired
// fields are added when absent. EngineInputs are read from the sources as
// well but only the required set decides completeness.
func NewResolver(index *table.Index, required FieldSet, options ...ResolverOption) *Resolver {
	req := NewFieldSet(required.Names()...)
	for _, name := range AlwaysRequired {
		req.Add(name)
	}
	scan := NewFieldSet(req.Names()...)
	for _, name := range EngineInputs {
		scan.Add(name)
	}
	r := &Resolver{index: index, required: req, scan: scan}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Required returns the effective required field set.
func (r *Resolver) Required() FieldSet {
	return r.required
}

// Resolve builds the record for key and reports which required fields stayed
// unset. The returned record is frozen.
func (r *Resolver) Resolve(key string) Resolution {
	rec := New(key)
	identifier := FieldName(r.index.Identifier())
	rec.Set(identifier, key, Provenance{Seed: true})
	for _, seed := range r.seeds {
		if seed.Field == "" || IsDerived(seed.Field) || seed.Field == identifier {
			continue
		}
		rec.Set(seed.Field, seed.Value, Provenance{Seed: true})
	}

	var assignments []Assignment
	for _, match := range r.index.Lookup(key) {
		for _, name := range r.scan.Names() {
			if IsDerived(name) || name == identifier {
				continue
			}
			column := string(name)
			if !match.Table.Has(column) {
				continue
			}
			cell := match.Table.Cell(column, match.Row)
			if !cell.Present {
				continue
			}
			rec.Set(name, cell.Text, Provenance{Origin: match.Table.Origin(), Row: match.Row})
			assignments = append(assignments, Assignment{
				Field:  name,
				Value:  cell.Text,
				Origin: match.Table.Origin(),
				Row:    match.Row,
			})
		}
	}

	rec.Freeze()
	return Resolution{
		Record:      rec,
		Assignments: assignments,
		Missing:     rec.Missing(r.required),
	}
}
