package derive

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-certgen/pkg/record"
)

// Derived is a resolved record plus the fields the engine computes. It is
// read-only.
type Derived struct {
	key    string
	values map[record.FieldName]string
}

// Key returns the entity key.
func (d *Derived) Key() string {
	return d.key
}

// Lookup returns the value for name.
func (d *Derived) Lookup(name record.FieldName) (string, bool) {
	v, ok := d.values[name]
	return v, ok
}

// Text returns the value for name or "".
func (d *Derived) Text(name record.FieldName) string {
	return d.values[name]
}

// Values returns a copy of every field.
func (d *Derived) Values() map[record.FieldName]string {
	out := make(map[record.FieldName]string, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

// Option customises a Deriver.
type Option func(*Deriver)

// WithPhrases overrides the certificate wording.
func WithPhrases(p Phrases) Option {
	return func(d *Deriver) {
		d.phrases = p
	}
}

// Deriver applies the certificate rules to resolved records.
type Deriver struct {
	year    int
	phrases Phrases
}

// New builds a Deriver for certificates issued in year.
func New(year int, options ...Option) *Deriver {
	d := &Deriver{year: year, phrases: DefaultPhrases()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

// Derive computes sex, period, annotation and religion fields. Any code
// outside the recognised sets yields a *RejectedError.
func (d *Deriver) Derive(rec *record.Record) (*Derived, error) {
	if rec == nil {
		return nil, errors.New("derive: record is nil")
	}
	out := &Derived{key: rec.Key(), values: rec.Values()}
	for _, name := range record.DerivedFields() {
		delete(out.values, name)
	}

	if err := d.applySex(out); err != nil {
		return nil, err
	}
	if err := d.applyPeriod(out); err != nil {
		return nil, err
	}
	if remarks, ok := out.values[record.FieldRemarks]; ok {
		out.values[record.FieldRemarks] = ExpandAnnotations(remarks, out.values[record.FieldFormOfAddress])
	}
	if religion := strings.TrimSpace(out.values[record.FieldReligion]); religion != "" {
		out.values[record.FieldReligionLabel] = d.phrases.ReligionLabel
	}
	return out, nil
}

func (d *Deriver) applySex(out *Derived) error {
	sex, ok := out.values[record.FieldSex]
	switch {
	case ok && sex == SexFemale:
		out.values[record.FieldPronoun] = d.phrases.FemalePronoun
		out.values[record.FieldFormOfAddress] = d.phrases.FemaleFormOfAddress
	case ok && sex == SexMale:
		out.values[record.FieldPronoun] = d.phrases.MalePronoun
		out.values[record.FieldFormOfAddress] = d.phrases.MaleFormOfAddress
	default:
		return &RejectedError{Key: out.key, Field: record.FieldSex, Value: sex, Reason: ReasonInvalidSex}
	}
	return nil
}

func (d *Deriver) applyPeriod(out *Derived) error {
	period := out.values[record.FieldPeriod]
	picked, unpicked := d.phrases.PickedBox, d.phrases.UnpickedBox

	switch period {
	case PeriodFirst:
		out.values[record.FieldPeriod] = d.phrases.FirstPeriod
		d.setMarkers(out, unpicked, picked, unpicked, picked)
		out.values[record.FieldYear] = yearRange(d.year, d.year+1)
		out.values[record.FieldNextLevel] = d.phrases.NextLevelNone
		out.values[record.FieldPassed] = d.phrases.Not
	case PeriodSecond:
		class := out.values[record.FieldClass]
		next, ok := NextLevel(class)
		if !ok {
			return &RejectedError{Key: out.key, Field: record.FieldClass, Value: class, Reason: ReasonInvalidClass}
		}
		out.values[record.FieldPeriod] = d.phrases.SecondPeriod
		d.setMarkers(out, picked, unpicked, picked, unpicked)
		out.values[record.FieldYear] = yearRange(d.year-1, d.year)
		out.values[record.FieldNextLevel] = next
		if strings.Contains(out.values[record.FieldRemarks], AnnotationPromotionExcluded.Token()) {
			out.values[record.FieldPassed] = d.phrases.Not
		} else {
			out.values[record.FieldPassed] = d.phrases.NotCrossedOut
		}
	default:
		return &RejectedError{Key: out.key, Field: record.FieldPeriod, Value: period, Reason: ReasonInvalidPeriod}
	}
	return nil
}

func (d *Deriver) setMarkers(out *Derived, m1, m2, m3, m4 string) {
	out.values[record.FieldMarker1] = m1
	out.values[record.FieldMarker2] = m2
	out.values[record.FieldMarker3] = m3
	out.values[record.FieldMarker4] = m4
}

func yearRange(from, to int) string {
	return strconv.Itoa(from) + "/" + strconv.Itoa(to)
}

// NextLevel strips one trailing letter from a class label and returns the
// following grade, so "10a" becomes "11".
func NextLevel(class string) (string, bool) {
	trimmed := strings.TrimSpace(class)
	if r, size := utf8.DecodeLastRuneInString(trimmed); size > 0 && unicode.IsLetter(r) {
		trimmed = trimmed[:len(trimmed)-size]
	}
	grade, err := strconv.Atoi(trimmed)
	if err != nil || grade < 0 {
		return "", false
	}
	return strconv.Itoa(grade + 1), true
}
