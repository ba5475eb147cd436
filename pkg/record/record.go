package record

import "sort"

// Value is an optional field slot. The zero Value is unset.
type Value struct {
	Text string
	Set  bool
}

// Some wraps an assigned value.
func Some(text string) Value {
	return Value{Text: text, Set: true}
}

// Provenance records where a field's current value came from.
type Provenance struct {
	Origin string
	Row    int
	Seed   bool
}

// Record holds the resolved fields of one entity. A field that was never
// assigned reads back as an unset Value rather than an empty string.
type Record struct {
	key     string
	values  map[FieldName]string
	sources map[FieldName]Provenance
	frozen  bool
}

// New creates an empty record for key.
func New(key string) *Record {
	return &Record{
		key:     key,
		values:  make(map[FieldName]string),
		sources: make(map[FieldName]Provenance),
	}
}

// Key returns the entity key.
func (r *Record) Key() string {
	return r.key
}

// Get returns the slot for name.
func (r *Record) Get(name FieldName) Value {
	text, ok := r.values[name]
	if !ok {
		return Value{}
	}
	return Some(text)
}

// Text returns the value for name or "" when unset.
func (r *Record) Text(name FieldName) string {
	return r.values[name]
}

// Has reports whether name has been assigned.
func (r *Record) Has(name FieldName) bool {
	_, ok := r.values[name]
	return ok
}

// Set assigns name, overwriting any previous value. It panics once the
// record is frozen.
func (r *Record) Set(name FieldName, text string, from Provenance) {
	if r.frozen {
		panic("record: set on frozen record " + r.key)
	}
	r.values[name] = text
	r.sources[name] = from
}

// Source returns the provenance of the current value of name.
func (r *Record) Source(name FieldName) (Provenance, bool) {
	p, ok := r.sources[name]
	return p, ok
}

// Freeze stops further mutation. Derivation works on a frozen record.
func (r *Record) Freeze() {
	r.frozen = true
}

// Frozen reports whether the record accepts writes.
func (r *Record) Frozen() bool {
	return r.frozen
}

// Missing returns the required fields without a value, skipping engine
// derived fields. The result follows the order of required.
func (r *Record) Missing(required FieldSet) []FieldName {
	var out []FieldName
	for _, name := range required.Names() {
		if IsDerived(name) {
			continue
		}
		if !r.Has(name) {
			out = append(out, name)
		}
	}
	return out
}

// Complete reports whether every required, non-derived field is assigned.
func (r *Record) Complete(required FieldSet) bool {
	return len(r.Missing(required)) == 0
}

// Fields returns the assigned field names sorted alphabetically.
func (r *Record) Fields() []FieldName {
	out := make([]FieldName, 0, len(r.values))
	for name := range r.values {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Values returns a copy of the assigned values.
func (r *Record) Values() map[FieldName]string {
	out := make(map[FieldName]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}
