package record

// FieldName names one record attribute. Names match the placeholder tokens
// used in certificate templates and the column headers of the source tables.
type FieldName string

// Fields the engine reads or writes itself. Any other placeholder found in a
// template (grades, subject names) is resolved from the sources verbatim.
const (
	FieldStudentID     FieldName = "schueler_id"
	FieldSex           FieldName = "geschlecht"
	FieldPeriod        FieldName = "semester"
	FieldClass         FieldName = "klasse"
	FieldFirstName     FieldName = "vorname"
	FieldLastName      FieldName = "familienname"
	FieldRemarks       FieldName = "bemerkungen"
	FieldDate          FieldName = "datum"
	FieldYear          FieldName = "jahr"
	FieldReligion      FieldName = "religion"
	FieldReligionLabel FieldName = "religion_label"
	FieldElective1Name FieldName = "wpu1_name"
	FieldElective1Note FieldName = "wpu1_note"
	FieldElective2Name FieldName = "wpu2_name"
	FieldElective2Note FieldName = "wpu2_note"

	FieldPronoun       FieldName = "pronomen"
	FieldFormOfAddress FieldName = "form_of_address"
	FieldMarker1       FieldName = "kreuz1"
	FieldMarker2       FieldName = "kreuz2"
	FieldMarker3       FieldName = "kreuz3"
	FieldMarker4       FieldName = "kreuz4"
	FieldNextLevel     FieldName = "neue_jahrgangsstuffe"
	FieldPassed        FieldName = "bestanden"
)

// AlwaysRequired lists fields every record needs regardless of the template.
var AlwaysRequired = []FieldName{FieldSex, FieldPeriod, FieldClass}

// EngineInputs lists the source fields derivation reads. The resolver scans
// them whenever a source carries the column, even when no template names
// them.
var EngineInputs = []FieldName{FieldSex, FieldPeriod, FieldClass, FieldRemarks, FieldReligion}

var derived = map[FieldName]struct{}{
	FieldPronoun:       {},
	FieldFormOfAddress: {},
	FieldMarker1:       {},
	FieldMarker2:       {},
	FieldMarker3:       {},
	FieldMarker4:       {},
	FieldNextLevel:     {},
	FieldPassed:        {},
}

// IsDerived reports whether the engine computes the field itself. Derived
// fields are never read from sources.
func IsDerived(name FieldName) bool {
	_, ok := derived[name]
	return ok
}

// DerivedFields returns the engine-computed field names in a stable order.
func DerivedFields() []FieldName {
	return []FieldName{
		FieldPronoun,
		FieldFormOfAddress,
		FieldMarker1,
		FieldMarker2,
		FieldMarker3,
		FieldMarker4,
		FieldNextLevel,
		FieldPassed,
	}
}

// FieldSet is an ordered, duplicate-free list of field names.
type FieldSet struct {
	names []FieldName
	index map[FieldName]struct{}
}

// NewFieldSet builds a set preserving first-seen order.
func NewFieldSet(names ...FieldName) FieldSet {
	set := FieldSet{index: make(map[FieldName]struct{}, len(names))}
	for _, name := range names {
		set.Add(name)
	}
	return set
}

// Add appends name unless it is empty or already present.
func (s *FieldSet) Add(name FieldName) {
	if name == "" {
		return
	}
	if s.index == nil {
		s.index = make(map[FieldName]struct{})
	}
	if _, ok := s.index[name]; ok {
		return
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
}

// Has reports membership.
func (s FieldSet) Has(name FieldName) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns the members in insertion order.
func (s FieldSet) Names() []FieldName {
	out := make([]FieldName, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the member count.
func (s FieldSet) Len() int {
	return len(s.names)
}
