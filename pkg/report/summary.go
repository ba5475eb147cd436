package report

import (
	"fmt"
	"sort"
	"strings"
)

// Skip explains why one entity produced no artifact.
type Skip struct {
	Key    string
	Kind   Kind
	Fields []string
	Value  string
	Reason string
}

// Summary tallies a run.
type Summary struct {
	RunID     string
	Entities  int
	Processed int
	Artifacts []string
	Skipped   []Skip
}

// SkippedCount returns the number of skipped entities.
func (s Summary) SkippedCount() int {
	return len(s.Skipped)
}

// FieldTally counts skips per field, e.g. how many students missed "mathe".
func (s Summary) FieldTally() map[string]int {
	out := make(map[string]int)
	for _, skip := range s.Skipped {
		for _, f := range skip.Fields {
			out[f]++
		}
	}
	return out
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d certificates written, %d skipped", s.Processed, s.Entities, len(s.Skipped))
	tally := s.FieldTally()
	if len(tally) == 0 {
		return b.String()
	}
	names := make([]string, 0, len(tally))
	for name := range tally {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", name, tally[name]))
	}
	fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	return b.String()
}
