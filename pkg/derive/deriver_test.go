package derive_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-certgen/pkg/derive"
	"github.com/goliatone/go-certgen/pkg/record"
)

func newRecord(t *testing.T, values map[record.FieldName]string) *record.Record {
	t.Helper()
	rec := record.New("42")
	for name, value := range values {
		rec.Set(name, value, record.Provenance{Origin: "test"})
	}
	rec.Freeze()
	return rec
}

func TestDerive_SecondPeriodPromotes(t *testing.T) {
	p := derive.DefaultPhrases()
	rec := newRecord(t, map[record.FieldName]string{
		record.FieldSex:     derive.SexFemale,
		record.FieldPeriod:  derive.PeriodSecond,
		record.FieldClass:   "10a",
		record.FieldRemarks: "<2a>",
	})

	got, err := derive.New(2021).Derive(rec)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	want := map[record.FieldName]string{
		record.FieldSex:           derive.SexFemale,
		record.FieldPeriod:        p.SecondPeriod,
		record.FieldClass:         "10a",
		record.FieldRemarks:       p.FemaleFormOfAddress + " hat die Probezeit bestanden.\n",
		record.FieldPronoun:       p.FemalePronoun,
		record.FieldFormOfAddress: p.FemaleFormOfAddress,
		record.FieldMarker1:       p.PickedBox,
		record.FieldMarker2:       p.UnpickedBox,
		record.FieldMarker3:       p.PickedBox,
		record.FieldMarker4:       p.UnpickedBox,
		record.FieldYear:          "2020/2021",
		record.FieldNextLevel:     "11",
		record.FieldPassed:        p.NotCrossedOut,
	}
	if diff := cmp.Diff(want, got.Values()); diff != "" {
		t.Fatalf("derived mismatch (-want +got):\n%s", diff)
	}
}

func TestDerive_SecondPeriodExcludedFromPromotion(t *testing.T) {
	rec := newRecord(t, map[record.FieldName]string{
		record.FieldSex:     derive.SexMale,
		record.FieldPeriod:  derive.PeriodSecond,
		record.FieldClass:   "7",
		record.FieldRemarks: "Hinweis <1c>",
	})

	got, err := derive.New(2021).Derive(rec)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if got.Text(record.FieldPassed) != derive.DefaultPhrases().Not {
		t.Fatalf("expected failed phrase, got %q", got.Text(record.FieldPassed))
	}
	if got.Text(record.FieldNextLevel) != "8" {
		t.Fatalf("expected next level 8, got %q", got.Text(record.FieldNextLevel))
	}
	if got.Text(record.FieldRemarks) != "Hinweis Die Versetzung ist zurzeit ausgeschlossen.\n" {
		t.Fatalf("unexpected remarks %q", got.Text(record.FieldRemarks))
	}
}

func TestDerive_FirstPeriodIgnoresRemarks(t *testing.T) {
	p := derive.DefaultPhrases()
	for _, remarks := range []string{"", "<1c>", "<1a><3a>"} {
		rec := newRecord(t, map[record.FieldName]string{
			record.FieldSex:     derive.SexMale,
			record.FieldPeriod:  derive.PeriodFirst,
			record.FieldClass:   "no-number",
			record.FieldRemarks: remarks,
		})

		got, err := derive.New(2021).Derive(rec)
		if err != nil {
			t.Fatalf("derive(%q): %v", remarks, err)
		}

		values := got.Values()
		checks := map[record.FieldName]string{
			record.FieldYear:      "2021/2022",
			record.FieldNextLevel: "/",
			record.FieldPassed:    p.Not,
			record.FieldPeriod:    p.FirstPeriod,
			record.FieldMarker1:   p.UnpickedBox,
			record.FieldMarker2:   p.PickedBox,
			record.FieldMarker3:   p.UnpickedBox,
			record.FieldMarker4:   p.PickedBox,
		}
		for name, want := range checks {
			if values[name] != want {
				t.Fatalf("remarks %q: field %s = %q, want %q", remarks, name, values[name], want)
			}
		}
	}
}

func TestDerive_RejectsInvalidCodes(t *testing.T) {
	cases := []struct {
		name   string
		values map[record.FieldName]string
		field  record.FieldName
		value  string
		reason derive.Reason
	}{
		{
			name:   "unknown sex",
			values: map[record.FieldName]string{record.FieldSex: "x", record.FieldPeriod: "1"},
			field:  record.FieldSex,
			value:  "x",
			reason: derive.ReasonInvalidSex,
		},
		{
			name:   "absent sex",
			values: map[record.FieldName]string{record.FieldPeriod: "1"},
			field:  record.FieldSex,
			value:  "",
			reason: derive.ReasonInvalidSex,
		},
		{
			name:   "unknown period",
			values: map[record.FieldName]string{record.FieldSex: "w", record.FieldPeriod: "3"},
			field:  record.FieldPeriod,
			value:  "3",
			reason: derive.ReasonInvalidPeriod,
		},
		{
			name:   "class without grade",
			values: map[record.FieldName]string{record.FieldSex: "w", record.FieldPeriod: "2", record.FieldClass: "abc"},
			field:  record.FieldClass,
			value:  "abc",
			reason: derive.ReasonInvalidClass,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := derive.New(2021).Derive(newRecord(t, tc.values))
			if !errors.Is(err, derive.ErrInvalidCode) {
				t.Fatalf("expected ErrInvalidCode, got %v", err)
			}
			var rejected *derive.RejectedError
			if !errors.As(err, &rejected) {
				t.Fatalf("expected RejectedError, got %T", err)
			}
			if rejected.Field != tc.field || rejected.Value != tc.value || rejected.Reason != tc.reason {
				t.Fatalf("unexpected rejection %+v", rejected)
			}
			if rejected.Key != "42" {
				t.Fatalf("expected entity key on rejection, got %q", rejected.Key)
			}
		})
	}
}

func TestDerive_ReligionLabel(t *testing.T) {
	base := map[record.FieldName]string{
		record.FieldSex:           "w",
		record.FieldPeriod:        "1",
		record.FieldReligionLabel: "fill",
	}

	got, err := derive.New(2021).Derive(newRecord(t, base))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if got.Text(record.FieldReligionLabel) != "fill" {
		t.Fatalf("expected default label to survive, got %q", got.Text(record.FieldReligionLabel))
	}

	base[record.FieldReligion] = "2"
	got, err = derive.New(2021).Derive(newRecord(t, base))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if got.Text(record.FieldReligionLabel) != "Religion" {
		t.Fatalf("expected religion label, got %q", got.Text(record.FieldReligionLabel))
	}
}

func TestNextLevel(t *testing.T) {
	cases := map[string]string{"10a": "11", "9": "10", " 5b ": "6", "12ä": "13"}
	for in, want := range cases {
		got, ok := derive.NextLevel(in)
		if !ok || got != want {
			t.Fatalf("NextLevel(%q) = %q (ok=%v), want %q", in, got, ok, want)
		}
	}
	for _, in := range []string{"", "a", "10ab", "-1"} {
		if _, ok := derive.NextLevel(in); ok {
			t.Fatalf("NextLevel(%q) expected failure", in)
		}
	}
}
