package record_test

import (
	"testing"

	"github.com/goliatone/go-certgen/pkg/record"
)

func TestRecord_OptionalSlots(t *testing.T) {
	rec := record.New("1")
	if got := rec.Get("mathe"); got.Set {
		t.Fatalf("expected unset slot, got %+v", got)
	}

	rec.Set("mathe", "", record.Provenance{Origin: "a.csv"})
	if got := rec.Get("mathe"); got != record.Some("") {
		t.Fatalf("expected empty but set slot, got %+v", got)
	}
}

func TestRecord_FrozenRejectsWrites(t *testing.T) {
	rec := record.New("1")
	rec.Freeze()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on frozen write")
		}
	}()
	rec.Set("mathe", "1", record.Provenance{})
}

func TestFieldSet_DeduplicatesInOrder(t *testing.T) {
	set := record.NewFieldSet("b", "a", "b", "", "c")
	got := set.Names()
	if len(got) != 3 || got[0] != "b" || got[1] != "a" || got[2] != "c" {
		t.Fatalf("unexpected names %v", got)
	}
	if !set.Has("a") || set.Has("z") {
		t.Fatalf("unexpected membership")
	}
}

func TestIsDerived(t *testing.T) {
	for _, name := range record.DerivedFields() {
		if !record.IsDerived(name) {
			t.Fatalf("expected %q to be derived", name)
		}
	}
	if record.IsDerived(record.FieldRemarks) {
		t.Fatalf("remarks are read from sources")
	}
}
