package table_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-certgen/pkg/table"
)

type stubDecoder struct {
	name string
	exts []string
}

func (d stubDecoder) Name() string         { return d.name }
func (d stubDecoder) Extensions() []string { return d.exts }
func (d stubDecoder) Decode(origin string, _ []byte) (*table.Table, error) {
	return table.New(origin, nil, nil), nil
}

func TestRegistry_RegisterAndResolveExtension(t *testing.T) {
	reg := table.NewRegistry()
	reg.MustRegister(stubDecoder{name: "csv", exts: []string{"csv", ".TXT"}})

	decoder, ok := reg.ForExtension(".CSV")
	if !ok || decoder.Name() != "csv" {
		t.Fatalf("expected csv decoder, got %v (ok=%v)", decoder, ok)
	}
	if _, ok := reg.ForExtension(".txt"); !ok {
		t.Fatalf("expected extension lookup to be case-insensitive")
	}
	if _, ok := reg.ForExtension(".xlsx"); ok {
		t.Fatalf("expected unknown extension to miss")
	}
	if got := strings.Join(reg.Extensions(), ","); got != ".csv,.txt" {
		t.Fatalf("unexpected extensions %q", got)
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	reg := table.NewRegistry()
	reg.MustRegister(stubDecoder{name: "csv", exts: []string{".csv"}})

	if err := reg.Register(stubDecoder{name: "csv"}); err == nil {
		t.Fatalf("expected duplicate name error")
	}
	if err := reg.Register(stubDecoder{name: "other", exts: []string{"csv"}}); err == nil {
		t.Fatalf("expected duplicate extension error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil decoder error")
	}
	if _, err := reg.Get("missing"); err == nil {
		t.Fatalf("expected missing decoder error")
	}
}
