package certgen_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-certgen"
	"github.com/goliatone/go-certgen/pkg/orchestrator"
	"github.com/goliatone/go-certgen/pkg/report"
	"github.com/goliatone/go-certgen/pkg/table"
	"github.com/goliatone/go-certgen/pkg/testsupport"
)

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	tables := filepath.Join(root, "tables")
	testsupport.WriteFile(t, filepath.Join(tables, "klasse_5a.csv"), []byte(
		"schueler_id,geschlecht,semester,klasse,vorname,familienname\n"+
			"501,m,1,5a,Jonas,Berg\n",
	))
	template := filepath.Join(root, "template.docx")
	testsupport.WriteArchive(t, template,
		testsupport.ArchiveFile{Name: "word/document.xml", Body: "<w:t>{vorname} {jahr} {bestanden}</w:t>"},
	)
	out := filepath.Join(root, "out")
	events := &report.Collector{}

	summary, err := certgen.Generate(testsupport.Context(), template, tables, out, "30.01.2025", orchestrator.WithSink(events))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff([]string{"[501] [5a] Jonas Berg.docx"}, testsupport.ListDir(t, out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	body := testsupport.ReadArchiveFile(t, filepath.Join(out, summary.Artifacts[0]))["word/document.xml"]
	if body != "<w:t>Jonas 2025/2026 nicht</w:t>" {
		t.Fatalf("unexpected body %q", body)
	}
	if len(events.Filter(report.KindSourceLoaded)) != 1 {
		t.Fatalf("expected one loaded source")
	}
}

func TestGenerate_Aborts(t *testing.T) {
	ctx := testsupport.Context()
	root := t.TempDir()
	if _, err := certgen.Generate(ctx, filepath.Join(root, "none.docx"), root, root, "30.01.2025"); !errors.Is(err, orchestrator.ErrNoTemplate) {
		t.Fatalf("expected ErrNoTemplate, got %v", err)
	}

	template := filepath.Join(root, "template.docx")
	testsupport.WriteArchive(t, template, testsupport.ArchiveFile{Name: "word/document.xml", Body: "{vorname}"})
	if _, err := certgen.Generate(ctx, template, root, filepath.Join(root, "out"), "30.01.2025"); !errors.Is(err, orchestrator.ErrNoSources) {
		t.Fatalf("expected ErrNoSources for an empty tables dir, got %v", err)
	}
}

func TestNewLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.csv")
	testsupport.WriteFile(t, path, []byte("schueler_id\n1\n"))
	tbl, err := certgen.NewLoader().Load(testsupport.Context(), table.OriginFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.Rows() != 1 || !tbl.Has("schueler_id") {
		t.Fatalf("unexpected table %v rows", tbl.Rows())
	}
}
