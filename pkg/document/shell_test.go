package document_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-certgen/pkg/document"
	"github.com/goliatone/go-certgen/pkg/testsupport"
)

func TestReadShell_SplitsContentFromStaticEntries(t *testing.T) {
	data := testsupport.BuildArchive(t,
		testsupport.ArchiveFile{Name: "[Content_Types].xml", Body: "<Types/>"},
		testsupport.ArchiveFile{Name: "word/document.xml", Body: "<w:t>{vorname}</w:t>"},
		testsupport.ArchiveFile{Name: "word/styles.xml", Body: "<styles/>"},
	)

	shell, err := document.ReadShell(data, "")
	if err != nil {
		t.Fatalf("read shell: %v", err)
	}
	if shell.ContentPath() != document.DefaultContentPath {
		t.Fatalf("unexpected content path %q", shell.ContentPath())
	}
	if shell.Content() != "<w:t>{vorname}</w:t>" {
		t.Fatalf("unexpected content %q", shell.Content())
	}

	var names []string
	for _, e := range shell.Entries() {
		names = append(names, e.Name)
	}
	if diff := cmp.Diff([]string{"[Content_Types].xml", "word/styles.xml"}, names); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}

	tpl, err := shell.Template()
	if err != nil {
		t.Fatalf("template: %v", err)
	}
	if !tpl.Placeholders().Has("vorname") {
		t.Fatalf("expected vorname placeholder")
	}
}

func TestReadShell_Errors(t *testing.T) {
	noContent := testsupport.BuildArchive(t, testsupport.ArchiveFile{Name: "a.xml", Body: "x"})
	if _, err := document.ReadShell(noContent, ""); err == nil {
		t.Fatalf("expected missing content entry error")
	}

	empty := testsupport.BuildArchive(t, testsupport.ArchiveFile{Name: "word/document.xml", Body: ""})
	if _, err := document.ReadShell(empty, ""); err == nil {
		t.Fatalf("expected empty template error")
	}

	if _, err := document.ReadShell([]byte("not a zip"), ""); err == nil {
		t.Fatalf("expected archive error")
	}
	if _, err := document.OpenShell(filepath.Join(t.TempDir(), "missing.docx"), ""); err == nil {
		t.Fatalf("expected missing file error")
	}
}
