package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-certgen/internal/config"
	"github.com/goliatone/go-certgen/pkg/testsupport"
)

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "certgen.yaml")
	testsupport.WriteFile(t, path, []byte(`
tables: data
tablePatterns:
  - "**/*.csv"
output: out
date: 24.06.2024
escapeValues: false
nameTemplate: "{{ schueler_id }}.docx"
nameFields: [schueler_id]
nameGlobals:
  schule: GS Nord
stripMarkup: true
`))

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := config.Default()
	want.Tables = "data"
	want.TablePatterns = []string{"**/*.csv"}
	want.Output = "out"
	want.Date = "24.06.2024"
	off := false
	want.EscapeValues = &off
	want.NameTemplate = "{{ schueler_id }}.docx"
	want.NameFields = []string{"schueler_id"}
	want.NameGlobals = map[string]string{"schule": "GS Nord"}
	want.StripMarkup = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Escape() {
		t.Fatalf("expected escaping disabled")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for explicit missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	testsupport.WriteFile(t, path, []byte("tables: [unterminated"))
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMerge_KeepsBaseForZeroValues(t *testing.T) {
	base := config.Default()
	got := base.Merge(config.Config{Template: " other.docx ", Date: "01.02.2025"})
	if got.Template != "other.docx" || got.Date != "01.02.2025" {
		t.Fatalf("override not applied: %+v", got)
	}
	if got.Tables != base.Tables || !got.Escape() {
		t.Fatalf("unexpected change to untouched values: %+v", got)
	}
}

func TestMerge_CombinesNameGlobals(t *testing.T) {
	base := config.Default()
	base.NameGlobals = map[string]string{"schule": "GS Nord", "ort": "Kiel"}
	got := base.Merge(config.Config{NameGlobals: map[string]string{"schule": "GS Süd"}})

	want := map[string]string{"schule": "GS Süd", "ort": "Kiel"}
	if diff := cmp.Diff(want, got.NameGlobals); diff != "" {
		t.Fatalf("globals mismatch (-want +got):\n%s", diff)
	}
	if base.NameGlobals["schule"] != "GS Nord" {
		t.Fatalf("merge must not modify the base config")
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Template = ""
	cfg.Date = "morgen"
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, fragment := range []string{"template path is required", "invalid certificate date", `unknown log level "loud"`} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("error %q lacks %q", err, fragment)
		}
	}
}
