package gotemplate_test

import (
	"io"
	"strings"
	"testing"

	"github.com/goliatone/go-certgen/pkg/render/template/gotemplate"
)

func captureRender(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()
	var buf strings.Builder
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}

func TestEngine_RenderStringWritesToWriters(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithoutAutoescape())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, written := captureRender(t, func(w io.Writer) (string, error) {
		return engine.RenderString("[{{ id }}] {{ name|filename }}.docx", map[string]string{
			"id":   "7",
			"name": "Ada / Lovelace & Co",
		}, w)
	})

	want := "[7] Ada - Lovelace & Co.docx"
	if result != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", want, written)
	}
}

func TestEngine_AutoescapeByDefault(t *testing.T) {
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	out, err := engine.RenderString("{{ v }}", map[string]any{"v": "a & b"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "a &amp; b" {
		t.Fatalf("expected escaped output, got %q", out)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithGlobalData(map[string]any{"run": "r1"}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ name }}-{{ run }}", map[string]any{"name": "x"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "x-r1" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEngine_GlobalContextAfterConstruction(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithGlobalData(map[string]any{"schule": "GS Nord"}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := engine.GlobalContext(map[string]string{"jahrgang": "2024"}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	out, err := engine.RenderString("{{ schule }} {{ jahrgang }} {{ schule }}", map[string]string{"schule": "eigene"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "eigene 2024 eigene" {
		t.Fatalf("expected call data to win over globals, got %q", out)
	}
	if err := engine.GlobalContext(42); err == nil {
		t.Fatalf("expected unsupported global context error")
	}
}

func TestEngine_RejectsUnsupportedContext(t *testing.T) {
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.RenderString("x", 42); err == nil {
		t.Fatalf("expected unsupported context error")
	}
}

func TestSafeFileName(t *testing.T) {
	if got := gotemplate.SafeFileName(` a/b\c:d*e?"f"<g>|h `); got != `a-b-c-d-e-'f'(g)-h` {
		t.Fatalf("unexpected %q", got)
	}
}
