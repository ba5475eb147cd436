package document_test

import (
	"testing"

	"github.com/goliatone/go-certgen/pkg/derive"
	"github.com/goliatone/go-certgen/pkg/document"
)

func TestMarkupEscaper(t *testing.T) {
	cases := map[string]string{
		"":                       "",
		"Ada":                    "Ada",
		"a < b & c":              "a &lt; b &amp; c",
		"<b>fett</b>":            "&lt;b&gt;fett&lt;/b&gt;",
		"AT&amp;T":               "AT&amp;amp;T",
		"Sie /E̶r̶":              "Sie /E̶r̶",
		"Hinweis <Anlage> folgt": "Hinweis &lt;Anlage&gt; folgt",
	}
	for in, want := range cases {
		if got := (document.MarkupEscaper{}).Escape(in); got != want {
			t.Fatalf("Escape(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMarkupEscaper_KeepsUnknownAnnotations(t *testing.T) {
	remarks := derive.ExpandAnnotations("Hinweis <Anlage> folgt", "Die Schülerin")
	if got := (document.MarkupEscaper{}).Escape(remarks); got != "Hinweis &lt;Anlage&gt; folgt" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestStripMarkup(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"<b>fett</b>": "fett",
		"a < b & c":   "a &lt; b &amp; c",
	}
	for in, want := range cases {
		if got := (document.StripMarkup{}).Escape(in); got != want {
			t.Fatalf("Escape(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNoEscape(t *testing.T) {
	if got := (document.NoEscape{}).Escape("<b>&"); got != "<b>&" {
		t.Fatalf("unexpected %q", got)
	}
}
