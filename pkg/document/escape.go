package document

import (
	"encoding/xml"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Escaper encodes a field value for insertion into document markup.
type Escaper interface {
	Escape(value string) string
}

// NoEscape inserts values verbatim.
type NoEscape struct{}

func (NoEscape) Escape(value string) string { return value }

// MarkupEscaper entity-encodes every character that would otherwise break
// the surrounding XML. Nothing is removed, so bracketed text such as
// "<Anlage>" reaches the document as written.
type MarkupEscaper struct{}

func (MarkupEscaper) Escape(value string) string {
	if value == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(value))
	// strings.Builder never fails a write.
	_ = xml.EscapeText(&b, []byte(value))
	return b.String()
}

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// StripMarkup removes anything shaped like an HTML tag before encoding the
// rest. It suits sources exported from rich text editors, at the cost of
// dropping bracketed words from plain text.
type StripMarkup struct{}

func (StripMarkup) Escape(value string) string {
	if value == "" {
		return ""
	}
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy.Sanitize(value)
}
