package table

import (
	"fmt"
	"strings"
	"sync"
)

// Registry stores decoders by name and by the file extensions they claim.
// Registration order is preserved so fallback decoding is deterministic.
type Registry struct {
	mu         sync.RWMutex
	decoders   map[string]Decoder
	order      []string
	extensions map[string]string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		decoders:   make(map[string]Decoder),
		extensions: make(map[string]string),
	}
}

// Register adds a decoder by its Name(). Duplicate names or extensions return
// an error.
func (r *Registry) Register(decoder Decoder) error {
	if decoder == nil {
		return fmt.Errorf("table: decoder is required")
	}
	name := decoder.Name()
	if name == "" {
		return fmt.Errorf("table: decoder name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.decoders[name]; exists {
		return fmt.Errorf("table: decoder %q already registered", name)
	}
	exts := make([]string, 0, len(decoder.Extensions()))
	for _, ext := range decoder.Extensions() {
		normalized := normalizeExtension(ext)
		if normalized == "" {
			continue
		}
		if owner, taken := r.extensions[normalized]; taken {
			return fmt.Errorf("table: extension %q already claimed by %q", normalized, owner)
		}
		exts = append(exts, normalized)
	}

	r.decoders[name] = decoder
	r.order = append(r.order, name)
	for _, ext := range exts {
		r.extensions[ext] = name
	}
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(decoder Decoder) {
	if err := r.Register(decoder); err != nil {
		panic(err)
	}
}

// Get retrieves a decoder by name.
func (r *Registry) Get(name string) (Decoder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	decoder, ok := r.decoders[name]
	if !ok {
		return nil, fmt.Errorf("table: decoder %q not found", name)
	}
	return decoder, nil
}

// ForExtension returns the decoder claiming the extension, if any.
func (r *Registry) ForExtension(ext string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.extensions[normalizeExtension(ext)]
	if !ok {
		return nil, false
	}
	return r.decoders[name], true
}

// List returns decoders in registration order.
func (r *Registry) List() []Decoder {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Decoder, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.decoders[name])
	}
	return out
}

// Extensions returns every claimed extension in registration order.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for _, name := range r.order {
		for _, ext := range r.decoders[name].Extensions() {
			if normalized := normalizeExtension(ext); normalized != "" {
				out = append(out, normalized)
			}
		}
	}
	return out
}

func normalizeExtension(ext string) string {
	trimmed := strings.ToLower(strings.TrimSpace(ext))
	if trimmed == "" {
		return ""
	}
	if !strings.HasPrefix(trimmed, ".") {
		trimmed = "." + trimmed
	}
	return trimmed
}
