package table

import (
	"context"
	"io/fs"
)

// Loader fetches and decodes tabular sources. Implementations live under
// internal/table but satisfy this contract.
type Loader interface {
	Load(ctx context.Context, origin Origin) (*Table, error)
}

// Decoder turns the raw bytes of one file into a Table.
type Decoder interface {
	Name() string
	Extensions() []string
	Decode(origin string, data []byte) (*Table, error)
}

// LoaderOptions configures how a Loader resolves origins.
type LoaderOptions struct {
	// FileSystem enables loading fs origins; nil disables them.
	FileSystem fs.FS

	// Registry holds the decoders available to the loader. Nil means the
	// built-in CSV and spreadsheet decoders.
	Registry *Registry

	// TryAllDecoders makes the loader attempt every registered decoder, in
	// registration order, when the decoder bound to the file extension fails
	// or no decoder claims the extension.
	TryAllDecoders bool
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs origins.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithRegistry injects a custom decoder registry.
func WithRegistry(registry *Registry) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Registry = registry
	}
}

// WithDecoderFallback toggles trying every decoder on unknown or failing
// extensions.
func WithDecoderFallback(enabled bool) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.TryAllDecoders = enabled
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{TryAllDecoders: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level certgen package to prevent import cycles.
