package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-certgen/pkg/table"
)

// Loader implements table.Loader by reading bytes through file or fs.FS
// strategies and handing them to the registered decoders.
type Loader struct {
	fs       fs.FS
	registry *table.Registry
	fallback bool
}

// Ensure the implementation satisfies the public interface.
var _ table.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options table.LoaderOptions) *Loader {
	registry := options.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Loader{
		fs:       options.FileSystem,
		registry: registry,
		fallback: options.TryAllDecoders,
	}
}

// DefaultRegistry returns a registry holding the CSV decoder followed by the
// spreadsheet decoder, which is also the fallback order.
func DefaultRegistry() *table.Registry {
	registry := table.NewRegistry()
	registry.MustRegister(CSVDecoder{})
	registry.MustRegister(XLSXDecoder{})
	return registry
}

// Load reads the origin and decodes it into a Table labelled with the origin
// location.
func (l *Loader) Load(ctx context.Context, origin table.Origin) (*table.Table, error) {
	if origin == nil {
		return nil, errors.New("table loader: origin is nil")
	}

	data, err := readOrigin(ctx, l.fs, origin)
	if err != nil {
		return nil, err
	}

	return l.decode(origin.Location(), data)
}

// Registry exposes the decoders used by the loader.
func (l *Loader) Registry() *table.Registry {
	return l.registry
}

func (l *Loader) decode(location string, data []byte) (*table.Table, error) {
	var failures []string

	primary, ok := l.registry.ForExtension(filepath.Ext(location))
	if ok {
		tbl, err := primary.Decode(location, data)
		if err == nil {
			return tbl, nil
		}
		if !l.fallback {
			return nil, fmt.Errorf("table loader: decode %s as %s: %w", location, primary.Name(), err)
		}
		failures = append(failures, fmt.Sprintf("%s: %v", primary.Name(), err))
	} else if !l.fallback {
		return nil, fmt.Errorf("table loader: no decoder for %s", location)
	}

	for _, decoder := range l.registry.List() {
		if ok && decoder.Name() == primary.Name() {
			continue
		}
		tbl, err := decoder.Decode(location, data)
		if err == nil {
			return tbl, nil
		}
		failures = append(failures, fmt.Sprintf("%s: %v", decoder.Name(), err))
	}

	if len(failures) == 0 {
		return nil, fmt.Errorf("table loader: no decoders registered for %s", location)
	}
	return nil, fmt.Errorf("table loader: unreadable table %s (%s)", location, strings.Join(failures, "; "))
}
