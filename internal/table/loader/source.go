package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-certgen/pkg/table"
)

// readOrigin returns the raw bytes behind origin. File origins are read from
// disk, fs origins from the configured filesystem. Directories are refused so
// a stray folder in the tables root is reported instead of decoded.
func readOrigin(ctx context.Context, fsys fs.FS, origin table.Origin) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	location := origin.Location()
	if location == "" {
		return nil, errors.New("table loader: origin location is required")
	}

	var (
		info fs.FileInfo
		err  error
	)
	switch origin.Kind() {
	case table.OriginKindFile:
		info, err = os.Stat(location)
	case table.OriginKindFS:
		if fsys == nil {
			return nil, errors.New("table loader: filesystem is not configured")
		}
		if !fs.ValidPath(location) {
			return nil, fmt.Errorf("table loader: invalid fs path %q", location)
		}
		info, err = fs.Stat(fsys, location)
	default:
		return nil, fmt.Errorf("table loader: unsupported origin kind %q", origin.Kind())
	}
	if err != nil {
		return nil, fmt.Errorf("table loader: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("table loader: %s is a directory", location)
	}

	var data []byte
	if origin.Kind() == table.OriginKindFile {
		data, err = os.ReadFile(location)
	} else {
		data, err = fs.ReadFile(fsys, location)
	}
	if err != nil {
		return nil, fmt.Errorf("table loader: %w", err)
	}
	return data, nil
}
