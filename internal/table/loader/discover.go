package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/goliatone/go-certgen/pkg/table"
)

// DefaultPatterns match every file below the tables root. Which of them hold
// a table is left to the loader's decoder fallback.
var DefaultPatterns = []string{"**/*"}

// Discover expands the glob patterns (with ** support) below root and returns
// file origins sorted by path so scan order is stable across runs.
func Discover(ctx context.Context, root string, patterns ...string) ([]table.Origin, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("table discover: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("table discover: %s is not a directory", root)
	}

	paths, err := DiscoverFS(ctx, os.DirFS(root), patterns...)
	if err != nil {
		return nil, err
	}

	origins := make([]table.Origin, 0, len(paths))
	for _, rel := range paths {
		origins = append(origins, table.OriginFromFile(filepath.Join(root, filepath.FromSlash(rel))))
	}
	return origins, nil
}

// DiscoverFS expands the patterns inside fsys and returns the matching file
// names sorted and deduplicated.
func DiscoverFS(ctx context.Context, fsys fs.FS, patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range patterns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("table discover: pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if _, dup := seen[match]; dup {
				continue
			}
			seen[match] = struct{}{}
			out = append(out, match)
		}
	}
	sort.Strings(out)
	return out, nil
}
