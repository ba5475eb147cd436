package packager

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-certgen/pkg/document"
)

// ArchiveWriter persists one bundle under name and returns where it went.
type ArchiveWriter interface {
	WriteArchive(ctx context.Context, name string, files []document.Entry) (string, error)
}

// DirWriter writes zip archives into a directory, replacing archives of the
// same name left over from earlier runs.
type DirWriter struct {
	Dir string
}

// NewDirWriter returns a writer targeting dir.
func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{Dir: dir}
}

func (w *DirWriter) WriteArchive(ctx context.Context, name string, files []document.Entry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("packager: invalid archive name %q", name)
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("packager: mkdir %s: %w", w.Dir, err)
	}

	target := filepath.Join(w.Dir, name)
	tmp, err := os.CreateTemp(w.Dir, ".certgen-*")
	if err != nil {
		return "", fmt.Errorf("packager: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := writeZip(tmp, files); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("packager: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("packager: move archive into place: %w", err)
	}
	return target, nil
}

func writeZip(f *os.File, files []document.Entry) error {
	zw := zip.NewWriter(f)
	for _, entry := range files {
		w, err := zw.Create(entry.Name)
		if err != nil {
			return fmt.Errorf("packager: add %s: %w", entry.Name, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return fmt.Errorf("packager: write %s: %w", entry.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return errors.Join(errors.New("packager: finalise archive"), err)
	}
	return nil
}
