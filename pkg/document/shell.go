package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
)

// DefaultContentPath is where word processing archives keep the body.
const DefaultContentPath = "word/document.xml"

// Entry is one static file of the document archive.
type Entry struct {
	Name string
	Data []byte
}

// Shell is a template archive split into its static entries and the text of
// the dynamic content entry. It is never mutated after loading.
type Shell struct {
	contentPath string
	content     string
	entries     []Entry
}

// OpenShell reads a template archive from disk.
func OpenShell(filename, contentPath string) (*Shell, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("document: read template %s: %w", filename, err)
	}
	return ReadShell(data, contentPath)
}

// ReadShell splits an in-memory archive. The entry at contentPath becomes the
// template text; every other file entry is kept verbatim.
func ReadShell(data []byte, contentPath string) (*Shell, error) {
	if contentPath == "" {
		contentPath = DefaultContentPath
	}
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("document: open template archive: %w", err)
	}

	shell := &Shell{contentPath: contentPath}
	found := false
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		payload, err := readEntry(file)
		if err != nil {
			return nil, err
		}
		if path.Clean(file.Name) == path.Clean(contentPath) {
			shell.content = string(payload)
			found = true
			continue
		}
		shell.entries = append(shell.entries, Entry{Name: file.Name, Data: payload})
	}
	if !found {
		return nil, fmt.Errorf("document: template archive has no %s entry", contentPath)
	}
	if len(bytes.TrimSpace([]byte(shell.content))) == 0 {
		return nil, ErrEmptyTemplate
	}
	return shell, nil
}

func readEntry(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("document: open entry %s: %w", file.Name, err)
	}
	defer rc.Close()
	payload, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("document: read entry %s: %w", file.Name, err)
	}
	return payload, nil
}

// ContentPath names the dynamic entry.
func (s *Shell) ContentPath() string {
	return s.contentPath
}

// Content returns the template text of the dynamic entry.
func (s *Shell) Content() string {
	return s.content
}

// Entries returns the static entries in archive order.
func (s *Shell) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Template parses the dynamic entry into a Template.
func (s *Shell) Template(options ...TemplateOption) (*Template, error) {
	if s == nil {
		return nil, errors.New("document: shell is nil")
	}
	return Parse(s.content, options...)
}
