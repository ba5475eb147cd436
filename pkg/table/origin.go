package table

import (
	"path/filepath"
)

// Origin identifies where a tabular source was read from so loaders can
// operate on files or fs.FS entries without leaking implementation details.
type Origin interface {
	Kind() OriginKind
	Location() string
}

// OriginKind enumerates the loader modalities.
type OriginKind string

const (
	OriginKindFile OriginKind = "file"
	OriginKindFS   OriginKind = "fs"
)

// fileOrigin identifies on-disk tables.
type fileOrigin struct {
	path string
}

func (o fileOrigin) Location() string {
	return o.path
}

func (o fileOrigin) Kind() OriginKind {
	return OriginKindFile
}

// OriginFromFile returns an Origin pointing to a file path.
func OriginFromFile(path string) Origin {
	return fileOrigin{path: filepath.Clean(path)}
}

// fsOrigin references a path within an fs.FS.
type fsOrigin struct {
	name string
}

func (o fsOrigin) Location() string {
	return o.name
}

func (o fsOrigin) Kind() OriginKind {
	return OriginKindFS
}

// OriginFromFS returns an Origin identifying a resource inside an fs.FS.
func OriginFromFS(name string) Origin {
	return fsOrigin{name: name}
}
