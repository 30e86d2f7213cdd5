package types

import (
	"io/fs"
)

// FS is the filesystem interface required for liblift operations.
// The embedder mutates binaries in place and copies libraries around, so
// implementations must support mode changes in addition to plain I/O.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Mode operations - the embedder temporarily makes read-only
	// binaries writable and must restore the original mode
	Chmod(name string, mode fs.FileMode) error

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
}
