package macho

import "path/filepath"

// Reference is one recorded dependency reference of a binary: the path
// the loader will resolve at launch time, decomposed into directory and
// leaf filename. For a dylib the listing also contains the library's own
// self-identity entry.
type Reference struct {
	Path string
	Dir  string
	Leaf string
}

// NewReference builds a Reference from a recorded path
func NewReference(path string) Reference {
	return Reference{
		Path: path,
		Dir:  filepath.Dir(path),
		Leaf: filepath.Base(path),
	}
}

// Tool abstracts the platform's binary-metadata operations so the
// embedding algorithm stays platform-agnostic and unit-testable.
type Tool interface {
	// ListReferences returns the recorded dependency references of the
	// binary at path, in listing order, including a dylib's
	// self-identity entry
	ListReferences(path string) ([]Reference, error)

	// ChangeReference rewrites one recorded reference from oldPath to
	// newPath in the binary at path
	ChangeReference(path, oldPath, newPath string) error

	// ChangeIdentity rewrites the self-identity reference of the dylib
	// at path
	ChangeIdentity(path, newID string) error
}
