package bundle

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/liblift/pkg/errors"
)

const (
	// FrameworksDir is the directory name for embedded libraries,
	// relative to the executable's parent directory
	FrameworksDir = "Frameworks"

	// ExecutablePathToken is the loader token resolved to the
	// directory of the running executable at launch time
	ExecutablePathToken = "@executable_path"

	// ManifestFile is the name of the embedded-libraries manifest
	// written next to the Frameworks directory
	ManifestFile = "embedded-libraries.yaml"
)

// Layout computes bundle-local paths for one executable and platform tag.
// Embedded libraries live flatly in a single tag-scoped directory so
// bundles built for multiple OS targets do not collide.
type Layout struct {
	executable string
	tag        string
}

// NewLayout creates a Layout for the given executable path and platform
// tag. The executable path must be non-empty; the tag must be a plain
// directory name.
func NewLayout(executablePath, platformTag string) (Layout, error) {
	if executablePath == "" {
		return Layout{}, errors.New(errors.ErrInvalidInput, "executable path must not be empty")
	}
	if platformTag == "" || strings.ContainsAny(platformTag, "/\x00") {
		return Layout{}, errors.Newf(errors.ErrInvalidInput, "invalid platform tag %q", platformTag)
	}
	return Layout{executable: executablePath, tag: platformTag}, nil
}

// Executable returns the path of the root executable
func (l Layout) Executable() string {
	return l.executable
}

// PlatformTag returns the tag used to scope the library directory
func (l Layout) PlatformTag() string {
	return l.tag
}

// LibraryDir returns the on-disk directory that holds all embedded
// libraries, computed relative to the executable's location
func (l Layout) LibraryDir() string {
	return filepath.Clean(filepath.Join(filepath.Dir(l.executable), "..", FrameworksDir, l.tag))
}

// LibraryPath returns the on-disk path of an embedded library
func (l Layout) LibraryPath(leaf string) string {
	return filepath.Join(l.LibraryDir(), leaf)
}

// ManifestPath returns the on-disk path of the embed manifest
func (l Layout) ManifestPath() string {
	return filepath.Join(filepath.Dir(l.LibraryDir()), ManifestFile)
}

// RelativeRef returns the bundle-relative reference recorded in binaries
// for an embedded library, resolved by the loader against the running
// executable's location
func (l Layout) RelativeRef(leaf string) string {
	return ExecutablePathToken + "/../" + FrameworksDir + "/" + l.tag + "/" + leaf
}

// IsRelativeRef reports whether a recorded reference is already in a
// loader-relative form. Any @-token reference counts: rewriting
// @loader_path or @rpath entries would break references the build chose
// deliberately.
func IsRelativeRef(path string) bool {
	return strings.HasPrefix(path, "@")
}
