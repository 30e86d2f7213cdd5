package filesystem

import (
	"github.com/arthur-debert/liblift/pkg/errors"
	"github.com/arthur-debert/liblift/pkg/types"
)

// CopyFile copies src to dst on the given filesystem, preserving the
// source file's permission bits.
func CopyFile(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", src)
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", src)
	}

	if err := fsys.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst)
	}

	// WriteFile permissions are subject to the umask on a real
	// filesystem, so set the mode explicitly
	if err := fsys.Chmod(dst, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot set mode on %s", dst)
	}

	return nil
}
