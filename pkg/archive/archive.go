// Package archive packages a finished bundle directory into a
// distributable tar.xz file. It is a thin collaborator around the
// embedding engine: by the time it runs, the bundle is already
// self-contained.
package archive

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"

	"github.com/arthur-debert/liblift/pkg/errors"
	"github.com/arthur-debert/liblift/pkg/logging"
)

// Create archives bundleDir into a tar.xz file at outPath. Entry names
// are rooted at the bundle directory's base name so the archive unpacks
// into a single directory. Modes and symlinks are preserved.
func Create(bundleDir, outPath string) error {
	log := logging.GetLogger("archive")
	done := logging.LogOperationStart(log, "package")
	defer done()

	info, err := os.Stat(bundleDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrPrecondition, "bundle directory %s does not exist", bundleDir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%s is not a directory", bundleDir)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot create archive %s", outPath)
	}
	defer out.Close()

	xzw, err := xz.NewWriter(out)
	if err != nil {
		return errors.Wrap(err, errors.ErrArchive, "cannot initialize xz writer")
	}
	tw := tar.NewWriter(xzw)

	base := filepath.Base(bundleDir)
	root := filepath.Dir(bundleDir)

	walkErr := filepath.Walk(bundleDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		var link string
		if info.Mode()&os.ModeSymlink != 0 {
			if link, err = os.Readlink(path); err != nil {
				return err
			}
		}

		hdr, err := tar.FileInfoHeader(info, link)
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)

		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(tw, f)
		return err
	})
	if walkErr != nil {
		return errors.Wrapf(walkErr, errors.ErrArchive, "cannot archive %s", bundleDir)
	}

	if err := tw.Close(); err != nil {
		return errors.Wrap(err, errors.ErrArchive, "cannot finalize tar stream")
	}
	if err := xzw.Close(); err != nil {
		return errors.Wrap(err, errors.ErrArchive, "cannot finalize xz stream")
	}

	log.Info().Str("bundle", base).Str("archive", outPath).Msg("Bundle packaged")
	return nil
}

// DefaultOutputPath returns the archive path for a bundle directory:
// the directory name with a .tar.xz suffix, in the same parent
func DefaultOutputPath(bundleDir string) string {
	return filepath.Clean(bundleDir) + ".tar.xz"
}
