package embedder

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/liblift/pkg/bundle"
	"github.com/arthur-debert/liblift/pkg/errors"
	"github.com/arthur-debert/liblift/pkg/filesystem"
	"github.com/arthur-debert/liblift/pkg/logging"
	"github.com/arthur-debert/liblift/pkg/macho"
	"github.com/arthur-debert/liblift/pkg/types"
	"github.com/rs/zerolog"
)

// EmbeddedLibrary records one library copied into the bundle
type EmbeddedLibrary struct {
	// Name is the library's leaf filename inside the library directory
	Name string

	// Source is the absolute path the library was copied from
	Source string
}

// Result summarizes one embedding run
type Result struct {
	// Libraries lists the libraries embedded by this run, in the order
	// they were copied
	Libraries []EmbeddedLibrary

	// Rewrites counts reference and identity rewrites performed
	Rewrites int
}

// Options configures an Embedder. FS, Tool and SourcePrefix are
// required.
type Options struct {
	FS           types.FS
	Tool         macho.Tool
	Layout       bundle.Layout
	SourcePrefix string

	// Logger overrides the default component logger
	Logger *zerolog.Logger
}

// Embedder walks the dynamic-link dependency graph of an executable,
// copies qualifying libraries into the bundle's library directory, and
// rewrites load-path metadata on every binary touched.
type Embedder struct {
	fs     types.FS
	tool   macho.Tool
	layout bundle.Layout
	prefix string
	log    zerolog.Logger

	// seen is the visited set, keyed by leaf filename. It is seeded
	// from the library directory's on-disk contents so a re-run over an
	// already embedded bundle is a no-op.
	seen map[string]bool

	result *Result
}

// New creates an Embedder from options
func New(opts Options) (*Embedder, error) {
	if opts.FS == nil {
		return nil, errors.New(errors.ErrInvalidInput, "embedder requires a filesystem")
	}
	if opts.Tool == nil {
		return nil, errors.New(errors.ErrInvalidInput, "embedder requires a binary metadata tool")
	}
	if opts.SourcePrefix == "" {
		return nil, errors.New(errors.ErrInvalidInput, "embedder requires a source prefix")
	}
	if opts.Layout.Executable() == "" {
		return nil, errors.New(errors.ErrInvalidInput, "embedder requires a bundle layout")
	}

	log := logging.GetLogger("embedder")
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return &Embedder{
		fs:     opts.FS,
		tool:   opts.Tool,
		layout: opts.Layout,
		prefix: opts.SourcePrefix,
		log:    log,
	}, nil
}

// Embed is the package-level convenience entry point: it builds the
// layout and embedder and runs a full embedding pass.
func Embed(fsys types.FS, tool macho.Tool, executablePath, sourcePrefix, platformTag string, extraLibraries []string) (*Result, error) {
	layout, err := bundle.NewLayout(executablePath, platformTag)
	if err != nil {
		return nil, err
	}

	e, err := New(Options{
		FS:           fsys,
		Tool:         tool,
		Layout:       layout,
		SourcePrefix: sourcePrefix,
	})
	if err != nil {
		return nil, err
	}

	return e.Run(extraLibraries)
}

// Run performs the three embedding passes: closure copy from the
// executable, forced extra libraries, then the global fixup pass. On
// success every reference in the executable and in every embedded
// library that pointed into the source prefix is bundle-relative.
func (e *Embedder) Run(extraLibraries []string) (*Result, error) {
	exe := e.layout.Executable()
	done := logging.LogOperationStart(e.log, "embed")
	defer done()

	if _, err := e.fs.Stat(exe); err != nil {
		return nil, errors.Wrapf(err, errors.ErrPrecondition, "executable %s does not exist", exe)
	}

	libDir := e.layout.LibraryDir()
	if err := e.fs.MkdirAll(libDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create library directory %s", libDir)
	}

	if err := e.seedVisited(); err != nil {
		return nil, err
	}
	e.result = &Result{}

	e.log.Info().
		Str("executable", exe).
		Str("prefix", e.prefix).
		Str("libraryDir", libDir).
		Msg("Embedding dependency closure")

	if err := e.embedClosure(exe); err != nil {
		return nil, err
	}

	for _, lib := range extraLibraries {
		if err := e.embedExtra(lib); err != nil {
			return nil, err
		}
	}

	if err := e.fixup(); err != nil {
		return nil, err
	}

	e.log.Info().
		Int("embedded", len(e.result.Libraries)).
		Int("rewrites", e.result.Rewrites).
		Msg("Embedding complete")

	return e.result, nil
}

// seedVisited reconstructs the visited set from the library directory's
// current contents
func (e *Embedder) seedVisited() error {
	e.seen = make(map[string]bool)

	entries, err := e.fs.ReadDir(e.layout.LibraryDir())
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read library directory %s", e.layout.LibraryDir())
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			e.seen[entry.Name()] = true
		}
	}
	return nil
}

// embedClosure inspects one binary and, for every reference under the
// source prefix, rewrites the reference and copies the library into the
// bundle, recursing into each newly copied library. The visited set is
// the cycle breaker: a library already present is never re-processed,
// which also dedupes diamond dependencies.
func (e *Embedder) embedClosure(binary string) error {
	refs, err := e.tool.ListReferences(binary)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInspect, "cannot list references of %s", binary)
	}

	self := filepath.Base(binary)
	for _, ref := range refs {
		if !strings.HasPrefix(ref.Path, e.prefix) {
			continue
		}

		target := e.layout.RelativeRef(ref.Leaf)

		// The binary's own identity entry is rewritten in place, not
		// copied
		if ref.Leaf == self {
			if err := e.rewriteIdentity(binary, target); err != nil {
				return err
			}
			continue
		}

		if err := e.rewriteReference(binary, ref.Path, target); err != nil {
			return err
		}

		if e.seen[ref.Leaf] {
			continue
		}
		if err := e.copyLibrary(ref.Path, ref.Leaf); err != nil {
			return err
		}
		if err := e.embedClosure(e.layout.LibraryPath(ref.Leaf)); err != nil {
			return err
		}
	}

	return nil
}

// embedExtra force-embeds one library the dependency scan cannot see,
// then pulls in its own closure
func (e *Embedder) embedExtra(library string) error {
	leaf := filepath.Base(library)
	if e.seen[leaf] {
		return nil
	}

	e.log.Debug().Str("library", library).Msg("Embedding extra library")

	if err := e.copyLibrary(library, leaf); err != nil {
		return err
	}

	dst := e.layout.LibraryPath(leaf)
	if err := e.rewriteIdentity(dst, e.layout.RelativeRef(leaf)); err != nil {
		return err
	}

	return e.embedClosure(dst)
}

// fixup re-scans the executable and every embedded library. A library
// copied early may still hold an absolute reference to a sibling copied
// later; any reference whose leaf matches an embedded library and which
// is not yet loader-relative is rewritten here. The pass only looks at
// final on-disk names, never at the source prefix, so it also repairs
// references introduced by the extra-libraries pass. It is idempotent
// and order-independent.
func (e *Embedder) fixup() error {
	targets := []string{e.layout.Executable()}

	entries, err := e.fs.ReadDir(e.layout.LibraryDir())
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read library directory %s", e.layout.LibraryDir())
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			targets = append(targets, e.layout.LibraryPath(entry.Name()))
		}
	}

	for _, binary := range targets {
		refs, err := e.tool.ListReferences(binary)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInspect, "cannot list references of %s", binary)
		}

		self := filepath.Base(binary)
		for _, ref := range refs {
			if bundle.IsRelativeRef(ref.Path) {
				continue
			}
			if !e.seen[ref.Leaf] {
				continue
			}

			target := e.layout.RelativeRef(ref.Leaf)
			if ref.Leaf == self {
				if err := e.rewriteIdentity(binary, target); err != nil {
					return err
				}
				continue
			}
			if err := e.rewriteReference(binary, ref.Path, target); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyLibrary copies one library into the library directory and marks it
// visited. A failed copy is fatal: a partial closure is not a valid end
// state.
func (e *Embedder) copyLibrary(source, leaf string) error {
	dst := e.layout.LibraryPath(leaf)

	e.log.Debug().Str("source", source).Str("dest", dst).Msg("Copying library into bundle")

	if err := filesystem.CopyFile(e.fs, source, dst); err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "cannot embed %s", source)
	}

	e.seen[leaf] = true
	e.result.Libraries = append(e.result.Libraries, EmbeddedLibrary{Name: leaf, Source: source})
	return nil
}

func (e *Embedder) rewriteReference(binary, oldPath, newPath string) error {
	e.log.Debug().
		Str("binary", binary).
		Str("from", oldPath).
		Str("to", newPath).
		Msg("Rewriting reference")

	err := e.withWritable(binary, func() error {
		return e.tool.ChangeReference(binary, oldPath, newPath)
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrRewrite, "cannot rewrite %s in %s", oldPath, binary)
	}

	e.result.Rewrites++
	return nil
}

func (e *Embedder) rewriteIdentity(binary, newID string) error {
	e.log.Debug().
		Str("binary", binary).
		Str("id", newID).
		Msg("Rewriting self-identity")

	err := e.withWritable(binary, func() error {
		return e.tool.ChangeIdentity(binary, newID)
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrRewrite, "cannot rewrite identity of %s", binary)
	}

	e.result.Rewrites++
	return nil
}

// withWritable runs fn with the binary temporarily writable and restores
// the recorded mode on every exit path. Binaries under a package manager
// prefix are often installed read-only; the run must never leave one
// with altered permissions.
func (e *Embedder) withWritable(path string, fn func() error) error {
	info, err := e.fs.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}
	mode := info.Mode().Perm()

	if err := e.fs.Chmod(path, mode|0200); err != nil {
		return errors.Wrapf(err, errors.ErrPermission, "cannot make %s writable", path)
	}
	defer func() {
		if err := e.fs.Chmod(path, mode); err != nil {
			e.log.Warn().Err(err).Str("path", path).Msg("Failed to restore file mode")
		}
	}()

	return fn()
}
