package testutil

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/arthur-debert/liblift/pkg/macho"
	"github.com/arthur-debert/liblift/pkg/types"
)

// FakeTool implements macho.Tool against fake binaries whose metadata is
// stored as text in the file content itself. Because the metadata
// travels with the file bytes, copying a fake binary through the FS
// carries its references along, just like copying a real Mach-O file.
//
// Fake binary format, one entry per line:
//
//	id <path>    self-identity reference (dylibs)
//	dep <path>   dependency reference
//
// ListReferences returns the id entry first, matching otool -L output
// for a dylib.
type FakeTool struct {
	FS types.FS

	// Error injection, keyed by binary path
	FailListOn    map[string]error
	FailRewriteOn map[string]error

	// Rewrites counts successful ChangeReference/ChangeIdentity calls
	Rewrites int
}

// NewFakeTool creates a FakeTool over the given filesystem
func NewFakeTool(fsys types.FS) *FakeTool {
	return &FakeTool{
		FS:            fsys,
		FailListOn:    make(map[string]error),
		FailRewriteOn: make(map[string]error),
	}
}

// WriteBinary authors a fake binary at path with the given mode,
// self-identity (empty for executables) and dependency references
func WriteBinary(fsys types.FS, path string, mode fs.FileMode, id string, deps ...string) error {
	var b strings.Builder
	if id != "" {
		fmt.Fprintf(&b, "id %s\n", id)
	}
	for _, dep := range deps {
		fmt.Fprintf(&b, "dep %s\n", dep)
	}
	return fsys.WriteFile(path, []byte(b.String()), mode)
}

func (f *FakeTool) ListReferences(path string) ([]macho.Reference, error) {
	if err, ok := f.FailListOn[path]; ok {
		return nil, err
	}

	data, err := f.FS.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var refs []macho.Reference
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			continue
		}
		switch parts[0] {
		case "id", "dep":
			refs = append(refs, macho.NewReference(parts[1]))
		}
	}
	return refs, nil
}

func (f *FakeTool) ChangeReference(path, oldPath, newPath string) error {
	return f.rewrite(path, "dep "+oldPath, "dep "+newPath)
}

func (f *FakeTool) ChangeIdentity(path, newID string) error {
	data, err := f.FS.ReadFile(path)
	if err != nil {
		return err
	}
	if err, ok := f.FailRewriteOn[path]; ok {
		return err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	replaced := false
	for i, line := range lines {
		if strings.HasPrefix(line, "id ") {
			lines[i] = "id " + newID
			replaced = true
			break
		}
	}
	if !replaced {
		lines = append([]string{"id " + newID}, lines...)
	}

	f.Rewrites++
	return f.writeBack(path, strings.Join(lines, "\n")+"\n")
}

func (f *FakeTool) rewrite(path, oldEntry, newEntry string) error {
	data, err := f.FS.ReadFile(path)
	if err != nil {
		return err
	}
	if err, ok := f.FailRewriteOn[path]; ok {
		return err
	}

	content := string(data)
	if !strings.Contains(content, oldEntry+"\n") {
		return fmt.Errorf("no reference %q in %s", oldEntry, path)
	}

	f.Rewrites++
	return f.writeBack(path, strings.Replace(content, oldEntry+"\n", newEntry+"\n", 1))
}

func (f *FakeTool) writeBack(path, content string) error {
	info, err := f.FS.Stat(path)
	if err != nil {
		return err
	}
	return f.FS.WriteFile(path, []byte(content), info.Mode().Perm())
}
