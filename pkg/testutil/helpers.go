package testutil

import (
	"testing"

	"github.com/arthur-debert/liblift/pkg/filesystem"
	"github.com/arthur-debert/liblift/pkg/types"
	"github.com/spf13/afero"
)

// NewMemFS returns an in-memory types.FS for tests
func NewMemFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// ReferencePaths lists the recorded reference paths of a fake binary,
// failing the test on error
func ReferencePaths(t *testing.T, tool *FakeTool, path string) []string {
	t.Helper()

	refs, err := tool.ListReferences(path)
	if err != nil {
		t.Fatalf("ListReferences(%s) failed: %v", path, err)
	}

	paths := make([]string, len(refs))
	for i, ref := range refs {
		paths[i] = ref.Path
	}
	return paths
}
