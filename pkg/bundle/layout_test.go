// pkg/bundle/layout_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test bundle path policy - library directory and relative refs

package bundle_test

import (
	"testing"

	"github.com/arthur-debert/liblift/pkg/bundle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayoutValidation(t *testing.T) {
	tests := []struct {
		name        string
		executable  string
		tag         string
		expectError bool
	}{
		{
			name:       "valid",
			executable: "/Applications/App.app/Contents/MacOS/app",
			tag:        "darwin-14",
		},
		{
			name:        "empty_executable",
			executable:  "",
			tag:         "darwin-14",
			expectError: true,
		},
		{
			name:        "empty_tag",
			executable:  "/Applications/App.app/Contents/MacOS/app",
			tag:         "",
			expectError: true,
		},
		{
			name:        "tag_with_separator",
			executable:  "/Applications/App.app/Contents/MacOS/app",
			tag:         "darwin/14",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bundle.NewLayout(tt.executable, tt.tag)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLayoutPaths(t *testing.T) {
	layout, err := bundle.NewLayout("/Applications/App.app/Contents/MacOS/app", "darwin-14")
	require.NoError(t, err)

	assert.Equal(t, "/Applications/App.app/Contents/Frameworks/darwin-14", layout.LibraryDir())
	assert.Equal(t, "/Applications/App.app/Contents/Frameworks/darwin-14/libfoo.dylib",
		layout.LibraryPath("libfoo.dylib"))
	assert.Equal(t, "/Applications/App.app/Contents/Frameworks/embedded-libraries.yaml",
		layout.ManifestPath())
	assert.Equal(t, "@executable_path/../Frameworks/darwin-14/libfoo.dylib",
		layout.RelativeRef("libfoo.dylib"))
}

func TestLayoutTagScoping(t *testing.T) {
	exe := "/Applications/App.app/Contents/MacOS/app"

	a, err := bundle.NewLayout(exe, "darwin-13")
	require.NoError(t, err)
	b, err := bundle.NewLayout(exe, "darwin-14")
	require.NoError(t, err)

	assert.NotEqual(t, a.LibraryDir(), b.LibraryDir(),
		"different platform tags must not collide")
}

func TestIsRelativeRef(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "@executable_path/../Frameworks/darwin-14/libfoo.dylib", want: true},
		{path: "@loader_path/libbar.dylib", want: true},
		{path: "@rpath/libbaz.dylib", want: true},
		{path: "/usr/local/lib/libfoo.dylib", want: false},
		{path: "/usr/lib/libSystem.B.dylib", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bundle.IsRelativeRef(tt.path), "path %s", tt.path)
	}
}
