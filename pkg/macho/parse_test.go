// pkg/macho/parse_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test parsing of otool -L listings, including skip semantics

package macho_test

import (
	"testing"

	"github.com/arthur-debert/liblift/pkg/macho"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleListing = `/usr/local/bin/gimp:
	/usr/local/opt/gtk/lib/libgtk-3.0.dylib (compatibility version 2404.0.0, current version 2404.28.0)
	/usr/local/opt/glib/lib/libglib-2.0.0.dylib (compatibility version 7801.0.0, current version 7801.4.0)
	/usr/lib/libSystem.B.dylib (compatibility version 1.0.0, current version 1319.100.3)
`

func TestParseListing(t *testing.T) {
	refs := macho.ParseListing(sampleListing, zerolog.Nop())

	require.Len(t, refs, 3)

	assert.Equal(t, "/usr/local/opt/gtk/lib/libgtk-3.0.dylib", refs[0].Path)
	assert.Equal(t, "/usr/local/opt/gtk/lib", refs[0].Dir)
	assert.Equal(t, "libgtk-3.0.dylib", refs[0].Leaf)

	assert.Equal(t, "libSystem.B.dylib", refs[2].Leaf)
}

func TestParseListingDylibIdentity(t *testing.T) {
	// For a dylib, the first entry of the listing is its own
	// self-identity reference
	listing := "/usr/local/opt/glib/lib/libglib-2.0.0.dylib:\n" +
		"\t/usr/local/opt/glib/lib/libglib-2.0.0.dylib (compatibility version 7801.0.0, current version 7801.4.0)\n" +
		"\t/usr/lib/libiconv.2.dylib (compatibility version 7.0.0, current version 7.0.0)\n"

	refs := macho.ParseListing(listing, zerolog.Nop())

	require.Len(t, refs, 2)
	assert.Equal(t, "libglib-2.0.0.dylib", refs[0].Leaf)
}

func TestParseListingSkipsMalformedLines(t *testing.T) {
	listing := "/usr/local/bin/app:\n" +
		"\t/usr/local/lib/libgood.dylib (compatibility version 1.0.0, current version 1.0.0)\n" +
		"\tthis line has no version suffix\n" +
		"\t/usr/local/lib/another.dylib (compatibility version 1.0.0, current version 1.2.0)\n"

	refs := macho.ParseListing(listing, zerolog.Nop())

	require.Len(t, refs, 2, "malformed lines must be skipped, not fatal")
	assert.Equal(t, "libgood.dylib", refs[0].Leaf)
	assert.Equal(t, "another.dylib", refs[1].Leaf)
}

func TestParseListingPathWithSpaces(t *testing.T) {
	listing := "/Applications/My App.app/Contents/MacOS/app:\n" +
		"\t/usr/local/opt/my lib/libspaces.dylib (compatibility version 1.0.0, current version 1.0.0)\n"

	refs := macho.ParseListing(listing, zerolog.Nop())

	require.Len(t, refs, 1)
	assert.Equal(t, "/usr/local/opt/my lib/libspaces.dylib", refs[0].Path)
	assert.Equal(t, "libspaces.dylib", refs[0].Leaf)
}

func TestParseListingEmpty(t *testing.T) {
	assert.Empty(t, macho.ParseListing("", zerolog.Nop()))
	assert.Empty(t, macho.ParseListing("/usr/bin/true:\n", zerolog.Nop()))
}
