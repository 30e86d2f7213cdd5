// Package macho is the binary-metadata boundary of liblift.
//
// It exposes the three operations the embedder needs on Mach-O binaries:
// listing recorded dependency references, changing one reference, and
// changing a dylib's own identity. The production implementation drives
// the platform's otool and install_name_tool; tests substitute an
// in-memory fake so the traversal logic runs without real binaries.
package macho
