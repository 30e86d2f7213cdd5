// Package testutil provides test doubles for liblift tests: an
// in-memory implementation of the macho.Tool boundary and helpers for
// authoring fake binaries on a types.FS.
package testutil
