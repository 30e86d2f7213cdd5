// Package bundle provides centralized path handling for application
// bundles. It decides where embedded libraries live inside a bundle and
// how a library is referred to relative to the running executable, so the
// rest of the codebase never assembles bundle paths by hand.
package bundle
