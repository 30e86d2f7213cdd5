// Package embedder implements the dependency-closure and relinking
// engine. Given a built executable inside an application bundle, it
// copies the transitive closure of the executable's package-manager
// sourced dylibs into the bundle's library directory and rewrites every
// recorded install name to an @executable_path-relative form, so the
// bundle runs on machines without the package manager prefix.
//
// The traversal is synchronous and depth-first: every copy and rewrite
// mutates shared state (the library directory doubles as the visited
// set), so later steps depend on earlier ones having completed.
package embedder
