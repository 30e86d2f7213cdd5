package liblift

// User-facing message strings, collected in one place
const (
	MsgRootShort = "Make application bundles self-contained"
	MsgRootLong  = `liblift builds, relinks, and packages relocatable application bundles.

Given a freshly built executable inside a bundle, liblift discovers the
transitive closure of dynamic libraries the executable pulls in from a
package manager prefix, copies them into the bundle's Frameworks
directory, and rewrites every install name so the bundle runs on
machines without that prefix.`

	MsgEmbedShort = "Embed a binary's dependency closure into its bundle"
	MsgEmbedLong  = `Embed walks the dynamic-link dependency graph of the executable, copies
every library found under the source prefix into the bundle's library
directory, and rewrites all references to @executable_path-relative
form. Running embed on an already embedded bundle is a no-op.`

	MsgBundleShort = "Run the build steps, then embed the dependency closure"
	MsgBundleLong  = `Bundle runs the build steps from the recipe file, then embeds the
resulting executable's dependency closure. This is the full pipeline
short of packaging.`

	MsgPackageShort = "Archive a self-contained bundle into a tar.xz file"

	MsgConfigShort = "Print the effective configuration"

	MsgVersionShort = "Print version information"

	MsgCompletionShort = "Generate shell completion script"

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Path to the recipe file (default: ./liblift.toml)"
	MsgFlagPrefix  = "Source prefix; only references under it are embedded"
	MsgFlagTag     = "Platform tag scoping the bundle's library directory"
	MsgFlagExtra   = "Extra library to force-embed (repeatable)"
	MsgFlagOutput  = "Archive output path (default: <bundle>.tar.xz)"
)
