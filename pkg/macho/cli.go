package macho

import (
	"os/exec"
	"strings"

	"github.com/arthur-debert/liblift/pkg/errors"
	"github.com/arthur-debert/liblift/pkg/logging"
	"github.com/rs/zerolog"
)

// Default tool names, resolved through PATH
const (
	DefaultOtool           = "otool"
	DefaultInstallNameTool = "install_name_tool"
)

// CLITool implements Tool by driving otool and install_name_tool.
// A non-zero exit from install_name_tool is reported as an error: a
// silently failed rewrite produces a bundle that crashes at load time.
type CLITool struct {
	Otool           string
	InstallNameTool string

	logger zerolog.Logger
}

// NewCLITool creates a CLITool using the given tool names; empty names
// fall back to the defaults
func NewCLITool(otool, installNameTool string) *CLITool {
	if otool == "" {
		otool = DefaultOtool
	}
	if installNameTool == "" {
		installNameTool = DefaultInstallNameTool
	}
	return &CLITool{
		Otool:           otool,
		InstallNameTool: installNameTool,
		logger:          logging.GetLogger("macho"),
	}
}

// ListReferences lists the recorded dependency references of the binary
// at path via otool -L
func (t *CLITool) ListReferences(path string) ([]Reference, error) {
	logging.LogCommand(t.Otool, []string{"-L", path})

	out, err := exec.Command(t.Otool, "-L", path).Output()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInspect, "%s -L failed on %s", t.Otool, path)
	}

	return ParseListing(string(out), t.logger), nil
}

// ChangeReference rewrites one dependency reference via
// install_name_tool -change
func (t *CLITool) ChangeReference(path, oldPath, newPath string) error {
	return t.run(path, "-change", oldPath, newPath, path)
}

// ChangeIdentity rewrites a dylib's self-identity reference via
// install_name_tool -id
func (t *CLITool) ChangeIdentity(path, newID string) error {
	return t.run(path, "-id", newID, path)
}

func (t *CLITool) run(binary string, args ...string) error {
	logging.LogCommand(t.InstallNameTool, args)

	out, err := exec.Command(t.InstallNameTool, args...).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, errors.ErrRewrite, "%s %s failed on %s: %s",
			t.InstallNameTool, args[0], binary, strings.TrimSpace(string(out)))
	}
	return nil
}
