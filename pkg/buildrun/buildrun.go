// Package buildrun invokes a project's own build system. It is a thin
// collaborator: liblift does not understand configure scripts or
// makefiles, it just runs the steps the recipe lists, in order, and
// stops on the first failure.
//
// Environment and working directory are scoped per step. Nothing here
// mutates the process-wide environment or current directory, so
// concurrent callers and later pipeline stages observe no side effects.
package buildrun

import (
	"context"
	"os"
	"os/exec"
	"sort"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/liblift/pkg/errors"
	"github.com/arthur-debert/liblift/pkg/logging"
)

// Step is one build command: an argv, an optional working directory and
// an environment overlay applied on top of the inherited environment
type Step struct {
	Name string            `koanf:"name"`
	Argv []string          `koanf:"argv"`
	Dir  string            `koanf:"dir"`
	Env  map[string]string `koanf:"env"`
}

// Runner executes build steps sequentially
type Runner struct {
	log zerolog.Logger
}

// NewRunner creates a Runner
func NewRunner() *Runner {
	return &Runner{log: logging.GetLogger("buildrun")}
}

// Run executes the steps in order, aborting on the first non-zero exit
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		if err := r.runStep(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, step Step) error {
	if len(step.Argv) == 0 {
		return errors.Newf(errors.ErrConfigValid, "build step %q has no command", step.Name)
	}

	done := logging.LogOperationStart(r.log, "build step "+step.Name)
	defer done()
	logging.LogCommand(step.Argv[0], step.Argv[1:])

	cmd := exec.CommandContext(ctx, step.Argv[0], step.Argv[1:]...)
	cmd.Dir = step.Dir
	cmd.Env = overlayEnv(step.Env)
	cmd.Stdout = r.log.With().Str("step", step.Name).Logger()
	cmd.Stderr = r.log.With().Str("step", step.Name).Str("stream", "stderr").Logger()

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrBuild, "build step %q failed", step.Name)
	}
	return nil
}

// overlayEnv applies the step's environment on top of the inherited one,
// in deterministic key order
func overlayEnv(overlay map[string]string) []string {
	if len(overlay) == 0 {
		return os.Environ()
	}

	env := os.Environ()
	keys := make([]string, 0, len(overlay))
	for k := range overlay {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+overlay[k])
	}
	return env
}
