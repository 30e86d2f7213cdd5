// pkg/buildrun/buildrun_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: sh on PATH, real filesystem (t.TempDir)
// PURPOSE: Test sequential build-step execution with scoped env and cwd

package buildrun_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/liblift/pkg/buildrun"
	"github.com/arthur-debert/liblift/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSteps(t *testing.T) {
	tmp := t.TempDir()
	runner := buildrun.NewRunner()

	steps := []buildrun.Step{
		{
			Name: "configure",
			Argv: []string{"sh", "-c", "printf configured > configure.out"},
			Dir:  tmp,
		},
		{
			Name: "compile",
			Argv: []string{"sh", "-c", "printf \"$LIBLIFT_TEST_CC\" > compile.out"},
			Dir:  tmp,
			Env:  map[string]string{"LIBLIFT_TEST_CC": "clang"},
		},
	}

	require.NoError(t, runner.Run(context.Background(), steps))

	data, err := os.ReadFile(filepath.Join(tmp, "configure.out"))
	require.NoError(t, err)
	assert.Equal(t, "configured", string(data))

	data, err = os.ReadFile(filepath.Join(tmp, "compile.out"))
	require.NoError(t, err)
	assert.Equal(t, "clang", string(data), "env overlay must reach the step")

	// The overlay is scoped to the step, not the process
	assert.Empty(t, os.Getenv("LIBLIFT_TEST_CC"))
}

func TestRunStopsOnFirstFailure(t *testing.T) {
	tmp := t.TempDir()
	runner := buildrun.NewRunner()

	steps := []buildrun.Step{
		{Name: "fail", Argv: []string{"sh", "-c", "exit 3"}, Dir: tmp},
		{Name: "never", Argv: []string{"sh", "-c", "printf x > never.out"}, Dir: tmp},
	}

	err := runner.Run(context.Background(), steps)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBuild))

	_, statErr := os.Stat(filepath.Join(tmp, "never.out"))
	assert.Error(t, statErr, "steps after a failure must not run")
}

func TestRunEmptyStep(t *testing.T) {
	runner := buildrun.NewRunner()

	err := runner.Run(context.Background(), []buildrun.Step{{Name: "empty"}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}
