// pkg/logging/logging_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test logger setup and contextual loggers

package logging_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/liblift/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{name: "default_warn", verbosity: 0, wantLevel: zerolog.WarnLevel},
		{name: "v_info", verbosity: 1, wantLevel: zerolog.InfoLevel},
		{name: "vv_debug", verbosity: 2, wantLevel: zerolog.DebugLevel},
		{name: "vvv_trace", verbosity: 3, wantLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logging.SetupLogger(tt.verbosity)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	logger := logging.GetLogger("embedder")
	// Smoke test: the contextual logger must be usable
	logger.Debug().Msg("test message")
}

func TestLogFilePath(t *testing.T) {
	path := logging.LogFilePath()
	assert.True(t, strings.HasSuffix(path, "liblift.log"),
		"log file path should end in liblift.log, got %s", path)
	assert.Contains(t, path, "liblift")
}
