package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bomsmithLogger "github.com/allisonsierra/bomsmith/bomsmith/logger"
)

var _ bomsmithLogger.Logger = (*LogrusLogger)(nil)

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		expected  logrus.Level
	}{
		{verbosity: 0, expected: logrus.ErrorLevel},
		{verbosity: 1, expected: logrus.InfoLevel},
		{verbosity: 2, expected: logrus.DebugLevel},
		{verbosity: 3, expected: logrus.TraceLevel},
		{verbosity: 7, expected: logrus.TraceLevel},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, LevelFromVerbosity(test.verbosity))
	}
}

func TestNewLogrusLogger_File(t *testing.T) {
	location := filepath.Join(t.TempDir(), "bomsmith.log")
	l := NewLogrusLogger(LogrusConfig{
		EnableFile:   true,
		Structured:   true,
		Level:        logrus.InfoLevel,
		FileLocation: location,
	})

	l.Debugf("hidden %d", 1)
	l.Infof("wrote %s", "bom.json")

	contents, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `"msg":"wrote bom.json"`)
	assert.NotContains(t, string(contents), "hidden")
}
