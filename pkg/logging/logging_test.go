package logging

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesFormattedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	logger, f, err := New(path)
	require.NoError(t, err)
	logger.Info().Msg("run started")
	logger.Error().Msg("something failed")
	require.NoError(t, f.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lineFormat := regexp.MustCompile(`(?m)^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - INFO - run started$`)
	assert.Regexp(t, lineFormat, string(content))
	assert.Contains(t, string(content), "- ERROR - something failed")
}

func TestNew_AppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	logger, f, err := New(path)
	require.NoError(t, err)
	logger.Info().Msg("first run")
	require.NoError(t, f.Close())

	logger, f, err = New(path)
	require.NoError(t, err)
	logger.Info().Msg("second run")
	require.NoError(t, f.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "first run")
	assert.Contains(t, string(content), "second run")
}

func TestNew_UnwritableDestination_ReturnsError(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "missing", "run.log"))
	require.Error(t, err)
}
