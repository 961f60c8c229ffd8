package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("debug", "json", &buf)
	require.NoError(t, err)

	logger.Debug("resolved option", "name", "TARGET_HW")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "resolved option", record["msg"])
	assert.Equal(t, "TARGET_HW", record["name"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", "text", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_InvalidInput(t *testing.T) {
	_, err := New("verbose", "text", &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid log-level")

	_, err = New("info", "xml", &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid log-format")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)
}
