package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/internal/logger"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.NewWithWriter(&buf, "debug", true)
	require.NoError(t, err)
	l.Debug("built")
	logger.Sync(l)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "built", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.NewWithWriter(&buf, "warn", false)
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown")
	logger.Sync(l)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logger.New("loud", false)
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}
