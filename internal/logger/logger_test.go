package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("production", &buf)

	log.Info().Str("user_id", "u1").Msg("conversation rebuilt")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "u1", line["user_id"])
	assert.Equal(t, "conversation rebuilt", line["message"])
	assert.Contains(t, line, "time")
}

func TestNew_DevelopmentIsHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	log := New("development", &buf)

	log.Warn().Msg("push skipped")

	assert.Contains(t, buf.String(), "push skipped")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
