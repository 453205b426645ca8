package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("FormController", "values generated", map[string]interface{}{"fields": 2})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "FormController", entry["component"])
	assert.Equal(t, "values generated", entry["message"])
	assert.EqualValues(t, 2, entry["fields"])
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("FormController", errors.New("dialog failed"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "dialog failed", entry["error"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("c", "hidden", nil)
	log.Info("c", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Warning("c", "shown", nil)
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
