package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"WARN":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestJSONLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, "debug")
	l.Info().Str("pool", "address=0x1").Msg("created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "created", line["message"])
	assert.Equal(t, "address=0x1", line["pool"])
	assert.Contains(t, line, "time")
}

func TestJSONLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, "warn")
	l.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	saved := Logger
	t.Cleanup(func() { Logger = saved })

	Logger = NewJSONLogger(&buf, "info")
	cl := WithComponent("events")
	cl.Info().Msg("hi")
	assert.Contains(t, buf.String(), `"component":"events"`)
}
