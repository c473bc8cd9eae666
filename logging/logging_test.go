package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"INFO":  zerolog.InfoLevel,
		"Warn":  zerolog.WarnLevel,
		"ERROR": zerolog.ErrorLevel,
		"trace": zerolog.TraceLevel,
		"":      zerolog.InfoLevel,
		"loud":  zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestSetup_WritesConsoleFormat(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
		Logger = zerolog.Nop()
	})

	var buf bytes.Buffer
	Setup("WARN", &buf)

	log := For("world")
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "component=world")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
