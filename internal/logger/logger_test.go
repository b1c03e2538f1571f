package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupParsesLevel(t *testing.T) {
	var buf bytes.Buffer
	l := SetupWithWriter("WARN", false, &buf)
	t.Cleanup(func() { SetupWithWriter("info", false, &bytes.Buffer{}) })

	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())

	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"message":"kept"`)
	assert.Contains(t, out, `"service":"medicare-api"`)
}

func TestSetupFallsBackToInfo(t *testing.T) {
	l := SetupWithWriter("verbose", false, &bytes.Buffer{})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}
