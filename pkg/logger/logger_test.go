package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// ─────────────────────────────────────────────────────────────
// parseLevel
// ─────────────────────────────────────────────────────────────

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("info"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
}

func TestParseLevel_DesconocidoOVacioCaeAInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}

func TestParseLevel_IgnoraMayusculas(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("Warn"))
}

func TestNew_NoEsNil(t *testing.T) {
	log := New(Config{Env: "production", Level: "info"})
	assert.NotNil(t, log)
	assert.NotNil(t, log.Info())
}
