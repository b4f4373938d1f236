package logger

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevels(t *testing.T) {
	Init(false, true)
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	Init(true, true)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestParseLevel(t *testing.T) {
	Init(false, true)
	require.NoError(t, ParseLevel("info"))
	assert.Equal(t, log.InfoLevel, log.GetLevel())

	assert.Error(t, ParseLevel("loud"))
}
