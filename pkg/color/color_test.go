package color_test

import (
	"strings"
	"testing"

	"recscope/pkg/color"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestDisabledColorIsPlain(t *testing.T) {
	prev := color.IsColorEnabled()
	defer color.EnableColor(prev)

	color.EnableColor(false)
	assert.Equal(t, "text", color.RedText("text"))
	assert.Equal(t, "text", color.BoldText("text"))
	assert.Equal(t, "ok done", color.Success("done"))
	assert.Equal(t, "FAIL oops", color.Failure("oops"))
	assert.Equal(t, "12", color.Position(12))
	assert.Equal(t, termenv.Ascii, color.Profile())
}

func TestEnabledColorWrapsText(t *testing.T) {
	prev := color.IsColorEnabled()
	defer color.EnableColor(prev)

	color.EnableColor(true)
	got := color.RedText("text")
	assert.Contains(t, got, "text")
	assert.True(t, strings.HasPrefix(got, "\x1b["), "expected an escape sequence, got %q", got)
	assert.NotEqual(t, termenv.Ascii, color.Profile())
}
