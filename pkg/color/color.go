package color

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

// ANSI color indexes understood by every termenv profile above Ascii
const (
	Red    = "1"
	Green  = "2"
	Yellow = "3"
	Blue   = "4"
	Cyan   = "6"
	Gray   = "8"

	BrightRed = "9"
)

var (
	colorEnabled = true
	profile      = termenv.ANSI
)

func init() {
	profile = termenv.EnvColorProfile()
	if os.Getenv("NO_COLOR") != "" || !isTerminal() || profile == termenv.Ascii {
		colorEnabled = false
	}
}

func isTerminal() bool {
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

func EnableColor(enable bool) {
	colorEnabled = enable
	if enable && profile == termenv.Ascii {
		profile = termenv.ANSI
	}
}

func IsColorEnabled() bool {
	return colorEnabled
}

// Profile returns the termenv profile used when color is enabled
func Profile() termenv.Profile {
	if !colorEnabled {
		return termenv.Ascii
	}
	return profile
}

func Colorize(color, text string) string {
	if !colorEnabled {
		return text
	}
	return profile.String(text).Foreground(profile.Color(color)).String()
}

func RedText(text string) string {
	return Colorize(Red, text)
}

func BrightRedText(text string) string {
	return Colorize(BrightRed, text)
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func BlueText(text string) string {
	return Colorize(Blue, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

func BoldText(text string) string {
	if !colorEnabled {
		return text
	}
	return profile.String(text).Bold().String()
}

// Success prefixes a verification line with "ok".
func Success(message string) string {
	return GreenText("ok") + " " + message
}

// Failure prefixes a verification line with "FAIL".
func Failure(message string) string {
	return BrightRedText("FAIL") + " " + message
}

func Position(index int) string {
	pos := fmt.Sprintf("%d", index)
	if !colorEnabled {
		return pos
	}
	return CyanText(pos)
}
