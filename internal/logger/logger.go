package logger

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init initializes the logger. Logs go to stderr so stdout carries only script output.
func Init(debug, noColor bool) {
	log.SetDefault(log.NewWithOptions(os.Stderr,
		log.Options{
			ReportCaller:    debug,
			ReportTimestamp: false,
			Prefix:          "RECSCOPE",
		}))

	// charmbracelet/log levels are ordered, so warn also lets errors through
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}

// ParseLevel sets the level from a name such as "debug" or "error".
func ParseLevel(name string) error {
	level, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}
