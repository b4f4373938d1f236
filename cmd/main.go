package main

import (
	"flag"
	"fmt"
	"os"

	"recscope/internal/logger"
	"recscope/internal/runner"
	"recscope/pkg/color"
	"recscope/pkg/interpreter"

	"github.com/charmbracelet/log"
)

// Main entry point for recscope.
func main() {
	options := runner.Runner{}
	var level string

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.BoolVar(&options.List, "l", false, "List scripts")
	flag.BoolVar(&options.ShowSource, "s", false, "Show script source")
	flag.BoolVar(&options.Dump, "d", false, "Dump the program block")
	flag.BoolVar(&options.Verify, "verify", false, "Compare output with the expectations manifest")
	flag.BoolVar(&options.Record, "record", false, "Print outputs as an expectations manifest")
	flag.IntVar(&options.MaxSteps, "max-steps", 0, "Step budget per script (0 = unlimited)")
	flag.IntVar(&options.MaxDepth, "max-depth", interpreter.DefaultMaxDepth, "Call depth budget per script")
	flag.StringVar(&level, "log-level", "", "Log level (debug, info, warn, error)")

	flag.Parse()
	options.Names = flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if level != "" {
		if err := logger.ParseLevel(level); err != nil {
			log.Fatal("Invalid log level", "level", level, "error", err)
		}
	}

	if options.Help {
		fmt.Printf("Usage: %s [options] [script...]\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if err := options.Run(); err != nil {
		log.Fatal("Run failed", "error", err)
	}
}
