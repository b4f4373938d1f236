package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"recscope/pkg/ast"
	"recscope/pkg/codegen"
	"recscope/pkg/color"
	"recscope/pkg/interpreter"
	"recscope/pkg/scripts"

	"github.com/charmbracelet/log"
	"github.com/kr/pretty"
)

// ErrVerifyFailed is returned when a script's output differs from the manifest.
var ErrVerifyFailed = errors.New("verification failed")

type Runner struct {
	Help       bool     // Show help message
	Verbose    bool     // Enable verbose output
	NoColor    bool     // Disable colored output
	List       bool     // List the scripts and exit
	ShowSource bool     // Print each script's source before running it
	Dump       bool     // Dump the program block with kr/pretty
	Verify     bool     // Compare outputs with the expectations manifest
	Record     bool     // Print the current outputs as a manifest
	MaxSteps   int      // Step budget per script (0 = unlimited)
	MaxDepth   int      // Call depth budget per script (0 = interpreter default)
	Names      []string // Scripts to run, all when empty
	Out        io.Writer

	Expectations map[string]string // Replaces the embedded manifest when set
}

// Run executes the selected scripts according to the options set.
func (opts *Runner) Run() error {
	out := opts.output()

	if opts.List {
		for _, s := range scripts.All() {
			fmt.Fprintf(out, "%-14s %s\n", s.Name, color.GrayText(s.Description))
		}
		return nil
	}

	selected, err := opts.selected()
	if err != nil {
		return err
	}

	if opts.Record {
		return opts.record(out, selected)
	}

	expected := opts.Expectations
	if opts.Verify && expected == nil {
		if expected, err = Expected(); err != nil {
			return err
		}
	}

	failed := 0
	for _, s := range selected {
		got, err := opts.runScript(out, s)
		if err != nil {
			// lines printed before the failure
			fmt.Fprint(out, got)
			return fmt.Errorf("%s: %w", s.Name, err)
		}

		if !opts.Verify {
			if opts.Verbose {
				fmt.Fprintln(out, color.GreenText("\n=== Program Output ==="))
			}
			fmt.Fprint(out, got)
			continue
		}

		want, ok := expected[s.Name]
		if !ok {
			log.Warn("No expectation recorded", "script", s.Name)
			fmt.Fprintln(out, color.Failure(s.Name+": no expectation"))
			failed++
			continue
		}
		if got != want {
			fmt.Fprintln(out, color.Failure(s.Name))
			for _, d := range pretty.Diff(lines(want), lines(got)) {
				fmt.Fprintln(out, "    "+d)
			}
			failed++
			continue
		}
		fmt.Fprintln(out, color.Success(s.Name))
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d scripts", ErrVerifyFailed, failed, len(selected))
	}
	return nil
}

// runScript lowers and interprets one script, returning what it printed.
func (opts *Runner) runScript(out io.Writer, s scripts.Script) (string, error) {
	log.Info("Running script", "script", s.Name, "origin", s.Origin)

	prog := s.Program()
	if opts.ShowSource {
		fmt.Fprintln(out, color.GreenText(fmt.Sprintf("=== Source: %s ===", s.Name)))
		fmt.Fprint(out, ast.Format(prog))
	}

	instructions, semanticErrors := codegen.Generate(prog)
	if len(semanticErrors) > 0 {
		fmt.Fprintln(out, color.BrightRedText("=== Semantic Errors ==="))
		fmt.Fprintln(out, semanticErrors[0])
		return "", fmt.Errorf("lowering failed with %d errors", len(semanticErrors))
	}

	if opts.Verbose {
		printThreeAddressCode(out, instructions)
	}

	if opts.Dump {
		pretty.Fprintf(out, "%# v\n", instructions)
	}

	var buf bytes.Buffer
	intr := interpreter.NewInterpreter(instructions, opts.interpreterOptions(&buf)...)
	if err := intr.Run(); err != nil {
		return buf.String(), fmt.Errorf("interpretation failed: %w", err)
	}
	log.Debug("Script finished", "script", s.Name, "steps", intr.Steps(), "functions", intr.Defined())

	return buf.String(), nil
}

func (opts *Runner) record(out io.Writer, selected []scripts.Script) error {
	entries := make([]Expectation, 0, len(selected))
	for _, s := range selected {
		got, err := opts.runScript(io.Discard, s)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		entries = append(entries, Expectation{Name: s.Name, Output: got})
	}
	return WriteExpectations(out, entries)
}

func (opts *Runner) interpreterOptions(w io.Writer) []interpreter.Option {
	iopts := []interpreter.Option{interpreter.WithWriter(w)}
	if opts.MaxSteps > 0 {
		iopts = append(iopts, interpreter.WithMaxSteps(opts.MaxSteps))
	}
	if opts.MaxDepth > 0 {
		iopts = append(iopts, interpreter.WithMaxDepth(opts.MaxDepth))
	}
	return iopts
}

func (opts *Runner) selected() ([]scripts.Script, error) {
	if len(opts.Names) == 0 {
		return scripts.All(), nil
	}

	selected := make([]scripts.Script, 0, len(opts.Names))
	for _, name := range opts.Names {
		s, ok := scripts.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown script %q (known: %s)", name, strings.Join(scripts.Names(), ", "))
		}
		selected = append(selected, s)
	}
	return selected, nil
}

func (opts *Runner) output() io.Writer {
	if opts.Out == nil {
		return os.Stdout
	}
	return opts.Out
}

func printThreeAddressCode(out io.Writer, instructions []codegen.Instruction) {
	fmt.Fprintln(out, color.GreenText("\n=== Generated Three-Address Code ==="))
	if len(instructions) == 0 {
		fmt.Fprintln(out, color.GrayText("No code generated."))
		return
	}

	for i, instr := range instructions {
		arg1 := ""
		arg2 := ""
		arg3 := ""

		if instr.Arg1 != nil {
			arg1 = fmt.Sprintf("%v", instr.Arg1)
		}
		if instr.Arg2 != nil {
			arg2 = fmt.Sprintf("%v", instr.Arg2)
		}
		if instr.Arg3 != nil {
			arg3 = fmt.Sprintf("%v", instr.Arg3)
		}

		fmt.Fprintf(out, "%s: (%s, %s, %s, %s)\n",
			color.Position(i),
			color.YellowText(string(instr.Op)),
			color.BlueText(arg1),
			color.BlueText(arg2),
			color.BlueText(arg3))
	}
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
