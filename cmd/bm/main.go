package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akalin/gobm/bm"
	"github.com/akalin/gobm/exitcode"
	"github.com/akalin/gobm/gf2"
)

type logDelegate struct{}

func (logDelegate) OnStep(n int, d byte, c gf2.Poly, l int) {
	if d == 0 {
		fmt.Printf("  n=%d: no discrepancy, L=%d\n", n, l)
	} else {
		fmt.Printf("  n=%d: discrepancy, C(x)=%s, L=%d\n", n, c, l)
	}
}

func printUsageAndExit(name string, code exitcode.Exitcode) {
	name = filepath.Base(name)
	fmt.Printf(`
Usage:
  %s [-v] <bits>...

Each argument is a 0, a 1, or a run of them like 110011.

`, name)
	os.Exit(int(code))
}

// parseSequence turns the arguments into a sequence. Anything that
// isn't a 0 or 1 character is passed through as its digit value (or
// -1 if it isn't a digit), so that bm.Validate can reject it with
// the position where it occurred.
func parseSequence(args []string) []int {
	var s []int
	for _, arg := range args {
		for _, r := range arg {
			switch {
			case r >= '0' && r <= '9':
				s = append(s, int(r-'0'))
			default:
				s = append(s, -1)
			}
		}
	}
	return s
}

func run(args []string, verbose bool) exitcode.Exitcode {
	s := parseSequence(args)
	if len(s) == 0 {
		return exitcode.InvalidCommandLineArguments
	}

	// Nothing is printed for a sequence with any bad element.
	if err := bm.Validate(s); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid sequence: %s\n", err)
		return exitcode.InvalidSequence
	}

	var delegate bm.SynthesizerDelegate
	if verbose {
		delegate = logDelegate{}
	}
	syn := bm.NewSynthesizer(delegate)
	for _, bit := range s {
		if err := syn.Push(bit); err != nil {
			panic(err)
		}
	}

	fmt.Printf("Input Sequence:\t%v\n", s)
	fmt.Printf("\tResult:\t%q\n\tLength: %d\n", syn.Poly().String(), syn.Length())
	return exitcode.Success
}

func main() {
	name := os.Args[0]
	args := os.Args[1:]

	verbose := false
	if len(args) > 0 && args[0] == "-v" {
		verbose = true
		args = args[1:]
	}

	if len(args) == 0 {
		printUsageAndExit(name, exitcode.InvalidCommandLineArguments)
	}

	code := run(args, verbose)
	if code == exitcode.InvalidCommandLineArguments {
		printUsageAndExit(name, code)
	}
	os.Exit(int(code))
}
