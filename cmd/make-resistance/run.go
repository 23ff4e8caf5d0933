package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/jnystrom/eppp-go/eseries"
	"github.com/jnystrom/eppp-go/metricparse"
	"github.com/jnystrom/eppp-go/synth"
	"github.com/jnystrom/eppp-go/synthlog"
)

// unboundedComponents is the practical component budget substituted for
// --num-components values that request "unbounded" (zero or negative):
// exhaustive branch-and-bound search is exponential, and no real preferred-
// value network needs more components than this to approach tolerance.
const unboundedComponents = 12

// run parses args, drives a synthesis, writes the result to stdout (or
// errors to stderr), and returns the process exit code. It never calls
// os.Exit so it can be exercised directly in tests.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("make-resistance", flag.ContinueOnError)
	fs.SetOutput(stderr)

	tolerance := fs.Float64("tolerance", 0.01, "relative tolerance")
	numComponents := fs.Int("num-components", -1, "max component count (negative means unbounded)")
	seriesName := fs.String("series", "E6", "preferred-number series: E3 E6 E12 E24 E48 E96 E192")
	minResistance := fs.String("min-resistance", "10", "lower bound of the catalogue band")
	maxResistance := fs.String("max-resistance", "1e7", "upper bound of the catalogue band")
	topologyName := fs.String("topology", "mixed", "mixed | series | parallel")
	printError := fs.Bool("print-error", false, "print the relative error alongside the result")
	omitResult := fs.Bool("omit-result", false, "suppress printing the synthesized network")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "make-resistance: exactly one positional argument (target) is required")
		return 2
	}

	target, err := metricparse.Parse(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "make-resistance: invalid target: %v\n", err)
		return 2
	}
	minR, err := metricparse.Parse(*minResistance)
	if err != nil {
		fmt.Fprintf(stderr, "make-resistance: invalid --min-resistance: %v\n", err)
		return 2
	}
	maxR, err := metricparse.Parse(*maxResistance)
	if err != nil {
		fmt.Fprintf(stderr, "make-resistance: invalid --max-resistance: %v\n", err)
		return 2
	}
	topology, err := parseTopology(*topologyName)
	if err != nil {
		fmt.Fprintf(stderr, "make-resistance: %v\n", err)
		return 2
	}

	catalogue, err := eseries.Generate(*seriesName, minR, maxR)
	if err != nil {
		fmt.Fprintf(stderr, "make-resistance: %v\n", err)
		return 2
	}

	maxComponents := *numComponents
	if maxComponents <= 0 {
		maxComponents = unboundedComponents
	}

	opts := synth.DefaultOptions()
	opts.Tolerance = *tolerance
	opts.MaxComponents = maxComponents
	opts.Topology = topology
	opts.Sink = synthlog.Discard

	result, err := synth.Synthesize(target, catalogue, opts)
	if err != nil && !errors.Is(err, synth.ErrNoSolution) {
		fmt.Fprintf(stderr, "make-resistance: %v\n", err)
		return 2
	}

	if !*omitResult {
		fmt.Fprintln(stdout, result.String())
	}
	if *printError {
		relErr := (result.Evaluate() - target) / target
		fmt.Fprintf(stdout, "relative error: %+.4g\n", relErr)
	}

	if errors.Is(err, synth.ErrNoSolution) {
		return 1
	}

	return 0
}

func parseTopology(name string) (synth.Topology, error) {
	switch name {
	case "mixed":
		return synth.Mixed, nil
	case "series":
		return synth.SeriesOnly, nil
	case "parallel":
		return synth.ParallelOnly, nil
	default:
		return 0, fmt.Errorf("invalid --topology %q: must be mixed, series, or parallel", name)
	}
}
