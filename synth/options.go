package synth

import (
	"context"
	"fmt"
	"math"

	"github.com/jnystrom/eppp-go/synthlog"
)

// Topology restricts which binary operators the engine may compose during
// the extension step.
type Topology int

const (
	// Mixed allows both series and parallel extensions.
	Mixed Topology = iota
	// SeriesOnly allows only series extensions.
	SeriesOnly
	// ParallelOnly allows only parallel extensions.
	ParallelOnly
)

// String renders a Topology the way it appears on the CLI surface.
func (t Topology) String() string {
	switch t {
	case Mixed:
		return "mixed"
	case SeriesOnly:
		return "series"
	case ParallelOnly:
		return "parallel"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Options configures a Synthesize call.
type Options struct {
	// Tolerance is a relative error bound: the search stops as soon as it
	// finds a network whose |value - target| <= Tolerance*target.
	Tolerance float64

	// MaxComponents bounds the number of leaves the returned expression
	// may have. It must be >= 1.
	MaxComponents int

	// Topology restricts the operators the engine may compose.
	Topology Topology

	// Sink receives leveled progress messages. A nil Sink is treated as
	// synthlog.Discard.
	Sink synthlog.Sink

	// Ctx, if non-nil, is checked at the top of each outer-loop iteration
	// (never mid-recursion). Once ctx.Err() is non-nil, Synthesize returns
	// its current best-effort expression alongside ErrNoSolution.
	Ctx context.Context
}

// DefaultOptions returns the engine's default configuration: 1% relative
// tolerance, a 6-component budget, mixed topology, and a discarding sink.
func DefaultOptions() Options {
	return Options{
		Tolerance:     0.01,
		MaxComponents: 6,
		Topology:      Mixed,
		Sink:          synthlog.Discard,
	}
}

// Validate reports ErrInvalidConfiguration if o cannot be used to drive a
// search.
func (o Options) Validate() error {
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must be a non-negative finite number", ErrInvalidConfiguration)
	}
	if o.MaxComponents < 1 {
		return fmt.Errorf("%w: max components must be >= 1", ErrInvalidConfiguration)
	}
	switch o.Topology {
	case Mixed, SeriesOnly, ParallelOnly:
	default:
		return fmt.Errorf("%w: unknown topology %v", ErrInvalidConfiguration, o.Topology)
	}

	return nil
}
