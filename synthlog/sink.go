package synthlog

import (
	"fmt"
	"log"
	"os"
)

// Sink receives leveled progress messages from a synthesis call. Level is
// one of the three levels documented in the package doc; implementations
// are free to drop messages above a configured threshold but must not
// panic or block.
type Sink interface {
	Log(level int, format string, args ...interface{})
}

// Discard is a Sink that drops every message. It is the zero-cost default
// for callers that do not want engine progress logged.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Log(int, string, ...interface{}) {}

// StdSink adapts a standard library *log.Logger into a Sink, filtering out
// any message whose level exceeds Threshold.
type StdSink struct {
	Logger    *log.Logger
	Threshold int
}

// NewStdSink returns a StdSink writing to os.Stderr with the given
// threshold. A threshold of 0 silences every level; 3 logs everything the
// engine emits.
func NewStdSink(threshold int) *StdSink {
	return &StdSink{
		Logger:    log.New(os.Stderr, "", log.LstdFlags),
		Threshold: threshold,
	}
}

// Log writes format/args at level if level is within the configured
// threshold.
func (s *StdSink) Log(level int, format string, args ...interface{}) {
	if s == nil || s.Logger == nil || level > s.Threshold {
		return
	}
	s.Logger.Printf(fmt.Sprintf("[L%d] %s", level, format), args...)
}
