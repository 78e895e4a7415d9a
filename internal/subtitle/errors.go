package subtitle

import "fmt"

// Reasons carried by a StructureError.
const (
	ReasonExpectedTimes = "expected times then text"
	ReasonExpectedText  = "expected text"
	ReasonExpectedBlank = "expected a blank line before times"
)

// Side names which time of a cue went negative.
type Side string

const (
	SideBegin Side = "begin"
	SideEnd   Side = "end"
)

// StructureError reports a line that breaks the cue grammar.
type StructureError struct {
	Line   int
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s at line %d", e.Reason, e.Line)
}

// NegativeTimeError reports a cue whose shifted begin or end time fell below zero.
type NegativeTimeError struct {
	Line int
	Side Side
}

func (e *NegativeTimeError) Error() string {
	return fmt.Sprintf("%s seconds difference is too negative for the cue at line %d", e.Side, e.Line)
}

// ReadError wraps a failure reading the source.
type ReadError struct {
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read line %d: %v", e.Line, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps a failure writing the output.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write output: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
