package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/RobbyCBennett/Subs/internal/timing"
)

var (
	ErrInvalidOffset    = errors.New("invalid seconds difference")
	ErrTooManyOffsets   = errors.New("expected at most a begin and an end seconds difference")
	ErrUnsupportedInput = errors.New("expected .srt or .vtt input file")
)

// Format is the cue format of an input file.
type Format int

const (
	// FormatSRT is the line-numbered legacy format.
	FormatSRT Format = iota
	// FormatVTT is Web Video Text Tracks.
	FormatVTT
)

func (f Format) String() string {
	if f == FormatVTT {
		return "vtt"
	}
	return "srt"
}

// Job describes one invocation: where to read, where to write and how far to shift.
type Job struct {
	Input   string
	Output  string
	Format  Format
	Offsets timing.Offsets
}

// NewJob validates the input path and offset arguments.
func NewJob(input string, offsets []string) (Job, error) {
	format, err := DetectFormat(input)
	if err != nil {
		return Job{}, err
	}
	o, err := ParseOffsets(offsets)
	if err != nil {
		return Job{}, err
	}
	return Job{
		Input:   input,
		Output:  DeriveOutputPath(input),
		Format:  format,
		Offsets: o,
	}, nil
}

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch filepath.Ext(path) {
	case ".srt":
		return FormatSRT, nil
	case ".vtt":
		return FormatVTT, nil
	}
	return 0, fmt.Errorf("%w, but got %q", ErrUnsupportedInput, path)
}

// DeriveOutputPath swaps a .srt extension for .vtt; a .vtt path is its own output.
func DeriveOutputPath(input string) string {
	if filepath.Ext(input) == ".srt" {
		return strings.TrimSuffix(input, ".srt") + ".vtt"
	}
	return input
}

// ParseOffsets turns zero, one or two seconds arguments into an offset pair.
// A single argument shifts both begin and end times.
func ParseOffsets(args []string) (timing.Offsets, error) {
	var o timing.Offsets
	switch len(args) {
	case 0:
		return o, nil
	case 1:
		t, ok := timing.ParseSeconds([]byte(args[0]))
		if !ok {
			return o, fmt.Errorf("failed to parse seconds difference %q: %w", args[0], ErrInvalidOffset)
		}
		return timing.Offsets{Begin: t, End: t}, nil
	case 2:
		begin, ok := timing.ParseSeconds([]byte(args[0]))
		if !ok {
			return o, fmt.Errorf("failed to parse begin seconds difference %q: %w", args[0], ErrInvalidOffset)
		}
		end, ok := timing.ParseSeconds([]byte(args[1]))
		if !ok {
			return o, fmt.Errorf("failed to parse end seconds difference %q: %w", args[1], ErrInvalidOffset)
		}
		return timing.Offsets{Begin: begin, End: end}, nil
	}
	return o, ErrTooManyOffsets
}
