package model

import (
	"errors"
	"testing"
)

func TestParseOffsets(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		begin int32
		end   int32
		err   error
	}{
		{name: "none", args: nil},
		{name: "both", args: []string{"+1"}, begin: 1000, end: 1000},
		{name: "begin and end", args: []string{".5", "-0.25"}, begin: 500, end: -250},
		{name: "bad single", args: []string{"1s"}, err: ErrInvalidOffset},
		{name: "bad begin", args: []string{"x", "1"}, err: ErrInvalidOffset},
		{name: "bad end", args: []string{"1", "1.0001"}, err: ErrInvalidOffset},
		{name: "too many", args: []string{"1", "2", "3"}, err: ErrTooManyOffsets},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOffsets(tt.args)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ParseOffsets(%q) error = %v, want %v", tt.args, err, tt.err)
			}
			if err != nil {
				return
			}
			if got.Begin.Milliseconds() != tt.begin || got.End.Milliseconds() != tt.end {
				t.Errorf("ParseOffsets(%q) = %v / %v, want %d / %d", tt.args, got.Begin, got.End, tt.begin, tt.end)
			}
		})
	}
}

func TestNewJob(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		format Format
		err    error
	}{
		{name: "legacy", input: "movies/Alien.srt", output: "movies/Alien.vtt", format: FormatSRT},
		{name: "target", input: "Alien.vtt", output: "Alien.vtt", format: FormatVTT},
		{name: "unsupported", input: "Alien.ass", err: ErrUnsupportedInput},
		{name: "upper case extension", input: "Alien.SRT", err: ErrUnsupportedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, err := NewJob(tt.input, []string{"1"})
			if !errors.Is(err, tt.err) {
				t.Fatalf("NewJob(%q) error = %v, want %v", tt.input, err, tt.err)
			}
			if err != nil {
				return
			}
			if job.Output != tt.output || job.Format != tt.format {
				t.Errorf("NewJob(%q) = %+v, want output %q format %v", tt.input, job, tt.output, tt.format)
			}
		})
	}
}
