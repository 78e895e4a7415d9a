package subtitle

import (
	"bufio"
	"io"

	"github.com/RobbyCBennett/Subs/internal/timing"
)

// Header is the first line of every Web Video Text Tracks file.
const Header = "WEBVTT"

const maxLineSize = 1 << 20

// expecting is the grammar position of the next line.
type expecting uint8

const (
	headerOrCueOrBlank expecting = iota
	cueIndexOrTimes
	cueIndexTimesOrBlank
	cueText
	cueTextOrBlank
)

// Rewriter shifts every cue of a document and writes it out as WEBVTT.
type Rewriter struct {
	Offsets timing.Offsets
	// TargetFormat is set when the source is already WEBVTT and may start with its header.
	TargetFormat bool
}

// Stats summarizes one rewrite.
type Stats struct {
	Lines   int
	Cues    int
	Dropped int
}

// Rewrite reads lines from r and writes the shifted document to w.
// It stops at the first structural error or negative time; everything
// written before that point is flushed and nothing after it.
func (rw Rewriter) Rewrite(r io.Reader, w io.Writer) (stats Stats, err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = &WriteError{Err: ferr}
		}
	}()

	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return stats, &WriteError{Err: err}
	}

	state := cueIndexTimesOrBlank
	if rw.TargetFormat {
		state = headerOrCueOrBlank
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	out := make([]byte, 0, 64)

	for scanner.Scan() {
		stats.Lines++
		line := scanner.Bytes()
		blank := len(line) == 0

		switch state {
		case headerOrCueOrBlank, cueIndexOrTimes, cueIndexTimesOrBlank:
			if blank {
				if state == cueIndexOrTimes {
					return stats, &StructureError{Line: stats.Lines, Reason: ReasonExpectedTimes}
				}
				continue
			}
			rng, ok := timing.ParseRange(line)
			if !ok {
				switch {
				case state == headerOrCueOrBlank && string(line) == Header:
				case state == cueIndexOrTimes && stats.Cues > 0:
					return stats, &StructureError{Line: stats.Lines, Reason: ReasonExpectedTimes}
				default:
					// Legacy cue index, or a preamble line before the first cue.
					stats.Dropped++
					state = cueIndexOrTimes
				}
				continue
			}
			rng = rng.Shift(rw.Offsets)
			if rng.Begin.IsNegative() {
				return stats, &NegativeTimeError{Line: stats.Lines, Side: SideBegin}
			}
			if rng.End.IsNegative() {
				return stats, &NegativeTimeError{Line: stats.Lines, Side: SideEnd}
			}
			out = append(out[:0], '\n')
			out = rng.AppendFormat(out)
			out = append(out, '\n')
			if _, err := bw.Write(out); err != nil {
				return stats, &WriteError{Err: err}
			}
			stats.Cues++
			state = cueText

		case cueText, cueTextOrBlank:
			if blank {
				if state == cueText {
					return stats, &StructureError{Line: stats.Lines, Reason: ReasonExpectedText}
				}
				state = cueIndexTimesOrBlank
				continue
			}
			if _, ok := timing.ParseRange(line); ok {
				return stats, &StructureError{Line: stats.Lines, Reason: ReasonExpectedBlank}
			}
			if _, err := bw.Write(line); err != nil {
				return stats, &WriteError{Err: err}
			}
			if err := bw.WriteByte('\n'); err != nil {
				return stats, &WriteError{Err: err}
			}
			state = cueTextOrBlank
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, &ReadError{Line: stats.Lines + 1, Err: err}
	}
	return stats, nil
}
