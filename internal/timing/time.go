package timing

import "strconv"

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// Time is a cue timestamp or offset, stored as whole milliseconds.
type Time struct {
	ms int32
}

// Parts is the display decomposition of a Time.
type Parts struct {
	Hours        int32
	Minutes      int32
	Seconds      int32
	Milliseconds int32
}

// Offsets holds the shift applied to every begin time and every end time of a document.
type Offsets struct {
	Begin Time
	End   Time
}

// Milliseconds builds a Time from a raw millisecond count.
func Milliseconds(ms int32) Time {
	return Time{ms: ms}
}

// FromParts builds a Time from its display fields. Fields are not range checked.
func FromParts(p Parts) Time {
	return Time{ms: p.Hours*msPerHour + p.Minutes*msPerMinute + p.Seconds*msPerSecond + p.Milliseconds}
}

// Milliseconds returns the raw millisecond count.
func (t Time) Milliseconds() int32 {
	return t.ms
}

func (t Time) Add(o Time) Time {
	return Time{ms: t.ms + o.ms}
}

func (t Time) Sub(o Time) Time {
	return Time{ms: t.ms - o.ms}
}

// Compare returns -1, 0 or +1.
func (t Time) Compare(o Time) int {
	switch {
	case t.ms < o.ms:
		return -1
	case t.ms > o.ms:
		return 1
	}
	return 0
}

func (t Time) IsNegative() bool {
	return t.ms < 0
}

// Parts derives the display fields with truncating division on the signed count,
// so every field of a negative Time carries the sign.
func (t Time) Parts() Parts {
	return Parts{
		Hours:        t.ms / msPerHour,
		Minutes:      t.ms / msPerMinute % 60,
		Seconds:      t.ms / msPerSecond % 60,
		Milliseconds: t.ms % msPerSecond,
	}
}

// AppendFormat appends MM:SS.mmm, or HH:MM:SS.mmm when the hours part is not zero.
func (t Time) AppendFormat(b []byte) []byte {
	p := t.Parts()
	if p.Hours != 0 {
		b = appendPadded(b, p.Hours, 2)
		b = append(b, ':')
	}
	b = appendPadded(b, p.Minutes, 2)
	b = append(b, ':')
	b = appendPadded(b, p.Seconds, 2)
	b = append(b, '.')
	return appendPadded(b, p.Milliseconds, 3)
}

func (t Time) String() string {
	var buf [16]byte
	return string(t.AppendFormat(buf[:0]))
}

// appendPadded left-fills the decimal form of n with '0' up to width.
// The sign of a negative n is part of the decimal form, not moved in front of the fill.
func appendPadded(b []byte, n int32, width int) []byte {
	var digits [12]byte
	d := strconv.AppendInt(digits[:0], int64(n), 10)
	for i := len(d); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, d...)
}
