package timing

// Arrow separates the two timestamps of a cue time range.
const Arrow = " --> "

// Range is the begin and end of one cue.
type Range struct {
	Begin Time
	End   Time
}

// Shift applies the begin offset to Begin and the end offset to End.
func (r Range) Shift(o Offsets) Range {
	return Range{Begin: r.Begin.Add(o.Begin), End: r.End.Add(o.End)}
}

// AppendFormat appends "begin --> end".
func (r Range) AppendFormat(b []byte) []byte {
	b = r.Begin.AppendFormat(b)
	b = append(b, Arrow...)
	return r.End.AppendFormat(b)
}

func (r Range) String() string {
	var buf [40]byte
	return string(r.AppendFormat(buf[:0]))
}

type secondsState uint8

const (
	signSecondsOrDot secondsState = iota
	secondsOrDot
	secondsDotOrEnd
	millis1
	millis2OrEnd
	millis3OrEnd
	secondsEnd
)

// ParseSeconds parses a signed decimal number of seconds with at most three
// fractional digits, matching ^[+-]?(\.\d+|\d+(\.\d+)?)$ with the fraction
// limited to milliseconds.
func ParseSeconds(input []byte) (Time, bool) {
	state := signSecondsOrDot
	var sign int32 = 1
	var seconds, millis int32

	for _, c := range input {
		digit := c >= '0' && c <= '9'
		switch {
		case state == signSecondsOrDot && c == '-':
			sign = -1
			state = secondsOrDot
		case state == signSecondsOrDot && c == '+':
			state = secondsOrDot
		case (state == signSecondsOrDot || state == secondsOrDot || state == secondsDotOrEnd) && digit:
			seconds = seconds*10 + int32(c-'0')
			state = secondsDotOrEnd
		case (state == signSecondsOrDot || state == secondsOrDot || state == secondsDotOrEnd) && c == '.':
			state = millis1
		case state == millis1 && digit:
			millis = 100 * int32(c-'0')
			state = millis2OrEnd
		case state == millis2OrEnd && digit:
			millis += 10 * int32(c-'0')
			state = millis3OrEnd
		case state == millis3OrEnd && digit:
			millis += int32(c - '0')
			state = secondsEnd
		default:
			return Time{}, false
		}
	}

	switch state {
	case secondsDotOrEnd, millis2OrEnd, millis3OrEnd, secondsEnd:
	default:
		return Time{}, false
	}
	return Time{ms: sign * (seconds*msPerSecond + millis)}, true
}

type stampState uint8

const (
	hourOrMinute1 stampState = iota
	hourOrMinute2
	colon1
	minuteOrSecond1
	minuteOrSecond2
	colon2OrFraction
	second1
	second2
	fraction
	milli1
	milli2
	milli3
)

// ParseTimestamp recognizes (HH:)?MM:SS[,.]mmm at the start of input and
// reports the number of bytes it consumed. With a single colon the leading
// pair is minutes, not hours. Field values are not range checked.
func ParseTimestamp(input []byte) (Time, int, bool) {
	state := hourOrMinute1
	var first, second int32
	var p Parts

	for i, c := range input {
		digit := c >= '0' && c <= '9'
		n := int32(c - '0')
		switch {
		case state == hourOrMinute1 && digit:
			first = 10 * n
			state = hourOrMinute2
		case state == hourOrMinute2 && digit:
			first += n
			state = colon1
		case state == colon1 && c == ':':
			state = minuteOrSecond1
		case state == minuteOrSecond1 && digit:
			second = 10 * n
			state = minuteOrSecond2
		case state == minuteOrSecond2 && digit:
			second += n
			state = colon2OrFraction
		case state == colon2OrFraction && c == ':':
			p.Hours, p.Minutes = first, second
			state = second1
		case state == colon2OrFraction && (c == ',' || c == '.'):
			p.Minutes, p.Seconds = first, second
			state = milli1
		case state == second1 && digit:
			p.Seconds = 10 * n
			state = second2
		case state == second2 && digit:
			p.Seconds += n
			state = fraction
		case state == fraction && (c == ',' || c == '.'):
			state = milli1
		case state == milli1 && digit:
			p.Milliseconds = 100 * n
			state = milli2
		case state == milli2 && digit:
			p.Milliseconds += 10 * n
			state = milli3
		case state == milli3 && digit:
			p.Milliseconds += n
			return FromParts(p), i + 1, true
		default:
			return Time{}, 0, false
		}
	}
	return Time{}, 0, false
}

// ParseRange recognizes "<timestamp> --> <timestamp>" at the start of input.
// Bytes after the second timestamp, such as legacy cue settings, are ignored.
func ParseRange(input []byte) (Range, bool) {
	begin, n, ok := ParseTimestamp(input)
	if !ok {
		return Range{}, false
	}
	input = input[n:]
	if len(input) < len(Arrow) || string(input[:len(Arrow)]) != Arrow {
		return Range{}, false
	}
	end, _, ok := ParseTimestamp(input[len(Arrow):])
	if !ok {
		return Range{}, false
	}
	return Range{Begin: begin, End: end}, true
}
