package timing

import (
	"math"
	"strings"
	"testing"
)

func TestParts_TruncatingDivision(t *testing.T) {
	tests := []int32{
		math.MinInt32,
		math.MinInt32 / 4 * 3,
		math.MinInt32 / 2,
		math.MinInt32 / 4,
		-1,
		0,
		1,
		math.MaxInt32 / 4,
		math.MaxInt32 / 2,
		math.MaxInt32 / 4 * 3,
		math.MaxInt32,
	}
	for _, ms := range tests {
		got := Milliseconds(ms).Parts()
		want := Parts{
			Hours:        ms / 3600000,
			Minutes:      ms / 60000 % 60,
			Seconds:      ms / 1000 % 60,
			Milliseconds: ms % 1000,
		}
		if got != want {
			t.Errorf("Milliseconds(%d).Parts() = %+v, want %+v", ms, got, want)
		}
	}
}

func TestParts_NegativeCount(t *testing.T) {
	// -1h 1m 1.001s: every field carries the sign.
	got := Milliseconds(-3661001).Parts()
	want := Parts{Hours: -1, Minutes: -1, Seconds: -1, Milliseconds: -1}
	if got != want {
		t.Fatalf("Parts() = %+v, want %+v", got, want)
	}

	// Under an hour the derived hours is 0, so no hour segment is written.
	if s := Milliseconds(-61500).String(); s != "-1:-1.-500" {
		t.Fatalf("String() = %q, want %q", s, "-1:-1.-500")
	}
	if s := Milliseconds(-5).String(); s != "00:00.0-5" {
		t.Fatalf("String() = %q, want %q", s, "00:00.0-5")
	}
}

func TestTime_String(t *testing.T) {
	tests := []struct {
		name string
		ms   int32
		want string
	}{
		{name: "zero", ms: 0, want: "00:00.000"},
		{name: "one second", ms: 1000, want: "00:01.000"},
		{name: "just under an hour", ms: 3599999, want: "59:59.999"},
		{name: "one hour", ms: 3600000, want: "01:00:00.000"},
		{name: "hundred hours", ms: 100 * 3600000, want: "100:00:00.000"},
		{name: "mixed", ms: 2*3600000 + 3*60000 + 4*1000 + 5, want: "02:03:04.005"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Milliseconds(tt.ms).String()
			if got != tt.want {
				t.Errorf("String() = [%v], want [%v]", got, tt.want)
			}
			if strings.Contains(got, "-") {
				t.Errorf("String() = [%v] contains a sign", got)
			}
		})
	}
}

func TestTime_Arithmetic(t *testing.T) {
	a, b := Milliseconds(1500), Milliseconds(-2000)
	if got := a.Add(b).Milliseconds(); got != -500 {
		t.Errorf("Add = %d, want -500", got)
	}
	if got := a.Sub(b).Milliseconds(); got != 3500 {
		t.Errorf("Sub = %d, want 3500", got)
	}
	if !a.Add(b).IsNegative() || a.IsNegative() || Milliseconds(0).IsNegative() {
		t.Errorf("IsNegative mismatch")
	}
	if a.Compare(b) != 1 || b.Compare(a) != -1 || a.Compare(a) != 0 {
		t.Errorf("Compare mismatch")
	}
}

func TestTime_AppendFormatDoesNotAllocate(t *testing.T) {
	buf := make([]byte, 0, 32)
	tm := Milliseconds(2*3600000 + 61001)
	allocs := testing.AllocsPerRun(100, func() {
		buf = tm.AppendFormat(buf[:0])
	})
	if allocs != 0 {
		t.Errorf("AppendFormat allocated %v times", allocs)
	}
}
