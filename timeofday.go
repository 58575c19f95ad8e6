package chrono

import "fmt"

// Time is a civil time-of-day reading: hour [0,23], minute [0,59],
// second [0,59], nanosecond [0,999_999_999]. There is no leap-second
// representation.
type Time struct {
	hour, minute, second uint8
	nanosecond           uint32
}

// NewTime validates and constructs a Time.
func NewTime(hour, minute, second, nanosecond int) (Time, error) {
	value := fmt.Sprintf("%02d:%02d:%02d.%09d", hour, minute, second, nanosecond)
	if hour < 0 || hour > 23 {
		return Time{}, newRangeError(value, "hour", int64(hour), 0, 23)
	}
	if minute < 0 || minute > 59 {
		return Time{}, newRangeError(value, "minute", int64(minute), 0, 59)
	}
	if second < 0 || second > 59 {
		return Time{}, newRangeError(value, "second", int64(second), 0, 59)
	}
	if nanosecond < 0 || nanosecond > 999_999_999 {
		return Time{}, newRangeError(value, "nanosecond", int64(nanosecond), 0, 999_999_999)
	}
	return Time{hour: uint8(hour), minute: uint8(minute), second: uint8(second), nanosecond: uint32(nanosecond)}, nil
}

func mustNewTime(hour, minute, second, nanosecond int) Time {
	t, err := NewTime(hour, minute, second, nanosecond)
	if err != nil {
		panic(err)
	}
	return t
}

// Midnight is 00:00:00.
var Midnight = Time{}

func (t Time) Hour() int       { return int(t.hour) }
func (t Time) Minute() int     { return int(t.minute) }
func (t Time) Second() int     { return int(t.second) }
func (t Time) Nanosecond() int { return int(t.nanosecond) }

// secondsSinceMidnight returns the whole seconds elapsed since midnight.
func (t Time) secondsSinceMidnight() int {
	return int(t.hour)*3600 + int(t.minute)*60 + int(t.second)
}

// timeFromNanosSinceMidnight builds a Time, along with the number of whole
// days overflowed (positive or negative), from a possibly out-of-range
// nanosecond-of-day count.
func timeFromNanosSinceMidnight(nanos int64) (Time, int64) {
	const dayNanos = 86_400_000_000_000
	dayOverflow := nanos / dayNanos
	rem := nanos % dayNanos
	if rem < 0 {
		rem += dayNanos
		dayOverflow--
	}
	sec := rem / 1_000_000_000
	nsec := rem % 1_000_000_000
	h := sec / 3600
	sec %= 3600
	m := sec / 60
	s := sec % 60
	return Time{hour: uint8(h), minute: uint8(m), second: uint8(s), nanosecond: uint32(nsec)}, dayOverflow
}

func (t Time) nanosSinceMidnight() int64 {
	return int64(t.secondsSinceMidnight())*1_000_000_000 + int64(t.nanosecond)
}

func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	if t.nanosecond != 0 {
		s += formatFraction(int(t.nanosecond))
	}
	return s
}

// Compare returns -1, 0, or 1 as t is before, equal to, or after other.
func (t Time) Compare(other Time) int {
	return cmpInt64(t.nanosSinceMidnight(), other.nanosSinceMidnight())
}

func (t Time) Equal(other Time) bool { return t.Compare(other) == 0 }

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// formatFraction renders a nanosecond fraction as ".nnnnnnnnn" with
// trailing zeros trimmed, keeping at least one digit of precision used.
func formatFraction(nanos int) string {
	if nanos == 0 {
		return ""
	}
	s := fmt.Sprintf(".%09d", nanos)
	for len(s) > 2 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return s
}
