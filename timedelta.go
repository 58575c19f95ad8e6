package chrono

import (
	"fmt"
	"math/bits"
	"strings"
)

// maxTimeDeltaSeconds bounds TimeDelta so it composes safely with Instant's
// range: +/- 9999 * 366 * 86_400 seconds.
const maxTimeDeltaSeconds int64 = 9999 * 366 * 86_400

// TimeDelta is a signed span of nanoseconds, stored as a (seconds, nanos)
// pair in the same normalized-borrow form as Instant: nanoseconds is always
// in [0, 999_999_999], and the sign of the delta lives entirely in seconds
// (a delta of -0.5s is seconds=-1, nanoseconds=500_000_000). This is also
// the pickled byte layout: (i64 seconds, u32 nanos).
type TimeDelta struct {
	seconds int64
	nanos   uint32
}

// NewTimeDelta constructs a TimeDelta from whole seconds and nanoseconds;
// nanos may be negative or exceed 1e9 and will be normalized.
func NewTimeDelta(seconds int64, nanos int64) (TimeDelta, error) {
	extra := nanos / 1_000_000_000
	rem := nanos % 1_000_000_000
	seconds += extra
	if rem < 0 {
		rem += 1_000_000_000
		seconds--
	}
	if seconds < -maxTimeDeltaSeconds || seconds > maxTimeDeltaSeconds {
		return TimeDelta{}, newRangeError(fmt.Sprintf("%ds%dns", seconds, rem), "time-delta-seconds", seconds, -maxTimeDeltaSeconds, maxTimeDeltaSeconds)
	}
	return TimeDelta{seconds: seconds, nanos: uint32(rem)}, nil
}

// Hours, Minutes, Seconds, Milliseconds, Microseconds, Nanoseconds each
// construct a TimeDelta equal to the given count of that unit; all normalize
// into the (seconds, nanos) pair.
func Hours(n int64) TimeDelta        { d, _ := NewTimeDelta(n*3600, 0); return d }
func Minutes(n int64) TimeDelta      { d, _ := NewTimeDelta(n*60, 0); return d }
func Seconds(n int64) TimeDelta      { d, _ := NewTimeDelta(n, 0); return d }
func Milliseconds(n int64) TimeDelta { d, _ := NewTimeDelta(0, n*1_000_000); return d }
func Microseconds(n int64) TimeDelta { d, _ := NewTimeDelta(0, n*1_000); return d }
func Nanoseconds(n int64) TimeDelta  { d, _ := NewTimeDelta(0, n); return d }

// ZeroTimeDelta is the zero-length TimeDelta.
var ZeroTimeDelta = TimeDelta{}

// TotalNanoseconds returns the delta as a single nanosecond count. The full
// TimeDelta range exceeds what an int64 nanosecond count can hold (the
// window is roughly +/-292 years); callers holding wider deltas should work
// from WholeSeconds instead. Arithmetic inside this package never routes
// through this accessor for that reason.
func (d TimeDelta) TotalNanoseconds() int64 {
	return d.seconds*1_000_000_000 + int64(d.nanos)
}

func (d TimeDelta) IsZero() bool { return d.seconds == 0 && d.nanos == 0 }

func (d TimeDelta) IsNegative() bool { return d.seconds < 0 }

// InSeconds returns the delta as a floating-point number of seconds.
func (d TimeDelta) InSeconds() float64 {
	return float64(d.seconds) + float64(d.nanos)/1e9
}

// InMinutes and InHours return the delta in coarser units, fractional.
func (d TimeDelta) InMinutes() float64 { return d.InSeconds() / 60 }
func (d TimeDelta) InHours() float64   { return d.InSeconds() / 3600 }

// WholeSeconds returns the delta truncated toward zero to whole seconds,
// with the leftover nanoseconds (carrying the truncated sign).
func (d TimeDelta) WholeSeconds() (seconds int64, nanos int) {
	s := d.seconds
	n := int64(d.nanos)
	if s < 0 && n != 0 {
		s++
		n -= 1_000_000_000
	}
	return s, int(n)
}

// Add returns d + other.
func (d TimeDelta) Add(other TimeDelta) (TimeDelta, error) {
	return NewTimeDelta(d.seconds+other.seconds, int64(d.nanos)+int64(other.nanos))
}

// Sub returns d - other.
func (d TimeDelta) Sub(other TimeDelta) (TimeDelta, error) {
	return NewTimeDelta(d.seconds-other.seconds, int64(d.nanos)-int64(other.nanos))
}

// Neg returns -d.
func (d TimeDelta) Neg() (TimeDelta, error) {
	return NewTimeDelta(-d.seconds, -int64(d.nanos))
}

// MulInt returns d * n, with overflow reported as a range error.
func (d TimeDelta) MulInt(n int64) (TimeDelta, error) {
	secs := d.seconds * n
	if d.seconds != 0 && secs/d.seconds != n {
		return TimeDelta{}, newRangeError(fmt.Sprintf("%ds*%d", d.seconds, n), "time-delta-seconds", d.seconds, -maxTimeDeltaSeconds, maxTimeDeltaSeconds)
	}
	nn := int64(d.nanos)
	nanos := nn * n
	if nn != 0 && nanos/nn != n {
		return TimeDelta{}, newRangeError(fmt.Sprintf("%dns*%d", nn, n), "time-delta-nanoseconds", nn, 0, 999_999_999)
	}
	return NewTimeDelta(secs, nanos)
}

// MulFloat returns d * f, truncating the result to whole nanoseconds. As
// with every float-accepting boundary operation here, precision degrades
// for magnitudes beyond 2^53 nanoseconds.
func (d TimeDelta) MulFloat(f float64) (TimeDelta, error) {
	total := d.InSeconds() * f
	secs := int64(total)
	nanos := int64((total - float64(secs)) * 1e9)
	return NewTimeDelta(secs, nanos)
}

// DivInt returns d / n, truncated toward zero.
func (d TimeDelta) DivInt(n int64) (TimeDelta, error) {
	if n == 0 {
		return TimeDelta{}, ErrDivisionByZero
	}
	magSec, magNanos, dNeg := d.signMagnitude()
	un := uint64(n)
	neg := dNeg != (n < 0)
	if n < 0 {
		un = uint64(-n)
	}
	qs, qn := div128(magSec, magNanos, un)
	if neg {
		return NewTimeDelta(-int64(qs), -int64(qn))
	}
	return NewTimeDelta(int64(qs), int64(qn))
}

// DivFloat returns d / f, truncating the result to whole nanoseconds, with
// the same float-precision caveat as MulFloat.
func (d TimeDelta) DivFloat(f float64) (TimeDelta, error) {
	if f == 0 {
		return TimeDelta{}, ErrDivisionByZero
	}
	return d.MulFloat(1 / f)
}

// DivDelta returns the ratio d / other as a float64.
func (d TimeDelta) DivDelta(other TimeDelta) (float64, error) {
	if other.IsZero() {
		return 0, ErrDivisionByZero
	}
	return d.InSeconds() / other.InSeconds(), nil
}

// signMagnitude decomposes d into a non-negative (seconds, nanos) magnitude
// plus a sign, undoing the normalized-borrow representation.
func (d TimeDelta) signMagnitude() (seconds, nanos uint64, neg bool) {
	if d.seconds >= 0 {
		return uint64(d.seconds), uint64(d.nanos), false
	}
	if d.nanos == 0 {
		return uint64(-d.seconds), 0, true
	}
	return uint64(-d.seconds - 1), uint64(1_000_000_000 - d.nanos), true
}

// div128 divides the magnitude (seconds*1e9 + nanos), computed at 128-bit
// width so the full delta range survives, by un, returning the truncated
// quotient split back into (seconds, nanos).
func div128(seconds, nanos, un uint64) (qSec, qNanos uint64) {
	hi, lo := bits.Mul64(seconds, 1_000_000_000)
	lo, carry := bits.Add64(lo, nanos, 0)
	hi += carry

	qHi := hi / un
	rem := hi % un
	qLo, _ := bits.Div64(rem, lo, un)

	// Split the 128-bit nanosecond quotient (qHi, qLo) back into seconds
	// and a sub-second remainder. qHi is at most ~17 (the high word of
	// maxTimeDeltaSeconds in nanoseconds), comfortably below the divisor.
	return bits.Div64(qHi, qLo, 1_000_000_000)
}

// unitPlural pluralizes a component count for String(), e.g. "2 hours", "1 minute".
func unitPlural(n int64, singular string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}

// String renders the delta as "1 hour, 2 minutes, 3 seconds" style text for
// humans (not a parseable format; use FormatCommonISO for that).
func (d TimeDelta) String() string {
	if d.IsZero() {
		return "0 seconds"
	}
	neg := d.seconds < 0
	abs := d
	if d.seconds < 0 {
		abs, _ = d.Neg()
	}
	hours := abs.seconds / 3600
	minutes := (abs.seconds % 3600) / 60
	seconds := abs.seconds % 60

	var parts []string
	if hours != 0 {
		parts = append(parts, unitPlural(hours, "hour"))
	}
	if minutes != 0 {
		parts = append(parts, unitPlural(minutes, "minute"))
	}
	if seconds != 0 || abs.nanos != 0 || len(parts) == 0 {
		unit := "second"
		if seconds != 1 || abs.nanos != 0 {
			unit = "seconds"
		}
		parts = append(parts, fmt.Sprintf("%d%s %s", seconds, formatFraction(int(abs.nanos)), unit))
	}
	s := strings.Join(parts, ", ")
	if neg {
		return "-" + s
	}
	return s
}
