package chrono

import (
	"testing"

	"github.com/rickb777/expect"
)

func TestTimeDeltaNormalization(t *testing.T) {
	d, err := NewTimeDelta(0, -500_000_000)
	expect.Error(err).ToBeNil(t)
	expect.Number(d.TotalNanoseconds()).ToBe(t, int64(-500_000_000))
}

func TestTimeDeltaConstructors(t *testing.T) {
	expect.Number(Hours(1).TotalNanoseconds()).ToBe(t, int64(3_600_000_000_000))
	expect.Number(Minutes(1).TotalNanoseconds()).ToBe(t, int64(60_000_000_000))
	expect.Number(Seconds(1).TotalNanoseconds()).ToBe(t, int64(1_000_000_000))
	expect.Number(Milliseconds(1).TotalNanoseconds()).ToBe(t, int64(1_000_000))
	expect.Number(Microseconds(1).TotalNanoseconds()).ToBe(t, int64(1_000))
	expect.Number(Nanoseconds(1).TotalNanoseconds()).ToBe(t, int64(1))
}

func TestTimeDeltaArithmetic(t *testing.T) {
	a := Seconds(10)
	b := Seconds(3)
	sum, err := a.Add(b)
	expect.Error(err).ToBeNil(t)
	expect.Number(sum.TotalNanoseconds()).ToBe(t, int64(13_000_000_000))

	diff, err := a.Sub(b)
	expect.Error(err).ToBeNil(t)
	expect.Number(diff.TotalNanoseconds()).ToBe(t, int64(7_000_000_000))

	neg, err := a.Neg()
	expect.Error(err).ToBeNil(t)
	expect.Any(neg.IsNegative()).ToBe(t, true)
}

func TestTimeDeltaMulDiv(t *testing.T) {
	a := Seconds(10)
	p, err := a.MulInt(3)
	expect.Error(err).ToBeNil(t)
	expect.Number(p.TotalNanoseconds()).ToBe(t, int64(30_000_000_000))

	q, err := a.DivInt(2)
	expect.Error(err).ToBeNil(t)
	expect.Number(q.TotalNanoseconds()).ToBe(t, int64(5_000_000_000))

	_, err = a.DivInt(0)
	expect.Any(err).ToBe(t, ErrDivisionByZero)

	ratio, err := a.DivDelta(Seconds(5))
	expect.Error(err).ToBeNil(t)
	expect.Number(ratio).ToBe(t, 2.0)
}

func TestTimeDeltaWideRangeDivision(t *testing.T) {
	// Far beyond the int64-nanosecond window (roughly 292 years), where a
	// single nanosecond count would overflow.
	d, err := NewTimeDelta(9000*366*86_400, 1)
	expect.Error(err).ToBeNil(t)
	half, err := d.DivInt(2)
	expect.Error(err).ToBeNil(t)
	doubled, err := half.MulInt(2)
	expect.Error(err).ToBeNil(t)
	diff, err := d.Sub(doubled)
	expect.Error(err).ToBeNil(t)
	expect.Number(diff.TotalNanoseconds()).ToBe(t, int64(1))
}

func TestTimeDeltaMulIntOverflow(t *testing.T) {
	d := Seconds(10)
	_, err := d.MulInt(1 << 62)
	expect.Error(err).ToHaveOccurred(t)
}

func TestTimeDeltaUnitBreakdown(t *testing.T) {
	d := Minutes(90)
	expect.Number(d.InHours()).ToBe(t, 1.5)
	expect.Number(d.InMinutes()).ToBe(t, 90.0)

	neg, _ := NewTimeDelta(0, -1_500_000_000)
	s, n := neg.WholeSeconds()
	expect.Number(s).ToBe(t, int64(-1))
	expect.Number(n).ToBe(t, -500_000_000)
}

func TestTimeDeltaString(t *testing.T) {
	expect.String(ZeroTimeDelta.String()).ToBe(t, "0 seconds")
	d, _ := NewTimeDelta(3723, 0)
	expect.String(d.String()).ToBe(t, "1 hour, 2 minutes, 3 seconds")
	neg, _ := d.Neg()
	expect.String(neg.String()).ToBe(t, "-1 hour, 2 minutes, 3 seconds")
}
