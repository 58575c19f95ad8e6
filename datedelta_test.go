package chrono

import (
	"testing"

	"github.com/rickb777/expect"
)

func TestNewDateDeltaMixedSign(t *testing.T) {
	_, err := NewDateDelta(1, -1)
	expect.Any(err).ToBe(t, ErrMixedSignDelta)
}

func TestDateDeltaOfNormalizes(t *testing.T) {
	d, err := DateDeltaOf(1, 2, 1, 3)
	expect.Error(err).ToBeNil(t)
	expect.Number(d.Months()).ToBe(t, 14)
	expect.Number(d.Days()).ToBe(t, 10)
}

func TestDateDeltaAddAndNegate(t *testing.T) {
	a, _ := NewDateDelta(1, 2)
	b, _ := NewDateDelta(2, 3)
	sum, err := a.Add(b)
	expect.Error(err).ToBeNil(t)
	expect.Number(sum.Months()).ToBe(t, 3)
	expect.Number(sum.Days()).ToBe(t, 5)

	neg, err := a.Negate()
	expect.Error(err).ToBeNil(t)
	expect.Number(neg.Months()).ToBe(t, -1)
	expect.Number(neg.Days()).ToBe(t, -2)
}

func TestDateDeltaMulInt(t *testing.T) {
	a, _ := NewDateDelta(1, 2)
	p, err := a.MulInt(3)
	expect.Error(err).ToBeNil(t)
	expect.Number(p.Months()).ToBe(t, 3)
	expect.Number(p.Days()).ToBe(t, 6)
}

func TestDateDeltaString(t *testing.T) {
	d, _ := NewDateDelta(14, 10)
	expect.String(d.String()).ToBe(t, "P1Y2M10D")
}
