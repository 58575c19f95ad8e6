package chrono

import (
	"testing"

	"github.com/rickb777/expect"
)

func TestNewDateTimeDeltaMixedSign(t *testing.T) {
	dd, _ := NewDateDelta(1, 0)
	td := Seconds(-1)
	_, err := NewDateTimeDelta(dd, td)
	expect.Any(err).ToBe(t, ErrMixedSignDelta)
}

func TestDateTimeDeltaAdd(t *testing.T) {
	dd, _ := NewDateDelta(1, 0)
	td := Seconds(10)
	d, err := NewDateTimeDelta(dd, td)
	expect.Error(err).ToBeNil(t)

	sum, err := d.AddTimeDelta(Seconds(5))
	expect.Error(err).ToBeNil(t)
	expect.Number(sum.TimeDelta().TotalNanoseconds()).ToBe(t, int64(15_000_000_000))

	sum2, err := d.AddDateDelta(dd)
	expect.Error(err).ToBeNil(t)
	expect.Number(sum2.DateDelta().Months()).ToBe(t, 2)
}

func TestDateTimeDeltaString(t *testing.T) {
	expect.String(ZeroDateTimeDelta.String()).ToBe(t, "PT0S")

	dd, _ := NewDateDelta(0, 1)
	td := Seconds(0)
	d, _ := NewDateTimeDelta(dd, td)
	expect.String(d.String()).ToBe(t, "P1D")

	td2 := Seconds(3661)
	d2, _ := NewDateTimeDelta(dd, td2)
	expect.String(d2.String()).ToBe(t, "P1DT1H1M1S")
}
