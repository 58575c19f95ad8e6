package chrono

import (
	"testing"

	"github.com/rickb777/expect"
)

func TestNewZonedDateTimeUnambiguousUTC(t *testing.T) {
	z, err := NewZonedDateTime(mustNewDate(2024, 7, 31), mustNewTime(10, 0, 0, 0), UTC, Raise)
	expect.Error(err).ToBeNil(t)
	expect.Number(z.OffsetSeconds()).ToBe(t, 0)
	expect.String(z.String()).ToBe(t, "2024-07-31T10:00:00Z[UTC]")
}

func TestFromInstantAndToInstantRoundTrip(t *testing.T) {
	i, _ := FromTimestamp(1_700_000_000)
	z := FromInstant(i, UTC)
	back, err := z.ToInstant()
	expect.Error(err).ToBeNil(t)
	expect.Any(back.Equal(i)).ToBe(t, true)
}

func TestZonedDateTimeInTimeZone(t *testing.T) {
	z, _ := NewZonedDateTime(mustNewDate(2024, 7, 31), mustNewTime(10, 0, 0, 0), UTC, Raise)
	same, err := z.InTimeZone(UTC)
	expect.Error(err).ToBeNil(t)
	expect.Any(same.Equal(z)).ToBe(t, true)
}

func TestZonedDateTimeAddTimeDeltaIsZoneSafe(t *testing.T) {
	z, _ := NewZonedDateTime(mustNewDate(2024, 7, 31), mustNewTime(23, 0, 0, 0), UTC, Raise)
	r, err := z.AddTimeDelta(Hours(2))
	expect.Error(err).ToBeNil(t)
	expect.Number(r.Day()).ToBe(t, 1)
	expect.Number(r.Month()).ToBe(t, 8)
	expect.Number(r.Hour()).ToBe(t, 1)
}

func TestZonedDateTimeReplaceAndCompare(t *testing.T) {
	z, _ := NewZonedDateTime(mustNewDate(2024, 1, 1), Midnight, UTC, Raise)
	r, err := z.Replace(mustNewDate(2024, 1, 2), Midnight, Raise)
	expect.Error(err).ToBeNil(t)
	expect.Number(z.Compare(r)).ToBe(t, -1)
}

func TestZonedDateTimeToFixedOffset(t *testing.T) {
	z, _ := NewZonedDateTime(mustNewDate(2024, 7, 31), mustNewTime(10, 0, 0, 0), UTC, Raise)
	o, err := z.ToFixedOffset()
	expect.Error(err).ToBeNil(t)
	expect.Number(o.OffsetSeconds()).ToBe(t, 0)
	expect.Number(o.Hour()).ToBe(t, 10)
}
