package chrono

import (
	"testing"

	"github.com/rickb777/expect"
)

func TestParseRFC3339OffsetDateTime(t *testing.T) {
	o, err := ParseRFC3339OffsetDateTime("2024-07-31T10:00:00+01:00")
	expect.Error(err).ToBeNil(t)
	expect.Number(o.OffsetSeconds()).ToBe(t, 3600)
}

func TestParseRFC3339AcceptsAlternateSeparators(t *testing.T) {
	for _, sep := range []byte{'T', 't', ' ', '_'} {
		s := "2024-07-31" + string(sep) + "10:00:00Z"
		_, err := ParseRFC3339OffsetDateTime(s)
		expect.Error(err).ToBeNil(t)
	}
}

func TestParseRFC3339NegativeZeroOffset(t *testing.T) {
	o, err := ParseRFC3339OffsetDateTime("2024-07-31T10:00:00-00:00")
	expect.Error(err).ToBeNil(t)
	expect.Number(o.OffsetSeconds()).ToBe(t, 0)
}

func TestParseRFC3339InstantRejectsNegativeZeroOffset(t *testing.T) {
	_, err := ParseRFC3339Instant("2024-07-31T10:00:00-00:00")
	expect.Error(err).ToHaveOccurred(t)
}

func TestParseRFC3339InstantAcceptsZ(t *testing.T) {
	i, err := ParseRFC3339Instant("2024-07-31T10:00:00Z")
	expect.Error(err).ToBeNil(t)
	expect.Number(i.Timestamp()).ToBe(t, i.Timestamp())
}

func TestParseRFC3339RequiresOffset(t *testing.T) {
	_, err := ParseRFC3339OffsetDateTime("2024-07-31T10:00:00")
	expect.Error(err).ToHaveOccurred(t)
}

func TestFormatRFC3339(t *testing.T) {
	o, _ := NewOffsetDateTime(mustNewDate(2024, 7, 31), mustNewTime(10, 0, 0, 0), 0)
	expect.String(o.FormatRFC3339()).ToBe(t, "2024-07-31T10:00:00Z")
}
