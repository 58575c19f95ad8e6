package chrono

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/rickb777/chrono/tz"
	"github.com/rickb777/expect"
)

// writeTZifV1 encodes a minimal v1 TZif blob: the given types, transitions,
// and per-transition type indexes, no leap-second or indicator records.
func writeTZifV1(offsets []int32, dstFlags []bool, desigs []string, transitions []int64, transitionTypes []uint8) []byte {
	var designations bytes.Buffer
	desigIdx := make([]int, len(desigs))
	for i, d := range desigs {
		desigIdx[i] = designations.Len()
		designations.WriteString(d)
		designations.WriteByte(0)
	}

	var buf bytes.Buffer
	buf.WriteString("TZif")
	buf.WriteByte(0)
	buf.Write(make([]byte, 15))
	for _, c := range []uint32{0, 0, 0, uint32(len(transitions)), uint32(len(offsets)), uint32(designations.Len())} {
		binary.Write(&buf, binary.BigEndian, c)
	}
	for _, tr := range transitions {
		binary.Write(&buf, binary.BigEndian, int32(tr))
	}
	buf.Write(transitionTypes)
	for i := range offsets {
		binary.Write(&buf, binary.BigEndian, offsets[i])
		flag := byte(0)
		if dstFlags[i] {
			flag = 1
		}
		buf.WriteByte(flag)
		buf.WriteByte(byte(desigIdx[i]))
	}
	buf.Write(designations.Bytes())
	return buf.Bytes()
}

// installAmsterdam points the process-wide zone store at a temp directory
// holding a synthetic Europe/Amsterdam: CET/CEST with the 2020 and 2023
// transitions recorded.
func installAmsterdam(t *testing.T) TimeZone {
	t.Helper()
	raw := writeTZifV1(
		[]int32{3600, 7200},
		[]bool{false, true},
		[]string{"CET", "CEST"},
		[]int64{
			1585443600, // 2020-03-29T01:00:00Z, into CEST
			1603587600, // 2020-10-25T01:00:00Z, back to CET
			1679792400, // 2023-03-26T01:00:00Z, into CEST
			1698541200, // 2023-10-29T01:00:00Z, back to CET
		},
		[]uint8{1, 0, 1, 0},
	)
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "Europe"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Europe", "Amsterdam"), raw, 0o644); err != nil {
		t.Fatal(err)
	}
	tz.System().SetSearchPath(dir)
	t.Cleanup(tz.ResetSystem)

	zone, err := LoadTimeZone("Europe/Amsterdam")
	expect.Error(err).ToBeNil(t)
	return zone
}

func TestFoldArithmeticCrossesTransition(t *testing.T) {
	zone := installAmsterdam(t)
	earlier, err := NewZonedDateTime(mustNewDate(2023, 10, 29), mustNewTime(2, 15, 30, 0), zone, Earlier)
	expect.Error(err).ToBeNil(t)
	expect.Number(earlier.OffsetSeconds()).ToBe(t, 7200)

	shifted, err := earlier.AddTimeDelta(Hours(24))
	expect.Error(err).ToBeNil(t)
	expect.String(shifted.String()).ToBe(t, "2023-10-30T01:15:30+01:00[Europe/Amsterdam]")

	later, err := NewZonedDateTime(mustNewDate(2023, 10, 29), mustNewTime(2, 15, 30, 0), zone, Later)
	expect.Error(err).ToBeNil(t)
	a, _ := earlier.ToInstant()
	b, _ := later.ToInstant()
	diff, err := b.Difference(a)
	expect.Error(err).ToBeNil(t)
	expect.Number(diff.TotalNanoseconds()).ToBe(t, int64(3_600_000_000_000))
}

func TestGapDisambiguationChoices(t *testing.T) {
	zone := installAmsterdam(t)
	date := mustNewDate(2023, 3, 26)
	tm := mustNewTime(2, 30, 0, 0)

	earlier, err := NewZonedDateTime(date, tm, zone, Earlier)
	expect.Error(err).ToBeNil(t)
	expect.Number(earlier.Hour()).ToBe(t, 1)
	expect.Number(earlier.Minute()).ToBe(t, 30)

	later, err := NewZonedDateTime(date, tm, zone, Later)
	expect.Error(err).ToBeNil(t)
	expect.Number(later.Hour()).ToBe(t, 3)

	compatible, err := NewZonedDateTime(date, tm, zone, Compatible)
	expect.Error(err).ToBeNil(t)
	expect.Number(compatible.Hour()).ToBe(t, 3)

	_, err = NewZonedDateTime(date, tm, zone, Raise)
	expect.Error(err).ToHaveOccurred(t)
	_, ok := err.(*SkippedTimeError)
	expect.Any(ok).ToBe(t, true)
}

func TestFoldSideAccessors(t *testing.T) {
	zone := installAmsterdam(t)
	date := mustNewDate(2023, 10, 29)
	tm := mustNewTime(2, 15, 30, 0)

	earlier, err := NewZonedDateTime(date, tm, zone, Earlier)
	expect.Error(err).ToBeNil(t)
	expect.Any(earlier.IsAmbiguous()).ToBe(t, true)
	expect.Any(earlier.Fold()).ToBe(t, false)

	later, err := NewZonedDateTime(date, tm, zone, Later)
	expect.Error(err).ToBeNil(t)
	expect.Any(later.Fold()).ToBe(t, true)

	plain, err := NewZonedDateTime(mustNewDate(2023, 7, 1), tm, zone, Raise)
	expect.Error(err).ToBeNil(t)
	expect.Any(plain.IsAmbiguous()).ToBe(t, false)
	expect.Any(plain.Fold()).ToBe(t, false)
}

func TestFoldRaiseFailsWithAmbiguousTime(t *testing.T) {
	zone := installAmsterdam(t)
	_, err := NewZonedDateTime(mustNewDate(2023, 10, 29), mustNewTime(2, 15, 30, 0), zone, Raise)
	expect.Error(err).ToHaveOccurred(t)
	_, ok := err.(*AmbiguousTimeError)
	expect.Any(ok).ToBe(t, true)
}

func TestParseRejectsOffsetNotValidForZone(t *testing.T) {
	installAmsterdam(t)
	_, err := ParseZonedDateTime("2023-10-29T02:15:30+03:00[Europe/Amsterdam]", Raise)
	expect.Error(err).ToHaveOccurred(t)
	_, ok := err.(*InvalidOffsetForZoneError)
	expect.Any(ok).ToBe(t, true)
}

func TestParseAcceptsEitherFoldOffset(t *testing.T) {
	zone := installAmsterdam(t)
	z, err := ParseZonedDateTime("2023-10-29T02:15:30+02:00[Europe/Amsterdam]", Raise)
	expect.Error(err).ToBeNil(t)
	expect.Number(z.OffsetSeconds()).ToBe(t, 7200)

	z, err = ParseZonedDateTime("2023-10-29T02:15:30+01:00[Europe/Amsterdam]", Raise)
	expect.Error(err).ToBeNil(t)
	expect.Number(z.OffsetSeconds()).ToBe(t, 3600)

	want, err := NewZonedDateTime(mustNewDate(2023, 10, 29), mustNewTime(2, 15, 30, 0), zone, Later)
	expect.Error(err).ToBeNil(t)
	expect.Any(z.ExactEqual(want)).ToBe(t, true)
}

func TestInstantEqualityAcrossKinds(t *testing.T) {
	zone := installAmsterdam(t)
	i, err := FromUTC(2020, 8, 15, 21, 0, 0)
	expect.Error(err).ToBeNil(t)
	z, err := NewZonedDateTime(mustNewDate(2020, 8, 15), mustNewTime(23, 0, 0, 0), zone, Raise)
	expect.Error(err).ToBeNil(t)
	zi, err := z.ToInstant()
	expect.Error(err).ToBeNil(t)
	expect.Any(zi.Equal(i)).ToBe(t, true)
}

func TestZonedRoundTripThroughInstant(t *testing.T) {
	zone := installAmsterdam(t)
	z, err := NewZonedDateTime(mustNewDate(2023, 10, 29), mustNewTime(2, 15, 30, 0), zone, Later)
	expect.Error(err).ToBeNil(t)
	i, err := z.ToInstant()
	expect.Error(err).ToBeNil(t)
	back := FromInstant(i, zone)
	expect.Any(back.ExactEqual(z)).ToBe(t, true)
}

func TestISODurationParseScenario(t *testing.T) {
	d, err := ParseCommonISODuration("P1Y2M3W4DT5H6M7.000008S")
	expect.Error(err).ToBeNil(t)
	expect.Number(d.DateDelta().Months()).ToBe(t, 14)
	expect.Number(d.DateDelta().Days()).ToBe(t, 25)
	want := int64(5)*3_600_000_000_000 + int64(6)*60_000_000_000 + int64(7)*1_000_000_000 + 8_000
	expect.Number(d.TimeDelta().TotalNanoseconds()).ToBe(t, want)
}

func TestZonedDateTimeDateArithmeticRequiresDisambiguation(t *testing.T) {
	zone := installAmsterdam(t)
	// 2023-03-25T02:30 is unambiguous; one day later the same civil time is
	// inside the spring-forward gap.
	z, err := NewZonedDateTime(mustNewDate(2023, 3, 25), mustNewTime(2, 30, 0, 0), zone, Raise)
	expect.Error(err).ToBeNil(t)

	day, _ := NewDateDelta(0, 1)
	_, err = z.AddDateDelta(day, Raise)
	expect.Error(err).ToHaveOccurred(t)

	shifted, err := z.AddDateDelta(day, Compatible)
	expect.Error(err).ToBeNil(t)
	expect.Number(shifted.Hour()).ToBe(t, 3)
}
