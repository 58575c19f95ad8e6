package chrono

import (
	"testing"

	"github.com/rickb777/expect"
)

func TestIsLeap(t *testing.T) {
	cases := []struct {
		year int
		leap bool
	}{
		{2000, true}, {1900, false}, {2004, true}, {2001, false}, {2100, false}, {2400, true},
	}
	for _, c := range cases {
		expect.Any(isLeap(c.year)).ToBe(t, c.leap)
	}
}

func TestDaysInMonth(t *testing.T) {
	expect.Number(daysInMonth(2024, 2)).ToBe(t, 29)
	expect.Number(daysInMonth(2023, 2)).ToBe(t, 28)
	expect.Number(daysInMonth(2023, 4)).ToBe(t, 30)
	expect.Number(daysInMonth(2023, 1)).ToBe(t, 31)
}

func TestDaysFromCivilRoundTrip(t *testing.T) {
	cases := []struct{ y, m, d int }{
		{1970, 1, 1},
		{1969, 12, 31},
		{2000, 2, 29},
		{1, 1, 1},
		{9999, 12, 31},
		{2024, 7, 31},
	}
	for _, c := range cases {
		days := daysFromCivil(c.y, c.m, c.d)
		y, m, d := civilFromDays(days)
		expect.Number(y).ToBe(t, c.y)
		expect.Number(m).ToBe(t, c.m)
		expect.Number(d).ToBe(t, c.d)
	}
}

func TestDaysFromCivilEpoch(t *testing.T) {
	expect.Number(daysFromCivil(1970, 1, 1)).ToBe(t, int64(0))
	expect.Number(daysFromCivil(1970, 1, 2)).ToBe(t, int64(1))
	expect.Number(daysFromCivil(1969, 12, 31)).ToBe(t, int64(-1))
}

func TestWeekday(t *testing.T) {
	// 1970-01-01 was a Thursday.
	expect.Number(weekday(1970, 1, 1)).ToBe(t, 4)
	// 2024-07-31 was a Wednesday.
	expect.Number(weekday(2024, 7, 31)).ToBe(t, 3)
}

func TestSaturatingReplaceDay(t *testing.T) {
	expect.Number(saturatingReplaceDay(2023, 2, 31)).ToBe(t, 28)
	expect.Number(saturatingReplaceDay(2024, 2, 29)).ToBe(t, 29)
	expect.Number(saturatingReplaceDay(2023, 4, 15)).ToBe(t, 15)
}

func TestOrdinalDayRoundTrip(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		max := 365
		if isLeap(year) {
			max = 366
		}
		for ordinal := 1; ordinal <= max; ordinal += 7 {
			m, d := fromOrdinal(year, ordinal)
			got := ordinalDay(year, m, d)
			expect.Number(got).ToBe(t, ordinal)
		}
	}
}
