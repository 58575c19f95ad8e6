package chrono

import "fmt"

// Date is a proleptic Gregorian calendar date: year in [1, 9999], month in
// [1, 12], day in [1, daysInMonth(year, month)]. The zero value is invalid;
// construct with NewDate.
type Date struct {
	year  int16
	month uint8
	day   uint8
}

// NewDate validates and constructs a Date.
func NewDate(year, month, day int) (Date, error) {
	if year < minYear || year > maxYear {
		return Date{}, newRangeError(fmt.Sprintf("%d-%d-%d", year, month, day), "year", int64(year), minYear, maxYear)
	}
	if month < 1 || month > 12 {
		return Date{}, newRangeError(fmt.Sprintf("%d-%d-%d", year, month, day), "month", int64(month), 1, 12)
	}
	max := daysInMonth(year, month)
	if day < 1 || day > max {
		return Date{}, newRangeError(fmt.Sprintf("%d-%d-%d", year, month, day), "day", int64(day), 1, int64(max))
	}
	return Date{year: int16(year), month: uint8(month), day: uint8(day)}, nil
}

func mustNewDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Year, Month, Day return the components of the date.
func (d Date) Year() int  { return int(d.year) }
func (d Date) Month() int { return int(d.month) }
func (d Date) Day() int   { return int(d.day) }

// IsLeapYear reports whether d's year is a leap year.
func (d Date) IsLeapYear() bool { return isLeap(int(d.year)) }

// DaysInMonth returns the number of days in d's (year, month).
func (d Date) DaysInMonth() int { return daysInMonth(int(d.year), int(d.month)) }

// OrdinalDay returns the 1-based day-of-year.
func (d Date) OrdinalDay() int { return ordinalDay(int(d.year), int(d.month), int(d.day)) }

// DayOfWeek returns the day of week, 0=Sunday..6=Saturday.
func (d Date) DayOfWeek() int { return weekday(int(d.year), int(d.month), int(d.day)) }

// DateFromOrdinal constructs a Date from a year and a 1-based ordinal day.
func DateFromOrdinal(year, ordinal int) (Date, error) {
	max := 365
	if isLeap(year) {
		max = 366
	}
	if ordinal < 1 || ordinal > max {
		return Date{}, newRangeError(fmt.Sprintf("%d/%d", year, ordinal), "ordinal", int64(ordinal), 1, int64(max))
	}
	m, d := fromOrdinal(year, ordinal)
	return NewDate(year, m, d)
}

// epochDays returns the number of days since the Unix epoch (1970-01-01).
func (d Date) epochDays() int64 {
	return daysFromCivil(int(d.year), int(d.month), int(d.day))
}

// dateFromEpochDays constructs a Date from a day count since the Unix epoch.
// Returns an error (from NewDate) if the resulting year is out of [1, 9999].
func dateFromEpochDays(days int64) (Date, error) {
	y, m, d := civilFromDays(days)
	return NewDate(y, m, d)
}

// ReplaceYear returns a copy of d with the year replaced.
// When the new (year, month) no longer accommodates the existing day, the
// day saturates to the last valid day of that month (the month-saturating
// replace rule).
func (d Date) ReplaceYear(year int) (Date, error) {
	return NewDate(year, int(d.month), saturatingReplaceDay(year, int(d.month), int(d.day)))
}

func (d Date) ReplaceMonth(month int) (Date, error) {
	return NewDate(int(d.year), month, saturatingReplaceDay(int(d.year), month, int(d.day)))
}

func (d Date) ReplaceDay(day int) (Date, error) {
	return NewDate(int(d.year), int(d.month), day)
}

// Add returns d shifted by delta, applying months first (month-saturating)
// then days.
func (d Date) Add(delta DateDelta) (Date, error) {
	year := int(d.year)
	month := int(d.month)
	day := int(d.day)

	if delta.months != 0 {
		totalMonths := (year*12 + (month - 1)) + int(delta.months)
		year = totalMonths / 12
		month = totalMonths%12 + 1
		if month <= 0 {
			month += 12
			year--
		}
		day = saturatingReplaceDay(year, month, day)
	}
	days := daysFromCivil(year, month, day) + int64(delta.days)
	return dateFromEpochDays(days)
}

// Sub returns d - delta.
func (d Date) Sub(delta DateDelta) (Date, error) {
	neg, err := delta.Negate()
	if err != nil {
		return Date{}, err
	}
	return d.Add(neg)
}

// DateDifference computes a - b as a DateDelta such that b.Add(result) == a.
// The inverse identity a - (a - b) == b does not hold in
// general, because month arithmetic is not invertible across month-length
// discontinuities.
func DateDifference(a, b Date) DateDelta {
	months := (int(a.year)-int(b.year))*12 + (int(a.month) - int(b.month))
	anchor, _ := b.shiftMonths(months)
	days := int(a.epochDays() - anchor.epochDays())

	// If the shifted anchor overshoots a (crossed past it), back off one
	// month and recompute the day residual against that month's length.
	if months > 0 && days < 0 {
		months--
		anchor, _ = b.shiftMonths(months)
		days = int(a.epochDays() - anchor.epochDays())
	} else if months < 0 && days > 0 {
		months++
		anchor, _ = b.shiftMonths(months)
		days = int(a.epochDays() - anchor.epochDays())
	}

	dd, _ := NewDateDelta(months, days)
	return dd
}

// shiftMonths shifts d by whole months only (month-saturating), used
// internally by DateDifference.
func (d Date) shiftMonths(months int) (Date, error) {
	totalMonths := (int(d.year)*12 + (int(d.month) - 1)) + months
	year := totalMonths / 12
	month := totalMonths%12 + 1
	if month <= 0 {
		month += 12
		year--
	}
	day := saturatingReplaceDay(year, month, int(d.day))
	return NewDate(year, month, day)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Compare returns -1, 0, or 1 as d is before, equal to, or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(int(d.year), int(other.year))
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(int(d.day), int(other.day))
	}
}

func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
