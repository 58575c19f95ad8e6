package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCommonISODuration parses the "common" ISO-8601 duration profile:
//
//	[+|-]P[nY][nM][nW][nD][T[nH][nM][n(.n...)S]]
//
// up to nine fractional-second digits. A leading sign applies to every
// component. "P0D" and "PT0S" both parse as the canonical zero value.
func ParseCommonISODuration(s string) (DateTimeDelta, error) {
	orig := s
	if s == "" {
		return DateTimeDelta{}, newInvalidFormatError(orig, "empty duration")
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 || s[0] != 'P' {
		return DateTimeDelta{}, newInvalidFormatError(orig, "duration must start with P")
	}
	s = s[1:]

	datePart, timePart, hasTime := s, "", false
	if idx := strings.IndexByte(s, 'T'); idx >= 0 {
		datePart, timePart, hasTime = s[:idx], s[idx+1:], true
	}

	var years, months, weeks, days int
	var haveDateComponent bool
	rest := datePart
	order := []byte{'Y', 'M', 'W', 'D'}
	oi := 0
	for len(rest) > 0 {
		n, unit, tail, err := scanComponent(rest, orig)
		if err != nil {
			return DateTimeDelta{}, err
		}
		for oi < len(order) && order[oi] != unit {
			oi++
		}
		if oi >= len(order) {
			return DateTimeDelta{}, newInvalidFormatError(orig, "duration components out of order")
		}
		switch unit {
		case 'Y':
			years = n
		case 'M':
			months = n
		case 'W':
			weeks = n
		case 'D':
			days = n
		default:
			return DateTimeDelta{}, newInvalidFormatError(orig, "unexpected date component")
		}
		haveDateComponent = true
		rest = tail
	}

	if !haveDateComponent && !hasTime {
		return DateTimeDelta{}, newInvalidFormatError(orig, "duration has no components")
	}

	dateDelta, err := DateDeltaOf(years, months, weeks, days)
	if err != nil {
		return DateTimeDelta{}, err
	}

	timeDelta := ZeroTimeDelta
	if hasTime {
		timeDelta, err = parseISOTimePart(timePart, orig)
		if err != nil {
			return DateTimeDelta{}, err
		}
	} else if timePart != "" || strings.HasSuffix(s, "T") {
		return DateTimeDelta{}, newInvalidFormatError(orig, "T with no following components")
	}

	if neg {
		dateDelta, err = dateDelta.Negate()
		if err != nil {
			return DateTimeDelta{}, err
		}
		timeDelta, err = timeDelta.Neg()
		if err != nil {
			return DateTimeDelta{}, err
		}
	}

	return NewDateTimeDelta(dateDelta, timeDelta)
}

// ParseCommonISODateDelta parses a duration string with no time component.
func ParseCommonISODateDelta(s string) (DateDelta, error) {
	d, err := ParseCommonISODuration(s)
	if err != nil {
		return DateDelta{}, err
	}
	if !d.timeDelta.IsZero() {
		return DateDelta{}, newInvalidFormatError(s, "unexpected time component in date delta")
	}
	return d.dateDelta, nil
}

// ParseCommonISOTimeDelta parses a duration string with no date component.
func ParseCommonISOTimeDelta(s string) (TimeDelta, error) {
	d, err := ParseCommonISODuration(s)
	if err != nil {
		return TimeDelta{}, err
	}
	if !d.dateDelta.IsZero() {
		return TimeDelta{}, newInvalidFormatError(s, "unexpected date component in time delta")
	}
	return d.timeDelta, nil
}

func parseISOTimePart(s string, orig string) (TimeDelta, error) {
	var hours, minutes int
	var seconds int64
	var nanos int64
	order := []byte{'H', 'M', 'S'}
	oi := 0
	rest := s
	var sawWeek bool
	for len(rest) > 0 {
		n, frac, nfrac, unit, tail, err := scanComponentFrac(rest, orig)
		if err != nil {
			return TimeDelta{}, err
		}
		if unit == 'W' {
			sawWeek = true
		}
		for oi < len(order) && order[oi] != unit {
			oi++
		}
		if oi >= len(order) {
			return TimeDelta{}, newInvalidFormatError(orig, "time components out of order")
		}
		switch unit {
		case 'H':
			hours = n
		case 'M':
			minutes = n
		case 'S':
			seconds = int64(n)
			nanos = scaleFraction(frac, nfrac)
		default:
			return TimeDelta{}, newInvalidFormatError(orig, "unexpected time component")
		}
		rest = tail
	}
	if sawWeek {
		return TimeDelta{}, newInvalidFormatError(orig, "week not permitted after T")
	}
	if len(s) == 0 {
		return TimeDelta{}, newInvalidFormatError(orig, "T with no following components")
	}
	return NewTimeDelta(int64(hours)*3600+int64(minutes)*60+seconds, nanos)
}

// scaleFraction converts a fractional-seconds digit string (already parsed
// as an integer value frac with nfrac significant digits) into nanoseconds.
func scaleFraction(frac, nfrac int) int64 {
	if nfrac == 0 {
		return 0
	}
	n := int64(frac)
	for i := nfrac; i < 9; i++ {
		n *= 10
	}
	for i := 9; i < nfrac; i++ {
		n /= 10
	}
	return n
}

// scanComponent reads "<digits><letter>" from s, returning the integer
// value, the unit letter, and the remaining tail.
func scanComponent(s string, orig string) (n int, unit byte, tail string, err error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, 0, "", newInvalidFormatError(orig, "expected digits")
	}
	if i > 35 {
		return 0, 0, "", newInvalidFormatError(orig, "too many significant digits")
	}
	if i >= len(s) {
		return 0, 0, "", newInvalidFormatError(orig, "digits without a unit letter")
	}
	value, convErr := strconv.Atoi(s[:i])
	if convErr != nil {
		return 0, 0, "", newInvalidFormatError(orig, "invalid numeric component")
	}
	return value, s[i], s[i+1:], nil
}

// scanComponentFrac is like scanComponent but also accepts a fractional
// part (. or ,) before the unit letter, used only for the seconds field.
func scanComponentFrac(s string, orig string) (n int, frac int, nfrac int, unit byte, tail string, err error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, 0, 0, 0, "", newInvalidFormatError(orig, "expected digits")
	}
	intPart := s[:i]
	rest := s[i:]
	var fracDigits string
	if len(rest) > 0 && (rest[0] == '.' || rest[0] == ',') {
		j := 1
		for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
			j++
		}
		if j == 1 {
			return 0, 0, 0, 0, "", newInvalidFormatError(orig, "fraction marker without digits")
		}
		fracDigits = rest[1:j]
		if len(fracDigits) > 9 {
			return 0, 0, 0, 0, "", newInvalidFormatError(orig, "more than nine fractional digits")
		}
		rest = rest[j:]
	}
	if len(intPart) > 35 {
		return 0, 0, 0, 0, "", newInvalidFormatError(orig, "too many significant digits")
	}
	if len(rest) == 0 {
		return 0, 0, 0, 0, "", newInvalidFormatError(orig, "digits without a unit letter")
	}
	value, convErr := strconv.Atoi(intPart)
	if convErr != nil {
		return 0, 0, 0, 0, "", newInvalidFormatError(orig, "invalid numeric component")
	}
	fracValue := 0
	if fracDigits != "" {
		fracValue, convErr = strconv.Atoi(fracDigits)
		if convErr != nil {
			return 0, 0, 0, 0, "", newInvalidFormatError(orig, "invalid fraction")
		}
	}
	return value, fracValue, len(fracDigits), rest[0], rest[1:], nil
}

// formatISODatePart renders the date portion of a duration, e.g. "1Y2M3D".
func formatISODatePart(d DateDelta) string {
	s := "P"
	years := d.Months() / 12
	months := d.Months() % 12
	if years != 0 {
		s += fmt.Sprintf("%dY", years)
	}
	if months != 0 {
		s += fmt.Sprintf("%dM", months)
	}
	if d.Days() != 0 {
		s += fmt.Sprintf("%dD", d.Days())
	}
	if s == "P" {
		return "P0D"
	}
	return s
}

// formatISOTimePart renders the time portion of a duration, e.g. "T5H6M7S".
func formatISOTimePart(d TimeDelta) string {
	abs := d
	if d.seconds < 0 {
		abs, _ = d.Neg()
	}
	hours := abs.seconds / 3600
	minutes := (abs.seconds % 3600) / 60
	seconds := abs.seconds % 60

	s := "T"
	if hours != 0 {
		s += fmt.Sprintf("%dH", hours)
	}
	if minutes != 0 {
		s += fmt.Sprintf("%dM", minutes)
	}
	if seconds != 0 || abs.nanos != 0 || s == "T" {
		s += fmt.Sprintf("%d%sS", seconds, formatFraction(int(abs.nanos)))
	}
	return s
}

// FormatCommonISO renders a DateTimeDelta in the common ISO-8601 profile.
func (d DateTimeDelta) FormatCommonISO() string {
	return d.String()
}

// FormatCommonISO renders a DateDelta in the common ISO-8601 profile.
func (d DateDelta) FormatCommonISO() string {
	return d.String()
}

// FormatCommonISO renders a TimeDelta in the common ISO-8601 profile.
func (d TimeDelta) FormatCommonISO() string {
	if d.IsNegative() {
		abs, _ := d.Neg()
		return "-P" + formatISOTimePart(abs)
	}
	return "P" + formatISOTimePart(d)
}
