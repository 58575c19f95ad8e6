package chrono

import (
	"strconv"
	"strings"

	"github.com/rickb777/chrono/tz"
)

// parsedMoment is the scratch result of scanning the common-ISO grammar:
// a civil (Date, Time) plus whatever offset/zone suffix was present. Each
// public parser below validates the combination it actually needs.
type parsedMoment struct {
	date       Date
	time       Time
	hasOffset  bool
	offsetSecs int
	zoneKey    string
}

// parseCommonISOCore scans the "common ISO" profile: extended
// or basic date/time, separator T/t/space, offset Z/±HH[:MM[:SS]] or the
// basic compressed variant, optional [<zone-key>] suffix. It rejects week
// dates, ordinal dates, non-ASCII, and offsets >= 24h.
func parseCommonISOCore(s string) (parsedMoment, error) {
	orig := s
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return parsedMoment{}, newInvalidFormatError(orig, "non-ASCII byte")
		}
	}

	zoneKey := ""
	if strings.HasSuffix(s, "]") {
		idx := strings.LastIndexByte(s, '[')
		if idx < 0 {
			return parsedMoment{}, newInvalidFormatError(orig, "unmatched ]")
		}
		zoneKey = s[idx+1 : len(s)-1]
		s = s[:idx]
	}

	datePart, timePart, hasTime := s, "", false
	for i, c := range []byte(s) {
		if c == 'T' || c == 't' || c == ' ' {
			datePart, timePart, hasTime = s[:i], s[i+1:], true
			break
		}
	}

	date, err := parseISODate(datePart, orig)
	if err != nil {
		return parsedMoment{}, err
	}

	result := parsedMoment{date: date, zoneKey: zoneKey}
	if !hasTime {
		return result, nil
	}

	t, hasOffset, offsetSecs, err := parseISOTimeAndOffset(timePart, orig)
	if err != nil {
		return parsedMoment{}, err
	}
	result.time = t
	result.hasOffset = hasOffset
	result.offsetSecs = offsetSecs
	return result, nil
}

// parseISODate accepts "YYYY-MM-DD" or "YYYYMMDD"; it rejects week dates
// (YYYY-Www-D) and ordinal dates (YYYY-DDD) by requiring exactly this shape.
func parseISODate(s string, orig string) (Date, error) {
	switch len(s) {
	case 10: // YYYY-MM-DD
		if s[4] != '-' || s[7] != '-' {
			return Date{}, newInvalidFormatError(orig, "expected YYYY-MM-DD")
		}
		y, err1 := atoiExact(s[0:4])
		m, err2 := atoiExact(s[5:7])
		d, err3 := atoiExact(s[8:10])
		if err1 != nil || err2 != nil || err3 != nil {
			return Date{}, newInvalidFormatError(orig, "non-digit in date")
		}
		return NewDate(y, m, d)
	case 8: // YYYYMMDD
		y, err1 := atoiExact(s[0:4])
		m, err2 := atoiExact(s[4:6])
		d, err3 := atoiExact(s[6:8])
		if err1 != nil || err2 != nil || err3 != nil {
			return Date{}, newInvalidFormatError(orig, "non-digit in date")
		}
		return NewDate(y, m, d)
	default:
		return Date{}, newInvalidFormatError(orig, "unsupported date form (week/ordinal dates are rejected)")
	}
}

func atoiExact(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, newInvalidFormatError(s, "expected digit")
		}
	}
	return strconv.Atoi(s)
}

// parseISOTimeAndOffset accepts "HH:MM:SS[.f]" or "HHMMSS[.f]" followed by
// an optional offset (Z, ±HH, ±HH:MM, ±HH:MM:SS, or the compressed forms).
func parseISOTimeAndOffset(s string, orig string) (Time, bool, int, error) {
	offsetStart := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'Z', 'z':
			offsetStart = i
		case '+', '-':
			offsetStart = i
		}
		if offsetStart >= 0 {
			break
		}
	}

	timeStr := s
	offsetStr := ""
	if offsetStart >= 0 {
		timeStr, offsetStr = s[:offsetStart], s[offsetStart:]
	}

	t, err := parseISOTimeOfDay(timeStr, orig)
	if err != nil {
		return Time{}, false, 0, err
	}
	if offsetStr == "" {
		return t, false, 0, nil
	}
	offsetSecs, err := parseISOOffset(offsetStr, orig)
	if err != nil {
		return Time{}, false, 0, err
	}
	return t, true, offsetSecs, nil
}

func parseISOTimeOfDay(s string, orig string) (Time, error) {
	var hh, mm, ss string
	var fracDigits string
	switch {
	case len(s) >= 8 && s[2] == ':' && s[5] == ':': // HH:MM:SS[.f]
		hh, mm, ss = s[0:2], s[3:5], s[6:8]
		if len(s) > 8 {
			fracDigits = parseISOFraction(s[8:], orig)
		}
	case len(s) >= 6 && s[2] != ':': // HHMMSS[.f]
		hh, mm, ss = s[0:2], s[2:4], s[4:6]
		if len(s) > 6 {
			fracDigits = parseISOFraction(s[6:], orig)
		}
	case len(s) == 5 && s[2] == ':': // HH:MM
		hh, mm, ss = s[0:2], s[3:5], "00"
	case len(s) == 4: // HHMM
		hh, mm, ss = s[0:2], s[2:4], "00"
	case len(s) == 2: // HH
		hh, mm, ss = s, "00", "00"
	default:
		return Time{}, newInvalidFormatError(orig, "unsupported time-of-day form")
	}
	h, e1 := atoiExact(hh)
	m, e2 := atoiExact(mm)
	sec, e3 := atoiExact(ss)
	if e1 != nil || e2 != nil || e3 != nil {
		return Time{}, newInvalidFormatError(orig, "non-digit in time")
	}
	nanos := 0
	if fracDigits != "" {
		if len(fracDigits) > 9 {
			return Time{}, newInvalidFormatError(orig, "more than nine fractional digits")
		}
		n, err := strconv.Atoi(fracDigits)
		if err != nil {
			return Time{}, newInvalidFormatError(orig, "invalid fraction")
		}
		nanos = int(scaleFraction(n, len(fracDigits)))
	}
	return NewTime(h, m, sec, nanos)
}

// parseISOFraction strips the leading '.'/',' and returns the raw digit run.
func parseISOFraction(s string, orig string) string {
	if len(s) == 0 || (s[0] != '.' && s[0] != ',') {
		return ""
	}
	i := 1
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[1:i]
}

// parseISOOffset accepts Z/z, ±HH, ±HH:MM, ±HH:MM:SS, ±HHMM, ±HHMMSS.
// Rejects a magnitude of 24h or more.
func parseISOOffset(s string, orig string) (int, error) {
	if s == "Z" || s == "z" {
		return 0, nil
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	} else if s[0] != '+' {
		return 0, newInvalidFormatError(orig, "expected offset sign")
	}
	body := s[1:]
	var hh, mm, ss string
	switch {
	case len(body) == 2:
		hh, mm, ss = body, "0", "0"
	case len(body) == 4:
		hh, mm, ss = body[0:2], body[2:4], "0"
	case len(body) == 5 && body[2] == ':':
		hh, mm, ss = body[0:2], body[3:5], "0"
	case len(body) == 6:
		hh, mm, ss = body[0:2], body[2:4], body[4:6]
	case len(body) == 8 && body[2] == ':' && body[5] == ':':
		hh, mm, ss = body[0:2], body[3:5], body[6:8]
	default:
		return 0, newInvalidFormatError(orig, "unsupported offset form")
	}
	h, e1 := atoiExact(hh)
	m, e2 := atoiExact(mm)
	sec, e3 := atoiExact(ss)
	if e1 != nil || e2 != nil || e3 != nil {
		return 0, newInvalidFormatError(orig, "non-digit in offset")
	}
	if h >= 24 {
		return 0, newInvalidFormatError(orig, "offset magnitude must be less than 24h")
	}
	total := h*3600 + m*60 + sec
	return sign * total, nil
}

// ParsePlainDateTime parses the common-ISO profile, ignoring any offset or
// zone suffix present (a PlainDateTime has neither).
func ParsePlainDateTime(s string) (PlainDateTime, error) {
	m, err := parseCommonISOCore(s)
	if err != nil {
		return PlainDateTime{}, err
	}
	return PlainDateTime{date: m.date, time: m.time}, nil
}

// ParseOffsetDateTime parses the common-ISO profile, requiring an offset
// and rejecting any zone-key suffix.
func ParseOffsetDateTime(s string) (OffsetDateTime, error) {
	m, err := parseCommonISOCore(s)
	if err != nil {
		return OffsetDateTime{}, err
	}
	if !m.hasOffset {
		return OffsetDateTime{}, newInvalidFormatError(s, "offset is required")
	}
	if m.zoneKey != "" {
		return OffsetDateTime{}, newInvalidFormatError(s, "unexpected zone-key suffix")
	}
	return NewOffsetDateTime(m.date, m.time, m.offsetSecs)
}

// ParseZonedDateTime parses "<common-iso>[<zone-key>]". If an offset is
// present, it must match one of the offsets the zone declares for that
// civil time exactly, or parsing fails with InvalidOffsetForZoneError (S4);
// if no offset is present, disambig resolves ambiguity the same way
// NewZonedDateTime does.
func ParseZonedDateTime(s string, disambig Disambiguation) (ZonedDateTime, error) {
	m, err := parseCommonISOCore(s)
	if err != nil {
		return ZonedDateTime{}, err
	}
	if m.zoneKey == "" {
		return ZonedDateTime{}, newInvalidFormatError(s, "zone-key suffix is required")
	}
	zone, err := LoadTimeZone(m.zoneKey)
	if err != nil {
		return ZonedDateTime{}, err
	}
	if !m.hasOffset {
		return NewZonedDateTime(m.date, m.time, zone, disambig)
	}

	local := PlainDateTime{date: m.date, time: m.time}
	res := zone.resolveLocal(local)
	candidates := []int{res.Earlier.Seconds}
	if res.Kind != tz.Unambiguous {
		candidates = append(candidates, res.Later.Seconds)
	}
	for _, c := range candidates {
		if c == m.offsetSecs {
			return ZonedDateTime{local: local, zone: zone, offset: c}, nil
		}
	}
	return ZonedDateTime{}, &InvalidOffsetForZoneError{Value: s, Zone: m.zoneKey}
}

// ParseInstant parses the common-ISO profile, requiring an offset (used to
// compute the instant) and rejecting a zone-key suffix.
func ParseInstant(s string) (Instant, error) {
	odt, err := ParseOffsetDateTime(s)
	if err != nil {
		return Instant{}, err
	}
	return odt.ToInstant()
}

// ParseDate parses a bare common-ISO date, extended or basic form.
func ParseDate(s string) (Date, error) {
	return parseISODate(s, s)
}

// ParseTime parses a bare common-ISO time-of-day with no offset.
func ParseTime(s string) (Time, error) {
	t, hasOffset, _, err := parseISOTimeAndOffset(s, s)
	if err != nil {
		return Time{}, err
	}
	if hasOffset {
		return Time{}, newInvalidFormatError(s, "unexpected offset on a time-of-day")
	}
	return t, nil
}

// ParseYearMonth parses "YYYY-MM".
func ParseYearMonth(s string) (YearMonth, error) {
	if len(s) != 7 || s[4] != '-' {
		return YearMonth{}, newInvalidFormatError(s, "expected YYYY-MM")
	}
	y, e1 := atoiExact(s[0:4])
	m, e2 := atoiExact(s[5:7])
	if e1 != nil || e2 != nil {
		return YearMonth{}, newInvalidFormatError(s, "non-digit in year-month")
	}
	return NewYearMonth(y, m)
}

// ParseMonthDay parses "--MM-DD" (RFC 3339 appendix / ISO recurring form).
func ParseMonthDay(s string) (MonthDay, error) {
	if len(s) != 7 || s[0] != '-' || s[1] != '-' || s[4] != '-' {
		return MonthDay{}, newInvalidFormatError(s, "expected --MM-DD")
	}
	m, e1 := atoiExact(s[2:4])
	d, e2 := atoiExact(s[5:7])
	if e1 != nil || e2 != nil {
		return MonthDay{}, newInvalidFormatError(s, "non-digit in month-day")
	}
	return NewMonthDay(m, d)
}

// FormatCommonISO renders the common-ISO profile for each aware/naive type.
func (i Instant) FormatCommonISO() string        { return i.String() }
func (p PlainDateTime) FormatCommonISO() string  { return p.String() }
func (o OffsetDateTime) FormatCommonISO() string { return o.String() }
func (z ZonedDateTime) FormatCommonISO() string  { return z.String() }
func (d Date) FormatCommonISO() string           { return d.String() }
func (t Time) FormatCommonISO() string           { return t.String() }
func (ym YearMonth) FormatCommonISO() string     { return ym.String() }
func (md MonthDay) FormatCommonISO() string      { return md.String() }
