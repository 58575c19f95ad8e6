package chrono

import "strings"

// ParseRFC3339Instant parses an RFC 3339 string into an Instant. The offset
// is mandatory; T/t/space/_ are accepted separators. "-00:00" means
// "instant known, local offset unknown" and is rejected here, since an
// Instant carries no offset to be unknown about.
func ParseRFC3339Instant(s string) (Instant, error) {
	odt, err := parseRFC3339(s)
	if err != nil {
		return Instant{}, err
	}
	if odt.rawOffsetIsNegativeZero {
		return Instant{}, newInvalidFormatError(s, `"-00:00" is not valid for an Instant`)
	}
	return odt.OffsetDateTime.ToInstant()
}

// ParseRFC3339OffsetDateTime parses an RFC 3339 string into an
// OffsetDateTime. "Z", "+00:00", and "-00:00" are all accepted as
// zero-offset.
func ParseRFC3339OffsetDateTime(s string) (OffsetDateTime, error) {
	odt, err := parseRFC3339(s)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return odt.OffsetDateTime, nil
}

type rfc3339Result struct {
	OffsetDateTime
	rawOffsetIsNegativeZero bool
}

func parseRFC3339(s string) (rfc3339Result, error) {
	orig := s
	sepIdx := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'T', 't', ' ', '_':
			sepIdx = i
		}
		if sepIdx >= 0 {
			break
		}
	}
	if sepIdx < 0 || sepIdx != 10 {
		return rfc3339Result{}, newInvalidFormatError(orig, "expected YYYY-MM-DD separator HH:MM:SS")
	}
	date, err := parseISODate(s[:10], orig)
	if err != nil {
		return rfc3339Result{}, err
	}
	rest := s[11:]
	neg0 := strings.HasSuffix(rest, "-00:00")
	t, hasOffset, offsetSecs, err := parseISOTimeAndOffset(rest, orig)
	if err != nil {
		return rfc3339Result{}, err
	}
	if !hasOffset {
		return rfc3339Result{}, newInvalidFormatError(orig, "offset is required in RFC 3339")
	}
	odt, err := NewOffsetDateTime(date, t, offsetSecs)
	if err != nil {
		return rfc3339Result{}, err
	}
	return rfc3339Result{OffsetDateTime: odt, rawOffsetIsNegativeZero: neg0}, nil
}

// FormatRFC3339 renders o per RFC 3339, with "Z" for zero offset.
func (o OffsetDateTime) FormatRFC3339() string { return o.String() }
