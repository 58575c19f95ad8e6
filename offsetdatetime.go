package chrono

import "fmt"

const maxOffsetSeconds = 86_399

// OffsetDateTime is a (Date, Time, offset_seconds) triple. It stores a
// fixed offset and does not know about DST: replacing fields never
// re-consults any zone.
type OffsetDateTime struct {
	date   Date
	time   Time
	offset int
}

func validateOffset(value string, offsetSeconds int) error {
	if offsetSeconds < -maxOffsetSeconds || offsetSeconds > maxOffsetSeconds {
		return newRangeError(value, "offset-seconds", int64(offsetSeconds), -maxOffsetSeconds, maxOffsetSeconds)
	}
	return nil
}

// NewOffsetDateTime constructs an OffsetDateTime, validating that the
// resulting instant is in range.
func NewOffsetDateTime(date Date, time Time, offsetSeconds int) (OffsetDateTime, error) {
	if err := validateOffset(date.String(), offsetSeconds); err != nil {
		return OffsetDateTime{}, err
	}
	odt := OffsetDateTime{date: date, time: time, offset: offsetSeconds}
	if _, err := odt.ToInstant(); err != nil {
		return OffsetDateTime{}, err
	}
	return odt, nil
}

func newOffsetDateTimeFromInstant(i Instant, offsetSeconds int) (OffsetDateTime, error) {
	if err := validateOffset(fmt.Sprintf("instant %d", i.seconds), offsetSeconds); err != nil {
		return OffsetDateTime{}, err
	}
	shifted, err := i.Add(Seconds(int64(offsetSeconds)))
	if err != nil {
		return OffsetDateTime{}, err
	}
	civil := shifted.ToUTC()
	return OffsetDateTime{date: civil.date, time: civil.time, offset: offsetSeconds}, nil
}

// NowFixed returns the current instant expressed in a fixed offset. Naming
// this "now in a fixed offset" ignore_dst is required because a fixed
// offset silently stops tracking DST the instant it is captured.
func NowFixed(offsetSeconds int, ignoreDST bool) (OffsetDateTime, error) {
	if !ignoreDST {
		return OffsetDateTime{}, ErrImplicitlyIgnoringDST
	}
	return Now().ToFixedOffset(offsetSeconds)
}

func (o OffsetDateTime) Date() Date         { return o.date }
func (o OffsetDateTime) Time() Time         { return o.time }
func (o OffsetDateTime) OffsetSeconds() int { return o.offset }

func (o OffsetDateTime) Year() int       { return o.date.Year() }
func (o OffsetDateTime) Month() int      { return o.date.Month() }
func (o OffsetDateTime) Day() int        { return o.date.Day() }
func (o OffsetDateTime) Hour() int       { return o.time.Hour() }
func (o OffsetDateTime) Minute() int     { return o.time.Minute() }
func (o OffsetDateTime) Second() int     { return o.time.Second() }
func (o OffsetDateTime) Nanosecond() int { return o.time.Nanosecond() }

// ToInstant converts o to the Instant it designates.
func (o OffsetDateTime) ToInstant() (Instant, error) {
	seconds := o.date.epochDays()*86_400 + int64(o.time.secondsSinceMidnight()) - int64(o.offset)
	return newInstant(seconds, int64(o.time.Nanosecond()))
}

// ToFixedOffset returns o reprojected into a different fixed offset (same instant).
func (o OffsetDateTime) ToFixedOffset(offsetSeconds int) (OffsetDateTime, error) {
	instant, err := o.ToInstant()
	if err != nil {
		return OffsetDateTime{}, err
	}
	return newOffsetDateTimeFromInstant(instant, offsetSeconds)
}

// InTimeZone reprojects the same instant into zone.
func (o OffsetDateTime) InTimeZone(zone TimeZone) (ZonedDateTime, error) {
	instant, err := o.ToInstant()
	if err != nil {
		return ZonedDateTime{}, err
	}
	return FromInstant(instant, zone), nil
}

// ToSystemTZ reprojects the same instant into the host's configured zone.
func (o OffsetDateTime) ToSystemTZ() (SystemDateTime, error) {
	instant, err := o.ToInstant()
	if err != nil {
		return SystemDateTime{}, err
	}
	return instant.ToSystemTZ()
}

// Replace changes fields of o without re-consulting any zone. This is only
// valid with ignoreDST=true: the caller is acknowledging that the stored
// offset may no longer match civil reality after the change.
func (o OffsetDateTime) Replace(date Date, time Time, ignoreDST bool) (OffsetDateTime, error) {
	if !ignoreDST {
		return OffsetDateTime{}, ErrImplicitlyIgnoringDST
	}
	return NewOffsetDateTime(date, time, o.offset)
}

// AddTimeDelta adds a TimeDelta via the instant, then reprojects to the same
// fixed offset. This crosses no zone boundary by definition (the offset is
// fixed), so no DST confirmation is required.
func (o OffsetDateTime) AddTimeDelta(delta TimeDelta) (OffsetDateTime, error) {
	instant, err := o.ToInstant()
	if err != nil {
		return OffsetDateTime{}, err
	}
	shifted, err := instant.Add(delta)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return newOffsetDateTimeFromInstant(shifted, o.offset)
}

// AddDateDelta shifts the Date component, preserving the stored offset and
// time-of-day without consulting any zone; requires ignoreDST because a
// fixed offset cannot tell whether DST applied at the destination date.
func (o OffsetDateTime) AddDateDelta(delta DateDelta, ignoreDST bool) (OffsetDateTime, error) {
	if !ignoreDST {
		return OffsetDateTime{}, ErrImplicitlyIgnoringDST
	}
	d, err := o.date.Add(delta)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return NewOffsetDateTime(d, o.time, o.offset)
}

func (o OffsetDateTime) String() string {
	return o.date.String() + "T" + o.time.String() + formatOffset(o.offset)
}

func formatOffset(offsetSeconds int) string {
	if offsetSeconds == 0 {
		return "Z"
	}
	sign := "+"
	abs := offsetSeconds
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	h := abs / 3600
	m := (abs % 3600) / 60
	s := abs % 60
	if s != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}

// Compare returns -1, 0, or 1 as o is before, equal to, or after other, by instant.
func (o OffsetDateTime) Compare(other OffsetDateTime) int {
	a, _ := o.ToInstant()
	b, _ := other.ToInstant()
	return a.Compare(b)
}

// Equal reports instant equality (not exact field equality; use ExactEqual for that).
func (o OffsetDateTime) Equal(other OffsetDateTime) bool { return o.Compare(other) == 0 }

// ExactEqual requires identical stored fields, including offset.
func (o OffsetDateTime) ExactEqual(other OffsetDateTime) bool {
	return o.date.Equal(other.date) && o.time.Equal(other.time) && o.offset == other.offset
}
