package chrono

import "github.com/rickb777/chrono/tz"

// SystemDateTime is a ZonedDateTime pinned to the host's configured local
// zone as probed (and cached) by tz.SystemTimeZone at construction. The
// value keeps the zone and offset it was built with, so it stays stable
// even if the host zone changes and tz.ResetSystem re-probes afterwards.
type SystemDateTime struct {
	z ZonedDateTime
}

func systemZone() (TimeZone, error) {
	zone, err := tz.SystemTimeZone()
	if err != nil {
		return TimeZone{}, err
	}
	return TimeZone{zone: zone}, nil
}

// NewSystemDateTime resolves (date, time) against the host's local zone.
func NewSystemDateTime(date Date, time Time, disambig Disambiguation) (SystemDateTime, error) {
	zone, err := systemZone()
	if err != nil {
		return SystemDateTime{}, err
	}
	z, err := NewZonedDateTime(date, time, zone, disambig)
	if err != nil {
		return SystemDateTime{}, err
	}
	return SystemDateTime{z: z}, nil
}

// NowLocal returns the current instant projected into the host's local zone.
func NowLocal() (SystemDateTime, error) {
	zone, err := systemZone()
	if err != nil {
		return SystemDateTime{}, err
	}
	return SystemDateTime{z: NowIn(zone)}, nil
}

func (s SystemDateTime) Date() Date                  { return s.z.Date() }
func (s SystemDateTime) Time() Time                  { return s.z.Time() }
func (s SystemDateTime) TimeZone() TimeZone          { return s.z.TimeZone() }
func (s SystemDateTime) OffsetSeconds() int          { return s.z.OffsetSeconds() }
func (s SystemDateTime) ToInstant() (Instant, error) { return s.z.ToInstant() }
func (s SystemDateTime) ToZoned() ZonedDateTime      { return s.z }

func (s SystemDateTime) Year() int       { return s.z.Year() }
func (s SystemDateTime) Month() int      { return s.z.Month() }
func (s SystemDateTime) Day() int        { return s.z.Day() }
func (s SystemDateTime) Hour() int       { return s.z.Hour() }
func (s SystemDateTime) Minute() int     { return s.z.Minute() }
func (s SystemDateTime) Second() int     { return s.z.Second() }
func (s SystemDateTime) Nanosecond() int { return s.z.Nanosecond() }

// ToFixedOffset freezes s's current offset into an OffsetDateTime.
func (s SystemDateTime) ToFixedOffset() (OffsetDateTime, error) { return s.z.ToFixedOffset() }

// Replace changes civil fields, re-resolving against the captured zone.
func (s SystemDateTime) Replace(date Date, time Time, disambig Disambiguation) (SystemDateTime, error) {
	z, err := s.z.Replace(date, time, disambig)
	return SystemDateTime{z: z}, err
}

func (s SystemDateTime) AddTimeDelta(delta TimeDelta) (SystemDateTime, error) {
	z, err := s.z.AddTimeDelta(delta)
	return SystemDateTime{z: z}, err
}

func (s SystemDateTime) AddDateDelta(delta DateDelta, disambig Disambiguation) (SystemDateTime, error) {
	z, err := s.z.AddDateDelta(delta, disambig)
	return SystemDateTime{z: z}, err
}

func (s SystemDateTime) AddDateTimeDelta(delta DateTimeDelta, disambig Disambiguation) (SystemDateTime, error) {
	z, err := s.z.AddDateTimeDelta(delta, disambig)
	return SystemDateTime{z: z}, err
}

func (s SystemDateTime) String() string { return s.z.String() }

func (s SystemDateTime) Compare(other SystemDateTime) int { return s.z.Compare(other.z) }
func (s SystemDateTime) Equal(other SystemDateTime) bool  { return s.z.Equal(other.z) }

// ExactEqual requires identical civil fields, offset, and zone key.
func (s SystemDateTime) ExactEqual(other SystemDateTime) bool { return s.z.ExactEqual(other.z) }
