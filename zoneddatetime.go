package chrono

import "github.com/rickb777/chrono/tz"

// ZonedDateTime pairs a civil (Date, Time) reading with a TimeZone,
// resolved to a specific instant at construction time via a Disambiguation
// choice. Unlike OffsetDateTime, arithmetic on a ZonedDateTime re-consults
// the zone, so it stays correct across DST transitions.
type ZonedDateTime struct {
	local  PlainDateTime
	zone   TimeZone
	offset int
}

// NewZonedDateTime resolves (date, time) against zone, applying disambig
// if the civil moment is a gap or a fold, and failing with
// SkippedTimeError/AmbiguousTimeError if disambig is Raise.
func NewZonedDateTime(date Date, time Time, zone TimeZone, disambig Disambiguation) (ZonedDateTime, error) {
	local := PlainDateTime{date: date, time: time}
	res := zone.resolveLocal(local)

	switch res.Kind {
	case tz.Unambiguous:
		return ZonedDateTime{local: local, zone: zone, offset: res.Earlier.Seconds}, nil
	case tz.Fold:
		offset, err := pickFold(res, disambig, local.String(), zone.Key())
		if err != nil {
			return ZonedDateTime{}, err
		}
		return ZonedDateTime{local: local, zone: zone, offset: offset}, nil
	default: // tz.Gap
		return resolveGap(res, disambig, local, zone)
	}
}

func pickFold(res tz.LocalResolution, disambig Disambiguation, civil, zoneKey string) (int, error) {
	switch disambig {
	case Raise:
		return 0, &AmbiguousTimeError{Civil: civil, Zone: zoneKey}
	case Earlier:
		return res.Earlier.Seconds, nil
	case Later:
		return res.Later.Seconds, nil
	default: // Compatible
		return res.Earlier.Seconds, nil
	}
}

// resolveGap handles a skipped local time. Earlier moves the reading back
// by the size of the gap and keeps the offset in effect before it;
// Later/Compatible move it forward by the size of the gap (the conventional
// "spring forward" behavior) and take the offset after it; Raise fails
// outright.
func resolveGap(res tz.LocalResolution, disambig Disambiguation, local PlainDateTime, zone TimeZone) (ZonedDateTime, error) {
	if disambig == Raise {
		return ZonedDateTime{}, &SkippedTimeError{Civil: local.String(), Zone: zone.Key()}
	}
	gapWidth := int64(res.Later.Seconds - res.Earlier.Seconds)
	var shifted PlainDateTime
	var offset int
	var err error
	switch disambig {
	case Earlier:
		shifted, err = local.addNanos(-gapWidth * 1_000_000_000)
		offset = res.Earlier.Seconds
	default: // Later, Compatible
		shifted, err = local.addNanos(gapWidth * 1_000_000_000)
		offset = res.Later.Seconds
	}
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{local: shifted, zone: zone, offset: offset}, nil
}

// FromInstant projects instant into zone, computing the unique civil
// reading and offset that applies.
func FromInstant(instant Instant, zone TimeZone) ZonedDateTime {
	off := zone.offsetForInstant(instant)
	shifted, _ := instant.Add(Seconds(int64(off.Seconds)))
	return ZonedDateTime{local: shifted.ToUTC(), zone: zone, offset: off.Seconds}
}

// NowIn returns the current instant projected into zone.
func NowIn(zone TimeZone) ZonedDateTime { return FromInstant(Now(), zone) }

func (z ZonedDateTime) Date() Date         { return z.local.date }
func (z ZonedDateTime) Time() Time         { return z.local.time }
func (z ZonedDateTime) TimeZone() TimeZone { return z.zone }
func (z ZonedDateTime) OffsetSeconds() int { return z.offset }

func (z ZonedDateTime) Year() int       { return z.local.Year() }
func (z ZonedDateTime) Month() int      { return z.local.Month() }
func (z ZonedDateTime) Day() int        { return z.local.Day() }
func (z ZonedDateTime) Hour() int       { return z.local.Hour() }
func (z ZonedDateTime) Minute() int     { return z.local.Minute() }
func (z ZonedDateTime) Second() int     { return z.local.Second() }
func (z ZonedDateTime) Nanosecond() int { return z.local.Nanosecond() }

// ToInstant returns the instant z designates.
func (z ZonedDateTime) ToInstant() (Instant, error) {
	seconds := z.local.date.epochDays()*86_400 + int64(z.local.time.secondsSinceMidnight()) - int64(z.offset)
	return newInstant(seconds, int64(z.local.time.Nanosecond()))
}

// ToFixedOffset reprojects z to a fixed offset, discarding its zone.
func (z ZonedDateTime) ToFixedOffset() (OffsetDateTime, error) {
	return NewOffsetDateTime(z.local.date, z.local.time, z.offset)
}

// InTimeZone reprojects the same instant into a different zone.
func (z ZonedDateTime) InTimeZone(zone TimeZone) (ZonedDateTime, error) {
	instant, err := z.ToInstant()
	if err != nil {
		return ZonedDateTime{}, err
	}
	return FromInstant(instant, zone), nil
}

// AddTimeDelta adds delta via the instant timeline, then reprojects into
// z's zone; this is the DST-safe addition and never needs disambiguation,
// since the target civil moment is whatever the zone says it is.
func (z ZonedDateTime) AddTimeDelta(delta TimeDelta) (ZonedDateTime, error) {
	instant, err := z.ToInstant()
	if err != nil {
		return ZonedDateTime{}, err
	}
	shifted, err := instant.Add(delta)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return FromInstant(shifted, z.zone), nil
}

// SubTimeDelta subtracts delta via the instant timeline.
func (z ZonedDateTime) SubTimeDelta(delta TimeDelta) (ZonedDateTime, error) {
	neg, err := delta.Neg()
	if err != nil {
		return ZonedDateTime{}, err
	}
	return z.AddTimeDelta(neg)
}

// AddDateDelta shifts the Date component in civil time, then re-resolves
// against the zone using disambig (the destination date may land in a gap
// or fold the origin date did not).
func (z ZonedDateTime) AddDateDelta(delta DateDelta, disambig Disambiguation) (ZonedDateTime, error) {
	d, err := z.local.date.Add(delta)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return NewZonedDateTime(d, z.local.time, z.zone, disambig)
}

// SubDateDelta is AddDateDelta with the delta negated.
func (z ZonedDateTime) SubDateDelta(delta DateDelta, disambig Disambiguation) (ZonedDateTime, error) {
	neg, err := delta.Negate()
	if err != nil {
		return ZonedDateTime{}, err
	}
	return z.AddDateDelta(neg, disambig)
}

// AddDateTimeDelta applies the calendar part in civil time (re-resolving
// with disambig), then the time part via the instant timeline.
func (z ZonedDateTime) AddDateTimeDelta(delta DateTimeDelta, disambig Disambiguation) (ZonedDateTime, error) {
	shifted, err := z.AddDateDelta(delta.dateDelta, disambig)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return shifted.AddTimeDelta(delta.timeDelta)
}

// Replace changes civil fields, re-resolving against the zone with disambig.
func (z ZonedDateTime) Replace(date Date, time Time, disambig Disambiguation) (ZonedDateTime, error) {
	return NewZonedDateTime(date, time, z.zone, disambig)
}

func (z ZonedDateTime) String() string {
	return z.local.String() + formatOffset(z.offset) + "[" + z.zone.Key() + "]"
}

// ToSystemTZ reprojects the same instant into the host's configured zone.
func (z ZonedDateTime) ToSystemTZ() (SystemDateTime, error) {
	instant, err := z.ToInstant()
	if err != nil {
		return SystemDateTime{}, err
	}
	return instant.ToSystemTZ()
}

// IsAmbiguous reports whether z's civil reading falls in a fold of its
// zone, i.e. whether the stored offset is doing real disambiguation work.
func (z ZonedDateTime) IsAmbiguous() bool {
	return z.zone.resolveLocal(z.local).Kind == tz.Fold
}

// Fold reports whether z names the second (post-transition) pass through an
// ambiguous civil reading; false for unambiguous readings and for the
// earlier side of a fold.
func (z ZonedDateTime) Fold() bool {
	res := z.zone.resolveLocal(z.local)
	return res.Kind == tz.Fold && z.offset == res.Later.Seconds
}

// Compare orders by instant.
func (z ZonedDateTime) Compare(other ZonedDateTime) int {
	a, _ := z.ToInstant()
	b, _ := other.ToInstant()
	return a.Compare(b)
}

// Equal reports instant equality; two ZonedDateTimes in different zones are
// equal when they name the same moment. Use ExactEqual for field identity.
func (z ZonedDateTime) Equal(other ZonedDateTime) bool { return z.Compare(other) == 0 }

// ExactEqual requires identical civil fields, offset, and zone key.
func (z ZonedDateTime) ExactEqual(other ZonedDateTime) bool {
	return z.local.Equal(other.local) && z.offset == other.offset && z.zone.Key() == other.zone.Key()
}
