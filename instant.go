package chrono

import (
	"fmt"
	"time"
)

// minInstantSeconds/maxInstantSeconds bound Instant to year 1 through year
// 9999 inclusive.
var (
	minInstantSeconds = daysFromCivil(1, 1, 1) * 86_400
	maxInstantSeconds = (daysFromCivil(9999, 12, 31)+1)*86_400 - 1
)

// Instant is a point on the UTC timeline with nanosecond precision:
// (seconds_since_unix_epoch, subsec_nanos in [0, 999_999_999]).
type Instant struct {
	seconds int64
	nanos   uint32
}

func newInstant(seconds int64, nanos int64) (Instant, error) {
	extra := nanos / 1_000_000_000
	rem := nanos % 1_000_000_000
	seconds += extra
	if rem < 0 {
		rem += 1_000_000_000
		seconds--
	}
	if seconds < minInstantSeconds || seconds > maxInstantSeconds {
		return Instant{}, newRangeError(fmt.Sprintf("%d", seconds), "instant-seconds", seconds, minInstantSeconds, maxInstantSeconds)
	}
	return Instant{seconds: seconds, nanos: uint32(rem)}, nil
}

// FromUTC constructs the Instant for the given UTC civil time.
func FromUTC(year, month, day, hour, minute, second int, nanosecond ...int) (Instant, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return Instant{}, err
	}
	t, err := NewTime(hour, minute, second, firstOr(nanosecond, 0))
	if err != nil {
		return Instant{}, err
	}
	seconds := d.epochDays()*86_400 + int64(t.secondsSinceMidnight())
	return newInstant(seconds, int64(t.Nanosecond()))
}

func firstOr(xs []int, def int) int {
	if len(xs) > 0 {
		return xs[0]
	}
	return def
}

// FromTimestamp constructs an Instant from whole seconds since the Unix epoch.
func FromTimestamp(seconds int64) (Instant, error) { return newInstant(seconds, 0) }

// FromTimestampMillis constructs an Instant from milliseconds since the Unix epoch.
func FromTimestampMillis(millis int64) (Instant, error) {
	return newInstant(millis/1000, (millis%1000)*1_000_000)
}

// FromTimestampNanos constructs an Instant from nanoseconds since the Unix epoch.
func FromTimestampNanos(nanos int64) (Instant, error) {
	return newInstant(nanos/1_000_000_000, nanos%1_000_000_000)
}

// Now returns the current Instant, truncated to nanosecond resolution from
// the host clock. If the host clock jumps backward, Now is
// permitted to return an equal or lesser value than a previous call.
func Now() Instant {
	t := time.Now().UTC()
	i, _ := newInstant(t.Unix(), int64(t.Nanosecond()))
	return i
}

func (i Instant) Timestamp() int64 { return i.seconds }

func (i Instant) TimestampMillis() int64 {
	return i.seconds*1000 + int64(i.nanos)/1_000_000
}

func (i Instant) TimestampNanos() int64 {
	return i.seconds*1_000_000_000 + int64(i.nanos)
}

func (i Instant) SubsecNanosecond() int { return int(i.nanos) }

// Add returns i + delta.
func (i Instant) Add(delta TimeDelta) (Instant, error) {
	return newInstant(i.seconds+delta.seconds, int64(i.nanos)+int64(delta.nanos))
}

// Sub returns i - delta.
func (i Instant) Sub(delta TimeDelta) (Instant, error) {
	return newInstant(i.seconds-delta.seconds, int64(i.nanos)-int64(delta.nanos))
}

// Difference returns i - other as a TimeDelta.
func (i Instant) Difference(other Instant) (TimeDelta, error) {
	return NewTimeDelta(i.seconds-other.seconds, int64(i.nanos)-int64(other.nanos))
}

// Compare returns -1, 0, or 1 as i is before, equal to, or after other.
func (i Instant) Compare(other Instant) int {
	if c := cmpInt64(i.seconds, other.seconds); c != 0 {
		return c
	}
	return cmpInt64(int64(i.nanos), int64(other.nanos))
}

func (i Instant) Equal(other Instant) bool { return i.Compare(other) == 0 }

// ToUTC returns the (Date, Time) civil reading of i in UTC, i.e. the
// fixed-offset-zero projection.
func (i Instant) ToUTC() PlainDateTime {
	days := floorDiv(i.seconds, 86_400)
	secOfDay := i.seconds - days*86_400
	d, _ := dateFromEpochDays(days)
	t, _ := timeFromNanosSinceMidnight(secOfDay*1_000_000_000 + int64(i.nanos))
	return PlainDateTime{date: d, time: t}
}

// ToFixedOffset returns the OffsetDateTime for i in the given fixed offset.
func (i Instant) ToFixedOffset(offsetSeconds int) (OffsetDateTime, error) {
	return newOffsetDateTimeFromInstant(i, offsetSeconds)
}

// InTimeZone projects i into zone; the result is never ambiguous, since
// every instant maps to exactly one civil reading per zone.
func (i Instant) InTimeZone(zone TimeZone) ZonedDateTime {
	return FromInstant(i, zone)
}

// InTZ loads key from the process-wide zone store and projects i into it.
func (i Instant) InTZ(key string) (ZonedDateTime, error) {
	zone, err := LoadTimeZone(key)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return FromInstant(i, zone), nil
}

// ToSystemTZ projects i into the host's configured zone.
func (i Instant) ToSystemTZ() (SystemDateTime, error) {
	zone, err := systemZone()
	if err != nil {
		return SystemDateTime{}, err
	}
	return SystemDateTime{z: FromInstant(i, zone)}, nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (i Instant) String() string {
	dt := i.ToUTC()
	return dt.Date().String() + "T" + dt.Time().String() + "Z"
}
