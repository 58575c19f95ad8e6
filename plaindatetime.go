package chrono

import "fmt"

// PlainDateTime is a civil (Date, Time) pair detached from any offset or
// zone: a wall-clock reading with no notion of "where".
type PlainDateTime struct {
	date Date
	time Time
}

// NewPlainDateTime constructs a PlainDateTime.
func NewPlainDateTime(date Date, time Time) PlainDateTime {
	return PlainDateTime{date: date, time: time}
}

func (p PlainDateTime) Date() Date { return p.date }
func (p PlainDateTime) Time() Time { return p.time }

func (p PlainDateTime) Year() int       { return p.date.Year() }
func (p PlainDateTime) Month() int      { return p.date.Month() }
func (p PlainDateTime) Day() int        { return p.date.Day() }
func (p PlainDateTime) Hour() int       { return p.time.Hour() }
func (p PlainDateTime) Minute() int     { return p.time.Minute() }
func (p PlainDateTime) Second() int     { return p.time.Second() }
func (p PlainDateTime) Nanosecond() int { return p.time.Nanosecond() }

func (p PlainDateTime) String() string {
	return fmt.Sprintf("%sT%s", p.date.String(), p.time.String())
}

// Compare returns -1, 0, or 1 as p is before, equal to, or after other,
// comparing strictly by field tuple (PlainDateTime has no instant to
// compare by).
func (p PlainDateTime) Compare(other PlainDateTime) int {
	if c := p.date.Compare(other.date); c != 0 {
		return c
	}
	return p.time.Compare(other.time)
}

func (p PlainDateTime) Equal(other PlainDateTime) bool { return p.Compare(other) == 0 }

// ReplaceDate returns a copy of p with its Date replaced.
func (p PlainDateTime) ReplaceDate(date Date) PlainDateTime {
	return PlainDateTime{date: date, time: p.time}
}

// ReplaceTime returns a copy of p with its Time replaced.
func (p PlainDateTime) ReplaceTime(time Time) PlainDateTime {
	return PlainDateTime{date: p.date, time: time}
}

// addNanos shifts p by the given nanosecond count, rolling over calendar
// days as needed. This is the naive (zone-unaware) building block that
// resolveGap (zoneddatetime.go) uses to move a skipped local time across a gap.
func (p PlainDateTime) addNanos(nanos int64) (PlainDateTime, error) {
	t, overflow := timeFromNanosSinceMidnight(p.time.nanosSinceMidnight() + nanos)
	if overflow == 0 {
		return PlainDateTime{date: p.date, time: t}, nil
	}
	d, err := dateFromEpochDays(p.date.epochDays() + overflow)
	if err != nil {
		return PlainDateTime{}, err
	}
	return PlainDateTime{date: d, time: t}, nil
}

// AddTimeDelta adds a TimeDelta to p. Because p has no zone, this operation
// always requires ignoreDST=true when the delta is nonzero: the caller is asserting the absence of any zone semantics.
func (p PlainDateTime) AddTimeDelta(delta TimeDelta, ignoreDST bool) (PlainDateTime, error) {
	if !delta.IsZero() && !ignoreDST {
		return PlainDateTime{}, ErrImplicitlyIgnoringDST
	}
	// Work in whole seconds plus a sub-second residue rather than a single
	// nanosecond count: the full TimeDelta range does not fit in one int64
	// of nanoseconds.
	sec := p.date.epochDays()*86_400 + int64(p.time.secondsSinceMidnight()) + delta.seconds
	n := int64(p.time.Nanosecond()) + int64(delta.nanos)
	sec += n / 1_000_000_000
	n %= 1_000_000_000
	days := floorDiv(sec, 86_400)
	d, err := dateFromEpochDays(days)
	if err != nil {
		return PlainDateTime{}, err
	}
	t, _ := timeFromNanosSinceMidnight((sec-days*86_400)*1_000_000_000 + n)
	return PlainDateTime{date: d, time: t}, nil
}

// AddDateDelta adds a DateDelta to p's Date component; the time-of-day is
// unaffected, so no DST confirmation is required.
func (p PlainDateTime) AddDateDelta(delta DateDelta) (PlainDateTime, error) {
	d, err := p.date.Add(delta)
	if err != nil {
		return PlainDateTime{}, err
	}
	return PlainDateTime{date: d, time: p.time}, nil
}

// AddDateTimeDelta adds both parts of a DateTimeDelta; requires ignoreDST
// when the time part is nonzero.
func (p PlainDateTime) AddDateTimeDelta(delta DateTimeDelta, ignoreDST bool) (PlainDateTime, error) {
	withDate, err := p.AddDateDelta(delta.dateDelta)
	if err != nil {
		return PlainDateTime{}, err
	}
	return withDate.AddTimeDelta(delta.timeDelta, ignoreDST)
}
