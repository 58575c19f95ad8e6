package chrono

import "fmt"

// RoundUnit names the granularity rounding snaps to.
type RoundUnit int

const (
	RoundDay RoundUnit = iota
	RoundHour
	RoundMinute
	RoundSecond
	RoundMillisecond
	RoundMicrosecond
	RoundNanosecond
)

func (u RoundUnit) nanos() int64 {
	switch u {
	case RoundDay:
		return 86_400_000_000_000
	case RoundHour:
		return 3_600_000_000_000
	case RoundMinute:
		return 60_000_000_000
	case RoundSecond:
		return 1_000_000_000
	case RoundMillisecond:
		return 1_000_000
	case RoundMicrosecond:
		return 1_000
	default:
		return 1
	}
}

// perCoarser returns how many of u fit in the next coarser unit; a valid
// rounding increment must divide this evenly so the grid tiles the day.
func (u RoundUnit) perCoarser() int {
	switch u {
	case RoundDay:
		return 1
	case RoundHour:
		return 24
	case RoundMinute, RoundSecond:
		return 60
	default: // millisecond, microsecond, nanosecond
		return 1000
	}
}

// RoundMode selects how a value between two grid points is handled.
type RoundMode int

const (
	// RoundHalfEven rounds to the nearest grid point, breaking exact ties
	// to the even neighbor (banker's rounding, the default).
	RoundHalfEven RoundMode = iota
	RoundCeil
	RoundFloor
	// RoundHalfCeil and RoundHalfFloor round to nearest, breaking ties
	// upward and downward respectively.
	RoundHalfCeil
	RoundHalfFloor
)

// roundGrid validates increment against unit and returns the grid size in
// nanoseconds. A day increment must be exactly 1; a sub-day increment must
// divide the count of that unit in the next coarser unit.
func roundGrid(unit RoundUnit, increment int) (int64, error) {
	if increment < 1 {
		return 0, fmt.Errorf("chrono: rounding increment %d is not positive", increment)
	}
	per := unit.perCoarser()
	if increment > per || per%increment != 0 {
		return 0, fmt.Errorf("chrono: rounding increment %d does not divide %d", increment, per)
	}
	return unit.nanos() * int64(increment), nil
}

func roundNanos(n, grid int64, mode RoundMode) int64 {
	return roundNanosBiased(n, grid, mode, false)
}

// roundNanosBiased rounds n to a multiple of grid. baseOdd flips the
// half-even parity judgment for callers that round only the residue of a
// larger value whose split-off quotient is odd.
func roundNanosBiased(n, grid int64, mode RoundMode, baseOdd bool) int64 {
	q := n / grid
	r := n % grid
	if r < 0 {
		q--
		r += grid
	}
	switch mode {
	case RoundFloor:
		// q already floors.
	case RoundCeil:
		if r != 0 {
			q++
		}
	case RoundHalfFloor:
		if r*2 > grid {
			q++
		}
	case RoundHalfCeil:
		if r*2 >= grid {
			q++
		}
	default: // RoundHalfEven
		twice := r * 2
		odd := q%2 != 0
		if baseOdd {
			odd = !odd
		}
		switch {
		case twice > grid:
			q++
		case twice == grid && odd:
			q++
		}
	}
	return q * grid
}

// Round rounds the Instant to the nearest increment-of-unit multiple. The
// day unit is rejected: an Instant has no calendar day boundary to anchor
// to; use PlainDateTime or a zoned type.
func (i Instant) Round(unit RoundUnit, increment int, mode RoundMode) (Instant, error) {
	if unit == RoundDay {
		return Instant{}, fmt.Errorf("chrono: Instant has no calendar day to round to; use PlainDateTime or a zoned type")
	}
	grid, err := roundGrid(unit, increment)
	if err != nil {
		return Instant{}, err
	}
	total := i.seconds*1_000_000_000 + int64(i.nanos)
	rounded := roundNanos(total, grid, mode)
	return newInstant(rounded/1_000_000_000, rounded%1_000_000_000)
}

// Round rounds the time-of-day to the nearest increment-of-unit multiple
// within its day, carrying into an adjacent day if it rounds past midnight
// (the returned int64 is the day overflow, as from timeFromNanosSinceMidnight).
func (t Time) Round(unit RoundUnit, increment int, mode RoundMode) (Time, int64, error) {
	if unit == RoundDay {
		return Time{}, 0, fmt.Errorf("chrono: Time has no larger unit than a day to round to")
	}
	grid, err := roundGrid(unit, increment)
	if err != nil {
		return Time{}, 0, err
	}
	nt, overflow := timeFromNanosSinceMidnight(roundNanos(t.nanosSinceMidnight(), grid, mode))
	return nt, overflow, nil
}

// Round rounds a PlainDateTime to the nearest increment-of-unit multiple,
// rolling the date forward/backward on overflow. The day unit snaps to the
// nearer midnight of the civil day (increment must be 1).
func (p PlainDateTime) Round(unit RoundUnit, increment int, mode RoundMode) (PlainDateTime, error) {
	if unit == RoundDay {
		grid, err := roundGrid(unit, increment)
		if err != nil {
			return PlainDateTime{}, err
		}
		if roundNanos(p.time.nanosSinceMidnight(), grid, mode) == 0 {
			return PlainDateTime{date: p.date, time: Midnight}, nil
		}
		d, err := dateFromEpochDays(p.date.epochDays() + 1)
		if err != nil {
			return PlainDateTime{}, err
		}
		return PlainDateTime{date: d, time: Midnight}, nil
	}
	t, overflow, err := p.time.Round(unit, increment, mode)
	if err != nil {
		return PlainDateTime{}, err
	}
	if overflow == 0 {
		return PlainDateTime{date: p.date, time: t}, nil
	}
	d, err := dateFromEpochDays(p.date.epochDays() + overflow)
	if err != nil {
		return PlainDateTime{}, err
	}
	return PlainDateTime{date: d, time: t}, nil
}

// Round rounds a ZonedDateTime's civil reading and re-resolves against its
// zone: rounding near a DST boundary can change which offset applies,
// which is why this re-consults the zone instead of just shifting the
// stored offset. The day unit follows the civil day, not the 86400-second
// day, so a 23- or 25-hour day still snaps to its own midnights.
func (z ZonedDateTime) Round(unit RoundUnit, increment int, mode RoundMode, disambig Disambiguation) (ZonedDateTime, error) {
	rounded, err := z.local.Round(unit, increment, mode)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return NewZonedDateTime(rounded.date, rounded.time, z.zone, disambig)
}

// Round rounds a TimeDelta to the nearest increment-of-unit multiple. The
// delta is split at a day boundary first (every valid grid tiles a day
// evenly), so the full range survives without a 128-bit nanosecond count;
// the half-even tie-break accounts for the parity of the split-off days.
func (d TimeDelta) Round(unit RoundUnit, increment int, mode RoundMode) (TimeDelta, error) {
	grid, err := roundGrid(unit, increment)
	if err != nil {
		return TimeDelta{}, err
	}
	const dayNanos = 86_400_000_000_000
	days := floorDiv(d.seconds, 86_400)
	remNanos := (d.seconds-days*86_400)*1_000_000_000 + int64(d.nanos)
	baseOdd := (days%2 != 0) && (dayNanos/grid)%2 != 0
	rounded := roundNanosBiased(remNanos, grid, mode, baseOdd)
	return NewTimeDelta(days*86_400+rounded/1_000_000_000, rounded%1_000_000_000)
}
