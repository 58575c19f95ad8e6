package tz

import "sort"

// Zone is a fully decoded time zone: the recorded transition schedule plus
// the POSIX rule (if any) that projects offsets past its last transition.
type Zone struct {
	key   string
	data  Data
	posix *posixRule // nil if the footer was empty
	spans []span     // one per recorded transition, ascending by utc
}

func newZone(key string, data Data) (*Zone, error) {
	if err := validateData(data); err != nil {
		return nil, err
	}
	z := &Zone{key: key, data: data}
	if data.Footer != "" {
		rule, err := parsePosixRule(data.Footer)
		if err != nil {
			return nil, err
		}
		z.posix = &rule
	}
	z.spans = z.buildSpans()
	return z, nil
}

func validateData(data Data) error {
	if len(data.TransitionTypes) != len(data.Transitions) {
		return newFormatError("transition/type count mismatch: %d vs %d",
			len(data.Transitions), len(data.TransitionTypes))
	}
	for i, idx := range data.TransitionTypes {
		if int(idx) >= len(data.Types) {
			return newFormatError("transition %d names type %d of %d", i, idx, len(data.Types))
		}
	}
	for i := 1; i < len(data.Transitions); i++ {
		if data.Transitions[i] <= data.Transitions[i-1] {
			return newFormatError("transitions not strictly increasing at index %d", i)
		}
	}
	return nil
}

// ZoneFromPosix builds a Zone directly from a POSIX TZ rule string with no
// recorded transitions, as when the TZ environment variable carries a rule
// (e.g. "CET-1CEST,M3.5.0,M10.5.0/3") instead of a zone key.
func ZoneFromPosix(rule string) (*Zone, error) {
	parsed, err := parsePosixRule(rule)
	if err != nil {
		return nil, err
	}
	return &Zone{key: rule, posix: &parsed}, nil
}

// Key returns the zone identifier this Zone was loaded under, e.g.
// "America/Chicago".
func (z *Zone) Key() string { return z.key }

// Offset describes the local time type in effect at some instant or civil
// moment.
type Offset struct {
	Seconds     int
	Designation string
	IsDST       bool
}

// span is one change of local time type: at UTC instant utc, the offset in
// effect switches from `from` to `to`. The local wall-clock readings it
// disturbs are [utc+min(from,to), utc+max(from,to)): a gap when the offset
// grows, a fold when it shrinks.
type span struct {
	utc      int64
	from, to Offset
}

func (sp span) bandLo() int64 {
	return sp.utc + int64(min(sp.from.Seconds, sp.to.Seconds))
}

func (sp span) bandHi() int64 {
	return sp.utc + int64(max(sp.from.Seconds, sp.to.Seconds))
}

func (z *Zone) typeOffset(idx uint8) Offset {
	t := z.data.Types[idx]
	return Offset{Seconds: int(t.offsetSeconds), Designation: t.designation, IsDST: t.isDST}
}

// firstOffset is the offset applicable before the earliest recorded
// transition: the first non-DST type per the common reader convention, or
// the only type, or the POSIX std offset for a rule-only zone.
func (z *Zone) firstOffset() Offset {
	for _, t := range z.data.Types {
		if !t.isDST {
			return Offset{Seconds: int(t.offsetSeconds), Designation: t.designation, IsDST: false}
		}
	}
	if len(z.data.Types) > 0 {
		t := z.data.Types[0]
		return Offset{Seconds: int(t.offsetSeconds), Designation: t.designation, IsDST: t.isDST}
	}
	if z.posix != nil {
		return z.posix.stdOffsetValue()
	}
	return Offset{}
}

func (z *Zone) buildSpans() []span {
	spans := make([]span, 0, len(z.data.Transitions))
	prev := z.firstOffset()
	for i, utc := range z.data.Transitions {
		to := z.typeOffset(z.data.TransitionTypes[i])
		spans = append(spans, span{utc: utc, from: prev, to: to})
		prev = to
	}
	return spans
}

// OffsetForInstant returns the offset in effect at the given Unix time:
// the type at or after the greatest transition at or before it, the
// pre-first offset before any transition, and the POSIX footer projection
// past the last one.
func (z *Zone) OffsetForInstant(unixSeconds int64) Offset {
	trs := z.data.Transitions
	if len(trs) == 0 {
		if z.posix != nil {
			return z.posix.offsetForInstant(unixSeconds)
		}
		return z.firstOffset()
	}
	if unixSeconds >= trs[len(trs)-1] && z.posix != nil {
		return z.posix.offsetForInstant(unixSeconds)
	}
	idx := sort.Search(len(trs), func(i int) bool { return trs[i] > unixSeconds }) - 1
	if idx < 0 {
		return z.firstOffset()
	}
	return z.spans[idx].to
}

// Ambiguity classifies how a civil (local) moment maps onto the timeline.
type Ambiguity int

const (
	// Unambiguous means exactly one offset applies.
	Unambiguous Ambiguity = iota
	// Gap means the local time was skipped (e.g. spring-forward); no offset applies.
	Gap
	// Fold means the local time occurred twice (e.g. fall-back); two offsets apply.
	Fold
)

// LocalResolution is the result of resolving a civil moment against a Zone.
type LocalResolution struct {
	Kind Ambiguity
	// For Fold, Earlier is the offset of the first (pre-transition) pass
	// through the repeated reading and Later the second. For Gap, Earlier is
	// the offset in effect just before the jump and Later just after. For
	// Unambiguous only Earlier is populated.
	Earlier, Later Offset
}

// Resolve classifies the civil moment at localEpochSeconds (seconds since
// 1970-01-01T00:00:00 interpreted as if it were UTC, i.e. a naive local
// timestamp) against z's transition schedule, deferring to the POSIX footer
// for moments past the last recorded transition.
func (z *Zone) Resolve(localEpochSeconds int64) LocalResolution {
	if len(z.spans) == 0 {
		if z.posix != nil {
			return z.posix.resolveLocal(localEpochSeconds)
		}
		return LocalResolution{Kind: Unambiguous, Earlier: z.firstOffset()}
	}
	last := z.spans[len(z.spans)-1]
	if z.posix != nil && localEpochSeconds >= last.bandHi() {
		return z.posix.resolveLocal(localEpochSeconds)
	}
	return classifyLocal(z.spans, z.firstOffset(), localEpochSeconds)
}

// classifyLocal locates local among spans (ascending by utc). preFirst is
// the offset in effect before the first span.
func classifyLocal(spans []span, preFirst Offset, local int64) LocalResolution {
	// The last span whose disturbed band starts at or before local governs:
	// local either falls inside that band (gap or fold) or after it
	// (unambiguous under the span's target offset).
	idx := sort.Search(len(spans), func(i int) bool { return spans[i].bandLo() > local })
	if idx == 0 {
		return LocalResolution{Kind: Unambiguous, Earlier: preFirst}
	}
	sp := spans[idx-1]
	if local < sp.bandHi() {
		if sp.to.Seconds > sp.from.Seconds {
			return LocalResolution{Kind: Gap, Earlier: sp.from, Later: sp.to}
		}
		return LocalResolution{Kind: Fold, Earlier: sp.from, Later: sp.to}
	}
	return LocalResolution{Kind: Unambiguous, Earlier: sp.to}
}

func (r *posixRule) stdOffsetValue() Offset {
	return Offset{Seconds: r.stdOffset, Designation: r.stdName}
}

func (r *posixRule) dstOffsetValue() Offset {
	return Offset{Seconds: r.dstOffset, Designation: r.dstName, IsDST: true}
}

// spansForYear returns the two local-time-type changes r produces in civil
// year `year`. Transition times are specified in the wall clock of the type
// that is ending, so the UTC instant subtracts that type's offset.
func (r *posixRule) spansForYear(year int) [2]span {
	std, dst := r.stdOffsetValue(), r.dstOffsetValue()
	yearStart := daysFromCivil(year, 1, 1)
	jan1 := weekday(yearStart)
	leap := isLeapYear(year)
	dim := func(m int) int { return daysInMonth(year, m) }

	startWall := (yearStart+int64(r.start.dayOfYear(leap, dim, jan1)))*86400 + int64(r.start.timeOfDay)
	endWall := (yearStart+int64(r.end.dayOfYear(leap, dim, jan1)))*86400 + int64(r.end.timeOfDay)
	return [2]span{
		{utc: startWall - int64(std.Seconds), from: std, to: dst},
		{utc: endWall - int64(dst.Seconds), from: dst, to: std},
	}
}

// spansAround materializes the rule's transitions for the year containing
// the probe plus its neighbors, sorted by UTC instant. Three years cover
// every band that can straddle a year boundary, including the southern-
// hemisphere layout where DST wraps across the new year.
func (r *posixRule) spansAround(year int) []span {
	spans := make([]span, 0, 6)
	for y := year - 1; y <= year+1; y++ {
		if y < 1 || y > 9999 {
			continue
		}
		pair := r.spansForYear(y)
		spans = append(spans, pair[0], pair[1])
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].utc < spans[j].utc })
	return spans
}

func (r *posixRule) offsetForInstant(unixSeconds int64) Offset {
	if !r.hasDST {
		return r.stdOffsetValue()
	}
	year, _, _ := civilFromDays(floorDiv(unixSeconds, 86400))
	spans := r.spansAround(year)
	off := spans[0].from
	for _, sp := range spans {
		if unixSeconds < sp.utc {
			break
		}
		off = sp.to
	}
	return off
}

func (r *posixRule) resolveLocal(local int64) LocalResolution {
	if !r.hasDST {
		return LocalResolution{Kind: Unambiguous, Earlier: r.stdOffsetValue()}
	}
	year, _, _ := civilFromDays(floorDiv(local, 86400))
	spans := r.spansAround(year)
	return classifyLocal(spans, spans[0].from, local)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
