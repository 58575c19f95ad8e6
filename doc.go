// Package chrono provides a set of immutable date and time types --
// Instant, PlainDateTime, OffsetDateTime, ZonedDateTime, SystemDateTime,
// Date, Time, YearMonth, MonthDay, and the delta types DateDelta,
// TimeDelta and DateTimeDelta -- with explicit, non-overlapping
// responsibilities instead of a single do-everything time.Time.
//
// Instant identifies a point on the physical timeline with no
// associated calendar or zone. PlainDateTime is a calendar reading with
// neither: the wall-clock time on nobody's wall in particular.
// OffsetDateTime pairs a calendar reading with a fixed UTC offset.
// ZonedDateTime pairs one with an IANA time zone identifier, resolved
// through the chrono/tz subpackage, and tracks which of a zone's
// possibly several offsets for an ambiguous civil time was chosen.
// SystemDateTime tracks the same thing against the host's current
// configured zone.
//
// Arithmetic that could silently skip across a DST transition requires
// the caller to either pass a Disambiguation or acknowledge the skew
// with an ignoreDST argument; there is no implicit behavior to get wrong.
//
// The chrono/tz subpackage has no dependency on this package: it reads
// raw TZif data and POSIX TZ tail rules and answers pure offset/
// ambiguity questions, so it can be exercised (and reused) without the
// calendar and delta types defined here.
package chrono
