package chrono

import (
	"fmt"

	"github.com/rickb777/chrono/tz"
)

// TimeZone is a loaded IANA zone, usable to construct and reproject
// ZonedDateTime and SystemDateTime values. It wraps *tz.Zone; chrono never
// duplicates tz's decoding or resolution logic.
type TimeZone struct {
	zone *tz.Zone
}

// LoadTimeZone loads the named zone (e.g. "America/Chicago") from the
// process-wide zone store.
func LoadTimeZone(key string) (TimeZone, error) {
	z, err := tz.System().Load(key)
	if err != nil {
		return TimeZone{}, fmt.Errorf("chrono: loading zone %q: %w", key, err)
	}
	return TimeZone{zone: z}, nil
}

// UTC is the fixed, always-available zone "UTC".
var UTC = TimeZone{zone: mustLoadUTC()}

func mustLoadUTC() *tz.Zone {
	z, err := tz.System().Load("UTC")
	if err != nil {
		panic(err)
	}
	return z
}

func (z TimeZone) Key() string { return z.zone.Key() }

func (z TimeZone) offsetForInstant(i Instant) tz.Offset {
	return z.zone.OffsetForInstant(i.seconds)
}

func (z TimeZone) resolveLocal(p PlainDateTime) tz.LocalResolution {
	local := p.date.epochDays()*86_400 + int64(p.time.secondsSinceMidnight())
	return z.zone.Resolve(local)
}
