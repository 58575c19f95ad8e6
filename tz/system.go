package tz

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultSearchPath lists the conventional on-disk zoneinfo locations
// consulted when no explicit search path has been configured.
var DefaultSearchPath = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/etc/zoneinfo",
}

var systemStore = NewStore(DefaultSearchPath...)

// System returns the process-wide Store used by SystemTimeZone and by the
// root package's SystemDateTime type.
func System() *Store { return systemStore }

var (
	sysZoneMu sync.Mutex
	sysZone   *Zone // nil until first SystemTimeZone probe
)

// ResetSystem restores the process-wide Store to its default search path,
// clears its caches, and drops the cached system zone so the next
// SystemTimeZone call re-probes the host configuration.
func ResetSystem() {
	systemStore.SetSearchPath(DefaultSearchPath...)
	sysZoneMu.Lock()
	sysZone = nil
	sysZoneMu.Unlock()
}

// SystemZoneKey reports the system's configured local zone key, following
// the same precedence glibc/tzset use: the TZ environment variable first
// (a leading ":" is stripped), then the target of /etc/localtime resolved
// against a zoneinfo root, then "UTC" if neither yields an answer.
func SystemZoneKey() (string, error) {
	if v, ok := os.LookupEnv("TZ"); ok {
		v = strings.TrimPrefix(v, ":")
		if v == "" {
			return "UTC", nil
		}
		if !strings.HasPrefix(v, "/") {
			return v, nil
		}
	}
	target, err := os.Readlink("/etc/localtime")
	if err == nil {
		for _, root := range DefaultSearchPath {
			if rel, ok := strings.CutPrefix(target, root+string(filepath.Separator)); ok {
				return filepath.ToSlash(rel), nil
			}
		}
	}
	return "UTC", nil
}

// SystemTimeZone resolves and caches the host's local zone. A TZ value
// that is not a loadable zone key is retried as a raw POSIX rule, e.g.
// TZ=CET-1CEST,M3.5.0,M10.5.0/3. The cached result is stable until
// ResetSystem.
func SystemTimeZone() (*Zone, error) {
	sysZoneMu.Lock()
	defer sysZoneMu.Unlock()
	if sysZone != nil {
		return sysZone, nil
	}
	z, err := probeSystemZone()
	if err != nil {
		return nil, err
	}
	sysZone = z
	return z, nil
}

func probeSystemZone() (*Zone, error) {
	key, err := SystemZoneKey()
	if err != nil {
		return nil, err
	}
	z, err := systemStore.Load(key)
	if err == nil {
		return z, nil
	}
	if errors.Is(err, ErrNotFound) {
		if pz, perr := ZoneFromPosix(key); perr == nil {
			return pz, nil
		}
	}
	return nil, err
}
