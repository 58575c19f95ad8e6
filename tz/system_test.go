package tz

import (
	"testing"

	"github.com/rickb777/expect"
)

func TestSystemZoneKeyFromTZEnv(t *testing.T) {
	t.Setenv("TZ", "America/Chicago")
	key, err := SystemZoneKey()
	expect.Error(err).ToBeNil(t)
	expect.String(key).ToBe(t, "America/Chicago")
}

func TestSystemZoneKeyStripsColonPrefix(t *testing.T) {
	t.Setenv("TZ", ":America/Chicago")
	key, err := SystemZoneKey()
	expect.Error(err).ToBeNil(t)
	expect.String(key).ToBe(t, "America/Chicago")
}

func TestSystemZoneKeyEmptyTZMeansUTC(t *testing.T) {
	t.Setenv("TZ", "")
	key, err := SystemZoneKey()
	expect.Error(err).ToBeNil(t)
	expect.String(key).ToBe(t, "UTC")
}

func TestSystemTimeZoneLoadsUTC(t *testing.T) {
	t.Setenv("TZ", "UTC")
	ResetSystem()
	t.Cleanup(ResetSystem)
	z, err := SystemTimeZone()
	expect.Error(err).ToBeNil(t)
	expect.String(z.Key()).ToBe(t, "UTC")
}

func TestSystemTimeZoneCachesUntilReset(t *testing.T) {
	t.Setenv("TZ", "UTC")
	ResetSystem()
	t.Cleanup(ResetSystem)
	z1, err := SystemTimeZone()
	expect.Error(err).ToBeNil(t)

	// Changing TZ without a reset must not change the cached zone.
	t.Setenv("TZ", "GMT0")
	z2, err := SystemTimeZone()
	expect.Error(err).ToBeNil(t)
	expect.Any(z1 == z2).ToBe(t, true)

	ResetSystem()
	z3, err := SystemTimeZone()
	expect.Error(err).ToBeNil(t)
	expect.String(z3.Key()).ToBe(t, "GMT0")
}

func TestSystemTimeZoneFallsBackToPosixRule(t *testing.T) {
	t.Setenv("TZ", "CET-1CEST,M3.5.0,M10.5.0/3")
	ResetSystem()
	t.Cleanup(ResetSystem)
	z, err := SystemTimeZone()
	expect.Error(err).ToBeNil(t)
	// 2025-07-01T00:00:00Z is inside the European daylight window.
	off := z.OffsetForInstant(1751328000)
	expect.Number(off.Seconds).ToBe(t, 2*3600)
	expect.Any(off.IsDST).ToBe(t, true)
}
