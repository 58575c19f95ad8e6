package chrono

import (
	"encoding/binary"
	"fmt"
)

// Pickling: each value type has a fixed, versioned, little-endian byte
// layout, so this package's internal binary format can be
// read back by a future release even after the in-memory representation
// changes shape. A version tag prefixes every encoding so the decoder can
// dispatch on it; there is only one version of each layout so far, but the
// dispatch point exists from day one.

const pickleVersion1 = byte(1)

// PickleInstant encodes i as version 1: (i64 seconds_since_unix_epoch, u32 subsec_nanos).
func PickleInstant(i Instant) []byte {
	buf := make([]byte, 1+8+4)
	buf[0] = pickleVersion1
	binary.LittleEndian.PutUint64(buf[1:9], uint64(i.seconds))
	binary.LittleEndian.PutUint32(buf[9:13], i.nanos)
	return buf
}

// UnpickleInstant decodes the output of PickleInstant.
func UnpickleInstant(b []byte) (Instant, error) {
	if err := checkPickle(b, 1+8+4); err != nil {
		return Instant{}, err
	}
	seconds := int64(binary.LittleEndian.Uint64(b[1:9]))
	nanos := binary.LittleEndian.Uint32(b[9:13])
	return newInstant(seconds, int64(nanos))
}

// PickleDate encodes d as (u16 year, u8 month, u8 day).
func PickleDate(d Date) []byte {
	buf := make([]byte, 1+2+1+1)
	buf[0] = pickleVersion1
	binary.LittleEndian.PutUint16(buf[1:3], uint16(d.year))
	buf[3] = d.month
	buf[4] = d.day
	return buf
}

func UnpickleDate(b []byte) (Date, error) {
	if err := checkPickle(b, 1+2+1+1); err != nil {
		return Date{}, err
	}
	year := int(int16(binary.LittleEndian.Uint16(b[1:3])))
	return NewDate(year, int(b[3]), int(b[4]))
}

// PickleTime encodes t as (u8 h, u8 m, u8 s, u32 nanos).
func PickleTime(t Time) []byte {
	buf := make([]byte, 1+1+1+1+4)
	buf[0] = pickleVersion1
	buf[1], buf[2], buf[3] = t.hour, t.minute, t.second
	binary.LittleEndian.PutUint32(buf[4:8], t.nanosecond)
	return buf
}

func UnpickleTime(b []byte) (Time, error) {
	if err := checkPickle(b, 1+1+1+1+4); err != nil {
		return Time{}, err
	}
	nanos := binary.LittleEndian.Uint32(b[4:8])
	return NewTime(int(b[1]), int(b[2]), int(b[3]), int(nanos))
}

// PickleOffsetDateTime encodes o as
// (u16 year, u8 month, u8 day, u8 hour, u8 min, u8 sec, u32 nanos, i32 offset_seconds).
func PickleOffsetDateTime(o OffsetDateTime) []byte {
	buf := make([]byte, 1+2+1+1+1+1+1+4+4)
	buf[0] = pickleVersion1
	binary.LittleEndian.PutUint16(buf[1:3], uint16(o.date.year))
	buf[3], buf[4] = o.date.month, o.date.day
	buf[5], buf[6], buf[7] = o.time.hour, o.time.minute, o.time.second
	binary.LittleEndian.PutUint32(buf[8:12], o.time.nanosecond)
	binary.LittleEndian.PutUint32(buf[12:16], uint32(int32(o.offset)))
	return buf
}

func UnpickleOffsetDateTime(b []byte) (OffsetDateTime, error) {
	if err := checkPickle(b, 1+2+1+1+1+1+1+4+4); err != nil {
		return OffsetDateTime{}, err
	}
	year := int(int16(binary.LittleEndian.Uint16(b[1:3])))
	date, err := NewDate(year, int(b[3]), int(b[4]))
	if err != nil {
		return OffsetDateTime{}, err
	}
	nanos := binary.LittleEndian.Uint32(b[8:12])
	t, err := NewTime(int(b[5]), int(b[6]), int(b[7]), int(nanos))
	if err != nil {
		return OffsetDateTime{}, err
	}
	offset := int(int32(binary.LittleEndian.Uint32(b[12:16])))
	return NewOffsetDateTime(date, t, offset)
}

// PickleZonedDateTime encodes z as the OffsetDateTime layout plus a
// length-prefixed (u16 length) zone key.
func PickleZonedDateTime(z ZonedDateTime) []byte {
	odt := OffsetDateTime{date: z.local.date, time: z.local.time, offset: z.offset}
	head := PickleOffsetDateTime(odt)
	key := []byte(z.zone.Key())
	buf := make([]byte, len(head)+2+len(key))
	copy(buf, head)
	binary.LittleEndian.PutUint16(buf[len(head):len(head)+2], uint16(len(key)))
	copy(buf[len(head)+2:], key)
	return buf
}

// UnpickleZonedDateTime decodes the output of PickleZonedDateTime, resolving
// the embedded zone key through store.
func UnpickleZonedDateTime(b []byte) (ZonedDateTime, error) {
	const headLen = 1 + 2 + 1 + 1 + 1 + 1 + 1 + 4 + 4
	if err := checkPickleMin(b, headLen+2); err != nil {
		return ZonedDateTime{}, err
	}
	odt, err := UnpickleOffsetDateTime(b[:headLen])
	if err != nil {
		return ZonedDateTime{}, err
	}
	keyLen := int(binary.LittleEndian.Uint16(b[headLen : headLen+2]))
	if len(b) != headLen+2+keyLen {
		return ZonedDateTime{}, newInvalidFormatError(fmt.Sprintf("%x", b), "zoned pickle length mismatch")
	}
	key := string(b[headLen+2 : headLen+2+keyLen])
	zone, err := LoadTimeZone(key)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{local: PlainDateTime{date: odt.date, time: odt.time}, zone: zone, offset: odt.offset}, nil
}

// PickleDateDelta encodes d as (i32 months, i32 days).
func PickleDateDelta(d DateDelta) []byte {
	buf := make([]byte, 1+4+4)
	buf[0] = pickleVersion1
	binary.LittleEndian.PutUint32(buf[1:5], uint32(d.months))
	binary.LittleEndian.PutUint32(buf[5:9], uint32(d.days))
	return buf
}

func UnpickleDateDelta(b []byte) (DateDelta, error) {
	if err := checkPickle(b, 1+4+4); err != nil {
		return DateDelta{}, err
	}
	months := int32(binary.LittleEndian.Uint32(b[1:5]))
	days := int32(binary.LittleEndian.Uint32(b[5:9]))
	return NewDateDelta(int(months), int(days))
}

// PickleTimeDelta encodes d as (i64 seconds, u32 nanos).
func PickleTimeDelta(d TimeDelta) []byte {
	buf := make([]byte, 1+8+4)
	buf[0] = pickleVersion1
	binary.LittleEndian.PutUint64(buf[1:9], uint64(d.seconds))
	binary.LittleEndian.PutUint32(buf[9:13], d.nanos)
	return buf
}

func UnpickleTimeDelta(b []byte) (TimeDelta, error) {
	if err := checkPickle(b, 1+8+4); err != nil {
		return TimeDelta{}, err
	}
	seconds := int64(binary.LittleEndian.Uint64(b[1:9]))
	nanos := binary.LittleEndian.Uint32(b[9:13])
	return NewTimeDelta(seconds, int64(nanos))
}

// PickleDateTimeDelta composes PickleDateDelta and PickleTimeDelta, each
// keeping its own version tag.
func PickleDateTimeDelta(d DateTimeDelta) []byte {
	datePart := PickleDateDelta(d.dateDelta)
	timePart := PickleTimeDelta(d.timeDelta)
	return append(datePart, timePart...)
}

func UnpickleDateTimeDelta(b []byte) (DateTimeDelta, error) {
	const dateLen = 1 + 4 + 4
	if err := checkPickle(b, dateLen+1+8+4); err != nil {
		return DateTimeDelta{}, err
	}
	dateDelta, err := UnpickleDateDelta(b[:dateLen])
	if err != nil {
		return DateTimeDelta{}, err
	}
	timeDelta, err := UnpickleTimeDelta(b[dateLen:])
	if err != nil {
		return DateTimeDelta{}, err
	}
	return NewDateTimeDelta(dateDelta, timeDelta)
}

func checkPickle(b []byte, want int) error {
	if len(b) != want {
		return newInvalidFormatError(fmt.Sprintf("%x", b), fmt.Sprintf("expected %d pickle bytes, got %d", want, len(b)))
	}
	if b[0] != pickleVersion1 {
		return newInvalidFormatError(fmt.Sprintf("%x", b), fmt.Sprintf("unsupported pickle version %d", b[0]))
	}
	return nil
}

// checkPickleMin is checkPickle for variable-length encodings (the zone-key
// suffix of a ZonedDateTime); the caller re-validates the exact length once
// the length prefix is known.
func checkPickleMin(b []byte, atLeast int) error {
	if len(b) < atLeast {
		return newInvalidFormatError(fmt.Sprintf("%x", b), fmt.Sprintf("expected at least %d pickle bytes, got %d", atLeast, len(b)))
	}
	if b[0] != pickleVersion1 {
		return newInvalidFormatError(fmt.Sprintf("%x", b), fmt.Sprintf("unsupported pickle version %d", b[0]))
	}
	return nil
}
