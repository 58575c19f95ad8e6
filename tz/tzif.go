package tz

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

var tzifMagic = [4]byte{'T', 'Z', 'i', 'f'}

// localTimeType is a single entry of the TZif local time type table: a
// UTC offset paired with the DST flag and designation string it implies.
type localTimeType struct {
	offsetSeconds int32
	isDST         bool
	designation   string
}

// Data is a decoded TZif file: the transition schedule plus the POSIX
// footer rule that projects it past the last recorded transition.
type Data struct {
	// Transitions holds UNIX timestamps, in strictly ascending order, at
	// which the active localTimeType changes.
	Transitions []int64
	// TransitionTypes[i] indexes Types for Transitions[i].
	TransitionTypes []uint8
	Types           []localTimeType
	// Footer is the POSIX TZ string governing instants after the last
	// transition (RFC 8536 section 3.3); empty if the file carries none.
	Footer string
}

// Decode parses a TZif v1/v2/v3/v4 file per RFC 8536. It reads the v1
// block only to skip past it when a v2+ block is present, matching the
// common reader behavior of preferring 64-bit transition times.
func Decode(raw []byte) (Data, error) {
	r := bytes.NewReader(raw)
	h, err := readHeader(r)
	if err != nil {
		return Data{}, err
	}

	if h.version == 0 {
		return readDataBlock(r, h, 4)
	}

	// Skip the v1 data block entirely; re-read the header for the v2+ block.
	if err := skipDataBlock(r, h, 4); err != nil {
		return Data{}, err
	}
	h2, err := readHeader(r)
	if err != nil {
		return Data{}, err
	}
	data, err := readDataBlock(r, h2, 8)
	if err != nil {
		return Data{}, err
	}
	footer, err := readFooter(r)
	if err != nil {
		return Data{}, err
	}
	data.Footer = footer
	return data, nil
}

type header struct {
	version                                               byte
	isutcnt, isstdcnt, leapcnt, timecnt, typecnt, charcnt uint32
}

func readHeader(r *bytes.Reader) (header, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return header{}, fmt.Errorf("tz: reading magic: %w", err)
	}
	if magic != tzifMagic {
		return header{}, newFormatError("bad magic %v", magic)
	}
	var h header
	version, err := r.ReadByte()
	if err != nil {
		return header{}, err
	}
	h.version = version
	if _, err := r.Seek(15, 1); err != nil {
		return header{}, err
	}
	counts := make([]uint32, 6)
	if err := binary.Read(r, binary.BigEndian, counts); err != nil {
		return header{}, fmt.Errorf("tz: reading header counts: %w", err)
	}
	h.isutcnt, h.isstdcnt, h.leapcnt, h.timecnt, h.typecnt, h.charcnt =
		counts[0], counts[1], counts[2], counts[3], counts[4], counts[5]
	if h.typecnt == 0 {
		return header{}, newFormatError("typecnt must not be zero")
	}
	return h, nil
}

func dataBlockSize(h header, timeSize int) int64 {
	return int64(h.timecnt)*int64(timeSize) +
		int64(h.timecnt) +
		int64(h.typecnt)*6 +
		int64(h.charcnt) +
		int64(h.leapcnt)*int64(timeSize+4) +
		int64(h.isstdcnt) +
		int64(h.isutcnt)
}

func skipDataBlock(r *bytes.Reader, h header, timeSize int) error {
	_, err := r.Seek(dataBlockSize(h, timeSize), 1)
	return err
}

func readDataBlock(r *bytes.Reader, h header, timeSize int) (Data, error) {
	transitions := make([]int64, h.timecnt)
	for i := range transitions {
		if timeSize == 4 {
			var v int32
			if err := binary.Read(r, binary.BigEndian, &v); err != nil {
				return Data{}, fmt.Errorf("tz: reading transition time: %w", err)
			}
			transitions[i] = int64(v)
		} else {
			var v int64
			if err := binary.Read(r, binary.BigEndian, &v); err != nil {
				return Data{}, fmt.Errorf("tz: reading transition time: %w", err)
			}
			transitions[i] = v
		}
	}

	types := make([]uint8, h.timecnt)
	if h.timecnt > 0 {
		if _, err := io.ReadFull(r, types); err != nil {
			return Data{}, fmt.Errorf("tz: reading transition types: %w", err)
		}
	}
	for i, idx := range types {
		if uint32(idx) >= h.typecnt {
			return Data{}, newFormatError("transition %d names type %d of %d", i, idx, h.typecnt)
		}
	}

	rawTypes := make([][6]byte, h.typecnt)
	for i := range rawTypes {
		if _, err := io.ReadFull(r, rawTypes[i][:]); err != nil {
			return Data{}, fmt.Errorf("tz: reading local time type record: %w", err)
		}
	}

	designations := make([]byte, h.charcnt)
	if h.charcnt > 0 {
		if _, err := io.ReadFull(r, designations); err != nil {
			return Data{}, fmt.Errorf("tz: reading designations: %w", err)
		}
	}

	// Leap seconds, standard/wall and UT/local indicators are read past
	// but discarded: there is no TAI/leap-second accounting here and
	// every offset lookup is UT-based.
	if _, err := r.Seek(int64(h.leapcnt)*int64(timeSize+4), 1); err != nil {
		return Data{}, err
	}
	if _, err := r.Seek(int64(h.isstdcnt)+int64(h.isutcnt), 1); err != nil {
		return Data{}, err
	}

	localTypes := make([]localTimeType, h.typecnt)
	for i, raw := range rawTypes {
		offset := int32(binary.BigEndian.Uint32(raw[0:4]))
		dst := raw[4] != 0
		idx := int(raw[5])
		if idx >= len(designations) {
			return Data{}, newFormatError("designation index %d out of range", idx)
		}
		localTypes[i] = localTimeType{
			offsetSeconds: offset,
			isDST:         dst,
			designation:   zeroTerminated(designations[idx:]),
		}
	}

	return Data{
		Transitions:     transitions,
		TransitionTypes: types,
		Types:           localTypes,
	}, nil
}

func readFooter(r *bytes.Reader) (string, error) {
	rest, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if len(rest) < 2 || rest[0] != '\n' || rest[len(rest)-1] != '\n' {
		if len(rest) == 0 {
			return "", nil
		}
		return "", newFormatError("malformed footer")
	}
	return string(rest[1 : len(rest)-1]), nil
}

func zeroTerminated(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
