package tz

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/rickb777/expect"
)

type tzifTestType struct {
	offset int32
	dst    bool
	desig  string
}

// buildTZifV1 encodes a minimal version-0 (v1-only) TZif blob per RFC 8536,
// with no leap-second or std/ut indicator records.
func buildTZifV1(types []tzifTestType, transitions []int64, transitionTypeIdx []uint8) []byte {
	var designations bytes.Buffer
	offsets := make([]int, len(types))
	for i, ty := range types {
		offsets[i] = designations.Len()
		designations.WriteString(ty.desig)
		designations.WriteByte(0)
	}

	var buf bytes.Buffer
	buf.WriteString("TZif")
	buf.WriteByte(0)
	buf.Write(make([]byte, 15))
	counts := []uint32{0, 0, 0, uint32(len(transitions)), uint32(len(types)), uint32(designations.Len())}
	for _, c := range counts {
		binary.Write(&buf, binary.BigEndian, c)
	}
	for _, tr := range transitions {
		binary.Write(&buf, binary.BigEndian, int32(tr))
	}
	buf.Write(transitionTypeIdx)
	for i, ty := range types {
		binary.Write(&buf, binary.BigEndian, ty.offset)
		dst := byte(0)
		if ty.dst {
			dst = 1
		}
		buf.WriteByte(dst)
		buf.WriteByte(byte(offsets[i]))
	}
	buf.Write(designations.Bytes())
	return buf.Bytes()
}

func TestDecodeSingleTypeNoTransitions(t *testing.T) {
	raw := buildTZifV1([]tzifTestType{{offset: 0, dst: false, desig: "UTC"}}, nil, nil)
	data, err := Decode(raw)
	expect.Error(err).ToBeNil(t)
	expect.Number(len(data.Types)).ToBe(t, 1)
	expect.Number(int(data.Types[0].offsetSeconds)).ToBe(t, 0)
	expect.String(data.Types[0].designation).ToBe(t, "UTC")
	expect.Number(len(data.Transitions)).ToBe(t, 0)
	expect.String(data.Footer).ToBe(t, "")
}

func TestDecodeTwoTypesWithTransition(t *testing.T) {
	types := []tzifTestType{
		{offset: -5 * 3600, dst: false, desig: "EST"},
		{offset: -4 * 3600, dst: true, desig: "EDT"},
	}
	raw := buildTZifV1(types, []int64{1000000000}, []byte{1})
	data, err := Decode(raw)
	expect.Error(err).ToBeNil(t)
	expect.Number(len(data.Types)).ToBe(t, 2)
	expect.Number(int(data.Types[0].offsetSeconds)).ToBe(t, -5*3600)
	expect.Number(int(data.Types[1].offsetSeconds)).ToBe(t, -4*3600)
	expect.Any(data.Types[1].isDST).ToBe(t, true)
	expect.Number(len(data.Transitions)).ToBe(t, 1)
	expect.Number(int(data.Transitions[0])).ToBe(t, 1000000000)
	expect.Number(int(data.TransitionTypes[0])).ToBe(t, 1)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	raw := buildTZifV1([]tzifTestType{{offset: 0, desig: "UTC"}}, nil, nil)
	raw[0] = 'X'
	_, err := Decode(raw)
	expect.Error(err).ToHaveOccurred(t)
}

func TestDecodeRejectsZeroTypecnt(t *testing.T) {
	raw := buildTZifV1(nil, nil, nil)
	_, err := Decode(raw)
	expect.Error(err).ToHaveOccurred(t)
}

func TestDecodeRejectsTruncatedInput(t *testing.T) {
	raw := buildTZifV1([]tzifTestType{{offset: 0, desig: "UTC"}}, nil, nil)
	// Cut everything past the fixed 44-byte header, so the type-table read
	// hits EOF immediately.
	_, err := Decode(raw[:44])
	expect.Error(err).ToHaveOccurred(t)
}
