package ser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zform/zform/membuf"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
	"github.com/zform/zform/wire"
)

// u16Formula is a minimal bounded, exact-size, heapless formula standing in
// for a primitive integer: every value occupies exactly 2 little-endian
// bytes inline.
type u16Formula struct{}

func (u16Formula) Bound() schema.Bound { return schema.Fixed(2) }
func (u16Formula) ExactSize() bool     { return true }
func (u16Formula) Heapless() bool      { return true }

func (u16Formula) Serialize(s *ser.Serializer, v uint16) error {
	return s.WriteBytes([]byte{byte(v), byte(v >> 8)})
}

// bytesFormula is a minimal unbounded formula standing in for an owned byte
// blob: its payload is written inline onto the stack, and collaborators
// (tuples, sequences) decide whether to reference-indirect it.
type bytesFormula struct{}

func (bytesFormula) Bound() schema.Bound { return schema.Unbounded() }
func (bytesFormula) ExactSize() bool     { return true }
func (bytesFormula) Heapless() bool      { return true }

func (bytesFormula) Serialize(s *ser.Serializer, v []byte) error {
	return s.WriteBytes(v)
}

// pairValue/pairFormula stand in for a two-field aggregate of (u16, Bytes),
// used to exercise the reverse-field-order packing rule: fields are
// serialized in reverse declared order so the dual-cursor model lays them
// out in forward order on the wire.
type pairValue struct {
	A uint16
	B []byte
}

type pairFormula struct{}

func (pairFormula) Bound() schema.Bound { return schema.Unbounded() }
func (pairFormula) ExactSize() bool     { return false }
func (pairFormula) Heapless() bool      { return false }

func (pairFormula) Serialize(s *ser.Serializer, v pairValue) error {
	if err := ser.WriteValue[[]byte, bytesFormula](s, bytesFormula{}, v.B); err != nil {
		return err
	}
	return ser.WriteValue[uint16, u16Formula](s, u16Formula{}, v.A)
}

func TestWriteValueTupleOfFixedAndVariable(t *testing.T) {
	buf := make([]byte, 32)
	b := membuf.NewChecked(buf)
	s := ser.New(b)

	err := pairFormula{}.Serialize(s, pairValue{A: 0x0102, B: []byte{0xFF, 0xEE}})
	require.NoError(t, err)

	require.Equal(t, 2, s.Heap())
	require.Equal(t, 10, s.Stack())

	require.Equal(t, []byte{0xFF, 0xEE}, buf[0:2])

	stackStart := len(buf) - s.Stack()
	require.Equal(t, []byte{0x02, 0x01}, buf[stackStart:stackStart+2])

	hdr := buf[stackStart+2 : stackStart+10]
	addr, err := wire.DecodeFixedUsize(hdr[:wire.Size]).ToUsize()
	require.NoError(t, err)
	size, err := wire.DecodeFixedUsize(hdr[wire.Size:]).ToUsize()
	require.NoError(t, err)
	require.Equal(t, 2, addr)
	require.Equal(t, 2, size)
}

func TestWriteSliceOfU16(t *testing.T) {
	buf := make([]byte, 32)
	b := membuf.NewChecked(buf)
	s := ser.New(b)

	err := ser.WriteSlice[uint16, u16Formula](s, u16Formula{}, []uint16{1, 2, 3})
	require.NoError(t, err)

	require.Equal(t, 0, s.Heap())
	require.Equal(t, 10, s.Stack())

	stackStart := len(buf) - s.Stack()
	require.Equal(t, []byte{0x03, 0x00, 0x00, 0x00}, buf[stackStart:stackStart+4])
	require.Equal(t, []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00}, buf[stackStart+4:stackStart+10])
}

// TestWriteRawEmbedsSelfContainedPayload exercises the sub-message
// boundary mechanic directly: a caller reserves a heap window sized for a
// payload it has already measured, writes the raw bytes itself, and the
// Serializer's heap cursor advances past it exactly as it would for a
// field written the ordinary way.
func TestWriteRawEmbedsSelfContainedPayload(t *testing.T) {
	buf := make([]byte, 32)
	b := membuf.NewChecked(buf)
	s := ser.New(b)

	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	window, err := s.WriteRaw(len(payload))
	require.NoError(t, err)
	require.Len(t, window, len(payload))
	copy(window, payload)

	require.Equal(t, len(payload), s.Heap())
	require.Equal(t, 0, s.Stack())
	require.Equal(t, payload, buf[:len(payload)])

	more, err := s.WriteRaw(2)
	require.NoError(t, err)
	more[0], more[1] = 0x01, 0x02
	require.Equal(t, len(payload)+2, s.Heap())
	require.Equal(t, []byte{0x01, 0x02}, buf[len(payload):len(payload)+2])
}

func TestWriteValueBufferExhausted(t *testing.T) {
	buf := make([]byte, 1)
	b := membuf.NewChecked(buf)
	s := ser.New(b)

	err := ser.WriteValue[uint16, u16Formula](s, u16Formula{}, 7)
	require.Error(t, err)
}
