package formulas_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zform/zform"
	"github.com/zform/zform/formulas"
)

func TestUnitRoundTrip(t *testing.T) {
	out, err := zform.SerializeIntoVec[struct{}, formulas.Unit](formulas.Unit{}, struct{}{})
	require.NoError(t, err)
	got, _, err := zform.Deserialize[struct{}, formulas.Unit](formulas.Unit{}, out)
	require.NoError(t, err)
	require.Equal(t, struct{}{}, got)
}

func TestBoolRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		out, err := zform.SerializeIntoVec[bool, formulas.Bool](formulas.Bool{}, v)
		require.NoError(t, err)
		got, _, err := zform.Deserialize[bool, formulas.Bool](formulas.Bool{}, out)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestIntRoundTrip(t *testing.T) {
	out, err := zform.SerializeIntoVec[int32, formulas.Int[int32]](formulas.Int[int32]{}, -12345)
	require.NoError(t, err)
	got, _, err := zform.Deserialize[int32, formulas.Int[int32]](formulas.Int[int32]{}, out)
	require.NoError(t, err)
	require.Equal(t, int32(-12345), got)

	outU, err := zform.SerializeIntoVec[uint64, formulas.Int[uint64]](formulas.Int[uint64]{}, 0xDEADBEEFCAFE)
	require.NoError(t, err)
	gotU, _, err := zform.Deserialize[uint64, formulas.Int[uint64]](formulas.Int[uint64]{}, outU)
	require.NoError(t, err)
	require.Equal(t, uint64(0xDEADBEEFCAFE), gotU)
}

func TestFloatRoundTrip(t *testing.T) {
	out, err := zform.SerializeIntoVec[float64, formulas.Float[float64]](formulas.Float[float64]{}, 3.5)
	require.NoError(t, err)
	got, _, err := zform.Deserialize[float64, formulas.Float[float64]](formulas.Float[float64]{}, out)
	require.NoError(t, err)
	require.Equal(t, 3.5, got)
}

func TestStringRoundTrip(t *testing.T) {
	out, err := zform.SerializeIntoVec[string, formulas.String](formulas.String{}, "hello, zform")
	require.NoError(t, err)
	got, _, err := zform.Deserialize[string, formulas.String](formulas.String{}, out)
	require.NoError(t, err)
	require.Equal(t, "hello, zform", got)
}

func TestUUIDRoundTrip(t *testing.T) {
	v := uuid.New()
	out, err := zform.SerializeIntoVec[uuid.UUID, formulas.UUID](formulas.UUID{}, v)
	require.NoError(t, err)
	got, _, err := zform.Deserialize[uuid.UUID, formulas.UUID](formulas.UUID{}, out)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestBytesRoundTrip(t *testing.T) {
	v := []byte{1, 2, 3, 4, 5}
	out, err := zform.SerializeIntoVec[[]byte, formulas.Bytes](formulas.Bytes{}, v)
	require.NoError(t, err)
	got, _, err := zform.Deserialize[[]byte, formulas.Bytes](formulas.Bytes{}, out)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestSeqOfIntRoundTrip(t *testing.T) {
	f := formulas.Seq[uint16, formulas.Int[uint16]]{Elem: formulas.Int[uint16]{}}
	v := []uint16{1, 2, 3, 400}
	out, err := zform.SerializeIntoVec[[]uint16, formulas.Seq[uint16, formulas.Int[uint16]]](f, v)
	require.NoError(t, err)
	got, _, err := zform.Deserialize[[]uint16, formulas.Seq[uint16, formulas.Int[uint16]]](f, out)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestTuple2RoundTrip(t *testing.T) {
	f := formulas.Tuple2[uint16, []byte, formulas.Int[uint16], formulas.Bytes]{}
	v := formulas.Pair2[uint16, []byte]{V0: 0x0102, V1: []byte{0xFF, 0xEE}}
	out, err := zform.SerializeIntoVec[formulas.Pair2[uint16, []byte], formulas.Tuple2[uint16, []byte, formulas.Int[uint16], formulas.Bytes]](f, v)
	require.NoError(t, err)
	got, _, err := zform.Deserialize[formulas.Pair2[uint16, []byte], formulas.Tuple2[uint16, []byte, formulas.Int[uint16], formulas.Bytes]](f, out)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestTuple3RoundTrip(t *testing.T) {
	f := formulas.Tuple3[uint8, uint16, []byte, formulas.Int[uint8], formulas.Int[uint16], formulas.Bytes]{}
	v := formulas.Pair3[uint8, uint16, []byte]{V0: 9, V1: 99, V2: []byte("abc")}
	out, err := zform.SerializeIntoVec[formulas.Pair3[uint8, uint16, []byte], formulas.Tuple3[uint8, uint16, []byte, formulas.Int[uint8], formulas.Int[uint16], formulas.Bytes]](f, v)
	require.NoError(t, err)
	got, _, err := zform.Deserialize[formulas.Pair3[uint8, uint16, []byte], formulas.Tuple3[uint8, uint16, []byte, formulas.Int[uint8], formulas.Int[uint16], formulas.Bytes]](f, out)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestEnum2RoundTripBothVariants(t *testing.T) {
	f := formulas.Enum2[uint32, uint8, formulas.Int[uint32], formulas.Int[uint8]]{}

	a := formulas.Either2[uint32, uint8]{Tag: 0, V0: 77}
	outA, err := zform.SerializeIntoVec[formulas.Either2[uint32, uint8], formulas.Enum2[uint32, uint8, formulas.Int[uint32], formulas.Int[uint8]]](f, a)
	require.NoError(t, err)
	gotA, _, err := zform.Deserialize[formulas.Either2[uint32, uint8], formulas.Enum2[uint32, uint8, formulas.Int[uint32], formulas.Int[uint8]]](f, outA)
	require.NoError(t, err)
	require.Equal(t, a, gotA)

	b := formulas.Either2[uint32, uint8]{Tag: 1, V1: 5}
	outB, err := zform.SerializeIntoVec[formulas.Either2[uint32, uint8], formulas.Enum2[uint32, uint8, formulas.Int[uint32], formulas.Int[uint8]]](f, b)
	require.NoError(t, err)
	gotB, _, err := zform.Deserialize[formulas.Either2[uint32, uint8], formulas.Enum2[uint32, uint8, formulas.Int[uint32], formulas.Int[uint8]]](f, outB)
	require.NoError(t, err)
	require.Equal(t, b, gotB)

	require.Equal(t, len(outA), len(outB), "every variant of a bounded enum must occupy the same footprint")
}

func TestEnum2RejectsUnknownTag(t *testing.T) {
	f := formulas.Enum2[uint32, uint8, formulas.Int[uint32], formulas.Int[uint8]]{}
	_, err := zform.SerializeIntoVec[formulas.Either2[uint32, uint8], formulas.Enum2[uint32, uint8, formulas.Int[uint32], formulas.Int[uint8]]](f, formulas.Either2[uint32, uint8]{Tag: 2})
	require.Error(t, err)
}

func TestEventRecordRoundTrip(t *testing.T) {
	f := formulas.EventRecordFormula{}
	v := formulas.EventRecord{ID: 0xAABBCCDD, Kind: 7, Flags: 0x3}
	out, err := zform.SerializeIntoVec[formulas.EventRecord, formulas.EventRecordFormula](f, v)
	require.NoError(t, err)
	got, _, err := zform.Deserialize[formulas.EventRecord, formulas.EventRecordFormula](f, out)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	f := formulas.Envelope[formulas.EventRecord, formulas.EventRecordFormula]{Inner: formulas.EventRecordFormula{}}
	v := formulas.EventRecord{ID: 0xAABBCCDD, Kind: 7, Flags: 0x3}

	out, err := zform.SerializeIntoVec[formulas.EventRecord, formulas.Envelope[formulas.EventRecord, formulas.EventRecordFormula]](f, v)
	require.NoError(t, err)
	got, _, err := zform.Deserialize[formulas.EventRecord, formulas.Envelope[formulas.EventRecord, formulas.EventRecordFormula]](f, out)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestCompressedBytesRoundTrip(t *testing.T) {
	v := make([]byte, 4096)
	for i := range v {
		v[i] = byte(i % 7)
	}
	out, err := zform.SerializeIntoVec[[]byte, formulas.CompressedBytes](formulas.CompressedBytes{}, v)
	require.NoError(t, err)
	got, _, err := zform.Deserialize[[]byte, formulas.CompressedBytes](formulas.CompressedBytes{}, out)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestLZ4BytesRoundTrip(t *testing.T) {
	v := make([]byte, 4096)
	for i := range v {
		v[i] = byte(i % 5)
	}
	out, err := zform.SerializeIntoVec[[]byte, formulas.LZ4Bytes](formulas.LZ4Bytes{}, v)
	require.NoError(t, err)
	got, _, err := zform.Deserialize[[]byte, formulas.LZ4Bytes](formulas.LZ4Bytes{}, out)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func BenchmarkEventRecordRoundTrip(b *testing.B) {
	f := formulas.EventRecordFormula{}
	v := formulas.EventRecord{ID: 0xAABBCCDD, Kind: 7, Flags: 0x3}

	b.Run("Serialize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := zform.SerializeIntoVec[formulas.EventRecord, formulas.EventRecordFormula](f, v); err != nil {
				b.Fatal(err)
			}
		}
	})

	out, err := zform.SerializeIntoVec[formulas.EventRecord, formulas.EventRecordFormula](f, v)
	if err != nil {
		b.Fatal(err)
	}
	b.Run("Deserialize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, _, err := zform.Deserialize[formulas.EventRecord, formulas.EventRecordFormula](f, out); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkSeqOfIntRoundTrip(b *testing.B) {
	f := formulas.Seq[uint16, formulas.Int[uint16]]{Elem: formulas.Int[uint16]{}}
	v := make([]uint16, 256)
	for i := range v {
		v[i] = uint16(i)
	}

	b.Run("Serialize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := zform.SerializeIntoVec[[]uint16, formulas.Seq[uint16, formulas.Int[uint16]]](f, v); err != nil {
				b.Fatal(err)
			}
		}
	})

	out, err := zform.SerializeIntoVec[[]uint16, formulas.Seq[uint16, formulas.Int[uint16]]](f, v)
	if err != nil {
		b.Fatal(err)
	}
	b.Run("Deserialize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, _, err := zform.Deserialize[[]uint16, formulas.Seq[uint16, formulas.Int[uint16]]](f, out); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkBytesRefIndirectedRoundTrip(b *testing.B) {
	v := make([]byte, 1024)
	for i := range v {
		v[i] = byte(i)
	}

	b.Run("Serialize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := zform.SerializeIntoVec[[]byte, formulas.Bytes](formulas.Bytes{}, v); err != nil {
				b.Fatal(err)
			}
		}
	})

	out, err := zform.SerializeIntoVec[[]byte, formulas.Bytes](formulas.Bytes{}, v)
	if err != nil {
		b.Fatal(err)
	}
	b.Run("Deserialize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, _, err := zform.Deserialize[[]byte, formulas.Bytes](formulas.Bytes{}, out); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func TestFSSTStringsRoundTrip(t *testing.T) {
	v := []string{
		`{"id":1,"name":"alice"}`,
		`{"id":2,"name":"bob"}`,
		`{"id":3,"name":"carol"}`,
	}
	out, err := zform.SerializeIntoVec[[]string, formulas.FSSTStrings](formulas.FSSTStrings{}, v)
	require.NoError(t, err)
	got, _, err := zform.Deserialize[[]string, formulas.FSSTStrings](formulas.FSSTStrings{}, out)
	require.NoError(t, err)
	require.Equal(t, v, got)
}
