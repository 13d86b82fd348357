package compress_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zform/zform/compress"
)

func TestNoOpRoundTrip(t *testing.T) {
	c := compress.NewNoOpCompressor()
	data := []byte("hello zero-copy world")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestZstdRoundTrip(t *testing.T) {
	c := compress.NewZstdCompressor()
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly, repeatedly")

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(data))

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestLZ4RoundTrip(t *testing.T) {
	c := compress.NewLZ4Compressor()
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly, repeatedly")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestNewCodecSelectsAlgorithm(t *testing.T) {
	for _, alg := range []compress.Algorithm{compress.AlgorithmNone, compress.AlgorithmZstd, compress.AlgorithmLZ4} {
		_, err := compress.NewCodec(alg)
		require.NoError(t, err)
	}

	_, err := compress.NewCodec("bogus")
	require.Error(t, err)
}
