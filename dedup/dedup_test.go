package dedup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zform/zform/dedup"
	"github.com/zform/zform/membuf"
	"github.com/zform/zform/ser"
)

func TestWriteRefReusesIdenticalPayload(t *testing.T) {
	buf := membuf.NewGrowing(64)
	s := ser.New(buf)
	c := dedup.New()

	require.NoError(t, c.WriteRef(s, []byte("hello")))
	heapAfterFirst := s.Heap()

	require.NoError(t, c.WriteRef(s, []byte("hello")))
	require.Equal(t, heapAfterFirst, s.Heap(), "second write of an identical payload must not grow the heap")

	require.NoError(t, c.WriteRef(s, []byte("world")))
	require.Greater(t, s.Heap(), heapAfterFirst, "a distinct payload still grows the heap")
}

func TestNewKeyedProducesIndependentHashSpace(t *testing.T) {
	buf := membuf.NewGrowing(64)
	s := ser.New(buf)
	c := dedup.NewKeyed(1, 2)

	require.NoError(t, c.WriteRef(s, []byte("payload")))
	heapAfterFirst := s.Heap()
	require.NoError(t, c.WriteRef(s, []byte("payload")))
	require.Equal(t, heapAfterFirst, s.Heap())
}
