package argon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteSinkBackpressure(t *testing.T) {
	s := NewByteSink(4)

	n := s.WriteData([]byte("abcdef"))
	if !assert.Equal(t, 4, n, "WriteData accepts only what fits") {
		return
	}
	if !assert.Equal(t, 4, s.Used(), "Used matches accepted count") {
		return
	}
	if !assert.Equal(t, 0, s.Free(), "sink is full") {
		return
	}

	n = s.WriteData([]byte("x"))
	if !assert.Equal(t, 0, n, "full sink accepts nothing") {
		return
	}
}

func TestByteSinkWraparound(t *testing.T) {
	s := NewByteSink(4)
	s.WriteData([]byte("abcd"))
	s.Consume(2)

	n := s.WriteData([]byte("ef"))
	require.Equal(t, 2, n, "freed space is writable again")

	// the queue should now read c, d, e, f in order
	for i, want := range []byte("cdef") {
		b, ok := s.ReadByte(i)
		require.True(t, ok, "byte %d available", i)
		require.Equal(t, want, b, "byte %d preserved across wrap", i)
	}
}

func TestByteSinkReadIsNonDestructive(t *testing.T) {
	s := NewByteSink(8)
	s.WriteData([]byte("ab"))

	b, ok := s.ReadByte(0)
	require.True(t, ok)
	require.Equal(t, byte('a'), b)

	b, ok = s.ReadByte(0)
	require.True(t, ok, "ReadByte does not consume")
	require.Equal(t, byte('a'), b)

	_, ok = s.ReadByte(2)
	require.False(t, ok, "reading past the queue reports empty")

	s.Consume(1)
	b, ok = s.ReadByte(0)
	require.True(t, ok)
	require.Equal(t, byte('b'), b, "Consume moves the read position")
}
