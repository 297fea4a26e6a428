package argon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBuffer(capacity int, data string) (*ByteSink, *ParsingBuffer) {
	s := NewByteSink(capacity * 4)
	s.WriteData([]byte(data))
	return s, NewParsingBuffer(NewUnicodeDecoder(s), capacity)
}

func TestParsingBufferCursor(t *testing.T) {
	_, pb := newTestBuffer(16, "hello")
	require.NoError(t, pb.Pump())

	require.Equal(t, 5, pb.ReadAhead(), "all scalars visible")
	require.Equal(t, rune('h'), pb.At(0))
	require.Equal(t, rune('e'), pb.At(1))

	pb.Advance(2)
	require.Equal(t, 3, pb.ReadAhead(), "cursor consumed lookahead")
	require.Equal(t, rune('l'), pb.At(0), "At is cursor relative")

	pb.Advance(10)
	require.Equal(t, 0, pb.ReadAhead(), "Advance clamps to availability")
	require.Equal(t, 5, pb.Position())
}

func TestParsingBufferErase(t *testing.T) {
	_, pb := newTestBuffer(16, "abcdef")
	require.NoError(t, pb.Pump())

	pb.Advance(4)
	pb.EraseToCurrentPosition()

	require.Equal(t, 0, pb.Position(), "cursor reset to zero")
	require.Equal(t, 2, pb.Len(), "examined prefix dropped")
	require.Equal(t, rune('e'), pb.At(0), "unread lookahead preserved")
	require.Equal(t, 4, pb.DocumentOffset(), "document offset accounts for erased scalars")
}

func TestParsingBufferCapacity(t *testing.T) {
	s, pb := newTestBuffer(4, "abcdef")
	require.NoError(t, pb.Pump())

	require.Equal(t, 4, pb.Len(), "window fills to capacity only")
	require.True(t, pb.Full())
	require.Equal(t, 2, s.Used(), "undecoded bytes stay queued")

	pb.Advance(4)
	pb.EraseToCurrentPosition()
	require.NoError(t, pb.Pump())
	require.Equal(t, 2, pb.Len(), "erase makes room for the remainder")
	require.Equal(t, 0, s.Used())
}

func TestParsingBufferPumpSurfacesEncodingError(t *testing.T) {
	s := NewByteSink(16)
	s.WriteData([]byte{'a', 0xc0, 0xaf})
	pb := NewParsingBuffer(NewUnicodeDecoder(s), 16)

	err := pb.Pump()
	require.Error(t, err, "overlong sequence surfaces from Pump")
	require.Equal(t, 1, pb.Len(), "scalars before the bad sequence survive")
}
