package argon

import "github.com/argon-xml/argon/internal/debug"

// ParsingBuffer is the append-only window of decoded scalars the item
// parsers work over. Scalars before the read cursor have been examined;
// those at and after it are the unread lookahead. EraseToCurrentPosition
// is the only reclamation point: it drops the examined prefix once a
// token has been fully consumed, which is what keeps memory bounded.
type ParsingBuffer struct {
	dec      *UnicodeDecoder
	data     []rune
	pos      int
	capacity int

	// scalars erased so far, for error locations
	erased int
}

// NewParsingBuffer returns a buffer holding at most capacity scalars,
// filled from dec.
func NewParsingBuffer(dec *UnicodeDecoder, capacity int) *ParsingBuffer {
	return &ParsingBuffer{
		dec:      dec,
		data:     make([]rune, 0, capacity),
		capacity: capacity,
	}
}

// Pump decodes queued bytes into the scalar window until the window is
// full or the sink runs out of complete sequences. A malformed sequence
// surfaces as the decoder's error.
func (pb *ParsingBuffer) Pump() error {
	for len(pb.data) < pb.capacity {
		c, st, err := pb.dec.Decode()
		switch st {
		case decodeNeedMore:
			return nil
		case decodeInvalid:
			return err
		}
		pb.data = append(pb.data, c)
	}
	if debug.Enabled {
		debug.Printf("parsing buffer full (%d scalars)", len(pb.data))
	}
	return nil
}

// ReadAhead returns how many scalars are available from the cursor on.
func (pb *ParsingBuffer) ReadAhead() int {
	return len(pb.data) - pb.pos
}

// At returns the scalar at the given offset from the cursor. The caller
// must have confirmed availability via ReadAhead.
func (pb *ParsingBuffer) At(off int) rune {
	return pb.data[pb.pos+off]
}

// Advance moves the cursor forward by n scalars, clamped to what is
// available.
func (pb *ParsingBuffer) Advance(n int) {
	if avail := pb.ReadAhead(); n > avail {
		n = avail
	}
	pb.pos += n
}

// Position returns the cursor's absolute index into the current window.
func (pb *ParsingBuffer) Position() int {
	return pb.pos
}

// Text returns the scalars in the window between the absolute indices
// from and to as a string.
func (pb *ParsingBuffer) Text(from, to int) string {
	return string(pb.data[from:to])
}

// EraseToCurrentPosition drops the examined prefix [0, cursor) and
// resets the cursor to 0.
func (pb *ParsingBuffer) EraseToCurrentPosition() {
	if pb.pos == 0 {
		return
	}
	pb.erased += pb.pos
	pb.data = append(pb.data[:0], pb.data[pb.pos:]...)
	pb.pos = 0
}

// Len returns the number of scalars currently held.
func (pb *ParsingBuffer) Len() int {
	return len(pb.data)
}

// Capacity returns the fixed window capacity in scalars.
func (pb *ParsingBuffer) Capacity() int {
	return pb.capacity
}

// Full reports whether the window cannot hold any more scalars.
func (pb *ParsingBuffer) Full() bool {
	return len(pb.data) >= pb.capacity
}

// DocumentOffset returns the absolute scalar offset of the cursor from
// the start of the document.
func (pb *ParsingBuffer) DocumentOffset() int {
	return pb.erased + pb.pos
}

// Clear discards the window and resets all positions.
func (pb *ParsingBuffer) Clear() {
	pb.data = pb.data[:0]
	pb.pos = 0
	pb.erased = 0
}
