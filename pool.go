package iso8583

import "sync"

const (
	// Room for the MTI, both ASCII bitmaps and a typical authorization.
	baseWireSize = mtiLength + 2*hexBitmapSize + 256
	// Rough per-field allowance when sizing a fresh buffer.
	fieldWireSize = 16
	// A message carrying several LLLVAR elements near their 999 maximum.
	maxPooledSize = 8 * 1024
)

// wirePool recycles the scratch buffers BuildWire serializes into.
var wirePool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, baseWireSize)
		return &buf
	},
}

// getBuffer returns an empty scratch buffer with room for about fields
// data elements.
func getBuffer(fields int) []byte {
	buf := *wirePool.Get().(*[]byte)
	if want := baseWireSize + fields*fieldWireSize; cap(buf) < want {
		buf = make([]byte, 0, want)
	}
	return buf[:0]
}

// putBuffer returns buf to the pool unless it grew past maxPooledSize.
func putBuffer(buf []byte) {
	if cap(buf) > maxPooledSize {
		return
	}
	b := buf[:0]
	wirePool.Put(&b)
}

// detach copies wire bytes out of a scratch or caller-owned buffer so the
// message owns its Raw slice.
func detach(buf []byte) []byte {
	if buf == nil {
		return nil
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}
