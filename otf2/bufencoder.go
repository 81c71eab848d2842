package otf2

import (
	"encoding/binary"
	"math"
)

// bufEncoder is the write-side mirror of bufDecoder: it appends encoded
// fields to a growing byte slice. There is no teacher analogue for the
// encode direction (perffile is read-only); the method-per-type shape
// mirrors bufDecoder so the two stay easy to read side by side.
type bufEncoder struct {
	buf []byte
}

func (b *bufEncoder) bytes() []byte { return b.buf }

func (b *bufEncoder) reset() { b.buf = b.buf[:0] }

func (b *bufEncoder) writeBytes(p []byte) {
	b.buf = append(b.buf, p...)
}

func (b *bufEncoder) u8(x uint8) {
	b.buf = append(b.buf, x)
}

func (b *bufEncoder) u16(x uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], x)
	b.buf = append(b.buf, tmp[:]...)
}

func (b *bufEncoder) u32(x uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], x)
	b.buf = append(b.buf, tmp[:]...)
}

func (b *bufEncoder) u64(x uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], x)
	b.buf = append(b.buf, tmp[:]...)
}

func (b *bufEncoder) f32(x float32) {
	b.u32(math.Float32bits(x))
}

func (b *bufEncoder) f64(x float64) {
	b.u64(math.Float64bits(x))
}

// uvarint appends the OTF2 "compressed" unsigned integer encoding: one
// leading byte with the number of significant big-endian payload bytes (0
// when x == 0), then those bytes high-byte-first with leading zeroes
// stripped. See spec.md §4.1.
func (b *bufEncoder) uvarint(x uint64) {
	if x == 0 {
		b.u8(0)
		return
	}
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], x)
	start := 0
	for start < 7 && tmp[start] == 0 {
		start++
	}
	n := 8 - start
	b.u8(uint8(n))
	b.writeBytes(tmp[start:])
}

// ivarint zig-zag pre-encodes a signed integer, then writes it with the
// compressed unsigned encoding.
func (b *bufEncoder) ivarint(x int64) {
	u := uint64(x<<1) ^ uint64(x>>63)
	b.uvarint(u)
}

// cstring appends a length-prefixed (compressed uint32), zero-terminated
// UTF-8 string.
func (b *bufEncoder) cstring(s string) {
	b.uvarint(uint64(len(s)))
	b.writeBytes([]byte(s))
	b.u8(0)
}

// sizeUvarint returns the number of bytes uvarint(x) would write, used by
// record encoders to reserve space for length prefixes without a second
// encode pass.
func sizeUvarint(x uint64) int {
	if x == 0 {
		return 1
	}
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], x)
	start := 0
	for start < 7 && tmp[start] == 0 {
		start++
	}
	return 1 + (8 - start)
}
