package otf2

import "testing"

func TestUvarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 0xFF, 0x100, 0xFFFF, 1 << 32, ^uint64(0)}
	for _, x := range cases {
		var be bufEncoder
		be.uvarint(x)
		if got := sizeUvarint(x); got != len(be.buf) {
			t.Errorf("sizeUvarint(%d) = %d, want %d", x, got, len(be.buf))
		}
		bd := newBufDecoder(be.buf)
		if got := bd.uvarint(); got != x {
			t.Errorf("uvarint round trip: got %d, want %d", got, x)
		}
		if bd.len() != 0 {
			t.Errorf("uvarint(%d) left %d trailing bytes", x, bd.len())
		}
	}
}

func TestIvarintRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 127, -128, 1 << 40, -(1 << 40)}
	for _, x := range cases {
		var be bufEncoder
		be.ivarint(x)
		bd := newBufDecoder(be.buf)
		if got := bd.ivarint(); got != x {
			t.Errorf("ivarint round trip: got %d, want %d", got, x)
		}
	}
}

func TestCstringRoundTrip(t *testing.T) {
	cases := []string{"", "a", "hello, otf2", "unicode: é中"}
	for _, s := range cases {
		var be bufEncoder
		be.cstring(s)
		bd := newBufDecoder(be.buf)
		if got := bd.cstring(); got != s {
			t.Errorf("cstring round trip: got %q, want %q", got, s)
		}
	}
}

func TestFixedWidthBigEndian(t *testing.T) {
	var be bufEncoder
	be.u16(0x0102)
	be.u32(0x01020304)
	be.u64(0x0102030405060708)
	want := []byte{0x01, 0x02, 0x01, 0x02, 0x03, 0x04, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	if len(be.buf) != len(want) {
		t.Fatalf("got %d bytes, want %d", len(be.buf), len(want))
	}
	for i := range want {
		if be.buf[i] != want[i] {
			t.Fatalf("byte %d: got %#x, want %#x (not big-endian)", i, be.buf[i], want[i])
		}
	}
}

func TestDecodeFieldRecoversTruncatedRead(t *testing.T) {
	bd := newBufDecoder(nil)
	err := decodeField(func() { bd.u64() })
	if Code(err) != ErrorCodeEndOfBuffer {
		t.Fatalf("decodeField on empty buffer: got %v, want ErrorCodeEndOfBuffer", err)
	}
}
