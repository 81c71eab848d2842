package otf2

import "testing"

func TestAttributeListRoundTrip(t *testing.T) {
	l := NewAttributeList()
	l.AddUint32(1, 42)
	l.AddInt64(2, -7)
	l.AddDouble(3, 3.5)
	l.AddString(4, StringRef(9))
	l.AddRegion(5, RegionRef(100))

	var be bufEncoder
	encodeAttributeList(l, &be)

	bd := newBufDecoder(be.buf)
	got := decodeAttributeList(bd)

	if got.Len() != l.Len() {
		t.Fatalf("decoded %d attrs, want %d", got.Len(), l.Len())
	}
	for i, want := range l.All() {
		have := got.All()[i]
		if have.ID != want.ID || have.Value != want.Value {
			t.Errorf("attr %d: got %+v, want %+v", i, have, want)
		}
	}
}

func TestAttributeListClearReusesBackingArray(t *testing.T) {
	l := NewAttributeList()
	l.AddUint8(1, 1)
	l.AddUint8(2, 2)
	l.Clear()
	if l.Len() != 0 {
		t.Fatalf("Len() after Clear() = %d, want 0", l.Len())
	}
	l.AddUint8(3, 3)
	if l.Len() != 1 || l.All()[0].ID != 3 {
		t.Fatalf("unexpected state after reuse: %+v", l.All())
	}
}
