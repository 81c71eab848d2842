package otf2

import (
	"io"
	"testing"
)

// memSubstrate is an in-memory stand-in for the file-backed substrates,
// satisfying both WriteSubstrate and ReadSubstrate so buffer tests don't
// need a temp directory.
type memSubstrate struct{ buf []byte }

func (m *memSubstrate) Write(p []byte) (int, error) {
	m.buf = append(m.buf, p...)
	return len(p), nil
}
func (m *memSubstrate) Close() error { return nil }
func (m *memSubstrate) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(p, m.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
func (m *memSubstrate) Size() int64 { return int64(len(m.buf)) }

func newTestWriteBuffer(sub *memSubstrate, chunkSize int, emitFlushMarker bool) *WriteBuffer {
	clockTicks := uint64(0)
	opts := ArchiveOptions{ChunkSize: chunkSize, Compressor: NopCompressor{}, Clock: func() uint64 {
		clockTicks++
		return clockTicks
	}}.withDefaults()
	return newWriteBuffer(sub, opts, emitFlushMarker)
}

func TestWriteBufferTimestampBaselineDelta(t *testing.T) {
	sub := &memSubstrate{}
	wb := newTestWriteBuffer(sub, DefaultChunkSize, false)

	var frame bufEncoder
	frame.u8(uint8(RecordEnter))
	if err := wb.encodeTimestamp(&frame, 1000); err != nil {
		t.Fatalf("encodeTimestamp: %v", err)
	}
	if err := wb.encodeTimestamp(&frame, 1010); err != nil {
		t.Fatalf("encodeTimestamp: %v", err)
	}
	if err := wb.appendRecord(frame.buf); err != nil {
		t.Fatalf("appendRecord: %v", err)
	}
	if err := wb.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	rb := newReadBuffer(sub, DefaultChunkSize, NopCompressor{})
	tag, err := rb.readTag()
	if err != nil {
		t.Fatalf("readTag: %v", err)
	}
	if tag != RecordEnter {
		t.Fatalf("readTag() = %v, want RecordEnter", tag)
	}
	if got := rb.decodeTimestamp(); got != 1000 {
		t.Fatalf("first decoded timestamp = %d, want 1000", got)
	}
	if got := rb.decodeTimestamp(); got != 1010 {
		t.Fatalf("second decoded timestamp = %d, want 1010", got)
	}
}

func TestWriteBufferRejectsNonMonotonicTimestamp(t *testing.T) {
	sub := &memSubstrate{}
	wb := newTestWriteBuffer(sub, DefaultChunkSize, false)
	var be bufEncoder
	if err := wb.encodeTimestamp(&be, 100); err != nil {
		t.Fatalf("encodeTimestamp: %v", err)
	}
	err := wb.encodeTimestamp(&be, 99)
	if Code(err) != ErrorCodeIntegrityFault {
		t.Fatalf("encodeTimestamp(non-monotonic) = %v, want ErrorCodeIntegrityFault", err)
	}
}

func TestWriteBufferChunkBoundaryInsertsBufferFlush(t *testing.T) {
	sub := &memSubstrate{}
	// A tiny chunk size forces a flush after just a couple of records.
	wb := newTestWriteBuffer(sub, 32, true)

	var rec bufEncoder
	rec.u8(uint8(RecordEnter))
	rec.uvarint(8) // body length placeholder, not decoded by this test
	rec.writeBytes(make([]byte, 8))
	if err := wb.appendRecord(rec.buf); err != nil {
		t.Fatalf("appendRecord: %v", err)
	}
	if err := wb.appendRecord(rec.buf); err != nil {
		t.Fatalf("appendRecord: %v", err)
	}
	// Two 11-byte records plus the sentinel fit in 32 bytes; the third
	// does not, so it starts the second chunk behind a BufferFlush.
	if err := wb.appendRecord(rec.buf); err != nil {
		t.Fatalf("appendRecord: %v", err)
	}
	if err := wb.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if sub.Size() == 0 {
		t.Fatalf("expected at least one chunk flushed to the substrate")
	}
	if sub.Size()%int64(32) != 0 {
		t.Errorf("flushed substrate size %d is not a multiple of chunk size 32", sub.Size())
	}
	if sub.Size() != 64 {
		t.Fatalf("flushed substrate size = %d, want 64 (two chunks)", sub.Size())
	}
	if got := sub.buf[32]; got != byte(RecordBufferFlush) {
		t.Errorf("second chunk starts with tag %#x, want BufferFlush %#x", got, byte(RecordBufferFlush))
	}
}

func TestWriteBufferRewindWithinSameChunk(t *testing.T) {
	sub := &memSubstrate{}
	wb := newTestWriteBuffer(sub, DefaultChunkSize, false)

	var rec bufEncoder
	rec.u8(uint8(RecordEnter))
	rec.uvarint(0)
	if err := wb.appendRecord(rec.buf); err != nil {
		t.Fatalf("appendRecord: %v", err)
	}
	wb.StoreRewindPoint(1)
	if err := wb.appendRecord(rec.buf); err != nil {
		t.Fatalf("appendRecord: %v", err)
	}
	sizeBeforeRewind := len(wb.cur.buf)

	demoted, err := wb.Rewind(1)
	if err != nil {
		t.Fatalf("Rewind: %v", err)
	}
	if demoted {
		t.Fatalf("Rewind within the same chunk should not be demoted")
	}
	if len(wb.cur.buf) >= sizeBeforeRewind {
		t.Errorf("Rewind did not truncate the buffer: before=%d after=%d", sizeBeforeRewind, len(wb.cur.buf))
	}
}

func TestWriteBufferRewindDemotedByFlush(t *testing.T) {
	sub := &memSubstrate{}
	wb := newTestWriteBuffer(sub, DefaultChunkSize, false)
	wb.rewindPolicy = RewindMarkOnFlush

	wb.StoreRewindPoint(1)
	if err := wb.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	demoted, err := wb.Rewind(1)
	if err != nil {
		t.Fatalf("Rewind under RewindMarkOnFlush should not error: %v", err)
	}
	if !demoted {
		t.Errorf("Rewind across a flush should report demoted=true")
	}
}

func TestWriteBufferRewindFailsUnderFailPolicy(t *testing.T) {
	sub := &memSubstrate{}
	wb := newTestWriteBuffer(sub, DefaultChunkSize, false)
	wb.rewindPolicy = RewindFailOnFlush

	wb.StoreRewindPoint(1)
	if err := wb.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	_, err := wb.Rewind(1)
	if Code(err) != ErrorCodePropertyNameInvalid {
		t.Fatalf("Rewind across a flush under RewindFailOnFlush = %v, want ErrorCodePropertyNameInvalid", err)
	}
}
