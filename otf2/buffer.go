package otf2

type rewindPoint struct {
	chunkIndex    uint64
	offset        int
	haveBaseline  bool
	baseline      uint64
	lastTimestamp uint64
}

// WriteBuffer accumulates records into fixed-size chunks and flushes each
// sealed chunk to a WriteSubstrate, optionally compressing it first
// (spec.md §3's "Chunked buffer" / §4.2). It is grounded on two teacher
// shapes: perffile/buf.go's bufferedSectionReader for the chunk/sentinel
// framing, and ignite/internal/storage/storage.go's rotate-on-full
// segment logic for deciding when to seal and start fresh.
type WriteBuffer struct {
	chunkSize  int
	compressor Compressor
	sub        WriteSubstrate
	clock      func() uint64
	emitFlushMarker bool

	cur        bufEncoder
	chunkIndex uint64

	haveBaseline  bool
	baseline      uint64
	lastTimestamp uint64

	rewindPolicy RewindOnFlushPolicy
	rewinds      map[uint64]rewindPoint

	closed bool
}

// newWriteBuffer constructs a WriteBuffer over sub. emitFlushMarker should
// be false for streams that never carry events (e.g. the global
// definition writer: its chunks are sealed and flushed like any other,
// but carry no BufferFlush markers).
func newWriteBuffer(sub WriteSubstrate, opts ArchiveOptions, emitFlushMarker bool) *WriteBuffer {
	clock := opts.Clock
	if clock == nil {
		clock = defaultClock
	}
	return &WriteBuffer{
		chunkSize:       opts.ChunkSize,
		compressor:      opts.Compressor,
		sub:             sub,
		clock:           clock,
		emitFlushMarker: emitFlushMarker,
		rewindPolicy:    opts.RewindOnFlush,
		rewinds:         make(map[uint64]rewindPoint),
	}
}

// sentinelSize accounts for the one-byte RecordBufferEnd tag every sealed
// chunk ends with.
const sentinelSize = 1

// reserve ensures n more bytes fit in the current chunk, sealing and
// flushing it first if they don't.
func (w *WriteBuffer) reserve(n int) error {
	if len(w.cur.buf)+n+sentinelSize <= w.chunkSize {
		return nil
	}
	if len(w.cur.buf) == 0 {
		// A single record larger than a whole chunk: write it unsealed
		// rather than looping forever trying to make room.
		return nil
	}
	return w.flush()
}

// appendRecord writes a fully encoded record (tag byte, length prefix,
// and body already assembled by the record schema layer) into the
// current chunk, sealing/flushing first if it would not fit.
func (w *WriteBuffer) appendRecord(raw []byte) error {
	if w.closed {
		return errInvalidCall("write to closed buffer")
	}
	if err := w.reserve(len(raw)); err != nil {
		return err
	}
	w.cur.writeBytes(raw)
	return nil
}

// encodeTimestamp writes t into be using per-chunk baseline-delta
// compression (spec.md §4.1): the first timestamp of a chunk is absolute,
// later ones are deltas against that first value. Timestamps within a
// chunk must be non-decreasing.
func (w *WriteBuffer) encodeTimestamp(be *bufEncoder, t uint64) error {
	if w.haveBaseline && t < w.lastTimestamp {
		return errIntegrityFault("non-monotonic timestamp %d after %d", t, w.lastTimestamp)
	}
	if !w.haveBaseline {
		w.baseline = t
		w.haveBaseline = true
		be.uvarint(t)
	} else {
		be.uvarint(t - w.baseline)
	}
	w.lastTimestamp = t
	return nil
}

// flush seals the current chunk (sentinel + zero pad), writes it to the
// substrate (compressed, if a Compressor is configured), and starts a new
// chunk primed with a BufferFlush record.
func (w *WriteBuffer) flush() error {
	start := w.clock()

	sealed := make([]byte, w.chunkSize)
	n := copy(sealed, w.cur.buf)
	sealed[n] = byte(RecordBufferEnd)
	// remainder is already zero from make([]byte, ...)

	payload := sealed
	if w.compressor != nil && w.compressor.Kind() != CompressionNone {
		compressed, err := w.compressor.Compress(sealed)
		if err != nil {
			return err
		}
		var hdr bufEncoder
		hdr.u64(uint64(w.chunkSize))
		hdr.u64(uint64(len(compressed)))
		payload = append(hdr.bytes(), compressed...)
	}
	if _, err := w.sub.Write(payload); err != nil {
		return err
	}

	stop := w.clock()

	w.chunkIndex++
	w.cur.reset()
	w.haveBaseline = false
	w.lastTimestamp = 0

	if w.emitFlushMarker {
		var body bufEncoder
		if err := w.encodeTimestamp(&body, stop); err != nil {
			return err
		}
		body.uvarint(start)

		var frame bufEncoder
		frame.u8(uint8(RecordBufferFlush))
		frame.uvarint(uint64(len(body.buf)))
		frame.writeBytes(body.buf)
		w.cur.writeBytes(frame.buf)
	}
	return nil
}

// Close seals and flushes whatever remains in the current chunk, even if
// it is partially empty.
func (w *WriteBuffer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if len(w.cur.buf) > 0 || w.chunkIndex == 0 {
		return w.flush()
	}
	return nil
}

// StoreRewindPoint records the current write position under id, per
// spec.md §4.2's rewind API.
func (w *WriteBuffer) StoreRewindPoint(id uint64) {
	w.rewinds[id] = rewindPoint{
		chunkIndex:    w.chunkIndex,
		offset:        len(w.cur.buf),
		haveBaseline:  w.haveBaseline,
		baseline:      w.baseline,
		lastTimestamp: w.lastTimestamp,
	}
}

// ClearRewindPoint discards a previously stored rewind point without
// using it.
func (w *WriteBuffer) ClearRewindPoint(id uint64) {
	delete(w.rewinds, id)
}

// Rewind truncates the buffer back to the position stored under id. If a
// chunk boundary was crossed (a flush already moved the stored position's
// chunk to the substrate, so it can no longer be undone) the point is
// "demoted": RewindFailOnFlush returns an error, RewindMarkOnFlush instead
// leaves the flushed bytes in place and lets the caller emit an
// observable Rewind marker recording the fact (SPEC_FULL.md §9).
func (w *WriteBuffer) Rewind(id uint64) (demoted bool, err error) {
	p, ok := w.rewinds[id]
	if !ok {
		return false, errInvalidArgument("unknown rewind point %d", id)
	}
	delete(w.rewinds, id)

	if p.chunkIndex != w.chunkIndex {
		if w.rewindPolicy == RewindFailOnFlush {
			return true, errPropertyNameInvalid("rewind point %d demoted by an intervening flush", id)
		}
		return true, nil
	}

	w.cur.buf = w.cur.buf[:p.offset]
	w.haveBaseline = p.haveBaseline
	w.baseline = p.baseline
	w.lastTimestamp = p.lastTimestamp
	return false, nil
}

// ReadBuffer is the read-side mirror of WriteBuffer: it pulls sealed
// chunks from a ReadSubstrate on demand, decompresses them, and exposes a
// decode cursor that transparently advances across chunk boundaries.
// Grounded on perffile/buf.go's bufferedSectionReader, which does the
// same slide-and-refill dance over an io.ReaderAt.
type ReadBuffer struct {
	sub        ReadSubstrate
	chunkSize  int
	compressor Compressor
	fileOffset int64

	dec        *bufDecoder
	chunkIndex uint64

	haveBaseline bool
	baseline     uint64

	eof bool
}

func newReadBuffer(sub ReadSubstrate, chunkSize int, compressor Compressor) *ReadBuffer {
	return &ReadBuffer{
		sub:        sub,
		chunkSize:  chunkSize,
		compressor: compressor,
		dec:        newBufDecoder(nil),
	}
}

// loadNextChunk reads and decompresses the next chunk from the substrate,
// resetting per-chunk timestamp state.
func (r *ReadBuffer) loadNextChunk() error {
	if r.fileOffset >= r.sub.Size() {
		r.eof = true
		return nil
	}

	var raw []byte
	if r.compressor != nil && r.compressor.Kind() != CompressionNone {
		hdr := make([]byte, 16)
		if _, err := r.sub.ReadAt(hdr, r.fileOffset); err != nil {
			return errIntegrityFault("read chunk header: %v", err)
		}
		hd := newBufDecoder(hdr)
		rawSize := int(hd.u64())
		compSize := int(hd.u64())
		compressed := make([]byte, compSize)
		if _, err := r.sub.ReadAt(compressed, r.fileOffset+16); err != nil {
			return errIntegrityFault("read chunk payload: %v", err)
		}
		chunk, err := r.compressor.Decompress(compressed, rawSize)
		if err != nil {
			return err
		}
		raw = chunk
		r.fileOffset += 16 + int64(compSize)
	} else {
		raw = make([]byte, r.chunkSize)
		if _, err := r.sub.ReadAt(raw, r.fileOffset); err != nil {
			return errIntegrityFault("read chunk: %v", err)
		}
		r.fileOffset += int64(r.chunkSize)
	}

	r.dec = newBufDecoder(raw)
	r.chunkIndex++
	r.haveBaseline = false
	return nil
}

// peekTag returns the next record's tag without consuming it, advancing
// across chunk boundaries as needed. It returns RecordNone at end of
// stream.
func (r *ReadBuffer) peekTag() (RecordType, error) {
	for {
		if r.dec.len() == 0 {
			if err := r.loadNextChunk(); err != nil {
				return RecordNone, err
			}
			if r.eof {
				return RecordNone, nil
			}
			continue
		}
		tag := RecordType(r.dec.buf[0])
		if tag == RecordBufferEnd {
			if err := r.loadNextChunk(); err != nil {
				return RecordNone, err
			}
			if r.eof {
				return RecordNone, nil
			}
			continue
		}
		return tag, nil
	}
}

// readTag consumes and returns the next record's tag.
func (r *ReadBuffer) readTag() (RecordType, error) {
	tag, err := r.peekTag()
	if err != nil || tag == RecordNone {
		return tag, err
	}
	r.dec.u8()
	return tag, nil
}

// decoder exposes the current chunk's decode cursor for record body
// decoding.
func (r *ReadBuffer) decoder() *bufDecoder { return r.dec }

// decodeTimestamp is the read-side mirror of WriteBuffer.encodeTimestamp.
func (r *ReadBuffer) decodeTimestamp() uint64 {
	if !r.haveBaseline {
		r.baseline = r.dec.uvarint()
		r.haveBaseline = true
		return r.baseline
	}
	return r.baseline + r.dec.uvarint()
}
