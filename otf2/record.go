package otf2

// Record is the tagged-union interface every event and definition record
// implements, mirroring perffile.Record's Type()/Common() shape (see
// perffile/format.go) generalized from perf.data's closed sample-kind set
// to OTF2's much larger event+definition kind set.
type Record interface {
	Type() RecordType
}

// recordBody is implemented by every concrete Record type and knows how
// to encode just its body (the fields after the tag/length framing,
// which encodeRecord supplies generically). wb is threaded through so
// event records can delta-compress their Time field against the current
// chunk's baseline; definition records ignore it.
type recordBody interface {
	Record
	encodeBody(be *bufEncoder, wb *WriteBuffer) error
}

// EventCommon is embedded by every event record. It is the generalization
// of perffile's per-record common header, here carrying the one field
// every OTF2 event shares: its timestamp (spec.md §3).
type EventCommon struct {
	Time uint64
}

func (c EventCommon) eventTime() uint64 { return c.Time }

// encodeRecord frames r's body with a tag byte and a compressed-uint32
// length prefix and appends the result to wb (spec.md §4.4/§6). Records
// whose kind is above 0xF0 (the range holding the framing tags) use
// RecordExt framing: [RecordExt][16-bit kind][length][body].
func encodeRecord(r recordBody, wb *WriteBuffer) error {
	frame, err := frameRecord(r, wb)
	if err != nil {
		return err
	}
	return wb.appendRecord(frame)
}

// frameRecord builds r's tag/length/body frame (see encodeRecord's doc)
// without appending it to wb, so a caller that must place more than one
// record atomically in the same chunk (Writer.Write's attribute list +
// event pairing, spec.md §4.3) can concatenate frames before the one
// reserve/flush decision that appendRecord makes.
func frameRecord(r recordBody, wb *WriteBuffer) ([]byte, error) {
	var body bufEncoder
	if err := r.encodeBody(&body, wb); err != nil {
		return nil, err
	}

	var frame bufEncoder
	kind := r.Type()
	if uint16(kind) <= 0xF0 {
		frame.u8(uint8(kind))
	} else {
		frame.u8(uint8(RecordExt))
		frame.u16(uint16(kind))
	}
	frame.uvarint(uint64(len(body.buf)))
	frame.writeBytes(body.buf)
	return frame.buf, nil
}

// decodeRecord reads one record's tag, length, and body from rb and
// returns the decoded Record. It returns (nil, nil) when the stream is
// exhausted.
func decodeRecord(rb *ReadBuffer) (Record, error) {
	tag, err := rb.readTag()
	if err != nil {
		return nil, err
	}
	if tag == RecordNone {
		return nil, nil
	}

	kind := tag
	if tag == RecordExt {
		kind = RecordType(rb.decoder().u16())
	}
	length := int(rb.decoder().uvarint())
	body := rb.decoder().bytes(length)
	bd := newBufDecoder(body)

	// Event decoders read their timestamp through rb.decodeTimestamp,
	// which reads rb.dec: point it at this record's body while decoding.
	outer := rb.dec
	rb.dec = bd
	defer func() { rb.dec = outer }()
	return decodeRecordBody(kind, bd, rb)
}

// decodeRecordBody dispatches on kind to the per-record decoder. Unknown
// kinds (forward-compatible records this build doesn't recognize) decode
// to *UnknownRecord rather than failing the whole read, per spec.md §4.4's
// forward-compatibility rule.
func decodeRecordBody(kind RecordType, bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	if fn, ok := recordDecoders[kind]; ok {
		return fn(bd, rb)
	}
	return &UnknownRecord{Kind: kind, Body: append([]byte(nil), bd.buf...)}, nil
}

// UnknownRecord preserves the raw body of a record kind this build does
// not recognize, so readers can skip it without losing byte-level
// fidelity (spec.md §4.4).
type UnknownRecord struct {
	Kind RecordType
	Body []byte
}

func (r *UnknownRecord) Type() RecordType { return r.Kind }

// recordDecoders is populated at package init by record.go,
// record_events.go and record_defs.go. Splitting registration by file (events, definitions) instead of
// one central switch keeps each record kind's encode/decode/struct
// together, the way perffile/events.go groups the PERF_RECORD_* kinds it
// implements apart from perffile/records.go's generic framing.
var recordDecoders = map[RecordType]func(bd *bufDecoder, rb *ReadBuffer) (Record, error){}

func registerRecordDecoder(kind RecordType, fn func(bd *bufDecoder, rb *ReadBuffer) (Record, error)) {
	recordDecoders[kind] = fn
}

func init() {
	registerRecordDecoder(RecordBufferFlush, decodeBufferFlush)
	registerRecordDecoder(RecordRewind, decodeRewind)
	registerRecordDecoder(RecordAttributeList, func(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
		return decodeAttributeList(bd), nil
	})
}

// BufferFlush is the marker record WriteBuffer injects as the first
// record of every chunk after the first (spec.md §4.2). StopTime (the
// embedded EventCommon.Time) is when the flush that sealed the previous
// chunk completed; StartTime is when it began.
type BufferFlush struct {
	EventCommon
	StartTime uint64
}

func (r *BufferFlush) Type() RecordType { return RecordBufferFlush }

func decodeBufferFlush(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	stop := rb.decodeTimestamp()
	start := bd.uvarint()
	return &BufferFlush{EventCommon{Time: stop}, start}, nil
}

// Rewind is the observable marker Writer.Rewind emits under
// RewindMarkOnFlush when a stored rewind point was demoted by an
// intervening flush (SPEC_FULL.md §9).
type Rewind struct {
	ID uint64
}

func (r *Rewind) Type() RecordType { return RecordRewind }

func decodeRewind(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &Rewind{ID: bd.uvarint()}, nil
}
