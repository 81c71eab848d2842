package otf2

import "go.uber.org/zap"

// Writer serializes one location's event stream into its own chunked
// buffer (spec.md §3/§4.2). An Archive owns one Writer per location,
// created via Archive.CreateLocationWriter.
//
// Grounded on perffile's per-record encode shape generalized to a
// streaming writer (perffile is read-only), combined with
// ignite/internal/storage/storage.go's pattern of a thin per-stream type
// wrapping a rotating buffer.
type Writer struct {
	location LocationRef
	buf      *WriteBuffer
	log      *zap.Logger

	pendingAttrs *AttributeList
	eventCount   uint64
	userData     any
}

func newWriter(location LocationRef, buf *WriteBuffer, log *zap.Logger) *Writer {
	return &Writer{location: location, buf: buf, log: log}
}

// Location reports which location this writer serializes events for.
func (w *Writer) Location() LocationRef { return w.location }

// SetLocationID lets a writer reassign which location its stream belongs
// to before any event is written, matching the original implementation's
// OTF2_EvtWriter_SetLocationID (SPEC_FULL.md §9 supplement): traces are
// sometimes built by workers that don't know their final location id
// until after they start buffering.
func (w *Writer) SetLocationID(location LocationRef) error {
	if w.eventCount != 0 {
		return errInvalidCall("SetLocationID after events have been written")
	}
	w.location = location
	return nil
}

// GetLocationID reports the writer's current location id.
func (w *Writer) GetLocationID() LocationRef { return w.location }

// GetNumberOfEvents reports how many events this writer has written so
// far, mirroring OTF2_EvtWriter_GetNumberOfEvents.
func (w *Writer) GetNumberOfEvents() uint64 { return w.eventCount }

// SetUserData/GetUserData attach an opaque value to the writer, the way
// the original C API lets a caller stash a pointer alongside each
// per-location handle instead of maintaining a side table.
func (w *Writer) SetUserData(v any) { w.userData = v }
func (w *Writer) GetUserData() any  { return w.userData }

// AttachAttributes queues attrs to be attached to the next event written
// (spec.md §4.3). The writer takes ownership of attrs; the caller must
// not reuse it until after the next Write call, which clears it.
func (w *Writer) AttachAttributes(attrs *AttributeList) {
	w.pendingAttrs = attrs
}

// Write encodes r (any concrete event record type) into this location's
// buffer. If attributes are pending (AttachAttributes was called since
// the last Write), they are framed first as an ATTRIBUTE_LIST
// pseudo-record and appended together with r's frame in one
// WriteBuffer.appendRecord call, so the pair can never be split by a
// chunk flush landing between them — spec.md §4.3's invariant that an
// AttributeList is always followed by its event in the same chunk holds
// by construction rather than by accident of chunk sizing.
func (w *Writer) Write(r recordBody) error {
	if _, isEvent := r.(interface{ eventTime() uint64 }); !isEvent {
		return errInvalidArgument("Write requires an event record")
	}

	var combined bufEncoder
	if w.pendingAttrs != nil && w.pendingAttrs.Len() > 0 {
		combined.writeBytes(frameAttributeList(w.pendingAttrs))
	}
	if w.pendingAttrs != nil {
		w.pendingAttrs.Clear()
	}
	w.pendingAttrs = nil

	frame, err := frameRecord(r, w.buf)
	if err != nil {
		return err
	}
	combined.writeBytes(frame)

	if err := w.buf.appendRecord(combined.buf); err != nil {
		return err
	}
	w.eventCount++
	return nil
}

func frameAttributeList(attrs *AttributeList) []byte {
	var body bufEncoder
	encodeAttributeList(attrs, &body)

	var frame bufEncoder
	frame.u8(uint8(RecordAttributeList))
	frame.uvarint(uint64(len(body.buf)))
	frame.writeBytes(body.buf)
	return frame.buf
}

// StoreRewindPoint and ClearRewindPoint delegate to the underlying
// buffer; see WriteBuffer for the demotion semantics.
func (w *Writer) StoreRewindPoint(id uint64) { w.buf.StoreRewindPoint(id) }
func (w *Writer) ClearRewindPoint(id uint64) { w.buf.ClearRewindPoint(id) }

// Rewind truncates the stream back to a stored point. If the point was
// demoted by an intervening chunk flush and the archive's
// RewindOnFlush policy is RewindMarkOnFlush, Rewind instead emits an
// observable Rewind marker record and returns nil (SPEC_FULL.md §9);
// under RewindFailOnFlush it returns an error.
func (w *Writer) Rewind(id uint64) error {
	demoted, err := w.buf.Rewind(id)
	if err != nil {
		return err
	}
	if demoted {
		var frame bufEncoder
		frame.u8(uint8(RecordRewind))
		var body bufEncoder
		body.uvarint(id)
		frame.uvarint(uint64(len(body.buf)))
		frame.writeBytes(body.buf)
		if w.log != nil {
			w.log.Warn("rewind point demoted by intervening flush", zap.Uint64("location", uint64(w.location)), zap.Uint64("rewind_id", id))
		}
		return w.buf.appendRecord(frame.buf)
	}
	return nil
}

// Close flushes whatever remains buffered to the substrate.
func (w *Writer) Close() error {
	return w.buf.Close()
}

// --- convenience constructors for the most frequently written event kinds ---
// The remaining kinds are written with Write(&otf2.SomeKind{...}) directly;
// every event record type satisfies recordBody.

func (w *Writer) WriteEnter(t uint64, region RegionRef) error {
	return w.Write(&Enter{EventCommon{t}, region})
}

func (w *Writer) WriteLeave(t uint64, region RegionRef) error {
	return w.Write(&Leave{EventCommon{t}, region})
}

func (w *Writer) WriteCallingContextEnter(t uint64, cc CallingContextRef, unwindDistance uint32) error {
	return w.Write(&CallingContextEnter{EventCommon{t}, cc, unwindDistance})
}

func (w *Writer) WriteCallingContextLeave(t uint64, cc CallingContextRef) error {
	return w.Write(&CallingContextLeave{EventCommon{t}, cc})
}

func (w *Writer) WriteMetric(t uint64, metric MetricRef, values []MetricValue) error {
	return w.Write(&Metric{EventCommon{t}, metric, values})
}

func (w *Writer) WriteMpiSend(t uint64, receiver uint32, comm CommRef, tag uint32, length uint64) error {
	return w.Write(&MpiSend{mpiXfer{EventCommon{t}, receiver, comm, tag, length}})
}

func (w *Writer) WriteMpiRecv(t uint64, sender uint32, comm CommRef, tag uint32, length uint64) error {
	return w.Write(&MpiRecv{mpiXfer{EventCommon{t}, sender, comm, tag, length}})
}
