package otf2

import "go.uber.org/zap"

// Reader decodes one location's event stream, applying identifier
// mapping and deprecated-record up-conversion before handing each event
// to callbacks (spec.md §3/§4.5/§4.7). An Archive owns one Reader per
// location opened for reading, created via Archive.LocationReader.
//
// Grounded on perffile/reader.go's callback-driven Decode loop, extended
// with OTF2's attribute-list buffering and local-to-global identifier
// translation that perf.data never needed.
type Reader struct {
	location LocationRef
	rb       *ReadBuffer
	mappers  map[MappedKind]mapper
	defs     *DefinitionTable
	log      *zap.Logger

	pendingAttrs      *AttributeList
	pendingAttrsChunk uint64
	eventCount        uint64
}

func newReader(location LocationRef, rb *ReadBuffer, mappers map[MappedKind]mapper, defs *DefinitionTable, log *zap.Logger) *Reader {
	return &Reader{location: location, rb: rb, mappers: mappers, defs: defs, log: log}
}

// Location reports which location this reader decodes events for.
func (r *Reader) Location() LocationRef { return r.location }

// ReadEvents decodes every record in this location's stream, dispatching
// each event to cb. AttributeList pseudo-records are buffered
// transparently and delivered alongside the following event; BufferFlush
// and Rewind markers are dispatched like any other event kind so a
// caller that registers a handler for them can observe flush/rewind
// boundaries.
func (r *Reader) ReadEvents(cb *EventCallbacks) error {
	for {
		if r.pendingAttrs != nil {
			tag, err := r.rb.peekTag()
			if err != nil {
				return err
			}
			if tag == RecordNone || r.rb.chunkIndex != r.pendingAttrsChunk {
				return errIntegrityFault("lone attribute list at chunk boundary in location %d stream", r.location)
			}
		}

		rec, err := decodeRecord(r.rb)
		if err != nil {
			return err
		}
		if rec == nil {
			return nil
		}

		if al, ok := rec.(*AttributeList); ok {
			r.pendingAttrs = al
			r.pendingAttrsChunk = r.rb.chunkIndex
			continue
		}

		rec, err = r.applyMapping(rec)
		if err != nil {
			return err
		}

		attrs := r.pendingAttrs
		r.pendingAttrs = nil
		if err := dispatchConverted(cb, r.location, attrs, rec, r.defs); err != nil {
			return err
		}
		r.eventCount++
	}
}

// resolve translates a kind-scoped local identifier to its global form. A
// kind with no mapping table at all, and a local id not covered by a kind's
// mapping table, are both treated as the identity: the mapping-table
// consistency invariant (spec.md §3) only ever narrows which identifiers a
// table rewrites, never widens a lookup miss into a fault.
func (r *Reader) resolve(kind MappedKind, local uint64) (uint64, error) {
	m, ok := r.mappers[kind]
	if !ok {
		return local, nil
	}
	g, ok := m.Map(local)
	if !ok {
		return local, nil
	}
	return g, nil
}

// applyMapping translates the local identifiers carried by rec's
// region/calling-context/communicator/RMA-window/parameter/metric fields
// into global identifiers, for the representative set of event kinds
// SPEC_FULL.md's component design calls out explicitly. Kinds outside
// that set pass through with their fields exactly as decoded (documented
// as an open scope cut in DESIGN.md rather than silently claimed
// complete).
func (r *Reader) applyMapping(rec Record) (Record, error) {
	var err error
	switch e := rec.(type) {
	case *Enter:
		e.Region, err = r.resolveRegion(e.Region)
	case *Leave:
		e.Region, err = r.resolveRegion(e.Region)
	case *CallingContextEnter:
		e.CallingContext, err = r.resolveCallingContext(e.CallingContext)
	case *CallingContextLeave:
		e.CallingContext, err = r.resolveCallingContext(e.CallingContext)
	case *CallingContextSample:
		e.CallingContext, err = r.resolveCallingContext(e.CallingContext)
	case *Metric:
		e.Metric, err = r.resolveMetric(e.Metric)
	case *ParameterString:
		e.Parameter, err = r.resolveParameter(e.Parameter)
	case *ParameterInt:
		e.Parameter, err = r.resolveParameter(e.Parameter)
	case *ParameterUnsignedInt:
		e.Parameter, err = r.resolveParameter(e.Parameter)
	case *ThreadTeamBegin:
		e.ThreadTeam, err = r.resolveComm(e.ThreadTeam)
	case *ThreadTeamEnd:
		e.ThreadTeam, err = r.resolveComm(e.ThreadTeam)
	case *RmaWinCreate:
		e.Win, err = r.resolveRmaWin(e.Win)
	case *RmaWinDestroy:
		e.Win, err = r.resolveRmaWin(e.Win)
	case *RmaPut:
		e.Win, err = r.resolveRmaWin(e.Win)
	case *RmaGet:
		e.Win, err = r.resolveRmaWin(e.Win)
	case *RmaAtomic:
		e.Win, err = r.resolveRmaWin(e.Win)
	}
	return rec, err
}

func (r *Reader) resolveRegion(local RegionRef) (RegionRef, error) {
	g, err := r.resolve(MappedRegion, uint64(local))
	return RegionRef(g), err
}
func (r *Reader) resolveCallingContext(local CallingContextRef) (CallingContextRef, error) {
	g, err := r.resolve(MappedCallingContext, uint64(local))
	return CallingContextRef(g), err
}
func (r *Reader) resolveMetric(local MetricRef) (MetricRef, error) {
	g, err := r.resolve(MappedMetric, uint64(local))
	return MetricRef(g), err
}
func (r *Reader) resolveParameter(local ParameterRef) (ParameterRef, error) {
	g, err := r.resolve(MappedParameter, uint64(local))
	return ParameterRef(g), err
}
func (r *Reader) resolveComm(local CommRef) (CommRef, error) {
	g, err := r.resolve(MappedComm, uint64(local))
	return CommRef(g), err
}
func (r *Reader) resolveRmaWin(local RmaWinRef) (RmaWinRef, error) {
	g, err := r.resolve(MappedRmaWin, uint64(local))
	return RmaWinRef(g), err
}
