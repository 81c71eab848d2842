package otf2

// Paradigm identifies a parallel programming model an archive's ParadigmDef
// declares support for (spec.md §4.5's up-/down-conversion conditions key
// off of this). The wire values below are assigned locally: no reference
// material available to this package carried OTF2's real paradigm
// enumeration, so these constants are an invented, package-local
// numbering rather than a ported one (see DESIGN.md).
type Paradigm uint8

const (
	ParadigmUnknown Paradigm = iota
	ParadigmMPI
	ParadigmOpenMP
	ParadigmPthread
	ParadigmCUDA
)

// DefinitionTable is a read-only snapshot of the archive-wide definitions
// convert.go's conversion rules need to evaluate spec.md §4.5's
// conditions — paradigm declarations, communicators, and calling-context
// leaf regions — without giving convert.go a dependency on an open
// Archive or Reader. Built once per Archive via buildDefinitionTable and
// shared read-only across every location's Reader and the GlobalMerger,
// the way perffile's Records.getAttr resolves against a session-wide
// attribute table instead of re-deriving it per record.
type DefinitionTable struct {
	openMPDeclared bool
	haveComm       bool

	// leafRegion maps a CallingContextRef to the RegionRef it was
	// declared against (CallingContextDef.Region), used to down-convert
	// CallingContextEnter/Leave into Enter/Leave.
	leafRegion map[CallingContextRef]RegionRef

	// callingContext is the reverse index, used to up-convert Enter/Leave
	// into CallingContextEnter/Leave. When more than one CallingContext
	// shares a leaf region, the first one encountered while scanning the
	// global definitions wins; the archive format carries no further
	// information to disambiguate.
	callingContext map[RegionRef]CallingContextRef
}

func newDefinitionTable() *DefinitionTable {
	return &DefinitionTable{
		leafRegion:     make(map[CallingContextRef]RegionRef),
		callingContext: make(map[RegionRef]CallingContextRef),
	}
}

func (t *DefinitionTable) leafRegionOf(cc CallingContextRef) (RegionRef, bool) {
	if t == nil {
		return 0, false
	}
	r, ok := t.leafRegion[cc]
	return r, ok
}

func (t *DefinitionTable) callingContextOf(region RegionRef) (CallingContextRef, bool) {
	if t == nil {
		return 0, false
	}
	cc, ok := t.callingContext[region]
	return cc, ok
}

// buildDefinitionTable scans an archive's global definition stream on a
// dedicated ReadBuffer over sub, independent of any cursor an Archive's
// own ReadGlobalDefinitions call holds over the same substrate (ReadAt is
// stateless, so the two scans never interfere), and folds the handful of
// definition kinds convert.go's conditions need into a DefinitionTable.
func buildDefinitionTable(sub ReadSubstrate, chunkSize int, compressor Compressor) (*DefinitionTable, error) {
	t := newDefinitionTable()
	rb := newReadBuffer(sub, chunkSize, compressor)

	cb := NewDefCallbacks()
	cb.On(RecordParadigm, func(r Record) error {
		if d, ok := r.(*ParadigmDef); ok && Paradigm(d.Paradigm) == ParadigmOpenMP {
			t.openMPDeclared = true
		}
		return nil
	})
	cb.On(RecordComm, func(r Record) error {
		t.haveComm = true
		return nil
	})
	cb.On(RecordCallingContext, func(r Record) error {
		d, ok := r.(*CallingContextDef)
		if !ok {
			return nil
		}
		t.leafRegion[d.Self] = d.Region
		if _, ok := t.callingContext[d.Region]; !ok {
			t.callingContext[d.Region] = d.Self
		}
		return nil
	})

	for {
		rec, err := decodeRecord(rb)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return t, nil
		}
		if err := cb.dispatch(rec); err != nil {
			return nil, err
		}
	}
}
