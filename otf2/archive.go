package otf2

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// archiveMode distinguishes an archive created for writing from one
// opened for reading; spec.md §4.8 never mixes the two in one handle.
type archiveMode int

const (
	modeWrite archiveMode = iota
	modeRead
)

// archiveState tracks the write-side lifecycle spec.md §4.8 describes:
// global definitions are written first and sealed exactly once, after
// which only event streams may be written.
type archiveState int

const (
	stateOpen archiveState = iota
	stateDefsClosed
	stateClosed
)

// allMappedKinds enumerates the identifier spaces a location's mapping
// files may cover (spec.md §4.7). Archive.LocationReader probes for one
// file per kind and loads whichever exist.
var allMappedKinds = []MappedKind{
	MappedRegion, MappedGroup, MappedMetric, MappedComm, MappedRmaWin,
	MappedParameter, MappedCallingContext, MappedInterruptGenerator,
	MappedSourceCodeLocation, MappedAttribute,
}

// Archive is the top-level handle over one trace on disk: the anchor
// file, the global definition stream, and one event stream (plus
// optional per-kind mapping files) per location (spec.md §3/§4.8).
// Grounded on perffile.File's role as the single entry point opening
// every section of a perf.data file, generalized to OTF2's
// directory-of-streams layout and, unlike perffile, to both writing and
// reading a trace.
type Archive struct {
	dir   string
	opts  ArchiveOptions
	mode  archiveMode
	state archiveState
	log   *zap.Logger

	anchor Anchor

	// write-mode state
	globalDefSub WriteSubstrate
	globalDefBuf *WriteBuffer
	writers      map[LocationRef]*Writer
	writerSubs   map[LocationRef]WriteSubstrate
	locationIDs  []LocationRef

	// read-mode state
	globalDefReadSub ReadSubstrate
	globalDefReadBuf *ReadBuffer
	defs             *DefinitionTable
}

// Create lays out a fresh archive directory and opens it for writing:
// global definitions first, then one event stream per location created
// on demand via CreateLocationWriter (spec.md §4.8).
func Create(dir string, opts ArchiveOptions) (*Archive, error) {
	opts = opts.withDefaults()
	if err := os.MkdirAll(filepath.Join(dir, locationsDirName), 0755); err != nil {
		return nil, errFileInteraction(err, "mkdir %s", dir)
	}
	sub, err := openPosixFileWrite(filepath.Join(dir, globalDefFileName))
	if err != nil {
		return nil, err
	}
	return &Archive{
		dir:          dir,
		opts:         opts,
		mode:         modeWrite,
		state:        stateOpen,
		log:          opts.Logger,
		globalDefSub: sub,
		globalDefBuf: newWriteBuffer(sub, opts, false),
		writers:      make(map[LocationRef]*Writer),
		writerSubs:   make(map[LocationRef]WriteSubstrate),
	}, nil
}

// Open reads an existing archive's anchor file and prepares it for
// reading. The chunk size and compression codec recorded in the anchor
// override whatever ArchiveOptions the caller passed for those two
// fields, since every stream in an archive must agree with its anchor.
func Open(dir string, opts ArchiveOptions) (*Archive, error) {
	opts = opts.withDefaults()
	anchor, err := readAnchor(dir)
	if err != nil {
		return nil, err
	}
	compressor, err := compressorForKind(anchor.Compression)
	if err != nil {
		return nil, err
	}
	opts.ChunkSize = anchor.ChunkSize
	opts.Compressor = compressor

	sub, err := openMmapFileRead(filepath.Join(dir, globalDefFileName))
	if err != nil {
		return nil, err
	}
	defs, err := buildDefinitionTable(sub, anchor.ChunkSize, compressor)
	if err != nil {
		sub.Close()
		return nil, err
	}
	return &Archive{
		dir:              dir,
		opts:             opts,
		mode:             modeRead,
		state:            stateDefsClosed,
		log:              opts.Logger,
		anchor:           anchor,
		globalDefReadSub: sub,
		globalDefReadBuf: newReadBuffer(sub, anchor.ChunkSize, compressor),
		defs:             defs,
	}, nil
}

// NumberOfLocations reports how many locations this archive holds: the
// count recorded in the anchor when reading, or the number of writers
// created so far when writing.
func (a *Archive) NumberOfLocations() uint64 {
	if a.mode == modeRead {
		return a.anchor.NumberOfLocations
	}
	return uint64(len(a.locationIDs))
}

// WriteGlobalDefinition appends r to the archive-wide definition stream.
// It must be called before CloseGlobalDefinitions (spec.md §4.6's global
// definitions are written once, up front, ahead of any event).
func (a *Archive) WriteGlobalDefinition(r recordBody) error {
	if a.mode != modeWrite {
		return errInvalidCall("WriteGlobalDefinition on a read-only archive")
	}
	if a.state != stateOpen {
		return errInvalidCall("WriteGlobalDefinition after definitions were closed")
	}
	return encodeRecord(r, a.globalDefBuf)
}

// CloseGlobalDefinitions seals the global definition stream. Event
// streams may be written before or after this call, but no further
// definition may be written once it returns.
func (a *Archive) CloseGlobalDefinitions() error {
	if a.mode != modeWrite {
		return errInvalidCall("CloseGlobalDefinitions on a read-only archive")
	}
	if a.state != stateOpen {
		return nil
	}
	if err := a.globalDefBuf.Close(); err != nil {
		return err
	}
	a.state = stateDefsClosed
	return nil
}

// ReadGlobalDefinitions decodes every record in the global definition
// stream, dispatching each to cb.
func (a *Archive) ReadGlobalDefinitions(cb *DefCallbacks) error {
	if a.mode != modeRead {
		return errInvalidCall("ReadGlobalDefinitions on a write-only archive")
	}
	for {
		rec, err := decodeRecord(a.globalDefReadBuf)
		if err != nil {
			return err
		}
		if rec == nil {
			return nil
		}
		if err := cb.dispatch(rec); err != nil {
			return err
		}
	}
}

// CreateLocationWriter returns the Writer for location, creating its
// event stream file the first time it is requested. Calling it again
// for the same location returns the same Writer.
func (a *Archive) CreateLocationWriter(location LocationRef) (*Writer, error) {
	if a.mode != modeWrite {
		return nil, errInvalidCall("CreateLocationWriter on a read-only archive")
	}
	if w, ok := a.writers[location]; ok {
		return w, nil
	}
	sub, err := openPosixFileWrite(locationEventsPath(a.dir, location))
	if err != nil {
		return nil, err
	}
	buf := newWriteBuffer(sub, a.opts, true)
	w := newWriter(location, buf, a.log)
	a.writers[location] = w
	a.writerSubs[location] = sub
	a.locationIDs = append(a.locationIDs, location)
	return w, nil
}

// WriteLocationMapping persists t as location's mapping file for its
// identifier kind (spec.md §4.7). A location that writes global
// identifiers directly for a given kind need never call this for that
// kind; Reader treats an absent mapping file as an identity mapping.
func (a *Archive) WriteLocationMapping(location LocationRef, t *MappingTable) error {
	if a.mode != modeWrite {
		return errInvalidCall("WriteLocationMapping on a read-only archive")
	}
	path := locationMappingPath(a.dir, location, t.Kind())
	if err := os.WriteFile(path, encodeMappingTable(t), 0644); err != nil {
		return errFileInteraction(err, "write mapping %s", path)
	}
	return nil
}

// LocationReader opens location's event stream for reading, loading
// whichever per-kind mapping files exist alongside it.
func (a *Archive) LocationReader(location LocationRef) (*Reader, error) {
	if a.mode != modeRead {
		return nil, errInvalidCall("LocationReader on a write-only archive")
	}
	sub, err := openMmapFileRead(locationEventsPath(a.dir, location))
	if err != nil {
		return nil, err
	}
	rb := newReadBuffer(sub, a.anchor.ChunkSize, a.opts.Compressor)

	mappers := make(map[MappedKind]mapper)
	for _, kind := range allMappedKinds {
		path := locationMappingPath(a.dir, location, kind)
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			sub.Close()
			return nil, errFileInteraction(err, "read mapping %s", path)
		}
		t, err := decodeMappingTable(raw)
		if err != nil {
			sub.Close()
			return nil, err
		}
		mappers[kind] = t
	}
	return newReader(location, rb, mappers, a.defs, a.log), nil
}

// Locations lists the location ids present in this archive's directory,
// discovered from its event stream filenames. It is the read-mode
// counterpart of the ids CreateLocationWriter assigns while writing,
// needed because a reader opens an archive with no prior knowledge of
// which locations it recorded.
func (a *Archive) Locations() ([]LocationRef, error) {
	if a.mode != modeRead {
		return nil, errInvalidCall("Locations on a write-only archive")
	}
	entries, err := os.ReadDir(filepath.Join(a.dir, locationsDirName))
	if err != nil {
		return nil, errFileInteraction(err, "read %s", locationsDirName)
	}
	var locs []LocationRef
	for _, e := range entries {
		stem, ok := strings.CutSuffix(e.Name(), ".events")
		if !ok {
			continue
		}
		id, err := strconv.ParseUint(stem, 10, 64)
		if err != nil {
			continue
		}
		locs = append(locs, LocationRef(id))
	}
	return locs, nil
}

// LocationReaders opens a Reader for every location in the archive, the
// convenience a GlobalMerger is typically built from.
func (a *Archive) LocationReaders() (map[LocationRef]*Reader, error) {
	locs, err := a.Locations()
	if err != nil {
		return nil, err
	}
	readers := make(map[LocationRef]*Reader, len(locs))
	for _, loc := range locs {
		r, err := a.LocationReader(loc)
		if err != nil {
			for _, opened := range readers {
				opened.rb.sub.Close()
			}
			return nil, err
		}
		readers[loc] = r
	}
	return readers, nil
}

// Close flushes and closes every stream this archive opened. In write
// mode it also seals any still-open global definition stream and writes
// the anchor file last, so a reader never sees an anchor for an archive
// whose streams aren't all safely on disk.
func (a *Archive) Close() error {
	if a.state == stateClosed {
		return nil
	}
	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	switch a.mode {
	case modeWrite:
		if a.state == stateOpen {
			record(a.globalDefBuf.Close())
		}
		record(a.globalDefSub.Close())
		for _, loc := range a.locationIDs {
			record(a.writers[loc].Close())
			record(a.writerSubs[loc].Close())
		}
		record(writeAnchor(a.dir, Anchor{
			ChunkSize:         a.opts.ChunkSize,
			Compression:       a.opts.Compressor.Kind(),
			NumberOfLocations: uint64(len(a.locationIDs)),
		}))
	case modeRead:
		record(a.globalDefReadSub.Close())
	}

	a.state = stateClosed
	return firstErr
}
