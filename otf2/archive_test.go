package otf2

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArchiveEmptyTraceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	w, err := Create(dir, ArchiveOptions{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.CloseGlobalDefinitions(); err != nil {
		t.Fatalf("CloseGlobalDefinitions: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	a, err := Open(dir, ArchiveOptions{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	if a.NumberOfLocations() != 0 {
		t.Errorf("NumberOfLocations() = %d, want 0", a.NumberOfLocations())
	}
	locs, err := a.Locations()
	if err != nil {
		t.Fatalf("Locations: %v", err)
	}
	if len(locs) != 0 {
		t.Errorf("Locations() = %v, want empty", locs)
	}

	var defCount int
	cb := NewDefCallbacks()
	cb.OnUnknown(func(Record) error { defCount++; return nil })
	if err := a.ReadGlobalDefinitions(cb); err != nil {
		t.Fatalf("ReadGlobalDefinitions: %v", err)
	}
	if defCount != 0 {
		t.Errorf("got %d global definitions, want 0", defCount)
	}
}

func TestArchiveGlobalDefinitionsRoundTrip(t *testing.T) {
	dir := t.TempDir()

	w, err := Create(dir, ArchiveOptions{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	want := []Record{
		&StringDef{Self: 0, Value: "main"},
		&RegionDef{Self: 0, Name: 1, CanonicalName: 1, Description: UndefinedString, Role: RegionRoleFunction},
	}
	for _, r := range want {
		if err := w.WriteGlobalDefinition(r.(recordBody)); err != nil {
			t.Fatalf("WriteGlobalDefinition: %v", err)
		}
	}
	if err := w.CloseGlobalDefinitions(); err != nil {
		t.Fatalf("CloseGlobalDefinitions: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	a, err := Open(dir, ArchiveOptions{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	var got []Record
	cb := NewDefCallbacks()
	cb.On(RecordString, func(r Record) error { got = append(got, r); return nil })
	cb.On(RecordRegion, func(r Record) error { got = append(got, r); return nil })
	if err := a.ReadGlobalDefinitions(cb); err != nil {
		t.Fatalf("ReadGlobalDefinitions: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("global definitions mismatch (-want +got):\n%s", diff)
	}
}

func TestArchiveEnterLeaveWithAttributes(t *testing.T) {
	dir := t.TempDir()

	w, err := Create(dir, ArchiveOptions{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.CloseGlobalDefinitions(); err != nil {
		t.Fatalf("CloseGlobalDefinitions: %v", err)
	}

	lw, err := w.CreateLocationWriter(LocationRef(0))
	if err != nil {
		t.Fatalf("CreateLocationWriter: %v", err)
	}

	attrs := NewAttributeList()
	attrs.AddUint32(1, 7)
	lw.AttachAttributes(attrs)
	if err := lw.WriteEnter(100, RegionRef(5)); err != nil {
		t.Fatalf("WriteEnter: %v", err)
	}
	if err := lw.WriteLeave(200, RegionRef(5)); err != nil {
		t.Fatalf("WriteLeave: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	a, err := Open(dir, ArchiveOptions{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	r, err := a.LocationReader(LocationRef(0))
	if err != nil {
		t.Fatalf("LocationReader: %v", err)
	}

	type seen struct {
		attrs *AttributeList
		rec   Record
	}
	var events []seen
	cb := NewEventCallbacks()
	cb.On(RecordEnter, func(_ LocationRef, attrs *AttributeList, r Record) error {
		events = append(events, seen{attrs, r})
		return nil
	})
	cb.On(RecordLeave, func(_ LocationRef, attrs *AttributeList, r Record) error {
		events = append(events, seen{attrs, r})
		return nil
	})
	if err := r.ReadEvents(cb); err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	enter, ok := events[0].rec.(*Enter)
	if !ok || enter.Time != 100 || enter.Region != 5 {
		t.Errorf("unexpected Enter: %+v", events[0].rec)
	}
	if events[0].attrs == nil || events[0].attrs.Len() != 1 {
		t.Fatalf("expected one attribute attached to Enter, got %v", events[0].attrs)
	}
	if got := events[0].attrs.All()[0]; got.ID != 1 || got.Value.U64 != 7 {
		t.Errorf("unexpected attribute: %+v", got)
	}
	leave, ok := events[1].rec.(*Leave)
	if !ok || leave.Time != 200 || leave.Region != 5 {
		t.Errorf("unexpected Leave: %+v", events[1].rec)
	}
	if events[1].attrs != nil {
		t.Errorf("Leave should carry no attributes, got %v", events[1].attrs)
	}
}

func TestArchiveChunkBoundaryFlushObservable(t *testing.T) {
	dir := t.TempDir()

	w, err := Create(dir, ArchiveOptions{ChunkSize: 64})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.CloseGlobalDefinitions(); err != nil {
		t.Fatalf("CloseGlobalDefinitions: %v", err)
	}
	lw, err := w.CreateLocationWriter(LocationRef(0))
	if err != nil {
		t.Fatalf("CreateLocationWriter: %v", err)
	}
	for i := uint64(0); i < 20; i++ {
		if err := lw.WriteEnter(i, RegionRef(1)); err != nil {
			t.Fatalf("WriteEnter: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	a, err := Open(dir, ArchiveOptions{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	r, err := a.LocationReader(LocationRef(0))
	if err != nil {
		t.Fatalf("LocationReader: %v", err)
	}

	var flushes, enters int
	cb := NewEventCallbacks()
	cb.On(RecordEnter, func(LocationRef, *AttributeList, Record) error { enters++; return nil })
	cb.On(RecordBufferFlush, func(LocationRef, *AttributeList, Record) error { flushes++; return nil })
	if err := r.ReadEvents(cb); err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}

	if enters != 20 {
		t.Errorf("got %d Enter events, want 20", enters)
	}
	if flushes == 0 {
		t.Errorf("expected at least one BufferFlush marker with a tiny chunk size")
	}
}

func TestArchiveGlobalMergerOrdersAcrossLocations(t *testing.T) {
	dir := t.TempDir()

	w, err := Create(dir, ArchiveOptions{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.CloseGlobalDefinitions(); err != nil {
		t.Fatalf("CloseGlobalDefinitions: %v", err)
	}

	loc0, err := w.CreateLocationWriter(LocationRef(0))
	if err != nil {
		t.Fatalf("CreateLocationWriter(0): %v", err)
	}
	loc1, err := w.CreateLocationWriter(LocationRef(1))
	if err != nil {
		t.Fatalf("CreateLocationWriter(1): %v", err)
	}

	if err := loc0.WriteEnter(10, RegionRef(1)); err != nil {
		t.Fatalf("WriteEnter: %v", err)
	}
	if err := loc0.WriteEnter(30, RegionRef(1)); err != nil {
		t.Fatalf("WriteEnter: %v", err)
	}
	if err := loc1.WriteEnter(10, RegionRef(1)); err != nil {
		t.Fatalf("WriteEnter: %v", err)
	}
	if err := loc1.WriteEnter(20, RegionRef(1)); err != nil {
		t.Fatalf("WriteEnter: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	a, err := Open(dir, ArchiveOptions{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	readers, err := a.LocationReaders()
	if err != nil {
		t.Fatalf("LocationReaders: %v", err)
	}
	merger := NewGlobalMerger(readers, nil)

	type pair struct {
		loc  LocationRef
		time uint64
	}
	var got []pair
	err = merger.Run(func(ev MergedEvent) error {
		got = append(got, pair{ev.Location, ev.Record.(*Enter).Time})
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []pair{
		{0, 10}, {1, 10}, {1, 20}, {0, 30},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(pair{})); diff != "" {
		t.Errorf("merged order mismatch (-want +got):\n%s", diff)
	}
}

func TestArchiveRewindDemotedAcrossChunkFlush(t *testing.T) {
	dir := t.TempDir()

	w, err := Create(dir, ArchiveOptions{ChunkSize: 64, RewindOnFlush: RewindMarkOnFlush})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.CloseGlobalDefinitions(); err != nil {
		t.Fatalf("CloseGlobalDefinitions: %v", err)
	}
	lw, err := w.CreateLocationWriter(LocationRef(0))
	if err != nil {
		t.Fatalf("CreateLocationWriter: %v", err)
	}

	lw.StoreRewindPoint(1)
	for i := uint64(0); i < 20; i++ {
		if err := lw.WriteEnter(i, RegionRef(1)); err != nil {
			t.Fatalf("WriteEnter: %v", err)
		}
	}
	if err := lw.Rewind(1); err != nil {
		t.Fatalf("Rewind: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	a, err := Open(dir, ArchiveOptions{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()
	r, err := a.LocationReader(LocationRef(0))
	if err != nil {
		t.Fatalf("LocationReader: %v", err)
	}

	var rewinds int
	cb := NewEventCallbacks()
	cb.On(RecordRewind, func(LocationRef, *AttributeList, Record) error { rewinds++; return nil })
	if err := r.ReadEvents(cb); err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if rewinds == 0 {
		t.Errorf("expected a Rewind marker once the stored point was demoted by a flush")
	}
}

// TestArchiveLoneAttributeListAtChunkBoundaryFaults exercises spec.md
// §4.3's invariant directly against the low-level buffer, since
// Writer.Write always frames a pending AttributeList together with its
// event in a single appendRecord call and so can no longer produce this
// split on its own. A corrupt or adversarial archive that does split them
// across a chunk boundary must still be rejected on read.
func TestArchiveLoneAttributeListAtChunkBoundaryFaults(t *testing.T) {
	dir := t.TempDir()

	w, err := Create(dir, ArchiveOptions{ChunkSize: 64})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.CloseGlobalDefinitions(); err != nil {
		t.Fatalf("CloseGlobalDefinitions: %v", err)
	}
	lw, err := w.CreateLocationWriter(LocationRef(0))
	if err != nil {
		t.Fatalf("CreateLocationWriter: %v", err)
	}

	attrs := NewAttributeList()
	attrs.AddUint32(1, 7)
	if err := lw.buf.appendRecord(frameAttributeList(attrs)); err != nil {
		t.Fatalf("appendRecord(attrs): %v", err)
	}
	if err := lw.buf.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	eventFrame, err := frameRecord(&Enter{EventCommon{100}, RegionRef(5)}, lw.buf)
	if err != nil {
		t.Fatalf("frameRecord: %v", err)
	}
	if err := lw.buf.appendRecord(eventFrame); err != nil {
		t.Fatalf("appendRecord(event): %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	a, err := Open(dir, ArchiveOptions{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()
	r, err := a.LocationReader(LocationRef(0))
	if err != nil {
		t.Fatalf("LocationReader: %v", err)
	}

	err = r.ReadEvents(NewEventCallbacks())
	if Code(err) != ErrorCodeIntegrityFault {
		t.Fatalf("ReadEvents over a split attribute list = %v, want ErrorCodeIntegrityFault", err)
	}
}
