package otf2

import "testing"

// A mapping table covering only some of a kind's local identifiers must
// still resolve the identifiers it omits as the identity, not fault
// (spec.md §3's mapping-table consistency invariant: a missing table for a
// kind and a missing entry within an existing table are both pass-through).
func TestReaderResolveUncoveredIdentifierIsIdentity(t *testing.T) {
	table := NewSparseMappingTable(MappedRegion, []uint64{5, 9}, []uint64{500, 900})
	r := newReader(LocationRef(0), nil, map[MappedKind]mapper{MappedRegion: table}, nil, nil)

	got, err := r.resolve(MappedRegion, 5)
	if err != nil || got != 500 {
		t.Fatalf("resolve(5) = (%d, %v), want (500, nil)", got, err)
	}

	got, err = r.resolve(MappedRegion, 7)
	if err != nil {
		t.Fatalf("resolve(7) returned error %v, want nil (uncovered id is the identity)", err)
	}
	if got != 7 {
		t.Fatalf("resolve(7) = %d, want 7 (identity pass-through)", got)
	}
}

func TestReaderResolveNoTableForKindIsIdentity(t *testing.T) {
	r := newReader(LocationRef(0), nil, map[MappedKind]mapper{}, nil, nil)

	got, err := r.resolve(MappedComm, 42)
	if err != nil || got != 42 {
		t.Fatalf("resolve(42) = (%d, %v), want (42, nil)", got, err)
	}
}
