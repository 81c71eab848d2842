package otf2

import "testing"

func TestDenseMappingTable(t *testing.T) {
	globals := []uint64{10, 11, 12, 13}
	m := NewDenseMappingTable(MappedRegion, globals)
	for local, want := range globals {
		got, ok := m.Map(uint64(local))
		if !ok || got != want {
			t.Errorf("Map(%d) = (%d, %v), want (%d, true)", local, got, ok, want)
		}
	}
	if _, ok := m.Map(uint64(len(globals))); ok {
		t.Errorf("Map(out of range) should report ok=false")
	}
}

func TestSparseMappingTable(t *testing.T) {
	local := []uint64{5, 1, 1000}
	global := []uint64{50, 10, 9999}
	m := NewSparseMappingTable(MappedGroup, local, global)

	want := map[uint64]uint64{5: 50, 1: 10, 1000: 9999}
	for l, g := range want {
		got, ok := m.Map(l)
		if !ok || got != g {
			t.Errorf("Map(%d) = (%d, %v), want (%d, true)", l, got, ok, g)
		}
	}
	if _, ok := m.Map(2); ok {
		t.Errorf("Map(2) should be unmapped")
	}
}

func TestChooseMappingTableDenseVsSparse(t *testing.T) {
	dense := chooseMappingTable(MappedRegion, []uint64{0, 1, 2, 3}, []uint64{100, 101, 102, 103})
	if dense.dense == nil {
		t.Errorf("expected a small contiguous id space to choose dense representation")
	}

	sparse := chooseMappingTable(MappedRmaWin, []uint64{0, 1 << 20}, []uint64{7, 8})
	if sparse.dense != nil {
		t.Errorf("expected a widely spread id space to choose sparse representation")
	}
}

func TestMappingTableEncodeDecodeRoundTrip(t *testing.T) {
	for _, m := range []*MappingTable{
		NewDenseMappingTable(MappedRegion, []uint64{7, 8, 9}),
		NewSparseMappingTable(MappedRmaWin, []uint64{0, 50}, []uint64{1, 2}),
	} {
		raw := encodeMappingTable(m)
		got, err := decodeMappingTable(raw)
		if err != nil {
			t.Fatalf("decodeMappingTable: %v", err)
		}
		if got.Kind() != m.Kind() || got.Len() != m.Len() {
			t.Fatalf("decoded table mismatch: got kind=%v len=%d, want kind=%v len=%d",
				got.Kind(), got.Len(), m.Kind(), m.Len())
		}
		for i := 0; i < m.Len(); i++ {
			local := uint64(i)
			if m.dense == nil {
				local = m.sparseLocal[i]
			}
			want, wantOk := m.Map(local)
			have, haveOk := got.Map(local)
			if want != have || wantOk != haveOk {
				t.Errorf("Map(%d): got (%d,%v), want (%d,%v)", local, have, haveOk, want, wantOk)
			}
		}
	}
}
