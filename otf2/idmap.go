package otf2

import "sort"

// MappingTable translates a location's local identifiers (as seen in its
// own event stream) to archive-wide global identifiers defined in the
// global definition file, per spec.md §4.7. A location only needs a
// MappingTable when it was traced with identifiers assigned locally
// (the common case for independently-instrumented processes); locations
// that already write global identifiers need none.
//
// Two representations exist because the ratio of local-to-global
// identifiers varies wildly by record kind: REGION mappings are typically
// dense (nearly every local region index maps to a global one) while
// e.g. RMA_WIN mappings are often sparse. Grounded on
// original_source/src/otf2_id_map.h's OTF2_IdMapMode split between
// OTF2_ID_MAP_DENSE and OTF2_ID_MAP_SPARSE.
type MappingTable struct {
	kind MappedKind

	// dense holds local -> global for a contiguous local id space
	// starting at 0. Present when mode is dense.
	dense []uint64

	// sparseLocal/sparseGlobal hold (local, global) pairs sorted by local id, binary
	// searched on lookup. Present when mode is sparse.
	sparseLocal  []uint64
	sparseGlobal []uint64
}

// NewDenseMappingTable builds a MappingTable backed by a plain array,
// appropriate when the local identifier space is small and nearly fully
// populated (spec.md §4.7, SPEC_FULL.md §5.7's DenseMapThreshold).
func NewDenseMappingTable(kind MappedKind, globalIDs []uint64) *MappingTable {
	dense := append([]uint64(nil), globalIDs...)
	return &MappingTable{kind: kind, dense: dense}
}

// NewSparseMappingTable builds a MappingTable backed by sorted
// (local, global) pairs, appropriate when the local identifier space is
// large or sparsely populated. pairs need not be pre-sorted.
func NewSparseMappingTable(kind MappedKind, localIDs, globalIDs []uint64) *MappingTable {
	n := len(localIDs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return localIDs[idx[a]] < localIDs[idx[b]] })

	t := &MappingTable{
		kind:         kind,
		sparseLocal:  make([]uint64, n),
		sparseGlobal: make([]uint64, n),
	}
	for i, j := range idx {
		t.sparseLocal[i] = localIDs[j]
		t.sparseGlobal[i] = globalIDs[j]
	}
	return t
}

// Kind reports which identifier space this table maps.
func (t *MappingTable) Kind() MappedKind { return t.kind }

// Map translates a local identifier to its global counterpart. ok is
// false when local has no entry; Reader then keeps the local identifier
// unchanged (identity mapping).
func (t *MappingTable) Map(local uint64) (global uint64, ok bool) {
	if t.dense != nil {
		if local >= uint64(len(t.dense)) {
			return 0, false
		}
		return t.dense[local], true
	}
	i := sort.Search(len(t.sparseLocal), func(i int) bool { return t.sparseLocal[i] >= local })
	if i >= len(t.sparseLocal) || t.sparseLocal[i] != local {
		return 0, false
	}
	return t.sparseGlobal[i], true
}

// Len reports the number of mapped identifiers.
func (t *MappingTable) Len() int {
	if t.dense != nil {
		return len(t.dense)
	}
	return len(t.sparseLocal)
}

// chooseMappingTable picks dense or sparse representation for a table
// being built from (local, global) pairs, the way a writer assembling a
// location's mapping file would (SPEC_FULL.md §5.7): dense wins when the
// local id space is small enough and densely covered, mirroring
// DenseMapThreshold.
func chooseMappingTable(kind MappedKind, localIDs, globalIDs []uint64) *MappingTable {
	maxLocal := uint64(0)
	for _, l := range localIDs {
		if l > maxLocal {
			maxLocal = l
		}
	}
	if maxLocal < DenseMapThreshold && maxLocal < uint64(2*len(localIDs)+16) {
		dense := make([]uint64, maxLocal+1)
		seen := make([]bool, maxLocal+1)
		for i, l := range localIDs {
			dense[l] = globalIDs[i]
			seen[l] = true
		}
		for i, s := range seen {
			if !s {
				dense[i] = ^uint64(0) // unmapped slot: Map still returns ok=true, callers compare against the
				// appropriate Undefined<Kind> sentinel for their own ref type
			}
		}
		return &MappingTable{kind: kind, dense: dense}
	}
	return NewSparseMappingTable(kind, localIDs, globalIDs)
}

// encodeMappingTable serializes t for the per-location mapping file
// Archive.WriteLocationMapping writes (SPEC_FULL.md §5.7): kind, a mode
// byte selecting dense vs. sparse, then the entries themselves.
func encodeMappingTable(t *MappingTable) []byte {
	var be bufEncoder
	be.u8(uint8(t.kind))
	if t.dense != nil {
		be.u8(0)
		be.uvarint(uint64(len(t.dense)))
		for _, g := range t.dense {
			be.uvarint(g)
		}
	} else {
		be.u8(1)
		be.uvarint(uint64(len(t.sparseLocal)))
		for i := range t.sparseLocal {
			be.uvarint(t.sparseLocal[i])
			be.uvarint(t.sparseGlobal[i])
		}
	}
	return be.bytes()
}

// decodeMappingTable is the read-side mirror of encodeMappingTable.
func decodeMappingTable(raw []byte) (*MappingTable, error) {
	bd := newBufDecoder(raw)
	kind := MappedKind(bd.u8())
	mode := bd.u8()
	n := int(bd.uvarint())
	switch mode {
	case 0:
		dense := make([]uint64, n)
		for i := range dense {
			dense[i] = bd.uvarint()
		}
		return &MappingTable{kind: kind, dense: dense}, nil
	case 1:
		local := make([]uint64, n)
		global := make([]uint64, n)
		for i := 0; i < n; i++ {
			local[i] = bd.uvarint()
			global[i] = bd.uvarint()
		}
		return &MappingTable{kind: kind, sparseLocal: local, sparseGlobal: global}, nil
	default:
		return nil, errIntegrityFault("unknown mapping table mode %d", mode)
	}
}

// mapper is implemented by *MappingTable. A location with no mapping
// file for a given kind has no entry in Reader.mappers at all; resolve
// treats that absence as an identity mapping directly (spec.md §4.7's
// "a location MAY omit mapping tables for identifier spaces it writes
// in global form already"), so no separate identity implementation is
// needed.
type mapper interface {
	Map(local uint64) (global uint64, ok bool)
	Kind() MappedKind
}
