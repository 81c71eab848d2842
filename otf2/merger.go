package otf2

import (
	"container/heap"

	"go.uber.org/zap"
)

// MergedEvent is one event handed to a GlobalMerger callback, carrying
// the location it came from alongside the event itself (spec.md §4.9's
// "global event stream": every location's events interleaved into a
// single non-decreasing timestamp order).
type MergedEvent struct {
	Location LocationRef
	Attrs    *AttributeList
	Record   Record
}

// MergedEventHandler processes one MergedEvent. Returning a non-nil
// error stops the merge and is propagated from GlobalMerger.Run.
type MergedEventHandler func(MergedEvent) error

// mergeItem is one location's lookahead slot in the merge heap: the
// next undelivered event from that location, or nothing if the
// location's reader ran dry.
type mergeItem struct {
	location     LocationRef
	r            *Reader
	pending      *AttributeList
	pendingChunk uint64

	time uint64
	ev   MergedEvent
	done bool
}

// mergeHeap orders mergeItems by timestamp, breaking ties on location id
// so the merge is deterministic across runs of the same archive (spec.md
// §4.9's "ties broken by ascending location identifier").
type mergeHeap []*mergeItem

func (h mergeHeap) Len() int { return len(h) }
func (h mergeHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].location < h[j].location
}
func (h mergeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap) Push(x any)        { *h = append(*h, x.(*mergeItem)) }
func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// GlobalMerger produces a single monotonically non-decreasing event
// sequence across every location reader it was built from (spec.md
// §4.9), the way a multi-way merge sort interleaves already-sorted
// runs. Grounded on the standard library's container/heap, used here
// exactly as its own package example (container/heap's IntHeap) uses
// it: no pack example substitutes a third-party priority queue for the
// same job, so there is nothing to wire in its place.
type GlobalMerger struct {
	readers map[LocationRef]*Reader
	log     *zap.Logger
}

// NewGlobalMerger builds a merger over readers, one per location. log
// may be nil, in which case dropped locations go unreported.
func NewGlobalMerger(readers map[LocationRef]*Reader, log *zap.Logger) *GlobalMerger {
	return &GlobalMerger{readers: readers, log: log}
}

// prime decodes each location's first event, dropping (and logging) any
// location whose reader fails outright rather than aborting the whole
// merge, mirroring spec.md §4.9's "a single damaged location stream
// must not prevent merging the rest."
func (m *GlobalMerger) prime() *mergeHeap {
	h := &mergeHeap{}
	heap.Init(h)
	for loc, r := range m.readers {
		item := &mergeItem{location: loc, r: r}
		if err := m.advance(item); err != nil {
			if m.log != nil {
				m.log.Warn("dropping location from merge", zap.Uint64("location", uint64(loc)), zap.Error(err))
			}
			continue
		}
		if !item.done {
			heap.Push(h, item)
		}
	}
	return h
}

// advance decodes the next non-attribute-list record from item's
// location, buffering any AttributeList it encounters first and
// resolving identifiers through the location's own mapping tables, the
// same pending-attribute and mapping protocol Reader.ReadEvents uses. A
// lone AttributeList at a chunk boundary (its event never arriving in the
// same chunk) raises ERROR_INTEGRITY_FAULT per spec.md §4.3, exactly as
// Reader.ReadEvents does.
func (m *GlobalMerger) advance(item *mergeItem) error {
	for {
		if item.pending != nil {
			tag, err := item.r.rb.peekTag()
			if err != nil {
				return err
			}
			if tag == RecordNone || item.r.rb.chunkIndex != item.pendingChunk {
				return errIntegrityFault("lone attribute list at chunk boundary in location %d stream", item.location)
			}
		}

		rec, err := decodeRecord(item.r.rb)
		if err != nil {
			return err
		}
		if rec == nil {
			item.done = true
			return nil
		}
		if al, ok := rec.(*AttributeList); ok {
			item.pending = al
			item.pendingChunk = item.r.rb.chunkIndex
			continue
		}
		rec = normalizeToModern(rec, item.r.defs)
		rec, err = item.r.applyMapping(rec)
		if err != nil {
			return err
		}
		ec, ok := rec.(interface{ eventTime() uint64 })
		if !ok {
			// Non-event record encountered outside a definition stream
			// (e.g. a stray Rewind marker): treat as zero-cost and skip.
			continue
		}
		item.time = ec.eventTime()
		item.ev = MergedEvent{Location: item.location, Attrs: item.pending, Record: rec}
		item.pending = nil
		return nil
	}
}

// Run drives the merge, invoking handle for each event in non-decreasing
// timestamp order until every location is exhausted, handle returns an
// error, or every primed location runs dry. A location whose stream
// fails partway through the merge is dropped (and logged) the same way
// a location that failed to prime is, rather than aborting the merge
// for every other location.
func (m *GlobalMerger) Run(handle MergedEventHandler) error {
	h := m.prime()

	for h.Len() > 0 {
		item := heap.Pop(h).(*mergeItem)
		if err := handle(item.ev); err != nil {
			return err
		}
		if err := m.advance(item); err != nil {
			if m.log != nil {
				m.log.Warn("dropping location from merge", zap.Uint64("location", uint64(item.location)), zap.Error(err))
			}
			continue
		}
		if !item.done {
			heap.Push(h, item)
		}
	}
	return nil
}
