package otf2

import "testing"

func openMPTable() *DefinitionTable {
	t := newDefinitionTable()
	t.openMPDeclared = true
	return t
}

func TestNormalizeToModernUpconvertsDeprecatedOmpFork(t *testing.T) {
	in := &OmpFork{EventCommon: EventCommon{Time: 10}, NumberOfRequestedThreads: 4}
	got := normalizeToModern(in, openMPTable())

	fork, ok := got.(*ThreadFork)
	if !ok {
		t.Fatalf("normalizeToModern(OmpFork) = %T, want *ThreadFork", got)
	}
	if fork.Time != 10 || fork.Model != ThreadModelOpenMP || fork.RequestedTeam != 4 {
		t.Errorf("unexpected upconverted fields: %+v", fork)
	}
}

func TestNormalizeToModernRequiresOpenMPParadigm(t *testing.T) {
	in := &OmpFork{EventCommon: EventCommon{Time: 10}, NumberOfRequestedThreads: 4}
	got := normalizeToModern(in, newDefinitionTable())
	if got != Record(in) {
		t.Errorf("normalizeToModern without a declared OpenMP paradigm should leave OmpFork unconverted, got %T", got)
	}
}

func TestNormalizeToModernLeavesCurrentSchemaAlone(t *testing.T) {
	in := &ThreadFork{EventCommon: EventCommon{Time: 1}, Model: ThreadModelPthread, RequestedTeam: 2}
	got := normalizeToModern(in, openMPTable())
	if got != Record(in) {
		t.Errorf("normalizeToModern should pass through a non-deprecated record unchanged")
	}
}

func TestIsDeprecatedRecord(t *testing.T) {
	cases := map[RecordType]bool{
		RecordOmpFork:    true,
		RecordCallsite:   true,
		RecordThreadFork: false,
		RecordEnter:      false,
	}
	for kind, want := range cases {
		if got := isDeprecatedRecord(kind); got != want {
			t.Errorf("isDeprecatedRecord(%v) = %v, want %v", kind, got, want)
		}
	}
}

// TestDispatchConvertedExactKindWinsOverConversion is the "exact match
// first" half of spec.md §4.5's dispatch contract: a callback registered
// for the deprecated kind itself must fire even though a modern-kind
// callback is also registered and the conversion condition holds, and
// exactly one callback must fire per record.
func TestDispatchConvertedExactKindWinsOverConversion(t *testing.T) {
	var gotDeprecated, gotModern int
	cb := NewEventCallbacks()
	cb.On(RecordOmpFork, func(LocationRef, *AttributeList, Record) error { gotDeprecated++; return nil })
	cb.On(RecordThreadFork, func(LocationRef, *AttributeList, Record) error { gotModern++; return nil })

	rec := &OmpFork{EventCommon: EventCommon{Time: 5}, NumberOfRequestedThreads: 2}
	if err := dispatchConverted(cb, LocationRef(0), nil, rec, openMPTable()); err != nil {
		t.Fatalf("dispatchConverted: %v", err)
	}
	if gotDeprecated != 1 || gotModern != 0 {
		t.Errorf("got (deprecated=%d, modern=%d), want (1, 0): exact kind must win over conversion", gotDeprecated, gotModern)
	}
}

// TestDispatchConvertedFallsBackToConversionTarget is the other half: when
// no handler is registered for the record's own kind, the conversion
// target fires instead, provided its condition holds.
func TestDispatchConvertedFallsBackToConversionTarget(t *testing.T) {
	var gotModern int
	var seen *ThreadFork
	cb := NewEventCallbacks()
	cb.On(RecordThreadFork, func(_ LocationRef, _ *AttributeList, r Record) error {
		gotModern++
		seen = r.(*ThreadFork)
		return nil
	})

	rec := &OmpFork{EventCommon: EventCommon{Time: 5}, NumberOfRequestedThreads: 3}
	if err := dispatchConverted(cb, LocationRef(0), nil, rec, openMPTable()); err != nil {
		t.Fatalf("dispatchConverted: %v", err)
	}
	if gotModern != 1 {
		t.Fatalf("got %d ThreadFork callbacks, want 1", gotModern)
	}
	if seen.Model != ThreadModelOpenMP || seen.RequestedTeam != 3 {
		t.Errorf("unexpected converted fields: %+v", seen)
	}
}

// TestDispatchConvertedSkipsWhenConditionFails: the conversion condition
// gates whether the fallback is even attempted (spec.md §4.5). With no
// OpenMP paradigm declared, an OmpFork must not be rewritten into a
// ThreadFork callback invocation at all.
func TestDispatchConvertedSkipsWhenConditionFails(t *testing.T) {
	var gotModern int
	cb := NewEventCallbacks()
	cb.On(RecordThreadFork, func(LocationRef, *AttributeList, Record) error { gotModern++; return nil })

	rec := &OmpFork{EventCommon: EventCommon{Time: 5}, NumberOfRequestedThreads: 3}
	if err := dispatchConverted(cb, LocationRef(0), nil, rec, newDefinitionTable()); err != nil {
		t.Fatalf("dispatchConverted: %v", err)
	}
	if gotModern != 0 {
		t.Errorf("got %d ThreadFork callbacks, want 0 without a declared OpenMP paradigm", gotModern)
	}
}

// TestDispatchConvertedUpConversionCompleteness is spec.md's P9: a
// consumer registering only Enter/Leave callbacks over an archive that
// physically contains only CallingContextEnter/CallingContextLeave events
// must still see exactly one callback per event, with Region set to the
// calling context's leaf region.
func TestDispatchConvertedUpConversionCompleteness(t *testing.T) {
	defs := newDefinitionTable()
	defs.leafRegion[CallingContextRef(7)] = RegionRef(42)
	defs.callingContext[RegionRef(42)] = CallingContextRef(7)

	var enters, leaves int
	var lastRegion RegionRef
	cb := NewEventCallbacks()
	cb.On(RecordEnter, func(_ LocationRef, _ *AttributeList, r Record) error {
		enters++
		lastRegion = r.(*Enter).Region
		return nil
	})
	cb.On(RecordLeave, func(_ LocationRef, _ *AttributeList, r Record) error {
		leaves++
		lastRegion = r.(*Leave).Region
		return nil
	})

	ccEnter := &CallingContextEnter{EventCommon: EventCommon{Time: 1}, CallingContext: CallingContextRef(7), UnwindDistance: 0}
	if err := dispatchConverted(cb, LocationRef(0), nil, ccEnter, defs); err != nil {
		t.Fatalf("dispatchConverted(CallingContextEnter): %v", err)
	}
	ccLeave := &CallingContextLeave{EventCommon: EventCommon{Time: 2}, CallingContext: CallingContextRef(7)}
	if err := dispatchConverted(cb, LocationRef(0), nil, ccLeave, defs); err != nil {
		t.Fatalf("dispatchConverted(CallingContextLeave): %v", err)
	}

	if enters != 1 || leaves != 1 {
		t.Fatalf("got (enters=%d, leaves=%d), want (1, 1): every CallingContextEnter/Leave must fire exactly one callback", enters, leaves)
	}
	if lastRegion != 42 {
		t.Errorf("Region = %d, want 42 (the calling context's leaf region)", lastRegion)
	}
}

// TestDispatchConvertedUpConversionRequiresKnownCallingContext: without a
// CallingContextDef covering the event's CallingContext, the down
// conversion condition fails closed and the event is silently skipped
// (no handler registered for its own, unregistered kind) rather than
// fabricating a Region.
func TestDispatchConvertedUpConversionRequiresKnownCallingContext(t *testing.T) {
	var enters int
	cb := NewEventCallbacks()
	cb.On(RecordEnter, func(LocationRef, *AttributeList, Record) error { enters++; return nil })

	ccEnter := &CallingContextEnter{EventCommon: EventCommon{Time: 1}, CallingContext: CallingContextRef(99)}
	if err := dispatchConverted(cb, LocationRef(0), nil, ccEnter, newDefinitionTable()); err != nil {
		t.Fatalf("dispatchConverted: %v", err)
	}
	if enters != 0 {
		t.Errorf("got %d Enter callbacks, want 0 when no CallingContextDef covers the event", enters)
	}
}

// TestDispatchConvertedDownConversionToCallingContext covers the reverse
// table entry: a consumer registering only CallingContextEnter/Leave
// callbacks over an archive containing Enter/Leave events still sees
// them, provided a CallingContext exists whose leaf region matches.
func TestDispatchConvertedDownConversionToCallingContext(t *testing.T) {
	defs := newDefinitionTable()
	defs.leafRegion[CallingContextRef(3)] = RegionRef(9)
	defs.callingContext[RegionRef(9)] = CallingContextRef(3)

	var got *CallingContextEnter
	cb := NewEventCallbacks()
	cb.On(RecordCallingContextEnter, func(_ LocationRef, _ *AttributeList, r Record) error {
		got = r.(*CallingContextEnter)
		return nil
	})

	enter := &Enter{EventCommon: EventCommon{Time: 1}, Region: RegionRef(9)}
	if err := dispatchConverted(cb, LocationRef(0), nil, enter, defs); err != nil {
		t.Fatalf("dispatchConverted(Enter): %v", err)
	}
	if got == nil || got.CallingContext != 3 {
		t.Fatalf("got %+v, want CallingContextEnter{CallingContext: 3}", got)
	}
}
