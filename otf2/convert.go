package otf2

// convertRule is one spec.md §4.5 up-/down-conversion table entry: a
// record of the keyed kind may be converted to its partner form only if
// condition holds against the archive's DefinitionTable, and apply builds
// that partner. Grounded on SPEC_FULL.md §5.5's description of
// convert.go holding "a non-owning pointer to the archive's global
// DefinitionTable snapshot" and dispatch trying a conversion "only after
// an exact-kind lookup fails" — the same look-up-shared-state,
// fail-soft-if-absent shape perffile.Records.getAttr and parseCommon use.
type convertRule struct {
	condition func(rec Record, defs *DefinitionTable) bool
	apply     func(rec Record, defs *DefinitionTable) Record
}

func paradigmOpenMPDeclared(_ Record, defs *DefinitionTable) bool {
	return defs != nil && defs.openMPDeclared
}

// haveMatchingComm approximates spec.md §4.5's "Archive provides a
// matching Comm for the thread team" condition for the three OmpTask*
// kinds. Those events carry only a bare TaskID (record_events.go), with
// no thread-team/Comm reference in their wire format at all, so there is
// nothing in the event itself to match a specific Comm against; tracking
// each location's current thread-team stack to recover one would be a
// much larger undertaking than this conversion layer's scope. The
// condition is approximated as "the archive declares at least one Comm",
// a documented simplification (DESIGN.md) rather than a precise match.
func haveMatchingComm(_ Record, defs *DefinitionTable) bool {
	return defs != nil && defs.haveComm
}

// convertRules maps a record's own kind to its conversion partner. It is
// consulted by dispatchConverted only once an exact-kind callback lookup
// has already failed, per spec.md §4.5's dispatch contract: exact match
// first, conversion target only if the exact kind has no registered
// handler, and at most one callback fires per physical record.
var convertRules = map[RecordType]convertRule{
	RecordOmpFork: {
		condition: paradigmOpenMPDeclared,
		apply:     func(rec Record, _ *DefinitionTable) Record { return rec.(*OmpFork).upconvert() },
	},
	RecordOmpJoin: {
		condition: paradigmOpenMPDeclared,
		apply:     func(rec Record, _ *DefinitionTable) Record { return rec.(*OmpJoin).upconvert() },
	},
	RecordOmpAcquireLock: {
		condition: paradigmOpenMPDeclared,
		apply:     func(rec Record, _ *DefinitionTable) Record { return rec.(*OmpAcquireLock).upconvert() },
	},
	RecordOmpReleaseLock: {
		condition: paradigmOpenMPDeclared,
		apply:     func(rec Record, _ *DefinitionTable) Record { return rec.(*OmpReleaseLock).upconvert() },
	},
	RecordOmpTaskCreate: {
		condition: haveMatchingComm,
		apply: func(rec Record, _ *DefinitionTable) Record {
			e := rec.(*OmpTaskCreate)
			return &ThreadTaskCreate{taskEvent{e.EventCommon, 0, 0, uint32(e.TaskID)}}
		},
	},
	RecordOmpTaskSwitch: {
		condition: haveMatchingComm,
		apply: func(rec Record, _ *DefinitionTable) Record {
			e := rec.(*OmpTaskSwitch)
			return &ThreadTaskSwitch{taskEvent{e.EventCommon, 0, 0, uint32(e.TaskID)}}
		},
	},
	RecordOmpTaskComplete: {
		condition: haveMatchingComm,
		apply: func(rec Record, _ *DefinitionTable) Record {
			e := rec.(*OmpTaskComplete)
			return &ThreadTaskComplete{taskEvent{e.EventCommon, 0, 0, uint32(e.TaskID)}}
		},
	},

	// CallingContextEnter/Leave down-convert to Enter/Leave when a
	// CallingContext exists whose leaf region is the deprecated event's
	// region (spec.md §4.5); this is the direction P9 exercises.
	RecordCallingContextEnter: {
		condition: func(rec Record, defs *DefinitionTable) bool {
			_, ok := defs.leafRegionOf(rec.(*CallingContextEnter).CallingContext)
			return ok
		},
		apply: func(rec Record, defs *DefinitionTable) Record {
			e := rec.(*CallingContextEnter)
			region, _ := defs.leafRegionOf(e.CallingContext)
			return &Enter{EventCommon: e.EventCommon, Region: region}
		},
	},
	RecordCallingContextLeave: {
		condition: func(rec Record, defs *DefinitionTable) bool {
			_, ok := defs.leafRegionOf(rec.(*CallingContextLeave).CallingContext)
			return ok
		},
		apply: func(rec Record, defs *DefinitionTable) Record {
			e := rec.(*CallingContextLeave)
			region, _ := defs.leafRegionOf(e.CallingContext)
			return &Leave{EventCommon: e.EventCommon, Region: region}
		},
	},

	// The reverse direction: Enter/Leave up-convert to CallingContextEnter
	// /Leave when a CallingContext exists whose leaf region equals the
	// event's region, the potentially-lossless half of the same table
	// entry (spec.md §4.5).
	RecordEnter: {
		condition: func(rec Record, defs *DefinitionTable) bool {
			_, ok := defs.callingContextOf(rec.(*Enter).Region)
			return ok
		},
		apply: func(rec Record, defs *DefinitionTable) Record {
			e := rec.(*Enter)
			cc, _ := defs.callingContextOf(e.Region)
			return &CallingContextEnter{EventCommon: e.EventCommon, CallingContext: cc}
		},
	},
	RecordLeave: {
		condition: func(rec Record, defs *DefinitionTable) bool {
			_, ok := defs.callingContextOf(rec.(*Leave).Region)
			return ok
		},
		apply: func(rec Record, defs *DefinitionTable) Record {
			e := rec.(*Leave)
			cc, _ := defs.callingContextOf(e.Region)
			return &CallingContextLeave{EventCommon: e.EventCommon, CallingContext: cc}
		},
	},
}

// dispatchConverted delivers rec to cb, trying rec's own kind first and
// falling back to its conversion partner (if one is registered in
// convertRules and its condition holds against defs) only when the exact
// kind has no handler — spec.md §4.5's dispatch contract. defs may be nil
// (e.g. an archive with no definitions snapshot available), in which case
// every condition simply fails closed and rec is dispatched unconverted.
func dispatchConverted(cb *EventCallbacks, location LocationRef, attrs *AttributeList, rec Record, defs *DefinitionTable) error {
	if cb.has(rec.Type()) {
		return cb.dispatch(location, attrs, rec)
	}
	if rule, ok := convertRules[rec.Type()]; ok && rule.condition(rec, defs) {
		return cb.dispatch(location, attrs, rule.apply(rec, defs))
	}
	return cb.dispatch(location, attrs, rec)
}

// normalizeToModern rewrites a decoded record into its modern-schema form
// when the archive's definitions satisfy that conversion's condition.
// GlobalMerger delivers every record through a single flat
// MergedEventHandler rather than a per-kind registry, so it has no
// "exact kind already has a handler" case to check first the way
// dispatchConverted does; it always prefers the modern form when the
// condition holds. Only the deprecated Omp* kinds are rewritten here;
// Enter/Leave and CallingContextEnter/Leave records are not converted in
// either direction and reach the merger's handler exactly as decoded.
func normalizeToModern(rec Record, defs *DefinitionTable) Record {
	switch rec.(type) {
	case *OmpFork, *OmpJoin, *OmpAcquireLock, *OmpReleaseLock,
		*OmpTaskCreate, *OmpTaskSwitch, *OmpTaskComplete:
		if rule, ok := convertRules[rec.Type()]; ok && rule.condition(rec, defs) {
			return rule.apply(rec, defs)
		}
	}
	return rec
}

// isDeprecatedRecord reports whether kind is one a conforming writer
// never emits but a conforming reader must still decode (spec.md §4.5).
func isDeprecatedRecord(kind RecordType) bool {
	switch kind {
	case RecordOmpFork, RecordOmpJoin, RecordOmpAcquireLock, RecordOmpReleaseLock,
		RecordOmpTaskCreate, RecordOmpTaskSwitch, RecordOmpTaskComplete, RecordCallsite:
		return true
	default:
		return false
	}
}
