package otf2

// EventHandler processes one decoded, normalized, mapping-resolved event
// from a single location's stream. attrs is the AttributeList attached to
// this event (spec.md §4.3), or nil if none was pending.
type EventHandler func(location LocationRef, attrs *AttributeList, r Record) error

// DefHandler processes one decoded definition record from the global or
// a local definition stream.
type DefHandler func(r Record) error

// EventCallbacks is the bag-of-closures dispatch table Reader.ReadEvents
// consults for each decoded event, generalizing
// OTF2_GlobalDefReaderCallbacks.h's per-kind function-pointer struct into
// a map so registering a handler for one of several dozen kinds doesn't
// require a 90-field literal. Handlers are looked up by concrete Record
// kind (Record.Type()); an event kind with no registered handler is
// silently skipped.
type EventCallbacks struct {
	handlers map[RecordType]EventHandler
	unknown  EventHandler
}

// NewEventCallbacks returns an empty dispatch table.
func NewEventCallbacks() *EventCallbacks {
	return &EventCallbacks{handlers: make(map[RecordType]EventHandler)}
}

// On registers fn for events of the given kind, e.g. On(RecordEnter, ...).
func (c *EventCallbacks) On(kind RecordType, fn EventHandler) {
	c.handlers[kind] = fn
}

// OnUnknown registers a catch-all invoked for any event kind this build
// does not recognize (decoded as *UnknownRecord), letting a consumer at
// least count or log them instead of silently dropping them.
func (c *EventCallbacks) OnUnknown(fn EventHandler) {
	c.unknown = fn
}

// OnAll registers fn for every known event kind (EventKinds), the
// convenience a generic consumer like a trace dumper or statistics
// collector needs instead of naming each of the several dozen kinds
// individually. OnUnknown still covers kinds this build doesn't
// recognize at all.
func (c *EventCallbacks) OnAll(fn EventHandler) {
	for _, k := range EventKinds {
		c.handlers[k] = fn
	}
}

// EventKinds lists every event record kind in declaration order.
var EventKinds = []RecordType{
	RecordEnter, RecordLeave, RecordCallingContextEnter, RecordCallingContextLeave,
	RecordCallingContextSample, RecordThreadFork, RecordThreadJoin, RecordThreadTeamBegin,
	RecordThreadTeamEnd, RecordThreadAcquireLock, RecordThreadReleaseLock, RecordThreadTaskCreate,
	RecordThreadTaskSwitch, RecordThreadTaskComplete, RecordThreadCreate, RecordThreadBegin,
	RecordThreadEnd, RecordThreadWait, RecordOmpFork, RecordOmpJoin, RecordOmpAcquireLock,
	RecordOmpReleaseLock, RecordOmpTaskCreate, RecordOmpTaskSwitch, RecordOmpTaskComplete,
	RecordMpiSend, RecordMpiIsend, RecordMpiIsendComplete, RecordMpiIrecv, RecordMpiIrecvRequest,
	RecordMpiRequestTest, RecordMpiRequestCancelled, RecordMpiRecv, RecordMpiCollectiveBegin,
	RecordMpiCollectiveEnd, RecordRmaWinCreate, RecordRmaWinDestroy, RecordRmaCollectiveBegin,
	RecordRmaCollectiveEnd, RecordRmaGroupSync, RecordRmaRequestLock, RecordRmaAcquireLock,
	RecordRmaTryLock, RecordRmaReleaseLock, RecordRmaSync, RecordRmaWaitChange, RecordRmaPut,
	RecordRmaGet, RecordRmaAtomic, RecordRmaOpCompleteBlocking, RecordRmaOpCompleteNonBlocking,
	RecordRmaOpCompleteRemote, RecordTaskCreate, RecordTaskDestroy, RecordTaskRunnable,
	RecordAddDependence, RecordSatisfyDependence, RecordMetric, RecordParameterString,
	RecordParameterInt, RecordParameterUnsignedInt, RecordMeasurementOnOff,
}

// has reports whether a handler is registered for kind's exact RecordType,
// the "exact match" half of dispatchConverted's dispatch contract
// (spec.md §4.5).
func (c *EventCallbacks) has(kind RecordType) bool {
	_, ok := c.handlers[kind]
	return ok
}

func (c *EventCallbacks) dispatch(location LocationRef, attrs *AttributeList, r Record) error {
	if _, ok := r.(*UnknownRecord); ok {
		if c.unknown != nil {
			return c.unknown(location, attrs, r)
		}
		return nil
	}
	if fn, ok := c.handlers[r.Type()]; ok {
		return fn(location, attrs, r)
	}
	return nil
}

// DefCallbacks is the definition-stream analogue of EventCallbacks,
// grounded directly on OTF2_GlobalDefReaderCallbacks.h's shape (one
// callback per definition kind) but, again, table-driven instead of a
// fixed struct literal.
type DefCallbacks struct {
	handlers map[RecordType]DefHandler
	unknown  DefHandler
}

func NewDefCallbacks() *DefCallbacks {
	return &DefCallbacks{handlers: make(map[RecordType]DefHandler)}
}

func (c *DefCallbacks) On(kind RecordType, fn DefHandler) {
	c.handlers[kind] = fn
}

func (c *DefCallbacks) OnUnknown(fn DefHandler) {
	c.unknown = fn
}

func (c *DefCallbacks) dispatch(r Record) error {
	if _, ok := r.(*UnknownRecord); ok {
		if c.unknown != nil {
			return c.unknown(r)
		}
		return nil
	}
	if fn, ok := c.handlers[r.Type()]; ok {
		return fn(r)
	}
	return nil
}
