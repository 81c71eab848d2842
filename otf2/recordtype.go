package otf2

import "fmt"

// RecordType is the one-byte kind tag that begins every record on the wire
// (spec.md §4.4/§6). Tags partition into reserved framing tags, compact
// tags for the common kinds, and the RecordExt extension tag that
// introduces a two-byte kind for rare/future records — the same three-way
// split perf.data's own RecordType makes between its numbered kinds and
// its extension-ish "user event" range (see perffile.recordTypeUserStart).
type RecordType uint8

const (
	// RecordNone is never written; it is the zero value.
	RecordNone RecordType = 0

	// RecordBufferEnd is the chunk-sealing sentinel (spec.md §3's
	// "Chunked buffer" / §6's on-disk chunk format). It is consumed by
	// the chunked buffer itself and never surfaced as a Record.
	RecordBufferEnd RecordType = 0xFF

	// RecordExt introduces a two-byte kind in the following byte, for
	// record kinds outside the compact range (spec.md §4.4).
	RecordExt RecordType = 0xFE

	// RecordAttributeList is the pseudo-record that precedes and
	// attaches to the next event (spec.md §4.3/§6).
	RecordAttributeList RecordType = 0xFD

	// RecordBufferFlush is emitted by the buffer into the chunk
	// following a flush, carrying the flush's wall-clock span
	// (spec.md §4.2).
	RecordBufferFlush RecordType = 0xFC

	// RecordRewind is the observable marker a writer may emit instead
	// of failing a demoted rewind (SPEC_FULL.md §9).
	RecordRewind RecordType = 0xFB
)

// Event record kinds, numbered from 1 up to the recordEventEnd sentinel;
// definition kinds start at 100 (below). This single shared tag space mirrors the wire
// format's actual framing: the chunked buffer and record schema don't
// care which logical stream (global defs, local defs, events) a record
// belongs to.
const (
	RecordEnter RecordType = 1 + iota
	RecordLeave
	RecordCallingContextEnter
	RecordCallingContextLeave
	RecordCallingContextSample
	RecordThreadFork
	RecordThreadJoin
	RecordThreadTeamBegin
	RecordThreadTeamEnd
	RecordThreadAcquireLock
	RecordThreadReleaseLock
	RecordThreadTaskCreate
	RecordThreadTaskSwitch
	RecordThreadTaskComplete
	RecordThreadCreate
	RecordThreadBegin
	RecordThreadEnd
	RecordThreadWait
	RecordOmpFork
	RecordOmpJoin
	RecordOmpAcquireLock
	RecordOmpReleaseLock
	RecordOmpTaskCreate
	RecordOmpTaskSwitch
	RecordOmpTaskComplete
	RecordMpiSend
	RecordMpiIsend
	RecordMpiIsendComplete
	RecordMpiIrecv
	RecordMpiIrecvRequest
	RecordMpiRequestTest
	RecordMpiRequestCancelled
	RecordMpiRecv
	RecordMpiCollectiveBegin
	RecordMpiCollectiveEnd
	RecordRmaWinCreate
	RecordRmaWinDestroy
	RecordRmaCollectiveBegin
	RecordRmaCollectiveEnd
	RecordRmaGroupSync
	RecordRmaRequestLock
	RecordRmaAcquireLock
	RecordRmaTryLock
	RecordRmaReleaseLock
	RecordRmaSync
	RecordRmaWaitChange
	RecordRmaPut
	RecordRmaGet
	RecordRmaAtomic
	RecordRmaOpCompleteBlocking
	RecordRmaOpCompleteNonBlocking
	RecordRmaOpCompleteRemote
	RecordTaskCreate
	RecordTaskDestroy
	RecordTaskRunnable
	RecordAddDependence
	RecordSatisfyDependence
	RecordMetric
	RecordParameterString
	RecordParameterInt
	RecordParameterUnsignedInt
	RecordMeasurementOnOff

	recordEventEnd // sentinel: first unused event tag
)

// Definition record kinds (global and local definitions, spec.md §3/§4.4).
const (
	RecordString RecordType = 100 + iota
	RecordLocation
	RecordLocationGroup
	RecordSystemTreeNode
	RecordSystemTreeNodeProperty
	RecordSystemTreeNodeDomain
	RecordLocationGroupProperty
	RecordLocationProperty
	RecordRegion
	RecordCallsite
	RecordCallpath
	RecordGroup
	RecordMetricMember
	RecordMetricClass
	RecordMetricInstance
	RecordMetricClassRecorder
	RecordComm
	RecordParameter
	RecordRmaWin
	RecordCartDimension
	RecordCartTopology
	RecordCartCoordinate
	RecordSourceCodeLocation
	RecordCallingContext
	RecordCallingContextProperty
	RecordInterruptGenerator
	RecordParadigm
	RecordParadigmProperty
	RecordAttribute
	RecordClockProperties

	// RecordIoFile is recognized but unsupported (SPEC_FULL.md §10): it
	// has no decoder, so readers decode it to *UnknownRecord and skip it
	// by its length prefix instead of failing.
	RecordIoFile

	recordDefEnd // sentinel: first unused definition tag
)

// recordTypeNames is used only by RecordType.String() for diagnostics;
// it is deliberately not exhaustive (reserved framing tags and
// definition kinds print as their numeric value instead).
var recordTypeNames = map[RecordType]string{
	RecordEnter: "ENTER", RecordLeave: "LEAVE",
	RecordMetric: "METRIC", RecordMpiSend: "MPI_SEND", RecordMpiRecv: "MPI_RECV",
	RecordThreadFork: "THREAD_FORK", RecordThreadJoin: "THREAD_JOIN",
}

func (k RecordType) String() string {
	if name, ok := recordTypeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("RecordType(%d)", uint8(k))
}

// MappedKind identifies which identifier space (if any) a mapped field of
// an event belongs to, used by Reader to apply the right MappingTable
// (spec.md §4.7). Definitions never carry mapped fields — mapping only
// applies to local-definition-relative identifiers seen in events.
type MappedKind uint8

const (
	MappedNone MappedKind = iota
	MappedRegion
	MappedGroup
	MappedMetric
	MappedComm
	MappedRmaWin
	MappedParameter
	MappedCallingContext
	MappedInterruptGenerator
	MappedSourceCodeLocation
	MappedAttribute
)
