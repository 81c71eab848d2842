package otf2

// Identifier types. Each first-class entity in an OTF2 archive has a
// fixed-width unsigned identifier; the widths below are normative for wire
// compatibility (see SPEC_FULL.md §4). Distinct Go types catch cross-space
// mixups at compile time, the same reason perffile.attrID is its own type
// rather than a bare uint64.

type StringRef uint32
type RegionRef uint32
type AttributeRef uint32
type ParameterRef uint32
type CallingContextRef uint32
type CallSiteRef uint32
type CallpathRef uint32
type SystemTreeNodeRef uint32
type LocationGroupRef uint32
type SourceCodeLocationRef uint32
type InterruptGeneratorRef uint32
type MetricMemberRef uint32
type MetricRef uint32
type CommRef uint32
type GroupRef uint32
type RmaWinRef uint32
type CartTopologyRef uint32
type CartDimensionRef uint32

// LocationRef is the only 64-bit identifier space; a location is typically
// one thread or one device queue.
type LocationRef uint64

// Undefined sentinels: all-ones at each identifier's width, meaning
// "undefined/none". These root parent chains (e.g. the top of a
// SystemTreeNode tree) and mark absent optional references.
const (
	UndefinedString             StringRef             = ^StringRef(0)
	UndefinedRegion              RegionRef             = ^RegionRef(0)
	UndefinedAttribute           AttributeRef          = ^AttributeRef(0)
	UndefinedParameter           ParameterRef          = ^ParameterRef(0)
	UndefinedCallingContext      CallingContextRef     = ^CallingContextRef(0)
	UndefinedCallSite            CallSiteRef           = ^CallSiteRef(0)
	UndefinedCallpath            CallpathRef           = ^CallpathRef(0)
	UndefinedSystemTreeNode      SystemTreeNodeRef     = ^SystemTreeNodeRef(0)
	UndefinedLocationGroup       LocationGroupRef      = ^LocationGroupRef(0)
	UndefinedSourceCodeLocation  SourceCodeLocationRef = ^SourceCodeLocationRef(0)
	UndefinedInterruptGenerator  InterruptGeneratorRef = ^InterruptGeneratorRef(0)
	UndefinedMetricMember        MetricMemberRef       = ^MetricMemberRef(0)
	UndefinedMetric              MetricRef             = ^MetricRef(0)
	UndefinedComm                CommRef               = ^CommRef(0)
	UndefinedGroup               GroupRef              = ^GroupRef(0)
	UndefinedRmaWin              RmaWinRef             = ^RmaWinRef(0)
	UndefinedCartTopology        CartTopologyRef       = ^CartTopologyRef(0)
	UndefinedCartDimension       CartDimensionRef      = ^CartDimensionRef(0)
	UndefinedLocation            LocationRef           = ^LocationRef(0)
)

func (r StringRef) IsDefined() bool             { return r != UndefinedString }
func (r RegionRef) IsDefined() bool             { return r != UndefinedRegion }
func (r AttributeRef) IsDefined() bool          { return r != UndefinedAttribute }
func (r ParameterRef) IsDefined() bool          { return r != UndefinedParameter }
func (r CallingContextRef) IsDefined() bool     { return r != UndefinedCallingContext }
func (r CallSiteRef) IsDefined() bool           { return r != UndefinedCallSite }
func (r CallpathRef) IsDefined() bool           { return r != UndefinedCallpath }
func (r SystemTreeNodeRef) IsDefined() bool     { return r != UndefinedSystemTreeNode }
func (r LocationGroupRef) IsDefined() bool      { return r != UndefinedLocationGroup }
func (r SourceCodeLocationRef) IsDefined() bool { return r != UndefinedSourceCodeLocation }
func (r InterruptGeneratorRef) IsDefined() bool { return r != UndefinedInterruptGenerator }
func (r MetricMemberRef) IsDefined() bool       { return r != UndefinedMetricMember }
func (r MetricRef) IsDefined() bool             { return r != UndefinedMetric }
func (r CommRef) IsDefined() bool               { return r != UndefinedComm }
func (r GroupRef) IsDefined() bool              { return r != UndefinedGroup }
func (r RmaWinRef) IsDefined() bool             { return r != UndefinedRmaWin }
func (r CartTopologyRef) IsDefined() bool       { return r != UndefinedCartTopology }
func (r CartDimensionRef) IsDefined() bool      { return r != UndefinedCartDimension }
func (r LocationRef) IsDefined() bool           { return r != UndefinedLocation }
