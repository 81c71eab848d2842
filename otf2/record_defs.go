package otf2

// Definition record types. Definitions never carry a timestamp or
// participate in chunk-relative delta compression; each decode<Kind>
// function still takes a *ReadBuffer for symmetry with the event
// decoders in record_events.go; it only consumes bd.

func init() {
	registerRecordDecoder(RecordString, decodeStringDef)
	registerRecordDecoder(RecordLocation, decodeLocationDef)
	registerRecordDecoder(RecordLocationGroup, decodeLocationGroupDef)
	registerRecordDecoder(RecordSystemTreeNode, decodeSystemTreeNodeDef)
	registerRecordDecoder(RecordSystemTreeNodeProperty, decodeSystemTreeNodePropertyDef)
	registerRecordDecoder(RecordSystemTreeNodeDomain, decodeSystemTreeNodeDomainDef)
	registerRecordDecoder(RecordLocationGroupProperty, decodeLocationGroupPropertyDef)
	registerRecordDecoder(RecordLocationProperty, decodeLocationPropertyDef)
	registerRecordDecoder(RecordRegion, decodeRegionDef)
	registerRecordDecoder(RecordCallsite, decodeCallsiteDef)
	registerRecordDecoder(RecordCallpath, decodeCallpathDef)
	registerRecordDecoder(RecordGroup, decodeGroupDef)
	registerRecordDecoder(RecordMetricMember, decodeMetricMemberDef)
	registerRecordDecoder(RecordMetricClass, decodeMetricClassDef)
	registerRecordDecoder(RecordMetricInstance, decodeMetricInstanceDef)
	registerRecordDecoder(RecordMetricClassRecorder, decodeMetricClassRecorderDef)
	registerRecordDecoder(RecordComm, decodeCommDef)
	registerRecordDecoder(RecordParameter, decodeParameterDef)
	registerRecordDecoder(RecordRmaWin, decodeRmaWinDef)
	registerRecordDecoder(RecordCartDimension, decodeCartDimensionDef)
	registerRecordDecoder(RecordCartTopology, decodeCartTopologyDef)
	registerRecordDecoder(RecordCartCoordinate, decodeCartCoordinateDef)
	registerRecordDecoder(RecordSourceCodeLocation, decodeSourceCodeLocationDef)
	registerRecordDecoder(RecordCallingContext, decodeCallingContextDef)
	registerRecordDecoder(RecordCallingContextProperty, decodeCallingContextPropertyDef)
	registerRecordDecoder(RecordInterruptGenerator, decodeInterruptGeneratorDef)
	registerRecordDecoder(RecordParadigm, decodeParadigmDef)
	registerRecordDecoder(RecordParadigmProperty, decodeParadigmPropertyDef)
	registerRecordDecoder(RecordAttribute, decodeAttributeDef)
	registerRecordDecoder(RecordClockProperties, decodeClockPropertiesDef)
}

// StringDef is the single variable-length-string definition kind
// (spec.md §4.1): every other definition's names are indirected through
// a StringRef into this table.
type StringDef struct {
	Self  StringRef
	Value string
}

func (d *StringDef) Type() RecordType { return RecordString }
func (d *StringDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.cstring(d.Value)
	return nil
}
func decodeStringDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &StringDef{StringRef(bd.uvarint()), bd.cstring()}, nil
}

// LocationType classifies a Location definition, e.g. CPU thread vs.
// GPU/accelerator stream.
type LocationType uint8

const (
	LocationTypeCPUThread LocationType = iota
	LocationTypeGPU
	LocationTypeAccelerator
	LocationTypeMetric
)

type LocationDef struct {
	Self            LocationRef
	Name            StringRef
	Type            LocationType
	NumberOfEvents  uint64
	LocationGroup   LocationGroupRef
}

func (d *LocationDef) Type() RecordType { return RecordLocation }
func (d *LocationDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.Name))
	be.u8(uint8(d.Type))
	be.uvarint(d.NumberOfEvents)
	be.uvarint(uint64(d.LocationGroup))
	return nil
}
func decodeLocationDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &LocationDef{
		Self:          LocationRef(bd.uvarint()),
		Name:          StringRef(bd.u32()),
		Type:          LocationType(bd.u8()),
		NumberOfEvents: bd.uvarint(),
		LocationGroup: LocationGroupRef(bd.uvarint()),
	}, nil
}

type LocationGroupType uint8

const (
	LocationGroupTypeProcess LocationGroupType = iota
	LocationGroupTypeAccelerator
)

type LocationGroupDef struct {
	Self           LocationGroupRef
	Name           StringRef
	Type           LocationGroupType
	SystemTreeNode SystemTreeNodeRef
}

func (d *LocationGroupDef) Type() RecordType { return RecordLocationGroup }
func (d *LocationGroupDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.Name))
	be.u8(uint8(d.Type))
	be.uvarint(uint64(d.SystemTreeNode))
	return nil
}
func decodeLocationGroupDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &LocationGroupDef{
		Self:           LocationGroupRef(bd.uvarint()),
		Name:           StringRef(bd.u32()),
		Type:           LocationGroupType(bd.u8()),
		SystemTreeNode: SystemTreeNodeRef(bd.uvarint()),
	}, nil
}

type SystemTreeNodeDef struct {
	Self   SystemTreeNodeRef
	Name   StringRef
	Class  StringRef
	Parent SystemTreeNodeRef
}

func (d *SystemTreeNodeDef) Type() RecordType { return RecordSystemTreeNode }
func (d *SystemTreeNodeDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.Name))
	be.u32(uint32(d.Class))
	be.uvarint(uint64(d.Parent))
	return nil
}
func decodeSystemTreeNodeDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &SystemTreeNodeDef{
		Self:   SystemTreeNodeRef(bd.uvarint()),
		Name:   StringRef(bd.u32()),
		Class:  StringRef(bd.u32()),
		Parent: SystemTreeNodeRef(bd.uvarint()),
	}, nil
}

type SystemTreeNodePropertyDef struct {
	SystemTreeNode SystemTreeNodeRef
	Name           StringRef
	Value          AttrValue
}

func (d *SystemTreeNodePropertyDef) Type() RecordType { return RecordSystemTreeNodeProperty }
func (d *SystemTreeNodePropertyDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.SystemTreeNode))
	be.u32(uint32(d.Name))
	be.u8(uint8(d.Value.Type))
	encodeAttrValue(d.Value, be)
	return nil
}
func decodeSystemTreeNodePropertyDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	node := SystemTreeNodeRef(bd.uvarint())
	name := StringRef(bd.u32())
	t := AttrType(bd.u8())
	return &SystemTreeNodePropertyDef{node, name, decodeAttrValue(t, bd)}, nil
}

type SystemTreeNodeDomainDef struct {
	SystemTreeNode SystemTreeNodeRef
	Domain         uint8
}

func (d *SystemTreeNodeDomainDef) Type() RecordType { return RecordSystemTreeNodeDomain }
func (d *SystemTreeNodeDomainDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.SystemTreeNode))
	be.u8(d.Domain)
	return nil
}
func decodeSystemTreeNodeDomainDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &SystemTreeNodeDomainDef{SystemTreeNodeRef(bd.uvarint()), bd.u8()}, nil
}

type LocationGroupPropertyDef struct {
	LocationGroup LocationGroupRef
	Name          StringRef
	Value         AttrValue
}

func (d *LocationGroupPropertyDef) Type() RecordType { return RecordLocationGroupProperty }
func (d *LocationGroupPropertyDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.LocationGroup))
	be.u32(uint32(d.Name))
	be.u8(uint8(d.Value.Type))
	encodeAttrValue(d.Value, be)
	return nil
}
func decodeLocationGroupPropertyDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	lg := LocationGroupRef(bd.uvarint())
	name := StringRef(bd.u32())
	t := AttrType(bd.u8())
	return &LocationGroupPropertyDef{lg, name, decodeAttrValue(t, bd)}, nil
}

type LocationPropertyDef struct {
	Location LocationRef
	Name     StringRef
	Value    AttrValue
}

func (d *LocationPropertyDef) Type() RecordType { return RecordLocationProperty }
func (d *LocationPropertyDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Location))
	be.u32(uint32(d.Name))
	be.u8(uint8(d.Value.Type))
	encodeAttrValue(d.Value, be)
	return nil
}
func decodeLocationPropertyDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	loc := LocationRef(bd.uvarint())
	name := StringRef(bd.u32())
	t := AttrType(bd.u8())
	return &LocationPropertyDef{loc, name, decodeAttrValue(t, bd)}, nil
}

type RegionRole uint8

const (
	RegionRoleFunction RegionRole = iota
	RegionRoleLoop
	RegionRoleWrapper
	RegionRoleTask
	RegionRoleCriticalSection
	RegionRoleAtomic
	RegionRoleBarrier
)

type RegionDef struct {
	Self             RegionRef
	Name             StringRef
	CanonicalName    StringRef
	Description      StringRef
	Role             RegionRole
	Paradigm         uint8
	SourceFile       StringRef
	BeginLineNumber  uint32
	EndLineNumber    uint32
}

func (d *RegionDef) Type() RecordType { return RecordRegion }
func (d *RegionDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.Name))
	be.u32(uint32(d.CanonicalName))
	be.u32(uint32(d.Description))
	be.u8(uint8(d.Role))
	be.u8(d.Paradigm)
	be.u32(uint32(d.SourceFile))
	be.uvarint(uint64(d.BeginLineNumber))
	be.uvarint(uint64(d.EndLineNumber))
	return nil
}
func decodeRegionDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &RegionDef{
		Self:            RegionRef(bd.uvarint()),
		Name:            StringRef(bd.u32()),
		CanonicalName:   StringRef(bd.u32()),
		Description:     StringRef(bd.u32()),
		Role:            RegionRole(bd.u8()),
		Paradigm:        bd.u8(),
		SourceFile:      StringRef(bd.u32()),
		BeginLineNumber: uint32(bd.uvarint()),
		EndLineNumber:   uint32(bd.uvarint()),
	}, nil
}

// CallsiteDef is deprecated in favor of Callpath/CallingContext but still
// recognized on read for archives produced by older writers (spec.md
// §4.5).
type CallsiteDef struct {
	Self            CallSiteRef
	SourceFile      StringRef
	LineNumber      uint32
	EnteredRegion   RegionRef
	LeftRegion      RegionRef
}

func (d *CallsiteDef) Type() RecordType { return RecordCallsite }
func (d *CallsiteDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.SourceFile))
	be.uvarint(uint64(d.LineNumber))
	be.uvarint(uint64(d.EnteredRegion))
	be.uvarint(uint64(d.LeftRegion))
	return nil
}
func decodeCallsiteDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &CallsiteDef{
		Self:          CallSiteRef(bd.uvarint()),
		SourceFile:    StringRef(bd.u32()),
		LineNumber:    uint32(bd.uvarint()),
		EnteredRegion: RegionRef(bd.uvarint()),
		LeftRegion:    RegionRef(bd.uvarint()),
	}, nil
}

type CallpathDef struct {
	Self   CallpathRef
	Parent CallpathRef
	Region RegionRef
}

func (d *CallpathDef) Type() RecordType { return RecordCallpath }
func (d *CallpathDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.uvarint(uint64(d.Parent))
	be.uvarint(uint64(d.Region))
	return nil
}
func decodeCallpathDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &CallpathDef{CallpathRef(bd.uvarint()), CallpathRef(bd.uvarint()), RegionRef(bd.uvarint())}, nil
}

type GroupType uint8

const (
	GroupTypeLocations GroupType = iota
	GroupTypeRegions
	GroupTypeComm
	GroupTypeMetric
)

type GroupDef struct {
	Self    GroupRef
	Name    StringRef
	Type    GroupType
	Members []uint64
}

func (d *GroupDef) Type() RecordType { return RecordGroup }
func (d *GroupDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.Name))
	be.u8(uint8(d.Type))
	be.uvarint(uint64(len(d.Members)))
	for _, m := range d.Members {
		be.uvarint(m)
	}
	return nil
}
func decodeGroupDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	self := GroupRef(bd.uvarint())
	name := StringRef(bd.u32())
	typ := GroupType(bd.u8())
	n := int(bd.uvarint())
	members := make([]uint64, n)
	for i := range members {
		members[i] = bd.uvarint()
	}
	return &GroupDef{self, name, typ, members}, nil
}

type MetricMemberDef struct {
	Self       MetricMemberRef
	Name       StringRef
	Description StringRef
	MetricType uint8
	ValueType  AttrType
	Unit       StringRef
}

func (d *MetricMemberDef) Type() RecordType { return RecordMetricMember }
func (d *MetricMemberDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.Name))
	be.u32(uint32(d.Description))
	be.u8(d.MetricType)
	be.u8(uint8(d.ValueType))
	be.u32(uint32(d.Unit))
	return nil
}
func decodeMetricMemberDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &MetricMemberDef{
		Self:        MetricMemberRef(bd.uvarint()),
		Name:        StringRef(bd.u32()),
		Description: StringRef(bd.u32()),
		MetricType:  bd.u8(),
		ValueType:   AttrType(bd.u8()),
		Unit:        StringRef(bd.u32()),
	}, nil
}

type MetricClassDef struct {
	Self    MetricRef
	Members []MetricMemberRef
}

func (d *MetricClassDef) Type() RecordType { return RecordMetricClass }
func (d *MetricClassDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.uvarint(uint64(len(d.Members)))
	for _, m := range d.Members {
		be.uvarint(uint64(m))
	}
	return nil
}
func decodeMetricClassDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	self := MetricRef(bd.uvarint())
	n := int(bd.uvarint())
	members := make([]MetricMemberRef, n)
	for i := range members {
		members[i] = MetricMemberRef(bd.uvarint())
	}
	return &MetricClassDef{self, members}, nil
}

type MetricInstanceDef struct {
	Self        MetricRef
	MetricClass MetricRef
	Recorder    LocationRef
	Scope       uint64
}

func (d *MetricInstanceDef) Type() RecordType { return RecordMetricInstance }
func (d *MetricInstanceDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.uvarint(uint64(d.MetricClass))
	be.uvarint(uint64(d.Recorder))
	be.uvarint(d.Scope)
	return nil
}
func decodeMetricInstanceDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &MetricInstanceDef{
		Self:        MetricRef(bd.uvarint()),
		MetricClass: MetricRef(bd.uvarint()),
		Recorder:    LocationRef(bd.uvarint()),
		Scope:       bd.uvarint(),
	}, nil
}

type MetricClassRecorderDef struct {
	MetricClass MetricRef
	Recorder    LocationRef
}

func (d *MetricClassRecorderDef) Type() RecordType { return RecordMetricClassRecorder }
func (d *MetricClassRecorderDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.MetricClass))
	be.uvarint(uint64(d.Recorder))
	return nil
}
func decodeMetricClassRecorderDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &MetricClassRecorderDef{MetricRef(bd.uvarint()), LocationRef(bd.uvarint())}, nil
}

type CommDef struct {
	Self   CommRef
	Name   StringRef
	Group  GroupRef
	Parent CommRef
}

func (d *CommDef) Type() RecordType { return RecordComm }
func (d *CommDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.Name))
	be.uvarint(uint64(d.Group))
	be.uvarint(uint64(d.Parent))
	return nil
}
func decodeCommDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &CommDef{CommRef(bd.uvarint()), StringRef(bd.u32()), GroupRef(bd.uvarint()), CommRef(bd.uvarint())}, nil
}

type ParameterType uint8

const (
	ParameterTypeString ParameterType = iota
	ParameterTypeInt
	ParameterTypeUnsignedInt
)

type ParameterDef struct {
	Self ParameterRef
	Name StringRef
	Type ParameterType
}

func (d *ParameterDef) Type() RecordType { return RecordParameter }
func (d *ParameterDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.Name))
	be.u8(uint8(d.Type))
	return nil
}
func decodeParameterDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &ParameterDef{ParameterRef(bd.uvarint()), StringRef(bd.u32()), ParameterType(bd.u8())}, nil
}

type RmaWinDef struct {
	Self RmaWinRef
	Name StringRef
	Comm CommRef
}

func (d *RmaWinDef) Type() RecordType { return RecordRmaWin }
func (d *RmaWinDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.Name))
	be.uvarint(uint64(d.Comm))
	return nil
}
func decodeRmaWinDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &RmaWinDef{RmaWinRef(bd.uvarint()), StringRef(bd.u32()), CommRef(bd.uvarint())}, nil
}

type CartDimensionDef struct {
	Self     CartDimensionRef
	Name     StringRef
	Size     uint32
	Periodic bool
}

func (d *CartDimensionDef) Type() RecordType { return RecordCartDimension }
func (d *CartDimensionDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.Name))
	be.uvarint(uint64(d.Size))
	p := uint8(0)
	if d.Periodic {
		p = 1
	}
	be.u8(p)
	return nil
}
func decodeCartDimensionDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	self := CartDimensionRef(bd.uvarint())
	name := StringRef(bd.u32())
	size := uint32(bd.uvarint())
	periodic := bd.u8() != 0
	return &CartDimensionDef{self, name, size, periodic}, nil
}

type CartTopologyDef struct {
	Self       CartTopologyRef
	Name       StringRef
	Comm       CommRef
	Dimensions []CartDimensionRef
}

func (d *CartTopologyDef) Type() RecordType { return RecordCartTopology }
func (d *CartTopologyDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.Name))
	be.uvarint(uint64(d.Comm))
	be.uvarint(uint64(len(d.Dimensions)))
	for _, dim := range d.Dimensions {
		be.uvarint(uint64(dim))
	}
	return nil
}
func decodeCartTopologyDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	self := CartTopologyRef(bd.uvarint())
	name := StringRef(bd.u32())
	comm := CommRef(bd.uvarint())
	n := int(bd.uvarint())
	dims := make([]CartDimensionRef, n)
	for i := range dims {
		dims[i] = CartDimensionRef(bd.uvarint())
	}
	return &CartTopologyDef{self, name, comm, dims}, nil
}

type CartCoordinateDef struct {
	Topology CartTopologyRef
	Rank     uint32
	Coords   []uint32
}

func (d *CartCoordinateDef) Type() RecordType { return RecordCartCoordinate }
func (d *CartCoordinateDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Topology))
	be.uvarint(uint64(d.Rank))
	be.uvarint(uint64(len(d.Coords)))
	for _, c := range d.Coords {
		be.uvarint(uint64(c))
	}
	return nil
}
func decodeCartCoordinateDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	topo := CartTopologyRef(bd.uvarint())
	rank := uint32(bd.uvarint())
	n := int(bd.uvarint())
	coords := make([]uint32, n)
	for i := range coords {
		coords[i] = uint32(bd.uvarint())
	}
	return &CartCoordinateDef{topo, rank, coords}, nil
}

type SourceCodeLocationDef struct {
	Self       SourceCodeLocationRef
	File       StringRef
	LineNumber uint32
}

func (d *SourceCodeLocationDef) Type() RecordType { return RecordSourceCodeLocation }
func (d *SourceCodeLocationDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.File))
	be.uvarint(uint64(d.LineNumber))
	return nil
}
func decodeSourceCodeLocationDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &SourceCodeLocationDef{SourceCodeLocationRef(bd.uvarint()), StringRef(bd.u32()), uint32(bd.uvarint())}, nil
}

type CallingContextDef struct {
	Self             CallingContextRef
	Region           RegionRef
	SourceCodeLocation SourceCodeLocationRef
	Parent           CallingContextRef
}

func (d *CallingContextDef) Type() RecordType { return RecordCallingContext }
func (d *CallingContextDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.uvarint(uint64(d.Region))
	be.uvarint(uint64(d.SourceCodeLocation))
	be.uvarint(uint64(d.Parent))
	return nil
}
func decodeCallingContextDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &CallingContextDef{
		Self:               CallingContextRef(bd.uvarint()),
		Region:             RegionRef(bd.uvarint()),
		SourceCodeLocation: SourceCodeLocationRef(bd.uvarint()),
		Parent:             CallingContextRef(bd.uvarint()),
	}, nil
}

type CallingContextPropertyDef struct {
	CallingContext CallingContextRef
	Name           StringRef
	Value          AttrValue
}

func (d *CallingContextPropertyDef) Type() RecordType { return RecordCallingContextProperty }
func (d *CallingContextPropertyDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.CallingContext))
	be.u32(uint32(d.Name))
	be.u8(uint8(d.Value.Type))
	encodeAttrValue(d.Value, be)
	return nil
}
func decodeCallingContextPropertyDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	cc := CallingContextRef(bd.uvarint())
	name := StringRef(bd.u32())
	t := AttrType(bd.u8())
	return &CallingContextPropertyDef{cc, name, decodeAttrValue(t, bd)}, nil
}

type InterruptGeneratorDef struct {
	Self   InterruptGeneratorRef
	Name   StringRef
	Mode   uint8
	Period uint64
}

func (d *InterruptGeneratorDef) Type() RecordType { return RecordInterruptGenerator }
func (d *InterruptGeneratorDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.Name))
	be.u8(d.Mode)
	be.uvarint(d.Period)
	return nil
}
func decodeInterruptGeneratorDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &InterruptGeneratorDef{InterruptGeneratorRef(bd.uvarint()), StringRef(bd.u32()), bd.u8(), bd.uvarint()}, nil
}

type ParadigmDef struct {
	Paradigm uint8
	Name     StringRef
	Class    uint8
}

func (d *ParadigmDef) Type() RecordType { return RecordParadigm }
func (d *ParadigmDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.u8(d.Paradigm)
	be.u32(uint32(d.Name))
	be.u8(d.Class)
	return nil
}
func decodeParadigmDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &ParadigmDef{bd.u8(), StringRef(bd.u32()), bd.u8()}, nil
}

type ParadigmPropertyDef struct {
	Paradigm uint8
	Property uint8
	Value    AttrValue
}

func (d *ParadigmPropertyDef) Type() RecordType { return RecordParadigmProperty }
func (d *ParadigmPropertyDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.u8(d.Paradigm)
	be.u8(d.Property)
	be.u8(uint8(d.Value.Type))
	encodeAttrValue(d.Value, be)
	return nil
}
func decodeParadigmPropertyDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	paradigm := bd.u8()
	property := bd.u8()
	t := AttrType(bd.u8())
	return &ParadigmPropertyDef{paradigm, property, decodeAttrValue(t, bd)}, nil
}

type AttributeDef struct {
	Self        AttributeRef
	Name        StringRef
	Description StringRef
	Type        AttrType
}

func (d *AttributeDef) Type() RecordType { return RecordAttribute }
func (d *AttributeDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(uint64(d.Self))
	be.u32(uint32(d.Name))
	be.u32(uint32(d.Description))
	be.u8(uint8(d.Type))
	return nil
}
func decodeAttributeDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &AttributeDef{AttributeRef(bd.uvarint()), StringRef(bd.u32()), StringRef(bd.u32()), AttrType(bd.u8())}, nil
}

// ClockPropertiesDef anchors the archive's single timestamp domain:
// tick resolution and the [start, length) range events are expected to
// fall within (spec.md §3).
type ClockPropertiesDef struct {
	TicksPerSecond uint64
	GlobalOffset   uint64
	TraceLength    uint64
}

func (d *ClockPropertiesDef) Type() RecordType { return RecordClockProperties }
func (d *ClockPropertiesDef) encodeBody(be *bufEncoder, wb *WriteBuffer) error {
	be.uvarint(d.TicksPerSecond)
	be.uvarint(d.GlobalOffset)
	be.uvarint(d.TraceLength)
	return nil
}
func decodeClockPropertiesDef(bd *bufDecoder, rb *ReadBuffer) (Record, error) {
	return &ClockPropertiesDef{bd.uvarint(), bd.uvarint(), bd.uvarint()}, nil
}
