package otf2

// Attr is one (attribute-id, type, value) triple.
type Attr struct {
	ID    AttributeRef
	Value AttrValue
}

// AttributeList is an ordered sequence of typed attribute triples that a
// producer attaches to the next event it writes (spec.md §3/§4.3). It is
// passive state: the writer auto-emits and clears it, and the reader
// buffers an incoming AttributeList pseudo-record until the following
// event arrives. See Writer.Write and Reader.ReadEvents.
type AttributeList struct {
	attrs []Attr
}

// Type reports AttributeList's wire kind, letting it flow through the
// same Record-typed decode path as real events even though it is a
// pseudo-record consumed internally by Reader rather than handed to
// event callbacks.
func (l *AttributeList) Type() RecordType { return RecordAttributeList }

// NewAttributeList returns an empty attribute list ready for Add* calls.
func NewAttributeList() *AttributeList {
	return &AttributeList{}
}

// Len reports the number of attributes currently queued.
func (l *AttributeList) Len() int { return len(l.attrs) }

// Clear empties the list without shrinking its backing array, so a writer
// can reuse one AttributeList across many events.
func (l *AttributeList) Clear() { l.attrs = l.attrs[:0] }

// All returns the queued attributes in insertion order. The caller must
// not retain the returned slice past the next Clear/Add call.
func (l *AttributeList) All() []Attr { return l.attrs }

func (l *AttributeList) add(id AttributeRef, v AttrValue) {
	l.attrs = append(l.attrs, Attr{ID: id, Value: v})
}

func (l *AttributeList) AddUint8(id AttributeRef, x uint8)   { l.add(id, attrValueUint(AttrTypeUint8, uint64(x))) }
func (l *AttributeList) AddUint16(id AttributeRef, x uint16) { l.add(id, attrValueUint(AttrTypeUint16, uint64(x))) }
func (l *AttributeList) AddUint32(id AttributeRef, x uint32) { l.add(id, attrValueUint(AttrTypeUint32, uint64(x))) }
func (l *AttributeList) AddUint64(id AttributeRef, x uint64) { l.add(id, attrValueUint(AttrTypeUint64, x)) }
func (l *AttributeList) AddInt8(id AttributeRef, x int8)     { l.add(id, attrValueInt(AttrTypeInt8, int64(x))) }
func (l *AttributeList) AddInt16(id AttributeRef, x int16)   { l.add(id, attrValueInt(AttrTypeInt16, int64(x))) }
func (l *AttributeList) AddInt32(id AttributeRef, x int32)   { l.add(id, attrValueInt(AttrTypeInt32, int64(x))) }
func (l *AttributeList) AddInt64(id AttributeRef, x int64)   { l.add(id, attrValueInt(AttrTypeInt64, x)) }
func (l *AttributeList) AddFloat(id AttributeRef, x float32) { l.add(id, AttrValue{Type: AttrTypeFloat, F32: x}) }
func (l *AttributeList) AddDouble(id AttributeRef, x float64) {
	l.add(id, AttrValue{Type: AttrTypeDouble, F64: x})
}
func (l *AttributeList) AddString(id AttributeRef, s StringRef) {
	l.add(id, AttrValue{Type: AttrTypeString, String: s})
}
func (l *AttributeList) AddLocation(id AttributeRef, loc LocationRef) {
	l.add(id, attrValueUint(AttrTypeLocation, uint64(loc)))
}
func (l *AttributeList) AddRegion(id AttributeRef, r RegionRef) {
	l.add(id, attrValueUint(AttrTypeRegion, uint64(r)))
}
func (l *AttributeList) AddGroup(id AttributeRef, g GroupRef) {
	l.add(id, attrValueUint(AttrTypeGroup, uint64(g)))
}

// encodeAttributeList encodes the ATTRIBUTE_LIST pseudo-record body
// (count, then (attr_id, type, value) x count), per spec.md §6.
func encodeAttributeList(l *AttributeList, be *bufEncoder) {
	be.uvarint(uint64(len(l.attrs)))
	for _, a := range l.attrs {
		be.uvarint(uint64(a.ID))
		be.u8(uint8(a.Value.Type))
		encodeAttrValue(a.Value, be)
	}
}

func decodeAttributeList(bd *bufDecoder) *AttributeList {
	n := int(bd.uvarint())
	l := &AttributeList{attrs: make([]Attr, 0, n)}
	for i := 0; i < n; i++ {
		id := AttributeRef(bd.uvarint())
		t := AttrType(bd.u8())
		v := decodeAttrValue(t, bd)
		l.attrs = append(l.attrs, Attr{ID: id, Value: v})
	}
	return l
}
