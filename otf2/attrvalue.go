package otf2

// AttrType is the closed enumeration of typed attribute value kinds an
// AttributeList entry can carry (spec.md §3's "Attribute lists").
type AttrType uint8

const (
	AttrTypeUint8 AttrType = iota + 1
	AttrTypeUint16
	AttrTypeUint32
	AttrTypeUint64
	AttrTypeInt8
	AttrTypeInt16
	AttrTypeInt32
	AttrTypeInt64
	AttrTypeFloat
	AttrTypeDouble
	AttrTypeString
	AttrTypeAttribute
	AttrTypeLocation
	AttrTypeRegion
	AttrTypeGroup
	AttrTypeMetric
	AttrTypeComm
	AttrTypeParameter
	AttrTypeRmaWin
	AttrTypeSourceCodeLocation
	AttrTypeCallingContext
	AttrTypeInterruptGenerator
)

func (t AttrType) String() string {
	switch t {
	case AttrTypeUint8:
		return "UINT8"
	case AttrTypeUint16:
		return "UINT16"
	case AttrTypeUint32:
		return "UINT32"
	case AttrTypeUint64:
		return "UINT64"
	case AttrTypeInt8:
		return "INT8"
	case AttrTypeInt16:
		return "INT16"
	case AttrTypeInt32:
		return "INT32"
	case AttrTypeInt64:
		return "INT64"
	case AttrTypeFloat:
		return "FLOAT"
	case AttrTypeDouble:
		return "DOUBLE"
	case AttrTypeString:
		return "STRING"
	case AttrTypeAttribute:
		return "ATTRIBUTE"
	case AttrTypeLocation:
		return "LOCATION"
	case AttrTypeRegion:
		return "REGION"
	case AttrTypeGroup:
		return "GROUP"
	case AttrTypeMetric:
		return "METRIC"
	case AttrTypeComm:
		return "COMM"
	case AttrTypeParameter:
		return "PARAMETER"
	case AttrTypeRmaWin:
		return "RMA_WIN"
	case AttrTypeSourceCodeLocation:
		return "SOURCE_CODE_LOCATION"
	case AttrTypeCallingContext:
		return "CALLING_CONTEXT"
	case AttrTypeInterruptGenerator:
		return "INTERRUPT_GENERATOR"
	default:
		return "UNKNOWN"
	}
}

// AttrValue is a typed attribute value: exactly one of the fields below is
// meaningful, selected by Type. Reference-typed values (Location, Region,
// ...) store the raw identifier in U64.
type AttrValue struct {
	Type   AttrType
	U64    uint64
	I64    int64
	F32    float32
	F64    float64
	String StringRef
}

func attrValueUint(t AttrType, x uint64) AttrValue  { return AttrValue{Type: t, U64: x} }
func attrValueInt(t AttrType, x int64) AttrValue     { return AttrValue{Type: t, I64: x} }

func decodeAttrValue(t AttrType, bd *bufDecoder) AttrValue {
	switch t {
	case AttrTypeUint8:
		return attrValueUint(t, uint64(bd.u8()))
	case AttrTypeUint16:
		return attrValueUint(t, uint64(bd.u16()))
	case AttrTypeUint32:
		return attrValueUint(t, uint64(bd.u32()))
	case AttrTypeUint64:
		return attrValueUint(t, bd.u64())
	case AttrTypeInt8:
		return attrValueInt(t, int64(int8(bd.u8())))
	case AttrTypeInt16:
		return attrValueInt(t, int64(int16(bd.u16())))
	case AttrTypeInt32:
		return attrValueInt(t, int64(int32(bd.u32())))
	case AttrTypeInt64:
		return attrValueInt(t, int64(bd.u64()))
	case AttrTypeFloat:
		return AttrValue{Type: t, F32: bd.f32()}
	case AttrTypeDouble:
		return AttrValue{Type: t, F64: bd.f64()}
	case AttrTypeString:
		return AttrValue{Type: t, String: StringRef(bd.u32())}
	case AttrTypeAttribute, AttrTypeLocation, AttrTypeRegion, AttrTypeGroup,
		AttrTypeMetric, AttrTypeComm, AttrTypeParameter, AttrTypeRmaWin,
		AttrTypeSourceCodeLocation, AttrTypeCallingContext, AttrTypeInterruptGenerator:
		if t == AttrTypeLocation {
			return attrValueUint(t, bd.u64())
		}
		return attrValueUint(t, uint64(bd.u32()))
	default:
		panic(errIntegrityFault("unknown attribute type %d", t))
	}
}

func encodeAttrValue(v AttrValue, be *bufEncoder) {
	switch v.Type {
	case AttrTypeUint8:
		be.u8(uint8(v.U64))
	case AttrTypeUint16:
		be.u16(uint16(v.U64))
	case AttrTypeUint32:
		be.u32(uint32(v.U64))
	case AttrTypeUint64:
		be.u64(v.U64)
	case AttrTypeInt8:
		be.u8(uint8(int8(v.I64)))
	case AttrTypeInt16:
		be.u16(uint16(int16(v.I64)))
	case AttrTypeInt32:
		be.u32(uint32(int32(v.I64)))
	case AttrTypeInt64:
		be.u64(uint64(v.I64))
	case AttrTypeFloat:
		be.f32(v.F32)
	case AttrTypeDouble:
		be.f64(v.F64)
	case AttrTypeString:
		be.u32(uint32(v.String))
	case AttrTypeLocation:
		be.u64(v.U64)
	default:
		be.u32(uint32(v.U64))
	}
}

// sizeAttrValue returns the on-disk size in bytes of a value of type t.
func sizeAttrValue(t AttrType) int {
	switch t {
	case AttrTypeUint8, AttrTypeInt8:
		return 1
	case AttrTypeUint16, AttrTypeInt16:
		return 2
	case AttrTypeUint32, AttrTypeInt32, AttrTypeFloat, AttrTypeString,
		AttrTypeAttribute, AttrTypeRegion, AttrTypeGroup, AttrTypeMetric,
		AttrTypeComm, AttrTypeParameter, AttrTypeRmaWin,
		AttrTypeSourceCodeLocation, AttrTypeCallingContext,
		AttrTypeInterruptGenerator:
		return 4
	case AttrTypeUint64, AttrTypeInt64, AttrTypeDouble, AttrTypeLocation:
		return 8
	default:
		return 0
	}
}
