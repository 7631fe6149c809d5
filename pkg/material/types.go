package material

import (
	"github.com/matforge/matforge/pkg/errors"
	stringpool "github.com/matforge/matforge/pkg/strings"
)

// AttributeType is the payload type tag stored in byte 0 of every attribute
// record. The zero value marks an unset record and never appears in a
// validated material.
type AttributeType uint8

const (
	// TypeBool stores a single byte, any non-zero value reads as true.
	TypeBool AttributeType = iota + 1
	// TypeFloat stores one 32-bit IEEE 754 float.
	TypeFloat
	// TypeDeg stores an angle in degrees as a 32-bit float.
	TypeDeg
	// TypeRad stores an angle in radians as a 32-bit float.
	TypeRad
	TypeUnsignedInt
	TypeInt
	TypeUnsignedLong
	TypeLong
	TypeVector2
	TypeVector2ui
	TypeVector2i
	TypeVector3
	TypeVector3ui
	TypeVector3i
	TypeVector4
	TypeVector4ui
	TypeVector4i
	TypeMatrix2x2
	TypeMatrix2x3
	TypeMatrix2x4
	TypeMatrix3x2
	TypeMatrix3x3
	TypeMatrix3x4
	TypeMatrix4x2
	TypeMatrix4x3
	// TypePointer stores an opaque host address. The value is never
	// dereferenced by this package and is meaningless outside the process
	// that produced it.
	TypePointer
	// TypeMutablePointer is TypePointer without the const promise.
	TypeMutablePointer
	// TypeString stores a variable-length byte string. The payload shares
	// record space with the attribute name, see Attribute for the layout.
	TypeString
	// TypeTextureSwizzle stores a TextureSwizzle channel selector.
	TypeTextureSwizzle
	// TypeBuffer stores a variable-length opaque byte payload.
	TypeBuffer
)

// typeNames is indexed by AttributeType. Names match the serialized form
// used by the text formats.
var typeNames = [...]string{
	TypeBool:           "Bool",
	TypeFloat:          "Float",
	TypeDeg:            "Deg",
	TypeRad:            "Rad",
	TypeUnsignedInt:    "UnsignedInt",
	TypeInt:            "Int",
	TypeUnsignedLong:   "UnsignedLong",
	TypeLong:           "Long",
	TypeVector2:        "Vector2",
	TypeVector2ui:      "Vector2ui",
	TypeVector2i:       "Vector2i",
	TypeVector3:        "Vector3",
	TypeVector3ui:      "Vector3ui",
	TypeVector3i:       "Vector3i",
	TypeVector4:        "Vector4",
	TypeVector4ui:      "Vector4ui",
	TypeVector4i:       "Vector4i",
	TypeMatrix2x2:      "Matrix2x2",
	TypeMatrix2x3:      "Matrix2x3",
	TypeMatrix2x4:      "Matrix2x4",
	TypeMatrix3x2:      "Matrix3x2",
	TypeMatrix3x3:      "Matrix3x3",
	TypeMatrix3x4:      "Matrix3x4",
	TypeMatrix4x2:      "Matrix4x2",
	TypeMatrix4x3:      "Matrix4x3",
	TypePointer:        "Pointer",
	TypeMutablePointer: "MutablePointer",
	TypeString:         "String",
	TypeTextureSwizzle: "TextureSwizzle",
	TypeBuffer:         "Buffer",
}

// typeSizes holds payload sizes for fixed-size types, zero for variable and
// invalid ones.
var typeSizes = [...]int{
	TypeBool:           1,
	TypeFloat:          4,
	TypeDeg:            4,
	TypeRad:            4,
	TypeUnsignedInt:    4,
	TypeInt:            4,
	TypeUnsignedLong:   8,
	TypeLong:           8,
	TypeVector2:        8,
	TypeVector2ui:      8,
	TypeVector2i:       8,
	TypeVector3:        12,
	TypeVector3ui:      12,
	TypeVector3i:       12,
	TypeVector4:        16,
	TypeVector4ui:      16,
	TypeVector4i:       16,
	TypeMatrix2x2:      16,
	TypeMatrix2x3:      24,
	TypeMatrix2x4:      32,
	TypeMatrix3x2:      24,
	TypeMatrix3x3:      36,
	TypeMatrix3x4:      48,
	TypeMatrix4x2:      32,
	TypeMatrix4x3:      48,
	TypePointer:        8,
	TypeMutablePointer: 8,
	TypeString:         0,
	TypeTextureSwizzle: 4,
	TypeBuffer:         0,
}

var typesByName = make(map[string]AttributeType, len(typeNames))

func init() {
	for t, name := range typeNames {
		if name != "" {
			typesByName[name] = AttributeType(t)
		}
	}
}

// String returns the canonical type name, e.g. "Vector3".
func (t AttributeType) String() string {
	if int(t) < len(typeNames) && typeNames[t] != "" {
		return typeNames[t]
	}
	return stringpool.Sprintf("AttributeType(%d)", uint8(t))
}

// ParseAttributeType is the inverse of AttributeType.String.
func ParseAttributeType(name string) (AttributeType, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// TypeSize returns the payload size in bytes of a fixed-size type. String
// and Buffer payloads are variable so asking for their size is a contract
// violation, as is an invalid tag.
func TypeSize(t AttributeType) (int, error) {
	if t == 0 || int(t) >= len(typeSizes) {
		return 0, errors.Newf(errors.ErrorTypeContract, "invalid attribute type %s", t)
	}
	if typeSizes[t] == 0 {
		return 0, errors.Newf(errors.ErrorTypeContract, "size of %s is not fixed", t)
	}
	return typeSizes[t], nil
}

// DataFlag describes who owns a material's backing storage and whether it
// may be written through.
type DataFlag uint8

const (
	// DataFlagOwned means the material owns the storage and it lives as
	// long as the material does. Wrapped storage never carries this flag.
	DataFlagOwned DataFlag = 1 << iota
	// DataFlagMutable permits in-place payload writes through
	// MutableAttribute. Owned storage is always mutable.
	DataFlagMutable
)

// DataFlags is a set of DataFlag values.
type DataFlags uint8

// Has reports whether every flag in f is set.
func (f DataFlags) Has(flag DataFlag) bool {
	return f&DataFlags(flag) == DataFlags(flag)
}

func (f DataFlags) String() string {
	if f == 0 {
		return "None"
	}
	b := stringpool.GetBuilder()
	defer stringpool.PutBuilder(b)
	if f.Has(DataFlagOwned) {
		b.WriteString("Owned")
	}
	if f.Has(DataFlagMutable) {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString("Mutable")
	}
	return b.String()
}

// MaterialType is a broad classification of what shading model a material
// is intended for. A material can advertise several at once.
type MaterialType uint32

const (
	Flat MaterialType = 1 << iota
	Phong
	PbrMetallicRoughness
	PbrSpecularGlossiness
	PbrClearCoat
)

var materialTypeNames = []struct {
	t    MaterialType
	name string
}{
	{Flat, "Flat"},
	{Phong, "Phong"},
	{PbrMetallicRoughness, "PbrMetallicRoughness"},
	{PbrSpecularGlossiness, "PbrSpecularGlossiness"},
	{PbrClearCoat, "PbrClearCoat"},
}

func (t MaterialType) String() string {
	for _, e := range materialTypeNames {
		if e.t == t {
			return e.name
		}
	}
	return stringpool.Sprintf("MaterialType(%d)", uint32(t))
}

// MaterialTypes is a set of MaterialType bits.
type MaterialTypes uint32

// Is reports whether the set contains t.
func (m MaterialTypes) Is(t MaterialType) bool {
	return m&MaterialTypes(t) != 0
}

func (m MaterialTypes) String() string {
	if m == 0 {
		return "None"
	}
	b := stringpool.GetBuilder()
	defer stringpool.PutBuilder(b)
	for _, e := range materialTypeNames {
		if !m.Is(e.t) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(e.name)
	}
	return b.String()
}

// ParseMaterialType resolves a single type name, e.g. "PbrClearCoat".
func ParseMaterialType(name string) (MaterialType, bool) {
	for _, e := range materialTypeNames {
		if e.name == name {
			return e.t, true
		}
	}
	return 0, false
}

// AlphaMode is the tri-state alpha handling derived from the AlphaBlend and
// AlphaMask attributes of the base layer.
type AlphaMode uint8

const (
	// AlphaModeOpaque ignores the alpha channel entirely.
	AlphaModeOpaque AlphaMode = iota
	// AlphaModeMask cuts fragments whose alpha falls below the mask
	// threshold, see Material.AlphaMask.
	AlphaModeMask
	// AlphaModeBlend blends translucent fragments over the background.
	AlphaModeBlend
)

func (m AlphaMode) String() string {
	switch m {
	case AlphaModeOpaque:
		return "Opaque"
	case AlphaModeMask:
		return "Mask"
	case AlphaModeBlend:
		return "Blend"
	}
	return stringpool.Sprintf("AlphaMode(%d)", uint8(m))
}
