package material

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/matforge/matforge/pkg/errors"
	"github.com/matforge/matforge/pkg/logger"
	stringpool "github.com/matforge/matforge/pkg/strings"
)

// RecordSize is the fixed footprint of one attribute record. Name and
// payload share the space left after the type tag, so a longer name shrinks
// the room available to the value and vice versa.
const RecordSize = 64

// Attribute is a single name/value pair. Its in-memory form is the exact 64
// bytes a container file stores, which lets a decoder hand out views into a
// mapped file without copying anything.
//
// Layout within the record:
//
//	0            type tag
//	1..          name, NUL-terminated
//
// then depending on the tag:
//
//	fixed types  payload right-aligned to the record end
//	String       payload ending at byte 61, NUL at 62, length at 63
//	Buffer       length in the byte after the name NUL, payload
//	             right-aligned to the record end
//
// Bytes between the name terminator and the payload are zero. A name plus a
// fixed payload may fill up to 62 bytes, a string payload up to 60 shared
// with the name, a buffer payload up to 61 shared with the name.
type Attribute struct {
	data [RecordSize]byte
}

// Type returns the payload type tag. Zero means the record was never
// assigned, which constructors reject.
func (a *Attribute) Type() AttributeType {
	return AttributeType(a.data[0])
}

// Name returns the attribute name. The string aliases the record, it stays
// valid as long as the record does.
func (a *Attribute) Name() string {
	return stringpool.BytesToString(a.nameBytes())
}

func (a *Attribute) nameBytes() []byte {
	n := bytes.IndexByte(a.data[1:], 0)
	if n < 0 {
		return nil
	}
	return a.data[1 : 1+n]
}

func (a *Attribute) nameLen() int {
	n := bytes.IndexByte(a.data[1:], 0)
	if n < 0 {
		return 0
	}
	return n
}

// typeOf maps a Go value onto its attribute type tag.
func typeOf(value interface{}) (AttributeType, bool) {
	switch value.(type) {
	case bool:
		return TypeBool, true
	case float32:
		return TypeFloat, true
	case Deg:
		return TypeDeg, true
	case Rad:
		return TypeRad, true
	case uint32:
		return TypeUnsignedInt, true
	case int32:
		return TypeInt, true
	case uint64:
		return TypeUnsignedLong, true
	case int64:
		return TypeLong, true
	case mgl32.Vec2:
		return TypeVector2, true
	case Vector2ui:
		return TypeVector2ui, true
	case Vector2i:
		return TypeVector2i, true
	case mgl32.Vec3:
		return TypeVector3, true
	case Vector3ui:
		return TypeVector3ui, true
	case Vector3i:
		return TypeVector3i, true
	case mgl32.Vec4:
		return TypeVector4, true
	case Vector4ui:
		return TypeVector4ui, true
	case Vector4i:
		return TypeVector4i, true
	case mgl32.Mat2:
		return TypeMatrix2x2, true
	case mgl32.Mat2x3:
		return TypeMatrix2x3, true
	case mgl32.Mat2x4:
		return TypeMatrix2x4, true
	case mgl32.Mat3x2:
		return TypeMatrix3x2, true
	case mgl32.Mat3:
		return TypeMatrix3x3, true
	case mgl32.Mat3x4:
		return TypeMatrix3x4, true
	case mgl32.Mat4x2:
		return TypeMatrix4x2, true
	case mgl32.Mat4x3:
		return TypeMatrix4x3, true
	case Pointer:
		return TypePointer, true
	case MutablePointer:
		return TypeMutablePointer, true
	case string:
		return TypeString, true
	case TextureSwizzle:
		return TypeTextureSwizzle, true
	case []byte:
		return TypeBuffer, true
	}
	return 0, false
}

// NewAttribute creates an attribute, deriving the type tag from the Go type
// of the value. Integer scalars must be sized explicitly (uint32, int64 and
// so on), plain int is rejected to keep the stored width unambiguous.
func NewAttribute(name string, value interface{}) (Attribute, error) {
	t, ok := typeOf(value)
	if !ok {
		return Attribute{}, errors.Newf(errors.ErrorTypeContract,
			"unsupported attribute value type %T for %s", value, name)
	}
	return NewAttributeTyped(name, t, value)
}

// NewAttributeTyped creates an attribute with an explicit type tag, which
// must agree with the Go type of the value. Useful when the tag comes from
// parsed input and the agreement should be asserted rather than inferred.
func NewAttributeTyped(name string, t AttributeType, value interface{}) (Attribute, error) {
	if name == "" {
		return Attribute{}, errors.New(errors.ErrorTypeContract, "attribute name must not be empty")
	}
	if strings.IndexByte(name, 0) >= 0 {
		return Attribute{}, errors.Newf(errors.ErrorTypeContract,
			"attribute name %q must not contain a NUL byte", name)
	}
	// A leading space marks reserved names that sort before every custom
	// attribute. The only such name is the layer-name key.
	if name[0] == ' ' && name != LayerNameAttribute {
		return Attribute{}, errors.Newf(errors.ErrorTypeContract,
			"attribute name %q must not begin with a space", name)
	}
	vt, ok := typeOf(value)
	if !ok {
		return Attribute{}, errors.Newf(errors.ErrorTypeContract,
			"unsupported attribute value type %T for %s", value, name)
	}
	if vt != t {
		return Attribute{}, errors.Newf(errors.ErrorTypeContract,
			"attribute value of type %T does not encode as %s", value, t)
	}

	var a Attribute
	a.data[0] = byte(t)
	switch t {
	case TypeString:
		s := value.(string)
		if len(name)+len(s)+4 > RecordSize {
			return Attribute{}, overflowErr(name, len(s))
		}
		copy(a.data[1:], name)
		copy(a.data[RecordSize-2-len(s):RecordSize-2], s)
		a.data[RecordSize-1] = byte(len(s))
	case TypeBuffer:
		b := value.([]byte)
		if len(name)+len(b)+3 > RecordSize {
			return Attribute{}, overflowErr(name, len(b))
		}
		copy(a.data[1:], name)
		a.data[len(name)+2] = byte(len(b))
		copy(a.data[RecordSize-len(b):], b)
	default:
		size, err := TypeSize(t)
		if err != nil {
			return Attribute{}, err
		}
		if len(name)+size+2 > RecordSize {
			return Attribute{}, overflowErr(name, size)
		}
		copy(a.data[1:], name)
		encodeFixed(a.data[RecordSize-size:], value)
	}
	return a, nil
}

// NewAttributeOf creates a well-known attribute, enforcing the payload type
// the catalog prescribes for it.
func NewAttributeOf(id Attr, value interface{}) (Attribute, error) {
	info, ok := attrCatalog[id]
	if !ok {
		return Attribute{}, errors.Newf(errors.ErrorTypeContract, "unknown attribute id %d", uint8(id))
	}
	t, tok := typeOf(value)
	if !tok {
		return Attribute{}, errors.Newf(errors.ErrorTypeContract,
			"unsupported attribute value type %T for %s", value, info.name)
	}
	if t != info.typ {
		return Attribute{}, errors.Newf(errors.ErrorTypeContract,
			"expected %s for %s but got %s", info.typ, info.name, t)
	}
	return NewAttributeTyped(info.name, t, value)
}

// NewLayerNameAttribute creates the reserved attribute that names a layer.
func NewLayerNameAttribute(name string) (Attribute, error) {
	return NewAttributeTyped(LayerNameAttribute, TypeString, name)
}

func overflowErr(name string, payloadLen int) error {
	return errors.New(errors.ErrorTypeContract, "attribute name and payload too long for a record").
		WithDetail("name", name).
		WithDetail("nameLength", len(name)).
		WithDetail("payloadLength", payloadLen).
		WithDetail("recordSize", RecordSize)
}

// validate checks the internal consistency of a single record, used when
// accepting storage that this package did not build itself.
func (a *Attribute) validate() error {
	t := a.Type()
	if t == 0 {
		return errors.New(errors.ErrorTypeContract, "attribute record has no type set")
	}
	if t > TypeBuffer {
		return errors.Newf(errors.ErrorTypeContract, "unknown attribute type tag %d", uint8(t))
	}
	n := bytes.IndexByte(a.data[1:], 0)
	if n < 0 {
		return errors.New(errors.ErrorTypeContract, "attribute name is not terminated")
	}
	if n == 0 {
		return errors.New(errors.ErrorTypeContract, "attribute name must not be empty")
	}
	switch t {
	case TypeString:
		vlen := int(a.data[RecordSize-1])
		if n+vlen+4 > RecordSize || a.data[RecordSize-2] != 0 {
			return errors.Newf(errors.ErrorTypeContract,
				"string payload of %d bytes overflows the record for %q", vlen, a.Name())
		}
	case TypeBuffer:
		vlen := int(a.data[n+2])
		if n+vlen+3 > RecordSize {
			return errors.Newf(errors.ErrorTypeContract,
				"buffer payload of %d bytes overflows the record for %q", vlen, a.Name())
		}
	default:
		size, err := TypeSize(t)
		if err != nil {
			return err
		}
		if n+size+2 > RecordSize {
			return errors.Newf(errors.ErrorTypeContract,
				"%s payload overflows the record for %q", t, a.Name())
		}
	}
	return nil
}

func (a *Attribute) expect(t AttributeType) bool {
	if AttributeType(a.data[0]) == t {
		return true
	}
	logger.Error("attribute read with wrong type",
		zap.String("name", a.Name()),
		zap.Stringer("stored", a.Type()),
		zap.Stringer("requested", t))
	return false
}

func (a *Attribute) payload(size int) []byte {
	return a.data[RecordSize-size:]
}

// Bool returns a TypeBool payload, false on a type mismatch.
func (a *Attribute) Bool() bool {
	if !a.expect(TypeBool) {
		return false
	}
	return a.data[RecordSize-1] != 0
}

// Float returns a TypeFloat payload. Each getter below follows the same
// contract: the stored tag must match, otherwise the mismatch is logged and
// the zero value returned.
func (a *Attribute) Float() float32 {
	if !a.expect(TypeFloat) {
		return 0
	}
	return getF32(a.payload(4), 0)
}

// Deg returns a TypeDeg payload.
func (a *Attribute) Deg() Deg {
	if !a.expect(TypeDeg) {
		return 0
	}
	return Deg(getF32(a.payload(4), 0))
}

// Rad returns a TypeRad payload.
func (a *Attribute) Rad() Rad {
	if !a.expect(TypeRad) {
		return 0
	}
	return Rad(getF32(a.payload(4), 0))
}

// Uint32 returns a TypeUnsignedInt payload.
func (a *Attribute) Uint32() uint32 {
	if !a.expect(TypeUnsignedInt) {
		return 0
	}
	return getU32(a.payload(4), 0)
}

// Int32 returns a TypeInt payload.
func (a *Attribute) Int32() int32 {
	if !a.expect(TypeInt) {
		return 0
	}
	return getI32(a.payload(4), 0)
}

// Uint64 returns a TypeUnsignedLong payload.
func (a *Attribute) Uint64() uint64 {
	if !a.expect(TypeUnsignedLong) {
		return 0
	}
	return binary.LittleEndian.Uint64(a.payload(8))
}

// Int64 returns a TypeLong payload.
func (a *Attribute) Int64() int64 {
	if !a.expect(TypeLong) {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(a.payload(8)))
}

// Vec2 returns a TypeVector2 payload.
func (a *Attribute) Vec2() mgl32.Vec2 {
	var v mgl32.Vec2
	if !a.expect(TypeVector2) {
		return v
	}
	decodeF32s(a.payload(8), v[:])
	return v
}

// Vec2ui returns a TypeVector2ui payload.
func (a *Attribute) Vec2ui() Vector2ui {
	var v Vector2ui
	if !a.expect(TypeVector2ui) {
		return v
	}
	decodeU32s(a.payload(8), v[:])
	return v
}

// Vec2i returns a TypeVector2i payload.
func (a *Attribute) Vec2i() Vector2i {
	var v Vector2i
	if !a.expect(TypeVector2i) {
		return v
	}
	decodeI32s(a.payload(8), v[:])
	return v
}

// Vec3 returns a TypeVector3 payload.
func (a *Attribute) Vec3() mgl32.Vec3 {
	var v mgl32.Vec3
	if !a.expect(TypeVector3) {
		return v
	}
	decodeF32s(a.payload(12), v[:])
	return v
}

// Vec3ui returns a TypeVector3ui payload.
func (a *Attribute) Vec3ui() Vector3ui {
	var v Vector3ui
	if !a.expect(TypeVector3ui) {
		return v
	}
	decodeU32s(a.payload(12), v[:])
	return v
}

// Vec3i returns a TypeVector3i payload.
func (a *Attribute) Vec3i() Vector3i {
	var v Vector3i
	if !a.expect(TypeVector3i) {
		return v
	}
	decodeI32s(a.payload(12), v[:])
	return v
}

// Vec4 returns a TypeVector4 payload.
func (a *Attribute) Vec4() mgl32.Vec4 {
	var v mgl32.Vec4
	if !a.expect(TypeVector4) {
		return v
	}
	decodeF32s(a.payload(16), v[:])
	return v
}

// Vec4ui returns a TypeVector4ui payload.
func (a *Attribute) Vec4ui() Vector4ui {
	var v Vector4ui
	if !a.expect(TypeVector4ui) {
		return v
	}
	decodeU32s(a.payload(16), v[:])
	return v
}

// Vec4i returns a TypeVector4i payload.
func (a *Attribute) Vec4i() Vector4i {
	var v Vector4i
	if !a.expect(TypeVector4i) {
		return v
	}
	decodeI32s(a.payload(16), v[:])
	return v
}

// Mat2 returns a TypeMatrix2x2 payload.
func (a *Attribute) Mat2() mgl32.Mat2 {
	var m mgl32.Mat2
	if !a.expect(TypeMatrix2x2) {
		return m
	}
	decodeF32s(a.payload(16), m[:])
	return m
}

// Mat2x3 returns a TypeMatrix2x3 payload.
func (a *Attribute) Mat2x3() mgl32.Mat2x3 {
	var m mgl32.Mat2x3
	if !a.expect(TypeMatrix2x3) {
		return m
	}
	decodeF32s(a.payload(24), m[:])
	return m
}

// Mat2x4 returns a TypeMatrix2x4 payload.
func (a *Attribute) Mat2x4() mgl32.Mat2x4 {
	var m mgl32.Mat2x4
	if !a.expect(TypeMatrix2x4) {
		return m
	}
	decodeF32s(a.payload(32), m[:])
	return m
}

// Mat3x2 returns a TypeMatrix3x2 payload.
func (a *Attribute) Mat3x2() mgl32.Mat3x2 {
	var m mgl32.Mat3x2
	if !a.expect(TypeMatrix3x2) {
		return m
	}
	decodeF32s(a.payload(24), m[:])
	return m
}

// Mat3 returns a TypeMatrix3x3 payload.
func (a *Attribute) Mat3() mgl32.Mat3 {
	var m mgl32.Mat3
	if !a.expect(TypeMatrix3x3) {
		return m
	}
	decodeF32s(a.payload(36), m[:])
	return m
}

// Mat3x4 returns a TypeMatrix3x4 payload.
func (a *Attribute) Mat3x4() mgl32.Mat3x4 {
	var m mgl32.Mat3x4
	if !a.expect(TypeMatrix3x4) {
		return m
	}
	decodeF32s(a.payload(48), m[:])
	return m
}

// Mat4x2 returns a TypeMatrix4x2 payload.
func (a *Attribute) Mat4x2() mgl32.Mat4x2 {
	var m mgl32.Mat4x2
	if !a.expect(TypeMatrix4x2) {
		return m
	}
	decodeF32s(a.payload(32), m[:])
	return m
}

// Mat4x3 returns a TypeMatrix4x3 payload.
func (a *Attribute) Mat4x3() mgl32.Mat4x3 {
	var m mgl32.Mat4x3
	if !a.expect(TypeMatrix4x3) {
		return m
	}
	decodeF32s(a.payload(48), m[:])
	return m
}

// Pointer returns a TypePointer payload.
func (a *Attribute) Pointer() Pointer {
	if !a.expect(TypePointer) {
		return 0
	}
	return Pointer(binary.LittleEndian.Uint64(a.payload(8)))
}

// MutablePointer returns a TypeMutablePointer payload.
func (a *Attribute) MutablePointer() MutablePointer {
	if !a.expect(TypeMutablePointer) {
		return 0
	}
	return MutablePointer(binary.LittleEndian.Uint64(a.payload(8)))
}

// StringValue returns a TypeString payload. The string aliases the record.
func (a *Attribute) StringValue() string {
	if !a.expect(TypeString) {
		return ""
	}
	n := int(a.data[RecordSize-1])
	return stringpool.BytesToString(a.data[RecordSize-2-n : RecordSize-2])
}

// Swizzle returns a TypeTextureSwizzle payload.
func (a *Attribute) Swizzle() TextureSwizzle {
	if !a.expect(TypeTextureSwizzle) {
		return 0
	}
	return TextureSwizzle(getU32(a.payload(4), 0))
}

// Buffer returns a TypeBuffer payload. The slice aliases the record.
func (a *Attribute) Buffer() []byte {
	if !a.expect(TypeBuffer) {
		return nil
	}
	n := int(a.data[a.nameLen()+2])
	return a.data[RecordSize-n:]
}

// Record returns the raw record bytes, exactly what a container file
// stores for this attribute.
func (a *Attribute) Record() [RecordSize]byte {
	return a.data
}

// FromRecord reinterprets raw record bytes as an attribute. Nothing is
// checked here, a record entering a material is validated by New or Wrap.
func FromRecord(record [RecordSize]byte) Attribute {
	return Attribute{data: record}
}

// Value returns the payload boxed in its Go type, nil for an unset record.
func (a *Attribute) Value() interface{} {
	switch a.Type() {
	case TypeBool:
		return a.Bool()
	case TypeFloat:
		return a.Float()
	case TypeDeg:
		return a.Deg()
	case TypeRad:
		return a.Rad()
	case TypeUnsignedInt:
		return a.Uint32()
	case TypeInt:
		return a.Int32()
	case TypeUnsignedLong:
		return a.Uint64()
	case TypeLong:
		return a.Int64()
	case TypeVector2:
		return a.Vec2()
	case TypeVector2ui:
		return a.Vec2ui()
	case TypeVector2i:
		return a.Vec2i()
	case TypeVector3:
		return a.Vec3()
	case TypeVector3ui:
		return a.Vec3ui()
	case TypeVector3i:
		return a.Vec3i()
	case TypeVector4:
		return a.Vec4()
	case TypeVector4ui:
		return a.Vec4ui()
	case TypeVector4i:
		return a.Vec4i()
	case TypeMatrix2x2:
		return a.Mat2()
	case TypeMatrix2x3:
		return a.Mat2x3()
	case TypeMatrix2x4:
		return a.Mat2x4()
	case TypeMatrix3x2:
		return a.Mat3x2()
	case TypeMatrix3x3:
		return a.Mat3()
	case TypeMatrix3x4:
		return a.Mat3x4()
	case TypeMatrix4x2:
		return a.Mat4x2()
	case TypeMatrix4x3:
		return a.Mat4x3()
	case TypePointer:
		return a.Pointer()
	case TypeMutablePointer:
		return a.MutablePointer()
	case TypeString:
		return a.StringValue()
	case TypeTextureSwizzle:
		return a.Swizzle()
	case TypeBuffer:
		return a.Buffer()
	}
	return nil
}

// Set replaces the payload in place. The value must match the stored type,
// and string and buffer payloads must keep their byte length because a
// record never moves its name or resizes. Reachable for stored attributes
// only through Material.MutableAttribute.
func (a *Attribute) Set(value interface{}) error {
	t, ok := typeOf(value)
	if !ok {
		return errors.Newf(errors.ErrorTypeContract,
			"unsupported attribute value type %T for %s", value, a.Name())
	}
	if t != a.Type() {
		return errors.Newf(errors.ErrorTypeContract,
			"attribute %s stores %s, cannot write %s", a.Name(), a.Type(), t)
	}
	switch t {
	case TypeString:
		s := value.(string)
		n := int(a.data[RecordSize-1])
		if len(s) != n {
			return errors.Newf(errors.ErrorTypeContract,
				"replacement string for %s must keep the %d byte length, got %d", a.Name(), n, len(s))
		}
		copy(a.data[RecordSize-2-n:RecordSize-2], s)
	case TypeBuffer:
		b := value.([]byte)
		n := int(a.data[a.nameLen()+2])
		if len(b) != n {
			return errors.Newf(errors.ErrorTypeContract,
				"replacement buffer for %s must keep the %d byte length, got %d", a.Name(), n, len(b))
		}
		copy(a.data[RecordSize-n:], b)
	default:
		size, err := TypeSize(t)
		if err != nil {
			return err
		}
		encodeFixed(a.data[RecordSize-size:], value)
	}
	return nil
}

// encodeFixed writes a fixed-size value into dst, which must already be
// sized for the type. Scalars wider than a byte are little-endian; this and
// the matching get helpers are the only place payload bytes are
// interpreted.
func encodeFixed(dst []byte, value interface{}) {
	switch v := value.(type) {
	case bool:
		if v {
			dst[0] = 1
		} else {
			dst[0] = 0
		}
	case float32:
		putF32(dst, 0, v)
	case Deg:
		putF32(dst, 0, float32(v))
	case Rad:
		putF32(dst, 0, float32(v))
	case uint32:
		putU32(dst, 0, v)
	case int32:
		putI32(dst, 0, v)
	case uint64:
		binary.LittleEndian.PutUint64(dst, v)
	case int64:
		binary.LittleEndian.PutUint64(dst, uint64(v))
	case Pointer:
		binary.LittleEndian.PutUint64(dst, uint64(v))
	case MutablePointer:
		binary.LittleEndian.PutUint64(dst, uint64(v))
	case TextureSwizzle:
		putU32(dst, 0, uint32(v))
	case mgl32.Vec2:
		encodeF32s(dst, v[:])
	case Vector2ui:
		encodeU32s(dst, v[:])
	case Vector2i:
		encodeI32s(dst, v[:])
	case mgl32.Vec3:
		encodeF32s(dst, v[:])
	case Vector3ui:
		encodeU32s(dst, v[:])
	case Vector3i:
		encodeI32s(dst, v[:])
	case mgl32.Vec4:
		encodeF32s(dst, v[:])
	case Vector4ui:
		encodeU32s(dst, v[:])
	case Vector4i:
		encodeI32s(dst, v[:])
	case mgl32.Mat2:
		encodeF32s(dst, v[:])
	case mgl32.Mat2x3:
		encodeF32s(dst, v[:])
	case mgl32.Mat2x4:
		encodeF32s(dst, v[:])
	case mgl32.Mat3x2:
		encodeF32s(dst, v[:])
	case mgl32.Mat3:
		encodeF32s(dst, v[:])
	case mgl32.Mat3x4:
		encodeF32s(dst, v[:])
	case mgl32.Mat4x2:
		encodeF32s(dst, v[:])
	case mgl32.Mat4x3:
		encodeF32s(dst, v[:])
	}
}

func putF32(dst []byte, i int, v float32) {
	binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(v))
}

func putU32(dst []byte, i int, v uint32) {
	binary.LittleEndian.PutUint32(dst[4*i:], v)
}

func putI32(dst []byte, i int, v int32) {
	binary.LittleEndian.PutUint32(dst[4*i:], uint32(v))
}

func getF32(src []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(src[4*i:]))
}

func getU32(src []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(src[4*i:])
}

func getI32(src []byte, i int) int32 {
	return int32(binary.LittleEndian.Uint32(src[4*i:]))
}

func encodeF32s(dst []byte, src []float32) {
	for i, v := range src {
		putF32(dst, i, v)
	}
}

func encodeU32s(dst []byte, src []uint32) {
	for i, v := range src {
		putU32(dst, i, v)
	}
}

func encodeI32s(dst []byte, src []int32) {
	for i, v := range src {
		putI32(dst, i, v)
	}
}

func decodeF32s(src []byte, dst []float32) {
	for i := range dst {
		dst[i] = getF32(src, i)
	}
}

func decodeU32s(src []byte, dst []uint32) {
	for i := range dst {
		dst[i] = getU32(src, i)
	}
}

func decodeI32s(src []byte, dst []int32) {
	for i := range dst {
		dst[i] = getI32(src, i)
	}
}

// AttributeBytes reinterprets a record slice as raw bytes without copying.
// Container encoders use it to write attribute storage out verbatim.
func AttributeBytes(attrs []Attribute) []byte {
	if len(attrs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&attrs[0])), len(attrs)*RecordSize)
}

// AttributesFromBytes is the inverse of AttributeBytes, viewing raw bytes
// as records without copying. Attribute has byte alignment so any offset is
// fine; the data must be a whole number of records. Record contents are not
// checked here, constructing a Material does that.
func AttributesFromBytes(data []byte) ([]Attribute, error) {
	if len(data)%RecordSize != 0 {
		return nil, errors.Newf(errors.ErrorTypeFormat,
			"attribute data of %d bytes is not a multiple of the %d byte record size", len(data), RecordSize)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*Attribute)(unsafe.Pointer(&data[0])), len(data)/RecordSize), nil
}
