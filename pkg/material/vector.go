package material

// Float vectors and matrices reuse the mgl32 types directly so attribute
// values plug into the rest of a rendering pipeline without conversion.
// Matrix payloads are stored column-major, matching both mgl32 and GLSL.
// Integer vectors and the remaining scalar kinds have no mgl32 counterpart
// and are defined here.

// Deg is an angle in degrees. It is a distinct type so a degree payload
// cannot be read back as a plain float or confused with a radian one.
type Deg float32

// Rad is an angle in radians.
type Rad float32

// Pointer is an opaque host address used to hand objects between systems
// inside one process. The store never dereferences it.
type Pointer uintptr

// MutablePointer is a Pointer to memory the consumer may write through.
type MutablePointer uintptr

// Int vector payloads, component order x, y, z, w.
type (
	Vector2i  [2]int32
	Vector3i  [3]int32
	Vector4i  [4]int32
	Vector2ui [2]uint32
	Vector3ui [3]uint32
	Vector4ui [4]uint32
)
