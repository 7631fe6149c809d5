package material

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matforge/matforge/pkg/errors"
	"github.com/matforge/matforge/pkg/testutil"
)

func mustAttribute(t *testing.T, name string, value interface{}) Attribute {
	t.Helper()
	a, err := NewAttribute(name, value)
	require.NoError(t, err)
	return a
}

func mustAttributeOf(t *testing.T, id Attr, value interface{}) Attribute {
	t.Helper()
	a, err := NewAttributeOf(id, value)
	require.NoError(t, err)
	return a
}

func TestNewAttribute_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		attr  string
		value interface{}
		typ   AttributeType
	}{
		{"bool", "DoubleSided", true, TypeBool},
		{"float", "Roughness", float32(0.67), TypeFloat},
		{"deg", "ConeAngle", Deg(25), TypeDeg},
		{"rad", "Twist", Rad(0.44), TypeRad},
		{"unsigned int", "BaseColorTexture", uint32(0xdeadbeef), TypeUnsignedInt},
		{"int", "TemperatureBias", int32(-17), TypeInt},
		{"unsigned long", "ContentHash", uint64(0xfeedfacecafebeef), TypeUnsignedLong},
		{"long", "RevisionStamp", int64(-9000000000), TypeLong},
		{"vector2", "UvScale", mgl32.Vec2{2, 3}, TypeVector2},
		{"vector2ui", "AtlasCell", Vector2ui{7, 11}, TypeVector2ui},
		{"vector2i", "PixelOffset", Vector2i{-4, 9}, TypeVector2i},
		{"vector3", "WindDirection", mgl32.Vec3{0.5, 0.25, 0.125}, TypeVector3},
		{"vector3ui", "VolumeExtent", Vector3ui{64, 32, 16}, TypeVector3ui},
		{"vector3i", "ChunkOrigin", Vector3i{-1, 0, 1}, TypeVector3i},
		{"vector4", "BaseColor", mgl32.Vec4{0.3, 0.4, 0.5, 1}, TypeVector4},
		{"vector4ui", "ChannelMap", Vector4ui{0, 1, 2, 3}, TypeVector4ui},
		{"vector4i", "BorderWidths", Vector4i{1, -2, 3, -4}, TypeVector4i},
		{"matrix2x2", "ShearUv", mgl32.Mat2{1, 2, 3, 4}, TypeMatrix2x2},
		{"matrix2x3", "FitPlane", mgl32.Mat2x3{1, 2, 3, 4, 5, 6}, TypeMatrix2x3},
		{"matrix2x4", "DualQuat", mgl32.Mat2x4{1, 2, 3, 4, 5, 6, 7, 8}, TypeMatrix2x4},
		{"matrix3x2", "UvAffine", mgl32.Mat3x2{1, 2, 3, 4, 5, 6}, TypeMatrix3x2},
		{"matrix3x3", "TextureMatrix", mgl32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, TypeMatrix3x3},
		{"matrix3x4", "DeformBasis", mgl32.Mat3x4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, TypeMatrix3x4},
		{"matrix4x2", "FogPlanes", mgl32.Mat4x2{1, 2, 3, 4, 5, 6, 7, 8}, TypeMatrix4x2},
		{"matrix4x3", "BoneOffsets", mgl32.Mat4x3{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, TypeMatrix4x3},
		{"pointer", "ShaderHandle", Pointer(0x7f00beef), TypePointer},
		{"mutable pointer", "ScratchBuffer", MutablePointer(0x7f00f00d), TypeMutablePointer},
		{"string", "Pipeline", "forward", TypeString},
		{"texture swizzle", "NormalTextureSwizzle", SwizzleGA, TypeTextureSwizzle},
		{"buffer", "CalibrationBlob", []byte{0xca, 0xfe, 0xba, 0xbe}, TypeBuffer},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := NewAttribute(tc.attr, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.attr, a.Name())
			assert.Equal(t, tc.typ, a.Type())
			assert.Equal(t, tc.value, a.Value())
			assert.NoError(t, a.validate())
		})
	}
}

func TestAttribute_PayloadLayout(t *testing.T) {
	t.Run("fixed payload right aligned", func(t *testing.T) {
		a := mustAttribute(t, "Shininess", float32(80))
		assert.Equal(t, byte(TypeFloat), a.data[0])
		assert.Equal(t, "Shininess", string(a.data[1:10]))
		assert.Equal(t, byte(0), a.data[10])
		assert.Equal(t, []byte{0x00, 0x00, 0xa0, 0x42}, a.data[RecordSize-4:])
	})
	t.Run("scalars little endian", func(t *testing.T) {
		a := mustAttribute(t, "AtlasPage", uint32(0x04030201))
		assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, a.data[RecordSize-4:])
	})
	t.Run("string ends before the trailing pair", func(t *testing.T) {
		a := mustAttribute(t, "Pipeline", "forward")
		assert.Equal(t, "forward", string(a.data[RecordSize-2-7:RecordSize-2]))
		assert.Equal(t, byte(0), a.data[RecordSize-2])
		assert.Equal(t, byte(7), a.data[RecordSize-1])
		assert.Equal(t, "forward", a.StringValue())
	})
	t.Run("buffer length follows the name", func(t *testing.T) {
		blob := []byte{0xca, 0xfe, 0xba, 0xbe, 0x01}
		a := mustAttribute(t, "Fingerprint", blob)
		assert.Equal(t, byte(5), a.data[len("Fingerprint")+2])
		assert.Equal(t, blob, a.data[RecordSize-5:])
		assert.Equal(t, blob, a.Buffer())
	})
}

func TestNewAttributeTyped_RecordCapacity(t *testing.T) {
	long := func(n int) string { return strings.Repeat("n", n) }
	tests := []struct {
		name  string
		attr  string
		typ   AttributeType
		value interface{}
		ok    bool
	}{
		{"float with 58 byte name fills the record", long(58), TypeFloat, float32(1), true},
		{"float with 59 byte name overflows", long(59), TypeFloat, float32(1), false},
		{"bool with 61 byte name fills the record", long(61), TypeBool, true, true},
		{"bool with 62 byte name overflows", long(62), TypeBool, true, false},
		{"matrix3x4 with 14 byte name fills the record", long(14), TypeMatrix3x4, mgl32.Mat3x4{}, true},
		{"matrix3x4 with 15 byte name overflows", long(15), TypeMatrix3x4, mgl32.Mat3x4{}, false},
		{"string sharing 60 bytes with the name fits", long(20), TypeString, strings.Repeat("v", 40), true},
		{"string sharing 61 bytes with the name overflows", long(20), TypeString, strings.Repeat("v", 41), false},
		{"buffer sharing 61 bytes with the name fits", long(31), TypeBuffer, make([]byte, 30), true},
		{"buffer sharing 62 bytes with the name overflows", long(31), TypeBuffer, make([]byte, 31), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := NewAttributeTyped(tc.attr, tc.typ, tc.value)
			if !tc.ok {
				require.Error(t, err)
				assert.True(t, errors.IsContract(err))
				assert.Contains(t, err.Error(), "too long")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.attr, a.Name())
			assert.Equal(t, tc.value, a.Value())
			assert.NoError(t, a.validate())
		})
	}
}

func TestNewAttributeTyped_Validation(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := NewAttributeTyped("", TypeFloat, float32(1))
		require.Error(t, err)
		assert.True(t, errors.IsContract(err))
		assert.Contains(t, err.Error(), "must not be empty")
	})
	t.Run("reserved leading space", func(t *testing.T) {
		_, err := NewAttributeTyped(" CustomName", TypeFloat, float32(1))
		require.Error(t, err)
		assert.True(t, errors.IsContract(err))
		assert.Contains(t, err.Error(), "must not begin with a space")
	})
	t.Run("name with embedded nul", func(t *testing.T) {
		_, err := NewAttributeTyped("Diffuse\x00Color", TypeFloat, float32(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NUL")
	})
	t.Run("unsized integer", func(t *testing.T) {
		_, err := NewAttribute("AtlasPage", 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported attribute value type")
	})
	t.Run("double precision float", func(t *testing.T) {
		_, err := NewAttribute("Roughness", 0.5)
		require.Error(t, err)
	})
	t.Run("tag disagrees with the value", func(t *testing.T) {
		_, err := NewAttributeTyped("Roughness", TypeFloat, "0.5")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not encode as Float")
	})
}

func TestNewAttributeOf(t *testing.T) {
	t.Run("uses the catalog name and type", func(t *testing.T) {
		a := mustAttributeOf(t, AttrRoughness, float32(0.25))
		assert.Equal(t, "Roughness", a.Name())
		assert.Equal(t, TypeFloat, a.Type())
		assert.Equal(t, float32(0.25), a.Float())
	})
	t.Run("enforces the catalog type", func(t *testing.T) {
		_, err := NewAttributeOf(AttrBaseColor, float32(1))
		require.Error(t, err)
		assert.True(t, errors.IsContract(err))
		assert.Contains(t, err.Error(), "expected Vector4 for BaseColor")
	})
	t.Run("unknown id", func(t *testing.T) {
		_, err := NewAttributeOf(Attr(200), float32(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown attribute id")
	})
	t.Run("layer name helper", func(t *testing.T) {
		a, err := NewLayerNameAttribute("ClearCoat")
		require.NoError(t, err)
		assert.Equal(t, LayerNameAttribute, a.Name())
		assert.Equal(t, "ClearCoat", a.StringValue())
	})
}

func TestAttribute_TypedGetterMismatch(t *testing.T) {
	testutil.ReplaceLogger(t)

	a := mustAttribute(t, "Roughness", float32(0.5))
	assert.Zero(t, a.Uint32())
	assert.False(t, a.Bool())
	assert.Empty(t, a.StringValue())
	assert.Nil(t, a.Buffer())
	assert.Equal(t, mgl32.Vec4{}, a.Vec4())

	// Degrees and radians share the wire size but not the tag.
	r := mustAttribute(t, "Twist", Rad(1))
	assert.Zero(t, r.Deg())
	assert.Equal(t, Rad(1), r.Rad())
}

func TestAttribute_Set(t *testing.T) {
	t.Run("fixed payload in place", func(t *testing.T) {
		a := mustAttribute(t, "Shininess", float32(80))
		require.NoError(t, a.Set(float32(120)))
		assert.Equal(t, float32(120), a.Float())
	})
	t.Run("rejects a different type", func(t *testing.T) {
		a := mustAttribute(t, "Shininess", float32(80))
		err := a.Set(uint32(1))
		require.Error(t, err)
		assert.True(t, errors.IsContract(err))
		assert.Contains(t, err.Error(), "stores Float, cannot write UnsignedInt")
	})
	t.Run("rejects an unsupported value", func(t *testing.T) {
		a := mustAttribute(t, "Shininess", float32(80))
		require.Error(t, a.Set(3.14))
	})
	t.Run("string keeps its byte length", func(t *testing.T) {
		a := mustAttribute(t, "Pipeline", "forward")
		require.NoError(t, a.Set("reverse"))
		assert.Equal(t, "reverse", a.StringValue())

		err := a.Set("fwd")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must keep the 7 byte length")
	})
	t.Run("buffer keeps its byte length", func(t *testing.T) {
		a := mustAttribute(t, "CalibrationBlob", []byte{1, 2, 3, 4})
		require.NoError(t, a.Set([]byte{5, 6, 7, 8}))
		assert.Equal(t, []byte{5, 6, 7, 8}, a.Buffer())

		err := a.Set([]byte{9})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must keep the 4 byte length")
	})
}

func TestAttribute_CopyIsIndependent(t *testing.T) {
	a := mustAttribute(t, "Metalness", float32(0.1))
	b := a
	require.NoError(t, b.Set(float32(0.9)))
	assert.Equal(t, float32(0.1), a.Float())
	assert.Equal(t, float32(0.9), b.Float())
}

func TestAttribute_ZeroValue(t *testing.T) {
	var a Attribute
	assert.Equal(t, AttributeType(0), a.Type())
	assert.Empty(t, a.Name())
	assert.Nil(t, a.Value())
	assert.Error(t, a.validate())
}

func TestAttributeBytes_RoundTrip(t *testing.T) {
	attrs := []Attribute{
		mustAttributeOf(t, AttrBaseColor, mgl32.Vec4{0.2, 0.4, 0.6, 1}),
		mustAttributeOf(t, AttrMetalness, float32(0)),
		mustAttributeOf(t, AttrRoughness, float32(0.5)),
	}

	raw := AttributeBytes(attrs)
	require.Len(t, raw, 3*RecordSize)

	back, err := AttributesFromBytes(raw)
	require.NoError(t, err)
	require.Len(t, back, 3)
	assert.Equal(t, attrs, back)

	// Both directions are views, not copies.
	require.NoError(t, back[2].Set(float32(1)))
	assert.Equal(t, float32(1), attrs[2].Float())
}

func TestAttributesFromBytes(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, AttributeBytes(nil))
		back, err := AttributesFromBytes(nil)
		require.NoError(t, err)
		assert.Nil(t, back)
	})
	t.Run("length must be whole records", func(t *testing.T) {
		_, err := AttributesFromBytes(make([]byte, RecordSize+1))
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeFormat))
		assert.Contains(t, err.Error(), "not a multiple")
	})
}
