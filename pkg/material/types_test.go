package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeType_StringRoundTrip(t *testing.T) {
	assert.Equal(t, "Vector3", TypeVector3.String())
	assert.Equal(t, "AttributeType(0)", AttributeType(0).String())
	assert.Equal(t, "AttributeType(77)", AttributeType(77).String())

	for typ := TypeBool; typ <= TypeBuffer; typ++ {
		name := typ.String()
		assert.NotContainsf(t, name, "AttributeType(", "type %d has no name", typ)

		back, ok := ParseAttributeType(name)
		require.Truef(t, ok, "type %s does not parse back", name)
		assert.Equal(t, typ, back)
	}

	_, ok := ParseAttributeType("Vector5")
	assert.False(t, ok)
	_, ok = ParseAttributeType("")
	assert.False(t, ok)
}

func TestTypeSize(t *testing.T) {
	tests := []struct {
		typ  AttributeType
		want int
	}{
		{TypeBool, 1},
		{TypeFloat, 4},
		{TypeDeg, 4},
		{TypeUnsignedLong, 8},
		{TypeVector2, 8},
		{TypeVector3i, 12},
		{TypeVector4, 16},
		{TypeMatrix2x2, 16},
		{TypeMatrix2x3, 24},
		{TypeMatrix3x2, 24},
		{TypeMatrix3x3, 36},
		{TypeMatrix3x4, 48},
		{TypeMatrix4x2, 32},
		{TypePointer, 8},
		{TypeTextureSwizzle, 4},
	}
	for _, tc := range tests {
		t.Run(tc.typ.String(), func(t *testing.T) {
			size, err := TypeSize(tc.typ)
			require.NoError(t, err)
			assert.Equal(t, tc.want, size)
		})
	}

	t.Run("variable and invalid types are refused", func(t *testing.T) {
		_, err := TypeSize(TypeString)
		assert.ErrorContains(t, err, "not fixed")
		_, err = TypeSize(TypeBuffer)
		assert.ErrorContains(t, err, "not fixed")
		_, err = TypeSize(0)
		assert.ErrorContains(t, err, "invalid attribute type")
		_, err = TypeSize(AttributeType(99))
		assert.ErrorContains(t, err, "invalid attribute type")
	})
}

func TestDataFlags(t *testing.T) {
	flags := DataFlags(DataFlagOwned | DataFlagMutable)
	assert.True(t, flags.Has(DataFlagOwned))
	assert.True(t, flags.Has(DataFlagMutable))
	assert.Equal(t, "Owned|Mutable", flags.String())

	assert.Equal(t, "None", DataFlags(0).String())
	assert.Equal(t, "Mutable", DataFlags(DataFlagMutable).String())
	assert.False(t, DataFlags(DataFlagMutable).Has(DataFlagOwned))
}

func TestMaterialTypes(t *testing.T) {
	set := MaterialTypes(Phong | PbrClearCoat)
	assert.True(t, set.Is(Phong))
	assert.True(t, set.Is(PbrClearCoat))
	assert.False(t, set.Is(Flat))
	assert.Equal(t, "Phong|PbrClearCoat", set.String())

	assert.Equal(t, "None", MaterialTypes(0).String())
	assert.Equal(t, "Flat", Flat.String())

	parsed, ok := ParseMaterialType("PbrMetallicRoughness")
	require.True(t, ok)
	assert.Equal(t, PbrMetallicRoughness, parsed)
	_, ok = ParseMaterialType("Gouraud")
	assert.False(t, ok)
}

func TestAlphaMode_String(t *testing.T) {
	assert.Equal(t, "Opaque", AlphaModeOpaque.String())
	assert.Equal(t, "Mask", AlphaModeMask.String())
	assert.Equal(t, "Blend", AlphaModeBlend.String())
}
