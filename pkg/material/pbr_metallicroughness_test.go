package material

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/matforge/matforge/pkg/testutil"
)

func TestPbrMetallicRoughnessMaterial_Defaults(t *testing.T) {
	m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), nil, nil)
	p := m.AsPbrMetallicRoughness()

	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, p.BaseColor())
	assert.Equal(t, float32(1), p.Metalness())
	assert.Equal(t, float32(1), p.Roughness())
	assert.Equal(t, mgl32.Vec3{}, p.EmissiveColor())

	assert.False(t, p.HasBaseColorTexture())
	assert.False(t, p.HasMetalnessTexture())
	assert.False(t, p.HasRoughnessTexture())
	assert.False(t, p.HasNormalTexture())
	assert.False(t, p.HasOcclusionTexture())
	assert.False(t, p.HasEmissiveTexture())
	assert.False(t, p.HasNoneRoughnessMetallicTexture())
	assert.False(t, p.HasTextureTransformation())
	assert.True(t, p.HasCommonTextureTransformation())
}

func TestPbrMetallicRoughnessMaterial_Factors(t *testing.T) {
	m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), []Attribute{
		mustAttributeOf(t, AttrBaseColor, mgl32.Vec4{0.3, 0.4, 0.5, 1}),
		mustAttributeOf(t, AttrMetalness, float32(0.9)),
		mustAttributeOf(t, AttrRoughness, float32(0.2)),
		mustAttributeOf(t, AttrEmissiveColor, mgl32.Vec3{1, 0.5, 0}),
	}, nil)
	p := m.AsPbrMetallicRoughness()

	assert.Equal(t, mgl32.Vec4{0.3, 0.4, 0.5, 1}, p.BaseColor())
	assert.Equal(t, float32(0.9), p.Metalness())
	assert.Equal(t, float32(0.2), p.Roughness())
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0}, p.EmissiveColor())
}

func TestPbrMetallicRoughnessMaterial_PackedTexture(t *testing.T) {
	t.Run("packed attribute feeds both families", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), []Attribute{
			mustAttributeOf(t, AttrNoneRoughnessMetallicTexture, uint32(6)),
		}, nil)
		p := m.AsPbrMetallicRoughness()

		assert.True(t, p.HasMetalnessTexture())
		assert.True(t, p.HasRoughnessTexture())
		assert.Equal(t, uint32(6), p.MetalnessTexture())
		assert.Equal(t, uint32(6), p.RoughnessTexture())
		assert.Equal(t, SwizzleB, p.MetalnessTextureSwizzle())
		assert.Equal(t, SwizzleG, p.RoughnessTextureSwizzle())
		assert.True(t, p.HasNoneRoughnessMetallicTexture())
	})
	t.Run("separate textures are not packed", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), []Attribute{
			mustAttributeOf(t, AttrMetalnessTexture, uint32(1)),
			mustAttributeOf(t, AttrRoughnessTexture, uint32(2)),
		}, nil)
		p := m.AsPbrMetallicRoughness()

		assert.False(t, p.HasNoneRoughnessMetallicTexture())
		assert.Equal(t, SwizzleR, p.MetalnessTextureSwizzle())
		assert.Equal(t, SwizzleR, p.RoughnessTextureSwizzle())
	})
	t.Run("shared texture with default channels is not packed", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), []Attribute{
			mustAttributeOf(t, AttrMetalnessTexture, uint32(1)),
			mustAttributeOf(t, AttrRoughnessTexture, uint32(1)),
		}, nil)
		p := m.AsPbrMetallicRoughness()

		assert.False(t, p.HasNoneRoughnessMetallicTexture())
	})
	t.Run("explicit channels make a shared texture packed", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), []Attribute{
			mustAttributeOf(t, AttrMetalnessTexture, uint32(1)),
			mustAttributeOf(t, AttrMetalnessTextureSwizzle, SwizzleB),
			mustAttributeOf(t, AttrRoughnessTexture, uint32(1)),
			mustAttributeOf(t, AttrRoughnessTextureSwizzle, SwizzleG),
		}, nil)
		p := m.AsPbrMetallicRoughness()

		assert.True(t, p.HasNoneRoughnessMetallicTexture())
	})
	t.Run("conflicting transforms break the packing", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), []Attribute{
			mustAttributeOf(t, AttrNoneRoughnessMetallicTexture, uint32(6)),
			mustAttributeOf(t, AttrMetalnessTextureMatrix, mgl32.Translate2D(0.5, 0)),
		}, nil)
		p := m.AsPbrMetallicRoughness()

		assert.False(t, p.HasNoneRoughnessMetallicTexture())
		// the packed attribute is probed once per family, so the
		// common-transform check sees the conflict too
		assert.True(t, p.HasTextureTransformation())
		assert.False(t, p.HasCommonTextureTransformation())
	})
}

func TestPbrMetallicRoughnessMaterial_TripleChannelPackings(t *testing.T) {
	t.Run("occlusion roughness metalness", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), []Attribute{
			mustAttributeOf(t, AttrOcclusionTexture, uint32(3)),
			mustAttributeOf(t, AttrRoughnessTexture, uint32(3)),
			mustAttributeOf(t, AttrRoughnessTextureSwizzle, SwizzleG),
			mustAttributeOf(t, AttrMetalnessTexture, uint32(3)),
			mustAttributeOf(t, AttrMetalnessTextureSwizzle, SwizzleB),
		}, nil)
		p := m.AsPbrMetallicRoughness()

		assert.True(t, p.HasOcclusionRoughnessMetallicTexture())
		// the same channel assignment also satisfies the two-channel form
		assert.True(t, p.HasNoneRoughnessMetallicTexture())
		assert.False(t, p.HasRoughnessMetallicOcclusionTexture())
	})
	t.Run("roughness metalness occlusion", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), []Attribute{
			mustAttributeOf(t, AttrRoughnessTexture, uint32(2)),
			mustAttributeOf(t, AttrMetalnessTexture, uint32(2)),
			mustAttributeOf(t, AttrMetalnessTextureSwizzle, SwizzleG),
			mustAttributeOf(t, AttrOcclusionTexture, uint32(2)),
			mustAttributeOf(t, AttrOcclusionTextureSwizzle, SwizzleB),
		}, nil)
		p := m.AsPbrMetallicRoughness()

		assert.True(t, p.HasRoughnessMetallicOcclusionTexture())
		assert.False(t, p.HasOcclusionRoughnessMetallicTexture())
	})
	t.Run("normal roughness metalness", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), []Attribute{
			mustAttributeOf(t, AttrNormalTexture, uint32(4)),
			mustAttributeOf(t, AttrNormalTextureSwizzle, SwizzleRG),
			mustAttributeOf(t, AttrRoughnessTexture, uint32(4)),
			mustAttributeOf(t, AttrRoughnessTextureSwizzle, SwizzleB),
			mustAttributeOf(t, AttrMetalnessTexture, uint32(4)),
			mustAttributeOf(t, AttrMetalnessTextureSwizzle, SwizzleA),
		}, nil)
		p := m.AsPbrMetallicRoughness()

		assert.True(t, p.HasNormalRoughnessMetallicTexture())
		assert.False(t, p.HasOcclusionRoughnessMetallicTexture())
	})
}

func TestPbrMetallicRoughnessMaterial_NormalAndOcclusion(t *testing.T) {
	t.Run("defaults with textures present", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), []Attribute{
			mustAttributeOf(t, AttrNormalTexture, uint32(1)),
			mustAttributeOf(t, AttrOcclusionTexture, uint32(2)),
		}, nil)
		p := m.AsPbrMetallicRoughness()

		assert.Equal(t, float32(1), p.NormalTextureScale())
		assert.Equal(t, SwizzleRGB, p.NormalTextureSwizzle())
		assert.Equal(t, float32(1), p.OcclusionTextureStrength())
		assert.Equal(t, SwizzleR, p.OcclusionTextureSwizzle())
	})
	t.Run("explicit values", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), []Attribute{
			mustAttributeOf(t, AttrNormalTexture, uint32(1)),
			mustAttributeOf(t, AttrNormalTextureScale, float32(0.35)),
			mustAttributeOf(t, AttrOcclusionTexture, uint32(2)),
			mustAttributeOf(t, AttrOcclusionTextureStrength, float32(0.8)),
		}, nil)
		p := m.AsPbrMetallicRoughness()

		assert.Equal(t, float32(0.35), p.NormalTextureScale())
		assert.Equal(t, float32(0.8), p.OcclusionTextureStrength())
	})
	t.Run("accessors require their texture", func(t *testing.T) {
		testutil.ReplaceLogger(t)
		m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), nil, nil)
		p := m.AsPbrMetallicRoughness()

		assert.Zero(t, p.NormalTextureSwizzle())
		assert.Equal(t, mgl32.Mat3{}, p.OcclusionTextureMatrix())
		assert.Zero(t, p.MetalnessTextureCoordinates())
	})
}

func TestPbrMetallicRoughnessMaterial_CommonTransform(t *testing.T) {
	shared := mgl32.Translate2D(0.1, 0.2)
	m := mustMaterial(t, MaterialTypes(PbrMetallicRoughness), []Attribute{
		mustAttributeOf(t, AttrBaseColorTexture, uint32(1)),
		mustAttributeOf(t, AttrNoneRoughnessMetallicTexture, uint32(6)),
		mustAttributeOf(t, AttrEmissiveTexture, uint32(2)),
		mustAttributeOf(t, AttrTextureMatrix, shared),
		mustAttributeOf(t, AttrTextureCoordinates, uint32(3)),
	}, nil)
	p := m.AsPbrMetallicRoughness()

	assert.True(t, p.HasCommonTextureTransformation())
	assert.Equal(t, shared, p.CommonTextureMatrix())
	assert.True(t, p.HasCommonTextureCoordinates())
	assert.Equal(t, uint32(3), p.CommonTextureCoordinates())

	assert.Equal(t, shared, p.BaseColorTextureMatrix())
	assert.Equal(t, shared, p.MetalnessTextureMatrix())
	assert.Equal(t, shared, p.EmissiveTextureMatrix())
	assert.Equal(t, uint32(3), p.RoughnessTextureCoordinates())
}
