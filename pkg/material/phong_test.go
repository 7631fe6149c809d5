package material

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/matforge/matforge/pkg/testutil"
)

func TestPhongMaterial_Defaults(t *testing.T) {
	m := mustMaterial(t, MaterialTypes(Phong), nil, nil)
	p := m.AsPhong()

	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, p.AmbientColor())
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, p.DiffuseColor())
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 0}, p.SpecularColor())
	assert.Equal(t, float32(80), p.Shininess())

	assert.False(t, p.HasAmbientTexture())
	assert.False(t, p.HasDiffuseTexture())
	assert.False(t, p.HasSpecularTexture())
	assert.False(t, p.HasTextureTransformation())
	assert.False(t, p.HasTextureCoordinates())

	// vacuously common with no textures present
	assert.True(t, p.HasCommonTextureTransformation())
	assert.True(t, p.HasCommonTextureCoordinates())
	assert.Equal(t, mgl32.Ident3(), p.CommonTextureMatrix())
	assert.Equal(t, uint32(0), p.CommonTextureCoordinates())
}

func TestPhongMaterial_AmbientColor(t *testing.T) {
	t.Run("textured ambient defaults to white", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(Phong), []Attribute{
			mustAttributeOf(t, AttrAmbientTexture, uint32(1)),
		}, nil)
		p := m.AsPhong()

		assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, p.AmbientColor())
		assert.True(t, p.HasAmbientTexture())
		assert.Equal(t, uint32(1), p.AmbientTexture())
	})
	t.Run("explicit color wins over the texture default", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(Phong), []Attribute{
			mustAttributeOf(t, AttrAmbientColor, mgl32.Vec4{0.1, 0.2, 0.3, 1}),
			mustAttributeOf(t, AttrAmbientTexture, uint32(1)),
		}, nil)
		p := m.AsPhong()

		assert.Equal(t, mgl32.Vec4{0.1, 0.2, 0.3, 1}, p.AmbientColor())
	})
}

func TestPhongMaterial_TextureTransforms(t *testing.T) {
	t.Run("per-texture transforms stay separate", func(t *testing.T) {
		testutil.ReplaceLogger(t)
		diffuseX := mgl32.Translate2D(0.5, 0)
		specularX := mgl32.Translate2D(0, 0.5)
		m := mustMaterial(t, MaterialTypes(Phong), []Attribute{
			mustAttributeOf(t, AttrDiffuseTexture, uint32(2)),
			mustAttributeOf(t, AttrDiffuseTextureMatrix, diffuseX),
			mustAttributeOf(t, AttrDiffuseTextureCoordinates, uint32(1)),
			mustAttributeOf(t, AttrSpecularTexture, uint32(3)),
			mustAttributeOf(t, AttrSpecularTextureMatrix, specularX),
		}, nil)
		p := m.AsPhong()

		assert.Equal(t, diffuseX, p.DiffuseTextureMatrix())
		assert.Equal(t, specularX, p.SpecularTextureMatrix())
		assert.Equal(t, uint32(1), p.DiffuseTextureCoordinates())
		assert.Equal(t, uint32(0), p.SpecularTextureCoordinates())

		assert.True(t, p.HasTextureTransformation())
		assert.False(t, p.HasCommonTextureTransformation())
		assert.Equal(t, mgl32.Mat3{}, p.CommonTextureMatrix())
		assert.False(t, p.HasCommonTextureCoordinates())
		assert.Zero(t, p.CommonTextureCoordinates())
	})
	t.Run("generic transform is common to all textures", func(t *testing.T) {
		shared := mgl32.Translate2D(0.1, 0.2)
		m := mustMaterial(t, MaterialTypes(Phong), []Attribute{
			mustAttributeOf(t, AttrAmbientTexture, uint32(1)),
			mustAttributeOf(t, AttrDiffuseTexture, uint32(2)),
			mustAttributeOf(t, AttrSpecularTexture, uint32(3)),
			mustAttributeOf(t, AttrTextureMatrix, shared),
			mustAttributeOf(t, AttrTextureCoordinates, uint32(4)),
		}, nil)
		p := m.AsPhong()

		assert.True(t, p.HasCommonTextureTransformation())
		assert.Equal(t, shared, p.CommonTextureMatrix())
		assert.True(t, p.HasCommonTextureCoordinates())
		assert.Equal(t, uint32(4), p.CommonTextureCoordinates())

		// each family resolves through the same generic attribute
		assert.Equal(t, shared, p.AmbientTextureMatrix())
		assert.Equal(t, shared, p.DiffuseTextureMatrix())
		assert.Equal(t, uint32(4), p.SpecularTextureCoordinates())
	})
	t.Run("transform accessors require their texture", func(t *testing.T) {
		testutil.ReplaceLogger(t)
		m := mustMaterial(t, MaterialTypes(Phong), nil, nil)
		p := m.AsPhong()

		assert.Equal(t, mgl32.Mat3{}, p.DiffuseTextureMatrix())
		assert.Zero(t, p.AmbientTextureCoordinates())
	})
}

func TestPhongMaterial_SpecularSwizzle(t *testing.T) {
	t.Run("defaults to the color channels", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(Phong), []Attribute{
			mustAttributeOf(t, AttrSpecularTexture, uint32(3)),
		}, nil)
		p := m.AsPhong()

		assert.Equal(t, SwizzleRGB, p.SpecularTextureSwizzle())
	})
	t.Run("explicit swizzle", func(t *testing.T) {
		m := mustMaterial(t, MaterialTypes(Phong), []Attribute{
			mustAttributeOf(t, AttrSpecularTexture, uint32(3)),
			mustAttributeOf(t, AttrSpecularTextureSwizzle, SwizzleA),
		}, nil)
		p := m.AsPhong()

		assert.Equal(t, SwizzleA, p.SpecularTextureSwizzle())
	})
	t.Run("requires the texture", func(t *testing.T) {
		testutil.ReplaceLogger(t)
		m := mustMaterial(t, MaterialTypes(Phong), nil, nil)
		p := m.AsPhong()

		assert.Zero(t, p.SpecularTextureSwizzle())
	})
}
