package material

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/matforge/matforge/pkg/logger"
)

// FlatMaterial is an unlit view over a material. It accepts both the
// BaseColor and the Diffuse attribute families so flat-rendered Phong
// imports keep working, preferring the BaseColor family when both exist.
type FlatMaterial struct {
	*Material
}

// AsFlat returns the unlit view of the material. The material is expected
// to advertise the Flat shading model.
func (m *Material) AsFlat() FlatMaterial {
	m.checkShadingModel(Flat)
	return FlatMaterial{m}
}

// Color returns the flat color, opaque white unless set.
func (f FlatMaterial) Color() mgl32.Vec4 {
	if v, ok := FindAttributeValue[mgl32.Vec4](f.Material, 0, AttrBaseColor); ok {
		return v
	}
	return AttributeOr(f.Material, 0, AttrDiffuseColor, mgl32.Vec4{1, 1, 1, 1})
}

// HasTexture reports whether the color comes from a texture.
func (f FlatMaterial) HasTexture() bool {
	return HasAttribute(f.Material, 0, AttrBaseColorTexture) ||
		HasAttribute(f.Material, 0, AttrDiffuseTexture)
}

// Texture returns the color texture index. The texture transform accessors
// below require HasTexture, a miss logs and returns the zero value.
func (f FlatMaterial) Texture() uint32 {
	if v, ok := FindAttributeValue[uint32](f.Material, 0, AttrBaseColorTexture); ok {
		return v
	}
	return AttributeValue[uint32](f.Material, 0, AttrDiffuseTexture)
}

// HasTextureTransformation reports whether the color texture uses a
// non-default coordinate transform.
func (f FlatMaterial) HasTextureTransformation() bool {
	return HasAttribute(f.Material, 0, AttrBaseColorTextureMatrix) ||
		HasAttribute(f.Material, 0, AttrDiffuseTextureMatrix) ||
		HasAttribute(f.Material, 0, AttrTextureMatrix)
}

func (f FlatMaterial) requireTexture() bool {
	if f.HasTexture() {
		return true
	}
	logger.Error("material has no color texture")
	return false
}

// textureFamily picks the per-texture attribute matching whichever color
// texture is present.
func (f FlatMaterial) textureFamily(baseColor, diffuse Attr) Attr {
	if HasAttribute(f.Material, 0, AttrBaseColorTexture) {
		return baseColor
	}
	return diffuse
}

// TextureMatrix returns the coordinate transform of the color texture,
// identity unless set.
func (f FlatMaterial) TextureMatrix() mgl32.Mat3 {
	if !f.requireTexture() {
		return mgl32.Mat3{}
	}
	specific := f.textureFamily(AttrBaseColorTextureMatrix, AttrDiffuseTextureMatrix)
	if v, ok := FindAttributeValue[mgl32.Mat3](f.Material, 0, specific); ok {
		return v
	}
	return AttributeOr(f.Material, 0, AttrTextureMatrix, mgl32.Ident3())
}

// TextureCoordinates returns the coordinate set of the color texture, set 0
// unless overridden.
func (f FlatMaterial) TextureCoordinates() uint32 {
	if !f.requireTexture() {
		return 0
	}
	specific := f.textureFamily(AttrBaseColorTextureCoordinates, AttrDiffuseTextureCoordinates)
	if v, ok := FindAttributeValue[uint32](f.Material, 0, specific); ok {
		return v
	}
	return AttributeOr(f.Material, 0, AttrTextureCoordinates, uint32(0))
}

// TextureLayer returns the array layer of the color texture, layer 0 unless
// overridden.
func (f FlatMaterial) TextureLayer() uint32 {
	if !f.requireTexture() {
		return 0
	}
	specific := f.textureFamily(AttrBaseColorTextureLayer, AttrDiffuseTextureLayer)
	if v, ok := FindAttributeValue[uint32](f.Material, 0, specific); ok {
		return v
	}
	return AttributeOr(f.Material, 0, AttrTextureLayer, uint32(0))
}
