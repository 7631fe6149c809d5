package material

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/matforge/matforge/pkg/logger"
)

// PhongMaterial is a view over a material with the classic ambient, diffuse
// and specular shading split.
type PhongMaterial struct {
	*Material
}

// AsPhong returns the Phong view of the material. The material is expected
// to advertise the Phong shading model.
func (m *Material) AsPhong() PhongMaterial {
	m.checkShadingModel(Phong)
	return PhongMaterial{m}
}

var phongProbes = []textureProbe{
	{AttrAmbientTexture, AttrAmbientTextureMatrix, AttrAmbientTextureCoordinates},
	{AttrDiffuseTexture, AttrDiffuseTextureMatrix, AttrDiffuseTextureCoordinates},
	{AttrSpecularTexture, AttrSpecularTextureMatrix, AttrSpecularTextureCoordinates},
}

// AmbientColor returns the ambient color. White when an ambient texture is
// present, black otherwise.
func (p PhongMaterial) AmbientColor() mgl32.Vec4 {
	def := mgl32.Vec4{0, 0, 0, 1}
	if HasAttribute(p.Material, 0, AttrAmbientTexture) {
		def = mgl32.Vec4{1, 1, 1, 1}
	}
	return AttributeOr(p.Material, 0, AttrAmbientColor, def)
}

// HasAmbientTexture reports whether the ambient color comes from a texture.
func (p PhongMaterial) HasAmbientTexture() bool {
	return HasAttribute(p.Material, 0, AttrAmbientTexture)
}

// AmbientTexture returns the ambient texture index.
func (p PhongMaterial) AmbientTexture() uint32 {
	return AttributeValue[uint32](p.Material, 0, AttrAmbientTexture)
}

// AmbientTextureMatrix returns the ambient texture transform, requires the
// texture to be present.
func (p PhongMaterial) AmbientTextureMatrix() mgl32.Mat3 {
	if !requireTexture(p.Material, 0, AttrAmbientTexture) {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrAmbientTextureMatrix)
}

// AmbientTextureCoordinates returns the ambient texture coordinate set,
// requires the texture to be present.
func (p PhongMaterial) AmbientTextureCoordinates() uint32 {
	if !requireTexture(p.Material, 0, AttrAmbientTexture) {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrAmbientTextureCoordinates)
}

// DiffuseColor returns the diffuse color, opaque white unless set.
func (p PhongMaterial) DiffuseColor() mgl32.Vec4 {
	return AttributeOr(p.Material, 0, AttrDiffuseColor, mgl32.Vec4{1, 1, 1, 1})
}

// HasDiffuseTexture reports whether the diffuse color comes from a texture.
func (p PhongMaterial) HasDiffuseTexture() bool {
	return HasAttribute(p.Material, 0, AttrDiffuseTexture)
}

// DiffuseTexture returns the diffuse texture index.
func (p PhongMaterial) DiffuseTexture() uint32 {
	return AttributeValue[uint32](p.Material, 0, AttrDiffuseTexture)
}

// DiffuseTextureMatrix returns the diffuse texture transform, requires the
// texture to be present.
func (p PhongMaterial) DiffuseTextureMatrix() mgl32.Mat3 {
	if !requireTexture(p.Material, 0, AttrDiffuseTexture) {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrDiffuseTextureMatrix)
}

// DiffuseTextureCoordinates returns the diffuse texture coordinate set,
// requires the texture to be present.
func (p PhongMaterial) DiffuseTextureCoordinates() uint32 {
	if !requireTexture(p.Material, 0, AttrDiffuseTexture) {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrDiffuseTextureCoordinates)
}

// SpecularColor returns the specular color. The default is white with a
// zero alpha, alpha has no meaning for speculars.
func (p PhongMaterial) SpecularColor() mgl32.Vec4 {
	return AttributeOr(p.Material, 0, AttrSpecularColor, mgl32.Vec4{1, 1, 1, 0})
}

// HasSpecularTexture reports whether the specular color comes from a
// texture.
func (p PhongMaterial) HasSpecularTexture() bool {
	return HasAttribute(p.Material, 0, AttrSpecularTexture)
}

// SpecularTexture returns the specular texture index.
func (p PhongMaterial) SpecularTexture() uint32 {
	return AttributeValue[uint32](p.Material, 0, AttrSpecularTexture)
}

// SpecularTextureSwizzle returns the channels the specular color is read
// from, RGB unless overridden. Requires the texture to be present.
func (p PhongMaterial) SpecularTextureSwizzle() TextureSwizzle {
	if !requireTexture(p.Material, 0, AttrSpecularTexture) {
		return 0
	}
	return AttributeOr(p.Material, 0, AttrSpecularTextureSwizzle, SwizzleRGB)
}

// SpecularTextureMatrix returns the specular texture transform, requires
// the texture to be present.
func (p PhongMaterial) SpecularTextureMatrix() mgl32.Mat3 {
	if !requireTexture(p.Material, 0, AttrSpecularTexture) {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrSpecularTextureMatrix)
}

// SpecularTextureCoordinates returns the specular texture coordinate set,
// requires the texture to be present.
func (p PhongMaterial) SpecularTextureCoordinates() uint32 {
	if !requireTexture(p.Material, 0, AttrSpecularTexture) {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrSpecularTextureCoordinates)
}

// Shininess returns the specular exponent, 80 unless set.
func (p PhongMaterial) Shininess() float32 {
	return AttributeOr(p.Material, 0, AttrShininess, float32(80))
}

// HasTextureTransformation reports whether any texture uses a non-default
// coordinate transform.
func (p PhongMaterial) HasTextureTransformation() bool {
	return anyTextureTransformation(p.Material, 0, phongProbes)
}

// HasCommonTextureTransformation reports whether all present textures
// resolve to one shared transform.
func (p PhongMaterial) HasCommonTextureTransformation() bool {
	return texturesShareMatrix(p.Material, 0, phongProbes)
}

// CommonTextureMatrix returns the transform shared by all present textures,
// requires HasCommonTextureTransformation.
func (p PhongMaterial) CommonTextureMatrix() mgl32.Mat3 {
	if !p.HasCommonTextureTransformation() {
		logger.Error("textures use different transforms")
		return mgl32.Mat3{}
	}
	return sharedTextureMatrix(p.Material, 0, phongProbes)
}

// HasTextureCoordinates reports whether any texture reads a non-default
// coordinate set.
func (p PhongMaterial) HasTextureCoordinates() bool {
	return anyTextureCoordinates(p.Material, 0, phongProbes)
}

// HasCommonTextureCoordinates reports whether all present textures read the
// same coordinate set.
func (p PhongMaterial) HasCommonTextureCoordinates() bool {
	return texturesShareCoordinates(p.Material, 0, phongProbes)
}

// CommonTextureCoordinates returns the coordinate set shared by all present
// textures, requires HasCommonTextureCoordinates.
func (p PhongMaterial) CommonTextureCoordinates() uint32 {
	if !p.HasCommonTextureCoordinates() {
		logger.Error("textures use different coordinate sets")
		return 0
	}
	return sharedTextureCoordinates(p.Material, 0, phongProbes)
}
