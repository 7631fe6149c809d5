package material

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/matforge/matforge/pkg/logger"
)

// PbrSpecularGlossinessMaterial is a view over a material with the
// specular/glossiness PBR workflow, the counterpart of
// PbrMetallicRoughnessMaterial for assets following the older convention.
type PbrSpecularGlossinessMaterial struct {
	*Material
}

// AsPbrSpecularGlossiness returns the specular/glossiness view of the
// material. The material is expected to advertise the matching shading
// model.
func (m *Material) AsPbrSpecularGlossiness() PbrSpecularGlossinessMaterial {
	m.checkShadingModel(PbrSpecularGlossiness)
	return PbrSpecularGlossinessMaterial{m}
}

// The packed SpecularGlossiness texture stands in for both the specular and
// the glossiness texture, so it appears once per family, same as the packed
// arrangement in the metallic/roughness view.
var specularGlossinessProbes = []textureProbe{
	{AttrDiffuseTexture, AttrDiffuseTextureMatrix, AttrDiffuseTextureCoordinates},
	{AttrSpecularTexture, AttrSpecularTextureMatrix, AttrSpecularTextureCoordinates},
	{AttrSpecularGlossinessTexture, AttrSpecularTextureMatrix, AttrSpecularTextureCoordinates},
	{AttrGlossinessTexture, AttrGlossinessTextureMatrix, AttrGlossinessTextureCoordinates},
	{AttrSpecularGlossinessTexture, AttrGlossinessTextureMatrix, AttrGlossinessTextureCoordinates},
	{AttrNormalTexture, AttrNormalTextureMatrix, AttrNormalTextureCoordinates},
	{AttrOcclusionTexture, AttrOcclusionTextureMatrix, AttrOcclusionTextureCoordinates},
	{AttrEmissiveTexture, AttrEmissiveTextureMatrix, AttrEmissiveTextureCoordinates},
}

// DiffuseColor returns the diffuse color, opaque white unless set.
func (p PbrSpecularGlossinessMaterial) DiffuseColor() mgl32.Vec4 {
	return AttributeOr(p.Material, 0, AttrDiffuseColor, mgl32.Vec4{1, 1, 1, 1})
}

// HasDiffuseTexture reports whether the diffuse color comes from a texture.
func (p PbrSpecularGlossinessMaterial) HasDiffuseTexture() bool {
	return HasAttribute(p.Material, 0, AttrDiffuseTexture)
}

// DiffuseTexture returns the diffuse texture index.
func (p PbrSpecularGlossinessMaterial) DiffuseTexture() uint32 {
	return AttributeValue[uint32](p.Material, 0, AttrDiffuseTexture)
}

// DiffuseTextureMatrix returns the diffuse texture transform, requires the
// texture to be present.
func (p PbrSpecularGlossinessMaterial) DiffuseTextureMatrix() mgl32.Mat3 {
	if !requireTexture(p.Material, 0, AttrDiffuseTexture) {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrDiffuseTextureMatrix)
}

// DiffuseTextureCoordinates returns the diffuse texture coordinate set,
// requires the texture to be present.
func (p PbrSpecularGlossinessMaterial) DiffuseTextureCoordinates() uint32 {
	if !requireTexture(p.Material, 0, AttrDiffuseTexture) {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrDiffuseTextureCoordinates)
}

// SpecularColor returns the specular color. The default is white with a
// zero alpha, alpha has no meaning for speculars.
func (p PbrSpecularGlossinessMaterial) SpecularColor() mgl32.Vec4 {
	return AttributeOr(p.Material, 0, AttrSpecularColor, mgl32.Vec4{1, 1, 1, 0})
}

// HasSpecularTexture reports whether the specular color comes from a
// texture, either a dedicated one or the packed arrangement.
func (p PbrSpecularGlossinessMaterial) HasSpecularTexture() bool {
	return HasAttribute(p.Material, 0, AttrSpecularTexture) ||
		HasAttribute(p.Material, 0, AttrSpecularGlossinessTexture)
}

func (p PbrSpecularGlossinessMaterial) requireSpecular() bool {
	if p.HasSpecularTexture() {
		return true
	}
	logger.Error("texture attribute not present",
		zap.Stringer("attribute", AttrSpecularTexture),
		zap.Int("layer", 0))
	return false
}

// SpecularTexture returns the specular texture index.
func (p PbrSpecularGlossinessMaterial) SpecularTexture() uint32 {
	if v, ok := FindAttributeValue[uint32](p.Material, 0, AttrSpecularGlossinessTexture); ok {
		return v
	}
	return AttributeValue[uint32](p.Material, 0, AttrSpecularTexture)
}

// SpecularTextureSwizzle returns the channels the specular color is read
// from, RGB unless overridden.
func (p PbrSpecularGlossinessMaterial) SpecularTextureSwizzle() TextureSwizzle {
	if !p.requireSpecular() {
		return 0
	}
	if HasAttribute(p.Material, 0, AttrSpecularGlossinessTexture) {
		return SwizzleRGB
	}
	return AttributeOr(p.Material, 0, AttrSpecularTextureSwizzle, SwizzleRGB)
}

// SpecularTextureMatrix returns the specular texture transform, requires
// the texture to be present.
func (p PbrSpecularGlossinessMaterial) SpecularTextureMatrix() mgl32.Mat3 {
	if !p.requireSpecular() {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrSpecularTextureMatrix)
}

// SpecularTextureCoordinates returns the specular texture coordinate set,
// requires the texture to be present.
func (p PbrSpecularGlossinessMaterial) SpecularTextureCoordinates() uint32 {
	if !p.requireSpecular() {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrSpecularTextureCoordinates)
}

// Glossiness returns the glossiness factor, 1.0 unless set.
func (p PbrSpecularGlossinessMaterial) Glossiness() float32 {
	return AttributeOr(p.Material, 0, AttrGlossiness, float32(1))
}

// HasGlossinessTexture reports whether glossiness comes from a texture,
// either a dedicated one or the packed arrangement.
func (p PbrSpecularGlossinessMaterial) HasGlossinessTexture() bool {
	return HasAttribute(p.Material, 0, AttrGlossinessTexture) ||
		HasAttribute(p.Material, 0, AttrSpecularGlossinessTexture)
}

func (p PbrSpecularGlossinessMaterial) requireGlossiness() bool {
	if p.HasGlossinessTexture() {
		return true
	}
	logger.Error("texture attribute not present",
		zap.Stringer("attribute", AttrGlossinessTexture),
		zap.Int("layer", 0))
	return false
}

// GlossinessTexture returns the glossiness texture index.
func (p PbrSpecularGlossinessMaterial) GlossinessTexture() uint32 {
	if v, ok := FindAttributeValue[uint32](p.Material, 0, AttrSpecularGlossinessTexture); ok {
		return v
	}
	return AttributeValue[uint32](p.Material, 0, AttrGlossinessTexture)
}

// GlossinessTextureSwizzle returns the channel glossiness is read from. The
// packed arrangement pins it to alpha, a dedicated texture defaults to red.
func (p PbrSpecularGlossinessMaterial) GlossinessTextureSwizzle() TextureSwizzle {
	if !p.requireGlossiness() {
		return 0
	}
	if HasAttribute(p.Material, 0, AttrSpecularGlossinessTexture) {
		return SwizzleA
	}
	return AttributeOr(p.Material, 0, AttrGlossinessTextureSwizzle, SwizzleR)
}

// GlossinessTextureMatrix returns the glossiness texture transform,
// requires the texture to be present.
func (p PbrSpecularGlossinessMaterial) GlossinessTextureMatrix() mgl32.Mat3 {
	if !p.requireGlossiness() {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrGlossinessTextureMatrix)
}

// GlossinessTextureCoordinates returns the glossiness texture coordinate
// set, requires the texture to be present.
func (p PbrSpecularGlossinessMaterial) GlossinessTextureCoordinates() uint32 {
	if !p.requireGlossiness() {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrGlossinessTextureCoordinates)
}

// HasSpecularGlossinessTexture reports whether the specular color and
// glossiness are packed into one texture with the color in RGB and
// glossiness in alpha, reading from the same transform and coordinate set.
func (p PbrSpecularGlossinessMaterial) HasSpecularGlossinessTexture() bool {
	if !p.HasSpecularTexture() || !p.HasGlossinessTexture() {
		return false
	}
	return p.SpecularTexture() == p.GlossinessTexture() &&
		p.SpecularTextureSwizzle() == SwizzleRGB &&
		p.GlossinessTextureSwizzle() == SwizzleA &&
		p.SpecularTextureMatrix() == p.GlossinessTextureMatrix() &&
		p.SpecularTextureCoordinates() == p.GlossinessTextureCoordinates()
}

// HasNormalTexture reports whether a normal map is present.
func (p PbrSpecularGlossinessMaterial) HasNormalTexture() bool {
	return HasAttribute(p.Material, 0, AttrNormalTexture)
}

// NormalTexture returns the normal map texture index.
func (p PbrSpecularGlossinessMaterial) NormalTexture() uint32 {
	return AttributeValue[uint32](p.Material, 0, AttrNormalTexture)
}

// NormalTextureScale returns the normal map intensity scale, 1.0 unless
// set.
func (p PbrSpecularGlossinessMaterial) NormalTextureScale() float32 {
	return AttributeOr(p.Material, 0, AttrNormalTextureScale, float32(1))
}

// NormalTextureSwizzle returns the channels the normal is read from, RGB
// unless overridden. Requires the texture to be present.
func (p PbrSpecularGlossinessMaterial) NormalTextureSwizzle() TextureSwizzle {
	if !requireTexture(p.Material, 0, AttrNormalTexture) {
		return 0
	}
	return AttributeOr(p.Material, 0, AttrNormalTextureSwizzle, SwizzleRGB)
}

// NormalTextureMatrix returns the normal map transform, requires the
// texture to be present.
func (p PbrSpecularGlossinessMaterial) NormalTextureMatrix() mgl32.Mat3 {
	if !requireTexture(p.Material, 0, AttrNormalTexture) {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrNormalTextureMatrix)
}

// NormalTextureCoordinates returns the normal map coordinate set, requires
// the texture to be present.
func (p PbrSpecularGlossinessMaterial) NormalTextureCoordinates() uint32 {
	if !requireTexture(p.Material, 0, AttrNormalTexture) {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrNormalTextureCoordinates)
}

// HasOcclusionTexture reports whether an occlusion map is present.
func (p PbrSpecularGlossinessMaterial) HasOcclusionTexture() bool {
	return HasAttribute(p.Material, 0, AttrOcclusionTexture)
}

// OcclusionTexture returns the occlusion map texture index.
func (p PbrSpecularGlossinessMaterial) OcclusionTexture() uint32 {
	return AttributeValue[uint32](p.Material, 0, AttrOcclusionTexture)
}

// OcclusionTextureStrength returns the occlusion effect strength, 1.0
// unless set.
func (p PbrSpecularGlossinessMaterial) OcclusionTextureStrength() float32 {
	return AttributeOr(p.Material, 0, AttrOcclusionTextureStrength, float32(1))
}

// OcclusionTextureSwizzle returns the channel occlusion is read from, red
// unless overridden. Requires the texture to be present.
func (p PbrSpecularGlossinessMaterial) OcclusionTextureSwizzle() TextureSwizzle {
	if !requireTexture(p.Material, 0, AttrOcclusionTexture) {
		return 0
	}
	return AttributeOr(p.Material, 0, AttrOcclusionTextureSwizzle, SwizzleR)
}

// OcclusionTextureMatrix returns the occlusion map transform, requires the
// texture to be present.
func (p PbrSpecularGlossinessMaterial) OcclusionTextureMatrix() mgl32.Mat3 {
	if !requireTexture(p.Material, 0, AttrOcclusionTexture) {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrOcclusionTextureMatrix)
}

// OcclusionTextureCoordinates returns the occlusion map coordinate set,
// requires the texture to be present.
func (p PbrSpecularGlossinessMaterial) OcclusionTextureCoordinates() uint32 {
	if !requireTexture(p.Material, 0, AttrOcclusionTexture) {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrOcclusionTextureCoordinates)
}

// EmissiveColor returns the emissive color, black unless set.
func (p PbrSpecularGlossinessMaterial) EmissiveColor() mgl32.Vec3 {
	return AttributeOr(p.Material, 0, AttrEmissiveColor, mgl32.Vec3{})
}

// HasEmissiveTexture reports whether emission comes from a texture.
func (p PbrSpecularGlossinessMaterial) HasEmissiveTexture() bool {
	return HasAttribute(p.Material, 0, AttrEmissiveTexture)
}

// EmissiveTexture returns the emissive texture index.
func (p PbrSpecularGlossinessMaterial) EmissiveTexture() uint32 {
	return AttributeValue[uint32](p.Material, 0, AttrEmissiveTexture)
}

// EmissiveTextureMatrix returns the emissive texture transform, requires
// the texture to be present.
func (p PbrSpecularGlossinessMaterial) EmissiveTextureMatrix() mgl32.Mat3 {
	if !requireTexture(p.Material, 0, AttrEmissiveTexture) {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrEmissiveTextureMatrix)
}

// EmissiveTextureCoordinates returns the emissive texture coordinate set,
// requires the texture to be present.
func (p PbrSpecularGlossinessMaterial) EmissiveTextureCoordinates() uint32 {
	if !requireTexture(p.Material, 0, AttrEmissiveTexture) {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrEmissiveTextureCoordinates)
}

// HasTextureTransformation reports whether any texture uses a non-default
// coordinate transform.
func (p PbrSpecularGlossinessMaterial) HasTextureTransformation() bool {
	return anyTextureTransformation(p.Material, 0, specularGlossinessProbes)
}

// HasCommonTextureTransformation reports whether all present textures
// resolve to one shared transform.
func (p PbrSpecularGlossinessMaterial) HasCommonTextureTransformation() bool {
	return texturesShareMatrix(p.Material, 0, specularGlossinessProbes)
}

// CommonTextureMatrix returns the transform shared by all present textures,
// requires HasCommonTextureTransformation.
func (p PbrSpecularGlossinessMaterial) CommonTextureMatrix() mgl32.Mat3 {
	if !p.HasCommonTextureTransformation() {
		logger.Error("textures use different transforms")
		return mgl32.Mat3{}
	}
	return sharedTextureMatrix(p.Material, 0, specularGlossinessProbes)
}

// HasTextureCoordinates reports whether any texture reads a non-default
// coordinate set.
func (p PbrSpecularGlossinessMaterial) HasTextureCoordinates() bool {
	return anyTextureCoordinates(p.Material, 0, specularGlossinessProbes)
}

// HasCommonTextureCoordinates reports whether all present textures read the
// same coordinate set.
func (p PbrSpecularGlossinessMaterial) HasCommonTextureCoordinates() bool {
	return texturesShareCoordinates(p.Material, 0, specularGlossinessProbes)
}

// CommonTextureCoordinates returns the coordinate set shared by all present
// textures, requires HasCommonTextureCoordinates.
func (p PbrSpecularGlossinessMaterial) CommonTextureCoordinates() uint32 {
	if !p.HasCommonTextureCoordinates() {
		logger.Error("textures use different coordinate sets")
		return 0
	}
	return sharedTextureCoordinates(p.Material, 0, specularGlossinessProbes)
}
