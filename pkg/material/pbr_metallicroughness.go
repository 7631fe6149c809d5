package material

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/matforge/matforge/pkg/logger"
)

// PbrMetallicRoughnessMaterial is a view over a material with the
// metallic/roughness PBR workflow. Besides plain attribute access it can
// detect the usual packed single-texture arrangements, for example the glTF
// occlusion-roughness-metalness layout.
type PbrMetallicRoughnessMaterial struct {
	*Material
}

// AsPbrMetallicRoughness returns the metallic/roughness view of the
// material. The material is expected to advertise the matching shading
// model.
func (m *Material) AsPbrMetallicRoughness() PbrMetallicRoughnessMaterial {
	m.checkShadingModel(PbrMetallicRoughness)
	return PbrMetallicRoughnessMaterial{m}
}

// The packed NoneRoughnessMetallic texture stands in for both the metalness
// and the roughness texture, so it appears once per family to keep the
// common-transform checks honest when only the packed attribute is present.
var metallicRoughnessProbes = []textureProbe{
	{AttrBaseColorTexture, AttrBaseColorTextureMatrix, AttrBaseColorTextureCoordinates},
	{AttrMetalnessTexture, AttrMetalnessTextureMatrix, AttrMetalnessTextureCoordinates},
	{AttrNoneRoughnessMetallicTexture, AttrMetalnessTextureMatrix, AttrMetalnessTextureCoordinates},
	{AttrRoughnessTexture, AttrRoughnessTextureMatrix, AttrRoughnessTextureCoordinates},
	{AttrNoneRoughnessMetallicTexture, AttrRoughnessTextureMatrix, AttrRoughnessTextureCoordinates},
	{AttrNormalTexture, AttrNormalTextureMatrix, AttrNormalTextureCoordinates},
	{AttrOcclusionTexture, AttrOcclusionTextureMatrix, AttrOcclusionTextureCoordinates},
	{AttrEmissiveTexture, AttrEmissiveTextureMatrix, AttrEmissiveTextureCoordinates},
}

// BaseColor returns the base color, opaque white unless set.
func (p PbrMetallicRoughnessMaterial) BaseColor() mgl32.Vec4 {
	return AttributeOr(p.Material, 0, AttrBaseColor, mgl32.Vec4{1, 1, 1, 1})
}

// HasBaseColorTexture reports whether the base color comes from a texture.
func (p PbrMetallicRoughnessMaterial) HasBaseColorTexture() bool {
	return HasAttribute(p.Material, 0, AttrBaseColorTexture)
}

// BaseColorTexture returns the base color texture index.
func (p PbrMetallicRoughnessMaterial) BaseColorTexture() uint32 {
	return AttributeValue[uint32](p.Material, 0, AttrBaseColorTexture)
}

// BaseColorTextureMatrix returns the base color texture transform, requires
// the texture to be present.
func (p PbrMetallicRoughnessMaterial) BaseColorTextureMatrix() mgl32.Mat3 {
	if !requireTexture(p.Material, 0, AttrBaseColorTexture) {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrBaseColorTextureMatrix)
}

// BaseColorTextureCoordinates returns the base color texture coordinate
// set, requires the texture to be present.
func (p PbrMetallicRoughnessMaterial) BaseColorTextureCoordinates() uint32 {
	if !requireTexture(p.Material, 0, AttrBaseColorTexture) {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrBaseColorTextureCoordinates)
}

// Metalness returns the metalness factor, 1.0 unless set.
func (p PbrMetallicRoughnessMaterial) Metalness() float32 {
	return AttributeOr(p.Material, 0, AttrMetalness, float32(1))
}

// HasMetalnessTexture reports whether metalness comes from a texture,
// either a dedicated one or a packed arrangement.
func (p PbrMetallicRoughnessMaterial) HasMetalnessTexture() bool {
	return HasAttribute(p.Material, 0, AttrMetalnessTexture) ||
		HasAttribute(p.Material, 0, AttrNoneRoughnessMetallicTexture)
}

// MetalnessTexture returns the metalness texture index.
func (p PbrMetallicRoughnessMaterial) MetalnessTexture() uint32 {
	if v, ok := FindAttributeValue[uint32](p.Material, 0, AttrNoneRoughnessMetallicTexture); ok {
		return v
	}
	return AttributeValue[uint32](p.Material, 0, AttrMetalnessTexture)
}

func (p PbrMetallicRoughnessMaterial) requireMetalness() bool {
	if p.HasMetalnessTexture() {
		return true
	}
	logger.Error("texture attribute not present",
		zap.Stringer("attribute", AttrMetalnessTexture),
		zap.Int("layer", 0))
	return false
}

// MetalnessTextureSwizzle returns the channel metalness is read from. The
// packed NoneRoughnessMetallic arrangement pins it to the blue channel, a
// dedicated texture defaults to red.
func (p PbrMetallicRoughnessMaterial) MetalnessTextureSwizzle() TextureSwizzle {
	if !p.requireMetalness() {
		return 0
	}
	if HasAttribute(p.Material, 0, AttrNoneRoughnessMetallicTexture) {
		return SwizzleB
	}
	return AttributeOr(p.Material, 0, AttrMetalnessTextureSwizzle, SwizzleR)
}

// MetalnessTextureMatrix returns the metalness texture transform, requires
// the texture to be present.
func (p PbrMetallicRoughnessMaterial) MetalnessTextureMatrix() mgl32.Mat3 {
	if !p.requireMetalness() {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrMetalnessTextureMatrix)
}

// MetalnessTextureCoordinates returns the metalness texture coordinate set,
// requires the texture to be present.
func (p PbrMetallicRoughnessMaterial) MetalnessTextureCoordinates() uint32 {
	if !p.requireMetalness() {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrMetalnessTextureCoordinates)
}

// Roughness returns the roughness factor, 1.0 unless set.
func (p PbrMetallicRoughnessMaterial) Roughness() float32 {
	return AttributeOr(p.Material, 0, AttrRoughness, float32(1))
}

// HasRoughnessTexture reports whether roughness comes from a texture,
// either a dedicated one or a packed arrangement.
func (p PbrMetallicRoughnessMaterial) HasRoughnessTexture() bool {
	return HasAttribute(p.Material, 0, AttrRoughnessTexture) ||
		HasAttribute(p.Material, 0, AttrNoneRoughnessMetallicTexture)
}

// RoughnessTexture returns the roughness texture index.
func (p PbrMetallicRoughnessMaterial) RoughnessTexture() uint32 {
	if v, ok := FindAttributeValue[uint32](p.Material, 0, AttrNoneRoughnessMetallicTexture); ok {
		return v
	}
	return AttributeValue[uint32](p.Material, 0, AttrRoughnessTexture)
}

func (p PbrMetallicRoughnessMaterial) requireRoughness() bool {
	if p.HasRoughnessTexture() {
		return true
	}
	logger.Error("texture attribute not present",
		zap.Stringer("attribute", AttrRoughnessTexture),
		zap.Int("layer", 0))
	return false
}

// RoughnessTextureSwizzle returns the channel roughness is read from. The
// packed NoneRoughnessMetallic arrangement pins it to the green channel, a
// dedicated texture defaults to red.
func (p PbrMetallicRoughnessMaterial) RoughnessTextureSwizzle() TextureSwizzle {
	if !p.requireRoughness() {
		return 0
	}
	if HasAttribute(p.Material, 0, AttrNoneRoughnessMetallicTexture) {
		return SwizzleG
	}
	return AttributeOr(p.Material, 0, AttrRoughnessTextureSwizzle, SwizzleR)
}

// RoughnessTextureMatrix returns the roughness texture transform, requires
// the texture to be present.
func (p PbrMetallicRoughnessMaterial) RoughnessTextureMatrix() mgl32.Mat3 {
	if !p.requireRoughness() {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrRoughnessTextureMatrix)
}

// RoughnessTextureCoordinates returns the roughness texture coordinate set,
// requires the texture to be present.
func (p PbrMetallicRoughnessMaterial) RoughnessTextureCoordinates() uint32 {
	if !p.requireRoughness() {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrRoughnessTextureCoordinates)
}

// HasNormalTexture reports whether a normal map is present.
func (p PbrMetallicRoughnessMaterial) HasNormalTexture() bool {
	return HasAttribute(p.Material, 0, AttrNormalTexture)
}

// NormalTexture returns the normal map texture index.
func (p PbrMetallicRoughnessMaterial) NormalTexture() uint32 {
	return AttributeValue[uint32](p.Material, 0, AttrNormalTexture)
}

// NormalTextureScale returns the normal map intensity scale, 1.0 unless
// set.
func (p PbrMetallicRoughnessMaterial) NormalTextureScale() float32 {
	return AttributeOr(p.Material, 0, AttrNormalTextureScale, float32(1))
}

// NormalTextureSwizzle returns the channels the normal is read from, RGB
// unless overridden. Requires the texture to be present.
func (p PbrMetallicRoughnessMaterial) NormalTextureSwizzle() TextureSwizzle {
	if !requireTexture(p.Material, 0, AttrNormalTexture) {
		return 0
	}
	return AttributeOr(p.Material, 0, AttrNormalTextureSwizzle, SwizzleRGB)
}

// NormalTextureMatrix returns the normal map transform, requires the
// texture to be present.
func (p PbrMetallicRoughnessMaterial) NormalTextureMatrix() mgl32.Mat3 {
	if !requireTexture(p.Material, 0, AttrNormalTexture) {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrNormalTextureMatrix)
}

// NormalTextureCoordinates returns the normal map coordinate set, requires
// the texture to be present.
func (p PbrMetallicRoughnessMaterial) NormalTextureCoordinates() uint32 {
	if !requireTexture(p.Material, 0, AttrNormalTexture) {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrNormalTextureCoordinates)
}

// HasOcclusionTexture reports whether an occlusion map is present.
func (p PbrMetallicRoughnessMaterial) HasOcclusionTexture() bool {
	return HasAttribute(p.Material, 0, AttrOcclusionTexture)
}

// OcclusionTexture returns the occlusion map texture index.
func (p PbrMetallicRoughnessMaterial) OcclusionTexture() uint32 {
	return AttributeValue[uint32](p.Material, 0, AttrOcclusionTexture)
}

// OcclusionTextureStrength returns the occlusion effect strength, 1.0
// unless set.
func (p PbrMetallicRoughnessMaterial) OcclusionTextureStrength() float32 {
	return AttributeOr(p.Material, 0, AttrOcclusionTextureStrength, float32(1))
}

// OcclusionTextureSwizzle returns the channel occlusion is read from, red
// unless overridden. Requires the texture to be present.
func (p PbrMetallicRoughnessMaterial) OcclusionTextureSwizzle() TextureSwizzle {
	if !requireTexture(p.Material, 0, AttrOcclusionTexture) {
		return 0
	}
	return AttributeOr(p.Material, 0, AttrOcclusionTextureSwizzle, SwizzleR)
}

// OcclusionTextureMatrix returns the occlusion map transform, requires the
// texture to be present.
func (p PbrMetallicRoughnessMaterial) OcclusionTextureMatrix() mgl32.Mat3 {
	if !requireTexture(p.Material, 0, AttrOcclusionTexture) {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrOcclusionTextureMatrix)
}

// OcclusionTextureCoordinates returns the occlusion map coordinate set,
// requires the texture to be present.
func (p PbrMetallicRoughnessMaterial) OcclusionTextureCoordinates() uint32 {
	if !requireTexture(p.Material, 0, AttrOcclusionTexture) {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrOcclusionTextureCoordinates)
}

// EmissiveColor returns the emissive color, black unless set.
func (p PbrMetallicRoughnessMaterial) EmissiveColor() mgl32.Vec3 {
	return AttributeOr(p.Material, 0, AttrEmissiveColor, mgl32.Vec3{})
}

// HasEmissiveTexture reports whether emission comes from a texture.
func (p PbrMetallicRoughnessMaterial) HasEmissiveTexture() bool {
	return HasAttribute(p.Material, 0, AttrEmissiveTexture)
}

// EmissiveTexture returns the emissive texture index.
func (p PbrMetallicRoughnessMaterial) EmissiveTexture() uint32 {
	return AttributeValue[uint32](p.Material, 0, AttrEmissiveTexture)
}

// EmissiveTextureMatrix returns the emissive texture transform, requires
// the texture to be present.
func (p PbrMetallicRoughnessMaterial) EmissiveTextureMatrix() mgl32.Mat3 {
	if !requireTexture(p.Material, 0, AttrEmissiveTexture) {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(p.Material, 0, AttrEmissiveTextureMatrix)
}

// EmissiveTextureCoordinates returns the emissive texture coordinate set,
// requires the texture to be present.
func (p PbrMetallicRoughnessMaterial) EmissiveTextureCoordinates() uint32 {
	if !requireTexture(p.Material, 0, AttrEmissiveTexture) {
		return 0
	}
	return effectiveTextureCoordinates(p.Material, 0, AttrEmissiveTextureCoordinates)
}

// HasNoneRoughnessMetallicTexture reports whether roughness and metalness
// are packed into one texture with roughness in green and metalness in
// blue, reading from the same transform and coordinate set. That matches
// the glTF metallicRoughnessTexture, the red channel stays free for
// occlusion.
func (p PbrMetallicRoughnessMaterial) HasNoneRoughnessMetallicTexture() bool {
	if !p.HasMetalnessTexture() || !p.HasRoughnessTexture() {
		return false
	}
	return p.MetalnessTexture() == p.RoughnessTexture() &&
		p.MetalnessTextureSwizzle() == SwizzleB &&
		p.RoughnessTextureSwizzle() == SwizzleG &&
		p.MetalnessTextureMatrix() == p.RoughnessTextureMatrix() &&
		p.MetalnessTextureCoordinates() == p.RoughnessTextureCoordinates()
}

// HasRoughnessMetallicOcclusionTexture reports whether roughness, metalness
// and occlusion are packed into one texture in the R, G and B channels with
// a shared transform and coordinate set.
func (p PbrMetallicRoughnessMaterial) HasRoughnessMetallicOcclusionTexture() bool {
	if !p.HasMetalnessTexture() || !p.HasRoughnessTexture() || !p.HasOcclusionTexture() {
		return false
	}
	return p.RoughnessTexture() == p.MetalnessTexture() &&
		p.MetalnessTexture() == p.OcclusionTexture() &&
		p.RoughnessTextureSwizzle() == SwizzleR &&
		p.MetalnessTextureSwizzle() == SwizzleG &&
		p.OcclusionTextureSwizzle() == SwizzleB &&
		p.RoughnessTextureMatrix() == p.MetalnessTextureMatrix() &&
		p.MetalnessTextureMatrix() == p.OcclusionTextureMatrix() &&
		p.RoughnessTextureCoordinates() == p.MetalnessTextureCoordinates() &&
		p.MetalnessTextureCoordinates() == p.OcclusionTextureCoordinates()
}

// HasOcclusionRoughnessMetallicTexture reports whether occlusion, roughness
// and metalness are packed into one texture in the R, G and B channels with
// a shared transform and coordinate set. That matches the common glTF ORM
// packing.
func (p PbrMetallicRoughnessMaterial) HasOcclusionRoughnessMetallicTexture() bool {
	if !p.HasMetalnessTexture() || !p.HasRoughnessTexture() || !p.HasOcclusionTexture() {
		return false
	}
	return p.OcclusionTexture() == p.RoughnessTexture() &&
		p.RoughnessTexture() == p.MetalnessTexture() &&
		p.OcclusionTextureSwizzle() == SwizzleR &&
		p.RoughnessTextureSwizzle() == SwizzleG &&
		p.MetalnessTextureSwizzle() == SwizzleB &&
		p.OcclusionTextureMatrix() == p.RoughnessTextureMatrix() &&
		p.RoughnessTextureMatrix() == p.MetalnessTextureMatrix() &&
		p.OcclusionTextureCoordinates() == p.RoughnessTextureCoordinates() &&
		p.RoughnessTextureCoordinates() == p.MetalnessTextureCoordinates()
}

// HasNormalRoughnessMetallicTexture reports whether a two-channel normal
// map shares one texture with roughness in blue and metalness in alpha,
// with a shared transform and coordinate set.
func (p PbrMetallicRoughnessMaterial) HasNormalRoughnessMetallicTexture() bool {
	if !p.HasNormalTexture() || !p.HasMetalnessTexture() || !p.HasRoughnessTexture() {
		return false
	}
	return p.NormalTexture() == p.RoughnessTexture() &&
		p.RoughnessTexture() == p.MetalnessTexture() &&
		p.NormalTextureSwizzle() == SwizzleRG &&
		p.RoughnessTextureSwizzle() == SwizzleB &&
		p.MetalnessTextureSwizzle() == SwizzleA &&
		p.NormalTextureMatrix() == p.RoughnessTextureMatrix() &&
		p.RoughnessTextureMatrix() == p.MetalnessTextureMatrix() &&
		p.NormalTextureCoordinates() == p.RoughnessTextureCoordinates() &&
		p.RoughnessTextureCoordinates() == p.MetalnessTextureCoordinates()
}

// HasTextureTransformation reports whether any texture uses a non-default
// coordinate transform.
func (p PbrMetallicRoughnessMaterial) HasTextureTransformation() bool {
	return anyTextureTransformation(p.Material, 0, metallicRoughnessProbes)
}

// HasCommonTextureTransformation reports whether all present textures
// resolve to one shared transform.
func (p PbrMetallicRoughnessMaterial) HasCommonTextureTransformation() bool {
	return texturesShareMatrix(p.Material, 0, metallicRoughnessProbes)
}

// CommonTextureMatrix returns the transform shared by all present textures,
// requires HasCommonTextureTransformation.
func (p PbrMetallicRoughnessMaterial) CommonTextureMatrix() mgl32.Mat3 {
	if !p.HasCommonTextureTransformation() {
		logger.Error("textures use different transforms")
		return mgl32.Mat3{}
	}
	return sharedTextureMatrix(p.Material, 0, metallicRoughnessProbes)
}

// HasTextureCoordinates reports whether any texture reads a non-default
// coordinate set.
func (p PbrMetallicRoughnessMaterial) HasTextureCoordinates() bool {
	return anyTextureCoordinates(p.Material, 0, metallicRoughnessProbes)
}

// HasCommonTextureCoordinates reports whether all present textures read the
// same coordinate set.
func (p PbrMetallicRoughnessMaterial) HasCommonTextureCoordinates() bool {
	return texturesShareCoordinates(p.Material, 0, metallicRoughnessProbes)
}

// CommonTextureCoordinates returns the coordinate set shared by all present
// textures, requires HasCommonTextureCoordinates.
func (p PbrMetallicRoughnessMaterial) CommonTextureCoordinates() uint32 {
	if !p.HasCommonTextureCoordinates() {
		logger.Error("textures use different coordinate sets")
		return 0
	}
	return sharedTextureCoordinates(p.Material, 0, metallicRoughnessProbes)
}
