package material

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/matforge/matforge/pkg/logger"
)

// PbrClearCoatMaterial is a view over the ClearCoat layer of a material.
// Unlike the base-layer views it reads from the named layer, with the
// generic texture transform attributes still falling back to the base
// material.
type PbrClearCoatMaterial struct {
	*Material
	layer int
	found bool
}

// AsPbrClearCoat returns the clear coat view of the material. The material
// is expected to advertise the PbrClearCoat shading model. Exists reports
// whether the ClearCoat layer is actually present, the value accessors
// degrade to zero values without it.
func (m *Material) AsPbrClearCoat() PbrClearCoatMaterial {
	m.checkShadingModel(PbrClearCoat)
	layer, found := m.FindLayerID(LayerClearCoat.String())
	return PbrClearCoatMaterial{Material: m, layer: layer, found: found}
}

// Exists reports whether the material carries a ClearCoat layer.
func (c PbrClearCoatMaterial) Exists() bool {
	return c.found
}

// LayerIndex returns the index of the ClearCoat layer, zero when absent.
func (c PbrClearCoatMaterial) LayerIndex() int {
	return c.layer
}

func (c PbrClearCoatMaterial) requireLayer() bool {
	if c.found {
		return true
	}
	logger.Error("material has no clear coat layer")
	return false
}

// Factor returns the coat blend factor, 1.0 when the layer does not set
// one.
func (c PbrClearCoatMaterial) Factor() float32 {
	if !c.requireLayer() {
		return 0
	}
	return c.Material.LayerFactor(c.layer)
}

// HasFactorTexture reports whether the blend factor comes from a texture.
func (c PbrClearCoatMaterial) HasFactorTexture() bool {
	return c.found && HasAttribute(c.Material, c.layer, AttrLayerFactorTexture)
}

// FactorTexture returns the texture index driving the blend factor.
func (c PbrClearCoatMaterial) FactorTexture() uint32 {
	if !c.requireLayer() {
		return 0
	}
	return c.Material.LayerFactorTexture(c.layer)
}

// FactorTextureSwizzle returns the channel the blend factor is read from,
// red unless overridden.
func (c PbrClearCoatMaterial) FactorTextureSwizzle() TextureSwizzle {
	if !c.requireLayer() {
		return 0
	}
	return c.Material.LayerFactorTextureSwizzle(c.layer)
}

// FactorTextureMatrix returns the factor texture transform resolved through
// the layered fallback chain.
func (c PbrClearCoatMaterial) FactorTextureMatrix() mgl32.Mat3 {
	if !c.requireLayer() {
		return mgl32.Mat3{}
	}
	return c.Material.LayerFactorTextureMatrix(c.layer)
}

// FactorTextureCoordinates returns the factor texture coordinate set
// resolved through the layered fallback chain.
func (c PbrClearCoatMaterial) FactorTextureCoordinates() uint32 {
	if !c.requireLayer() {
		return 0
	}
	return c.Material.LayerFactorTextureCoordinates(c.layer)
}

// FactorTextureLayer returns the factor texture array layer resolved
// through the layered fallback chain.
func (c PbrClearCoatMaterial) FactorTextureLayer() uint32 {
	if !c.requireLayer() {
		return 0
	}
	return c.Material.LayerFactorTextureLayer(c.layer)
}

// Roughness returns the coat roughness, 0.0 unless set.
func (c PbrClearCoatMaterial) Roughness() float32 {
	if !c.requireLayer() {
		return 0
	}
	return AttributeOr(c.Material, c.layer, AttrRoughness, float32(0))
}

// HasRoughnessTexture reports whether the coat roughness comes from a
// texture.
func (c PbrClearCoatMaterial) HasRoughnessTexture() bool {
	return c.found && HasAttribute(c.Material, c.layer, AttrRoughnessTexture)
}

// RoughnessTexture returns the coat roughness texture index.
func (c PbrClearCoatMaterial) RoughnessTexture() uint32 {
	if !c.requireLayer() {
		return 0
	}
	return AttributeValue[uint32](c.Material, c.layer, AttrRoughnessTexture)
}

// RoughnessTextureSwizzle returns the channel the coat roughness is read
// from, red unless overridden. Requires the texture to be present.
func (c PbrClearCoatMaterial) RoughnessTextureSwizzle() TextureSwizzle {
	if !c.requireLayer() || !requireTexture(c.Material, c.layer, AttrRoughnessTexture) {
		return 0
	}
	return AttributeOr(c.Material, c.layer, AttrRoughnessTextureSwizzle, SwizzleR)
}

// RoughnessTextureMatrix returns the coat roughness texture transform,
// requires the texture to be present.
func (c PbrClearCoatMaterial) RoughnessTextureMatrix() mgl32.Mat3 {
	if !c.requireLayer() || !requireTexture(c.Material, c.layer, AttrRoughnessTexture) {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(c.Material, c.layer, AttrRoughnessTextureMatrix)
}

// RoughnessTextureCoordinates returns the coat roughness texture coordinate
// set, requires the texture to be present.
func (c PbrClearCoatMaterial) RoughnessTextureCoordinates() uint32 {
	if !c.requireLayer() || !requireTexture(c.Material, c.layer, AttrRoughnessTexture) {
		return 0
	}
	return effectiveTextureCoordinates(c.Material, c.layer, AttrRoughnessTextureCoordinates)
}

// HasNormalTexture reports whether the coat has its own normal map.
func (c PbrClearCoatMaterial) HasNormalTexture() bool {
	return c.found && HasAttribute(c.Material, c.layer, AttrNormalTexture)
}

// NormalTexture returns the coat normal map texture index.
func (c PbrClearCoatMaterial) NormalTexture() uint32 {
	if !c.requireLayer() {
		return 0
	}
	return AttributeValue[uint32](c.Material, c.layer, AttrNormalTexture)
}

// NormalTextureScale returns the coat normal map intensity scale, 1.0
// unless set.
func (c PbrClearCoatMaterial) NormalTextureScale() float32 {
	if !c.requireLayer() {
		return 0
	}
	return AttributeOr(c.Material, c.layer, AttrNormalTextureScale, float32(1))
}

// NormalTextureSwizzle returns the channels the coat normal is read from,
// RGB unless overridden. Requires the texture to be present.
func (c PbrClearCoatMaterial) NormalTextureSwizzle() TextureSwizzle {
	if !c.requireLayer() || !requireTexture(c.Material, c.layer, AttrNormalTexture) {
		return 0
	}
	return AttributeOr(c.Material, c.layer, AttrNormalTextureSwizzle, SwizzleRGB)
}

// NormalTextureMatrix returns the coat normal map transform, requires the
// texture to be present.
func (c PbrClearCoatMaterial) NormalTextureMatrix() mgl32.Mat3 {
	if !c.requireLayer() || !requireTexture(c.Material, c.layer, AttrNormalTexture) {
		return mgl32.Mat3{}
	}
	return effectiveTextureMatrix(c.Material, c.layer, AttrNormalTextureMatrix)
}

// NormalTextureCoordinates returns the coat normal map coordinate set,
// requires the texture to be present.
func (c PbrClearCoatMaterial) NormalTextureCoordinates() uint32 {
	if !c.requireLayer() || !requireTexture(c.Material, c.layer, AttrNormalTexture) {
		return 0
	}
	return effectiveTextureCoordinates(c.Material, c.layer, AttrNormalTextureCoordinates)
}
