package material

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/matforge/matforge/pkg/logger"
)

// LayerFactor returns the blend factor of a layer, 1.0 when the layer does
// not set one.
func (m *Material) LayerFactor(layer int) float32 {
	return AttributeOr(m, layer, AttrLayerFactor, float32(1))
}

// LayerFactorTexture returns the texture index driving the layer's blend
// factor. The attribute has to be present, a miss logs and returns zero.
func (m *Material) LayerFactorTexture(layer int) uint32 {
	return AttributeValue[uint32](m, layer, AttrLayerFactorTexture)
}

// layerFactorFallback resolves the transform attributes of a layer factor
// texture through three tiers: the layer-specific attribute, the generic
// attribute in the same layer, then the generic attribute on the base
// material, with def as the last resort. A zero generic attribute skips the
// two wider tiers. The layer must carry LayerFactorTexture in the first
// place, anything else is reported and yields a zero value.
func layerFactorFallback[T Value](m *Material, layer int, specific, generic Attr, def T) T {
	var zero T
	if !m.checkLayer(layer) {
		return zero
	}
	if !HasAttribute(m, layer, AttrLayerFactorTexture) {
		logger.Error("layer has no factor texture",
			zap.Int("layer", layer),
			zap.Stringer("attribute", specific))
		return zero
	}
	if v, ok := FindAttributeValue[T](m, layer, specific); ok {
		return v
	}
	if generic != 0 {
		if v, ok := FindAttributeValue[T](m, layer, generic); ok {
			return v
		}
		if v, ok := FindAttributeValue[T](m, 0, generic); ok {
			return v
		}
	}
	return def
}

// LayerFactorTextureMatrix returns the coordinate transform of the layer's
// factor texture, falling back to the layer-wide and then material-wide
// texture matrix, and finally to identity.
func (m *Material) LayerFactorTextureMatrix(layer int) mgl32.Mat3 {
	return layerFactorFallback(m, layer,
		AttrLayerFactorTextureMatrix, AttrTextureMatrix, mgl32.Ident3())
}

// LayerFactorTextureCoordinates returns the coordinate set of the layer's
// factor texture, falling back to the layer-wide and then material-wide
// coordinate set, and finally to set 0.
func (m *Material) LayerFactorTextureCoordinates(layer int) uint32 {
	return layerFactorFallback(m, layer,
		AttrLayerFactorTextureCoordinates, AttrTextureCoordinates, uint32(0))
}

// LayerFactorTextureLayer returns the array layer of the layer's factor
// texture, falling back to the layer-wide and then material-wide array
// layer, and finally to layer 0.
func (m *Material) LayerFactorTextureLayer(layer int) uint32 {
	return layerFactorFallback(m, layer,
		AttrLayerFactorTextureLayer, AttrTextureLayer, uint32(0))
}

// LayerFactorTextureSwizzle returns the channel selection of the layer's
// factor texture. There is no material-wide swizzle attribute, so the only
// fallback is the red channel.
func (m *Material) LayerFactorTextureSwizzle(layer int) TextureSwizzle {
	return layerFactorFallback(m, layer,
		AttrLayerFactorTextureSwizzle, 0, SwizzleR)
}

// IsDoubleSided reports whether the material renders both face sides.
func (m *Material) IsDoubleSided() bool {
	return AttributeOr(m, 0, AttrDoubleSided, false)
}

// AlphaMode derives the blending mode from the AlphaBlend and AlphaMask
// attributes on the base layer.
func (m *Material) AlphaMode() AlphaMode {
	if AttributeOr(m, 0, AttrAlphaBlend, false) {
		return AlphaModeBlend
	}
	if HasAttribute(m, 0, AttrAlphaMask) {
		return AlphaModeMask
	}
	return AlphaModeOpaque
}

// AlphaMask returns the alpha cutoff threshold, 0.5 when not set.
func (m *Material) AlphaMask() float32 {
	return AttributeOr(m, 0, AttrAlphaMask, float32(0.5))
}
