package material

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/matforge/matforge/pkg/logger"
)

// textureProbe names one texture family of a shading-model view: the texture
// attribute itself plus its per-texture transform overrides. The common
// transform helpers below walk a view's probes to decide whether every
// present texture resolves to one shared transform.
type textureProbe struct {
	texture     Attr
	matrix      Attr
	coordinates Attr
}

// requireTexture backs the accessors that are only meaningful with their
// texture present. A miss logs and makes the accessor return a zero value.
func requireTexture(m *Material, layer int, texture Attr) bool {
	if HasAttribute(m, layer, texture) {
		return true
	}
	logger.Error("texture attribute not present",
		zap.Stringer("attribute", texture),
		zap.Int("layer", layer))
	return false
}

// effectiveTextureMatrix resolves the transform of one texture family: the
// per-texture attribute, then the generic one in the same layer, then the
// generic one on the base material, then identity.
func effectiveTextureMatrix(m *Material, layer int, specific Attr) mgl32.Mat3 {
	if v, ok := FindAttributeValue[mgl32.Mat3](m, layer, specific); ok {
		return v
	}
	if v, ok := FindAttributeValue[mgl32.Mat3](m, layer, AttrTextureMatrix); ok {
		return v
	}
	return AttributeOr(m, 0, AttrTextureMatrix, mgl32.Ident3())
}

// effectiveTextureCoordinates resolves the coordinate set of one texture
// family with the same fallback order as effectiveTextureMatrix.
func effectiveTextureCoordinates(m *Material, layer int, specific Attr) uint32 {
	if v, ok := FindAttributeValue[uint32](m, layer, specific); ok {
		return v
	}
	if v, ok := FindAttributeValue[uint32](m, layer, AttrTextureCoordinates); ok {
		return v
	}
	return AttributeOr(m, 0, AttrTextureCoordinates, uint32(0))
}

// effectiveTextureLayer resolves the array layer of one texture family with
// the same fallback order as effectiveTextureMatrix.
func effectiveTextureLayer(m *Material, layer int, specific Attr) uint32 {
	if v, ok := FindAttributeValue[uint32](m, layer, specific); ok {
		return v
	}
	if v, ok := FindAttributeValue[uint32](m, layer, AttrTextureLayer); ok {
		return v
	}
	return AttributeOr(m, 0, AttrTextureLayer, uint32(0))
}

// anyTextureTransformation reports whether any probe carries a per-texture
// matrix or a generic matrix applies to the layer.
func anyTextureTransformation(m *Material, layer int, probes []textureProbe) bool {
	for _, p := range probes {
		if HasAttribute(m, layer, p.matrix) {
			return true
		}
	}
	if HasAttribute(m, layer, AttrTextureMatrix) {
		return true
	}
	return layer != 0 && HasAttribute(m, 0, AttrTextureMatrix)
}

// anyTextureCoordinates reports whether any probe carries a per-texture
// coordinate set or a generic one applies to the layer.
func anyTextureCoordinates(m *Material, layer int, probes []textureProbe) bool {
	for _, p := range probes {
		if HasAttribute(m, layer, p.coordinates) {
			return true
		}
	}
	if HasAttribute(m, layer, AttrTextureCoordinates) {
		return true
	}
	return layer != 0 && HasAttribute(m, 0, AttrTextureCoordinates)
}

// texturesShareMatrix reports whether all present textures resolve to the
// same transform. Vacuously true with one or no texture present.
func texturesShareMatrix(m *Material, layer int, probes []textureProbe) bool {
	var first *mgl32.Mat3
	for _, p := range probes {
		if !HasAttribute(m, layer, p.texture) {
			continue
		}
		mat := effectiveTextureMatrix(m, layer, p.matrix)
		if first == nil {
			first = &mat
		} else if mat != *first {
			return false
		}
	}
	return true
}

// texturesShareCoordinates is texturesShareMatrix for coordinate sets.
func texturesShareCoordinates(m *Material, layer int, probes []textureProbe) bool {
	var first *uint32
	for _, p := range probes {
		if !HasAttribute(m, layer, p.texture) {
			continue
		}
		set := effectiveTextureCoordinates(m, layer, p.coordinates)
		if first == nil {
			first = &set
		} else if set != *first {
			return false
		}
	}
	return true
}

// sharedTextureMatrix returns the transform common to all present textures,
// assuming texturesShareMatrix holds. Without any texture it degrades to the
// generic attribute resolution.
func sharedTextureMatrix(m *Material, layer int, probes []textureProbe) mgl32.Mat3 {
	for _, p := range probes {
		if HasAttribute(m, layer, p.texture) {
			return effectiveTextureMatrix(m, layer, p.matrix)
		}
	}
	return effectiveTextureMatrix(m, layer, 0)
}

// sharedTextureCoordinates is sharedTextureMatrix for coordinate sets.
func sharedTextureCoordinates(m *Material, layer int, probes []textureProbe) uint32 {
	for _, p := range probes {
		if HasAttribute(m, layer, p.texture) {
			return effectiveTextureCoordinates(m, layer, p.coordinates)
		}
	}
	return effectiveTextureCoordinates(m, layer, 0)
}
