package materialtools

import (
	"go.uber.org/zap"

	"github.com/matforge/matforge/pkg/errors"
	"github.com/matforge/matforge/pkg/logger"
	"github.com/matforge/matforge/pkg/material"
)

// ConversionFlag adjusts what PhongToPbrMetallicRoughness does with Phong
// attributes that have no metallic/roughness counterpart.
type ConversionFlag uint8

const (
	// ConversionFail refuses the whole conversion on the first attribute
	// without a counterpart. Wins over DropUnconvertible when both are set.
	ConversionFail ConversionFlag = 1 << iota
	// DropUnconvertible leaves attributes without a counterpart out of the
	// result instead of carrying them over verbatim.
	DropUnconvertible
	// KeepOriginal keeps converted attributes next to the attributes they
	// produced.
	KeepOriginal
)

// ConversionFlags is a set of conversion adjustments.
type ConversionFlags uint8

// Has reports whether the set contains flag.
func (f ConversionFlags) Has(flag ConversionFlag) bool {
	return uint8(f)&uint8(flag) != 0
}

// diffuseConversions lists the base-layer renames the conversion performs.
// Texture subproperties move only together with the texture itself, an
// orphaned matrix or coordinate set stays what it is.
var diffuseConversions = [...]struct {
	from, to    material.Attr
	needTexture bool
}{
	{material.AttrDiffuseColor, material.AttrBaseColor, false},
	{material.AttrDiffuseTexture, material.AttrBaseColorTexture, false},
	{material.AttrDiffuseTextureMatrix, material.AttrBaseColorTextureMatrix, true},
	{material.AttrDiffuseTextureCoordinates, material.AttrBaseColorTextureCoordinates, true},
	{material.AttrDiffuseTextureLayer, material.AttrBaseColorTextureLayer, true},
}

// unconvertibles lists the Phong attributes with no metallic/roughness
// equivalent, in the order problems get reported.
var unconvertibles = [...]material.Attr{
	material.AttrAmbientColor,
	material.AttrSpecularColor,
	material.AttrAmbientTexture,
	material.AttrSpecularTexture,
	material.AttrShininess,
}

// unconvertibleSubproperties follow their texture when DropUnconvertible
// removes it.
var unconvertibleSubproperties = map[material.Attr][]material.Attr{
	material.AttrAmbientTexture: {
		material.AttrAmbientTextureMatrix,
		material.AttrAmbientTextureCoordinates,
		material.AttrAmbientTextureLayer,
	},
	material.AttrSpecularTexture: {
		material.AttrSpecularTextureSwizzle,
		material.AttrSpecularTextureMatrix,
		material.AttrSpecularTextureCoordinates,
		material.AttrSpecularTextureLayer,
	},
}

// PhongToPbrMetallicRoughness derives a metallic/roughness material from a
// Phong one. In the base layer, diffuse color and texture become base color
// and texture, and the texture's matrix, coordinates and array layer move
// along with it. Metallic/roughness attributes already present win: the
// diffuse source they shadow is consumed without converting. Ambient and
// specular attributes and shininess have no counterpart; they stay in
// place with a warning unless flags say to drop them or to fail instead.
// Layers above the base carry over untouched, and the resulting type set
// trades Phong for PbrMetallicRoughness.
func PhongToPbrMetallicRoughness(m *material.Material, flags ConversionFlags) (*material.Material, error) {
	drop := make(map[string]bool)
	for _, id := range unconvertibles {
		if !material.HasAttribute(m, 0, id) {
			continue
		}
		if flags.Has(ConversionFail) {
			return nil, errors.Newf(errors.ErrorTypeContract,
				"unconvertible %s attribute", id)
		}
		logger.Warn("unconvertible attribute, skipping",
			zap.Stringer("attribute", id))
		if flags.Has(DropUnconvertible) {
			drop[id.String()] = true
			for _, sub := range unconvertibleSubproperties[id] {
				drop[sub.String()] = true
			}
		}
	}

	// Conversion targets by source name. Attr zero marks a source whose
	// target family already exists: it is consumed without a rename.
	rename := make(map[string]material.Attr, len(diffuseConversions))
	hasTexture := material.HasAttribute(m, 0, material.AttrDiffuseTexture)
	for _, conv := range diffuseConversions {
		if conv.needTexture && !hasTexture {
			continue
		}
		rename[conv.from.String()] = conv.to
	}
	if material.HasAttribute(m, 0, material.AttrBaseColor) {
		rename[material.AttrDiffuseColor.String()] = 0
	}
	if material.HasAttribute(m, 0, material.AttrBaseColorTexture) {
		for _, conv := range diffuseConversions[1:] {
			if _, ok := rename[conv.from.String()]; ok {
				rename[conv.from.String()] = 0
			}
		}
	}

	base := layerRun(m, 0)
	out := make([]material.Attribute, 0, len(m.AttributeData())+2)
	for i := range base {
		a := base[i]
		if drop[a.Name()] {
			continue
		}
		to, convert := rename[a.Name()]
		if !convert {
			out = append(out, a)
			continue
		}
		if to != 0 {
			renamed, err := material.NewAttributeOf(to, a.Value())
			if err != nil {
				return nil, err
			}
			out = append(out, renamed)
		}
		if flags.Has(KeepOriginal) {
			out = append(out, a)
		}
	}

	offsets := make([]uint32, 0, m.LayerCount())
	offsets = append(offsets, uint32(len(out)))
	for layer := 1; layer < m.LayerCount(); layer++ {
		out = append(out, layerRun(m, layer)...)
		offsets = append(offsets, uint32(len(out)))
	}
	if len(offsets) == 1 {
		offsets = nil
	}
	types := (m.Types() &^ material.MaterialTypes(material.Phong)) |
		material.MaterialTypes(material.PbrMetallicRoughness)
	return material.New(types, out, offsets)
}
