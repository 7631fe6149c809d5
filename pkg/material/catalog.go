package material

import (
	stringpool "github.com/matforge/matforge/pkg/strings"
)

// LayerNameAttribute is the reserved per-layer name key. The leading space
// keeps it outside the namespace available to custom attributes, whose names
// are expected to start with a printable character, while still sorting
// before them.
const LayerNameAttribute = " LayerName"

// Attr identifies a well-known attribute. Creating one through
// NewAttributeOf enforces the payload type listed in the catalog below, so
// for example AttrBaseColor is always a Vector4. Custom attributes with
// free-form names and types go through NewAttribute instead.
type Attr uint8

const (
	// AttrLayerName names a layer. Stored under LayerNameAttribute.
	AttrLayerName Attr = iota + 1
	// AttrAlphaMask is the cutoff threshold for AlphaModeMask.
	AttrAlphaMask
	AttrAlphaBlend
	AttrDoubleSided

	AttrAmbientColor
	AttrAmbientTexture
	AttrAmbientTextureMatrix
	AttrAmbientTextureCoordinates
	AttrAmbientTextureLayer

	AttrDiffuseColor
	AttrDiffuseTexture
	AttrDiffuseTextureMatrix
	AttrDiffuseTextureCoordinates
	AttrDiffuseTextureLayer

	AttrSpecularColor
	AttrSpecularTexture
	AttrSpecularTextureSwizzle
	AttrSpecularTextureMatrix
	AttrSpecularTextureCoordinates
	AttrSpecularTextureLayer

	AttrShininess

	AttrBaseColor
	AttrBaseColorTexture
	AttrBaseColorTextureMatrix
	AttrBaseColorTextureCoordinates
	AttrBaseColorTextureLayer

	AttrMetalness
	AttrMetalnessTexture
	AttrMetalnessTextureSwizzle
	AttrMetalnessTextureMatrix
	AttrMetalnessTextureCoordinates
	AttrMetalnessTextureLayer

	AttrRoughness
	AttrRoughnessTexture
	AttrRoughnessTextureSwizzle
	AttrRoughnessTextureMatrix
	AttrRoughnessTextureCoordinates
	AttrRoughnessTextureLayer

	// AttrNoneRoughnessMetallicTexture is a packed texture with roughness
	// in the G channel and metalness in B, the layout glTF uses.
	AttrNoneRoughnessMetallicTexture

	AttrGlossiness
	AttrGlossinessTexture
	AttrGlossinessTextureSwizzle
	AttrGlossinessTextureMatrix
	AttrGlossinessTextureCoordinates
	AttrGlossinessTextureLayer

	// AttrSpecularGlossinessTexture packs specular color into RGB and
	// glossiness into A.
	AttrSpecularGlossinessTexture

	AttrNormalTexture
	AttrNormalTextureScale
	AttrNormalTextureSwizzle
	AttrNormalTextureMatrix
	AttrNormalTextureCoordinates
	AttrNormalTextureLayer

	AttrOcclusionTexture
	AttrOcclusionTextureStrength
	AttrOcclusionTextureSwizzle
	AttrOcclusionTextureMatrix
	AttrOcclusionTextureCoordinates
	AttrOcclusionTextureLayer

	AttrEmissiveColor
	AttrEmissiveTexture
	AttrEmissiveTextureMatrix
	AttrEmissiveTextureCoordinates
	AttrEmissiveTextureLayer

	AttrLayerFactor
	AttrLayerFactorTexture
	AttrLayerFactorTextureSwizzle
	AttrLayerFactorTextureMatrix
	AttrLayerFactorTextureCoordinates
	AttrLayerFactorTextureLayer

	AttrTextureMatrix
	AttrTextureCoordinates
	AttrTextureLayer

	// attrEnd sentinel, keep last.
	attrEnd
)

type attrInfo struct {
	name string
	typ  AttributeType
}

// attrCatalog maps every Attr to its storage name and enforced payload
// type. The catalog test verifies the table has no gaps up to attrEnd.
var attrCatalog = map[Attr]attrInfo{
	AttrLayerName:   {LayerNameAttribute, TypeString},
	AttrAlphaMask:   {"AlphaMask", TypeFloat},
	AttrAlphaBlend:  {"AlphaBlend", TypeBool},
	AttrDoubleSided: {"DoubleSided", TypeBool},

	AttrAmbientColor:              {"AmbientColor", TypeVector4},
	AttrAmbientTexture:            {"AmbientTexture", TypeUnsignedInt},
	AttrAmbientTextureMatrix:      {"AmbientTextureMatrix", TypeMatrix3x3},
	AttrAmbientTextureCoordinates: {"AmbientTextureCoordinates", TypeUnsignedInt},
	AttrAmbientTextureLayer:       {"AmbientTextureLayer", TypeUnsignedInt},

	AttrDiffuseColor:              {"DiffuseColor", TypeVector4},
	AttrDiffuseTexture:            {"DiffuseTexture", TypeUnsignedInt},
	AttrDiffuseTextureMatrix:      {"DiffuseTextureMatrix", TypeMatrix3x3},
	AttrDiffuseTextureCoordinates: {"DiffuseTextureCoordinates", TypeUnsignedInt},
	AttrDiffuseTextureLayer:       {"DiffuseTextureLayer", TypeUnsignedInt},

	AttrSpecularColor:              {"SpecularColor", TypeVector4},
	AttrSpecularTexture:            {"SpecularTexture", TypeUnsignedInt},
	AttrSpecularTextureSwizzle:     {"SpecularTextureSwizzle", TypeTextureSwizzle},
	AttrSpecularTextureMatrix:      {"SpecularTextureMatrix", TypeMatrix3x3},
	AttrSpecularTextureCoordinates: {"SpecularTextureCoordinates", TypeUnsignedInt},
	AttrSpecularTextureLayer:       {"SpecularTextureLayer", TypeUnsignedInt},

	AttrShininess: {"Shininess", TypeFloat},

	AttrBaseColor:                   {"BaseColor", TypeVector4},
	AttrBaseColorTexture:            {"BaseColorTexture", TypeUnsignedInt},
	AttrBaseColorTextureMatrix:      {"BaseColorTextureMatrix", TypeMatrix3x3},
	AttrBaseColorTextureCoordinates: {"BaseColorTextureCoordinates", TypeUnsignedInt},
	AttrBaseColorTextureLayer:       {"BaseColorTextureLayer", TypeUnsignedInt},

	AttrMetalness:                   {"Metalness", TypeFloat},
	AttrMetalnessTexture:            {"MetalnessTexture", TypeUnsignedInt},
	AttrMetalnessTextureSwizzle:     {"MetalnessTextureSwizzle", TypeTextureSwizzle},
	AttrMetalnessTextureMatrix:      {"MetalnessTextureMatrix", TypeMatrix3x3},
	AttrMetalnessTextureCoordinates: {"MetalnessTextureCoordinates", TypeUnsignedInt},
	AttrMetalnessTextureLayer:       {"MetalnessTextureLayer", TypeUnsignedInt},

	AttrRoughness:                   {"Roughness", TypeFloat},
	AttrRoughnessTexture:            {"RoughnessTexture", TypeUnsignedInt},
	AttrRoughnessTextureSwizzle:     {"RoughnessTextureSwizzle", TypeTextureSwizzle},
	AttrRoughnessTextureMatrix:      {"RoughnessTextureMatrix", TypeMatrix3x3},
	AttrRoughnessTextureCoordinates: {"RoughnessTextureCoordinates", TypeUnsignedInt},
	AttrRoughnessTextureLayer:       {"RoughnessTextureLayer", TypeUnsignedInt},

	AttrNoneRoughnessMetallicTexture: {"NoneRoughnessMetallicTexture", TypeUnsignedInt},

	AttrGlossiness:                   {"Glossiness", TypeFloat},
	AttrGlossinessTexture:            {"GlossinessTexture", TypeUnsignedInt},
	AttrGlossinessTextureSwizzle:     {"GlossinessTextureSwizzle", TypeTextureSwizzle},
	AttrGlossinessTextureMatrix:      {"GlossinessTextureMatrix", TypeMatrix3x3},
	AttrGlossinessTextureCoordinates: {"GlossinessTextureCoordinates", TypeUnsignedInt},
	AttrGlossinessTextureLayer:       {"GlossinessTextureLayer", TypeUnsignedInt},

	AttrSpecularGlossinessTexture: {"SpecularGlossinessTexture", TypeUnsignedInt},

	AttrNormalTexture:            {"NormalTexture", TypeUnsignedInt},
	AttrNormalTextureScale:       {"NormalTextureScale", TypeFloat},
	AttrNormalTextureSwizzle:     {"NormalTextureSwizzle", TypeTextureSwizzle},
	AttrNormalTextureMatrix:      {"NormalTextureMatrix", TypeMatrix3x3},
	AttrNormalTextureCoordinates: {"NormalTextureCoordinates", TypeUnsignedInt},
	AttrNormalTextureLayer:       {"NormalTextureLayer", TypeUnsignedInt},

	AttrOcclusionTexture:            {"OcclusionTexture", TypeUnsignedInt},
	AttrOcclusionTextureStrength:    {"OcclusionTextureStrength", TypeFloat},
	AttrOcclusionTextureSwizzle:     {"OcclusionTextureSwizzle", TypeTextureSwizzle},
	AttrOcclusionTextureMatrix:      {"OcclusionTextureMatrix", TypeMatrix3x3},
	AttrOcclusionTextureCoordinates: {"OcclusionTextureCoordinates", TypeUnsignedInt},
	AttrOcclusionTextureLayer:       {"OcclusionTextureLayer", TypeUnsignedInt},

	AttrEmissiveColor:              {"EmissiveColor", TypeVector3},
	AttrEmissiveTexture:            {"EmissiveTexture", TypeUnsignedInt},
	AttrEmissiveTextureMatrix:      {"EmissiveTextureMatrix", TypeMatrix3x3},
	AttrEmissiveTextureCoordinates: {"EmissiveTextureCoordinates", TypeUnsignedInt},
	AttrEmissiveTextureLayer:       {"EmissiveTextureLayer", TypeUnsignedInt},

	AttrLayerFactor:                   {"LayerFactor", TypeFloat},
	AttrLayerFactorTexture:            {"LayerFactorTexture", TypeUnsignedInt},
	AttrLayerFactorTextureSwizzle:     {"LayerFactorTextureSwizzle", TypeTextureSwizzle},
	AttrLayerFactorTextureMatrix:      {"LayerFactorTextureMatrix", TypeMatrix3x3},
	AttrLayerFactorTextureCoordinates: {"LayerFactorTextureCoordinates", TypeUnsignedInt},
	AttrLayerFactorTextureLayer:       {"LayerFactorTextureLayer", TypeUnsignedInt},

	AttrTextureMatrix:      {"TextureMatrix", TypeMatrix3x3},
	AttrTextureCoordinates: {"TextureCoordinates", TypeUnsignedInt},
	AttrTextureLayer:       {"TextureLayer", TypeUnsignedInt},
}

// String returns the storage name of the attribute, which for AttrLayerName
// includes the reserved leading space.
func (a Attr) String() string {
	if info, ok := attrCatalog[a]; ok {
		return info.name
	}
	return stringpool.Sprintf("Attr(%d)", uint8(a))
}

// Type returns the payload type the catalog prescribes for the attribute,
// zero for an unknown id.
func (a Attr) Type() AttributeType {
	return attrCatalog[a].typ
}

// Layer identifies a well-known layer by name.
type Layer uint8

const (
	// LayerClearCoat is a clear lacquer coat on top of the base material.
	LayerClearCoat Layer = iota + 1

	// layerEnd sentinel, keep last.
	layerEnd
)

var layerNames = map[Layer]string{
	LayerClearCoat: "ClearCoat",
}

// String returns the layer name as stored in the LayerNameAttribute record.
func (l Layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return stringpool.Sprintf("Layer(%d)", uint8(l))
}
