// Package formats converts materials to and from human-readable documents.
// A Document is the neutral tree both text codecs share: JSON through the
// pooled goccy wrapper and YAML through yaml.v3. Decoding rebuilds the
// material through the public constructors, so documents from untrusted
// sources pass the same validation as programmatically built materials.
package formats

import (
	"encoding/base64"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/matforge/matforge/pkg/errors"
	"github.com/matforge/matforge/pkg/material"
)

// Document is the serialized form of one material.
type Document struct {
	// Types lists the advertised shading models, e.g. "PbrClearCoat".
	Types []string `json:"types,omitempty" yaml:"types,omitempty"`
	// Layers holds the base layer first, then any named layers on top.
	Layers []LayerDocument `json:"layers" yaml:"layers"`
}

// LayerDocument is one layer of a material. The reserved layer-name record
// and the layer factor surface as fields rather than list entries; every
// other attribute stays in Attributes.
type LayerDocument struct {
	Name       string              `json:"name,omitempty" yaml:"name,omitempty"`
	Factor     *float32            `json:"factor,omitempty" yaml:"factor,omitempty"`
	Attributes []AttributeDocument `json:"attributes" yaml:"attributes"`
}

// AttributeDocument is one attribute. Value renders naturally for the type:
// scalars as numbers, vectors and matrices as flat arrays (matrices in
// column-major order), swizzles as channel letters, buffers as base64 and
// pointers as unsigned integers.
type AttributeDocument struct {
	Name  string      `json:"name" yaml:"name"`
	Type  string      `json:"type" yaml:"type"`
	Value interface{} `json:"value" yaml:"value"`
}

const layerFactorName = "LayerFactor"

// FromMaterial renders a material into its document form.
func FromMaterial(m *material.Material) *Document {
	doc := &Document{}

	for _, t := range []material.MaterialType{
		material.Flat,
		material.Phong,
		material.PbrMetallicRoughness,
		material.PbrSpecularGlossiness,
		material.PbrClearCoat,
	} {
		if m.Types().Is(t) {
			doc.Types = append(doc.Types, t.String())
		}
	}

	for layer := 0; layer < m.LayerCount(); layer++ {
		ld := LayerDocument{Name: m.LayerName(layer)}
		for id := 0; id < m.AttributeCount(layer); id++ {
			a := m.AttributeAt(layer, id)
			if a.Name() == material.LayerNameAttribute {
				continue
			}
			if a.Name() == layerFactorName && a.Type() == material.TypeFloat {
				f := a.Float()
				ld.Factor = &f
				continue
			}
			ld.Attributes = append(ld.Attributes, AttributeDocument{
				Name:  a.Name(),
				Type:  a.Type().String(),
				Value: renderValue(&a),
			})
		}
		doc.Layers = append(doc.Layers, ld)
	}
	return doc
}

// Material rebuilds the material a document describes. Every attribute goes
// through the public constructors and the owning material constructor, so
// malformed documents fail with the same contract errors as malformed code.
func (d *Document) Material() (*material.Material, error) {
	var types material.MaterialTypes
	for _, name := range d.Types {
		t, ok := material.ParseMaterialType(name)
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeFormat, "unknown material type %q", name)
		}
		types |= material.MaterialTypes(t)
	}

	var attrs []material.Attribute
	var offsets []uint32
	for i, layer := range d.Layers {
		if layer.Name != "" {
			if i == 0 {
				return nil, errors.New(errors.ErrorTypeFormat, "the base layer cannot carry a name")
			}
			a, err := material.NewLayerNameAttribute(layer.Name)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, a)
		}
		if layer.Factor != nil {
			a, err := material.NewAttribute(layerFactorName, *layer.Factor)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, a)
		}
		for _, ad := range layer.Attributes {
			a, err := decodeAttribute(ad)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeFormat,
					"layer "+strconv.Itoa(i)+" attribute "+ad.Name)
			}
			attrs = append(attrs, a)
		}
		offsets = append(offsets, uint32(len(attrs)))
	}

	return material.New(types, attrs, offsets)
}

func decodeAttribute(ad AttributeDocument) (material.Attribute, error) {
	// Reserved names surface as layer fields; a list entry carrying one
	// would bypass that mapping.
	if len(ad.Name) > 0 && ad.Name[0] == ' ' {
		return material.Attribute{}, errors.Newf(errors.ErrorTypeFormat,
			"attribute name %q is reserved", ad.Name)
	}
	t, ok := material.ParseAttributeType(ad.Type)
	if !ok {
		return material.Attribute{}, errors.Newf(errors.ErrorTypeFormat, "unknown attribute type %q", ad.Type)
	}
	value, err := parseValue(t, ad.Value)
	if err != nil {
		return material.Attribute{}, err
	}
	return material.NewAttributeTyped(ad.Name, t, value)
}

// renderValue boxes a payload into the document representation of its type.
func renderValue(a *material.Attribute) interface{} {
	switch a.Type() {
	case material.TypeBool:
		return a.Bool()
	case material.TypeFloat:
		return a.Float()
	case material.TypeDeg:
		return float32(a.Deg())
	case material.TypeRad:
		return float32(a.Rad())
	case material.TypeUnsignedInt:
		return a.Uint32()
	case material.TypeInt:
		return a.Int32()
	case material.TypeUnsignedLong:
		return a.Uint64()
	case material.TypeLong:
		return a.Int64()
	case material.TypeVector2:
		v := a.Vec2()
		return v[:]
	case material.TypeVector2ui:
		v := a.Vec2ui()
		return v[:]
	case material.TypeVector2i:
		v := a.Vec2i()
		return v[:]
	case material.TypeVector3:
		v := a.Vec3()
		return v[:]
	case material.TypeVector3ui:
		v := a.Vec3ui()
		return v[:]
	case material.TypeVector3i:
		v := a.Vec3i()
		return v[:]
	case material.TypeVector4:
		v := a.Vec4()
		return v[:]
	case material.TypeVector4ui:
		v := a.Vec4ui()
		return v[:]
	case material.TypeVector4i:
		v := a.Vec4i()
		return v[:]
	case material.TypeMatrix2x2:
		v := a.Mat2()
		return v[:]
	case material.TypeMatrix2x3:
		v := a.Mat2x3()
		return v[:]
	case material.TypeMatrix2x4:
		v := a.Mat2x4()
		return v[:]
	case material.TypeMatrix3x2:
		v := a.Mat3x2()
		return v[:]
	case material.TypeMatrix3x3:
		v := a.Mat3()
		return v[:]
	case material.TypeMatrix3x4:
		v := a.Mat3x4()
		return v[:]
	case material.TypeMatrix4x2:
		v := a.Mat4x2()
		return v[:]
	case material.TypeMatrix4x3:
		v := a.Mat4x3()
		return v[:]
	case material.TypePointer:
		return uint64(a.Pointer())
	case material.TypeMutablePointer:
		return uint64(a.MutablePointer())
	case material.TypeString:
		return a.StringValue()
	case material.TypeTextureSwizzle:
		return a.Swizzle().String()
	case material.TypeBuffer:
		return base64.StdEncoding.EncodeToString(a.Buffer())
	}
	return nil
}

// parseValue converts a decoded document value (JSON gives float64 numbers,
// YAML gives int and float64) into the concrete Go type the attribute
// constructor expects for t.
func parseValue(t material.AttributeType, raw interface{}) (interface{}, error) {
	switch t {
	case material.TypeBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, typeErr(t, raw)
		}
		return b, nil
	case material.TypeFloat:
		f, ok := asFloat32(raw)
		if !ok {
			return nil, typeErr(t, raw)
		}
		return f, nil
	case material.TypeDeg:
		f, ok := asFloat32(raw)
		if !ok {
			return nil, typeErr(t, raw)
		}
		return material.Deg(f), nil
	case material.TypeRad:
		f, ok := asFloat32(raw)
		if !ok {
			return nil, typeErr(t, raw)
		}
		return material.Rad(f), nil
	case material.TypeUnsignedInt:
		u, ok := asUint64(raw)
		if !ok || u > math.MaxUint32 {
			return nil, typeErr(t, raw)
		}
		return uint32(u), nil
	case material.TypeInt:
		i, ok := asInt64(raw)
		if !ok || i < math.MinInt32 || i > math.MaxInt32 {
			return nil, typeErr(t, raw)
		}
		return int32(i), nil
	case material.TypeUnsignedLong:
		u, ok := asUint64(raw)
		if !ok {
			return nil, typeErr(t, raw)
		}
		return u, nil
	case material.TypeLong:
		i, ok := asInt64(raw)
		if !ok {
			return nil, typeErr(t, raw)
		}
		return i, nil
	case material.TypeVector2:
		return parseFloatVec(t, raw, 2, func(f []float32) interface{} { return mgl32.Vec2{f[0], f[1]} })
	case material.TypeVector3:
		return parseFloatVec(t, raw, 3, func(f []float32) interface{} { return mgl32.Vec3{f[0], f[1], f[2]} })
	case material.TypeVector4:
		return parseFloatVec(t, raw, 4, func(f []float32) interface{} { return mgl32.Vec4{f[0], f[1], f[2], f[3]} })
	case material.TypeVector2ui:
		return parseUintVec(t, raw, 2, func(u []uint32) interface{} { return material.Vector2ui{u[0], u[1]} })
	case material.TypeVector3ui:
		return parseUintVec(t, raw, 3, func(u []uint32) interface{} { return material.Vector3ui{u[0], u[1], u[2]} })
	case material.TypeVector4ui:
		return parseUintVec(t, raw, 4, func(u []uint32) interface{} { return material.Vector4ui{u[0], u[1], u[2], u[3]} })
	case material.TypeVector2i:
		return parseIntVec(t, raw, 2, func(i []int32) interface{} { return material.Vector2i{i[0], i[1]} })
	case material.TypeVector3i:
		return parseIntVec(t, raw, 3, func(i []int32) interface{} { return material.Vector3i{i[0], i[1], i[2]} })
	case material.TypeVector4i:
		return parseIntVec(t, raw, 4, func(i []int32) interface{} { return material.Vector4i{i[0], i[1], i[2], i[3]} })
	case material.TypeMatrix2x2:
		return parseFloatVec(t, raw, 4, func(f []float32) interface{} {
			var m mgl32.Mat2
			copy(m[:], f)
			return m
		})
	case material.TypeMatrix2x3:
		return parseFloatVec(t, raw, 6, func(f []float32) interface{} {
			var m mgl32.Mat2x3
			copy(m[:], f)
			return m
		})
	case material.TypeMatrix2x4:
		return parseFloatVec(t, raw, 8, func(f []float32) interface{} {
			var m mgl32.Mat2x4
			copy(m[:], f)
			return m
		})
	case material.TypeMatrix3x2:
		return parseFloatVec(t, raw, 6, func(f []float32) interface{} {
			var m mgl32.Mat3x2
			copy(m[:], f)
			return m
		})
	case material.TypeMatrix3x3:
		return parseFloatVec(t, raw, 9, func(f []float32) interface{} {
			var m mgl32.Mat3
			copy(m[:], f)
			return m
		})
	case material.TypeMatrix3x4:
		return parseFloatVec(t, raw, 12, func(f []float32) interface{} {
			var m mgl32.Mat3x4
			copy(m[:], f)
			return m
		})
	case material.TypeMatrix4x2:
		return parseFloatVec(t, raw, 8, func(f []float32) interface{} {
			var m mgl32.Mat4x2
			copy(m[:], f)
			return m
		})
	case material.TypeMatrix4x3:
		return parseFloatVec(t, raw, 12, func(f []float32) interface{} {
			var m mgl32.Mat4x3
			copy(m[:], f)
			return m
		})
	case material.TypePointer:
		u, ok := asUint64(raw)
		if !ok {
			return nil, typeErr(t, raw)
		}
		return material.Pointer(u), nil
	case material.TypeMutablePointer:
		u, ok := asUint64(raw)
		if !ok {
			return nil, typeErr(t, raw)
		}
		return material.MutablePointer(u), nil
	case material.TypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, typeErr(t, raw)
		}
		return s, nil
	case material.TypeTextureSwizzle:
		s, ok := raw.(string)
		if !ok {
			return nil, typeErr(t, raw)
		}
		sw, ok := material.ParseTextureSwizzle(s)
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeFormat, "invalid texture swizzle %q", s)
		}
		return sw, nil
	case material.TypeBuffer:
		s, ok := raw.(string)
		if !ok {
			return nil, typeErr(t, raw)
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeFormat, "invalid base64 buffer")
		}
		return b, nil
	}
	return nil, errors.Newf(errors.ErrorTypeFormat, "unknown attribute type %s", t)
}

func typeErr(t material.AttributeType, raw interface{}) error {
	return errors.Newf(errors.ErrorTypeFormat, "value %v (%T) does not decode as %s", raw, raw, t)
}

func parseFloatVec(t material.AttributeType, raw interface{}, n int, build func([]float32) interface{}) (interface{}, error) {
	items, ok := raw.([]interface{})
	if !ok || len(items) != n {
		return nil, typeErr(t, raw)
	}
	out := make([]float32, n)
	for i, item := range items {
		f, ok := asFloat32(item)
		if !ok {
			return nil, typeErr(t, raw)
		}
		out[i] = f
	}
	return build(out), nil
}

func parseUintVec(t material.AttributeType, raw interface{}, n int, build func([]uint32) interface{}) (interface{}, error) {
	items, ok := raw.([]interface{})
	if !ok || len(items) != n {
		return nil, typeErr(t, raw)
	}
	out := make([]uint32, n)
	for i, item := range items {
		u, ok := asUint64(item)
		if !ok || u > math.MaxUint32 {
			return nil, typeErr(t, raw)
		}
		out[i] = uint32(u)
	}
	return build(out), nil
}

func parseIntVec(t material.AttributeType, raw interface{}, n int, build func([]int32) interface{}) (interface{}, error) {
	items, ok := raw.([]interface{})
	if !ok || len(items) != n {
		return nil, typeErr(t, raw)
	}
	out := make([]int32, n)
	for i, item := range items {
		v, ok := asInt64(item)
		if !ok || v < math.MinInt32 || v > math.MaxInt32 {
			return nil, typeErr(t, raw)
		}
		out[i] = int32(v)
	}
	return build(out), nil
}

func asFloat32(raw interface{}) (float32, bool) {
	switch n := raw.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint64:
		return float32(n), true
	}
	return 0, false
}

func asUint64(raw interface{}) (uint64, bool) {
	switch n := raw.(type) {
	case uint64:
		return n, true
	case uint32:
		return uint64(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return 0, false
		}
		return uint64(n), true
	}
	return 0, false
}

func asInt64(raw interface{}) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}
