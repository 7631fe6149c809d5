package materialtools

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matforge/matforge/pkg/material"
)

func mustAttr(t *testing.T, id material.Attr, value interface{}) material.Attribute {
	t.Helper()
	a, err := material.NewAttributeOf(id, value)
	require.NoError(t, err)
	return a
}

func mustNamed(t *testing.T, name string, value interface{}) material.Attribute {
	t.Helper()
	a, err := material.NewAttribute(name, value)
	require.NoError(t, err)
	return a
}

func mustLayerName(t *testing.T, name string) material.Attribute {
	t.Helper()
	a, err := material.NewLayerNameAttribute(name)
	require.NoError(t, err)
	return a
}

func mustMaterial(t *testing.T, types material.MaterialTypes, attrs []material.Attribute, offsets []uint32) *material.Material {
	t.Helper()
	m, err := material.New(types, attrs, offsets)
	require.NoError(t, err)
	return m
}

// attrMap flattens one layer into name/value pairs.
func attrMap(m *material.Material, layer int) map[string]interface{} {
	out := make(map[string]interface{}, m.AttributeCount(layer))
	for i := 0; i < m.AttributeCount(layer); i++ {
		a := m.AttributeAt(layer, i)
		out[a.Name()] = a.Value()
	}
	return out
}

// attrNames lists one layer's attribute names in storage order.
func attrNames(m *material.Material, layer int) []string {
	out := make([]string, 0, m.AttributeCount(layer))
	for i := 0; i < m.AttributeCount(layer); i++ {
		a := m.AttributeAt(layer, i)
		out = append(out, a.Name())
	}
	return out
}

func TestMerge_DisjointBase(t *testing.T) {
	first := mustMaterial(t, material.MaterialTypes(material.Phong), []material.Attribute{
		mustAttr(t, material.AttrDiffuseColor, mgl32.Vec4{0.8, 0.2, 0.1, 1}),
		mustAttr(t, material.AttrShininess, float32(80)),
	}, nil)
	second := mustMaterial(t, material.MaterialTypes(material.Flat), []material.Attribute{
		mustAttr(t, material.AttrDoubleSided, true),
		mustAttr(t, material.AttrAmbientColor, mgl32.Vec4{0.1, 0.1, 0.1, 1}),
	}, nil)

	merged, err := Merge(first, second, MergeFail)
	require.NoError(t, err)

	assert.Equal(t, material.MaterialTypes(material.Phong|material.Flat), merged.Types())
	assert.Equal(t, 1, merged.LayerCount())
	assert.Equal(t, []string{
		"AmbientColor", "DiffuseColor", "DoubleSided", "Shininess",
	}, attrNames(merged, 0))
	assert.Equal(t, mgl32.Vec4{0.8, 0.2, 0.1, 1},
		material.AttributeValue[mgl32.Vec4](merged, 0, material.AttrDiffuseColor))
	assert.True(t, merged.AttributeDataFlags().Has(material.DataFlagOwned))
}

func TestMerge_LayerUnion(t *testing.T) {
	first := mustMaterial(t, material.MaterialTypes(material.PbrMetallicRoughness), []material.Attribute{
		mustAttr(t, material.AttrBaseColor, mgl32.Vec4{1, 0, 0, 1}),

		mustLayerName(t, "ClearCoat"),
		mustAttr(t, material.AttrLayerFactor, float32(0.35)),
		mustAttr(t, material.AttrRoughness, float32(0.2)),
	}, []uint32{1, 4})
	second := mustMaterial(t, 0, []material.Attribute{
		mustAttr(t, material.AttrDoubleSided, true),

		mustAttr(t, material.AttrLayerFactorTexture, uint32(2)),

		mustLayerName(t, "DustCoat"),
		mustAttr(t, material.AttrLayerFactor, float32(0.1)),
	}, []uint32{1, 2, 4})

	merged, err := Merge(first, second, MergeFail)
	require.NoError(t, err)

	require.Equal(t, 3, merged.LayerCount())
	assert.Equal(t, []uint32{2, 6, 8}, merged.LayerData())
	assert.Equal(t, map[string]interface{}{
		"BaseColor":   mgl32.Vec4{1, 0, 0, 1},
		"DoubleSided": true,
	}, attrMap(merged, 0))
	assert.Equal(t, "ClearCoat", merged.LayerName(1))
	assert.Equal(t, map[string]interface{}{
		" LayerName":         "ClearCoat",
		"LayerFactor":        float32(0.35),
		"LayerFactorTexture": uint32(2),
		"Roughness":          float32(0.2),
	}, attrMap(merged, 1))
	assert.Equal(t, "DustCoat", merged.LayerName(2))
}

func TestMerge_LayerNameAdoption(t *testing.T) {
	// The unnamed coat of the first material pairs with the named coat of
	// the second one and picks up its name.
	first := mustMaterial(t, 0, []material.Attribute{
		mustAttr(t, material.AttrLayerFactor, float32(0.3)),
	}, []uint32{0, 1})
	second := mustMaterial(t, 0, []material.Attribute{
		mustLayerName(t, "ClearCoat"),
		mustAttr(t, material.AttrRoughness, float32(0.1)),
	}, []uint32{0, 2})

	merged, err := Merge(first, second, MergeFail)
	require.NoError(t, err)

	id, found := merged.FindLayerID("ClearCoat")
	require.True(t, found)
	assert.Equal(t, 1, id)
	assert.Equal(t, []string{" LayerName", "LayerFactor", "Roughness"}, attrNames(merged, 1))
}

func TestMerge_EmptySecond(t *testing.T) {
	first := mustMaterial(t, material.MaterialTypes(material.PbrMetallicRoughness), []material.Attribute{
		mustAttr(t, material.AttrBaseColor, mgl32.Vec4{1, 1, 1, 1}),

		mustLayerName(t, "ClearCoat"),
	}, []uint32{1, 2})
	empty := mustMaterial(t, material.MaterialTypes(material.Flat), nil, nil)

	tests := []struct {
		name          string
		first, second *material.Material
	}{
		{"second empty", first, empty},
		{"first empty", empty, first},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := Merge(tt.first, tt.second, MergeFail)
			require.NoError(t, err)
			assert.Equal(t,
				material.MaterialTypes(material.PbrMetallicRoughness|material.Flat),
				merged.Types())
			assert.Equal(t, 2, merged.LayerCount())
			assert.Equal(t, 1, merged.AttributeCount(0))
			assert.Equal(t, "ClearCoat", merged.LayerName(1))
		})
	}
}

func TestMerge_ConflictFail(t *testing.T) {
	first := mustMaterial(t, 0, []material.Attribute{
		mustAttr(t, material.AttrDiffuseColor, mgl32.Vec4{1, 0, 0, 1}),
	}, nil)
	second := mustMaterial(t, 0, []material.Attribute{
		mustAttr(t, material.AttrDiffuseColor, mgl32.Vec4{1, 0, 0, 1}),
		mustAttr(t, material.AttrDoubleSided, true),
	}, nil)

	// Identical values still count as a conflict.
	merged, err := Merge(first, second, MergeFail)
	assert.Nil(t, merged)
	assert.ErrorContains(t, err, "conflicting attribute DiffuseColor in layer 0")
}

func TestMerge_ConflictKeepFirstIfSameType(t *testing.T) {
	first := mustMaterial(t, 0, []material.Attribute{
		mustAttr(t, material.AttrDiffuseColor, mgl32.Vec4{1, 0, 0, 1}),
		mustNamed(t, "Scale", float32(2)),
	}, nil)
	second := mustMaterial(t, 0, []material.Attribute{
		mustAttr(t, material.AttrDiffuseColor, mgl32.Vec4{0, 1, 0, 1}),
	}, nil)

	merged, err := Merge(first, second, MergeKeepFirstIfSameType)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1},
		material.AttributeValue[mgl32.Vec4](merged, 0, material.AttrDiffuseColor))

	third := mustMaterial(t, 0, []material.Attribute{
		mustNamed(t, "Scale", mgl32.Vec2{2, 2}),
	}, nil)
	merged, err = Merge(first, third, MergeKeepFirstIfSameType)
	assert.Nil(t, merged)
	assert.ErrorContains(t, err, "conflicting type Float vs Vector2 of attribute Scale in layer 0")
}

func TestMerge_ConflictKeepFirst(t *testing.T) {
	first := mustMaterial(t, 0, []material.Attribute{
		mustNamed(t, "Scale", float32(2)),
	}, nil)
	second := mustMaterial(t, 0, []material.Attribute{
		mustNamed(t, "Scale", mgl32.Vec2{3, 3}),
		mustAttr(t, material.AttrDoubleSided, true),
	}, nil)

	merged, err := Merge(first, second, MergeKeepFirst)
	require.NoError(t, err)
	assert.Equal(t, float32(2),
		material.AttributeValue[float32](merged, 0, "Scale"))
	assert.True(t, material.AttributeValue[bool](merged, 0, material.AttrDoubleSided))
}

func TestMerge_ConflictInUpperLayer(t *testing.T) {
	first := mustMaterial(t, 0, []material.Attribute{
		mustAttr(t, material.AttrLayerFactor, float32(0.3)),
	}, []uint32{0, 1})
	second := mustMaterial(t, 0, []material.Attribute{
		mustAttr(t, material.AttrLayerFactor, float32(0.9)),
	}, []uint32{0, 1})

	merged, err := Merge(first, second, MergeFail)
	assert.Nil(t, merged)
	assert.ErrorContains(t, err, "conflicting attribute LayerFactor in layer 1")

	merged, err = Merge(first, second, MergeKeepFirstIfSameType)
	require.NoError(t, err)
	assert.Equal(t, float32(0.3), merged.LayerFactor(1))
}

func TestMerge_SameNameDifferentLayers(t *testing.T) {
	first := mustMaterial(t, 0, []material.Attribute{
		mustAttr(t, material.AttrDiffuseColor, mgl32.Vec4{1, 0, 0, 1}),
	}, nil)
	second := mustMaterial(t, 0, []material.Attribute{
		mustAttr(t, material.AttrDiffuseColor, mgl32.Vec4{0, 0, 1, 1}),
	}, []uint32{0, 1})

	merged, err := Merge(first, second, MergeFail)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1},
		material.AttributeValue[mgl32.Vec4](merged, 0, material.AttrDiffuseColor))
	assert.Equal(t, mgl32.Vec4{0, 0, 1, 1},
		material.AttributeValue[mgl32.Vec4](merged, 1, material.AttrDiffuseColor))
}

func TestParseMergeConflicts(t *testing.T) {
	for _, mode := range []MergeConflicts{MergeFail, MergeKeepFirstIfSameType, MergeKeepFirst} {
		parsed, ok := ParseMergeConflicts(mode.String())
		assert.True(t, ok)
		assert.Equal(t, mode, parsed)
	}
	_, ok := ParseMergeConflicts("KeepSecond")
	assert.False(t, ok)
}
