package material

import (
	"bytes"
	"slices"

	"go.uber.org/zap"

	"github.com/matforge/matforge/pkg/logger"
	stringpool "github.com/matforge/matforge/pkg/strings"
)

// findAttribute is the single lookup primitive. Every public query reduces
// to it after resolving the layer and the attribute name. It binary-searches
// the half-open record range [begin, end) relying on the per-layer name
// ordering invariant.
func (m *Material) findAttribute(begin, end uint32, name string) (uint32, bool) {
	idx, ok := slices.BinarySearchFunc(m.attributes[begin:end], name,
		func(a Attribute, target string) int {
			return bytes.Compare(a.nameBytes(), stringpool.StringToBytes(target))
		})
	return begin + uint32(idx), ok
}

// FindLayerID returns the index of the first layer above the base one whose
// layer-name attribute equals name. The base layer never matches, it cannot
// carry a display name of its own.
func (m *Material) FindLayerID(name string) (int, bool) {
	for layer := 1; layer < m.LayerCount(); layer++ {
		begin, end := m.layerRange(layer)
		idx, ok := m.findAttribute(begin, end, LayerNameAttribute)
		if ok && m.attributes[idx].Type() == TypeString &&
			m.attributes[idx].StringValue() == name {
			return layer, true
		}
	}
	return 0, false
}

// HasLayer reports whether any layer above the base one carries name as its
// display name.
func (m *Material) HasLayer(name string) bool {
	_, ok := m.FindLayerID(name)
	return ok
}

// LayerID is FindLayerID for callers that already know the layer exists. A
// missing layer logs and maps to the base layer index.
func (m *Material) LayerID(name string) int {
	layer, ok := m.FindLayerID(name)
	if !ok {
		logger.Error("layer not found", zap.String("name", name))
		return 0
	}
	return layer
}

// LayerName returns the display name of a layer, empty for the base layer,
// an unnamed layer or an out-of-range index.
func (m *Material) LayerName(layer int) string {
	if !m.checkLayer(layer) {
		return ""
	}
	if layer == 0 {
		return ""
	}
	begin, end := m.layerRange(layer)
	idx, ok := m.findAttribute(begin, end, LayerNameAttribute)
	if !ok || m.attributes[idx].Type() != TypeString {
		return ""
	}
	return m.attributes[idx].StringValue()
}

// AttributeAt returns a copy of the record at a position within a layer.
// Out-of-range indices log and return a zero record.
func (m *Material) AttributeAt(layer, id int) Attribute {
	if !m.checkLayer(layer) {
		return Attribute{}
	}
	begin, end := m.layerRange(layer)
	if id < 0 || uint32(id) >= end-begin {
		logger.Error("attribute index out of range",
			zap.Int("id", id),
			zap.Int("layer", layer),
			zap.Uint32("attributeCount", end-begin))
		return Attribute{}
	}
	return m.attributes[begin+uint32(id)]
}
