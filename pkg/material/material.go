package material

import (
	"bytes"
	"slices"

	"go.uber.org/zap"

	"github.com/matforge/matforge/pkg/errors"
	"github.com/matforge/matforge/pkg/logger"
)

// Material is an ordered set of attribute records grouped into layers.
// Layer 0 is the base material, anything above it is a coating or similar
// addition that the layer-factor accessors can blend in.
//
// Two invariants hold for every constructed material and all lookups depend
// on them:
//
//   - layerOffsets is monotonically non-decreasing, each entry is a valid
//     index into attributes, and the final entry equals len(attributes)
//   - within each layer, attribute names are strictly increasing in byte
//     order, which gives binary-search lookup and implies uniqueness
//
// New establishes the invariants by sorting owned input, Wrap refuses input
// that does not already satisfy them.
type Material struct {
	types          MaterialTypes
	attributes     []Attribute
	layerOffsets   []uint32
	attributeFlags DataFlags
	layerFlags     DataFlags
}

func compareAttributes(a, b Attribute) int {
	return bytes.Compare(a.nameBytes(), b.nameBytes())
}

// New creates a material that owns its storage. Attribute order within each
// layer does not matter, records get stably sorted by name as needed.
// Duplicate names within one layer are rejected. A nil layerOffsets means a
// single implicit layer spanning everything; otherwise the offsets are
// layer end positions and the last one must equal len(attributes).
func New(types MaterialTypes, attributes []Attribute, layerOffsets []uint32) (*Material, error) {
	m := &Material{
		types:          types,
		attributes:     attributes,
		layerOffsets:   layerOffsets,
		attributeFlags: DataFlags(DataFlagOwned | DataFlagMutable),
		layerFlags:     DataFlags(DataFlagOwned | DataFlagMutable),
	}
	if err := m.validateOffsets(); err != nil {
		return nil, err
	}
	for layer := 0; layer < m.LayerCount(); layer++ {
		begin, end := m.layerRange(layer)
		records := attributes[begin:end]
		// Validate before sorting so a failing index still refers to the
		// caller's ordering.
		for i := range records {
			if err := records[i].validate(); err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeContract, "invalid attribute record").
					WithDetail("layer", layer).
					WithDetail("index", int(begin)+i)
			}
		}
		// One ordering scan up front; the comparator itself must never
		// fault, duplicates are caught in a separate pass below.
		if !slices.IsSortedFunc(records, compareAttributes) {
			slices.SortStableFunc(records, compareAttributes)
		}
		for i := 1; i < len(records); i++ {
			if bytes.Equal(records[i-1].nameBytes(), records[i].nameBytes()) {
				return nil, errors.Newf(errors.ErrorTypeContract,
					"duplicate attribute %s in layer %d", records[i].Name(), layer)
			}
		}
	}
	return m, nil
}

// Wrap creates a material over storage owned by someone else, typically a
// region of a mapped container file. Nothing is reordered: the input must
// already satisfy the sorting invariant and every record is checked, so a
// corrupt file fails here instead of faulting later. Flags may grant
// mutable access but never ownership.
func Wrap(types MaterialTypes, attributeFlags DataFlags, attributes []Attribute, layerFlags DataFlags, layerOffsets []uint32) (*Material, error) {
	if attributeFlags.Has(DataFlagOwned) || layerFlags.Has(DataFlagOwned) {
		return nil, errors.New(errors.ErrorTypeContract, "wrapped storage cannot be marked owned")
	}
	m := &Material{
		types:          types,
		attributes:     attributes,
		layerOffsets:   layerOffsets,
		attributeFlags: attributeFlags,
		layerFlags:     layerFlags,
	}
	if err := m.validateOffsets(); err != nil {
		return nil, err
	}
	for layer := 0; layer < m.LayerCount(); layer++ {
		begin, end := m.layerRange(layer)
		records := attributes[begin:end]
		for i := range records {
			if err := records[i].validate(); err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeContract, "invalid attribute record").
					WithDetail("layer", layer).
					WithDetail("index", int(begin)+i)
			}
			if i == 0 {
				continue
			}
			c := compareAttributes(records[i-1], records[i])
			if c == 0 {
				return nil, errors.Newf(errors.ErrorTypeContract,
					"duplicate attribute %s in layer %d", records[i].Name(), layer)
			}
			if c > 0 {
				return nil, errors.Newf(errors.ErrorTypeContract,
					"attribute %s in layer %d is not sorted after %s",
					records[i].Name(), layer, records[i-1].Name())
			}
		}
	}
	return m, nil
}

func (m *Material) validateOffsets() error {
	prev := uint32(0)
	for i, off := range m.layerOffsets {
		if off < prev || int(off) > len(m.attributes) {
			return errors.Newf(errors.ErrorTypeContract,
				"invalid range [%d, %d) for layer %d with %d attributes in total",
				prev, off, i, len(m.attributes))
		}
		prev = off
	}
	if len(m.layerOffsets) > 0 && int(prev) != len(m.attributes) {
		return errors.Newf(errors.ErrorTypeContract,
			"last layer offset %d does not match the attribute count %d",
			prev, len(m.attributes))
	}
	return nil
}

// layerRange returns the attribute index range of a layer. The caller must
// have checked the layer index. A material whose attributes were released
// keeps its offsets, so the range is clamped to keep the husk safe.
func (m *Material) layerRange(layer int) (begin, end uint32) {
	if len(m.layerOffsets) == 0 {
		return 0, uint32(len(m.attributes))
	}
	if layer > 0 {
		begin = m.layerOffsets[layer-1]
	}
	end = m.layerOffsets[layer]
	if n := uint32(len(m.attributes)); end > n {
		end = n
	}
	if begin > end {
		begin = end
	}
	return begin, end
}

func (m *Material) checkLayer(layer int) bool {
	if layer >= 0 && layer < m.LayerCount() {
		return true
	}
	logger.Error("layer out of range",
		zap.Int("layer", layer),
		zap.Int("layerCount", m.LayerCount()))
	return false
}

// checkShadingModel logs when a typed view is taken on a material that does
// not advertise the matching shading model. The view still works, all its
// accessors degrade to their defaults.
func (m *Material) checkShadingModel(t MaterialType) {
	if !m.types.Is(t) {
		logger.Error("material does not advertise the requested shading model",
			zap.Stringer("requested", t),
			zap.Stringer("types", m.types))
	}
}

// Types returns the shading models the material advertises.
func (m *Material) Types() MaterialTypes {
	return m.types
}

// LayerCount returns the number of layers including the base one, so always
// at least 1.
func (m *Material) LayerCount() int {
	if len(m.layerOffsets) == 0 {
		return 1
	}
	return len(m.layerOffsets)
}

// AttributeCount returns the number of attributes in a layer, zero for an
// out-of-range layer.
func (m *Material) AttributeCount(layer int) int {
	if !m.checkLayer(layer) {
		return 0
	}
	begin, end := m.layerRange(layer)
	return int(end - begin)
}

// AttributeData returns the whole attribute storage across all layers as a
// read-only view. Container encoders serialize it verbatim.
func (m *Material) AttributeData() []Attribute {
	return m.attributes
}

// LayerData returns the layer end offsets as a read-only view. Empty for a
// material constructed without explicit layers.
func (m *Material) LayerData() []uint32 {
	return m.layerOffsets
}

// AttributeDataFlags describes ownership and mutability of the attribute
// storage.
func (m *Material) AttributeDataFlags() DataFlags {
	return m.attributeFlags
}

// LayerDataFlags describes ownership and mutability of the layer offsets.
func (m *Material) LayerDataFlags() DataFlags {
	return m.layerFlags
}

// ReleaseAttributeData hands the attribute storage over to the caller and
// leaves the material empty. Lookups on the husk return not-found or zero
// values, the layer offsets stay in place until released themselves.
func (m *Material) ReleaseAttributeData() []Attribute {
	out := m.attributes
	m.attributes = nil
	m.attributeFlags = 0
	return out
}

// ReleaseLayerData hands the layer offsets over to the caller. The material
// afterwards reports a single implicit layer over whatever attributes it
// still holds.
func (m *Material) ReleaseLayerData() []uint32 {
	out := m.layerOffsets
	m.layerOffsets = nil
	m.layerFlags = 0
	return out
}

// MutableAttribute returns a pointer into the attribute storage for
// in-place payload writes through Attribute.Set. The storage must be owned
// and mutable; wrapped read-only data is refused with a mutation error.
func (m *Material) MutableAttribute(layer int, name string) (*Attribute, error) {
	if layer < 0 || layer >= m.LayerCount() {
		return nil, errors.Newf(errors.ErrorTypeContract,
			"layer %d out of range for %d layers", layer, m.LayerCount())
	}
	if err := m.checkMutable(); err != nil {
		return nil, err
	}
	begin, end := m.layerRange(layer)
	idx, ok := m.findAttribute(begin, end, name)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound,
			"attribute %s not found in layer %d", name, layer)
	}
	return &m.attributes[idx], nil
}

// MutableAttributeAt is MutableAttribute by position within the layer.
func (m *Material) MutableAttributeAt(layer, id int) (*Attribute, error) {
	if layer < 0 || layer >= m.LayerCount() {
		return nil, errors.Newf(errors.ErrorTypeContract,
			"layer %d out of range for %d layers", layer, m.LayerCount())
	}
	if err := m.checkMutable(); err != nil {
		return nil, err
	}
	begin, end := m.layerRange(layer)
	if id < 0 || uint32(id) >= end-begin {
		return nil, errors.Newf(errors.ErrorTypeContract,
			"attribute %d out of range for %d attributes in layer %d", id, end-begin, layer)
	}
	return &m.attributes[begin+uint32(id)], nil
}

func (m *Material) checkMutable() error {
	if m.attributeFlags.Has(DataFlagOwned) && m.attributeFlags.Has(DataFlagMutable) {
		return nil
	}
	return errors.New(errors.ErrorTypeMutationDenied,
		"attribute storage is not owned and mutable").
		WithDetail("flags", m.attributeFlags.String())
}
