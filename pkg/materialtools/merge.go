package materialtools

import (
	"github.com/matforge/matforge/pkg/errors"
	"github.com/matforge/matforge/pkg/material"
	stringpool "github.com/matforge/matforge/pkg/strings"
)

// MergeConflicts selects what Merge does when both materials store an
// attribute of the same name in the same layer.
type MergeConflicts uint8

const (
	// MergeFail refuses the merge on the first conflicting name, even when
	// both sides store the exact same value.
	MergeFail MergeConflicts = iota
	// MergeKeepFirstIfSameType keeps the first material's value when both
	// records store the same type and refuses the merge otherwise.
	MergeKeepFirstIfSameType
	// MergeKeepFirst always keeps the first material's value, whatever the
	// second one stores.
	MergeKeepFirst
)

func (c MergeConflicts) String() string {
	switch c {
	case MergeFail:
		return "Fail"
	case MergeKeepFirstIfSameType:
		return "KeepFirstIfSameType"
	case MergeKeepFirst:
		return "KeepFirst"
	}
	return stringpool.Sprintf("MergeConflicts(%d)", uint8(c))
}

// ParseMergeConflicts resolves a conflict mode name as spelled by String.
func ParseMergeConflicts(name string) (MergeConflicts, bool) {
	switch name {
	case "Fail":
		return MergeFail, true
	case "KeepFirstIfSameType":
		return MergeKeepFirstIfSameType, true
	case "KeepFirst":
		return MergeKeepFirst, true
	}
	return 0, false
}

// Merge combines two materials into a new owning one. Layers pair up by
// index, each output layer is the name-ordered union of the two inputs at
// that index, and the type sets are ORed together. An attribute present in
// both halves of a pair is a conflict resolved per the conflicts mode; the
// same name in two different layers never conflicts. A layer only one
// input has carries over as is, which also lets an unnamed layer pick up
// its name from the other material.
func Merge(first, second *material.Material, conflicts MergeConflicts) (*material.Material, error) {
	layerCount := first.LayerCount()
	if second.LayerCount() > layerCount {
		layerCount = second.LayerCount()
	}

	merged := make([]material.Attribute, 0,
		len(first.AttributeData())+len(second.AttributeData()))
	offsets := make([]uint32, 0, layerCount)
	for layer := 0; layer < layerCount; layer++ {
		a, b := layerRun(first, layer), layerRun(second, layer)
		for len(a) > 0 && len(b) > 0 {
			an, bn := a[0].Name(), b[0].Name()
			switch {
			case an < bn:
				merged = append(merged, a[0])
				a = a[1:]
			case an > bn:
				merged = append(merged, b[0])
				b = b[1:]
			default:
				if conflicts == MergeFail {
					return nil, errors.Newf(errors.ErrorTypeContract,
						"conflicting attribute %s in layer %d", an, layer)
				}
				if conflicts == MergeKeepFirstIfSameType && a[0].Type() != b[0].Type() {
					return nil, errors.Newf(errors.ErrorTypeContract,
						"conflicting type %s vs %s of attribute %s in layer %d",
						a[0].Type(), b[0].Type(), an, layer)
				}
				merged = append(merged, a[0])
				a, b = a[1:], b[1:]
			}
		}
		merged = append(merged, a...)
		merged = append(merged, b...)
		offsets = append(offsets, uint32(len(merged)))
	}
	if layerCount == 1 {
		offsets = nil
	}
	return material.New(first.Types()|second.Types(), merged, offsets)
}

// layerRun returns one layer's records as a view into the material's
// storage, nil when the layer does not exist. Both runs of a constructed
// material are already name-ordered.
func layerRun(m *material.Material, layer int) []material.Attribute {
	offsets := m.LayerData()
	if len(offsets) == 0 {
		if layer == 0 {
			return m.AttributeData()
		}
		return nil
	}
	if layer < 0 || layer >= len(offsets) {
		return nil
	}
	begin := uint32(0)
	if layer > 0 {
		begin = offsets[layer-1]
	}
	return m.AttributeData()[begin:offsets[layer]]
}
