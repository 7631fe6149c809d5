package materialtools

import (
	"github.com/matforge/matforge/pkg/material"
)

// Filter returns a new owning material holding the attributes keep
// returned true for. The layer structure carries over even where a layer
// loses everything, as does the material type set. The record handed to
// keep is a copy, writing through it affects neither material.
func Filter(m *material.Material, keep func(layer int, a *material.Attribute) bool) (*material.Material, error) {
	kept := make([]material.Attribute, 0, len(m.AttributeData()))
	offsets := make([]uint32, 0, m.LayerCount())
	for layer := 0; layer < m.LayerCount(); layer++ {
		for _, a := range layerRun(m, layer) {
			if keep(layer, &a) {
				kept = append(kept, a)
			}
		}
		offsets = append(offsets, uint32(len(kept)))
	}
	if len(offsets) == 1 {
		offsets = nil
	}
	return material.New(m.Types(), kept, offsets)
}

// FilterLayers returns a new owning material holding only the layers keep
// returned true for. Layers above a removed one close the gap. The base
// layer is the exception: dropping it merely empties it, the slot itself
// stays so the remaining layers keep meaning what they meant.
func FilterLayers(m *material.Material, keep func(layer int, name string) bool) (*material.Material, error) {
	kept := make([]material.Attribute, 0, len(m.AttributeData()))
	offsets := make([]uint32, 0, m.LayerCount())
	for layer := 0; layer < m.LayerCount(); layer++ {
		if !keep(layer, m.LayerName(layer)) {
			if layer == 0 {
				offsets = append(offsets, 0)
			}
			continue
		}
		kept = append(kept, layerRun(m, layer)...)
		offsets = append(offsets, uint32(len(kept)))
	}
	if len(offsets) == 1 {
		offsets = nil
	}
	return material.New(m.Types(), kept, offsets)
}
