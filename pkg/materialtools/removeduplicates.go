package materialtools

import (
	"encoding/binary"
	"strings"

	"github.com/matforge/matforge/pkg/material"
)

// RemoveDuplicates maps content-equal materials onto their first
// occurrence. mapping[i] is the index of the first material equal to
// materials[i], unique counts the distinct ones; the input stays in place.
// Equality is exact: type sets, layer boundaries and raw record bytes must
// all match, so the same attributes split across different layers stay
// distinct, as do two floats differing in the last bit. Ownership flags do
// not participate, a wrapped material can equal an owned one.
func RemoveDuplicates(materials []*material.Material) (mapping []uint32, unique int) {
	mapping = make([]uint32, len(materials))
	seen := make(map[string]uint32, len(materials))
	for i, m := range materials {
		key := contentKey(m)
		if first, ok := seen[key]; ok {
			mapping[i] = first
			continue
		}
		seen[key] = uint32(i)
		mapping[i] = uint32(i)
		unique++
	}
	return mapping, unique
}

// RemoveDuplicatesInPlace additionally compacts the slice, moving first
// occurrences to the front in their original order. The returned mapping
// points into the compacted prefix materials[:unique]; entries past it are
// left behind and should be dropped by the caller.
func RemoveDuplicatesInPlace(materials []*material.Material) (mapping []uint32, unique int) {
	mapping, unique = RemoveDuplicates(materials)
	remap := make([]uint32, len(materials))
	next := 0
	for i, m := range materials {
		if int(mapping[i]) != i {
			continue
		}
		materials[next] = m
		remap[i] = uint32(next)
		next++
	}
	for i := range mapping {
		mapping[i] = remap[mapping[i]]
	}
	return mapping, unique
}

// contentKey flattens everything that makes a material distinct into one
// comparable string. Layer offsets are normalized first, so the implicit
// base layer and an explicit single-layer span compare equal.
func contentKey(m *material.Material) string {
	data := m.AttributeData()
	offsets := m.LayerData()

	var b strings.Builder
	b.Grow(8 + 4*m.LayerCount() + material.RecordSize*len(data))
	var scratch [4]byte
	binary.LittleEndian.PutUint32(scratch[:], uint32(m.Types()))
	b.Write(scratch[:])
	binary.LittleEndian.PutUint32(scratch[:], uint32(m.LayerCount()))
	b.Write(scratch[:])
	if len(offsets) == 0 {
		binary.LittleEndian.PutUint32(scratch[:], uint32(len(data)))
		b.Write(scratch[:])
	} else {
		for _, off := range offsets {
			binary.LittleEndian.PutUint32(scratch[:], off)
			b.Write(scratch[:])
		}
	}
	for i := range data {
		rec := data[i].Record()
		b.Write(rec[:])
	}
	return b.String()
}
