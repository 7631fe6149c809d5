package matbin

import (
	"github.com/matforge/matforge/pkg/compression"
	"github.com/matforge/matforge/pkg/errors"
	"github.com/matforge/matforge/pkg/material"
	"github.com/matforge/matforge/pkg/mmap"
)

// Mapped is a read-only material served straight from a memory-mapped
// container file. The record storage aliases the mapping, so the material
// must not be used after Close. Several Mapped instances of one file share
// page-cache memory.
type Mapped struct {
	*material.Material
	reader *mmap.Reader
}

// DecodeMapped opens a container file and wraps its record region without
// copying. Only uncompressed containers can be mapped; the wrapping
// constructor validates sorting and record integrity, so a corrupt file is
// rejected here rather than faulting during lookup.
func DecodeMapped(path string) (*Mapped, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	m, err := decodeMapped(r.Bytes())
	if err != nil {
		r.Close()
		return nil, err
	}
	return &Mapped{Material: m, reader: r}, nil
}

func decodeMapped(data []byte) (*material.Material, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	if h.algorithm != compression.None {
		return nil, errors.Newf(errors.ErrorTypeContract,
			"cannot map a %s-compressed container, decode it instead", h.algorithm)
	}

	offsets, recordBytes, err := h.splitPayload(data[headerSize:])
	if err != nil {
		return nil, err
	}
	records, err := material.AttributesFromBytes(recordBytes)
	if err != nil {
		return nil, err
	}

	return material.Wrap(h.types, 0, records, 0, offsets)
}

// Close releases the mapping. The material and every record read from it
// become invalid.
func (m *Mapped) Close() error {
	return m.reader.Close()
}
