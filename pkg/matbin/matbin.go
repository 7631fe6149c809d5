// Package matbin reads and writes the matforge binary container. A
// container is a fixed header followed by the layer offsets and the raw
// 64-byte attribute records, optionally compressed as one block:
//
//	offset  bytes  content
//	0       4      magic "MATB"
//	4       1      format version, currently 1
//	5       1      compression algorithm id
//	6       2      reserved, zero
//	8       4      material types bitfield
//	12      4      layer count
//	16      4      record count
//	20      ...    payload: layer offsets, then records
//
// All multi-byte header fields are little-endian, matching the record
// payload encoding. The 20-byte header keeps the layer offsets 4-aligned so
// an uncompressed container can be memory-mapped and served zero-copy, see
// DecodeMapped.
package matbin

import (
	"encoding/binary"
	"io"

	"github.com/matforge/matforge/pkg/compression"
	"github.com/matforge/matforge/pkg/errors"
	"github.com/matforge/matforge/pkg/material"
	"github.com/matforge/matforge/pkg/pool"
)

// Magic identifies a matforge binary container.
const Magic = "MATB"

// Version is the container format version this package writes.
const Version = 1

const headerSize = 20

// EncodeOptions controls container compression.
type EncodeOptions struct {
	// Algorithm compresses the payload block. Defaults to None; a
	// container meant for memory-mapping must stay uncompressed.
	Algorithm compression.Algorithm
	// Level is the compression level, ignored for None.
	Level compression.Level
}

var bufPool = pool.New(
	func() []byte { return make([]byte, 0, 4096) },
	nil,
)

// Encode writes a material as a binary container. A nil opts encodes
// uncompressed.
func Encode(w io.Writer, m *material.Material, opts *EncodeOptions) error {
	if opts == nil {
		opts = &EncodeOptions{Algorithm: compression.None, Level: compression.Default}
	}
	algoID, err := opts.Algorithm.ID()
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeContract, "encode container")
	}

	offsets := m.LayerData()
	records := m.AttributeData()

	scratch := bufPool.Get()[:0]
	defer func() { bufPool.Put(scratch) }()
	for _, off := range offsets {
		scratch = binary.LittleEndian.AppendUint32(scratch, off)
	}
	scratch = append(scratch, material.AttributeBytes(records)...)

	payload := scratch
	if opts.Algorithm != compression.None {
		comp, err := compression.NewCompressor(&compression.Config{
			Algorithm: opts.Algorithm,
			Level:     opts.Level,
		})
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeContract, "encode container")
		}
		compressed, err := comp.Compress(payload)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeInternal, "compress container payload")
		}
		payload = compressed
	}

	var header [headerSize]byte
	copy(header[0:4], Magic)
	header[4] = Version
	header[5] = algoID
	binary.LittleEndian.PutUint32(header[8:12], uint32(m.Types()))
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(offsets)))
	binary.LittleEndian.PutUint32(header[16:20], uint32(len(records)))

	if _, err := w.Write(header[:]); err != nil {
		return errors.Wrap(err, errors.ErrorTypeIO, "write container header")
	}
	if _, err := w.Write(payload); err != nil {
		return errors.Wrap(err, errors.ErrorTypeIO, "write container payload")
	}
	return nil
}

// header is the decoded fixed part of a container.
type header struct {
	algorithm   compression.Algorithm
	types       material.MaterialTypes
	layerCount  int
	recordCount int
}

func parseHeader(data []byte) (header, error) {
	var h header
	if len(data) < headerSize {
		return h, errors.Newf(errors.ErrorTypeFormat,
			"container truncated: %d bytes is shorter than the %d byte header", len(data), headerSize)
	}
	if string(data[0:4]) != Magic {
		return h, errors.New(errors.ErrorTypeFormat, "not a matforge container, bad magic")
	}
	if data[4] != Version {
		return h, errors.Newf(errors.ErrorTypeFormat, "unsupported container version %d", data[4])
	}
	algo, err := compression.AlgorithmByID(data[5])
	if err != nil {
		return h, errors.Wrap(err, errors.ErrorTypeFormat, "container header")
	}
	h.algorithm = algo
	h.types = material.MaterialTypes(binary.LittleEndian.Uint32(data[8:12]))
	h.layerCount = int(binary.LittleEndian.Uint32(data[12:16]))
	h.recordCount = int(binary.LittleEndian.Uint32(data[16:20]))
	return h, nil
}

// payloadSize is the expected uncompressed payload length for a header.
func (h header) payloadSize() int {
	return h.layerCount*4 + h.recordCount*material.RecordSize
}

// splitPayload slices an uncompressed payload into layer offsets (copied,
// they are tiny and possibly unaligned after decompression) and the raw
// record region (not copied).
func (h header) splitPayload(payload []byte) ([]uint32, []byte, error) {
	if len(payload) != h.payloadSize() {
		return nil, nil, errors.Newf(errors.ErrorTypeFormat,
			"container payload is %d bytes, header promises %d", len(payload), h.payloadSize())
	}
	var offsets []uint32
	if h.layerCount > 0 {
		offsets = make([]uint32, h.layerCount)
		for i := range offsets {
			offsets[i] = binary.LittleEndian.Uint32(payload[i*4:])
		}
	}
	return offsets, payload[h.layerCount*4:], nil
}

// Decode reads a container and returns an owning material. The records are
// copied out of the stream and revalidated through the owning constructor,
// so a corrupt or hostile container fails cleanly.
func Decode(r io.Reader) (*material.Material, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeIO, "read container")
	}
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[headerSize:]
	if h.algorithm != compression.None {
		comp, err := compression.NewCompressor(&compression.Config{Algorithm: h.algorithm})
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeFormat, "container compression")
		}
		if payload, err = comp.Decompress(payload); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeFormat, "decompress container payload")
		}
	}

	offsets, recordBytes, err := h.splitPayload(payload)
	if err != nil {
		return nil, err
	}

	records := make([]material.Attribute, h.recordCount)
	shared, err := material.AttributesFromBytes(recordBytes)
	if err != nil {
		return nil, err
	}
	copy(records, shared)

	return material.New(h.types, records, offsets)
}
