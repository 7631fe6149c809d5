// Package matforge provides a compact, layered material-attribute store for
// graphics asset pipelines: heterogeneous typed key/value attributes packed
// into fixed 64-byte records, grouped into ordered layers, with type-safe and
// fallback-aware lookup over them.
//
// # Architecture
//
// The store is built from three pieces:
//
// 1. Attribute records: each attribute (a name plus a typed value — scalars,
// vectors, matrices, pointers, strings, raw buffers) is encoded into one
// fixed-size record, so a whole material is a single contiguous allocation
// that can be written to disk or memory-mapped back without any fixups.
//
// 2. Layers: records are partitioned into contiguous ranges ("layers", e.g. a
// clear-coat layer on top of a base material), each kept sorted by attribute
// name so lookup inside a layer is a binary search.
//
// 3. Resolvers: name, enum and layer-name lookup plus the three-tier fallback
// chain used by texture-transform accessors (layer-specific attribute, then
// the layer's generic attribute, then the base layer's, then a default).
//
// # Quick Start
//
// Build a two-layer material and query it:
//
//	import "github.com/matforge/matforge/pkg/material"
//
//	attrs := []material.Attribute{
//	    mustAttr(material.NewAttributeOf(material.AttrAlphaMask, float32(0.5))),
//	    mustAttr(material.NewAttributeOf(material.AttrDoubleSided, true)),
//	    mustAttr(material.NewLayerNameAttribute("ClearCoat")),
//	    mustAttr(material.NewAttributeOf(material.AttrLayerFactor, float32(0.3))),
//	}
//	types := material.MaterialTypes(material.PbrClearCoat)
//	mat, err := material.New(types, attrs, []uint32{2, 4})
//	if err != nil {
//	    // construction validates layer ranges, name order and uniqueness
//	}
//	layer, _ := mat.FindLayerID("ClearCoat") // 1
//	factor := mat.LayerFactor(layer)         // 0.3
//
// # Key Packages
//
//	pkg/material      - attribute records, layered store, lookup and fallbacks
//	pkg/materialtools - filtering, merging, deduplication, Phong->PBR conversion
//	pkg/formats       - JSON and YAML material documents
//	pkg/matbin        - binary container with optional compression and mmap
//	pkg/compression   - zstd/lz4/s2/snappy/gzip compressor registry
//	pkg/errors        - structured error handling
//	pkg/logger        - structured logging
//	pkg/config        - configuration for the matforge CLI
//
// # Ownership
//
// Materials either own their record storage (constructed with New, which
// sorts unsorted layers in place) or wrap caller-owned read-only storage
// (constructed with Wrap, which validates and never mutates). The wrapping
// mode lets many materials share one memory-mapped file; see pkg/matbin.
//
// # CLI
//
// The matforge binary inspects and converts material files:
//
//	matforge inspect cockpit.matbin
//	matforge convert cockpit.json cockpit.matbin --compress zstd
//	matforge merge base.json coat.yaml out.matbin
package matforge
