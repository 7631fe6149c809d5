package material

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/matforge/matforge/pkg/logger"
)

// Value enumerates the Go types an attribute payload decodes to and
// constrains the typed lookup helpers below.
type Value interface {
	bool | float32 | Deg | Rad | uint32 | int32 | uint64 | int64 |
		mgl32.Vec2 | Vector2ui | Vector2i |
		mgl32.Vec3 | Vector3ui | Vector3i |
		mgl32.Vec4 | Vector4ui | Vector4i |
		mgl32.Mat2 | mgl32.Mat2x3 | mgl32.Mat2x4 |
		mgl32.Mat3x2 | mgl32.Mat3 | mgl32.Mat3x4 |
		mgl32.Mat4x2 | mgl32.Mat4x3 |
		Pointer | MutablePointer | string | TextureSwizzle | []byte
}

// LayerRef addresses a layer by numeric index, display name or well-known
// identifier.
type LayerRef interface {
	int | string | Layer
}

// AttrRef addresses an attribute by name or well-known identifier.
type AttrRef interface {
	string | Attr
}

// resolveLayer maps any layer addressing form to a numeric index. A numeric
// index out of range logs, a display name or identifier without a matching
// layer is an ordinary miss.
func resolveLayer[L LayerRef](m *Material, layer L) (int, bool) {
	switch l := any(layer).(type) {
	case int:
		if m.checkLayer(l) {
			return l, true
		}
	case string:
		return m.FindLayerID(l)
	case Layer:
		return m.FindLayerID(l.String())
	}
	return 0, false
}

func attrName[N AttrRef](name N) string {
	switch n := any(name).(type) {
	case string:
		return n
	case Attr:
		return n.String()
	}
	return ""
}

// HasAttribute reports whether the addressed layer carries the attribute.
func HasAttribute[L LayerRef, N AttrRef](m *Material, layer L, name N) bool {
	_, ok := FindAttributeID(m, layer, name)
	return ok
}

// FindAttributeID returns the position of an attribute within its layer.
func FindAttributeID[L LayerRef, N AttrRef](m *Material, layer L, name N) (int, bool) {
	layerIdx, ok := resolveLayer(m, layer)
	if !ok {
		return 0, false
	}
	begin, end := m.layerRange(layerIdx)
	idx, ok := m.findAttribute(begin, end, attrName(name))
	if !ok {
		return 0, false
	}
	return int(idx - begin), true
}

// AttributeID is FindAttributeID for callers that already know the attribute
// exists. A miss logs and returns position zero.
func AttributeID[L LayerRef, N AttrRef](m *Material, layer L, name N) int {
	id, ok := FindAttributeID(m, layer, name)
	if !ok {
		logger.Error("attribute not found",
			zap.Any("layer", layer),
			zap.String("name", attrName(name)))
		return 0
	}
	return id
}

// FindAttribute returns a copy of the named record.
func FindAttribute[L LayerRef, N AttrRef](m *Material, layer L, name N) (Attribute, bool) {
	layerIdx, ok := resolveLayer(m, layer)
	if !ok {
		return Attribute{}, false
	}
	begin, end := m.layerRange(layerIdx)
	idx, ok := m.findAttribute(begin, end, attrName(name))
	if !ok {
		return Attribute{}, false
	}
	return m.attributes[idx], true
}

// FindAttributeValue decodes the named attribute into T. Absence is an
// ordinary miss, a present attribute of a different type is a caller error
// and logs before reporting the miss.
func FindAttributeValue[T Value, L LayerRef, N AttrRef](m *Material, layer L, name N) (T, bool) {
	var zero T
	rec, ok := FindAttribute(m, layer, name)
	if !ok {
		return zero, false
	}
	v, ok := rec.Value().(T)
	if !ok {
		logger.Error("attribute value type mismatch",
			zap.String("name", rec.Name()),
			zap.Stringer("stored", rec.Type()),
			zap.String("requested", fmt.Sprintf("%T", zero)))
		return zero, false
	}
	return v, true
}

// AttributeValue is FindAttributeValue for callers that already know the
// attribute exists and its type. Any miss logs and yields the zero value.
func AttributeValue[T Value, L LayerRef, N AttrRef](m *Material, layer L, name N) T {
	var zero T
	rec, ok := FindAttribute(m, layer, name)
	if !ok {
		logger.Error("attribute not found",
			zap.Any("layer", layer),
			zap.String("name", attrName(name)))
		return zero
	}
	v, ok := rec.Value().(T)
	if !ok {
		logger.Error("attribute value type mismatch",
			zap.String("name", rec.Name()),
			zap.Stringer("stored", rec.Type()),
			zap.String("requested", fmt.Sprintf("%T", zero)))
		return zero
	}
	return v
}

// AttributeOr returns the decoded attribute value, or fallback when the
// layer or the attribute is absent.
func AttributeOr[T Value, L LayerRef, N AttrRef](m *Material, layer L, name N, fallback T) T {
	v, ok := FindAttributeValue[T](m, layer, name)
	if !ok {
		return fallback
	}
	return v
}
