package material

// TextureSwizzle selects which channels of a texture an attribute reads.
// Channel letters pack into a 32-bit value from the lowest byte up, so the
// value doubles as a fourCC-style tag: SwizzleRG is 'R' | 'G'<<8. Unused
// high bytes stay zero.
type TextureSwizzle uint32

const (
	SwizzleR TextureSwizzle = 'R'
	SwizzleG TextureSwizzle = 'G'
	SwizzleB TextureSwizzle = 'B'
	SwizzleA TextureSwizzle = 'A'

	SwizzleRG TextureSwizzle = 'R' | 'G'<<8
	SwizzleGB TextureSwizzle = 'G' | 'B'<<8
	// SwizzleGA is the usual normal-map layout in two-channel textures.
	SwizzleGA TextureSwizzle = 'G' | 'A'<<8
	SwizzleBA TextureSwizzle = 'B' | 'A'<<8

	SwizzleRGB TextureSwizzle = 'R' | 'G'<<8 | 'B'<<16
	SwizzleGBA TextureSwizzle = 'G' | 'B'<<8 | 'A'<<16

	SwizzleRGBA TextureSwizzle = 'R' | 'G'<<8 | 'B'<<16 | 'A'<<24
)

// Components returns how many channels the swizzle selects. Channels pack
// from the low byte with no gaps, so this is the count of non-zero bytes.
func (s TextureSwizzle) Components() int {
	n := 0
	for v := uint32(s); v != 0; v >>= 8 {
		n++
	}
	return n
}

// String spells the swizzle out as channel letters, e.g. "RGB". The zero
// value renders as an empty string.
func (s TextureSwizzle) String() string {
	var buf [4]byte
	n := 0
	for v := uint32(s); v != 0; v >>= 8 {
		buf[n] = byte(v)
		n++
	}
	return string(buf[:n])
}

// ParseTextureSwizzle is the inverse of TextureSwizzle.String. Every
// character must be one of R, G, B, A and at most four are allowed.
func ParseTextureSwizzle(s string) (TextureSwizzle, bool) {
	if len(s) == 0 || len(s) > 4 {
		return 0, false
	}
	var v uint32
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'R', 'G', 'B', 'A':
			v |= uint32(s[i]) << (8 * i)
		default:
			return 0, false
		}
	}
	return TextureSwizzle(v), true
}
