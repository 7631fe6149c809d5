package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureSwizzle_String(t *testing.T) {
	tests := []struct {
		swizzle    TextureSwizzle
		want       string
		components int
	}{
		{SwizzleR, "R", 1},
		{SwizzleA, "A", 1},
		{SwizzleGA, "GA", 2},
		{SwizzleRGB, "RGB", 3},
		{SwizzleGBA, "GBA", 3},
		{SwizzleRGBA, "RGBA", 4},
		{0, "", 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.swizzle.String())
		assert.Equal(t, tc.components, tc.swizzle.Components())
	}
}

func TestParseTextureSwizzle(t *testing.T) {
	for _, s := range []TextureSwizzle{
		SwizzleR, SwizzleG, SwizzleB, SwizzleA,
		SwizzleRG, SwizzleGB, SwizzleGA, SwizzleBA,
		SwizzleRGB, SwizzleGBA, SwizzleRGBA,
	} {
		parsed, ok := ParseTextureSwizzle(s.String())
		require.Truef(t, ok, "%s does not parse back", s)
		assert.Equal(t, s, parsed)
	}

	// letters outside the channel set, empty and oversized inputs
	for _, bad := range []string{"", "X", "RGX", "rgba", "RGBAR"} {
		_, ok := ParseTextureSwizzle(bad)
		assert.Falsef(t, ok, "%q should not parse", bad)
	}
}
