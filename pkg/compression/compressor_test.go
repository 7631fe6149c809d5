package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripAllAlgorithms(t *testing.T) {
	original := bytes.Repeat([]byte("material attribute records pack into fixed 64-byte slots "), 64)

	for _, algo := range []Algorithm{None, Gzip, Snappy, LZ4, Zstd, S2} {
		t.Run(string(algo), func(t *testing.T) {
			comp, err := NewCompressor(&Config{Algorithm: algo, Level: Default})
			require.NoError(t, err)
			assert.Equal(t, algo, comp.Algorithm())

			compressed, err := comp.Compress(original)
			require.NoError(t, err)

			decompressed, err := comp.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, original, decompressed)
		})
	}
}

func TestStreamRoundTrip(t *testing.T) {
	original := bytes.Repeat([]byte("layer offsets partition the record sequence "), 128)

	for _, algo := range []Algorithm{None, Gzip, Snappy, LZ4, Zstd, S2} {
		t.Run(string(algo), func(t *testing.T) {
			comp, err := NewCompressor(&Config{Algorithm: algo, Level: Default})
			require.NoError(t, err)

			var compressed bytes.Buffer
			require.NoError(t, comp.CompressStream(&compressed, bytes.NewReader(original)))

			var decompressed bytes.Buffer
			require.NoError(t, comp.DecompressStream(&decompressed, &compressed))
			assert.Equal(t, original, decompressed.Bytes())
		})
	}
}

func TestCompressionLevels(t *testing.T) {
	original := bytes.Repeat([]byte("clear coat roughness baseline "), 256)

	for _, algo := range []Algorithm{Gzip, LZ4, Zstd, S2} {
		for _, level := range []Level{Fastest, Default, Better, Best} {
			t.Run(string(algo)+"/"+level.String(), func(t *testing.T) {
				comp, err := NewCompressor(&Config{Algorithm: algo, Level: level})
				require.NoError(t, err)
				assert.Equal(t, level, comp.Level())

				compressed, err := comp.Compress(original)
				require.NoError(t, err)
				assert.Less(t, len(compressed), len(original))

				decompressed, err := comp.Decompress(compressed)
				require.NoError(t, err)
				assert.Equal(t, original, decompressed)
			})
		}
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	_, err := NewCompressor(&Config{Algorithm: Algorithm("brotli")})
	assert.Error(t, err)

	_, err = ParseAlgorithm("brotli")
	assert.Error(t, err)
}

func TestAlgorithmWireIDs(t *testing.T) {
	// Header bytes are part of the container format and must stay stable.
	want := map[Algorithm]byte{None: 0, Gzip: 1, Snappy: 2, LZ4: 3, Zstd: 4, S2: 5}
	for algo, id := range want {
		got, err := algo.ID()
		require.NoError(t, err)
		assert.Equal(t, id, got, "algorithm %s", algo)

		back, err := AlgorithmByID(id)
		require.NoError(t, err)
		assert.Equal(t, algo, back)
	}

	_, err := AlgorithmByID(200)
	assert.Error(t, err)
}

func TestCompressorPool(t *testing.T) {
	pool := NewCompressorPool(&Config{Algorithm: Zstd, Level: Fastest})
	data := bytes.Repeat([]byte("pooled "), 512)

	compressed, err := pool.Compress(data)
	require.NoError(t, err)

	decompressed, err := pool.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}
