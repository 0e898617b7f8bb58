package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	original := bytes.Repeat([]byte(`{"nome":"João","cidade":"São Paulo"},`), 200)

	tests := []struct {
		algorithm Algorithm
		ext       string
	}{
		{None, ""},
		{Gzip, ".gz"},
		{Snappy, ".snappy"},
		{LZ4, ".lz4"},
		{Zstd, ".zst"},
	}
	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			comp, err := NewCompressor(tt.algorithm)
			require.NoError(t, err)
			assert.Equal(t, tt.algorithm, comp.Algorithm())
			assert.Equal(t, tt.ext, comp.Extension())

			compressed, err := comp.Compress(original)
			require.NoError(t, err)
			if tt.algorithm != None {
				assert.Less(t, len(compressed), len(original))
			}

			restored, err := comp.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, original, restored)
		})
	}
}

func TestParse(t *testing.T) {
	a, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, None, a)

	a, err = Parse(" ZSTD ")
	require.NoError(t, err)
	assert.Equal(t, Zstd, a)

	_, err = Parse("brotli")
	assert.Error(t, err)
}

func TestUnknownAlgorithm(t *testing.T) {
	_, err := NewCompressor(Algorithm("rar"))
	assert.Error(t, err)
}
