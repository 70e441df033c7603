package compress_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharedkit/pkg/compress"
)

func TestRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("sharedkit compresses repetitive payloads well. "), 64)

	for _, alg := range []compress.Algorithm{compress.None, compress.Gzip, compress.Zstd, compress.Brotli} {
		t.Run(string(alg), func(t *testing.T) {
			packed, err := compress.Compress(alg, payload)
			require.NoError(t, err)
			if alg != compress.None {
				assert.Less(t, len(packed), len(payload))
			}

			out, err := compress.Decompress(alg, packed)
			require.NoError(t, err)
			assert.Equal(t, payload, out)
		})
	}
}

func TestEmptyInput(t *testing.T) {
	for _, alg := range []compress.Algorithm{compress.Gzip, compress.Zstd, compress.Brotli} {
		t.Run(string(alg), func(t *testing.T) {
			packed, err := compress.Compress(alg, nil)
			require.NoError(t, err)
			out, err := compress.Decompress(alg, packed)
			require.NoError(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestCorruptInput(t *testing.T) {
	_, err := compress.Gunzip([]byte("not gzip"))
	assert.ErrorIs(t, err, compress.ErrDecompress)

	_, err = compress.Unzstd([]byte("not zstd"))
	assert.ErrorIs(t, err, compress.ErrDecompress)
}

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]compress.Algorithm{
		"":         compress.None,
		"identity": compress.None,
		" GZIP ":   compress.Gzip,
		"zstd":     compress.Zstd,
		"br":       compress.Brotli,
		"brotli":   compress.Brotli,
	}
	for in, want := range tests {
		got, err := compress.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := compress.ParseAlgorithm("lz4")
	assert.ErrorIs(t, err, compress.ErrUnknownAlgorithm)

	_, err = compress.Compress("lz4", nil)
	assert.ErrorIs(t, err, compress.ErrUnknownAlgorithm)
}
