package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Algorithm names a compression format.
type Algorithm string

const (
	None   Algorithm = "none"
	Gzip   Algorithm = "gzip"
	Zstd   Algorithm = "zstd"
	Brotli Algorithm = "br"
)

var (
	ErrUnknownAlgorithm = errors.New("compress: unknown algorithm")
	ErrCompress         = errors.New("compress: failed to compress")
	ErrDecompress       = errors.New("compress: failed to decompress")
)

// ParseAlgorithm accepts the names used in Content-Encoding headers.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case "", None, "identity":
		return None, nil
	case Gzip, Zstd, Brotli:
		return a, nil
	case "brotli":
		return Brotli, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Compress encodes data with alg.
func Compress(alg Algorithm, data []byte) ([]byte, error) {
	switch alg {
	case None, "":
		return data, nil
	case Gzip:
		return GzipBytes(data)
	case Zstd:
		return ZstdBytes(data)
	case Brotli:
		return BrotliBytes(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

// Decompress decodes data produced by Compress with the same alg.
func Decompress(alg Algorithm, data []byte) ([]byte, error) {
	switch alg {
	case None, "":
		return data, nil
	case Gzip:
		return Gunzip(data)
	case Zstd:
		return Unzstd(data)
	case Brotli:
		return Unbrotli(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

// GzipBytes compresses data with gzip at the default level.
func GzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, errors.Join(ErrCompress, err)
	}
	if err := w.Close(); err != nil {
		return nil, errors.Join(ErrCompress, err)
	}
	return buf.Bytes(), nil
}

// Gunzip decompresses gzip data.
func Gunzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Join(ErrDecompress, err)
	}
	defer r.Close()
	return readAll(r)
}

// zstd encoders and decoders are safe for concurrent EncodeAll/DecodeAll.
var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

// ZstdBytes compresses data with zstd using a shared encoder.
func ZstdBytes(data []byte) ([]byte, error) {
	return zstdEncoder.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Unzstd decompresses zstd data using a shared decoder.
func Unzstd(data []byte) ([]byte, error) {
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, errors.Join(ErrDecompress, err)
	}
	return out, nil
}

// BrotliBytes compresses data with brotli at the default quality.
func BrotliBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if _, err := w.Write(data); err != nil {
		return nil, errors.Join(ErrCompress, err)
	}
	if err := w.Close(); err != nil {
		return nil, errors.Join(ErrCompress, err)
	}
	return buf.Bytes(), nil
}

// Unbrotli decompresses brotli data.
func Unbrotli(data []byte) ([]byte, error) {
	return readAll(brotli.NewReader(bytes.NewReader(data)))
}

func readAll(r io.Reader) ([]byte, error) {
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrDecompress, err)
	}
	return out, nil
}
