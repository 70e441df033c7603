// Package compress wraps gzip and zstd from github.com/klauspost/compress and
// brotli from github.com/andybalholm/brotli behind one byte-slice API.
//
//	packed, err := compress.Compress(compress.Zstd, payload)
//	payload, err = compress.Decompress(compress.Zstd, packed)
//
// Algorithm values match Content-Encoding tokens, so ParseAlgorithm can read
// them straight from a request header.
package compress
