// Package codec turns values into bytes and back, as JSON or YAML, with
// optional compression from the compress package.
//
//	b, err := codec.ToBytes(order, codec.WithCompression(compress.Gzip))
//	order, err := codec.FromBytes[Order](b, codec.WithCompression(compress.Gzip))
package codec
