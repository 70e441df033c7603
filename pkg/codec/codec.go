package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sharedkit/pkg/compress"
)

// Format is a serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnknownFormat = errors.New("codec: unknown format")
	ErrEncode        = errors.New("codec: failed to encode")
	ErrDecode        = errors.New("codec: failed to decode")
)

// Option configures ToBytes and FromBytes.
type Option func(*options)

type options struct {
	format Format
	alg    compress.Algorithm
}

// WithFormat selects the serialization format. JSON is the default.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithCompression compresses encoded bytes with alg, and expects it when decoding.
func WithCompression(alg compress.Algorithm) Option {
	return func(o *options) {
		o.alg = alg
	}
}

func apply(opts []Option) options {
	o := options{format: FormatJSON, alg: compress.None}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ToBytes serializes v.
func ToBytes(v any, opts ...Option) ([]byte, error) {
	o := apply(opts)

	var (
		b   []byte
		err error
	)
	switch o.format {
	case FormatJSON:
		b, err = json.Marshal(v)
	case FormatYAML:
		b, err = yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, o.format)
	}
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return compress.Compress(o.alg, b)
}

// FromBytes deserializes data into a new T.
func FromBytes[T any](data []byte, opts ...Option) (T, error) {
	var v T
	err := Decode(data, &v, opts...)
	return v, err
}

// Decode deserializes data into v, which must be a pointer.
func Decode(data []byte, v any, opts ...Option) error {
	o := apply(opts)

	b, err := compress.Decompress(o.alg, data)
	if err != nil {
		return err
	}
	switch o.format {
	case FormatJSON:
		err = json.Unmarshal(b, v)
	case FormatYAML:
		err = yaml.Unmarshal(b, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, o.format)
	}
	if err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}
