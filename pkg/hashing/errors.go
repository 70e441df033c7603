package hashing

import "errors"

var (
	ErrMismatch       = errors.New("hashing: password does not match")
	ErrMalformedHash  = errors.New("hashing: malformed hash")
	ErrEmptyPassword  = errors.New("hashing: password is empty")
	ErrHashingFailed  = errors.New("hashing: failed to hash password")
	ErrUnsupportedAlg = errors.New("hashing: unsupported algorithm")
)
