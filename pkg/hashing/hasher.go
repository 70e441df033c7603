package hashing

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// Hasher derives and verifies password hashes.
type Hasher interface {
	Hash(password string) (string, error)
	// Verify returns nil when password matches encoded, ErrMismatch when it
	// does not and ErrMalformedHash when encoded cannot be decoded.
	Verify(password, encoded string) error
}

const (
	pbkdf2Prefix = "pbkdf2-sha256"

	DefaultPBKDF2Iterations = 600_000
	pbkdf2SaltLen           = 16
	pbkdf2KeyLen            = 32
)

// PBKDF2Hasher hashes with PBKDF2-HMAC-SHA256. Encoded hashes look like
// pbkdf2-sha256$<iterations>$<salt>$<key> with unpadded base64 parts.
type PBKDF2Hasher struct {
	iterations int
}

// NewPBKDF2 returns a hasher using iterations rounds, or DefaultPBKDF2Iterations when iterations < 1.
func NewPBKDF2(iterations int) PBKDF2Hasher {
	if iterations < 1 {
		iterations = DefaultPBKDF2Iterations
	}
	return PBKDF2Hasher{iterations: iterations}
}

// Iterations is the round count Hash writes. The zero value uses DefaultPBKDF2Iterations.
func (h PBKDF2Hasher) Iterations() int {
	if h.iterations < 1 {
		return DefaultPBKDF2Iterations
	}
	return h.iterations
}

// Hash derives a key from password with a random salt and encodes it.
func (h PBKDF2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	iterations := h.Iterations()
	key := pbkdf2.Key([]byte(password), salt, iterations, pbkdf2KeyLen, sha256.New)

	return strings.Join([]string{
		pbkdf2Prefix,
		strconv.Itoa(iterations),
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	}, "$"), nil
}

// Verify uses the iteration count stored in encoded, not the hasher's own.
func (h PBKDF2Hasher) Verify(password, encoded string) error {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 || parts[0] != pbkdf2Prefix {
		return ErrMalformedHash
	}
	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations < 1 {
		return fmt.Errorf("%w: bad iteration count", ErrMalformedHash)
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return fmt.Errorf("%w: bad salt", ErrMalformedHash)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(want) == 0 {
		return fmt.Errorf("%w: bad key", ErrMalformedHash)
	}

	got := pbkdf2.Key([]byte(password), salt, iterations, len(want), sha256.New)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrMismatch
	}
	return nil
}

// BcryptHasher hashes with bcrypt at a fixed cost.
type BcryptHasher struct {
	cost int
}

// NewBcrypt returns a hasher with cost, or bcrypt.DefaultCost when cost is out of range.
func NewBcrypt(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(b), nil
}

// Verify compares password with a bcrypt hash.
func (h BcryptHasher) Verify(password, encoded string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errors.Join(ErrMalformedHash, err)
	}
}

// Detect picks the hasher able to verify encoded from its prefix.
func Detect(encoded string) (Hasher, error) {
	switch {
	case strings.HasPrefix(encoded, pbkdf2Prefix+"$"):
		return NewPBKDF2(0), nil
	case strings.HasPrefix(encoded, "$2a$"), strings.HasPrefix(encoded, "$2b$"), strings.HasPrefix(encoded, "$2y$"):
		return NewBcrypt(0), nil
	}
	return nil, ErrUnsupportedAlg
}

// Verify checks password against a hash produced by any supported hasher.
func Verify(password, encoded string) error {
	h, err := Detect(encoded)
	if err != nil {
		return err
	}
	return h.Verify(password, encoded)
}
