package guid

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidShort is returned by FromShort for malformed input.
var ErrInvalidShort = errors.New("guid: invalid short id")

// IsEmpty reports whether id is the nil UUID.
func IsEmpty(id uuid.UUID) bool {
	return id == uuid.Nil
}

// ParseOrNil parses s and returns uuid.Nil when it is not a valid UUID.
func ParseOrNil(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// MustNewV7 returns a time-ordered UUID. Panics if the random source fails.
func MustNewV7() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// ToShort encodes id as a 22 character URL-safe string.
func ToShort(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// FromShort decodes a string produced by ToShort.
func FromShort(s string) (uuid.UUID, error) {
	if len(s) != 22 {
		return uuid.Nil, fmt.Errorf("%w: length %d", ErrInvalidShort, len(s))
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidShort, err)
	}
	return uuid.FromBytes(b)
}

// ToBytes returns the 16 raw bytes of id.
func ToBytes(id uuid.UUID) []byte {
	b := make([]byte, len(id))
	copy(b, id[:])
	return b
}
