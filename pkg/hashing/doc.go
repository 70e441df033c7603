// Package hashing derives password hashes and computes hex digests.
//
// Two password hashers implement Hasher: PBKDF2Hasher (PBKDF2-HMAC-SHA256 from
// golang.org/x/crypto/pbkdf2) and BcryptHasher. The PBKDF2 encoding carries
// its own parameters, so raising the iteration count does not invalidate
// existing hashes:
//
//	h := hashing.NewPBKDF2(settings.PBKDF2Iterations)
//	encoded, err := h.Hash(password)
//	...
//	if err := hashing.Verify(password, encoded); errors.Is(err, hashing.ErrMismatch) {
//		// wrong password
//	}
//
// Comparisons are constant time.
package hashing
