package hashing

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
)

// SHA256 returns the hex digest of data.
func SHA256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// MD5 returns the hex digest of data. Use it for checksums and cache keys only.
func MD5(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// HMACSHA256 returns the hex HMAC of data under key.
func HMACSHA256(key, data []byte) string {
	m := hmac.New(sha256.New, key)
	m.Write(data)
	return hex.EncodeToString(m.Sum(nil))
}

// EqualHMAC compares two hex HMACs in constant time.
func EqualHMAC(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
