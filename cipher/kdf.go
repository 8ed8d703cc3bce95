package cipher

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	SaltSize = 16

	// Iterations is part of the container format: changing it makes every
	// existing file undecryptable.
	Iterations = 100_000
)

// DeriveKey stretches pwd with PBKDF2-HMAC-SHA256 into a KeySize key.
// The same (pwd, salt) always yields the same key.
func DeriveKey(pwd, salt []byte) []byte {
	return pbkdf2.Key(pwd, salt, Iterations, KeySize, sha256.New)
}
