package cipher

import (
	"errors"
	"fmt"
	"strings"
)

const (
	KeySize   = 32
	NonceSize = 12
	TagSize   = 16
)

// ErrAuthentication is the only error Decrypt reports for a ciphertext that
// does not verify. A wrong key and a modified ciphertext are not told apart.
var ErrAuthentication = errors.New("message authentication failed")

// Cipher is one AEAD construction. Implementations carry no state; the key is
// passed on every call and the nonce is drawn fresh inside Encrypt.
type Cipher interface {
	Encrypt(key, raw []byte) (enc, nonce []byte, err error)
	Decrypt(key, enc, nonce []byte) (raw []byte, err error)
}

// Algorithm identifies a Cipher. The numeric value is written into every
// container and must never be reassigned.
type Algorithm uint8

const (
	AESGCM           Algorithm = 1
	AESGCMSIV        Algorithm = 2
	ChaCha20Poly1305 Algorithm = 3
)

// Algorithms lists every supported algorithm in identifier order.
var Algorithms = []Algorithm{AESGCM, AESGCMSIV, ChaCha20Poly1305}

// ID returns the byte persisted for a.
func (a Algorithm) ID() byte {
	return byte(a)
}

// FromID maps a persisted identifier back to its Algorithm.
func FromID(id byte) (Algorithm, bool) {
	switch Algorithm(id) {
	case AESGCM, AESGCMSIV, ChaCha20Poly1305:
		return Algorithm(id), true
	default:
		return 0, false
	}
}

func (a Algorithm) String() string {
	switch a {
	case AESGCM:
		return "aes-gcm"
	case AESGCMSIV:
		return "aes-gcm-siv"
	case ChaCha20Poly1305:
		return "chacha20-poly1305"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

// Label is the human readable name shown by the front-ends.
func (a Algorithm) Label() string {
	switch a {
	case AESGCM:
		return "AES-256-GCM"
	case AESGCMSIV:
		return "AES-256-GCM-SIV"
	case ChaCha20Poly1305:
		return "ChaCha20-Poly1305"
	default:
		return a.String()
	}
}

// ParseAlgorithm accepts the String form, case-insensitively, with or without dashes.
func ParseAlgorithm(name string) (Algorithm, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for _, a := range Algorithms {
		if norm == strings.ReplaceAll(a.String(), "-", "") {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unsupported algorithm %q", name)
}

// For returns the Cipher implementing a.
func For(a Algorithm) (Cipher, error) {
	switch a {
	case AESGCM:
		return AESGCMCipher{}, nil
	case AESGCMSIV:
		return AESGCMSIVCipher{}, nil
	case ChaCha20Poly1305:
		return ChaCha20Poly1305Cipher{}, nil
	default:
		return nil, fmt.Errorf("unsupported algorithm %s", a)
	}
}

// Seal encrypts raw under key with a, returning the fresh nonce and the
// ciphertext with its tag appended.
func Seal(a Algorithm, key, raw []byte) (nonce, enc []byte, err error) {
	c, err := For(a)
	if err != nil {
		return nil, nil, err
	}
	enc, nonce, err = c.Encrypt(key, raw)
	if err != nil {
		return nil, nil, err
	}
	return nonce, enc, nil
}

// Open reverses Seal. Any verification failure is ErrAuthentication.
func Open(a Algorithm, key, nonce, enc []byte) ([]byte, error) {
	c, err := For(a)
	if err != nil {
		return nil, err
	}
	return c.Decrypt(key, enc, nonce)
}

func checkKey(key []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("key must be %d bytes, got %d", KeySize, len(key))
	}
	return nil
}

func checkNonce(nonce []byte) error {
	if len(nonce) != NonceSize {
		return fmt.Errorf("nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}
	return nil
}
