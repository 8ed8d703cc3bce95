package core

import (
	"fmt"

	"fileencryptor/cipher"
)

// Container layout, all fields positional:
//
//	offset  0, len  1: algorithm identifier
//	offset  1, len 16: salt
//	offset 17, len 12: nonce
//	offset 29, rest  : ciphertext with the 16-byte tag appended
const (
	saltOffset  = 1
	nonceOffset = saltOffset + cipher.SaltSize
	dataOffset  = nonceOffset + cipher.NonceSize

	HeaderSize = dataOffset
	// Overhead is what an encryption adds on top of the plaintext length.
	Overhead = HeaderSize + cipher.TagSize
)

type Container struct {
	Algorithm  cipher.Algorithm
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
}

// Encode lays the fields out in container order.
func Encode(alg cipher.Algorithm, salt, nonce, ciphertext []byte) ([]byte, error) {
	if _, ok := cipher.FromID(alg.ID()); !ok {
		return nil, fmt.Errorf("%w 0x%02x", ErrUnknownAlgorithm, alg.ID())
	}
	if len(salt) != cipher.SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", cipher.SaltSize, len(salt))
	}
	if len(nonce) != cipher.NonceSize {
		return nil, fmt.Errorf("nonce must be %d bytes, got %d", cipher.NonceSize, len(nonce))
	}

	out := make([]byte, 0, HeaderSize+len(ciphertext))
	out = append(out, alg.ID())
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, ciphertext...)
	return out, nil
}

// Decode splits data into its fields. The returned slices alias data.
// Only the layout is checked here, nothing is decrypted.
func Decode(data []byte) (*Container, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrTruncated, len(data))
	}
	alg, ok := cipher.FromID(data[0])
	if !ok {
		return nil, fmt.Errorf("%w 0x%02x", ErrUnknownAlgorithm, data[0])
	}

	return &Container{
		Algorithm:  alg,
		Salt:       data[saltOffset:nonceOffset],
		Nonce:      data[nonceOffset:dataOffset],
		Ciphertext: data[dataOffset:],
	}, nil
}

// Encode is the method form of the package level Encode.
func (c *Container) Encode() ([]byte, error) {
	return Encode(c.Algorithm, c.Salt, c.Nonce, c.Ciphertext)
}
