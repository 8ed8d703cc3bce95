package core

import (
	"bytes"
	"testing"

	"fileencryptor/cipher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_Layout(t *testing.T) {
	assert.Equal(t, 29, HeaderSize)
	assert.Equal(t, 45, Overhead)

	salt := bytes.Repeat([]byte{0xAA}, cipher.SaltSize)
	nonce := bytes.Repeat([]byte{0xBB}, cipher.NonceSize)
	ct := []byte("ciphertext-and-tag")

	out, err := Encode(cipher.ChaCha20Poly1305, salt, nonce, ct)
	require.NoError(t, err)
	require.Len(t, out, HeaderSize+len(ct))

	assert.Equal(t, byte(3), out[0])
	assert.Equal(t, salt, out[1:17])
	assert.Equal(t, nonce, out[17:29])
	assert.Equal(t, ct, out[29:])

	c, err := Decode(out)
	require.NoError(t, err)
	assert.Equal(t, cipher.ChaCha20Poly1305, c.Algorithm)
	assert.Equal(t, salt, c.Salt)
	assert.Equal(t, nonce, c.Nonce)
	assert.Equal(t, ct, c.Ciphertext)

	again, err := c.Encode()
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestContainer_HeaderOnly(t *testing.T) {
	data := make([]byte, HeaderSize)
	data[0] = cipher.AESGCM.ID()

	c, err := Decode(data)
	require.NoError(t, err)
	assert.Empty(t, c.Ciphertext)
}

func TestContainer_DecodeTruncated(t *testing.T) {
	for _, size := range []int{0, 1, 17, HeaderSize - 1} {
		data := make([]byte, size)
		if size > 0 {
			data[0] = cipher.AESGCM.ID()
		}
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrTruncated, "size %d", size)
		assert.ErrorIs(t, err, ErrFormat, "size %d", size)
	}
}

func TestContainer_DecodeUnknownAlgorithm(t *testing.T) {
	for _, id := range []byte{0, 4, 0x80, 0xff} {
		data := make([]byte, HeaderSize+cipher.TagSize)
		data[0] = id
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrUnknownAlgorithm, "id %d", id)
		assert.ErrorIs(t, err, ErrFormat, "id %d", id)
		assert.NotErrorIs(t, err, ErrTruncated)
	}
}

func TestContainer_EncodeInvalid(t *testing.T) {
	salt := make([]byte, cipher.SaltSize)
	nonce := make([]byte, cipher.NonceSize)

	_, err := Encode(cipher.Algorithm(9), salt, nonce, nil)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = Encode(cipher.AESGCM, salt[:8], nonce, nil)
	assert.Error(t, err)

	_, err = Encode(cipher.AESGCM, salt, nonce[:8], nil)
	assert.Error(t, err)
}
