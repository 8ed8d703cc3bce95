package cipher

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestAlgorithmIdentifiers(t *testing.T) {
	// persisted values, never reassign
	assert.Equal(t, byte(1), AESGCM.ID())
	assert.Equal(t, byte(2), AESGCMSIV.ID())
	assert.Equal(t, byte(3), ChaCha20Poly1305.ID())

	for _, alg := range Algorithms {
		got, ok := FromID(alg.ID())
		assert.True(t, ok)
		assert.Equal(t, alg, got)
	}

	for _, id := range []byte{0, 4, 0x7f, 0xff} {
		_, ok := FromID(id)
		assert.False(t, ok, "id %d", id)
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]Algorithm{
		"aes-gcm":           AESGCM,
		"AES-GCM":           AESGCM,
		"aesgcm":            AESGCM,
		"aes-gcm-siv":       AESGCMSIV,
		"AES_GCM_SIV":       AESGCMSIV,
		"chacha20-poly1305": ChaCha20Poly1305,
		"ChaCha20Poly1305":  ChaCha20Poly1305,
	}
	for in, want := range cases {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAlgorithm("des")
	assert.Error(t, err)
}

func TestFor_Unknown(t *testing.T) {
	c, err := For(Algorithm(9))
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestCiphers(t *testing.T) {
	for _, alg := range Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			key := randomKey(t)

			t.Run("round trip", func(t *testing.T) {
				for _, raw := range [][]byte{{}, []byte("hello"), bytes.Repeat([]byte{0xAB}, 4096)} {
					nonce, enc, err := Seal(alg, key, raw)
					require.NoError(t, err)
					assert.Len(t, nonce, NonceSize)
					assert.Len(t, enc, len(raw)+TagSize)

					got, err := Open(alg, key, nonce, enc)
					require.NoError(t, err)
					assert.True(t, bytes.Equal(raw, got))
				}
			})

			t.Run("fresh nonce per call", func(t *testing.T) {
				n1, c1, err := Seal(alg, key, []byte("same"))
				require.NoError(t, err)
				n2, c2, err := Seal(alg, key, []byte("same"))
				require.NoError(t, err)
				assert.NotEqual(t, n1, n2)
				assert.NotEqual(t, c1, c2)
			})

			t.Run("wrong key", func(t *testing.T) {
				nonce, enc, err := Seal(alg, key, []byte("secret"))
				require.NoError(t, err)

				_, err = Open(alg, randomKey(t), nonce, enc)
				assert.ErrorIs(t, err, ErrAuthentication)
			})

			t.Run("tampering", func(t *testing.T) {
				nonce, enc, err := Seal(alg, key, []byte("sensitive data"))
				require.NoError(t, err)

				for i := range enc {
					tampered := bytes.Clone(enc)
					tampered[i] ^= 0x01
					_, err := Open(alg, key, nonce, tampered)
					assert.ErrorIs(t, err, ErrAuthentication, "byte %d", i)
				}

				badNonce := bytes.Clone(nonce)
				badNonce[0] ^= 0x80
				_, err = Open(alg, key, badNonce, enc)
				assert.ErrorIs(t, err, ErrAuthentication)

				_, err = Open(alg, key, nonce, enc[:TagSize-1])
				assert.ErrorIs(t, err, ErrAuthentication)
			})

			t.Run("invalid sizes", func(t *testing.T) {
				_, _, err := Seal(alg, key[:16], []byte("x"))
				assert.Error(t, err)

				nonce, enc, err := Seal(alg, key, []byte("x"))
				require.NoError(t, err)
				_, err = Open(alg, key, nonce[:8], enc)
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrAuthentication)
			})
		})
	}
}

func TestCrossAlgorithm(t *testing.T) {
	key := randomKey(t)
	for _, from := range Algorithms {
		nonce, enc, err := Seal(from, key, []byte("interop"))
		require.NoError(t, err)
		for _, to := range Algorithms {
			if to == from {
				continue
			}
			_, err := Open(to, key, nonce, enc)
			assert.ErrorIs(t, err, ErrAuthentication, "%s opened as %s", from, to)
		}
	}
}

func TestDeriveKey(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, SaltSize)

	k1 := DeriveKey([]byte("correct"), salt)
	k2 := DeriveKey([]byte("correct"), salt)
	assert.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)

	otherSalt := bytes.Repeat([]byte{0x02}, SaltSize)
	assert.NotEqual(t, k1, DeriveKey([]byte("correct"), otherSalt))
	assert.NotEqual(t, k1, DeriveKey([]byte("wrong"), salt))

	assert.Len(t, DeriveKey(nil, salt), KeySize)
}
