package cipher

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"fileencryptor/utils"
)

// AESGCMCipher is AES-256 in Galois/Counter Mode.
type AESGCMCipher struct{}

func newGCM(key []byte) (cipher.AEAD, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("error creating new cipher block : %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("error wrapping cipher block in GCM : %w", err)
	}
	return gcm, nil
}

func (AESGCMCipher) Encrypt(key, raw []byte) (enc, nonce []byte, err error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	if nonce, err = utils.Rand(gcm.NonceSize()); err != nil {
		return nil, nil, err
	}
	enc = gcm.Seal(nil, nonce, raw, nil)

	return enc, nonce, nil
}

func (AESGCMCipher) Decrypt(key, enc, nonce []byte) (raw []byte, err error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if err = checkNonce(nonce); err != nil {
		return nil, err
	}

	raw, err = gcm.Open(nil, nonce, enc, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return raw, nil
}
