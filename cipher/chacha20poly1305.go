package cipher

import (
	"fmt"

	"fileencryptor/utils"

	"golang.org/x/crypto/chacha20poly1305"
)

// ChaCha20Poly1305Cipher is the RFC 8439 construction with a 12-byte nonce.
type ChaCha20Poly1305Cipher struct{}

func (ChaCha20Poly1305Cipher) Encrypt(key, raw []byte) (enc, nonce []byte, err error) {
	if err = checkKey(key); err != nil {
		return nil, nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}

	if nonce, err = utils.Rand(aead.NonceSize()); err != nil {
		return nil, nil, err
	}
	enc = aead.Seal(nil, nonce, raw, nil)

	return enc, nonce, nil
}

func (ChaCha20Poly1305Cipher) Decrypt(key, enc, nonce []byte) (raw []byte, err error) {
	if err = checkKey(key); err != nil {
		return nil, err
	}
	if err = checkNonce(nonce); err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}

	raw, err = aead.Open(nil, nonce, enc, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return raw, nil
}
