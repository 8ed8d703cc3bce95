package cipher

import (
	"fmt"

	"github.com/tink-crypto/tink-go/aead/subtle"
)

// AESGCMSIVCipher is the nonce-misuse-resistant AES-256-GCM-SIV (RFC 8452).
//
// tink draws the nonce itself and emits nonce||ciphertext||tag; the nonce is
// split off here so every Cipher hands back the same shape.
type AESGCMSIVCipher struct{}

func (AESGCMSIVCipher) Encrypt(key, raw []byte) (enc, nonce []byte, err error) {
	if err = checkKey(key); err != nil {
		return nil, nil, err
	}
	siv, err := subtle.NewAESGCMSIV(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AES-GCM-SIV cipher: %w", err)
	}

	out, err := siv.Encrypt(raw, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to seal with AES-GCM-SIV: %w", err)
	}
	if len(out) < NonceSize+TagSize {
		return nil, nil, fmt.Errorf("unexpected AES-GCM-SIV output length %d", len(out))
	}

	return out[NonceSize:], out[:NonceSize], nil
}

func (AESGCMSIVCipher) Decrypt(key, enc, nonce []byte) (raw []byte, err error) {
	if err = checkKey(key); err != nil {
		return nil, err
	}
	if err = checkNonce(nonce); err != nil {
		return nil, err
	}
	siv, err := subtle.NewAESGCMSIV(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES-GCM-SIV cipher: %w", err)
	}

	in := make([]byte, 0, len(nonce)+len(enc))
	in = append(in, nonce...)
	in = append(in, enc...)

	raw, err = siv.Decrypt(in, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return raw, nil
}
