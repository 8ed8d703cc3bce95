package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"fileencryptor/cipher"
	"fileencryptor/consts"
	"fileencryptor/logger"
	"fileencryptor/utils"
)

// Core is the file codec. It keeps no secrets between calls: every derived
// key lives only for the call that derived it and is zeroed before return.
// Calls block until done and cannot be cancelled.
type Core struct {
	logger    logger.Logger
	deriveKey func(pwd, salt []byte) []byte
}

func NewCore(logger logger.Logger) *Core {
	return &Core{
		logger:    logger,
		deriveKey: cipher.DeriveKey,
	}
}

// >>>
// In-memory operations.

// Encrypt seals raw under a key derived from pwd and a fresh salt and returns
// the encoded container.
func (s *Core) Encrypt(raw, pwd []byte, alg cipher.Algorithm) ([]byte, error) {
	if _, err := cipher.For(alg); err != nil {
		return nil, err
	}

	salt, err := utils.Rand(cipher.SaltSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	start := time.Now()
	key := s.deriveKey(pwd, salt)
	defer utils.Zero(key)
	s.logger.Log(logger.DebugLevel, "derived key in %s", time.Since(start))

	nonce, enc, err := cipher.Seal(alg, key, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to seal with %s: %w", alg, err)
	}

	return Encode(alg, salt, nonce, enc)
}

// Decrypt opens a container produced by Encrypt. The algorithm is taken from
// the container only; there is no way to override it.
func (s *Core) Decrypt(data, pwd []byte) ([]byte, error) {
	c, err := Decode(data)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	key := s.deriveKey(pwd, c.Salt)
	defer utils.Zero(key)
	s.logger.Log(logger.DebugLevel, "derived key in %s", time.Since(start))

	raw, err := cipher.Open(c.Algorithm, key, c.Nonce, c.Ciphertext)
	if err != nil {
		return nil, err
	}

	return raw, nil
}

// >>>
// File operations. The source is always read completely before anything is
// written, so src and dst may name the same file.

// Inspect decodes only the header of the container at path. Nothing is
// derived or decrypted, and Ciphertext is left nil.
func (s *Core) Inspect(path string) (*Container, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ioErr("open", path, err)
	}
	defer file.Close()

	header := make([]byte, HeaderSize)
	n, err := io.ReadFull(file, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, ioErr("read", path, err)
	}

	c, err := Decode(header[:n])
	if err != nil {
		return nil, err
	}
	c.Ciphertext = nil
	return c, nil
}

func (s *Core) EncryptFile(src, dst string, pwd []byte, alg cipher.Algorithm) error {
	raw, err := readFile(src)
	if err != nil {
		return err
	}
	defer utils.Zero(raw)

	out, err := s.Encrypt(raw, pwd, alg)
	if err != nil {
		return err
	}

	if err = writeFile(dst, out, consts.ENCRYPTED_FILE_MODE); err != nil {
		return err
	}
	s.logger.Log(logger.InfoLevel, "encrypted %s -> %s with %s (%d -> %d bytes)", src, dst, alg, len(raw), len(out))

	return nil
}

// DecryptToBytes is the one decryption path; DecryptToFile and DecryptToText
// are built on it.
func (s *Core) DecryptToBytes(src string, pwd []byte) ([]byte, error) {
	data, err := readFile(src)
	if err != nil {
		return nil, err
	}

	raw, err := s.Decrypt(data, pwd)
	if err != nil {
		s.logger.Log(logger.WarnLevel, "failed to decrypt %s: %v", src, err)
		return nil, err
	}

	return raw, nil
}

func (s *Core) DecryptToFile(src, dst string, pwd []byte) error {
	raw, err := s.DecryptToBytes(src, pwd)
	if err != nil {
		return err
	}
	defer utils.Zero(raw)

	if err = writeFile(dst, raw, consts.DECRYPTED_FILE_MODE); err != nil {
		return err
	}
	s.logger.Log(logger.InfoLevel, "decrypted %s -> %s (%d bytes)", src, dst, len(raw))

	return nil
}

func (s *Core) DecryptToText(src string, pwd []byte) (string, error) {
	raw, err := s.DecryptToBytes(src, pwd)
	if err != nil {
		return "", err
	}
	defer utils.Zero(raw)

	if !utf8.Valid(raw) {
		return "", ErrNotUTF8
	}

	return string(raw), nil
}
