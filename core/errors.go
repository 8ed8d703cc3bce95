package core

import (
	"errors"
	"fmt"

	"fileencryptor/cipher"
	"fileencryptor/consts/errs"
)

var (
	// ErrIO wraps every filesystem failure; the *fs.PathError stays reachable.
	ErrIO = errors.New("file i/o failed")

	// ErrFormat is wrapped by both layout failures below.
	ErrFormat           = errors.New("invalid container format")
	ErrTruncated        = fmt.Errorf("%w: shorter than the %d-byte header", ErrFormat, HeaderSize)
	ErrUnknownAlgorithm = fmt.Errorf("%w: unknown algorithm identifier", ErrFormat)

	// ErrAuthentication is returned for a wrong password and for modified
	// data alike.
	ErrAuthentication = cipher.ErrAuthentication

	ErrNotUTF8 = errors.New("decrypted content is not valid UTF-8 text")
)

// Kind maps err onto the error type constants of consts/errs.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuthentication):
		return errs.ErrAuthFailed
	case errors.Is(err, ErrFormat):
		return errs.ErrInvalidFormat
	case errors.Is(err, ErrNotUTF8):
		return errs.ErrNotText
	case errors.Is(err, ErrIO):
		return errs.ErrFileIO
	default:
		return errs.ErrUnknown
	}
}

func ioErr(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}
