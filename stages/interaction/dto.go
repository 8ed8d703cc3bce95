package interaction

import (
	"time"

	"fileencryptor/cipher"
	"fileencryptor/utils"
)

type Command string

const (
	CmdEncrypt Command = "encrypt"
	CmdDecrypt Command = "decrypt"
	CmdRead    Command = "read"
)

func (c Command) Title() string {
	switch c {
	case CmdEncrypt:
		return "ENCRYPT"
	case CmdDecrypt:
		return "DECRYPT"
	case CmdRead:
		return "READ"
	default:
		return string(c)
	}
}

// Extensions limits which files the picker offers, nil means any.
func (c Command) Extensions() []string {
	if c == CmdRead {
		return []string{".txt"}
	}
	return nil
}

// NeedsMethod is true when the user has to pick an algorithm.
func (c Command) NeedsMethod() bool {
	return c == CmdEncrypt
}

// >>>

type Request struct {
	Command Command
	Path    string
	// Out is the destination, empty means Path is overwritten.
	Out       string
	Algorithm cipher.Algorithm // encrypt only
	Pwd       []byte
	Confirm   []byte
}

func (r *Request) dest() string {
	if r.Out == "" {
		return r.Path
	}
	return r.Out
}

// Clear zeroes both passphrase buffers.
func (r *Request) Clear() {
	utils.Zero(r.Pwd)
	utils.Zero(r.Confirm)
}

type Result struct {
	Command   Command
	Path      string
	Out       string
	Algorithm cipher.Algorithm
	// InSize and OutSize are file sizes before and after, in bytes.
	InSize   int64
	OutSize  int64
	Duration time.Duration
	Message  string
	// Text holds the decrypted content, read only.
	Text string
}

// >>>

type FileEntry struct {
	Path    string
	Name    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}
