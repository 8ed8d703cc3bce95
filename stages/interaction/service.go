package interaction

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"fileencryptor/consts/errs"
	"fileencryptor/core"
	"fileencryptor/logger"
	"fileencryptor/stages/auxiliary"
	"fileencryptor/utils"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// User facing messages. Details only ever go to the log.
const (
	MsgEncrypted     = "Encrypted File Successfully"
	MsgDecrypted     = "Decrypted File Successfully"
	MsgEncryptFailed = "Failed to Encrypt"
	MsgWrongPass     = "Incorrect Passphrase"
	MsgReadFailed    = "Unable to decrypt or incorrect passphrase"
	MsgNotText       = "Decrypted content is not text"
	MsgFileFailed    = "Unable to access the file"
	MsgMismatch      = "Mismatch passphrases"
	MsgNoFile        = "No file selected"
)

type Service struct {
	logger   logger.Logger
	core     *core.Core
	settings *auxiliary.Settings
}

func NewService(logger logger.Logger, core *core.Core, settings *auxiliary.Settings) *Service {
	return &Service{
		logger:   logger,
		core:     core,
		settings: settings,
	}
}

func (s *Service) emitErr(errf *errs.Errorf) error {
	s.logger.Log(logger.ErrorLevel, "%s: %v: %s", errf.Type, errf.Error, errf.Message)
	if errf.ReturnRaw {
		return errf.Error
	}
	return fmt.Errorf("%s", errf.Message)
}

func (s *Service) Settings() *auxiliary.Settings {
	return s.settings
}

// >>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>

// Do runs req and zeroes its passphrases before returning.
func (s *Service) Do(req *Request) (*Result, error) {
	defer req.Clear()

	if err := s.verifyRequest(req); err != nil {
		return nil, err
	}

	switch req.Command {
	case CmdEncrypt:
		return s.encrypt(req)
	case CmdDecrypt:
		return s.decrypt(req)
	case CmdRead:
		return s.read(req)
	default:
		return nil, s.emitErr(&errs.Errorf{
			Type:    errs.ErrInvalidInput,
			Error:   fmt.Errorf("unknown command %q", req.Command),
			Message: "Unknown command",
		})
	}
}

func (s *Service) verifyRequest(req *Request) error {
	if req.Path == "" {
		return s.emitErr(&errs.Errorf{
			Type:    errs.ErrMissingField,
			Error:   fmt.Errorf("%s: no file selected", req.Command),
			Message: MsgNoFile,
		})
	}
	if msg := utils.VerifyPassFormat(req.Pwd); msg != "" {
		return s.emitErr(&errs.Errorf{
			Type:    errs.ErrMissingField,
			Error:   fmt.Errorf("%s: empty passphrase", req.Command),
			Message: msg,
		})
	}
	if !bytes.Equal(req.Pwd, req.Confirm) {
		return s.emitErr(&errs.Errorf{
			Type:    errs.ErrMismatch,
			Error:   fmt.Errorf("%s: passphrase and confirmation differ", req.Command),
			Message: MsgMismatch,
		})
	}
	return nil
}

// LooksEncrypted reports whether path starts with a valid container header.
// A plain file whose first byte happens to be 1, 2 or 3 also passes.
func (s *Service) LooksEncrypted(path string) bool {
	_, err := s.core.Inspect(path)
	return err == nil
}

func (s *Service) encrypt(req *Request) (*Result, error) {
	in, err := os.Stat(req.Path)
	if err != nil {
		return nil, s.emitErr(&errs.Errorf{
			Type:    errs.ErrFileIO,
			Error:   fmt.Errorf("failed to stat %s: %w", req.Path, err),
			Message: MsgEncryptFailed,
		})
	}

	start := time.Now()
	if err = s.core.EncryptFile(req.Path, req.dest(), req.Pwd, req.Algorithm); err != nil {
		return nil, s.emitErr(&errs.Errorf{
			Type:    core.Kind(err),
			Error:   fmt.Errorf("failed to encrypt %s: %w", req.Path, err),
			Message: MsgEncryptFailed,
		})
	}

	return &Result{
		Command:   req.Command,
		Path:      req.Path,
		Out:       req.dest(),
		Algorithm: req.Algorithm,
		InSize:    in.Size(),
		OutSize:   in.Size() + core.Overhead,
		Duration:  time.Since(start),
		Message:   MsgEncrypted,
	}, nil
}

func (s *Service) decrypt(req *Request) (*Result, error) {
	in, err := os.Stat(req.Path)
	if err != nil {
		return nil, s.emitErr(&errs.Errorf{
			Type:    errs.ErrFileIO,
			Error:   fmt.Errorf("failed to stat %s: %w", req.Path, err),
			Message: MsgFileFailed,
		})
	}
	header, err := s.core.Inspect(req.Path)
	if err != nil {
		return nil, s.emitErr(&errs.Errorf{
			Type:    core.Kind(err),
			Error:   fmt.Errorf("failed to inspect %s: %w", req.Path, err),
			Message: decryptMessage(err, MsgWrongPass),
		})
	}

	start := time.Now()
	if err = s.core.DecryptToFile(req.Path, req.dest(), req.Pwd); err != nil {
		return nil, s.emitErr(&errs.Errorf{
			Type:    core.Kind(err),
			Error:   fmt.Errorf("failed to decrypt %s: %w", req.Path, err),
			Message: decryptMessage(err, MsgWrongPass),
		})
	}

	return &Result{
		Command:   req.Command,
		Path:      req.Path,
		Out:       req.dest(),
		Algorithm: header.Algorithm,
		InSize:    in.Size(),
		OutSize:   max(in.Size()-core.Overhead, 0),
		Duration:  time.Since(start),
		Message:   MsgDecrypted,
	}, nil
}

func (s *Service) read(req *Request) (*Result, error) {
	start := time.Now()
	text, err := s.core.DecryptToText(req.Path, req.Pwd)
	if err != nil {
		return nil, s.emitErr(&errs.Errorf{
			Type:    core.Kind(err),
			Error:   fmt.Errorf("failed to read %s: %w", req.Path, err),
			Message: decryptMessage(err, MsgReadFailed),
		})
	}

	return &Result{
		Command:  req.Command,
		Path:     req.Path,
		InSize:   int64(len(text)) + core.Overhead,
		OutSize:  int64(len(text)),
		Duration: time.Since(start),
		Message:  fmt.Sprintf("Read %s", filepath.Base(req.Path)),
		Text:     text,
	}, nil
}

// decryptMessage keeps format and authentication failures on the same
// message so the UI does not tell them apart.
func decryptMessage(err error, generic string) string {
	switch {
	case errors.Is(err, core.ErrNotUTF8):
		return MsgNotText
	case errors.Is(err, core.ErrIO):
		return MsgFileFailed
	default:
		return generic
	}
}

// >>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>

// ListDir returns the directories and the files of dir that cmd accepts,
// directories first.
func (s *Service) ListDir(cmd Command, dir string, showHidden bool) ([]FileEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, s.emitErr(&errs.Errorf{
			Type:    errs.ErrFileIO,
			Error:   fmt.Errorf("failed to read dir %s: %w", dir, err),
			Message: fmt.Sprintf("Unable to open %s", filepath.Base(dir)),
		})
	}

	list := make([]FileEntry, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if !entry.IsDir() && !accepts(cmd, name) {
			continue
		}
		list = append(list, toFileEntry(filepath.Join(dir, name), entry))
	}

	slices.SortStableFunc(list, func(a, b FileEntry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return list, nil
}

// Search walks root and sends every accepted file whose name fuzzy matches
// query to results, until the walk ends or ctx is done. results is closed
// on return.
func (s *Service) Search(ctx context.Context, cmd Command, root, query string, showHidden bool, results chan<- FileEntry) {
	defer close(results)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return filepath.SkipAll
		}
		if err != nil || path == root {
			return nil
		}

		if !showHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !accepts(cmd, d.Name()) {
			return nil
		}

		if fuzzy.MatchNormalizedFold(query, d.Name()) {
			select {
			case results <- toFileEntry(path, d):
			case <-ctx.Done():
				return filepath.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Log(logger.WarnLevel, "search in %s stopped: %v", root, err)
	}
}

func accepts(cmd Command, name string) bool {
	exts := cmd.Extensions()
	if exts == nil {
		return true
	}
	return slices.Contains(exts, strings.ToLower(filepath.Ext(name)))
}

func toFileEntry(path string, d fs.DirEntry) FileEntry {
	entry := FileEntry{
		Path:  path,
		Name:  d.Name(),
		IsDir: d.IsDir(),
	}
	if info, err := d.Info(); err == nil {
		entry.Size = info.Size()
		entry.ModTime = info.ModTime()
	}
	return entry
}
