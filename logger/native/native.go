package native

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"fileencryptor/logger"
)

// Native writes JSON log records to a file from a single worker goroutine.
type Native struct {
	filePath string
	maxSize  int64
	maxTime  int64
	logs     chan *logger.Log
	sessid   string
	mu       sync.Mutex
	file     *os.File
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// New opens (or creates) filePath for appending. maxSize is in bytes and
// maxTime in seconds; both are enforced by Rotate.
func New(filePath string, maxSize int64, maxTime int64) (*Native, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	native := &Native{
		filePath: filePath,
		maxSize:  maxSize,
		maxTime:  maxTime,
		logs:     make(chan *logger.Log, 25),
		file:     file,
	}

	native.ctx, native.cancel = context.WithCancel(context.Background())
	native.wg.Add(1)
	go func() {
		defer native.wg.Done()
		native.worker(native.ctx)
	}()

	return native, nil
}

func (s *Native) With(id string) {
	s.sessid = id
}

// Stop drains pending records, then closes the file. Logs sent after Stop
// are dropped.
func (s *Native) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		s.wg.Wait()

		s.mu.Lock()
		defer s.mu.Unlock()
		s.file.Close()
	})
}

// Rotate trims the file once it outgrows maxSize, keeping the newest half,
// and drops records older than maxTime.
func (s *Native) Rotate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := os.Stat(s.filePath)
	if err != nil {
		return err
	}
	if stats.Size() <= s.maxSize && !s.hasExpired(stats.ModTime()) {
		return nil
	}

	if err = s.file.Close(); err != nil {
		return err
	}

	// The file is reopened even when rewrite fails, the worker keeps writing.
	rewriteErr := s.rewrite()
	s.file, err = os.OpenFile(s.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Join(rewriteErr, err)
	}

	return rewriteErr
}

// The file is only ever appended to, so an old modification time means
// every record is old.
func (s *Native) hasExpired(modTime time.Time) bool {
	return s.maxTime > 0 && time.Since(modTime) > time.Duration(s.maxTime)*time.Second
}

func (s *Native) rewrite() (err error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	tempPath := s.filePath + ".tmp"
	temp, err := os.Create(tempPath)
	if err != nil {
		return err
	}
	defer func() {
		temp.Close()
		if err != nil {
			os.Remove(tempPath)
		}
	}()

	cutoff := int64(0)
	if s.maxTime > 0 {
		cutoff = time.Now().Add(-time.Duration(s.maxTime) * time.Second).UnixMilli()
	}

	logs := make([][]byte, 0)
	currSize := int64(0)
	dec := json.NewDecoder(file)
	for {
		log := new(logger.Log)
		if err := dec.Decode(log); err != nil {
			// a record torn by a crash can only be the last one
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return err
		}
		if log.Time < cutoff {
			continue
		}
		logBytes, err := json.MarshalIndent(log, "", " ")
		if err != nil {
			return err
		}
		logs = append(logs, logBytes)
		currSize += int64(len(logBytes))
	}

	threshold := s.maxSize / 2 // keep half
	start := 0
	for currSize > threshold && start < len(logs) {
		currSize -= int64(len(logs[start]))
		start++
	}

	for _, logBytes := range logs[start:] {
		if _, err = temp.Write(append(logBytes, '\n')); err != nil {
			return err
		}
	}

	if err = temp.Close(); err != nil {
		return err
	}
	return os.Rename(tempPath, s.filePath)
}

func (s *Native) Log(level logger.Level, msg string, args ...any) {
	if s.ctx.Err() != nil {
		return
	}
	log := &logger.Log{
		SessionID: s.sessid,
		Level:     level,
		Time:      time.Now().UnixMilli(),
		Message:   msg,
		Args:      args,
	}
	select {
	case s.logs <- log:
	case <-s.ctx.Done():
	}
}

// worker drains s.logs until ctx is done and nothing is pending. A record
// that cannot be written is dropped, only the first failure of a run is
// reported on stderr.
func (s *Native) worker(ctx context.Context) {
	failing := false
	processLog := func(log *logger.Log) {
		err := s.write(log)
		if err != nil && !failing {
			fmt.Fprintf(os.Stderr, "failed to write log, dropping records: %v\n", err)
		}
		failing = err != nil
	}

outer:
	for {
		select {
		case <-ctx.Done():
			break outer
		case log := <-s.logs:
			processLog(log)
		}
	}

	for {
		select {
		case log := <-s.logs:
			processLog(log)
		default:
			return
		}
	}
}

func (s *Native) write(log *logger.Log) error {
	log.Message = fmt.Sprintf(log.Message, log.Args...)
	log.Args = nil
	// Keep json, not text.
	// Storage is cheap, debug time ain't.
	bytes, err := json.MarshalIndent(log, "", " ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.file.Write(append(bytes, '\n'))
	return err
}
