package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioErr("read", path, err)
	}
	return data, nil
}

// writeFile replaces path with data through a temp file in the same directory
// and a rename, so the previous content survives a failure at any point.
// An existing file keeps its permission bits, a new one gets perm.
func writeFile(path string, data []byte, perm fs.FileMode) (err error) {
	if info, statErr := os.Stat(path); statErr == nil {
		if info.IsDir() {
			return ioErr("write", path, fmt.Errorf("is a directory"))
		}
		perm = info.Mode().Perm()
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return ioErr("stat", path, statErr)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), fmt.Sprintf(".fileencryptor.%s.*.tmp", filepath.Base(path)))
	if err != nil {
		return ioErr("create temp for", path, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return ioErr("write", tmpPath, err)
	}
	if err = tmp.Sync(); err != nil {
		return ioErr("sync", tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		return ioErr("close", tmpPath, err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return ioErr("chmod", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return ioErr("rename", path, err)
	}

	return nil
}
