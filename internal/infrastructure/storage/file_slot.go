// Package storage provides the local credential slots and the in-memory user
// directory.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/consoleiam/admin-console/internal/core/domain"
)

// DefaultPath is where the console keeps its credential file.
const DefaultPath = ".console/credential"

// FileSlot keeps the credential in a single owner-only file.
type FileSlot struct {
	path string
	mu   sync.Mutex
}

func NewFileSlot(path string) *FileSlot {
	if path == "" {
		path = DefaultPath
	}
	return &FileSlot{path: path}
}

// Path returns the file location.
func (s *FileSlot) Path() string { return s.path }

func (s *FileSlot) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", domain.ErrNoCredential
	}
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}
	v := strings.TrimSpace(string(b))
	if v == "" {
		return "", domain.ErrNoCredential
	}
	return v, nil
}

// Save replaces the file atomically through a temp file and rename.
func (s *FileSlot) Save(_ context.Context, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".credential-*")
	if err != nil {
		return fmt.Errorf("create temp credential: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod credential: %w", err)
	}
	if _, err := tmp.WriteString(credential); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write credential: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close credential: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace credential: %w", err)
	}
	return nil
}

func (s *FileSlot) Erase(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

// Ping checks the slot directory is usable.
func (s *FileSlot) Ping(context.Context) error {
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
