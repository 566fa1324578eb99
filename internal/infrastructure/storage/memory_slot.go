package storage

import (
	"context"
	"sync"

	"github.com/consoleiam/admin-console/internal/core/domain"
)

// MemorySlot is a process-local slot. Nothing survives a restart.
type MemorySlot struct {
	mu    sync.Mutex
	value string
}

func NewMemorySlot() *MemorySlot { return &MemorySlot{} }

func (s *MemorySlot) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value == "" {
		return "", domain.ErrNoCredential
	}
	return s.value, nil
}

func (s *MemorySlot) Save(_ context.Context, credential string) error {
	s.mu.Lock()
	s.value = credential
	s.mu.Unlock()
	return nil
}

func (s *MemorySlot) Erase(context.Context) error {
	s.mu.Lock()
	s.value = ""
	s.mu.Unlock()
	return nil
}
