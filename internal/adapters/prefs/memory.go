package prefs

import (
	"context"
	"sync"
)

var _ KV = (*Memory)(nil)

// Memory is a process-local KV for tests and throwaway sessions.
type Memory struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemory creates an empty Memory backend.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (k *Memory) Get(_ context.Context, key string) (string, bool, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *Memory) Set(_ context.Context, key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.m[key] = value
	return nil
}

func (k *Memory) Delete(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.m, key)
	return nil
}

func (k *Memory) Ping(context.Context) error { return nil }

func (k *Memory) Close() error { return nil }
