// Package memory_fs is an in-memory Storager used by tests and dry runs.
package memory_fs

import (
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type MemoryFS struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool
}

func NewClient() *MemoryFS {
	return &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (m *MemoryFS) IsExist(pathKey string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.files[pathKey]; ok {
		return true
	}
	return m.dirs[pathKey]
}

func (m *MemoryFS) CreateDir(pathKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[pathKey] = true
	return nil
}

func (m *MemoryFS) SendContent(pathKey string, content []byte, modTime time.Time) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(content))
	copy(buf, content)
	m.files[pathKey] = buf
	return pathKey, nil
}

func (m *MemoryFS) SendFile(pathKey string, file io.Reader, contentType string, modTime time.Time) (string, error) {
	content, err := io.ReadAll(file)
	if err != nil {
		return "", errors.Wrap(err, "memory_fs")
	}
	return m.SendContent(pathKey, content, modTime)
}

// Content returns the stored bytes for a key.
func (m *MemoryFS) Content(pathKey string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.files[pathKey]
	return b, ok
}

// Keys returns all file keys currently stored.
func (m *MemoryFS) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.files))
	for k := range m.files {
		keys = append(keys, k)
	}
	return keys
}
