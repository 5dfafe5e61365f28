package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Storage keys mirror the three entries the web console kept in browser
// storage. The refresh token is carried for compatibility but the backend
// never issues one.
const (
	KeyToken        = "token"
	KeyRefreshToken = "refreshToken"
	KeyUser         = "user"
)

// Store is a minimal string key-value store for persisted session state
type Store interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
}

// MemoryStore keeps session entries in memory only, useful for tests and
// one-shot tooling
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

// Get returns the stored value or empty string
func (m *MemoryStore) Get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

// Set stores a value under key
func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Delete removes a key
func (m *MemoryStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// FileStore persists session entries as a small JSON document on disk
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStore opens (or creates) the store at path. An unreadable or
// corrupt file starts the store empty rather than failing, the session is
// recoverable by logging in again.
func NewFileStore(path string) *FileStore {
	fs := &FileStore{path: path, values: map[string]string{}}
	b, err := os.ReadFile(path)
	if err == nil {
		if jerr := json.Unmarshal(b, &fs.values); jerr != nil {
			zap.S().Warnw("session file corrupt, starting empty", "path", path)
			fs.values = map[string]string{}
		}
	}
	return fs
}

// DefaultPath returns the session file location under the user config dir
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(dir, "swift-aid", "session.json")
}

// Get returns the stored value or empty string
func (f *FileStore) Get(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key]
}

// Set stores a value under key and flushes to disk
func (f *FileStore) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	f.flush()
}

// Delete removes a key and flushes to disk
func (f *FileStore) Delete(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	f.flush()
}

func (f *FileStore) flush() {
	b, err := json.Marshal(f.values)
	if err != nil {
		zap.S().Errorw("failed to marshal session file", "error", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		zap.S().Errorw("failed to create session dir", "error", err)
		return
	}
	if err := os.WriteFile(f.path, b, 0o600); err != nil {
		zap.S().Errorw("failed to write session file", "error", err)
	}
}
