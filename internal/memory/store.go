// Package memory is the key-value store panels persist their state into.
//
// Keys are opaque strings derived from panel identifiers; values are encoded blobs.
// Backends are safe for concurrent use.
package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("memory: key not found")

// Store is a last-write-wins key-value store.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Entry describes one stored key.
type Entry struct {
	Key       string
	Value     []byte
	Session   string
	UpdatedAt time.Time
}

// Browser is implemented by stores that can enumerate and delete keys.
type Browser interface {
	List(prefix string) ([]Entry, error)
	Delete(key string) error
}

// GetJSON decodes the value stored under key into v. It reports false with a nil
// error when the key is absent.
func GetJSON(s Store, key string, v any) (bool, error) {
	data, err := s.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

// PutJSON encodes v and stores it under key.
func PutJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.Put(key, data)
}

// Mem is an in-process store. State written to it lives as long as the process.
type Mem struct {
	mu      sync.RWMutex
	entries map[string]Entry
	puts    int
	now     func() time.Time
}

// NewMem creates an empty in-memory store.
func NewMem() *Mem {
	return &Mem{entries: make(map[string]Entry), now: time.Now}
}

// Get implements Store.
func (m *Mem) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), e.Value...), nil
}

// Put implements Store.
func (m *Mem) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	m.entries[key] = Entry{
		Key:       key,
		Value:     append([]byte(nil), value...),
		UpdatedAt: m.now(),
	}
	return nil
}

// List implements Browser.
func (m *Mem) List(prefix string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Entry
	for k, e := range m.entries {
		if strings.HasPrefix(k, prefix) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Delete implements Browser.
func (m *Mem) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// Len returns how many keys are stored.
func (m *Mem) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Puts returns how many writes the store has accepted.
func (m *Mem) Puts() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.puts
}
