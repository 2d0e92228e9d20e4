package memory

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlEntry is the on-disk form of one key.
type yamlEntry struct {
	Value     string    `yaml:"value"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// FileStore keeps every key in one human-editable YAML document, rewritten on each
// Put through a temp file and rename.
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]yamlEntry
}

// NewFileStore loads the store at path. A missing file is an empty store.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, entries: make(map[string]yamlEntry)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fs.entries); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}
	if fs.entries == nil {
		fs.entries = make(map[string]yamlEntry)
	}
	return fs, nil
}

// Get implements Store.
func (f *FileStore) Get(key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(e.Value), nil
}

// Put implements Store.
func (f *FileStore) Put(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = yamlEntry{Value: string(value), UpdatedAt: time.Now().UTC()}
	return f.flush()
}

// List implements Browser.
func (f *FileStore) List(prefix string) ([]Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Entry
	for k, e := range f.entries {
		if strings.HasPrefix(k, prefix) {
			out = append(out, Entry{Key: k, Value: []byte(e.Value), UpdatedAt: e.UpdatedAt})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Delete implements Browser.
func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return f.flush()
}

func (f *FileStore) flush() error {
	data, err := yaml.Marshal(f.entries)
	if err != nil {
		return fmt.Errorf("encoding state file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
