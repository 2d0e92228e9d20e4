package memory

import (
	"fmt"
	"io"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Open returns the store for backend, rooted at path where the backend needs one.
// The returned closer is never nil.
func Open(backend, path string) (Store, io.Closer, error) {
	switch backend {
	case "", BackendMemory:
		return NewMem(), nopCloser{}, nil
	case BackendSQLite:
		s, err := NewSQLiteStore(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case BackendFile:
		s, err := NewFileStore(path)
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q (want memory, sqlite or file)", backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
