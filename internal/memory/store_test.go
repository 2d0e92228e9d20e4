package memory

import (
	"errors"
	"path/filepath"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Width int    `json:"width"`
}

// exercise runs the shared Store/Browser contract against a backend.
func exercise(t *testing.T, s Store) {
	t.Helper()

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := s.Put("panel/left", []byte(`one`)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := s.Put("panel/left", []byte(`two`)); err != nil {
		t.Fatalf("second Put() failed: %v", err)
	}
	got, err := s.Get("panel/left")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != "two" {
		t.Fatalf("Get() = %q, want last write %q", got, "two")
	}

	ok, err := GetJSON(s, "panel/none", &payload{})
	if err != nil || ok {
		t.Fatalf("GetJSON(absent) = %v, %v; want false, nil", ok, err)
	}

	if err := PutJSON(s, "panel/right", payload{Name: "right", Width: 320}); err != nil {
		t.Fatalf("PutJSON() failed: %v", err)
	}
	var p payload
	ok, err = GetJSON(s, "panel/right", &p)
	if err != nil || !ok {
		t.Fatalf("GetJSON() = %v, %v; want true, nil", ok, err)
	}
	if p.Width != 320 || p.Name != "right" {
		t.Fatalf("GetJSON() decoded %+v", p)
	}

	if _, err := GetJSON(s, "panel/left", &p); err == nil {
		t.Fatal("GetJSON() on non-JSON value should fail")
	}

	b, ok := s.(Browser)
	if !ok {
		return
	}
	if err := s.Put("other/key", []byte("x")); err != nil {
		t.Fatal(err)
	}
	entries, err := b.List("panel/")
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List(panel/) returned %d entries, want 2", len(entries))
	}
	if entries[0].Key != "panel/left" || entries[1].Key != "panel/right" {
		t.Fatalf("List() not sorted by key: %q, %q", entries[0].Key, entries[1].Key)
	}
	if entries[0].UpdatedAt.IsZero() {
		t.Fatal("entry should carry an update time")
	}

	if err := b.Delete("panel/left"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := s.Get("panel/left"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() after Delete error = %v, want ErrNotFound", err)
	}
}

func TestMem(t *testing.T) {
	m := NewMem()
	exercise(t, m)
	if m.Puts() != 4 {
		t.Fatalf("Puts() = %d, want 4", m.Puts())
	}
}

func TestMemGetReturnsCopy(t *testing.T) {
	m := NewMem()
	m.Put("k", []byte("abc"))
	got, _ := m.Get("k")
	got[0] = 'z'
	again, _ := m.Get("k")
	if string(again) != "abc" {
		t.Fatalf("stored value mutated through Get(): %q", again)
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	exercise(t, s)

	if s.Session() == "" {
		t.Fatal("session id should not be empty")
	}
	entries, err := s.List("panel/right")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Session != s.Session() {
		t.Fatalf("entry session = %+v, want %s", entries, s.Session())
	}
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	got, err := s2.Get("k")
	if err != nil || string(got) != "v" {
		t.Fatalf("Get() after reopen = %q, %v", got, err)
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.yaml")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	exercise(t, s)

	reloaded, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, err := reloaded.Get("panel/right")
	if err != nil {
		t.Fatalf("Get() after reload failed: %v", err)
	}
	if string(got) != `{"name":"right","width":320}` {
		t.Fatalf("Get() after reload = %q", got)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		backend string
		path    string
		wantErr bool
	}{
		{"", "", false},
		{BackendMemory, "", false},
		{BackendSQLite, filepath.Join(dir, "s.db"), false},
		{BackendFile, filepath.Join(dir, "s.yaml"), false},
		{"redis", "", true},
	}
	for _, tt := range tests {
		s, c, err := Open(tt.backend, tt.path)
		if (err != nil) != tt.wantErr {
			t.Fatalf("Open(%q) error = %v, wantErr %v", tt.backend, err, tt.wantErr)
		}
		if err != nil {
			continue
		}
		if s == nil || c == nil {
			t.Fatalf("Open(%q) returned nil store or closer", tt.backend)
		}
		c.Close()
	}
}
