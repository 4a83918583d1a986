package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	if _, err := m.Get("missing"); err != ErrNotFound {
		t.Fatalf("Get(missing) err = %v, want ErrNotFound", err)
	}

	if err := m.Set("k", []byte(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	got, err := m.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"a":1}` {
		t.Fatalf("Get = %q", got)
	}

	// Mutating the returned slice must not affect the stored value.
	got[0] = 'X'
	again, _ := m.Get("k")
	if string(again) != `{"a":1}` {
		t.Fatalf("stored value mutated: %q", again)
	}

	if err := m.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Get("k"); err != ErrNotFound {
		t.Fatalf("Get after Delete err = %v, want ErrNotFound", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.Get("lapuropizza_cart"); err != ErrNotFound {
		t.Fatalf("Get err = %v, want ErrNotFound", err)
	}

	if err := f.Set("lapuropizza_cart", []byte(`{"lines":[]}`)); err != nil {
		t.Fatal(err)
	}
	got, err := f.Get("lapuropizza_cart")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"lines":[]}` {
		t.Fatalf("Get = %q", got)
	}

	// Values survive a new instance over the same directory.
	reopened, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reopened.Get("lapuropizza_cart"); err != nil {
		t.Fatalf("Get after reopen err = %v", err)
	}

	if err := f.Delete("lapuropizza_cart"); err != nil {
		t.Fatal(err)
	}
	if err := f.Delete("lapuropizza_cart"); err != nil {
		t.Fatalf("Delete of absent key err = %v, want nil", err)
	}
}

func TestFileSanitizesSessionKeys(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}

	key := "s:abc123:deliveryAddress"
	if err := f.Set(key, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	name := entries[0].Name()
	if filepath.Ext(name) != ".json" {
		t.Fatalf("file name = %q", name)
	}
	for _, r := range name {
		if r == ':' || r == '/' {
			t.Fatalf("unsanitized character in %q", name)
		}
	}

	if _, err := f.Get(key); err != nil {
		t.Fatalf("Get err = %v", err)
	}
}
