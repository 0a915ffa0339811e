package sqlite

import (
	"testing"
)

func openTestStore(t *testing.T) *KVStoreSQLite {
	t.Helper()
	t.Setenv("CLIENT_DB_PATH", t.TempDir())
	s, _, err := OpenForProfile("default")
	if err != nil {
		t.Fatalf("OpenForProfile: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	if err := s.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return s
}

func TestKVStoreSQLite_SetGetDelete(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.Get("queries"); err != nil || ok {
		t.Fatalf("absent key: ok=%v err=%v", ok, err)
	}

	if err := s.Set("queries", `[]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// upsert по тому же ключу
	if err := s.Set("queries", `[{"id":"7"}]`); err != nil {
		t.Fatalf("Set upsert: %v", err)
	}
	v, ok, err := s.Get("queries")
	if err != nil || !ok || v != `[{"id":"7"}]` {
		t.Fatalf("Get: v=%q ok=%v err=%v", v, ok, err)
	}

	if err := s.Delete("queries"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get("queries"); ok {
		t.Fatalf("key must be absent after Delete")
	}
	// удаление отсутствующего ключа — не ошибка
	if err := s.Delete("queries"); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}
}

func TestOpenForProfile_Errors(t *testing.T) {
	t.Setenv("CLIENT_DB_PATH", t.TempDir())
	if _, _, err := OpenForProfile(""); err == nil {
		t.Fatalf("expected error for empty profile")
	}
}
