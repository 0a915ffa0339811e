package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"DarkScope/internal/cli/repo"

	_ "modernc.org/sqlite"
)

// KVStoreSQLite — key/value-хранилище профиля поверх локальной БД SQLite.
type KVStoreSQLite struct {
	db *sql.DB
}

var _ repo.KVStore = (*KVStoreSQLite)(nil)

// OpenForProfile открывает (и создаёт при необходимости) файл БД профиля.
// Базовый каталог задаётся через CLIENT_DB_PATH; вторым значением возвращается путь к БД.
func OpenForProfile(profile string) (*KVStoreSQLite, string, error) {
	if profile == "" {
		return nil, "", errors.New("empty profile for kv store")
	}
	base := os.Getenv("CLIENT_DB_PATH")
	if base == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			return nil, "", err
		}
		base = filepath.Join(cfgDir, "DarkScope", "profiles")
	}
	dir := filepath.Join(base, profile)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(dir, "client.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}
	return &KVStoreSQLite{db: db}, dbPath, nil
}

// Close закрывает соединение с БД.
func (s *KVStoreSQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие таблицы kv.
func (s *KVStoreSQLite) Migrate() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	_, err := s.db.Exec(ddl)
	return err
}

// Get возвращает значение ключа.
func (s *KVStoreSQLite) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set записывает значение ключа (upsert).
func (s *KVStoreSQLite) Set(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO kv(key, value) VALUES(?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// Delete удаляет ключ.
func (s *KVStoreSQLite) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}
