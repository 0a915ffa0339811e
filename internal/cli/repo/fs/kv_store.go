package fs

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"

	"DarkScope/internal/cli/repo"
)

// KVStore — файловое key/value-хранилище профиля: один файл на ключ
// в каталоге <UserConfigDir>/DarkScope/<profile>/.
type KVStore struct {
	profile string
}

var _ repo.KVStore = (*KVStore)(nil)

var profileRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// NewKVStore создаёт хранилище для указанного профиля.
func NewKVStore(profile string) (*KVStore, error) {
	if !profileRe.MatchString(profile) {
		return nil, errors.New("invalid profile name")
	}
	return &KVStore{profile: profile}, nil
}

func (s *KVStore) dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "DarkScope", s.profile)
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s *KVStore) path(key string) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	dir, err := s.dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, key+".json"), nil
}

// Get читает значение ключа. Отсутствующий файл — не ошибка.
func (s *KVStore) Get(key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// Set записывает значение ключа.
func (s *KVStore) Set(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

// Delete удаляет ключ.
func (s *KVStore) Delete(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
