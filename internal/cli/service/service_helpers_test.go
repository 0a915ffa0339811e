package service

import (
	"errors"

	"DarkScope/internal/cli/repo"
)

// memKV — in-memory реализация KVStore для тестов.
type memKV struct {
	m       map[string]string
	failSet bool
}

func newMemKV() *memKV {
	return &memKV{m: map[string]string{}}
}

func (s *memKV) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *memKV) Set(key, value string) error {
	if s.failSet {
		return errors.New("kv write failed")
	}
	s.m[key] = value
	return nil
}

func (s *memKV) Delete(key string) error {
	delete(s.m, key)
	return nil
}

var _ repo.KVStore = (*memKV)(nil)
