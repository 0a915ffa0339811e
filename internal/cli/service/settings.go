package service

import (
	"encoding/json"
	"fmt"

	"DarkScope/internal/cli/model"
	"DarkScope/internal/cli/repo"
)

// ThemeApplier — коллаборатор слоя представления: применяет тему к выводу.
type ThemeApplier interface {
	ApplyTheme(theme string)
}

// SettingsService — стор настроек профиля.
type SettingsService struct {
	kv      repo.KVStore
	applier ThemeApplier // может быть nil
}

// NewSettingsService создаёт стор настроек. applier может быть nil,
// тогда смена темы никуда не сигналится.
func NewSettingsService(kv repo.KVStore, applier ThemeApplier) *SettingsService {
	return &SettingsService{kv: kv, applier: applier}
}

// Get возвращает текущий снимок настроек.
// Отсутствующий или нечитаемый ключ — настройки по умолчанию.
func (s *SettingsService) Get() model.Settings {
	raw, ok, err := s.kv.Get(repo.KeySettings)
	if err != nil || !ok {
		return model.DefaultSettings()
	}
	st := model.DefaultSettings()
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return model.DefaultSettings()
	}
	if st.Theme != model.ThemeDark && st.Theme != model.ThemeLight {
		st.Theme = model.ThemeDark
	}
	return st
}

// Update сливает непустые поля патча поверх текущих настроек и сохраняет результат.
// Смена темы сигналится в applier.
func (s *SettingsService) Update(patch model.SettingsPatch) error {
	st := s.Get()
	themeChanged := false

	if patch.Theme != nil {
		if *patch.Theme != model.ThemeDark && *patch.Theme != model.ThemeLight {
			return fmt.Errorf("invalid theme: %q (allowed: dark, light)", *patch.Theme)
		}
		if st.Theme != *patch.Theme {
			themeChanged = true
		}
		st.Theme = *patch.Theme
	}
	if patch.TorEnabled != nil {
		st.TorEnabled = *patch.TorEnabled
	}
	if patch.APIKey != nil {
		st.APIKey = *patch.APIKey
	}

	if err := s.persist(st); err != nil {
		return err
	}
	if themeChanged && s.applier != nil {
		s.applier.ApplyTheme(st.Theme)
	}
	return nil
}

// Reset восстанавливает и сохраняет настройки по умолчанию.
func (s *SettingsService) Reset() error {
	st := model.DefaultSettings()
	if err := s.persist(st); err != nil {
		return err
	}
	if s.applier != nil {
		s.applier.ApplyTheme(st.Theme)
	}
	return nil
}

func (s *SettingsService) persist(st model.Settings) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.kv.Set(repo.KeySettings, string(b))
}
