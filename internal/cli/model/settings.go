package model

// Темы оформления.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings — пользовательские настройки, синглтон на профиль.
type Settings struct {
	Theme      string `json:"theme"` // "dark" | "light"
	TorEnabled bool   `json:"torEnabled"`
	APIKey     string `json:"apiKey"` // непрозрачная строка, не валидируется
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeDark, TorEnabled: false, APIKey: ""}
}

// SettingsPatch — частичное обновление настроек: nil-поля не трогаются.
type SettingsPatch struct {
	Theme      *string
	TorEnabled *bool
	APIKey     *string
}
