package commands

import (
	"DarkScope/internal/cli/bootstrap"
	"DarkScope/internal/cli/model"
	"DarkScope/internal/config"
)

// openServices открывает хранилище профиля и собирает сервисы дашборда.
// Возвращённый cleanup обязателен к вызову.
func openServices(cfg *config.Config) (*bootstrap.Services, func() error, error) {
	kv, done, err := bootstrap.OpenStorage(cfg)
	if err != nil {
		return nil, nil, err
	}
	s := bootstrap.BuildServices(cfg, kv, theme)
	// вывод сразу в тему профиля
	theme.ApplyTheme(s.Settings.Get().Theme)
	return s, done, nil
}

// requireAuth — гейт для страниц дашборда: без активной сессии команда не работает.
func requireAuth(s *bootstrap.Services) (*model.User, error) {
	u, ok := s.Session.CurrentUser()
	if !ok {
		return nil, errNotLoggedIn
	}
	return u, nil
}
