package bootstrap

import (
	"fmt"
	"time"

	"DarkScope/internal/cli/api"
	"DarkScope/internal/cli/repo"
	fsrepo "DarkScope/internal/cli/repo/fs"
	reposqlite "DarkScope/internal/cli/repo/sqlite"
	"DarkScope/internal/cli/service"
	"DarkScope/internal/config"
)

// OpenStorage открывает key/value-хранилище профиля по настройкам
// и возвращает (store, cleanup, error).
// cleanup необходимо вызвать после окончания работы с хранилищем.
func OpenStorage(cfg *config.Config) (repo.KVStore, func() error, error) {
	switch cfg.ClientStore {
	case "sqlite":
		s, _, err := reposqlite.OpenForProfile(cfg.Profile)
		if err != nil {
			return nil, nil, fmt.Errorf("open profile db: %w", err)
		}
		if err := s.Migrate(); err != nil {
			_ = s.Close()
			return nil, nil, fmt.Errorf("migrate profile db: %w", err)
		}
		return s, s.Close, nil
	default:
		s, err := fsrepo.NewKVStore(cfg.Profile)
		if err != nil {
			return nil, nil, fmt.Errorf("open profile dir: %w", err)
		}
		return s, func() error { return nil }, nil
	}
}

// Services — собранный набор клиентских сервисов поверх одного хранилища.
type Services struct {
	KV       repo.KVStore
	Session  *service.SessionService
	Settings *service.SettingsService
	Scans    *service.ScanHistory
	Queries  *service.QueryHistory
	ScanFlow *service.ScanFlow
	AskFlow  *service.AskFlow
}

// BuildServices собирает сервисы дашборда поверх хранилища.
// Выбор сканера/ответчика зависит от cfg.Remote: либо локальные заглушки,
// либо серверные endpoints /api/scan и /api/query.
func BuildServices(cfg *config.Config, kv repo.KVStore, applier service.ThemeApplier) *Services {
	settings := service.NewSettingsService(kv, applier)
	scans := service.NewScanHistory(kv)
	queries := service.NewQueryHistory(kv)

	var scanner service.Scanner
	var responder service.Responder
	if cfg.Remote {
		token := api.LoadAuthToken(kv)
		scanner = &service.RemoteScanner{ServerURL: cfg.ServerURL, Token: token}
		responder = &service.RemoteResponder{ServerURL: cfg.ServerURL, Token: token}
	} else {
		scanner = &service.SimulatedScanner{Delay: time.Duration(cfg.ScanDelayMS) * time.Millisecond}
		responder = &service.StubResponder{}
	}

	return &Services{
		KV:       kv,
		Session:  service.NewSessionService(kv),
		Settings: settings,
		Scans:    scans,
		Queries:  queries,
		ScanFlow: &service.ScanFlow{Settings: settings, History: scans, Scanner: scanner},
		AskFlow:  &service.AskFlow{History: queries, Responder: responder},
	}
}
