package service

import (
	"context"
	"time"

	climodel "DarkScope/internal/cli/model"
)

// ScanFlow связывает настройки, сканер и историю: один submit страницы сканирования.
type ScanFlow struct {
	Settings *SettingsService
	History  *ScanHistory
	Scanner  Scanner
}

// Submit проверяет Tor-гейт, выполняет скан и дописывает запись в историю.
// При отказе (пустой URL, выключенный Tor, ошибка сканера) запись не добавляется.
func (f *ScanFlow) Submit(ctx context.Context, url string) (climodel.ScanRecord, error) {
	if url == "" {
		return climodel.ScanRecord{}, ErrEmptyURL
	}
	if climodel.IsOnionURL(url) && !f.Settings.Get().TorEnabled {
		return climodel.ScanRecord{}, ErrTorDisabled
	}
	rec, err := f.Scanner.Scan(ctx, url)
	if err != nil {
		return climodel.ScanRecord{}, err
	}
	if err := f.History.Add(rec); err != nil {
		return climodel.ScanRecord{}, err
	}
	return rec, nil
}

// AskFlow связывает ответчика и историю вопросов.
type AskFlow struct {
	History   *QueryHistory
	Responder Responder
}

// Submit получает ответ и дописывает запись вопрос/ответ в историю.
func (f *AskFlow) Submit(ctx context.Context, query string) (climodel.QueryRecord, error) {
	answer, err := f.Responder.Answer(ctx, query)
	if err != nil {
		return climodel.QueryRecord{}, err
	}
	rec := climodel.NewQueryRecord(query, answer, time.Now())
	if err := f.History.Add(rec); err != nil {
		return climodel.QueryRecord{}, err
	}
	return rec, nil
}
