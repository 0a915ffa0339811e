package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"DarkScope/internal/cli/api"
	climodel "DarkScope/internal/cli/model"
	"DarkScope/internal/model"
)

// ErrTorDisabled — попытка сканировать .onion при выключенном Tor-флаге.
var ErrTorDisabled = errors.New("Tor must be enabled for .onion URLs")

// ErrEmptyURL — пустой URL в запросе на скан.
var ErrEmptyURL = errors.New("Please enter a URL")

// Scanner — порт "сканера" URL. Реализации: локальная имитация и удалённый endpoint.
type Scanner interface {
	Scan(ctx context.Context, url string) (climodel.ScanRecord, error)
}

// SimulatedScanner — локальная имитация сканирования: задержка и случайный
// уровень угрозы. Источник случайности и часы подменяются в тестах.
type SimulatedScanner struct {
	Delay time.Duration
	Rand  *rand.Rand       // nil — глобальный math/rand
	Now   func() time.Time // nil — time.Now
}

// Scan имитирует проверку URL.
func (s *SimulatedScanner) Scan(ctx context.Context, url string) (climodel.ScanRecord, error) {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return climodel.ScanRecord{}, ctx.Err()
		}
	}
	levels := model.Levels()
	var idx int
	if s.Rand != nil {
		idx = s.Rand.Intn(len(levels))
	} else {
		idx = rand.Intn(len(levels))
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return climodel.NewScanRecord(url, levels[idx], now()), nil
}

// RemoteScanner шлёт запрос на POST /api/scan и собирает запись из эхо-ответа.
// Ретраев и таймаутов нет: зависший вызов висит до ответа или разрыва.
type RemoteScanner struct {
	ServerURL string
	Token     string           // auth cookie, может быть пустым
	Now       func() time.Time // nil — time.Now
}

// scanEcho — ответ сервера; каждое поле опционально.
type scanEcho struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Status      string `json:"status"`
	ThreatLevel string `json:"threatLevel"`
}

// Scan отправляет URL на сервер. Статус в запросе клиент выводит сам:
// high для .onion, safe для остальных; сервер может переопределить
// status и threatLevel независимо — ответ сохраняется как есть.
func (s *RemoteScanner) Scan(ctx context.Context, url string) (climodel.ScanRecord, error) {
	level := model.ThreatSafe
	if climodel.IsOnionURL(url) {
		level = model.ThreatHigh
	}
	payload := map[string]string{
		"url":         url,
		"status":      level.Status(),
		"threatLevel": level.Display(),
	}

	endpoint := strings.TrimRight(s.ServerURL, "/") + "/api/scan"
	resp, body, err := api.PostJSON(ctx, endpoint, payload, s.Token)
	if err != nil {
		return climodel.ScanRecord{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return climodel.ScanRecord{}, fmt.Errorf("scan failed: server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	ts := now()

	var echo scanEcho
	// не-JSON тело не фатально: все поля дефолтятся значениями запроса
	_ = json.Unmarshal(body, &echo)

	rec := climodel.ScanRecord{
		ID:          echo.ID,
		URL:         echo.URL,
		Status:      echo.Status,
		ThreatLevel: echo.ThreatLevel,
		Timestamp:   climodel.FormatTimestamp(ts),
		IsOnion:     climodel.IsOnionURL(url),
	}
	if rec.ID == "" {
		rec.ID = fmt.Sprintf("%d", ts.UnixMilli())
	}
	if rec.URL == "" {
		rec.URL = url
	}
	if rec.Status == "" {
		rec.Status = level.Status()
	}
	if rec.ThreatLevel == "" {
		rec.ThreatLevel = level.Display()
	}
	return rec, nil
}

var _ Scanner = (*SimulatedScanner)(nil)
var _ Scanner = (*RemoteScanner)(nil)
