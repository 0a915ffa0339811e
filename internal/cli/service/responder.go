package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"DarkScope/internal/cli/api"
)

// Responder — порт AI-ответчика.
type Responder interface {
	Answer(ctx context.Context, query string) (string, error)
}

// sampleAnswers — банк заготовленных "intel"-ответов локальной заглушки.
var sampleAnswers = []string{
	"Based on current threat intelligence, this appears to be a sophisticated phishing campaign targeting financial institutions.",
	"The malware signature indicates it belongs to the APT-29 group, commonly associated with state-sponsored attacks.",
	"Analysis shows this vulnerability has a CVSS score of 9.8 and should be patched immediately.",
	"Cross-referencing with our threat database suggests this IP address has been involved in multiple DDoS attacks.",
	"The encryption method used is AES-256, which is considered secure for protecting sensitive data.",
}

// StubResponder выбирает случайный заготовленный ответ.
type StubResponder struct {
	Rand *rand.Rand // nil — глобальный math/rand
}

// Answer возвращает случайный ответ из банка.
func (s *StubResponder) Answer(_ context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", errors.New("Please enter a query")
	}
	if s.Rand != nil {
		return sampleAnswers[s.Rand.Intn(len(sampleAnswers))], nil
	}
	return sampleAnswers[rand.Intn(len(sampleAnswers))], nil
}

// RemoteResponder шлёт вопрос на POST /api/query.
// Любая ошибка сети или разбора — жёсткий отказ для этого запроса.
type RemoteResponder struct {
	ServerURL string
	Token     string
}

// Answer возвращает поле answer из ответа сервера.
func (r *RemoteResponder) Answer(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", errors.New("Please enter a query")
	}
	endpoint := strings.TrimRight(r.ServerURL, "/") + "/api/query"
	resp, body, err := api.PostJSON(ctx, endpoint, map[string]string{"query": query}, r.Token)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("query failed: server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var out struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode answer: %w", err)
	}
	return out.Answer, nil
}

var _ Responder = (*StubResponder)(nil)
var _ Responder = (*RemoteResponder)(nil)
