package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"DarkScope/internal/cli/repo"
)

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as auth cookie.
func PostJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

// PersistAuthFromResponse извлекает auth cookie из ответа и сохраняет его в хранилище профиля.
func PersistAuthFromResponse(resp *http.Response, kv repo.KVStore) error {
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return kv.Set(repo.KeyAuthToken, c.Value)
		}
	}
	return nil
}

// LoadAuthToken возвращает сохранённый auth-токен ("" — если его нет).
func LoadAuthToken(kv repo.KVStore) string {
	v, ok, err := kv.Get(repo.KeyAuthToken)
	if err != nil || !ok {
		return ""
	}
	return v
}
