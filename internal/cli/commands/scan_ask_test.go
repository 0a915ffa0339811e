package commands

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"DarkScope/internal/cli/service"
)

func loginFor(t *testing.T) {
	t.Helper()
	if err := (loginCmd{}).Run(context.Background(), testConfig(), []string{"alice", "secret", "--remember"}); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestScan_RequiresSession(t *testing.T) {
	withTempConfig(t)
	captureOut(t)
	if err := (scanCmd{}).Run(context.Background(), testConfig(), []string{"http://example.com"}); err == nil {
		t.Fatalf("scan must require an active session")
	}
}

func TestScan_AddsToHistory(t *testing.T) {
	withTempConfig(t)
	buf := captureOut(t)
	cfg := testConfig()
	ctx := context.Background()
	loginFor(t)

	if err := (scanCmd{}).Run(ctx, cfg, []string{"http://example.com"}); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(buf.String(), "Scanning http://example.com") {
		t.Fatalf("unexpected output: %s", buf.String())
	}

	// dashboard видит скан в статистике
	buf.Reset()
	if err := (dashboardCmd{}).Run(ctx, cfg, nil); err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if !strings.Contains(buf.String(), "Total scans:   1") {
		t.Fatalf("scan not reflected in stats: %s", buf.String())
	}
}

func TestScan_TorGateBlocksOnion(t *testing.T) {
	withTempConfig(t)
	captureOut(t)
	cfg := testConfig()
	ctx := context.Background()
	loginFor(t)

	err := (scanCmd{}).Run(ctx, cfg, []string{"http://xyz.onion"})
	if !errors.Is(err, service.ErrTorDisabled) {
		t.Fatalf("expected tor-disabled error, got %v", err)
	}

	// после включения Tor скан проходит
	if err := (settingsCmd{}).Run(ctx, cfg, []string{"set", "tor", "true"}); err != nil {
		t.Fatalf("settings set tor: %v", err)
	}
	if err := (scanCmd{}).Run(ctx, cfg, []string{"http://xyz.onion"}); err != nil {
		t.Fatalf("scan with tor enabled: %v", err)
	}
}

func TestScan_RemoteModeUsesServer(t *testing.T) {
	withTempConfig(t)
	captureOut(t)
	ctx := context.Background()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/scan") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42","url":"http://example.com","status":"medium","threatLevel":"Medium"}`))
	}))
	defer ts.Close()

	cfg := remoteConfig(ts)
	cfg.Remote = true
	if err := (loginCmd{}).Run(ctx, cfg, []string{"alice", "secret", "--remember"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	buf := captureOut(t)
	if err := (scanCmd{}).Run(ctx, cfg, []string{"http://example.com"}); err != nil {
		t.Fatalf("remote scan: %v", err)
	}
	if !strings.Contains(buf.String(), "Medium") {
		t.Fatalf("server threat level not shown: %s", buf.String())
	}
}

func TestAsk_RecordsQuestionAndAnswer(t *testing.T) {
	withTempConfig(t)
	buf := captureOut(t)
	cfg := testConfig()
	ctx := context.Background()
	loginFor(t)

	if err := (askCmd{}).Run(ctx, cfg, []string{"is", "this", "IP", "malicious?"}); err != nil {
		t.Fatalf("ask: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected an answer to be printed")
	}

	buf.Reset()
	if err := (logsCmd{}).Run(ctx, cfg, []string{"queries"}); err != nil {
		t.Fatalf("logs queries: %v", err)
	}
	if !strings.Contains(buf.String(), "is this IP malicious?") {
		t.Fatalf("query not in history: %s", buf.String())
	}
}

func TestAsk_UsageWithoutQuestion(t *testing.T) {
	withTempConfig(t)
	captureOut(t)
	if err := (askCmd{}).Run(context.Background(), testConfig(), nil); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}
