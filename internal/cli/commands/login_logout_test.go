package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogin_RememberPersistsSession(t *testing.T) {
	withTempConfig(t)
	buf := captureOut(t)
	cfg := testConfig()

	if err := (loginCmd{}).Run(context.Background(), cfg, []string{"alice", "secret", "--remember"}); err != nil {
		t.Fatalf("login should succeed: %v", err)
	}
	if !strings.Contains(buf.String(), "Logged in as alice") {
		t.Fatalf("unexpected output: %s", buf.String())
	}

	// пользователь сохранён: %CONFIG%/DarkScope/default/user.json
	cfgDir, _ := os.UserConfigDir()
	if _, err := os.Stat(filepath.Join(cfgDir, "DarkScope", "default", "user.json")); err != nil {
		t.Fatalf("user not persisted: %v", err)
	}

	// dashboard теперь доступен
	buf.Reset()
	if err := (dashboardCmd{}).Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("dashboard after login: %v", err)
	}
	if !strings.Contains(buf.String(), "Welcome back, alice") {
		t.Fatalf("unexpected dashboard output: %s", buf.String())
	}
}

func TestLogin_WithoutRememberDoesNotPersist(t *testing.T) {
	withTempConfig(t)
	captureOut(t)
	cfg := testConfig()

	if err := (loginCmd{}).Run(context.Background(), cfg, []string{"bob", "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	cfgDir, _ := os.UserConfigDir()
	if _, err := os.Stat(filepath.Join(cfgDir, "DarkScope", "default", "user.json")); err == nil {
		t.Fatalf("user must not be persisted without --remember")
	}
	// следующий процесс сессии не увидит
	if err := (dashboardCmd{}).Run(context.Background(), cfg, nil); err == nil {
		t.Fatalf("dashboard must require an active session")
	}
}

func TestLogin_UsageErrors(t *testing.T) {
	withTempConfig(t)
	captureOut(t)
	cfg := testConfig()

	if err := (loginCmd{}).Run(context.Background(), cfg, []string{"onlyUser"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
	if err := (loginCmd{}).Run(context.Background(), cfg, []string{"u", "p", "--bogus"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage for unknown flag, got %v", err)
	}
}

func TestLogout_WipesProfileData(t *testing.T) {
	withTempConfig(t)
	captureOut(t)
	cfg := testConfig()
	ctx := context.Background()

	if err := (loginCmd{}).Run(ctx, cfg, []string{"alice", "secret", "--remember"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := (scanCmd{}).Run(ctx, cfg, []string{"http://example.com"}); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if err := (logoutCmd{}).Run(ctx, cfg, nil); err != nil {
		t.Fatalf("logout: %v", err)
	}

	cfgDir, _ := os.UserConfigDir()
	profile := filepath.Join(cfgDir, "DarkScope", "default")
	for _, name := range []string{"user.json", "scans.json", "queries.json", "settings.json"} {
		if _, err := os.Stat(filepath.Join(profile, name)); err == nil {
			t.Fatalf("%s must be removed on logout", name)
		}
	}
}
