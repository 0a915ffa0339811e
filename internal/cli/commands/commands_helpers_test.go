package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"DarkScope/internal/config"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты профиля (ключи/база) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	db := filepath.Join(dir, "db")
	_ = os.MkdirAll(db, 0o700)
	t.Setenv("CLIENT_DB_PATH", db)
	return dir
}

// captureOut подменяет общий writer CLI на буфер до конца теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := Out
	buf := &bytes.Buffer{}
	Out = buf
	t.Cleanup(func() { Out = old })
	return buf
}

// testConfig — конфиг клиента с файловым хранилищем и без задержки сканов.
func testConfig() *config.Config {
	return &config.Config{Profile: "default", ClientStore: "fs"}
}
