package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"DarkScope/internal/cli/api"
	"DarkScope/internal/config"
)

type resetPasswordCmd struct{}

func (resetPasswordCmd) Name() string        { return "reset-password" }
func (resetPasswordCmd) Description() string { return "Request a password reset email" }
func (resetPasswordCmd) Usage() string       { return "reset-password <email>" }

// Run запрашивает сброс пароля. Ответ сервера одинаков для существующих
// и несуществующих адресов.
func (resetPasswordCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/reset"
	resp, body, err := api.PostJSON(ctx, endpoint, map[string]string{"email": args[0]}, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, out.Message)
	return nil
}

func init() { RegisterCmd(resetPasswordCmd{}) }
