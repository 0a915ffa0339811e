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

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Check server auth status" }
func (statusCmd) Usage() string       { return "status" }

// Run дёргает диагностический endpoint сервера с сохранённым auth cookie.
func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, done, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer done()
	token := api.LoadAuthToken(s.KV)

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/test"
	resp, body, err := api.PostJSON(ctx, endpoint, struct{}{}, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var dr struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(body, &dr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Status:", dr.Result)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
