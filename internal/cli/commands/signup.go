package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"DarkScope/internal/cli/api"
	"DarkScope/internal/config"
)

// SignupRequest — тело запроса регистрации на сервере.
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type signupCmd struct{}

func (signupCmd) Name() string        { return "signup" }
func (signupCmd) Description() string { return "Create a server account and store auth cookie" }
func (signupCmd) Usage() string       { return "signup <email> <username> <password>" }

func (signupCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/register"
	req := SignupRequest{Email: args[0], Username: args[1], Password: args[2]}
	resp, body, err := api.PostJSON(ctx, endpoint, req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		s, done, err := openServices(cfg)
		if err != nil {
			return err
		}
		defer done()
		if err := api.PersistAuthFromResponse(resp, s.KV); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Account created")
		return nil
	case http.StatusConflict:
		return errors.New("email already in use")
	case http.StatusBadRequest:
		return errors.New(strings.TrimSpace(string(body)))
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(signupCmd{}) }
