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

// SigninRequest — тело запроса входа на сервере.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinCmd struct{}

func (signinCmd) Name() string        { return "signin" }
func (signinCmd) Description() string { return "Authenticate against the server and store auth cookie" }
func (signinCmd) Usage() string       { return "signin <email> <password>" }

func (signinCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/login"
	req := SigninRequest{Email: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(ctx, endpoint, req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		s, done, err := openServices(cfg)
		if err != nil {
			return err
		}
		defer done()
		if err := api.PersistAuthFromResponse(resp, s.KV); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Signed in successfully")
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid email or password")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(signinCmd{}) }
