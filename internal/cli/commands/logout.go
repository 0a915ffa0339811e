package commands

import (
	"context"
	"fmt"

	"DarkScope/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "End the session and wipe profile data" }
func (logoutCmd) Usage() string       { return "logout" }

// Run завершает сессию. Вместе с пользователем стираются история сканов,
// история вопросов и настройки профиля.
func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, done, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer done()

	s.Session.Logout()
	fmt.Fprintln(Out, "Logged out; profile data cleared")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
