package commands

import (
	"context"
	"errors"
	"fmt"

	"DarkScope/internal/config"
)

// errNotLoggedIn — команда страницы дашборда вызвана без активной сессии.
var errNotLoggedIn = errors.New("not logged in: run `login <username> <password>` first")

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Open a local dashboard session" }
func (loginCmd) Usage() string       { return "login <username> <password> [--remember]" }

// Run открывает локальную сессию дашборда. Это мок-вход: достаточно
// непустых логина и пароля; настоящая проверка учётных данных — signin.
func (loginCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	username := args[0]
	password := args[1]
	remember := false
	for _, a := range args[2:] {
		switch a {
		case "--remember", "-r":
			remember = true
		default:
			return ErrUsage
		}
	}

	s, done, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer done()

	if !s.Session.Login(username, password, remember) {
		return errors.New("username and password must not be empty")
	}
	u, _ := s.Session.CurrentUser()
	fmt.Fprintf(Out, "Logged in as %s\n", u.Username)
	if !remember {
		fmt.Fprintln(Out, "Session is in-memory only; pass --remember to persist it")
	}
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
