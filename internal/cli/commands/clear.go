package commands

import (
	"context"
	"fmt"

	"DarkScope/internal/config"
)

type clearCmd struct{}

func (clearCmd) Name() string        { return "clear" }
func (clearCmd) Description() string { return "Clear scan or query history" }
func (clearCmd) Usage() string       { return "clear <scans|queries>" }

// Run очищает одну коллекцию; вторая и настройки не затрагиваются.
func (clearCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	s, done, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer done()

	if _, err := requireAuth(s); err != nil {
		return err
	}

	switch args[0] {
	case "scans":
		if err := s.Scans.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Scan history cleared")
	case "queries":
		if err := s.Queries.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Query history cleared")
	default:
		return ErrUsage
	}
	return nil
}

func init() { RegisterCmd(clearCmd{}) }
