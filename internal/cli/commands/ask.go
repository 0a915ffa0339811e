package commands

import (
	"context"
	"strings"

	"DarkScope/internal/config"
)

type askCmd struct{}

func (askCmd) Name() string        { return "ask" }
func (askCmd) Description() string { return "Ask the threat intel assistant" }
func (askCmd) Usage() string       { return "ask <question...>" }

// Run задаёт вопрос ассистенту (заглушка или сервер) и сохраняет пару
// вопрос/ответ в историю.
func (askCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
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

	query := strings.Join(args, " ")
	rec, err := s.AskFlow.Submit(ctx, query)
	if err != nil {
		return err
	}
	accent().Fprintln(Out, rec.Answer)
	return nil
}

func init() { RegisterCmd(askCmd{}) }
