package commands

import (
	"context"
	"fmt"

	"DarkScope/internal/config"
)

type logsCmd struct{}

func (logsCmd) Name() string        { return "logs" }
func (logsCmd) Description() string { return "Browse scan and query history" }
func (logsCmd) Usage() string       { return "logs [scans|queries] [--search <term>]" }

// Run печатает журнал: вкладка scans (по умолчанию) или queries,
// с необязательным регистронезависимым фильтром по подстроке.
func (logsCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	tab := "scans"
	term := ""
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "scans", "queries":
			tab = args[i]
		case "--search", "-s":
			if i+1 >= len(args) {
				return ErrUsage
			}
			i++
			term = args[i]
		default:
			return ErrUsage
		}
	}

	s, done, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer done()

	if _, err := requireAuth(s); err != nil {
		return err
	}

	if tab == "queries" {
		list := s.Queries.Search(term)
		if len(list) == 0 {
			fmt.Fprintln(Out, "No queries found")
			return nil
		}
		for _, q := range list {
			fmt.Fprintf(Out, "%s\n", q.Query)
			dim().Fprintf(Out, "  %s\n", q.Timestamp)
			fmt.Fprintf(Out, "  %s\n", q.Answer)
		}
		fmt.Fprintf(Out, "Total: %d\n", len(list))
		return nil
	}

	list := s.Scans.Search(term)
	if len(list) == 0 {
		fmt.Fprintln(Out, "No scans found")
		return nil
	}
	for _, r := range list {
		printScanLine(r)
		if r.Notes != "" {
			dim().Fprintf(Out, "    %s\n", r.Notes)
		}
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(logsCmd{}) }
