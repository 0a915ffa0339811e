package commands

import (
	"context"
	"fmt"

	climodel "DarkScope/internal/cli/model"
	"DarkScope/internal/config"
)

type dashboardCmd struct{}

func (dashboardCmd) Name() string        { return "dashboard" }
func (dashboardCmd) Description() string { return "Show threat stats and recent activity" }
func (dashboardCmd) Usage() string       { return "dashboard" }

// Run печатает сводку: статистика по всем сканам, последние 5 сканов
// и последние 3 вопроса. Статистика всегда пересчитывается по коллекции.
func (dashboardCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, done, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer done()

	u, err := requireAuth(s)
	if err != nil {
		return err
	}

	fmt.Fprintf(Out, "Welcome back, %s\n\n", u.Username)

	st := s.Scans.Stats()
	accent().Fprintln(Out, "Threat overview")
	fmt.Fprintf(Out, "  Total scans:   %d\n", st.TotalScans)
	statusColor("high").Fprintf(Out, "  High threat:   %d\n", st.HighThreat)
	statusColor("medium").Fprintf(Out, "  Medium threat: %d\n", st.MediumThreat)
	statusColor("safe").Fprintf(Out, "  Safe:          %d\n", st.SafeThreat)
	fmt.Fprintln(Out)

	accent().Fprintln(Out, "Recent scans")
	recent := s.Scans.ListRecent(5)
	if len(recent) == 0 {
		fmt.Fprintln(Out, "  No scans yet")
	}
	for _, r := range recent {
		printScanLine(r)
	}
	fmt.Fprintln(Out)

	accent().Fprintln(Out, "Recent queries")
	queries := s.Queries.ListRecent(3)
	if len(queries) == 0 {
		fmt.Fprintln(Out, "  No queries yet")
	}
	for _, q := range queries {
		fmt.Fprintf(Out, "  %s\n", q.Query)
		dim().Fprintf(Out, "    %s  %s\n", q.Timestamp, q.Answer)
	}
	return nil
}

// printScanLine — одна строка истории сканов с подсвеченным статусом.
func printScanLine(r climodel.ScanRecord) {
	fmt.Fprintf(Out, "  %s  ", r.URL)
	statusColor(r.Status).Fprintf(Out, "%-7s", r.ThreatLevel)
	dim().Fprintf(Out, "  %s\n", r.Timestamp)
}

func init() { RegisterCmd(dashboardCmd{}) }
