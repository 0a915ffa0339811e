package commands

import (
	"context"
	"fmt"

	"DarkScope/internal/config"
)

type scanCmd struct{}

func (scanCmd) Name() string        { return "scan" }
func (scanCmd) Description() string { return "Scan a URL for threats" }
func (scanCmd) Usage() string       { return "scan <url>" }

// Run отправляет URL на проверку (локальная имитация или сервер,
// в зависимости от --remote) и печатает результат вместе с последними сканами.
func (scanCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	fmt.Fprintf(Out, "Scanning %s ...\n", args[0])
	rec, err := s.ScanFlow.Submit(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprint(Out, "Result: ")
	statusColor(rec.Status).Fprintln(Out, rec.ThreatLevel)
	fmt.Fprintf(Out, "Notes:  %s\n", rec.Notes)
	if rec.IsOnion {
		dim().Fprintln(Out, "Routed as a .onion address")
	}
	fmt.Fprintln(Out)

	accent().Fprintln(Out, "Scan history")
	for _, r := range s.Scans.ListRecent(20) {
		printScanLine(r)
	}
	return nil
}

func init() { RegisterCmd(scanCmd{}) }
