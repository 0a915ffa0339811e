package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	climodel "DarkScope/internal/cli/model"
	"DarkScope/internal/config"
)

type reportCmd struct{}

func (reportCmd) Name() string        { return "report" }
func (reportCmd) Description() string { return "Export the dashboard as a Markdown report" }
func (reportCmd) Usage() string       { return "report [file]" }

// Run собирает Markdown-отчёт по текущему профилю: статистика,
// таблица сканов и список вопросов. Без аргумента пишет в report.md.
func (reportCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	path := "report.md"
	if len(args) == 1 {
		path = args[0]
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

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	md := markdown.NewMarkdown(f)
	md.H1("DarkScope Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Analyst", u.Username},
			{"Generated", time.Now().Format("2006-01-02 15:04:05 MST")},
			{"Profile", cfg.Profile},
		},
	})
	md.PlainText("")

	writeStats(md, s.Scans.Stats())
	writeScans(md, s.Scans.All())
	writeQueries(md, s.Queries.All())

	if err := md.Build(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(Out, "Report written to %s\n", path)
	return nil
}

func writeStats(md *markdown.Markdown, st climodel.DashboardStats) {
	md.H2("Threat Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows: [][]string{
			{"🔴 High", strconv.Itoa(st.HighThreat)},
			{"🟡 Medium", strconv.Itoa(st.MediumThreat)},
			{"🟢 Safe", strconv.Itoa(st.SafeThreat)},
			{"**Total**", "**" + strconv.Itoa(st.TotalScans) + "**"},
		},
	})
	md.PlainText("")

	switch {
	case st.HighThreat > 0:
		md.Warningf("%d scan(s) flagged as high threat.", st.HighThreat)
	case st.MediumThreat > 0:
		md.Importantf("%d scan(s) flagged as medium threat.", st.MediumThreat)
	case st.TotalScans > 0:
		md.Tip("No significant threats detected.")
	}
	md.PlainText("")
}

func writeScans(md *markdown.Markdown, scans []climodel.ScanRecord) {
	md.H2("Scans")
	md.PlainText("")
	if len(scans) == 0 {
		md.PlainText("No scans recorded.")
		md.PlainText("")
		return
	}
	rows := make([][]string, len(scans))
	for i, r := range scans {
		rows[i] = []string{"`" + r.URL + "`", r.ThreatLevel, r.Notes, r.Timestamp}
	}
	md.Table(markdown.TableSet{
		Header: []string{"URL", "Threat", "Notes", "Scanned"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeQueries(md *markdown.Markdown, queries []climodel.QueryRecord) {
	md.H2("Intel Queries")
	md.PlainText("")
	if len(queries) == 0 {
		md.PlainText("No queries recorded.")
		md.PlainText("")
		return
	}
	for _, q := range queries {
		md.Details(q.Query, q.Answer)
	}
	md.PlainText("")
}

func init() { RegisterCmd(reportCmd{}) }
