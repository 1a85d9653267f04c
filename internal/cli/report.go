package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/pipework/internal/presentation/tui"
	"github.com/aretw0/pipework/pkg/domain"
	"golang.org/x/term"
)

// BuildReport renders the ledger as a markdown table.
func BuildReport(entries []domain.LedgerEntry) string {
	var b strings.Builder
	b.WriteString("# Ledger\n\n")
	if len(entries) == 0 {
		b.WriteString("_No actions recorded._\n")
		return b.String()
	}

	b.WriteString("| Recorded | Actor | Action | Status | Notes |\n")
	b.WriteString("|----------|-------|--------|--------|-------|\n")
	for _, e := range entries {
		actor := e.Action.Actor
		if actor == "" {
			actor = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			e.RecordedAt.Format("15:04:05.000"),
			actor,
			e.Action.Name,
			e.Outcome.Status,
			strings.ReplaceAll(e.Outcome.Notes, "|", "\\|"),
		)
	}
	return b.String()
}

// PrintReport writes the ledger report to stdout, pretty-rendered when
// stdout is a terminal and raw markdown otherwise (pipes, CI).
func PrintReport(entries []domain.LedgerEntry) {
	markdown := BuildReport(entries)

	if term.IsTerminal(int(os.Stdout.Fd())) {
		render := tui.NewRenderer()
		if out, err := render(markdown); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(markdown)
}
