package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fighter/internal/platform/tui"
	"github.com/vovakirdan/tui-fighter/internal/registry"
	"github.com/vovakirdan/tui-fighter/internal/storage"
)

var (
	flagHistoryPlain bool
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse finished matches",
	Long: `Show recent matches and per-character records.

Examples:
  fighter history
  fighter history --plain --limit 5`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain table instead of the interactive view")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Matches to print with --plain")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening match database: %v", err)
	}
	defer store.Close()

	if !flagHistoryPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	matches, err := store.RecentMatches(flagHistoryLimit)
	if err != nil {
		fail("%v", err)
	}
	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-12s  %-6s  %-6s  %-5s  %-6s  %s\n", "Date", "P1", "P2", "Score", "Winner", "Via")
	fmt.Printf("  %-12s  %-6s  %-6s  %-5s  %-6s  %s\n", "----", "--", "--", "-----", "------", "---")
	for _, m := range matches {
		winner := "P1"
		if m.Winner == 1 {
			winner = "P2"
		}
		fmt.Printf("  %-12s  %-6s  %-6s  %d-%-3d  %-6s  %s\n",
			m.CreatedAt.Format("Jan 02 15:04"),
			registry.Name(m.P1Char),
			registry.Name(m.P2Char),
			m.P1Rounds, m.P2Rounds,
			winner,
			m.Source,
		)
	}
}
