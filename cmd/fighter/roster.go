package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/chars/packs"
	"github.com/vovakirdan/tui-fighter/internal/registry"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List the characters",
	Long: `Shows every character, its special move and where its collision data
comes from. Characters whose pack fails to load fight on built-in boxes.

Examples:
  fighter roster
  fighter roster --chars ./packs`,
	Args: cobra.NoArgs,
	Run:  runRoster,
}

func runRoster(_ *cobra.Command, _ []string) {
	logger, err := newLogger("fighter")
	if err != nil {
		fail("%v", err)
	}

	loader := &packs.Loader{Root: flagChars, Logger: logger}

	fmt.Printf("Characters (packs: %s)\n\n", packRoot())
	fmt.Printf("  %-2s  %-6s  %-13s  %-7s  %s\n", "ID", "Name", "Special", "Pack", "Tables")
	fmt.Printf("  %-2s  %-6s  %-13s  %-7s  %s\n", "--", "----", "-------", "----", "------")

	for _, c := range registry.List() {
		pack, tables := "builtin", "-"
		cfg, format, err := loader.LoadCharacter(c.Dir())
		if err != nil {
			logger.Debug("pack not loaded", "character", c.Name, "err", err)
		} else {
			pack = string(format)
			tables = summarize(cfg)
		}
		fmt.Printf("  %-2d  %-6s  %-13s  %-7s  %s\n", c.ID, c.Name, c.Special, pack, tables)
	}

	fmt.Println()
	fmt.Println("Run 'fighter play --p1 <name> --p2 <name>' to jump straight into a fight.")
}

func summarize(cfg chars.CharacterConfig) string {
	return fmt.Sprintf("%d anims, %d box frames, %d specials",
		len(cfg.Animations), len(cfg.Boxes), len(cfg.Specials))
}
