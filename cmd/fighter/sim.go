package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fighter/internal/combat"
	"github.com/vovakirdan/tui-fighter/internal/core"
	"github.com/vovakirdan/tui-fighter/internal/games/fighter"
	"github.com/vovakirdan/tui-fighter/internal/platform/tui"
	"github.com/vovakirdan/tui-fighter/internal/registry"
	"github.com/vovakirdan/tui-fighter/internal/storage"
)

var flagSimSave bool

var simCmd = &cobra.Command{
	Use:   "sim <script.yaml>",
	Short: "Run a scripted fight headlessly",
	Long: `Play a YAML input script against a fresh fight and print the outcome.
The run is deterministic: the same script, tuning and packs always give the
same result.

Script format:
  p1: fire
  p2: earth
  steps:
    - ticks: 40
      p1: [right]
    - ticks: 20
      p1: [a]
      p2: [b]

Examples:
  fighter sim opening.yaml
  fighter sim opening.yaml --save`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record a finished match in the history database")
}

func runSim(_ *cobra.Command, args []string) {
	logger, err := newLogger("fighter")
	if err != nil {
		fail("%v", err)
	}

	f, err := os.Open(args[0])
	if err != nil {
		fail("%v", err)
	}
	script, err := fighter.ParseScript(f)
	f.Close()
	if err != nil {
		fail("%v", err)
	}

	cfg, charStore, err := loadGame(logger)
	if err != nil {
		fail("%v", err)
	}

	rep, err := fighter.RunScript(cfg, charStore, script)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("ticks: %d  phase: %s  round: %d  score: %d-%d\n",
		rep.Ticks, rep.Phase, rep.Match.Round, rep.Match.P1Rounds, rep.Match.P2Rounds)
	for p := range core.NumPlayers {
		pl := rep.Players[p]
		fmt.Printf("%s %-6s hp %3d  x %6.1f  y %6.1f  %s\n",
			core.PlayerID(p), registry.Name(pl.CharacterID), pl.Health, pl.X, pl.Y, pl.State)
	}

	kinds := make([]combat.EffectKind, 0, len(rep.Effects))
	for k := range rep.Effects {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Printf("  %-8s %d\n", k, rep.Effects[k])
	}

	if rep.Result == nil {
		return
	}
	fmt.Printf("winner: %s\n", rep.Result.Winner)

	if !flagSimSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening match database: %v", err)
	}
	defer store.Close()
	id, err := store.SaveMatch(tui.MatchRecord(*rep.Result, "sim"))
	if err != nil {
		fail("%v", err)
	}
	logger.Info("match saved", "match_id", id)
}
