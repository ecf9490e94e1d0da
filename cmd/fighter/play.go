package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fighter/internal/core"
	"github.com/vovakirdan/tui-fighter/internal/games/fighter"
	"github.com/vovakirdan/tui-fighter/internal/platform/tui"
	"github.com/vovakirdan/tui-fighter/internal/registry"
	"github.com/vovakirdan/tui-fighter/internal/storage"
)

var (
	flagP1    string
	flagP2    string
	flagDebug bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fight locally",
	Long: `Start a local two-player session.

Controls:
  Player 1   W/A/S/D move, J attack, K block, L special, Tab debug, Enter start
  Player 2   arrows move, 1 attack, 2 block, 4 special, 8 start
  Esc/Ctrl+C quit, Ctrl+S screenshot

Passing both --p1 and --p2 skips the title and select screens.

Examples:
  fighter play
  fighter play --p1 fire --p2 wind
  fighter play --chars ./packs --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagP1, "p1", "", "Player 1 character")
	playCmd.Flags().StringVar(&flagP2, "p2", "", "Player 2 character")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the collision box overlay on")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, err := newLogger("fighter")
	if err != nil {
		fail("%v", err)
	}

	cfg, charStore, err := loadGame(logger)
	if err != nil {
		fail("%v", err)
	}

	game, err := fighter.New(cfg, charStore)
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Debug:    flagDebug,
	}
	game.Reset(runtime)

	if flagP1 != "" || flagP2 != "" {
		if flagP1 == "" || flagP2 == "" {
			fail("--p1 and --p2 must be given together")
		}
		p1, err := registry.ByName(flagP1)
		if err != nil {
			fail("%v", err)
		}
		p2, err := registry.ByName(flagP2)
		if err != nil {
			fail("%v", err)
		}
		if err := game.StartFight(p1.ID, p2.ID); err != nil {
			fail("%v", err)
		}
	}

	// Match history is optional
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	restore := logToFile(logger)
	err = tui.Run(game, store, runtime, logger)
	restore()
	if err != nil {
		fail("%v", err)
	}
}
