// fighter is a two-player elemental fighting game for the terminal.
//
// Usage:
//
//	fighter play             - Fight locally, both players on one keyboard
//	fighter serve            - Start SSH server for remote play
//	fighter roster           - List the characters and their pack status
//	fighter history          - Browse finished matches
//	fighter sim <script>     - Run a scripted fight headlessly
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set database path (default: ~/.fighter/matches.db)
//	--config <path>     - Custom fighter.yaml tuning file
//	--chars <dir>       - Character pack directory (default: built-in packs)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagChars    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fighter",
	Short: "HAMOOPI - a two-player fighting game in your terminal",
	Long: `HAMOOPI is a best-of-three elemental fighting game played in the terminal.
Two players share one keyboard, or connect over SSH.

Available commands:
  play     - Fight locally
  serve    - Start SSH server for remote play
  roster   - Show the characters
  history  - Browse finished matches
  sim      - Run a scripted fight without a terminal

Examples:
  fighter play
  fighter play --p1 fire --p2 earth --debug
  fighter serve --ssh :2222
  fighter sim examples/opening.yaml --save`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fighter/matches.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom fighter.yaml")
	rootCmd.PersistentFlags().StringVar(&flagChars, "chars", "", "Character pack directory (empty = built-in packs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(simCmd)
}
