// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall                - Play a run (same as "blockfall play")
//	blockfall play           - Play a run in the local terminal
//	blockfall scores         - Browse the score history
//	blockfall stats          - Show lifetime play statistics
//	blockfall serve          - Start SSH server for remote play
//	blockfall config         - Print the default config YAML
//
// Global flags:
//
//	--db <path>      - Scores database path (default: ~/.blockfall/scores.db)
//	--config <path>  - Custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game: stack the pieces,
clear lines, chain combos and climb the speed levels.

Running blockfall with no subcommand starts a run right away.

Available commands:
  play     - Play a run in the local terminal
  scores   - Browse the score history
  stats    - Show lifetime play statistics
  serve    - Start SSH server for remote play
  config   - Print the default config YAML

Examples:
  blockfall
  blockfall play --difficulty hard
  blockfall scores --limit 20
  blockfall serve --port 2222`,
	Args: cobra.NoArgs,
	Run:  runPlay, // bare "blockfall" starts a run
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// The root command doubles as "play", so it takes the play flags too
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
