package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the score history",
	Long: `Browse the recorded runs, best first.

By default this opens an interactive table; --plain prints a plain-text
listing instead (handy for pipes and scripts).

Examples:
  blockfall scores
  blockfall scores --plain
  blockfall scores --plain --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list with --plain")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain listing instead of the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the plain-text score listing.
func printScores(store *storage.Store) {
	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Blockfall High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockfall' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-4s  %-6s  %-8s  %s\n", "Rank", "Score", "Lines", "Lvl", "Combo", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-4s  %-6s  %-8s  %s\n", "----", "-----", "-----", "---", "-----", "----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-6d  %-4d  x%-5d  %-8s  %s\n",
			i+1,
			entry.Score,
			entry.Lines,
			entry.Level,
			entry.MaxCombo,
			entry.Duration.Truncate(time.Second),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
