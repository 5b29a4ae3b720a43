package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime play statistics",
	Long: `Show aggregate statistics across every recorded run.

Examples:
  blockfall stats
  blockfall stats --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Blockfall Lifetime Stats")
	fmt.Println()

	if stats.GamesCount == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockfall' to start the first one!")
		return
	}

	fmt.Printf("  Games played   %d\n", stats.GamesCount)
	fmt.Printf("  High score     %d\n", stats.HighScore)
	fmt.Printf("  Average score  %.0f\n", stats.AvgScore)
	fmt.Printf("  Lines cleared  %d\n", stats.TotalLines)
	fmt.Printf("  Pieces placed  %d\n", stats.TotalPieces)
	fmt.Printf("  Best combo     x%d\n", stats.BestCombo)
	fmt.Printf("  Time played    %s\n", stats.PlayTime.Truncate(time.Second))
	fmt.Printf("  Last played    %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
}
