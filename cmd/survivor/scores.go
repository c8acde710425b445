package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/space-survivor/internal/platform/tui"
	"github.com/vovakirdan/space-survivor/internal/storage"
)

var (
	flagPlain bool
	flagReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the last runs ranking",
	Long: `Display the top 5 finished rounds with pilot name and difficulty.

Examples:
  survivor scores
  survivor scores --plain
  survivor scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the ranking as text instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(viper.GetString("db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearRanking(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	records, err := store.Query()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(records, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(records)
}

// printScores writes the ranking as a plain text table.
func printScores(records []storage.Record) {
	fmt.Println("LAST RUNS")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scores yet.")
		fmt.Println()
		fmt.Println("Play 'survivor play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-24s  %-6s  %s\n", "Rank", "Name", "Score", "Difficulty")
	fmt.Printf("  %-4s  %-24s  %-6s  %s\n", "----", "----", "-----", "----------")
	for i, r := range tui.RankingRows(records) {
		fmt.Printf("  %-4d  %-24s  %-6s  %s\n", i+1, r[1], r[2], r[3])
	}
}
