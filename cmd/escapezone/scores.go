package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/escapezone/internal/registry"
	"github.com/vovakirdan/escapezone/internal/storage"
)

var (
	flagRecent int
	flagAll    bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 high scores, the most recent runs and lifetime
stats for the specified variant. Without a variant, print a summary line
for every variant that has been played.

Examples:
  escapezone scores
  escapezone scores escapezone
  escapezone scores escapezone --all
  escapezone scores escapezone_edge --recent 20
  escapezone scores escapezone_boxed --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent runs to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every recorded score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the variant")
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'escapezone list' to see available variants.")
		os.Exit(1)
	}
	if flagClear && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case len(args) == 0:
		err = printAllStats(os.Stdout, store)
	case flagClear:
		if err = store.ClearScores(args[0]); err == nil {
			fmt.Printf("Cleared all scores for %s.\n", registry.Title(args[0]))
		}
	default:
		err = printScores(os.Stdout, store, args[0], flagAll, flagRecent)
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printAllStats writes one line per played variant, sorted by ID.
func printAllStats(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "  %-18s  %-6s  %-8s  %-8s  %s\n", "Variant", "Runs", "Best", "Average", "Last played")
	fmt.Fprintf(w, "  %-18s  %-6s  %-8s  %-8s  %s\n", "-------", "----", "----", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Fprintf(w, "  %-18s  %-6d  %-8d  %-8.0f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// printScores writes the score table, recent runs and lifetime stats for
// one variant. With all set, every score is listed.
func printScores(w io.Writer, store *storage.Store, gameID string, all bool, recent int) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n", registry.Title(gameID))
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'escapezone play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Fprintln(w)
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Fprintf(w, "Best: %d\n", highScore)
	}

	if runs, err := store.RecentRuns(gameID, recent); err == nil && len(runs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Recent runs:")
		fmt.Fprintf(w, "  %-8s  %-9s  %-7s  %-9s  %s\n", "Score", "Distance", "Pickups", "End", "Date")
		for _, r := range runs {
			fmt.Fprintf(w, "  %-8d  %-9.0f  %-7d  %-9s  %s\n",
				r.Score, r.Distance, r.Pickups, r.EndReason, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %d  Average: %.0f  Longest: %.0f  Pickups: %d  Crashes: %d\n",
			stats.GamesCount, stats.AvgScore, stats.BestDistance, stats.Pickups, stats.Crashes)
	}
	return nil
}
