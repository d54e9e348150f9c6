package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent matches",
	Long: `Display recent matches and win/loss statistics, newest first.
Without --player every player's matches are listed.

Examples:
  battleship history
  battleship history --player alice --limit 20
  battleship history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches")
}

func runHistory(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		logger.Info("match history cleared", "db", flagDBPath)
		return
	}

	// flagPlayer filters here; no default to the OS user
	matches, err := store.RecentMatches(flagPlayer, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	stats, err := store.Stats(flagPlayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	printHistory(os.Stdout, matches, stats)
}

func printHistory(w io.Writer, matches []storage.MatchRecord, stats *storage.MatchStats) {
	title := "Match history"
	if flagPlayer != "" {
		title += " - " + flagPlayer
	}
	fmt.Fprintf(w, "\n  %s\n\n", title)

	if len(matches) == 0 {
		fmt.Fprintln(w, "  No matches recorded yet.")
		return
	}

	re := lipgloss.NewRenderer(w)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(re.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "DATE", "PLAYER", "MODE", "RESULT", "SHOTS", "HITS", "ACC", "TIME")

	for i, rec := range matches {
		result := "loss"
		if rec.Won() {
			result = "win"
		}
		t.Row(
			fmt.Sprintf("%d", i+1),
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.Player,
			rec.Mode,
			result,
			fmt.Sprintf("%d", rec.HumanShots),
			fmt.Sprintf("%d", rec.HumanHits),
			fmt.Sprintf("%.0f%%", rec.Accuracy()*100),
			fmt.Sprintf("%d:%02d", rec.Duration/60, rec.Duration%60),
		)
	}
	fmt.Fprintln(w, t.Render())

	fmt.Fprintf(w, "\n  Played %d  Won %d  Lost %d  Win rate %.0f%%\n",
		stats.Played, stats.Wins, stats.Losses, stats.WinRate()*100)
	fmt.Fprintf(w, "  Average shots %.1f", stats.AvgShots)
	if stats.Wins > 0 {
		fmt.Fprintf(w, "  Average shots to win %.1f  Best win %d shots", stats.AvgShotsWin, stats.BestWinShots)
	}
	fmt.Fprintln(w)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(w, "  Last played %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
