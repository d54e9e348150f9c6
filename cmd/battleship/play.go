package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a full-screen game",
	Long: `Start a full-screen game against the computer.

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Space             - Rotate the ship being placed
  Enter             - Place ship / fire
  P                 - Pause
  R                 - Restart (after game over)
  B/Esc             - Leave (after game over or while paused)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Examples:
  battleship play
  battleship play --seed 42
  battleship play --config ./my-colors.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	store := openStore(logger)
	opts := tui.Options{
		Store:      store,
		Config:     runtimeConfig(),
		Battleship: loadConfig(logger),
		Player:     playerName(),
		Mode:       storage.ModeTUI,
		Logger:     logger,
	}

	runErr := tui.RunGame(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
