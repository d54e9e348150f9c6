package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu with match history",
	Long: `Open the start menu. From there you can start games, browse your
match history and quit. Leaving a finished game returns to the menu.

Examples:
  battleship menu
  battleship menu --player alice --db ./matches.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	store := openStore(logger)
	runErr := tui.Run(tui.Options{
		Store:      store,
		Config:     runtimeConfig(),
		Battleship: loadConfig(logger),
		Player:     playerName(),
		Mode:       storage.ModeTUI,
		Logger:     logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
