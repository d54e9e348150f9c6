package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"
	"github.com/vovakirdan/tui-battleship/internal/platform/console"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var classicCmd = &cobra.Command{
	Use:   "classic",
	Short: "Play the line-based game",
	Long: `Play by typing directions and coordinates at prompts. Boards are
printed after every hit and after each of the computer's turns.

Directions are left, right, up or down; columns and rows are 0-6.
Ships extend from the back of the ship in the direction it faces.

Examples:
  battleship classic
  battleship classic --seed 7 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runClassic,
}

func runClassic(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	con, err := console.New(os.Stdin, os.Stdout, loadConfig(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	g := engine.New(
		engine.WithRand(engine.NewRand(flagSeed)),
		engine.WithLogger(logger),
	)

	start := time.Now()
	if err := engine.Play(g, con); err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(os.Stdout)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	rec, ok := storage.RecordFor(g, storage.ModeClassic, playerName(), int(time.Since(start).Seconds()))
	if !ok {
		return
	}
	store := openStore(logger)
	if store == nil {
		return
	}
	defer store.Close()

	id, err := store.SaveMatch(rec)
	if err != nil {
		logger.Error("cannot save match", "err", err)
		return
	}
	logger.Debug("match saved", "id", id)
}
