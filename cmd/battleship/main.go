// battleship is a 7x7 game of Battleship against the computer, played in
// the terminal.
//
// Usage:
//
//	battleship play      - Full-screen game
//	battleship classic   - Line-based game with typed coordinates
//	battleship menu      - Start menu with match history
//	battleship serve     - SSH server, one game per connection
//	battleship history   - Print recent matches and statistics
//
// Global flags:
//
//	--seed <value>       - RNG seed for the computer (0 = time based)
//	--db <path>          - Match history database (default: ~/.battleship/matches.db)
//	--config <path>      - Custom symbols/colors YAML
//	--player <name>      - Name recorded with matches (default: OS user)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Append logs to a file
//
// Unset flags fall back to BATTLESHIP_* environment variables, which may
// also come from a .env file in the working directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPlayer   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "Battleship - sink the computer's fleet in your terminal",
	Long: `Battleship is played on two 7x7 boards. Place your battleship (4),
submarine (3), destroyer (3) and patrol boat (2), then trade shots with
the computer. A hit earns another shot; the first fleet sunk loses.

Available commands:
  play     - Full-screen game
  classic  - Line-based game with typed coordinates
  menu     - Start menu with match history
  serve    - Start SSH server for remote play
  history  - Show recent matches

Examples:
  battleship play
  battleship classic --seed 42
  battleship menu --config ./my-colors.yaml
  battleship serve --port 2222
  battleship history --limit 20`,
}

// envFlags binds persistent flags to environment variables.
var envFlags = []struct{ flag, env string }{
	{"seed", "BATTLESHIP_SEED"},
	{"db", "BATTLESHIP_DB"},
	{"config", "BATTLESHIP_CONFIG"},
	{"player", "BATTLESHIP_PLAYER"},
	{"log-level", "BATTLESHIP_LOG_LEVEL"},
	{"log-file", "BATTLESHIP_LOG_FILE"},
}

// loadEnv applies .env and BATTLESHIP_* variables to flags the user did
// not set explicitly.
func loadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %v\n", err)
	}

	flags := rootCmd.PersistentFlags()
	for _, b := range envFlags {
		v, ok := os.LookupEnv(b.env)
		if !ok || flags.Changed(b.flag) {
			continue
		}
		if err := flags.Set(b.flag, v); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring %s: %v\n", b.env, err)
		}
	}
}

func init() {
	cobra.OnInitialize(loadEnv)

	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.battleship/matches.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom battleship config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name recorded with matches (default: current user)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(classicCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// newLogger builds the command logger. Without --log-file it writes to
// fallback; full-screen commands pass io.Discard so logs never reach the
// alternate screen. The returned func closes the log file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "battleship",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger, closeFn
}

// loadConfig loads symbols and colors. A broken custom file is fatal;
// anything else falls back to the defaults.
func loadConfig(logger *log.Logger) config.BattleshipConfig {
	cfg, err := config.LoadBattleship(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	symbols := cfg.Symbols.Runes()
	logger.Debug("config loaded", "symbols", string(symbols[:]))
	return cfg
}

// openStore opens the match history. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database, history disabled", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// playerName resolves the name stored with matches.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
