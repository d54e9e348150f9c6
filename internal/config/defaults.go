package config

import (
	_ "embed"
)

//go:embed defaults/battleship.yaml
var defaultBattleshipYAML []byte

// DefaultBattleshipConfig returns the classic symbols with a
// terminal-friendly color scheme.
func DefaultBattleshipConfig() BattleshipConfig {
	return BattleshipConfig{
		Symbols: SymbolConfig{
			Empty:      "+",
			Horizontal: "-",
			Vertical:   "|",
			Hit:        "X",
			Miss:       "O",
		},
		Colors: ColorConfig{
			Grid:    "gray",
			Ship:    "bright_cyan",
			Hit:     "bright_red",
			Miss:    "blue",
			Cursor:  "bright_yellow",
			Preview: "bright_green",
			Invalid: "red",
		},
	}
}
