// Package config provides YAML-based configuration for the battleship
// front ends: board symbols and the color scheme.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

// BattleshipConfig contains all presentation settings.
type BattleshipConfig struct {
	Symbols SymbolConfig `yaml:"symbols"`
	Colors  ColorConfig  `yaml:"colors"`
}

// SymbolConfig defines the character drawn for each cell marker.
type SymbolConfig struct {
	Empty      string `yaml:"empty"`
	Horizontal string `yaml:"horizontal"`
	Vertical   string `yaml:"vertical"`
	Hit        string `yaml:"hit"`
	Miss       string `yaml:"miss"`
}

// ColorConfig names the colors used by the boards. Names are those
// accepted by core.ParseColor.
type ColorConfig struct {
	Grid    string `yaml:"grid"`
	Ship    string `yaml:"ship"`
	Hit     string `yaml:"hit"`
	Miss    string `yaml:"miss"`
	Cursor  string `yaml:"cursor"`
	Preview string `yaml:"preview"`
	Invalid string `yaml:"invalid"`
}

// Palette is ColorConfig resolved to core colors.
type Palette struct {
	Grid    core.Color
	Ship    core.Color
	Hit     core.Color
	Miss    core.Color
	Cursor  core.Color
	Preview core.Color
	Invalid core.Color
}

var errBadSymbol = errors.New("symbol must be a single character")

// Runes returns the symbols as runes, in marker order: empty, horizontal,
// vertical, hit, miss.
func (s SymbolConfig) Runes() [5]rune {
	var out [5]rune
	for i, sym := range []string{s.Empty, s.Horizontal, s.Vertical, s.Hit, s.Miss} {
		out[i], _ = utf8.DecodeRuneInString(sym)
	}
	return out
}

// Validate checks that every symbol is one distinct character.
func (s SymbolConfig) Validate() error {
	named := []struct {
		name, value string
	}{
		{"empty", s.Empty},
		{"horizontal", s.Horizontal},
		{"vertical", s.Vertical},
		{"hit", s.Hit},
		{"miss", s.Miss},
	}
	seen := make(map[string]string, len(named))
	for _, n := range named {
		if utf8.RuneCountInString(n.value) != 1 {
			return fmt.Errorf("symbols.%s %q: %w", n.name, n.value, errBadSymbol)
		}
		if other, dup := seen[n.value]; dup {
			return fmt.Errorf("symbols.%s and symbols.%s are both %q", other, n.name, n.value)
		}
		seen[n.value] = n.name
	}
	return nil
}

// Palette resolves the configured color names.
func (c ColorConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name  string
		value string
		dst   *core.Color
	}{
		{"grid", c.Grid, &p.Grid},
		{"ship", c.Ship, &p.Ship},
		{"hit", c.Hit, &p.Hit},
		{"miss", c.Miss, &p.Miss},
		{"cursor", c.Cursor, &p.Cursor},
		{"preview", c.Preview, &p.Preview},
		{"invalid", c.Invalid, &p.Invalid},
	}
	for _, f := range fields {
		col, err := core.ParseColor(f.value)
		if err != nil {
			return Palette{}, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// Validate checks symbols and colors.
func (c BattleshipConfig) Validate() error {
	if err := c.Symbols.Validate(); err != nil {
		return err
	}
	_, err := c.Colors.Palette()
	return err
}
