package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultBattleshipConfig().Validate(); err != nil {
		t.Fatalf("DefaultBattleshipConfig().Validate() = %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseBattleship(defaultBattleshipYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultBattleshipConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultBattleshipConfig())
	}
}

func TestSymbolValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SymbolConfig)
		wantErr string
	}{
		{"defaults", func(*SymbolConfig) {}, ""},
		{"empty symbol", func(s *SymbolConfig) { s.Hit = "" }, "symbols.hit"},
		{"two characters", func(s *SymbolConfig) { s.Miss = "OO" }, "symbols.miss"},
		{"duplicate", func(s *SymbolConfig) { s.Vertical = "-" }, "both"},
		{"unicode", func(s *SymbolConfig) { s.Hit = "✗" }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultBattleshipConfig().Symbols
			tc.mutate(&s)
			err := s.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestSymbolRunes(t *testing.T) {
	got := DefaultBattleshipConfig().Symbols.Runes()
	expected := [5]rune{'+', '-', '|', 'X', 'O'}
	if got != expected {
		t.Errorf("Runes() = %q, expected %q", got, expected)
	}
}

func TestPalette(t *testing.T) {
	p, err := DefaultBattleshipConfig().Colors.Palette()
	if err != nil {
		t.Fatalf("Palette() error: %v", err)
	}
	if p.Hit != core.ColorBrightRed || p.Miss != core.ColorBlue {
		t.Errorf("Palette() = %+v", p)
	}

	bad := DefaultBattleshipConfig().Colors
	bad.Cursor = "plaid"
	if _, err := bad.Palette(); err == nil || !strings.Contains(err.Error(), "colors.cursor") {
		t.Errorf("Palette() with bad cursor = %v", err)
	}
}

func TestLoadBattleshipCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "symbols:\n  hit: \"#\"\ncolors:\n  ship: green\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBattleship(path)
	if err != nil {
		t.Fatalf("LoadBattleship() error: %v", err)
	}
	if cfg.Symbols.Hit != "#" {
		t.Errorf("Symbols.Hit = %q, expected #", cfg.Symbols.Hit)
	}
	if cfg.Symbols.Miss != "O" {
		t.Errorf("unset keys should keep defaults, Symbols.Miss = %q", cfg.Symbols.Miss)
	}
	if cfg.Colors.Ship != "green" {
		t.Errorf("Colors.Ship = %q, expected green", cfg.Colors.Ship)
	}
}

func TestLoadBattleshipCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBattleship(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("symbols:\n  hit: \"+\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBattleship(invalid); err == nil {
		t.Error("config reusing a symbol should fail")
	}
}

func TestLoadBattleshipUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ".battleship", "configs")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "colors:\n  miss: gray\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "battleship.yaml"), []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBattleship("")
	if err != nil {
		t.Fatalf("LoadBattleship() error: %v", err)
	}
	if cfg.Colors.Miss != "gray" {
		t.Errorf("Colors.Miss = %q, expected gray", cfg.Colors.Miss)
	}
}

func TestLoadBattleshipFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadBattleship("")
	if err != nil {
		t.Fatalf("LoadBattleship() error: %v", err)
	}
	if cfg != DefaultBattleshipConfig() {
		t.Errorf("LoadBattleship() = %+v, expected defaults", cfg)
	}
}
