package core

import (
	"strings"
	"testing"
)

// rows returns every row of s, for comparing whole frames.
func rows(s *Screen) []string {
	out := make([]string, s.Height())
	for y := range out {
		out[y] = s.Row(y)
	}
	return out
}

func expectRows(t *testing.T, s *Screen, expected ...string) {
	t.Helper()
	got := rows(s)
	if len(got) != len(expected) {
		t.Fatalf("screen has %d rows, expected %d", len(got), len(expected))
	}
	for y := range got {
		if got[y] != expected[y] {
			t.Errorf("row %d = %q, expected %q", y, got[y], expected[y])
		}
	}
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	expectRows(t, s, "      ", "      ", "      ")
}

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.Set(p[0], p[1], '#')
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected blank", p[0], p[1], got)
		}
	}
	s.DrawText(2, 1, "abcdef")

	expectRows(t, s, "    ", "  ab")
	if s.Row(-1) != "    " {
		t.Errorf("Row(-1) = %q, expected blanks", s.Row(-1))
	}
}

func TestScreenDrawsGrid(t *testing.T) {
	// a 3x2 board the way the game lays one out: label column, then cells
	s := NewScreen(8, 3)
	s.DrawText(2, 0, "0 1 2")
	for row := range 2 {
		s.Set(0, row+1, rune('0'+row))
		for col := range 3 {
			s.SetColored(2+col*2, row+1, '+', ColorGray)
		}
	}
	s.SetColored(4, 2, 'X', ColorBrightRed)

	expectRows(t, s,
		"  0 1 2 ",
		"0 + + + ",
		"1 + X + ",
	)
	if c := s.GetCell(4, 2); c.Color != ColorBrightRed {
		t.Errorf("hit cell color = %v, expected bright red", c.Color)
	}
	if c := s.GetCell(2, 1); c.Color != ColorGray {
		t.Errorf("empty cell color = %v, expected gray", c.Color)
	}
	if c := s.GetCell(0, 1); c.Color != ColorDefault {
		t.Errorf("label color = %v, expected default", c.Color)
	}
}

func TestScreenCentering(t *testing.T) {
	tests := []struct {
		name  string
		width int
		text  string
		want  string
	}{
		{"even", 10, "HIT", "   HIT    "},
		{"odd", 9, "HIT", "   HIT   "},
		{"multibyte", 11, "●●●", "    ●●●    "},
		{"too wide", 4, "VICTORY", "ICTO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(tt.width, 1)
			s.DrawTextCentered(0, tt.text)
			if got := s.Row(0); got != tt.want {
				t.Errorf("Row(0) = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestScreenOverlayBox(t *testing.T) {
	s := NewScreen(9, 5)
	s.DrawText(0, 2, "xxxxxxxxx")

	box := NewRect(1, 1, 7, 3)
	s.DrawRect(box, ' ')
	s.DrawBoxColored(box, ColorBrightGreen)
	s.DrawText(2, 2, "WIN")

	expectRows(t, s,
		"         ",
		" ┌─────┐ ",
		"x│WIN  │x",
		" └─────┘ ",
		"         ",
	)
	if s.GetCell(1, 1).Color != ColorBrightGreen || s.GetCell(7, 3).Color != ColorBrightGreen {
		t.Error("box corners should take the box color")
	}
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("text inside the box keeps its own color")
	}
}

func TestScreenDrawBoxPlain(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3))
	s.DrawHLine(1, 1, 2, '=')

	expectRows(t, s, "┌──┐", "│==│", "└──┘")
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawTextColored(0, 0, "X-O", ColorRed)

	s.Clear()

	for x := range 3 {
		if c := s.GetCell(x, 0); c != (Cell{Rune: ' ', Color: ColorDefault}) {
			t.Errorf("cell %d = %+v after Clear, expected blank default", x, c)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "+-|")
	s.DrawText(0, 1, "XO+")

	if got := s.String(); got != "+-|\nXO+" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColored(0, 0, "Fleet", ColorCyan)
	s.DrawText(0, 5, "gone")

	s.Resize(4, 3)
	expectRows(t, s, "Flee", "    ", "    ")
	if s.GetCell(3, 0).Color != ColorCyan {
		t.Error("Resize should keep colors")
	}

	s.Resize(12, 7)
	if !strings.HasPrefix(s.Row(0), "Flee ") {
		t.Errorf("row 0 after enlarging = %q", s.Row(0))
	}
	if s.Row(5) != strings.Repeat(" ", 12) {
		t.Errorf("clipped content should not come back, row 5 = %q", s.Row(5))
	}
}
