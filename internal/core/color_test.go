package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
	}{
		{"red", ColorRed},
		{"Bright_Cyan", ColorBrightCyan},
		{"bright-green", ColorBrightGreen},
		{" gray ", ColorGray},
		{"default", ColorDefault},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseColor(tc.name)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tc.name, err)
			}
			if c != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, c, tc.expected)
			}
		})
	}

	if _, err := ParseColor("ultraviolet"); err == nil {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestColorANSI(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Errorf("ColorDefault.ANSI() = %q, expected empty", ColorDefault.ANSI())
	}
	if ColorOrange.ANSI() != "208" {
		t.Errorf("ColorOrange.ANSI() = %q, expected 208", ColorOrange.ANSI())
	}
	if Color(200).ANSI() != "" {
		t.Error("unknown color should map to terminal default")
	}
}
