package colors

import (
	"testing"

	"github.com/odtools/oddraw/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", Color{R: 0xFF, A: 1}},
		{"#00ff00", Color{G: 0xFF, A: 1}},
		{"0000FF", Color{B: 0xFF, A: 1}},
		{"#FF000080", Color{R: 0xFF, A: float64(0x80) / 255}},
		{"#FFFFFF00", Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "#FFF", "#GGGGGG", "#12345", "#123456789"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		} else if !errors.Is(err, errors.ErrCodeInvalidColor) {
			t.Errorf("Parse(%q) error code = %q, want INVALID_COLOR", in, errors.GetCode(err))
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := MustParse("#A0522D")
	if got := c.Hex(); got != "#A0522D" {
		t.Errorf("Hex() = %q, want %q", got, "#A0522D")
	}
	if got := c.HexAlpha(); got != "#A0522DFF" {
		t.Errorf("HexAlpha() = %q, want %q", got, "#A0522DFF")
	}
}

func TestWithAlpha(t *testing.T) {
	c, err := Red.WithAlpha(0.5)
	if err != nil {
		t.Fatalf("WithAlpha(0.5) error: %v", err)
	}
	if c.A != 0.5 {
		t.Errorf("A = %v, want 0.5", c.A)
	}
	if c.Hex() != "#FF0000" {
		t.Errorf("Hex() = %q, want #FF0000", c.Hex())
	}

	if _, err := Red.WithAlpha(1.5); err == nil {
		t.Error("WithAlpha(1.5) should fail")
	}
	if _, err := Red.WithAlpha(-0.1); err == nil {
		t.Error("WithAlpha(-0.1) should fail")
	}
}

func TestRGBAPremultiplied(t *testing.T) {
	r, g, b, a := White.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("White.RGBA() = (%d, %d, %d, %d), want all 0xFFFF", r, g, b, a)
	}

	half, _ := White.WithAlpha(0.5)
	r, _, _, a = half.RGBA()
	if r > a {
		t.Errorf("premultiplied channel %d exceeds alpha %d", r, a)
	}

	r, g, b, a = Transparent.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("Transparent.RGBA() = (%d, %d, %d, %d), want all 0", r, g, b, a)
	}
}
