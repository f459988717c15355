package utils

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#f9a65a", color.NRGBA{R: 0xf9, G: 0xa6, B: 0x5a, A: 255}, false},
		{"#8d5637", color.NRGBA{R: 141, G: 86, B: 55, A: 255}, false},
		{"f9a65a", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{R: 141, G: 86, B: 55, A: 255}
	if got := WithAlpha(c, 0.9).A; got != 230 {
		t.Errorf("alpha 0.9 -> %d, want 230", got)
	}
	if got := WithAlpha(c, 2).A; got != 255 {
		t.Errorf("alpha clamps to 255, got %d", got)
	}
}

func TestBlendColorsEndpoints(t *testing.T) {
	a := color.NRGBA{R: 0x9f, G: 0xe2, B: 0x8f, A: 255}
	b := color.NRGBA{R: 0x7c, G: 0xc5, B: 0x76, A: 0}

	if got := BlendColors(a, b, 0); got != a {
		t.Errorf("t=0 -> %v, want %v", got, a)
	}
	if got := BlendColors(a, b, 1); got != b {
		t.Errorf("t=1 -> %v, want %v", got, b)
	}
	mid := BlendColors(a, b, 0.5)
	if mid.A < 127 || mid.A > 128 {
		t.Errorf("alpha interpolates linearly, got %d", mid.A)
	}
	if mid.G > a.G || mid.G < b.G {
		t.Errorf("green channel %d outside [%d, %d]", mid.G, b.G, a.G)
	}
}
