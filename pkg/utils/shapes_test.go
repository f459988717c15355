package utils

import (
	"image/color"
	"math"
	"testing"
)

func TestEllipsePoints(t *testing.T) {
	e := Ellipse{CX: 100, CY: 50, RX: 20, RY: 10}
	pts := EllipsePoints(e, 4)

	want := [][2]float64{{120, 50}, {100, 60}, {80, 50}, {100, 40}}
	for i, w := range want {
		if math.Abs(pts[i][0]-w[0]) > 1e-9 || math.Abs(pts[i][1]-w[1]) > 1e-9 {
			t.Errorf("point %d = %v, want %v", i, pts[i], w)
		}
	}
}

func TestEllipsePointsRotated(t *testing.T) {
	e := Ellipse{RX: 10, RY: 5, Rotation: math.Pi / 2}
	p := EllipsePoints(e, 4)[0]
	// 旋转 90° 后长轴指向 +Y
	if math.Abs(p[0]) > 1e-9 || math.Abs(p[1]-10) > 1e-9 {
		t.Errorf("rotated point = %v, want (0, 10)", p)
	}
}

func TestGradientBands(t *testing.T) {
	top := color.NRGBA{R: 0xbf, G: 0xe9, B: 0xff, A: 255}
	bottom := color.NRGBA{R: 0xea, G: 0xf8, B: 0xff, A: 255}

	bands := GradientBands(top, bottom, 8)
	if len(bands) != 8 {
		t.Fatalf("got %d bands, want 8", len(bands))
	}
	if bands[0] != top {
		t.Errorf("first band = %v, want %v", bands[0], top)
	}
	if bands[7] != bottom {
		t.Errorf("last band = %v, want %v", bands[7], bottom)
	}

	single := GradientBands(top, bottom, 0)
	if len(single) != 1 || single[0] != top {
		t.Errorf("degenerate band count should yield the top colour, got %v", single)
	}
}
