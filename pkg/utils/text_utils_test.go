package utils

import "testing"

// TestFontCache 测试字号缓存与文本测量
func TestFontCache(t *testing.T) {
	fc, err := NewDefaultFontCache()
	if err != nil {
		t.Fatalf("NewDefaultFontCache failed: %v", err)
	}

	a := fc.Face(20)
	if fc.Face(20) != a {
		t.Error("same size should return the cached face")
	}
	if fc.Face(22) == a {
		t.Error("different sizes should not share a face")
	}

	short, _ := MeasureText("Carrot +1", a)
	long, _ := MeasureText("Fresh soil, fresh crops!", a)
	if short <= 0 || long <= short {
		t.Errorf("unexpected widths: short=%v long=%v", short, long)
	}
}
