package utils

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor 解析 "#rrggbb" 形式的颜色
func ParseHexColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// WithAlpha 返回替换透明度后的颜色，alpha 取值 0~1（超出范围会被截断）
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(Clamp01(alpha)*255 + 0.5)
	return c
}

// BlendColors 在 Lab 空间中混合两种颜色，t=0 返回 a，t=1 返回 b
// 透明度按线性插值
func BlendColors(a, b color.NRGBA, t float64) color.NRGBA {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(Lerp(float64(a.A), float64(b.A), t) + 0.5)}
}
