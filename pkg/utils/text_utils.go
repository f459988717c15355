package utils

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FontCache 按字号缓存同一字体源的 GoTextFace
type FontCache struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewDefaultFontCache 使用内置的 Go Regular 字体
func NewDefaultFontCache() (*FontCache, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return &FontCache{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Face 返回指定字号的字体
func (fc *FontCache) Face(size float64) *text.GoTextFace {
	if face, ok := fc.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source:    fc.source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	fc.faces[size] = face
	return face
}

// DrawCenteredText 以 (centerX, centerY) 为中心绘制单行文本
func DrawCenteredText(dst *ebiten.Image, str string, face *text.GoTextFace, centerX, centerY float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, centerY)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

// DrawText 以 (x, y) 为左上角绘制单行文本
func DrawText(dst *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

// MeasureText 返回文本宽高
func MeasureText(str string, face *text.GoTextFace) (float64, float64) {
	return text.Measure(str, face, 0)
}
