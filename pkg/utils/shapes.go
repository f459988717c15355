package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Ellipse 椭圆参数（中心、半径、旋转弧度）
type Ellipse struct {
	CX, CY   float64
	RX, RY   float64
	Rotation float64
}

// ellipseSegments 椭圆多边形近似的边数
const ellipseSegments = 48

var whiteSubImage *ebiten.Image

// whitePixel 返回用于 DrawTriangles 的纯白纹理（首次使用时创建）
func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// EllipsePoints 返回椭圆轮廓上均匀分布的 segments 个点
func EllipsePoints(e Ellipse, segments int) [][2]float64 {
	points := make([][2]float64, segments)
	sin, cos := math.Sincos(e.Rotation)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		x := e.RX * math.Cos(a)
		y := e.RY * math.Sin(a)
		points[i] = [2]float64{
			e.CX + x*cos - y*sin,
			e.CY + x*sin + y*cos,
		}
	}
	return points
}

// FillEllipses 用同一颜色填充多个椭圆（一次绘制调用）
func FillEllipses(dst *ebiten.Image, ellipses []Ellipse, clr color.Color) {
	var path vector.Path
	for _, e := range ellipses {
		if e.RX <= 0 || e.RY <= 0 {
			continue
		}
		for i, p := range EllipsePoints(e, ellipseSegments) {
			if i == 0 {
				path.MoveTo(float32(p[0]), float32(p[1]))
			} else {
				path.LineTo(float32(p[0]), float32(p[1]))
			}
		}
		path.Close()
	}

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	if len(is) == 0 {
		return
	}
	r, g, b, a := clr.RGBA()
	if a == 0 {
		return
	}
	// 顶点颜色使用非预乘值
	fr := float32(r) / float32(a)
	fg := float32(g) / float32(a)
	fb := float32(b) / float32(a)
	fa := float32(a) / 0xffff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = fr
		vs[i].ColorG = fg
		vs[i].ColorB = fb
		vs[i].ColorA = fa
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	dst.DrawTriangles(vs, is, whitePixel(), op)
}

// FillEllipse 填充单个椭圆
func FillEllipse(dst *ebiten.Image, e Ellipse, clr color.Color) {
	FillEllipses(dst, []Ellipse{e}, clr)
}

// FillCircle 填充圆
func FillCircle(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

// StrokeCircle 描边圆
func StrokeCircle(dst *ebiten.Image, cx, cy, r, width float64, clr color.Color) {
	if r <= 0 {
		return
	}
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

// StrokeLine 画线段
func StrokeLine(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// FillRect 填充矩形
func FillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// StrokeRect 描边矩形
func StrokeRect(dst *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

// GradientBands 把竖直渐变切分为 bands 条颜色带（Lab 空间插值）
func GradientBands(top, bottom color.NRGBA, bands int) []color.NRGBA {
	if bands < 1 {
		bands = 1
	}
	out := make([]color.NRGBA, bands)
	for i := range out {
		t := 0.0
		if bands > 1 {
			t = float64(i) / float64(bands-1)
		}
		out[i] = BlendColors(top, bottom, t)
	}
	return out
}

// FillVerticalGradient 用颜色带近似绘制竖直线性渐变
func FillVerticalGradient(dst *ebiten.Image, x, y, w, h float64, top, bottom color.NRGBA, bands int) {
	colors := GradientBands(top, bottom, bands)
	bandH := h / float64(len(colors))
	for i, c := range colors {
		// 多画 1px 避免带间缝隙
		FillRect(dst, x, y+float64(i)*bandH, w, bandH+1, c)
	}
}
