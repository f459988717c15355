package systems

import (
	"image/color"
	"math"

	"github.com/decker502/harvest/pkg/components"
	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/ecs"
	"github.com/decker502/harvest/pkg/game"
	"github.com/decker502/harvest/pkg/types"
	"github.com/decker502/harvest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageProvider 按逻辑键提供图片句柄（ResourceManager 实现）
type ImageProvider interface {
	ImageByID(id string) *game.ImageHandle
}

// 背景与装饰颜色
var (
	skyTop      = mustHex("#bfe9ff")
	skyBottom   = mustHex("#eaf8ff")
	fieldTop    = mustHex("#9fe28f")
	fieldBottom = mustHex("#7cc576")
	rowEven     = mustHex("#7bbd69")
	rowOdd      = mustHex("#8acf74")
	soilColor   = mustHex("#9b5d3b")
	revealRing  = mustHex("#ffcc5c")
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// gradientBands 渐变近似使用的颜色带数量
const gradientBands = 16

// 背景云朵（两组，不同透明度）
var (
	cloudsLeft = []utils.Ellipse{
		{CX: 160, CY: 80, RX: 90, RY: 34},
		{CX: 250, CY: 85, RX: 70, RY: 30},
		{CX: 360, CY: 78, RX: 80, RY: 32},
	}
	cloudsRight = []utils.Ellipse{
		{CX: 620, CY: 70, RX: 95, RY: 36},
		{CX: 720, CY: 90, RX: 70, RY: 28},
		{CX: 810, CY: 72, RX: 80, RY: 30},
	}
	fieldHighlights = []utils.Ellipse{
		{CX: 220, CY: 210, RX: 110, RY: 42},
		{CX: 700, CY: 240, RX: 130, RY: 50},
	}
)

// mustHex 解析内置颜色常量
func mustHex(hex string) color.NRGBA {
	c, err := utils.ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// RenderSystem 绘制田地：背景、作物、揭示动画和粒子
//
// 只读取状态，从不修改。图片未就绪时使用程序化图形。
type RenderSystem struct {
	EntityManager *ecs.EntityManager
	field         *CropFieldSystem
	particles     *ParticleSystem
	images        ImageProvider
	fonts         *utils.FontCache
	width, height float64
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, field *CropFieldSystem, particles *ParticleSystem, images ImageProvider, fonts *utils.FontCache) *RenderSystem {
	return &RenderSystem{
		EntityManager: em,
		field:         field,
		particles:     particles,
		images:        images,
		fonts:         fonts,
		width:         config.GameWindowWidth,
		height:        config.GameWindowHeight,
	}
}

// Draw 按顺序绘制整个田地
func (s *RenderSystem) Draw(screen *ebiten.Image, gs *game.GameState, now float64) {
	s.drawBackground(screen)
	s.drawCrops(screen, gs, now)
	s.drawReveals(screen, now)
	s.drawParticles(screen)
}

// drawBackground 绘制田地背景图，缺失时画天空、云和田垄
func (s *RenderSystem) drawBackground(screen *ebiten.Image) {
	if handle := s.images.ImageByID("field"); handle.Ready() {
		w, h := handle.Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.width/float64(w), s.height/float64(h))
		screen.DrawImage(handle.Image, op)
		return
	}

	skyHeight := s.height * config.SkyHeightRatio
	rowHeight := config.FieldRowHeight

	screen.Fill(skyTop)
	utils.FillVerticalGradient(screen, 0, 0, s.width, skyHeight, skyTop, skyBottom, gradientBands)
	utils.FillEllipses(screen, cloudsLeft, utils.WithAlpha(white, 0.75))
	utils.FillEllipses(screen, cloudsRight, utils.WithAlpha(white, 0.6))

	utils.FillVerticalGradient(screen, 0, skyHeight, s.width, s.height-skyHeight, fieldTop, fieldBottom, gradientBands)
	for i := 0; i < config.FieldRowCount; i++ {
		y := skyHeight + float64(i)*rowHeight
		row := rowEven
		if i%2 == 1 {
			row = rowOdd
		}
		utils.FillRect(screen, 0, y, s.width, rowHeight, row)
		utils.FillRect(screen, 0, y+rowHeight*0.1, s.width, rowHeight*0.18, utils.WithAlpha(white, 0.08))
	}
	utils.FillEllipses(screen, fieldHighlights, utils.WithAlpha(white, 0.2))
}

// drawCrops 按创建顺序绘制所有作物
func (s *RenderSystem) drawCrops(screen *ebiten.Image, gs *game.GameState, now float64) {
	for _, id := range s.field.Crops() {
		crop, ok := ecs.GetComponent[*components.CropComponent](s.EntityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
		if !ok {
			continue
		}
		s.drawCrop(screen, crop, pos, id == gs.HoveredCrop, now)
	}
}

func (s *RenderSystem) drawCrop(screen *ebiten.Image, crop *components.CropComponent, pos *components.PositionComponent, highlight bool, now float64) {
	bob := s.field.BobOffset(crop, now)
	size := crop.Size

	// 土堆
	utils.FillEllipse(screen, utils.Ellipse{
		CX: pos.X, CY: pos.Y + size + 14,
		RX: size * 1.2, RY: size * 0.6,
	}, soilColor)

	if handle := s.cropImage(crop.Variant.ID); handle.Ready() {
		drawSize := size * 2.4
		s.drawImageFitted(screen, handle, pos.X-drawSize/2, pos.Y-drawSize/2+bob, drawSize, 1)
	} else {
		stem := crop.Variant.StemColor
		utils.StrokeLine(screen, pos.X, pos.Y-size*0.4+bob, pos.X, pos.Y-size*1.2+bob, 4, stem)
		leafY := pos.Y - size*1.35 + bob
		utils.FillEllipses(screen, []utils.Ellipse{
			{CX: pos.X - 6, CY: leafY, RX: 10, RY: 5, Rotation: -0.4},
			{CX: pos.X + 6, CY: leafY, RX: 10, RY: 5, Rotation: 0.4},
		}, stem)
	}

	if highlight {
		utils.StrokeCircle(screen, pos.X, pos.Y+bob, s.field.HitRadius(crop), 3, utils.WithAlpha(white, 0.9))
	}
}

// drawReveals 绘制揭示动画：光晕、扩散圆环、放大的作物图
func (s *RenderSystem) drawReveals(screen *ebiten.Image, now float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.RevealComponent, *components.PositionComponent](s.EntityManager) {
		reveal, ok := ecs.GetComponent[*components.RevealComponent](s.EntityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
		if !ok {
			continue
		}

		p := ProgressOf(reveal, now)
		glow := RevealGlow(p)
		alpha := RevealAlpha(p)
		size := reveal.BaseSize * RevealScale(p)

		utils.FillCircle(screen, pos.X, pos.Y, reveal.BaseSize*(1.2+glow*0.6), utils.WithAlpha(white, 0.5*glow*alpha))
		utils.StrokeCircle(screen, pos.X, pos.Y, reveal.BaseSize*(1+p*1.2), 4, utils.WithAlpha(revealRing, 0.8*(1-p)*alpha))

		if reveal.Image != nil {
			handle := &game.ImageHandle{Image: reveal.Image}
			s.drawImageFitted(screen, handle, pos.X-size/2, pos.Y-size/2, size, alpha)
			continue
		}

		fill := reveal.Variant.FillColor
		utils.FillEllipse(screen, utils.Ellipse{
			CX: pos.X, CY: pos.Y,
			RX: size * 0.55, RY: size * 0.7,
		}, utils.WithAlpha(fill, float64(fill.A)/255*alpha))
		face := s.fonts.Face(math.Round(math.Max(14, size*0.5)))
		utils.DrawCenteredText(screen, "?", face, pos.X, pos.Y, utils.WithAlpha(white, 0.85*alpha))
	}
}

// drawParticles 绘制粒子，透明度随剩余寿命衰减
func (s *RenderSystem) drawParticles(screen *ebiten.Image) {
	radius := s.particles.Radius()
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](s.EntityManager) {
		particle, ok := ecs.GetComponent[*components.ParticleComponent](s.EntityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
		if !ok {
			continue
		}
		alpha := utils.Clamp01(s.particles.Alpha(particle)) * float64(particle.Color.A) / 255
		utils.FillCircle(screen, pos.X, pos.Y, radius, utils.WithAlpha(particle.Color, alpha))
	}
}

// cropImage 返回品种对应的图片句柄
func (s *RenderSystem) cropImage(id types.CropType) *game.ImageHandle {
	return s.images.ImageByID(id.String())
}

// drawImageFitted 把图片缩放到 size x size 绘制在 (x, y)
func (s *RenderSystem) drawImageFitted(screen *ebiten.Image, handle *game.ImageHandle, x, y, size, alpha float64) {
	w, h := handle.Size()
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(w), size/float64(h))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(handle.Image, op)
}
