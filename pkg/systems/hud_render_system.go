package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/game"
	"github.com/decker502/harvest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 开场遮罩文字
const (
	SplashTitle    = "Harvest Time"
	SplashSubtitle = "Tap anywhere to start"
)

// AudioLabels 提供音频按钮文字（AudioManager 实现）
type AudioLabels interface {
	SoundLabel() string
	MusicLabel() string
}

var (
	hudPanel      = color.NRGBA{R: 32, G: 48, B: 28, A: 150}
	hudText       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	buttonFill    = mustHex("#fff6e0")
	buttonBorder  = mustHex("#8d5637")
	buttonText    = mustHex("#4a2f1d")
	toastFill     = color.NRGBA{R: 0, G: 0, B: 0, A: 170}
	splashOverlay = color.NRGBA{R: 20, G: 36, B: 20, A: 150}
)

// HUDRenderSystem HUD 渲染系统
// 负责绘制计分面板、右上角按钮、提示消息和开场遮罩
//
// 职责：
//   - 计分：累计收获分数和当前连击
//   - 按钮：Reset / Sound / Music，音频按钮文字随开关与平台状态变化
//   - 提示消息：画面底部居中，只在 Toast.Visible 时绘制
//   - 开场遮罩：ShowSplash 为 true 时覆盖整个画面
type HUDRenderSystem struct {
	fonts   *utils.FontCache
	labels  AudioLabels
	buttons []config.HUDButtonLayout
}

// NewHUDRenderSystem 创建 HUD 渲染系统
func NewHUDRenderSystem(fonts *utils.FontCache, labels AudioLabels, buttons []config.HUDButtonLayout) *HUDRenderSystem {
	return &HUDRenderSystem{
		fonts:   fonts,
		labels:  labels,
		buttons: buttons,
	}
}

// Draw 绘制 HUD（位于田地之上）
func (s *HUDRenderSystem) Draw(screen *ebiten.Image, gs *game.GameState) {
	s.drawStats(screen, gs.Snapshot())
	s.drawButtons(screen)
	if gs.Toast.Visible {
		s.drawToast(screen, gs.Toast.Text)
	}
	if gs.ShowSplash {
		s.drawSplash(screen)
	}
}

// StatsLines 返回计分面板的文字
func StatsLines(stats game.Stats) []string {
	return []string{
		fmt.Sprintf("Harvested: %d", stats.Harvested),
		fmt.Sprintf("Combo: %d", stats.Combo),
	}
}

// ButtonLabel 返回按钮当前文字
func (s *HUDRenderSystem) ButtonLabel(id config.HUDButtonID) string {
	switch id {
	case config.HUDButtonSound:
		return s.labels.SoundLabel()
	case config.HUDButtonMusic:
		return s.labels.MusicLabel()
	default:
		return "Reset"
	}
}

func (s *HUDRenderSystem) drawStats(screen *ebiten.Image, stats game.Stats) {
	face := s.fonts.Face(config.HUDFontSize)
	lineHeight := config.HUDFontSize * 1.3
	lines := StatsLines(stats)

	utils.FillRect(screen, config.HUDStatsX-8, config.HUDStatsY-6, 200, lineHeight*float64(len(lines))+12, hudPanel)
	for i, line := range lines {
		utils.DrawText(screen, line, face, config.HUDStatsX, config.HUDStatsY+float64(i)*lineHeight, hudText)
	}
}

func (s *HUDRenderSystem) drawButtons(screen *ebiten.Image) {
	face := s.fonts.Face(config.HUDFontSize * 0.85)
	for _, b := range s.buttons {
		utils.FillRect(screen, b.X, b.Y, b.Width, b.Height, buttonFill)
		utils.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, buttonBorder)
		utils.DrawCenteredText(screen, s.ButtonLabel(b.ID), face, b.X+b.Width/2, b.Y+b.Height/2, buttonText)
	}
}

func (s *HUDRenderSystem) drawToast(screen *ebiten.Image, msg string) {
	face := s.fonts.Face(config.ToastFontSize)
	w, h := utils.MeasureText(msg, face)
	const padX, padY = 18.0, 10.0
	cx := float64(config.GameWindowWidth) / 2

	utils.FillRect(screen, cx-w/2-padX, config.ToastY-h/2-padY, w+padX*2, h+padY*2, toastFill)
	utils.DrawCenteredText(screen, msg, face, cx, config.ToastY, hudText)
}

func (s *HUDRenderSystem) drawSplash(screen *ebiten.Image) {
	w, h := float64(config.GameWindowWidth), float64(config.GameWindowHeight)
	utils.FillRect(screen, 0, 0, w, h, splashOverlay)
	utils.DrawCenteredText(screen, SplashTitle, s.fonts.Face(config.SplashFontBig), w/2, config.SplashTitleY, hudText)
	utils.DrawCenteredText(screen, SplashSubtitle, s.fonts.Face(config.ToastFontSize), w/2, config.SplashTitleY+64, utils.WithAlpha(hudText, 0.85))
}
