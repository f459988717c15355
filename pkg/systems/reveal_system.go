package systems

import (
	"math"

	"github.com/decker502/harvest/pkg/components"
	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/ecs"
	"github.com/decker502/harvest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// RevealSystem 管理收获时的揭示动画
//
// 动画是纯时间函数：进度 = min((now - start) / duration, 1)。
// 进度为 1 的那一帧仍会绘制，之后由 PruneExpired 移除。
type RevealSystem struct {
	EntityManager *ecs.EntityManager
	cfg           config.RevealConfig
}

// NewRevealSystem 创建揭示动画系统
func NewRevealSystem(em *ecs.EntityManager, cfg config.RevealConfig) *RevealSystem {
	return &RevealSystem{
		EntityManager: em,
		cfg:           cfg,
	}
}

// Start 在作物位置开始一个揭示动画
// image 为 nil 时绘制程序化的占位图形
func (rs *RevealSystem) Start(cropX, cropY, cropSize float64, variant *config.CropVariant, image *ebiten.Image, now float64) ecs.EntityID {
	id := rs.EntityManager.CreateEntity()
	rs.EntityManager.AddComponent(id, &components.PositionComponent{
		X: cropX,
		Y: cropY + cropSize*rs.cfg.OffsetY,
	})
	rs.EntityManager.AddComponent(id, &components.RevealComponent{
		Variant:   variant,
		StartTime: now,
		Duration:  rs.cfg.DurationMs,
		BaseSize:  rs.cfg.BaseSize,
		Image:     image,
	})
	return id
}

// PruneExpired 移除 now - start >= duration 的动画，返回移除数量
func (rs *RevealSystem) PruneExpired(now float64) int {
	removed := 0
	for _, id := range ecs.GetEntitiesWith1[*components.RevealComponent](rs.EntityManager) {
		reveal, ok := ecs.GetComponent[*components.RevealComponent](rs.EntityManager, id)
		if !ok {
			continue
		}
		if now-reveal.StartTime >= reveal.Duration {
			rs.EntityManager.RemoveEntity(id)
			removed++
		}
	}
	return removed
}

// Count 返回正在播放的动画数量
func (rs *RevealSystem) Count() int {
	return len(ecs.GetEntitiesWith1[*components.RevealComponent](rs.EntityManager))
}

// ProgressOf 返回动画在 now 时的进度 [0, 1]
func ProgressOf(reveal *components.RevealComponent, now float64) float64 {
	if reveal.Duration <= 0 {
		return 1
	}
	return math.Max(0, math.Min((now-reveal.StartTime)/reveal.Duration, 1))
}

// RevealScale 图像缩放 0.6 + easeOutCubic(p) * 0.8
func RevealScale(progress float64) float64 {
	return 0.6 + utils.EaseOutCubic(progress)*0.8
}

// RevealGlow 光晕强度 sin(p·π)
func RevealGlow(progress float64) float64 {
	return utils.SinePulse(progress)
}

// RevealAlpha 整体透明度 1 - p*0.2
func RevealAlpha(progress float64) float64 {
	return 1 - progress*0.2
}
