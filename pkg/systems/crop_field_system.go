package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/harvest/pkg/components"
	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/ecs"
	"github.com/decker502/harvest/pkg/game"
	"github.com/decker502/harvest/pkg/utils"
)

// CropFieldSystem 管理田地中的作物集合
//
// 作物按创建顺序保存在 EntityManager 中；重叠作物的命中检测
// 返回最早创建的那一个。
type CropFieldSystem struct {
	EntityManager *ecs.EntityManager
	catalog       *config.CropCatalog
	cfg           config.FieldConfig
	width         float64 // 田地宽度（逻辑像素）
	height        float64 // 田地高度（逻辑像素）
	rng           *rand.Rand
}

// NewCropFieldSystem 创建田地系统
// 参数:
//   - em: EntityManager 实例
//   - catalog: 已验证的作物目录
//   - cfg: 田地参数
//   - width, height: 田地尺寸
//   - rng: 随机源（位置、尺寸、品种、相位）
func NewCropFieldSystem(em *ecs.EntityManager, catalog *config.CropCatalog, cfg config.FieldConfig, width, height float64, rng *rand.Rand) *CropFieldSystem {
	return &CropFieldSystem{
		EntityManager: em,
		catalog:       catalog,
		cfg:           cfg,
		width:         width,
		height:        height,
		rng:           rng,
	}
}

// Spawn 随机生成一株作物并返回其实体 ID
//
//	variant 按权重选择
//	x ∈ [margin, width-margin), y ∈ [margin, height-margin)
//	size = CropSizeMin + r * CropSizeSpan
//	bobPhase ∈ [0, 2π)
func (s *CropFieldSystem) Spawn() ecs.EntityID {
	variant := utils.PickWeighted(s.catalog.Variants, func(v *config.CropVariant) int { return v.Weight }, s.rng)
	m := s.cfg.Margin
	x := m + s.rng.Float64()*(s.width-m*2)
	y := m + s.rng.Float64()*(s.height-m*2)
	size := s.cfg.CropSizeMin + s.rng.Float64()*s.cfg.CropSizeSpan
	phase := s.rng.Float64() * math.Pi * 2
	return s.SpawnAt(variant, x, y, size, phase)
}

// SpawnAt 在指定位置生成作物（不使用随机源）
func (s *CropFieldSystem) SpawnAt(variant *config.CropVariant, x, y, size, bobPhase float64) ecs.EntityID {
	id := s.EntityManager.CreateEntity()
	s.EntityManager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	s.EntityManager.AddComponent(id, &components.CropComponent{
		Variant:  variant,
		Size:     size,
		BobPhase: bobPhase,
	})
	return id
}

// QueryAt 返回 (x, y) 处命中的第一株作物
// 命中条件：与作物中心的距离严格小于 size * HitRadiusScale
func (s *CropFieldSystem) QueryAt(x, y float64) (ecs.EntityID, bool) {
	for _, id := range s.Crops() {
		crop, ok := ecs.GetComponent[*components.CropComponent](s.EntityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
		if !ok {
			continue
		}
		if math.Hypot(x-pos.X, y-pos.Y) < s.HitRadius(crop) {
			return id, true
		}
	}
	return 0, false
}

// Remove 立即移除作物；id 不是存活的作物时返回 false
func (s *CropFieldSystem) Remove(id ecs.EntityID) bool {
	if !ecs.HasComponent[*components.CropComponent](s.EntityManager, id) {
		return false
	}
	return s.EntityManager.RemoveEntity(id)
}

// ResetAll 清空田地（作物、粒子、揭示动画）并重新生成目标数量的作物，
// 同时清零分数和连击、取消悬停
func (s *CropFieldSystem) ResetAll(gs *game.GameState) {
	s.EntityManager.Clear()
	for i := 0; i < s.cfg.TargetPopulation; i++ {
		s.Spawn()
	}
	gs.ResetCounters()
	gs.HoveredCrop = 0
	log.Printf("[CropFieldSystem] Field reset: spawned %d crops", s.cfg.TargetPopulation)
}

// Crops 按创建顺序返回所有作物
func (s *CropFieldSystem) Crops() []ecs.EntityID {
	return ecs.GetEntitiesWith2[*components.CropComponent, *components.PositionComponent](s.EntityManager)
}

// Count 返回存活作物数量
func (s *CropFieldSystem) Count() int {
	return len(s.Crops())
}

// TargetPopulation 返回目标作物数量
func (s *CropFieldSystem) TargetPopulation() int {
	return s.cfg.TargetPopulation
}

// RespawnDelay 返回收获后补种的延迟（毫秒）
func (s *CropFieldSystem) RespawnDelay() float64 {
	return s.cfg.RespawnDelayMs
}

// HitRadius 返回作物的命中半径
func (s *CropFieldSystem) HitRadius(crop *components.CropComponent) float64 {
	return crop.Size * s.cfg.HitRadiusScale
}

// BobOffset 返回作物在 now（毫秒）时的纵向摆动偏移
func (s *CropFieldSystem) BobOffset(crop *components.CropComponent, now float64) float64 {
	return math.Sin(now/s.cfg.BobPeriodMs+crop.BobPhase) * s.cfg.BobAmplitude
}
