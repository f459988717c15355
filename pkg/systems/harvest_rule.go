package systems

import (
	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/game"
)

// HarvestResult 一次收获的计分结果
type HarvestResult struct {
	Variant *config.CropVariant
	Points  int // 本次得分
	Combo   int // 收获后的连击数
}

// HarvestRule 收获计分与连击规则
//
//	combo  = 距上次收获 < 时间窗 ? min(combo+1, 上限) : 0
//	points = value + (golden ? 金色奖励 : 0)
//
// 连击数只用于显示，不参与计分。
type HarvestRule struct {
	windowMs    float64
	maxCombo    int
	goldenBonus int
}

// NewHarvestRule 根据连击配置创建规则
func NewHarvestRule(cfg config.ComboConfig) *HarvestRule {
	return &HarvestRule{
		windowMs:    cfg.WindowMs,
		maxCombo:    cfg.Max,
		goldenBonus: cfg.GoldenBonus,
	}
}

// Points 返回品种的收获得分
func (r *HarvestRule) Points(variant *config.CropVariant) int {
	points := variant.Value
	if variant.Golden {
		points += r.goldenBonus
	}
	return points
}

// Apply 在 now（毫秒）时收获一个 variant，更新 GameState 的分数、连击和上次收获时间
func (r *HarvestRule) Apply(gs *game.GameState, variant *config.CropVariant, now float64) HarvestResult {
	sinceLast := now - gs.LastHarvestTime
	gs.LastHarvestTime = now

	if sinceLast < r.windowMs {
		gs.Combo++
		if gs.Combo > r.maxCombo {
			gs.Combo = r.maxCombo
		}
	} else {
		gs.Combo = 0
	}

	points := r.Points(variant)
	gs.Harvested += points

	return HarvestResult{
		Variant: variant,
		Points:  points,
		Combo:   gs.Combo,
	}
}
