package game

import (
	"math"

	"github.com/decker502/harvest/pkg/ecs"
)

// Toast 短暂显示的提示消息
type Toast struct {
	Text       string
	Visible    bool
	Generation uint64 // 每次显示递增，过期的隐藏任务据此忽略
}

// Stats 供 HUD 显示的只读快照
type Stats struct {
	Harvested int
	Combo     int
}

// GameState 一局游戏的全部可变状态
//
// 由 GameScene 独占持有并显式传给各个系统，不是全局单例。
// 作物、粒子、揭示动画都存放在 EntityManager 中。
type GameState struct {
	EntityManager *ecs.EntityManager

	Harvested       int          // 累计收获分数
	Combo           int          // 当前连击数
	LastHarvestTime float64      // 上次收获时间（毫秒），初始为 -Inf
	HoveredCrop     ecs.EntityID // 当前悬停的作物，0 表示无
	ShowSplash      bool         // 开场遮罩是否仍在显示

	Toast Toast
}

// NewGameState 创建初始状态（显示开场遮罩，尚未收获）
func NewGameState() *GameState {
	return &GameState{
		EntityManager:   ecs.NewEntityManager(),
		LastHarvestTime: math.Inf(-1),
		ShowSplash:      true,
	}
}

// Snapshot 返回计数器快照
func (gs *GameState) Snapshot() Stats {
	return Stats{Harvested: gs.Harvested, Combo: gs.Combo}
}

// GetHarvested 返回累计收获分数
func (gs *GameState) GetHarvested() int {
	return gs.Harvested
}

// GetCombo 返回当前连击数
func (gs *GameState) GetCombo() int {
	return gs.Combo
}

// ResetCounters 分数和连击归零
// 上次收获时间保持不变：重置后立即收获仍按真实间隔判断连击
func (gs *GameState) ResetCounters() {
	gs.Harvested = 0
	gs.Combo = 0
}

// ShowToast 显示提示消息并返回本次显示的代号
func (gs *GameState) ShowToast(text string) uint64 {
	gs.Toast.Generation++
	gs.Toast.Text = text
	gs.Toast.Visible = true
	return gs.Toast.Generation
}

// HideToast 隐藏指定代号的提示；更新的提示不会被旧的计时器隐藏
func (gs *GameState) HideToast(generation uint64) {
	if gs.Toast.Generation == generation {
		gs.Toast.Visible = false
	}
}

// DismissSplash 关闭开场遮罩，只在第一次调用时返回 true
func (gs *GameState) DismissSplash() bool {
	if !gs.ShowSplash {
		return false
	}
	gs.ShowSplash = false
	return true
}
