package systems

import (
	"log"

	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/ecs"
	"github.com/decker502/harvest/pkg/game"
	"github.com/decker502/harvest/pkg/utils"
)

// InputActions 输入触发的游戏动作，由 GameScene 实现
type InputActions interface {
	// DismissSplash 关闭开场遮罩
	DismissSplash()
	// EnsureAudio 任意有效交互后初始化音频
	EnsureAudio()
	// Harvest 收获作物
	Harvest(id ecs.EntityID)
	// ResetField 重置田地
	ResetField()
	// ToggleSound 切换音效
	ToggleSound()
	// ToggleMusic 切换音乐
	ToggleMusic()
	// ToggleFullscreen 切换全屏
	ToggleFullscreen()
}

// InputSystem 处理指针与快捷键输入
//
// 每帧从 InputSource 取出事件并按顺序处理：
//   - 指针移动更新悬停作物（开场遮罩期间同样更新）
//   - 遮罩显示时，任意按下只会关闭遮罩
//   - 之后按下 HUD 按钮触发对应动作，按下作物则收获
//
// HUD 按钮位于田地之上：按钮矩形内的按下和悬停都不会落到下方的作物。
type InputSystem struct {
	source    utils.InputSource
	gameState *game.GameState
	field     *CropFieldSystem
	buttons   []config.HUDButtonLayout
}

// NewInputSystem 创建一个新的输入系统
func NewInputSystem(source utils.InputSource, gs *game.GameState, field *CropFieldSystem, buttons []config.HUDButtonLayout) *InputSystem {
	return &InputSystem{
		source:    source,
		gameState: gs,
		field:     field,
		buttons:   buttons,
	}
}

// Update 处理本帧的全部输入事件，返回处理的事件数量
func (s *InputSystem) Update(actions InputActions) int {
	events := s.source.Poll()
	for _, ev := range events {
		s.handle(ev, actions)
	}
	return len(events)
}

func (s *InputSystem) handle(ev utils.InputEvent, actions InputActions) {
	switch ev.Kind {
	case utils.InputPointerMove:
		s.updateHover(ev.X, ev.Y)

	case utils.InputPointerLeave:
		s.gameState.HoveredCrop = 0

	case utils.InputPointerDown:
		if s.gameState.ShowSplash {
			actions.DismissSplash()
			return
		}
		if button, ok := s.buttonAt(ev.X, ev.Y); ok {
			s.pressButton(button, actions)
			return
		}
		actions.EnsureAudio()
		if id, ok := s.field.QueryAt(ev.X, ev.Y); ok {
			actions.Harvest(id)
			// 收获后指针下方可能露出另一株作物
			s.updateHover(ev.X, ev.Y)
		}

	case utils.InputToggleFullscreen:
		actions.ToggleFullscreen()

	case utils.InputReset, utils.InputToggleSound, utils.InputToggleMusic:
		if s.gameState.ShowSplash {
			return
		}
		switch ev.Kind {
		case utils.InputReset:
			s.pressButton(config.HUDButtonReset, actions)
		case utils.InputToggleSound:
			s.pressButton(config.HUDButtonSound, actions)
		default:
			s.pressButton(config.HUDButtonMusic, actions)
		}
	}
}

// updateHover 更新悬停作物
func (s *InputSystem) updateHover(x, y float64) {
	if _, onButton := s.buttonAt(x, y); onButton {
		s.gameState.HoveredCrop = 0
		return
	}
	if id, ok := s.field.QueryAt(x, y); ok {
		s.gameState.HoveredCrop = id
		return
	}
	s.gameState.HoveredCrop = 0
}

// buttonAt 返回 (x, y) 处的 HUD 按钮
func (s *InputSystem) buttonAt(x, y float64) (config.HUDButtonID, bool) {
	for _, b := range s.buttons {
		if b.Contains(x, y) {
			return b.ID, true
		}
	}
	return 0, false
}

// pressButton 触发 HUD 按钮动作
func (s *InputSystem) pressButton(id config.HUDButtonID, actions InputActions) {
	switch id {
	case config.HUDButtonReset:
		log.Printf("[InputSystem] Reset requested")
		actions.ResetField()
	case config.HUDButtonSound:
		actions.ToggleSound()
		actions.EnsureAudio()
	case config.HUDButtonMusic:
		actions.ToggleMusic()
		actions.EnsureAudio()
	}
}
