// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputKind 输入事件类型
type InputKind int

const (
	// InputPointerMove 指针移动（鼠标移动或触摸按下位置）
	InputPointerMove InputKind = iota
	// InputPointerLeave 指针离开画面（或触摸结束）
	InputPointerLeave
	// InputPointerDown 点击/触摸按下
	InputPointerDown
	// InputReset 快捷键：重置田地
	InputReset
	// InputToggleSound 快捷键：切换音效
	InputToggleSound
	// InputToggleMusic 快捷键：切换音乐
	InputToggleMusic
	// InputToggleFullscreen 快捷键：切换全屏
	InputToggleFullscreen
)

// InputEvent 一个输入事件，坐标为逻辑画面坐标
type InputEvent struct {
	Kind InputKind
	X, Y float64
}

// InputSource 每帧提供一批输入事件（按发生顺序）
type InputSource interface {
	Poll() []InputEvent
}

// EbitenInputSource 从 Ebitengine 读取鼠标、触摸和键盘输入
// 同时支持鼠标点击和触摸输入，优先检测触摸
type EbitenInputSource struct {
	width, height int // 逻辑画面尺寸，超出范围视为离开

	lastX, lastY int
	inside       bool
	touching     bool
}

// NewEbitenInputSource 创建输入源
func NewEbitenInputSource(width, height int) *EbitenInputSource {
	return &EbitenInputSource{width: width, height: height, lastX: -1, lastY: -1}
}

// Poll 读取本帧的输入事件
func (s *EbitenInputSource) Poll() []InputEvent {
	var events []InputEvent

	// 首先检查触摸输入（移动设备）
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		s.touching = true
		events = append(events,
			InputEvent{Kind: InputPointerMove, X: float64(x), Y: float64(y)},
			InputEvent{Kind: InputPointerDown, X: float64(x), Y: float64(y)},
		)
	} else if s.touching && len(ebiten.AppendTouchIDs(nil)) == 0 {
		// 触摸设备没有悬停，抬起即离开
		s.touching = false
		s.inside = false
		events = append(events, InputEvent{Kind: InputPointerLeave})
	}

	if !s.touching {
		events = s.pollMouse(events)
	}

	keys := []struct {
		key  ebiten.Key
		kind InputKind
	}{
		{ebiten.KeyR, InputReset},
		{ebiten.KeyS, InputToggleSound},
		{ebiten.KeyM, InputToggleMusic},
		{ebiten.KeyF11, InputToggleFullscreen},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			events = append(events, InputEvent{Kind: k.kind})
		}
	}
	return events
}

// pollMouse 检查鼠标位置变化和左键按下
func (s *EbitenInputSource) pollMouse(events []InputEvent) []InputEvent {
	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < s.width && y < s.height

	switch {
	case inside && (x != s.lastX || y != s.lastY || !s.inside):
		events = append(events, InputEvent{Kind: InputPointerMove, X: float64(x), Y: float64(y)})
	case !inside && s.inside:
		events = append(events, InputEvent{Kind: InputPointerLeave})
	}
	s.lastX, s.lastY = x, y
	s.inside = inside

	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, InputEvent{Kind: InputPointerDown, X: float64(x), Y: float64(y)})
	}
	return events
}

// ScriptedInput 预先写好的输入序列（测试和无头工具使用）
type ScriptedInput struct {
	queue []InputEvent
}

// Push 追加事件，下一次 Poll 时全部返回
func (s *ScriptedInput) Push(events ...InputEvent) {
	s.queue = append(s.queue, events...)
}

// Click 追加一次移动+按下
func (s *ScriptedInput) Click(x, y float64) {
	s.Push(
		InputEvent{Kind: InputPointerMove, X: x, Y: y},
		InputEvent{Kind: InputPointerDown, X: x, Y: y},
	)
}

// Poll 返回并清空已排队的事件
func (s *ScriptedInput) Poll() []InputEvent {
	events := s.queue
	s.queue = nil
	return events
}
