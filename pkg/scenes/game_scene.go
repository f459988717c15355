// Package scenes 包含游戏场景
//
// GameScene 是收获小游戏的主循环：Update 推进一帧的模拟，
// Draw 只负责绘制当前帧。
package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/harvest/pkg/components"
	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/ecs"
	"github.com/decker502/harvest/pkg/game"
	"github.com/decker502/harvest/pkg/systems"
	"github.com/decker502/harvest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 提示消息文字
const (
	ToastIntro = "Click crops to pull them up!"
	ToastReset = "Fresh soil, fresh crops!"
)

var (
	_ game.Scene           = (*GameScene)(nil)
	_ systems.InputActions = (*GameScene)(nil)
)

// GameSceneDeps 创建 GameScene 所需的依赖
//
// 除 Catalog 和 Config 外都可以为空：
//   - Clock 为空时使用 SystemClock
//   - Input 为空时使用 Ebitengine 的鼠标/触摸/键盘输入
//   - Images 为空时全部使用程序化图形
//   - Audio 为空时创建一个无声的 AudioManager
//   - Platform 为空时使用 NoopPlatform
//   - Rand 为空时使用以当前时间为种子的随机源
type GameSceneDeps struct {
	Clock    game.Clock
	Input    utils.InputSource
	Catalog  *config.CropCatalog
	Config   *config.HarvestConfig
	Images   systems.ImageProvider
	Fonts    *utils.FontCache
	Audio    *game.AudioManager
	Platform *game.PlatformBridge
	Rand     *rand.Rand

	// OnToggleFullscreen 切换全屏（由 App 提供，无窗口时为空）
	OnToggleFullscreen func()
}

// GameScene represents the harvest field.
// It owns the GameState and every system that reads or mutates it; nothing
// outside the scene touches the field directly.
type GameScene struct {
	clock     game.Clock
	gameState *game.GameState
	cfg       *config.HarvestConfig
	images    systems.ImageProvider

	// ECS systems
	scheduler       *systems.TaskScheduler
	fieldSystem     *systems.CropFieldSystem
	particleSystem  *systems.ParticleSystem
	revealSystem    *systems.RevealSystem
	harvestRule     *systems.HarvestRule
	inputSystem     *systems.InputSystem
	renderSystem    *systems.RenderSystem
	hudRenderSystem *systems.HUDRenderSystem

	audioManager *game.AudioManager
	platform     *game.PlatformBridge

	onToggleFullscreen func()

	// frameTime 本帧的模拟时间（毫秒），Draw 使用同一个值
	frameTime float64
	// lastDrawnTime 最近一次 Draw 使用的模拟时间
	// Ebitengine 可能连续调用多次 Update 而不绘制，揭示动画按它来移除
	lastDrawnTime float64
}

// NewGameScene 创建收获场景并播种田地
func NewGameScene(deps GameSceneDeps) *GameScene {
	clock := deps.Clock
	if clock == nil {
		clock = game.NewSystemClock()
	}
	input := deps.Input
	if input == nil {
		input = utils.NewEbitenInputSource(config.GameWindowWidth, config.GameWindowHeight)
	}
	images := deps.Images
	if images == nil {
		images = noImages{}
	}
	audioManager := deps.Audio
	if audioManager == nil {
		audioManager = game.NewAudioManager(nil, deps.Config.Audio)
	}
	platform := deps.Platform
	if platform == nil {
		platform = game.NewPlatformBridge(nil)
	}
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	gs := game.NewGameState()
	em := gs.EntityManager
	w, h := float64(config.GameWindowWidth), float64(config.GameWindowHeight)

	s := &GameScene{
		clock:              clock,
		gameState:          gs,
		cfg:                deps.Config,
		images:             images,
		scheduler:          systems.NewTaskScheduler(),
		fieldSystem:        systems.NewCropFieldSystem(em, deps.Catalog, deps.Config.Field, w, h, rng),
		particleSystem:     systems.NewParticleSystem(em, deps.Config.Particles, rng),
		revealSystem:       systems.NewRevealSystem(em, deps.Config.Reveal),
		harvestRule:        systems.NewHarvestRule(deps.Config.Combo),
		audioManager:       audioManager,
		platform:           platform,
		onToggleFullscreen: deps.OnToggleFullscreen,
		frameTime:          clock.Now(),
	}
	s.lastDrawnTime = s.frameTime
	s.inputSystem = systems.NewInputSystem(input, gs, s.fieldSystem, config.HUDButtons)
	s.renderSystem = systems.NewRenderSystem(em, s.fieldSystem, s.particleSystem, images, deps.Fonts)
	s.hudRenderSystem = systems.NewHUDRenderSystem(deps.Fonts, audioManager, config.HUDButtons)

	s.fieldSystem.ResetAll(gs)
	log.Printf("[GameScene] Field ready: %d crops, %d variants", s.fieldSystem.Count(), len(deps.Catalog.Variants))
	return s
}

// Update 推进一帧
//
// 顺序：
//  1. 移除在最近一次绘制时已经结束的揭示动画
//  2. 粒子前进一个 tick
//  3. 应用平台音频许可变化
//  4. 执行到期的延迟任务（补种、揭示音效、隐藏提示）
//  5. 处理输入
func (s *GameScene) Update(deltaTime float64) error {
	s.revealSystem.PruneExpired(s.lastDrawnTime)
	s.particleSystem.Tick()
	s.platform.DrainAudioChanges(s.audioManager.ApplyPlatformAudioState)

	s.frameTime = s.clock.Now()
	s.scheduler.RunDue(s.frameTime)
	s.inputSystem.Update(s)
	return nil
}

// Draw 绘制当前帧：田地、作物、揭示动画、粒子，然后是 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.gameState, s.frameTime)
	s.hudRenderSystem.Draw(screen, s.gameState)
	s.MarkFrameDrawn()
}

// MarkFrameDrawn 记录当前帧已经呈现
// Draw 会调用它；无窗口运行时由驱动方在模拟的每次呈现后调用
func (s *GameScene) MarkFrameDrawn() {
	s.lastDrawnTime = s.frameTime
	s.platform.SignalFirstFrame()
}

// Harvest 收获一株作物
//
// 同一事件内依次：计分、泥土与闪光粒子、揭示动画、提示和收获音效、移除作物，
// 然后安排揭示音效和补种两个延迟任务。id 已不存在时什么也不做。
func (s *GameScene) Harvest(id ecs.EntityID) {
	em := s.gameState.EntityManager
	crop, ok := ecs.GetComponent[*components.CropComponent](em, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return
	}
	x, y := pos.X, pos.Y
	now := s.frameTime

	result := s.harvestRule.Apply(s.gameState, crop.Variant, now)
	s.particleSystem.BurstDirt(x, y, crop.Size)
	s.particleSystem.BurstSparkle(x, y, crop.Size, crop.Variant)
	s.revealSystem.Start(x, y, crop.Size, crop.Variant, s.images.ImageByID(crop.Variant.ID.String()).Image, now)
	s.showToast(fmt.Sprintf("%s +%d", crop.Variant.Name, result.Points))
	s.audioManager.PlayEffect(game.SoundHarvest)

	if s.gameState.HoveredCrop == id {
		s.gameState.HoveredCrop = 0
	}
	s.fieldSystem.Remove(id)

	s.scheduler.After(now, s.cfg.Audio.RevealCueDelayMs, systems.TaskRevealCue, func() {
		s.audioManager.PlayEffect(game.SoundReveal)
	})
	s.scheduler.After(now, s.fieldSystem.RespawnDelay(), systems.TaskRespawn, func() {
		s.fieldSystem.Spawn()
	})
}

// ResetField 重新播种田地并清零计分
// 尚未执行的补种任务被取消，重置后作物数量正好等于目标数量
func (s *GameScene) ResetField() {
	cancelled := s.scheduler.CancelKind(systems.TaskRespawn)
	s.fieldSystem.ResetAll(s.gameState)
	s.showToast(ToastReset)
	log.Printf("[GameScene] Field reset (cancelled %d pending respawns)", cancelled)
}

// ResetAll 供宿主调用的重置入口
func (s *GameScene) ResetAll() {
	s.ResetField()
}

// DismissSplash 关闭开场遮罩：初始化音频、显示引导提示、通知平台可交互
func (s *GameScene) DismissSplash() {
	if !s.gameState.DismissSplash() {
		return
	}
	s.EnsureAudio()
	s.showToast(ToastIntro)
	s.platform.SignalGameReady()
	log.Printf("[GameScene] Splash dismissed")
}

// EnsureAudio 首次交互时初始化音频
func (s *GameScene) EnsureAudio() {
	s.audioManager.EnsureReady()
}

// ToggleSound 切换音效开关
func (s *GameScene) ToggleSound() {
	enabled := s.audioManager.ToggleSound()
	log.Printf("[GameScene] Sound enabled: %v", enabled)
}

// ToggleMusic 切换音乐开关
func (s *GameScene) ToggleMusic() {
	enabled := s.audioManager.ToggleMusic()
	log.Printf("[GameScene] Music enabled: %v", enabled)
}

// ToggleFullscreen 切换全屏
func (s *GameScene) ToggleFullscreen() {
	if s.onToggleFullscreen != nil {
		s.onToggleFullscreen()
	}
}

// showToast 显示提示并安排在配置的时长后隐藏
func (s *GameScene) showToast(text string) {
	gen := s.gameState.ShowToast(text)
	s.scheduler.After(s.frameTime, s.cfg.Toast.DurationMs, systems.TaskHideToast, func() {
		s.gameState.HideToast(gen)
	})
}

// Snapshot 返回计分快照（供 HUD 或宿主读取）
func (s *GameScene) Snapshot() game.Stats {
	return s.gameState.Snapshot()
}

// Harvested 返回累计收获分数
func (s *GameScene) Harvested() int {
	return s.gameState.GetHarvested()
}

// Combo 返回当前连击数
func (s *GameScene) Combo() int {
	return s.gameState.GetCombo()
}

// GameState 返回场景持有的状态
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// Field 返回田地系统
func (s *GameScene) Field() *systems.CropFieldSystem {
	return s.fieldSystem
}

// CropPosition 返回作物中心位置
func (s *GameScene) CropPosition(id ecs.EntityID) (float64, float64, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.gameState.EntityManager, id)
	if !ok || !ecs.HasComponent[*components.CropComponent](s.gameState.EntityManager, id) {
		return 0, 0, false
	}
	return pos.X, pos.Y, true
}

// ParticleCount 返回存活粒子数量
func (s *GameScene) ParticleCount() int {
	return s.particleSystem.Count()
}

// RevealCount 返回进行中的揭示动画数量
func (s *GameScene) RevealCount() int {
	return s.revealSystem.Count()
}

// PendingTasks 返回指定类型的待执行任务数量
func (s *GameScene) PendingTasks(kind systems.TaskKind) int {
	return s.scheduler.Pending(kind)
}

// FrameTime 返回本帧的模拟时间（毫秒）
func (s *GameScene) FrameTime() float64 {
	return s.frameTime
}

// noImages 没有资源时的图片来源，所有句柄都未就绪
type noImages struct{}

func (noImages) ImageByID(id string) *game.ImageHandle {
	return &game.ImageHandle{ID: id}
}
