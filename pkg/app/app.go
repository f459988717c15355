// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/embedded"
	"github.com/decker502/harvest/pkg/game"
	"github.com/decker502/harvest/pkg/scenes"
	"github.com/decker502/harvest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Playable 模拟可玩广告容器（平台信号写入日志）
	Playable bool
	// Muted 启动时关闭音效和音乐
	Muted bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// ConfigDir 从该目录读取 YAML 配置，为空时使用嵌入的 data/
	ConfigDir string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	catalog, harvestCfg, resourceCfg, err := loadConfigs(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded %d crop variants (total weight %d)", len(catalog.Variants), catalog.TotalWeight())

	// 初始化音频上下文和资源管理器
	resourceManager := game.NewResourceManager(audio.NewContext(SampleRate))
	resourceManager.SetResourceConfig(resourceCfg)
	resourceManager.PreloadImages()

	fonts, err := utils.NewDefaultFontCache()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	audioManager := game.NewAudioManager(resourceManager, harvestCfg.Audio)
	if cfg.Muted {
		audioManager.SetEnabled(false, false)
		log.Printf("[App] Starting muted")
	}

	var sdk game.PlatformSDK
	if cfg.Playable {
		sdk = game.NewLoggingPlatform(true)
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
		log.Printf("[App] Using seed %d", cfg.Seed)
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
	}

	scene := scenes.NewGameScene(scenes.GameSceneDeps{
		Catalog:            catalog,
		Config:             harvestCfg,
		Images:             resourceManager,
		Fonts:              fonts,
		Audio:              audioManager,
		Platform:           game.NewPlatformBridge(sdk),
		Rand:               rng,
		OnToggleFullscreen: a.toggleFullscreen,
	})
	a.sceneManager.SwitchTo(scene)

	return a, nil
}

// loadConfigs 读取作物目录、调参和资源映射
func loadConfigs(cfg Config) (*config.CropCatalog, *config.HarvestConfig, *game.ResourceConfig, error) {
	read := func(name string) ([]byte, error) {
		if cfg.ConfigDir != "" {
			return os.ReadFile(filepath.Join(cfg.ConfigDir, name))
		}
		return embedded.ReadFile("data/" + name)
	}

	data, err := read("crops.yaml")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("作物目录读取失败: %w", err)
	}
	catalog, err := config.ParseCropCatalog(data)
	if err != nil {
		return nil, nil, nil, err
	}

	data, err = read("harvest.yaml")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("调参配置读取失败: %w", err)
	}
	harvestCfg, err := config.ParseHarvestConfig(data)
	if err != nil {
		return nil, nil, nil, err
	}

	data, err = read("resources.yaml")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("资源配置读取失败: %w", err)
	}
	resourceCfg, err := game.ParseResourceConfig(data)
	if err != nil {
		return nil, nil, nil, err
	}

	return catalog, harvestCfg, resourceCfg, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	return a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
}

// toggleFullscreen 切换全屏（F11）
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
