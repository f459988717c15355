package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/harvest/pkg/app"
	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	playable  = flag.Bool("playable", false, "模拟可玩广告容器，平台信号写入日志")
	muted     = flag.Bool("muted", false, "启动时关闭音效和音乐")
	seed      = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	configDir = flag.String("config", "", "从该目录读取 YAML 配置（默认使用嵌入的 data/）")
)

func main() {
	flag.Parse()

	// data/ 来自二进制，assets/ 从工作目录读取
	embedded.Init(os.DirFS("."), dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		Playable:  *playable,
		Muted:     *muted,
		Seed:      *seed,
		ConfigDir: *configDir,
	})
	if err != nil {
		// 非 verbose 模式下日志已被丢弃
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Harvest")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
