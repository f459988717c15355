// verify_harvest 无窗口运行收获模拟并检查作物数量不变式
//
// 用法：
//
//	go run ./cmd/verify_harvest --harvests 50 --interval 300 --seed 7
//
// 每次收获后检查 作物数量 + 待补种数量 == 目标数量，
// 最后等待所有延迟结束，要求作物数量回到目标值、粒子和揭示动画全部清空。
// --draw-every N 每 N 帧才呈现一次，模拟刷新率低于 TPS 的显示器。
// 任一检查失败时以非零状态退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/game"
	"github.com/decker502/harvest/pkg/scenes"
	"github.com/decker502/harvest/pkg/systems"
	"github.com/decker502/harvest/pkg/utils"
)

// tickMs 模拟的帧间隔（毫秒）
const tickMs = 16.0

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	harvests  = flag.Int("harvests", 20, "收获次数")
	interval  = flag.Float64("interval", 300, "两次收获之间的间隔（毫秒）")
	seed      = flag.Int64("seed", 1, "随机种子")
	configDir = flag.String("config", "data", "YAML 配置目录")
	resets    = flag.Int("reset-every", 0, "每 N 次收获重置一次田地（0 表示不重置）")
	drawEvery = flag.Int("draw-every", 1, "每 N 帧呈现一次（大于 1 时模拟刷新率低于 TPS 的显示器）")
)

// harness 驱动 GameScene 的无头运行环境
type harness struct {
	scene  *scenes.GameScene
	clock  *game.ManualClock
	input  *utils.ScriptedInput
	rng    *rand.Rand
	target int
	errors int
	frames int
}

func newHarness() (*harness, error) {
	catalog, err := config.LoadCropCatalog(filepath.Join(*configDir, "crops.yaml"))
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadHarvestConfig(filepath.Join(*configDir, "harvest.yaml"))
	if err != nil {
		return nil, err
	}

	h := &harness{
		clock:  game.NewManualClock(0),
		input:  &utils.ScriptedInput{},
		rng:    rand.New(rand.NewSource(*seed)),
		target: cfg.Field.TargetPopulation,
	}
	h.scene = scenes.NewGameScene(scenes.GameSceneDeps{
		Clock:   h.clock,
		Input:   h.input,
		Catalog: catalog,
		Config:  cfg,
		Rand:    rand.New(rand.NewSource(*seed)),
	})
	return h, nil
}

// step 推进 ms 毫秒（按帧间隔逐帧执行）
func (h *harness) step(ms float64) error {
	for elapsed := 0.0; elapsed < ms; elapsed += tickMs {
		h.clock.Advance(tickMs)
		if err := h.scene.Update(tickMs / 1000); err != nil {
			return err
		}
		h.frames++
		if h.frames%*drawEvery == 0 {
			h.scene.MarkFrameDrawn()
		}
		h.checkPopulation()
	}
	return nil
}

// checkPopulation 检查 作物数量 + 待补种数量 == 目标数量
func (h *harness) checkPopulation() {
	crops := h.scene.Field().Count()
	pending := h.scene.PendingTasks(systems.TaskRespawn)
	if crops+pending != h.target {
		h.errors++
		fmt.Printf("  ✗ t=%.0fms population %d + pending %d != %d\n", h.clock.Now(), crops, pending, h.target)
	}
}

// harvestRandom 点击一株随机作物的中心
func (h *harness) harvestRandom() error {
	crops := h.scene.Field().Crops()
	if len(crops) == 0 {
		return h.step(tickMs)
	}
	id := crops[h.rng.Intn(len(crops))]
	x, y, ok := h.scene.CropPosition(id)
	if !ok {
		return fmt.Errorf("crop %d has no position", id)
	}
	h.input.Click(x, y)
	return h.step(tickMs)
}

func (h *harness) run() error {
	// 第一次点击只关闭开场遮罩
	h.input.Click(1, 1)
	if err := h.step(tickMs); err != nil {
		return err
	}

	for i := 1; i <= *harvests; i++ {
		if err := h.harvestRandom(); err != nil {
			return err
		}
		if *resets > 0 && i%*resets == 0 {
			h.input.Push(utils.InputEvent{Kind: utils.InputReset})
			if err := h.step(tickMs); err != nil {
				return err
			}
			log.Printf("[verify] reset after harvest %d", i)
		}
		if err := h.step(*interval); err != nil {
			return err
		}
	}

	// 等待补种、揭示动画和粒子全部结束
	return h.step(2000)
}

func main() {
	flag.Parse()
	if *drawEvery < 1 {
		fmt.Fprintln(os.Stderr, "--draw-every must be >= 1")
		os.Exit(2)
	}

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	h, err := newHarness()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up simulation: %v\n", err)
		os.Exit(2)
	}
	if err := h.run(); err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		os.Exit(2)
	}

	stats := h.scene.Snapshot()
	fmt.Println("=== Harvest verification ===")
	fmt.Printf("  simulated:   %.0f ms\n", h.clock.Now())
	fmt.Printf("  population:  %d (target %d)\n", h.scene.Field().Count(), h.target)
	fmt.Printf("  harvested:   %d\n", stats.Harvested)
	fmt.Printf("  combo:       %d\n", stats.Combo)
	fmt.Printf("  particles:   %d\n", h.scene.ParticleCount())
	fmt.Printf("  reveals:     %d\n", h.scene.RevealCount())

	if h.scene.Field().Count() != h.target {
		h.errors++
		fmt.Println("  ✗ population did not return to target")
	}
	if h.scene.ParticleCount() != 0 || h.scene.RevealCount() != 0 {
		h.errors++
		fmt.Println("  ✗ effects still alive after all lifetimes elapsed")
	}

	if h.errors > 0 {
		fmt.Printf("FAILED: %d violation(s)\n", h.errors)
		os.Exit(1)
	}
	fmt.Println("OK")
}
