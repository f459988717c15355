package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/decker502/harvest/pkg/utils"
	"gopkg.in/yaml.v3"
)

// HarvestConfig 收获玩法调参配置（data/harvest.yaml）
// 时间单位统一为毫秒；粒子参数以"帧(tick)"为单位
type HarvestConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Combo     ComboConfig    `yaml:"combo"`
	Particles ParticleConfig `yaml:"particles"`
	Reveal    RevealConfig   `yaml:"reveal"`
	Audio     AudioConfig    `yaml:"audio"`
	Toast     ToastConfig    `yaml:"toast"`
}

// FieldConfig 田地与作物生成参数
type FieldConfig struct {
	TargetPopulation int     `yaml:"targetPopulation"` // 目标作物数量
	Margin           float64 `yaml:"margin"`           // 生成区域边距
	CropSizeMin      float64 `yaml:"cropSizeMin"`      // 作物尺寸下限
	CropSizeSpan     float64 `yaml:"cropSizeSpan"`     // 作物尺寸随机范围
	HitRadiusScale   float64 `yaml:"hitRadiusScale"`   // 命中半径 = size * scale
	RespawnDelayMs   float64 `yaml:"respawnDelayMs"`   // 收获后补种延迟
	BobPeriodMs      float64 `yaml:"bobPeriodMs"`      // 摆动角频率分母 sin(t/period + phase)
	BobAmplitude     float64 `yaml:"bobAmplitude"`     // 摆动幅度
}

// ComboConfig 连击规则
type ComboConfig struct {
	WindowMs    float64 `yaml:"windowMs"`    // 连击时间窗
	Max         int     `yaml:"max"`         // 连击上限（饱和）
	GoldenBonus int     `yaml:"goldenBonus"` // 金色品种额外分
}

// BurstProfile 一次粒子爆发的参数
//
//	vx = (rand - 0.5) * SpreadX
//	vy = (rand - UpwardBias) * SpreadY
//	life = LifeMin + rand * LifeSpan
type BurstProfile struct {
	Count      int     `yaml:"count"`
	SpreadX    float64 `yaml:"spreadX"`
	SpreadY    float64 `yaml:"spreadY"`
	UpwardBias float64 `yaml:"upwardBias"`
	LifeMin    float64 `yaml:"lifeMin"`
	LifeSpan   float64 `yaml:"lifeSpan"`
	OffsetY    float64 `yaml:"offsetY"`         // 相对作物中心的纵向偏移（乘以作物尺寸）
	Color      string  `yaml:"color,omitempty"` // 固定颜色（为空时使用品种颜色）
	Alpha      float64 `yaml:"alpha,omitempty"` // 固定颜色的透明度

	ParsedColor color.NRGBA `yaml:"-"`
}

// ParticleConfig 粒子系统参数
type ParticleConfig struct {
	Gravity      float64      `yaml:"gravity"`      // 每帧竖直速度增量
	FadeLifetime float64      `yaml:"fadeLifetime"` // 透明度 = life / FadeLifetime
	Radius       float64      `yaml:"radius"`       // 绘制半径
	Sparkle      BurstProfile `yaml:"sparkle"`
	Dirt         BurstProfile `yaml:"dirt"`
}

// RevealConfig 揭示动画参数
type RevealConfig struct {
	DurationMs float64 `yaml:"durationMs"`
	BaseSize   float64 `yaml:"baseSize"`
	OffsetY    float64 `yaml:"offsetY"` // 锚点相对作物中心的纵向偏移（乘以作物尺寸）
}

// AudioConfig 音频相关时序
type AudioConfig struct {
	RevealCueDelayMs float64 `yaml:"revealCueDelayMs"`
	MusicVolume      float64 `yaml:"musicVolume"`
	HarvestVolume    float64 `yaml:"harvestVolume"`
	RevealVolume     float64 `yaml:"revealVolume"`
}

// ToastConfig 提示消息
type ToastConfig struct {
	DurationMs float64 `yaml:"durationMs"`
}

// DefaultHarvestConfig 返回默认调参
func DefaultHarvestConfig() *HarvestConfig {
	cfg := &HarvestConfig{
		Field: FieldConfig{
			TargetPopulation: 18,
			Margin:           80,
			CropSizeMin:      26,
			CropSizeSpan:     6,
			HitRadiusScale:   1.6,
			RespawnDelayMs:   500,
			BobPeriodMs:      500,
			BobAmplitude:     2,
		},
		Combo: ComboConfig{
			WindowMs:    1500,
			Max:         9,
			GoldenBonus: 2,
		},
		Particles: ParticleConfig{
			Gravity:      0.08,
			FadeLifetime: 60,
			Radius:       3,
			Sparkle: BurstProfile{
				Count: 12, SpreadX: 4, SpreadY: 4, UpwardBias: 0.8,
				LifeMin: 40, LifeSpan: 20, OffsetY: -0.2,
			},
			Dirt: BurstProfile{
				Count: 16, SpreadX: 5, SpreadY: 5, UpwardBias: 0.8,
				LifeMin: 45, LifeSpan: 20, OffsetY: 0.8,
				Color: "#8d5637", Alpha: 0.9,
			},
		},
		Reveal: RevealConfig{
			DurationMs: 650,
			BaseSize:   72,
			OffsetY:    -0.2,
		},
		Audio: AudioConfig{
			RevealCueDelayMs: 120,
			MusicVolume:      0.35,
			HarvestVolume:    0.6,
			RevealVolume:     0.7,
		},
		Toast: ToastConfig{
			DurationMs: 1100,
		},
	}
	// 默认值一定合法
	if err := validateHarvestConfig(cfg); err != nil {
		panic(err)
	}
	return cfg
}

// LoadHarvestConfig 从 YAML 文件加载调参配置
func LoadHarvestConfig(filePath string) (*HarvestConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read harvest config file: %w", err)
	}
	return ParseHarvestConfig(data)
}

// ParseHarvestConfig 解析调参 YAML
// 文件中未出现的字段保持默认值
func ParseHarvestConfig(data []byte) (*HarvestConfig, error) {
	cfg := DefaultHarvestConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse harvest config YAML: %w", err)
	}

	if err := validateHarvestConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid harvest config: %w", err)
	}

	return cfg, nil
}

// validateHarvestConfig 验证配置的有效性并解析颜色
func validateHarvestConfig(cfg *HarvestConfig) error {
	if cfg.Field.TargetPopulation < 0 {
		return fmt.Errorf("field.targetPopulation must be >= 0, got %d", cfg.Field.TargetPopulation)
	}
	if cfg.Field.Margin < 0 {
		return fmt.Errorf("field.margin must be >= 0, got %.1f", cfg.Field.Margin)
	}
	// 田地较短的一边留给作物的跨度必须为正
	if short := float64(min(GameWindowWidth, GameWindowHeight)); cfg.Field.Margin*2 >= short {
		return fmt.Errorf("field.margin must be < %.0f, got %.1f", short/2, cfg.Field.Margin)
	}
	if cfg.Field.CropSizeMin <= 0 {
		return fmt.Errorf("field.cropSizeMin must be > 0, got %.1f", cfg.Field.CropSizeMin)
	}
	if cfg.Field.HitRadiusScale <= 0 {
		return fmt.Errorf("field.hitRadiusScale must be > 0, got %.2f", cfg.Field.HitRadiusScale)
	}
	if cfg.Field.RespawnDelayMs < 0 {
		return fmt.Errorf("field.respawnDelayMs must be >= 0")
	}
	if cfg.Field.BobPeriodMs <= 0 {
		return fmt.Errorf("field.bobPeriodMs must be > 0")
	}

	if cfg.Combo.WindowMs <= 0 {
		return fmt.Errorf("combo.windowMs must be > 0, got %.1f", cfg.Combo.WindowMs)
	}
	if cfg.Combo.Max < 0 {
		return fmt.Errorf("combo.max must be >= 0, got %d", cfg.Combo.Max)
	}

	if cfg.Particles.FadeLifetime <= 0 {
		return fmt.Errorf("particles.fadeLifetime must be > 0")
	}
	for name, p := range map[string]*BurstProfile{"sparkle": &cfg.Particles.Sparkle, "dirt": &cfg.Particles.Dirt} {
		if p.Count < 0 {
			return fmt.Errorf("particles.%s.count must be >= 0, got %d", name, p.Count)
		}
		if p.LifeMin <= 0 {
			return fmt.Errorf("particles.%s.lifeMin must be > 0", name)
		}
		if p.Color != "" {
			c, err := utils.ParseHexColor(p.Color)
			if err != nil {
				return fmt.Errorf("particles.%s: %w", name, err)
			}
			alpha := p.Alpha
			if alpha == 0 {
				alpha = 1
			}
			p.ParsedColor = utils.WithAlpha(c, alpha)
		}
	}

	if cfg.Reveal.DurationMs <= 0 {
		return fmt.Errorf("reveal.durationMs must be > 0, got %.1f", cfg.Reveal.DurationMs)
	}
	if cfg.Reveal.BaseSize <= 0 {
		return fmt.Errorf("reveal.baseSize must be > 0")
	}
	if cfg.Audio.RevealCueDelayMs < 0 {
		return fmt.Errorf("audio.revealCueDelayMs must be >= 0")
	}
	if cfg.Toast.DurationMs <= 0 {
		return fmt.Errorf("toast.durationMs must be > 0")
	}

	return nil
}
