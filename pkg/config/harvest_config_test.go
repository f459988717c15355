package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultHarvestConfig(t *testing.T) {
	cfg := DefaultHarvestConfig()

	if cfg.Field.TargetPopulation != 18 {
		t.Errorf("TargetPopulation = %d, want 18", cfg.Field.TargetPopulation)
	}
	if cfg.Combo.WindowMs != 1500 || cfg.Combo.Max != 9 {
		t.Errorf("unexpected combo config %+v", cfg.Combo)
	}
	if cfg.Reveal.DurationMs != 650 || cfg.Reveal.BaseSize != 72 {
		t.Errorf("unexpected reveal config %+v", cfg.Reveal)
	}
	// 泥土粒子颜色 rgba(141, 86, 55, 0.9)
	dirt := cfg.Particles.Dirt.ParsedColor
	if dirt.R != 141 || dirt.G != 86 || dirt.B != 55 || dirt.A != 230 {
		t.Errorf("dirt color = %+v", dirt)
	}
}

func TestParseHarvestConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *HarvestConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
combo:
  max: 5
`,
			validate: func(t *testing.T, cfg *HarvestConfig) {
				if cfg.Combo.Max != 5 {
					t.Errorf("combo.max = %d, want 5", cfg.Combo.Max)
				}
				if cfg.Combo.WindowMs != 1500 {
					t.Errorf("combo.windowMs = %.0f, want default 1500", cfg.Combo.WindowMs)
				}
				if cfg.Particles.Sparkle.Count != 12 {
					t.Errorf("sparkle count = %d, want default 12", cfg.Particles.Sparkle.Count)
				}
			},
		},
		{
			name: "invalid reveal duration",
			yamlContent: `
reveal:
  durationMs: 0
`,
			wantErr:     true,
			errContains: "reveal.durationMs",
		},
		{
			name: "invalid dirt color",
			yamlContent: `
particles:
  dirt:
    color: "mud"
`,
			wantErr:     true,
			errContains: "particles.dirt",
		},
		{
			name: "margin leaves no room on the short axis",
			yamlContent: `
field:
  margin: 320
`,
			wantErr:     true,
			errContains: "field.margin must be < 320",
		},
		{
			name: "largest margin that still leaves room",
			yamlContent: `
field:
  margin: 319
`,
			validate: func(t *testing.T, cfg *HarvestConfig) {
				if cfg.Field.Margin != 319 {
					t.Errorf("field.margin = %.0f, want 319", cfg.Field.Margin)
				}
			},
		},
		{
			name:        "malformed yaml",
			yamlContent: "field: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseHarvestConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

// TestLoadShippedHarvestConfig 发布的配置文件应与默认值一致
func TestLoadShippedHarvestConfig(t *testing.T) {
	cfg, err := LoadHarvestConfig(filepath.Join("..", "..", "data", "harvest.yaml"))
	if err != nil {
		t.Fatalf("failed to load data/harvest.yaml: %v", err)
	}
	def := DefaultHarvestConfig()
	if cfg.Field != def.Field {
		t.Errorf("field config differs from defaults: %+v vs %+v", cfg.Field, def.Field)
	}
	if cfg.Combo != def.Combo {
		t.Errorf("combo config differs from defaults: %+v vs %+v", cfg.Combo, def.Combo)
	}
	if cfg.Reveal != def.Reveal {
		t.Errorf("reveal config differs from defaults: %+v vs %+v", cfg.Reveal, def.Reveal)
	}
}
