package game

import (
	"os"
	"strings"
	"testing"
)

// TestParseResourceConfigFile tests loading the shipped YAML resource configuration
func TestParseResourceConfigFile(t *testing.T) {
	data, err := os.ReadFile("../../data/resources.yaml")
	if err != nil {
		t.Fatalf("failed to read resources.yaml: %v", err)
	}

	cfg, err := ParseResourceConfig(data)
	if err != nil {
		t.Fatalf("ParseResourceConfig failed: %v", err)
	}

	if cfg.BasePath != "assets" {
		t.Errorf("Expected base_path 'assets', got '%s'", cfg.BasePath)
	}

	ids := map[string]bool{}
	for _, img := range cfg.Images {
		ids[img.ID] = true
	}
	for _, want := range []string{"field", "carrot", "tomato", "lettuce", "golden_beet"} {
		if !ids[want] {
			t.Errorf("image id %q missing", want)
		}
	}
	if len(cfg.Sounds) != 2 {
		t.Errorf("expected 2 sounds, got %d", len(cfg.Sounds))
	}
	if len(cfg.Music) != 1 || cfg.Music[0].ID != "background" {
		t.Errorf("unexpected music section: %+v", cfg.Music)
	}
}

// TestParseResourceConfigErrors tests validation failures
func TestParseResourceConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "invalid yaml",
			yaml:    "images: [",
			wantErr: "failed to parse",
		},
		{
			name: "duplicate image id",
			yaml: `
images:
  - id: carrot
    path: a.png
  - id: carrot
    path: b.png
`,
			wantErr: "duplicate image resource id",
		},
		{
			name: "missing path",
			yaml: `
sounds:
  - id: harvest
`,
			wantErr: "requires id and path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResourceConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

// TestParseResourceConfigSameIDAcrossKinds 图片与音效可以共用同一个键
func TestParseResourceConfigSameIDAcrossKinds(t *testing.T) {
	yaml := `
images:
  - id: harvest
    path: a.png
sounds:
  - id: harvest
    path: b.mp3
`
	if _, err := ParseResourceConfig([]byte(yaml)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		base, rel, want string
	}{
		{"assets", "items/carrot.png", "assets/items/carrot.png"},
		{"assets", "/sfx/harvest-pop.mp3", "assets/sfx/harvest-pop.mp3"},
		{"", "music/relaxing-loop.mp3", "music/relaxing-loop.mp3"},
	}
	for _, tt := range tests {
		if got := buildFullPath(tt.base, tt.rel); got != tt.want {
			t.Errorf("buildFullPath(%q, %q) = %q, want %q", tt.base, tt.rel, got, tt.want)
		}
	}
}
