package game

import (
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the resource configuration loaded from YAML.
// It maps stable logical keys to asset files (data/resources.yaml).
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	images:
//	  - id: carrot
//	    path: items/carrot.png
//	sounds: [...]
//	music: [...]
type ResourceConfig struct {
	Version  string          `yaml:"version"`   // Configuration file version
	BasePath string          `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Images   []ImageResource `yaml:"images"`    // Image resources keyed by logical id
	Sounds   []SoundResource `yaml:"sounds"`    // One-shot sound effects
	Music    []SoundResource `yaml:"music"`     // Looping background tracks
}

// ImageResource represents a single image resource definition.
//
// Example:
//
//   - id: golden_beet
//     path: items/golden-beet.png
type ImageResource struct {
	ID   string `yaml:"id"`   // Logical key (crop id or "field")
	Path string `yaml:"path"` // Relative file path from base_path
}

// SoundResource represents a single sound/audio resource definition.
//
// Example:
//
//   - id: harvest
//     path: sfx/harvest-pop.mp3
type SoundResource struct {
	ID   string `yaml:"id"`   // Logical key
	Path string `yaml:"path"` // Relative file path from base_path
}

// ParseResourceConfig 解析资源配置并校验 id 唯一
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	seen := make(map[string]struct{})
	check := func(kind, id, p string) error {
		if id == "" || p == "" {
			return fmt.Errorf("%s resource requires id and path (id=%q, path=%q)", kind, id, p)
		}
		key := kind + ":" + id
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate %s resource id %q", kind, id)
		}
		seen[key] = struct{}{}
		return nil
	}
	for _, img := range cfg.Images {
		if err := check("image", img.ID, img.Path); err != nil {
			return nil, err
		}
	}
	for _, s := range cfg.Sounds {
		if err := check("sound", s.ID, s.Path); err != nil {
			return nil, err
		}
	}
	for _, m := range cfg.Music {
		if err := check("music", m.ID, m.Path); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Returns:
//   - The full file path (e.g., "assets/items/carrot.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return path.Clean(relativePath)
	}
	return path.Join(basePath, relativePath)
}
