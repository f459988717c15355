package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/decker502/harvest/pkg/types"
	"github.com/decker502/harvest/pkg/utils"
	"gopkg.in/yaml.v3"
)

// CropVariant 作物品种（静态目录项）
// 进程启动时创建，之后只读；所有作物实例都引用同一个 *CropVariant
type CropVariant struct {
	ID     types.CropType `yaml:"id"`               // 稳定标识（资源映射使用）
	Name   string         `yaml:"name"`             // 显示名称
	Color  string         `yaml:"color"`            // 果实颜色 "#rrggbb"
	Stem   string         `yaml:"stem"`             // 茎叶颜色 "#rrggbb"
	Value  int            `yaml:"value"`            // 基础分值
	Weight int            `yaml:"weight"`           // 生成权重
	Golden bool           `yaml:"golden,omitempty"` // 金色品种（额外加分）

	FillColor color.NRGBA `yaml:"-"` // 解析后的果实颜色
	StemColor color.NRGBA `yaml:"-"` // 解析后的茎叶颜色
}

// CropCatalog 作物目录
type CropCatalog struct {
	Variants []*CropVariant `yaml:"variants"`
}

// LoadCropCatalog 从 YAML 文件加载作物目录
func LoadCropCatalog(filePath string) (*CropCatalog, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read crop catalog file: %w", err)
	}
	return ParseCropCatalog(data)
}

// ParseCropCatalog 解析并验证作物目录 YAML
func ParseCropCatalog(data []byte) (*CropCatalog, error) {
	var catalog CropCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse crop catalog YAML: %w", err)
	}

	if err := validateCropCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("invalid crop catalog: %w", err)
	}

	return &catalog, nil
}

// Lookup 根据稳定标识查找品种
func (c *CropCatalog) Lookup(id types.CropType) (*CropVariant, bool) {
	for _, v := range c.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return nil, false
}

// TotalWeight 返回所有品种的权重之和
func (c *CropCatalog) TotalWeight() int {
	total := 0
	for _, v := range c.Variants {
		total += v.Weight
	}
	return total
}

// validateCropCatalog 验证目录并解析颜色
func validateCropCatalog(catalog *CropCatalog) error {
	if len(catalog.Variants) == 0 {
		return fmt.Errorf("variants cannot be empty")
	}

	seen := make(map[types.CropType]bool)
	for i, v := range catalog.Variants {
		if v == nil {
			return fmt.Errorf("variant %d is empty", i)
		}
		if v.ID == types.CropUnknown {
			return fmt.Errorf("variant %d has no id", i)
		}
		if seen[v.ID] {
			return fmt.Errorf("duplicate variant id %s", v.ID)
		}
		seen[v.ID] = true

		if v.Name == "" {
			return fmt.Errorf("variant %s has no name", v.ID)
		}
		if v.Value < 0 {
			return fmt.Errorf("variant %s value must be >= 0, got %d", v.ID, v.Value)
		}
		if v.Weight < 0 {
			return fmt.Errorf("variant %s weight must be >= 0, got %d", v.ID, v.Weight)
		}

		fill, err := utils.ParseHexColor(v.Color)
		if err != nil {
			return fmt.Errorf("variant %s: %w", v.ID, err)
		}
		stem, err := utils.ParseHexColor(v.Stem)
		if err != nil {
			return fmt.Errorf("variant %s: %w", v.ID, err)
		}
		v.FillColor = fill
		v.StemColor = stem
	}

	if catalog.TotalWeight() == 0 {
		return fmt.Errorf("total variant weight must be > 0")
	}

	return nil
}
