// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// CropType 定义作物品种的稳定标识
// 内部逻辑和资源映射只使用 CropType，显示名称由配置决定
type CropType int

const (
	// CropUnknown 未知作物
	CropUnknown CropType = iota
	// CropCarrot 胡萝卜
	CropCarrot
	// CropTomato 番茄
	CropTomato
	// CropLettuce 生菜
	CropLettuce
	// CropGoldenBeet 金甜菜（稀有）
	CropGoldenBeet
)

var cropTypeKeys = map[CropType]string{
	CropCarrot:     "carrot",
	CropTomato:     "tomato",
	CropLettuce:    "lettuce",
	CropGoldenBeet: "golden_beet",
}

// String 返回作物类型的配置键（也用作资源键）
func (c CropType) String() string {
	if key, ok := cropTypeKeys[c]; ok {
		return key
	}
	return "unknown"
}

// ParseCropType 将配置键解析为 CropType
func ParseCropType(key string) (CropType, error) {
	for t, k := range cropTypeKeys {
		if k == key {
			return t, nil
		}
	}
	return CropUnknown, fmt.Errorf("unknown crop type %q", key)
}

// MarshalText 实现 encoding.TextMarshaler（yaml.v3 会使用）
func (c CropType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (c *CropType) UnmarshalText(text []byte) error {
	parsed, err := ParseCropType(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
