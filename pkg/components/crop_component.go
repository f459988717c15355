package components

import "github.com/decker502/harvest/pkg/config"

// CropComponent 田地中可收获的作物
//
// 位置保存在 PositionComponent 中。创建后只读：
// 每帧的摆动偏移由 BobPhase 和当前时间计算得出，不写回组件。
type CropComponent struct {
	Variant  *config.CropVariant // 品种（引用静态目录，不复制）
	Size     float64             // 半径类尺寸，命中半径和绘制尺寸都由它推导
	BobPhase float64             // 摆动相位 [0, 2π)
}
