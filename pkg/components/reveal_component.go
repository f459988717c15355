package components

import (
	"github.com/decker502/harvest/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// RevealComponent 收获时播放的揭示动画
//
// 锚点保存在 PositionComponent 中。组件创建后不再修改，
// 每帧通过 (now - StartTime) / Duration 计算进度。
type RevealComponent struct {
	Variant   *config.CropVariant // 用于颜色回退
	StartTime float64             // 开始时间（毫秒）
	Duration  float64             // 持续时间（毫秒）
	BaseSize  float64             // 基础显示尺寸
	Image     *ebiten.Image       // 作物图片，nil 表示未就绪（使用程序化绘制）
}
