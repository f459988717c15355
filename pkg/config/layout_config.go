package config

// 布局配置常量
// 本文件定义了游戏画面的逻辑尺寸和 HUD 元素位置
// 所有坐标都是逻辑坐标，Ebitengine 负责把窗口/触摸坐标缩放到这个空间

const (
	// GameWindowWidth 逻辑画面宽度
	GameWindowWidth = 960

	// GameWindowHeight 逻辑画面高度
	GameWindowHeight = 640

	// SkyHeightRatio 天空区域占画面高度的比例（程序化背景使用）
	SkyHeightRatio = 0.32

	// FieldRowHeight 程序化背景中每条田垄的高度
	FieldRowHeight = 46.0

	// FieldRowCount 程序化背景中的田垄数量
	FieldRowCount = 12
)

// HUDButtonID HUD 按钮标识
type HUDButtonID int

const (
	// HUDButtonReset 重新播种
	HUDButtonReset HUDButtonID = iota
	// HUDButtonSound 音效开关
	HUDButtonSound
	// HUDButtonMusic 音乐开关
	HUDButtonMusic
)

// HUDButtonLayout HUD 按钮矩形
type HUDButtonLayout struct {
	ID            HUDButtonID
	X, Y          float64
	Width, Height float64
}

// Contains 判断点是否落在按钮矩形内
func (b HUDButtonLayout) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// HUDButtons 右上角按钮布局（从左到右）
var HUDButtons = []HUDButtonLayout{
	{ID: HUDButtonReset, X: 520, Y: 12, Width: 120, Height: 34},
	{ID: HUDButtonSound, X: 650, Y: 12, Width: 145, Height: 34},
	{ID: HUDButtonMusic, X: 805, Y: 12, Width: 145, Height: 34},
}

// HUD 文本位置
const (
	HUDStatsX     = 16.0
	HUDStatsY     = 14.0
	HUDFontSize   = 20.0
	ToastY        = GameWindowHeight - 72.0
	ToastFontSize = 22.0
	SplashTitleY  = GameWindowHeight/2 - 40.0
	SplashFontBig = 48.0
)
