package components

// PositionComponent 实体在逻辑画面中的位置
type PositionComponent struct {
	X float64
	Y float64
}
