package components

import "image/color"

// ParticleComponent represents a single point-mass particle.
//
// Position is stored in a separate PositionComponent. The ParticleSystem
// integrates velocity each tick, adds gravity to VelocityY, and counts Life
// down by one tick; the particle is destroyed once Life <= 0.
//
// This is a pure data component following ECS principles - it contains no methods.
type ParticleComponent struct {
	// Velocity (速度, 像素/帧)
	VelocityX float64
	VelocityY float64

	// Life 剩余寿命（帧）
	Life float64

	// Color 粒子颜色（渲染时再乘以寿命比例的透明度）
	Color color.NRGBA
}
