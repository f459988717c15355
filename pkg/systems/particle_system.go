package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/harvest/pkg/components"
	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/ecs"
)

// ParticleSystem manages the short-lived point particles spawned by harvests.
//
// Each tick a particle moves by its velocity, gravity is added to VelocityY
// and Life counts down by one. Particles whose Life reaches zero are
// destroyed at the end of the same tick, so Life only ever decreases and
// no rendered particle has Life <= 0.
//
// Follows ECS zero-coupling principle: communicates only through EntityManager.
type ParticleSystem struct {
	EntityManager *ecs.EntityManager
	cfg           config.ParticleConfig
	rng           *rand.Rand
}

// NewParticleSystem creates a new ParticleSystem instance.
func NewParticleSystem(em *ecs.EntityManager, cfg config.ParticleConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		EntityManager: em,
		cfg:           cfg,
		rng:           rng,
	}
}

// Burst spawns profile.Count particles at (x, y) with the given colour.
// Velocities and lifetimes are drawn independently per particle:
//
//	vx = (r - 0.5) * SpreadX
//	vy = (r - UpwardBias) * SpreadY
//	life = LifeMin + r * LifeSpan
func (ps *ParticleSystem) Burst(x, y float64, profile config.BurstProfile, c color.NRGBA) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, profile.Count)
	for i := 0; i < profile.Count; i++ {
		id := ps.EntityManager.CreateEntity()
		ps.EntityManager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
		ps.EntityManager.AddComponent(id, &components.ParticleComponent{
			VelocityX: (ps.rng.Float64() - 0.5) * profile.SpreadX,
			VelocityY: (ps.rng.Float64() - profile.UpwardBias) * profile.SpreadY,
			Life:      profile.LifeMin + ps.rng.Float64()*profile.LifeSpan,
			Color:     c,
		})
		ids = append(ids, id)
	}
	return ids
}

// BurstSparkle 在作物上方喷出品种颜色的闪光粒子
func (ps *ParticleSystem) BurstSparkle(cropX, cropY, cropSize float64, variant *config.CropVariant) []ecs.EntityID {
	p := ps.cfg.Sparkle
	c := variant.FillColor
	if p.Color != "" {
		c = p.ParsedColor
	}
	return ps.Burst(cropX, cropY+cropSize*p.OffsetY, p, c)
}

// BurstDirt 在作物根部喷出泥土粒子
func (ps *ParticleSystem) BurstDirt(cropX, cropY, cropSize float64) []ecs.EntityID {
	p := ps.cfg.Dirt
	return ps.Burst(cropX, cropY+cropSize*p.OffsetY, p, p.ParsedColor)
}

// Tick advances every particle by one tick and removes the expired ones.
func (ps *ParticleSystem) Tick() {
	particleEntities := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.PositionComponent,
	](ps.EntityManager)

	for _, particleID := range particleEntities {
		particle, ok := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, particleID)
		if !ok {
			continue
		}
		position, ok := ecs.GetComponent[*components.PositionComponent](ps.EntityManager, particleID)
		if !ok {
			continue
		}

		position.X += particle.VelocityX
		position.Y += particle.VelocityY
		particle.VelocityY += ps.cfg.Gravity
		particle.Life--

		if particle.Life <= 0 {
			ps.EntityManager.DestroyEntity(particleID)
		}
	}

	ps.EntityManager.RemoveMarkedEntities()
}

// Count 返回存活粒子数量
func (ps *ParticleSystem) Count() int {
	return len(ecs.GetEntitiesWith1[*components.ParticleComponent](ps.EntityManager))
}

// Alpha 返回粒子的绘制透明度
func (ps *ParticleSystem) Alpha(p *components.ParticleComponent) float64 {
	return ParticleAlpha(p.Life, ps.cfg.FadeLifetime)
}

// Radius 返回粒子绘制半径
func (ps *ParticleSystem) Radius() float64 {
	return ps.cfg.Radius
}

// ParticleAlpha 寿命到透明度的映射 max(0, life/fadeLifetime)
// 寿命超过 fadeLifetime 时可以大于 1，绘制时再截断
func ParticleAlpha(life, fadeLifetime float64) float64 {
	return math.Max(0, life/fadeLifetime)
}
