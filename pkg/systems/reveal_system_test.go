package systems

import (
	"testing"

	"github.com/decker502/harvest/pkg/components"
	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRevealSystem() (*RevealSystem, *ecs.EntityManager) {
	em := ecs.NewEntityManager()
	return NewRevealSystem(em, config.DefaultHarvestConfig().Reveal), em
}

func TestRevealSystem_Start(t *testing.T) {
	rs, em := newTestRevealSystem()
	variant := &config.CropVariant{Name: "Tomato"}

	id := rs.Start(300, 200, 30, variant, nil, 1000)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	require.True(t, ok)
	assert.InDelta(t, 300, pos.X, 1e-9)
	assert.InDelta(t, 194, pos.Y, 1e-9)

	reveal, ok := ecs.GetComponent[*components.RevealComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 650.0, reveal.Duration)
	assert.Equal(t, 72.0, reveal.BaseSize)
	assert.Nil(t, reveal.Image)
	assert.Same(t, variant, reveal.Variant)
}

func TestProgressOf(t *testing.T) {
	r := &components.RevealComponent{StartTime: 1000, Duration: 650}

	assert.Equal(t, 0.0, ProgressOf(r, 1000))
	assert.InDelta(t, 0.5, ProgressOf(r, 1325), 1e-9)
	assert.Equal(t, 1.0, ProgressOf(r, 1650))
	assert.Equal(t, 1.0, ProgressOf(r, 5000), "clamped at 1")
	assert.Equal(t, 0.0, ProgressOf(r, 900), "clamped at 0")
}

// TestRevealSystem_PrunedAfterFinalFrame 进度为 1 的帧仍然存在，之后被移除
func TestRevealSystem_PrunedAfterFinalFrame(t *testing.T) {
	rs, _ := newTestRevealSystem()
	rs.Start(0, 0, 28, &config.CropVariant{}, nil, 0)
	rs.Start(0, 0, 28, &config.CropVariant{}, nil, 100)

	assert.Equal(t, 0, rs.PruneExpired(649.9))
	assert.Equal(t, 2, rs.Count())

	assert.Equal(t, 1, rs.PruneExpired(650))
	assert.Equal(t, 1, rs.Count())

	assert.Equal(t, 1, rs.PruneExpired(800))
	assert.Equal(t, 0, rs.Count())
}

func TestRevealCurves(t *testing.T) {
	assert.InDelta(t, 0.6, RevealScale(0), 1e-9)
	assert.InDelta(t, 1.4, RevealScale(1), 1e-9)
	assert.InDelta(t, 0.6+0.875*0.8, RevealScale(0.5), 1e-9)

	assert.InDelta(t, 0, RevealGlow(0), 1e-9)
	assert.InDelta(t, 1, RevealGlow(0.5), 1e-9)
	assert.InDelta(t, 0, RevealGlow(1), 1e-9)

	assert.InDelta(t, 1, RevealAlpha(0), 1e-9)
	assert.InDelta(t, 0.8, RevealAlpha(1), 1e-9)
}
