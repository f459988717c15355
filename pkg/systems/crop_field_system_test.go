package systems

import (
	"math"
	"testing"

	"github.com/decker502/harvest/pkg/components"
	"github.com/decker502/harvest/pkg/ecs"
	"github.com/decker502/harvest/pkg/game"
	"github.com/decker502/harvest/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCropFieldSystem_SpawnBounds(t *testing.T) {
	field, em := newTestField(42)

	for i := 0; i < 500; i++ {
		id := field.Spawn()
		crop, ok := ecs.GetComponent[*components.CropComponent](em, id)
		require.True(t, ok)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		assert.True(t, pos.X >= 80 && pos.X < 880, "x=%v", pos.X)
		assert.True(t, pos.Y >= 80 && pos.Y < 560, "y=%v", pos.Y)
		assert.True(t, crop.Size >= 26 && crop.Size < 32, "size=%v", crop.Size)
		assert.True(t, crop.BobPhase >= 0 && crop.BobPhase < 2*math.Pi)
		assert.NotNil(t, crop.Variant)
	}
	assert.Equal(t, 500, field.Count())
}

// TestCropFieldSystem_HitBoundary 命中半径是严格小于
func TestCropFieldSystem_HitBoundary(t *testing.T) {
	field, _ := newTestField(1)
	carrot := mustVariant(field.catalog, types.CropCarrot)
	id := field.SpawnAt(carrot, 0, 0, 30, 0)

	r := 30 * 1.6
	_, hit := field.QueryAt(r, 0)
	assert.False(t, hit, "exactly at the radius is a miss")

	got, hit := field.QueryAt(math.Nextafter(r, 0), 0)
	assert.True(t, hit)
	assert.Equal(t, id, got)
}

// TestCropFieldSystem_FirstMatchWins 重叠时返回最早创建的作物
func TestCropFieldSystem_FirstMatchWins(t *testing.T) {
	field, _ := newTestField(1)
	carrot := mustVariant(field.catalog, types.CropCarrot)
	tomato := mustVariant(field.catalog, types.CropTomato)

	first := field.SpawnAt(carrot, 100, 100, 28, 0)
	second := field.SpawnAt(tomato, 110, 100, 28, 0)

	got, ok := field.QueryAt(105, 100)
	require.True(t, ok)
	assert.Equal(t, first, got)

	require.True(t, field.Remove(first))
	got, ok = field.QueryAt(105, 100)
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestCropFieldSystem_Remove(t *testing.T) {
	field, em := newTestField(1)
	id := field.Spawn()

	assert.True(t, field.Remove(id))
	assert.False(t, field.Remove(id), "second remove is a no-op")

	other := em.CreateEntity()
	em.AddComponent(other, &components.PositionComponent{})
	assert.False(t, field.Remove(other), "non-crop entities are not removed")
	assert.True(t, em.Exists(other))
}

func TestCropFieldSystem_ResetAll(t *testing.T) {
	field, em := newTestField(7)
	gs := game.NewGameState()
	gs.EntityManager = em
	gs.Harvested = 10
	gs.Combo = 3

	for i := 0; i < 5; i++ {
		field.Spawn()
	}
	p := em.CreateEntity()
	em.AddComponent(p, &components.ParticleComponent{Life: 10})
	gs.HoveredCrop = field.Crops()[0]

	field.ResetAll(gs)

	assert.Equal(t, 18, field.Count())
	assert.False(t, em.Exists(p), "particles cleared")
	assert.Equal(t, 0, gs.Harvested)
	assert.Equal(t, 0, gs.Combo)
	assert.Equal(t, ecs.EntityID(0), gs.HoveredCrop)
}

func TestCropFieldSystem_WeightedDistribution(t *testing.T) {
	field, em := newTestField(99)
	counts := map[types.CropType]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		id := field.Spawn()
		crop, _ := ecs.GetComponent[*components.CropComponent](em, id)
		counts[crop.Variant.ID]++
		em.RemoveEntity(id)
	}

	want := map[types.CropType]float64{
		types.CropCarrot:     4.0 / 11,
		types.CropTomato:     3.0 / 11,
		types.CropLettuce:    3.0 / 11,
		types.CropGoldenBeet: 1.0 / 11,
	}
	for id, p := range want {
		assert.InDelta(t, p, float64(counts[id])/n, 0.03, "variant %s", id)
	}
}

func TestCropFieldSystem_BobOffset(t *testing.T) {
	field, _ := newTestField(1)
	crop := &components.CropComponent{Size: 28, BobPhase: math.Pi / 2}

	assert.InDelta(t, 2, field.BobOffset(crop, 0), 1e-9)
	assert.InDelta(t, 0, field.BobOffset(&components.CropComponent{}, 0), 1e-9)
	assert.InDelta(t, 2*math.Sin(1), field.BobOffset(&components.CropComponent{}, 500), 1e-9)
}
