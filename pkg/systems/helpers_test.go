package systems

import (
	"math/rand"

	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/ecs"
	"github.com/decker502/harvest/pkg/types"
)

// newTestCatalog 返回与 data/crops.yaml 相同的四个品种（测试使用）
func newTestCatalog() *config.CropCatalog {
	catalog, err := config.ParseCropCatalog([]byte(`
variants:
  - {id: carrot, name: Carrot, color: "#f9a65a", stem: "#6fbf73", value: 1, weight: 4}
  - {id: tomato, name: Tomato, color: "#f26d6d", stem: "#6fbf73", value: 2, weight: 3}
  - {id: lettuce, name: Lettuce, color: "#7cc576", stem: "#4a9c5d", value: 1, weight: 3}
  - {id: golden_beet, name: Golden Beet, color: "#ffd166", stem: "#9c7b29", value: 3, weight: 1, golden: true}
`))
	if err != nil {
		panic(err)
	}
	return catalog
}

// mustVariant 按标识查找品种
func mustVariant(catalog *config.CropCatalog, id types.CropType) *config.CropVariant {
	v, ok := catalog.Lookup(id)
	if !ok {
		panic("variant not found: " + id.String())
	}
	return v
}

// newTestField 创建 960x640 的测试田地
func newTestField(seed int64) (*CropFieldSystem, *ecs.EntityManager) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultHarvestConfig().Field
	return NewCropFieldSystem(em, newTestCatalog(), cfg, 960, 640, rand.New(rand.NewSource(seed))), em
}
