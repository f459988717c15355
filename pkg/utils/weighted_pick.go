package utils

import (
	"fmt"
	"math/rand"
)

// PickWeighted 按权重随机选择一个元素
//
// 选中概率 = weight / 总权重。列表为空、存在负权重或总权重为 0
// 都属于配置错误，直接 panic，而不是静默返回零值。
//
// 参数：
//   - items: 候选列表（顺序决定区间划分）
//   - weight: 返回元素权重
//   - rng: 随机源
func PickWeighted[T any](items []T, weight func(T) int, rng *rand.Rand) T {
	if len(items) == 0 {
		panic("utils.PickWeighted: empty item list")
	}

	total := 0
	for i, item := range items {
		w := weight(item)
		if w < 0 {
			panic(fmt.Sprintf("utils.PickWeighted: negative weight %d at index %d", w, i))
		}
		total += w
	}
	if total == 0 {
		panic("utils.PickWeighted: total weight is zero")
	}

	roll := rng.Intn(total)
	for _, item := range items {
		w := weight(item)
		if roll < w {
			return item
		}
		roll -= w
	}

	// 不可达：roll < total
	return items[len(items)-1]
}
