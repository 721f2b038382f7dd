package world

import (
	"math"
	"sort"
)

// roadEdge кандидат на дорогу между двумя городами (индексы во входном списке).
// Живёт только внутри построения MST и не персистится.
type roadEdge struct {
	from     int
	to       int
	distance float64
}

// computeTownEdges строит полный граф над городами: все неупорядоченные пары
// (i, j), i < j, с евклидовым расстоянием в плоскости XZ. Высота игнорируется:
// для связности города считаются примерно копланарными.
func computeTownEdges(towns []*Town) []roadEdge {
	if len(towns) < 2 {
		return nil
	}

	edges := make([]roadEdge, 0, len(towns)*(len(towns)-1)/2)
	for i := 0; i < len(towns); i++ {
		for j := i + 1; j < len(towns); j++ {
			edges = append(edges, roadEdge{
				from:     i,
				to:       j,
				distance: towns[i].Position.PlanarDistanceTo(towns[j].Position),
			})
		}
	}
	return edges
}

// splitEdgesKruskal разделяет кандидатов на рёбра остовного дерева (главные
// дороги) и остаток (кандидаты на второстепенные). Алгоритм Крускала:
// стабильная сортировка по возрастанию длины (равные длины — в порядке
// исходного перечисления), затем union-find по отсортированному списку.
// Остаток получается отсортированным по возрастанию как побочный эффект
// порядка обхода.
func splitEdgesKruskal(edges []roadEdge, townCount int) (mst, remainder []roadEdge) {
	sorted := make([]roadEdge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].distance < sorted[j].distance
	})

	uf := newUnionFind(townCount)
	for _, e := range sorted {
		if uf.union(e.from, e.to) {
			mst = append(mst, e)
		} else {
			remainder = append(remainder, e)
		}
	}
	return mst, remainder
}

// selectExtraEdges оставляет первые floor(len * ratio) кандидатов, сохраняя
// порядок: кандидаты уже отсортированы по длине, поэтому предпочитаются
// кратчайшие избыточные связи.
func selectExtraEdges(candidates []roadEdge, ratio float64) []roadEdge {
	count := int(math.Floor(float64(len(candidates)) * ratio))
	if count <= 0 {
		return nil
	}
	return candidates[:count]
}
