package world

// unionFind система непересекающихся множеств над целыми индексами [0, size).
// Массивы parent/rank выделяются один раз на вызов генерации и не разделяются.
type unionFind struct {
	parent []int
	rank   []int
}

// newUnionFind создаёт структуру, где каждый элемент — отдельное множество
func newUnionFind(size int) *unionFind {
	uf := &unionFind{
		parent: make([]int, size),
		rank:   make([]int, size),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// find возвращает представителя множества элемента x со сжатием пути
func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		// Сжатие пути: переподвешиваем x к его деду
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union объединяет множества x и y по рангу.
// Возвращает false, если x и y уже были в одном множестве.
func (uf *unionFind) union(x, y int) bool {
	rootX := uf.find(x)
	rootY := uf.find(y)
	if rootX == rootY {
		return false
	}

	// Подвешиваем дерево меньшего ранга под корень большего
	if uf.rank[rootX] < uf.rank[rootY] {
		uf.parent[rootX] = rootY
	} else {
		uf.parent[rootY] = rootX
		if uf.rank[rootX] == uf.rank[rootY] {
			uf.rank[rootX]++
		}
	}
	return true
}
