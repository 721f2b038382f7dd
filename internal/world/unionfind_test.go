package world

import "testing"

func TestUnionFind_Basic(t *testing.T) {
	uf := newUnionFind(5)

	// Изначально каждый элемент — сам себе представитель
	for i := 0; i < 5; i++ {
		if uf.find(i) != i {
			t.Errorf("Ожидался представитель %d, получен %d", i, uf.find(i))
		}
	}

	if !uf.union(0, 1) {
		t.Error("Первое объединение 0 и 1 должно вернуть true")
	}
	if uf.union(0, 1) {
		t.Error("Повторное объединение 0 и 1 должно вернуть false")
	}
	if uf.find(0) != uf.find(1) {
		t.Error("После объединения 0 и 1 представители должны совпадать")
	}
	if uf.find(2) == uf.find(0) {
		t.Error("Элемент 2 не должен оказаться в множестве {0,1}")
	}
}

func TestUnionFind_TransitiveMerge(t *testing.T) {
	uf := newUnionFind(6)

	uf.union(0, 1)
	uf.union(2, 3)
	uf.union(1, 2) // Сливает {0,1} и {2,3}

	if uf.find(0) != uf.find(3) {
		t.Error("Элементы 0 и 3 должны быть в одном множестве после транзитивного слияния")
	}
	if uf.union(3, 0) {
		t.Error("Объединение элементов одного множества должно вернуть false")
	}
	if uf.find(4) == uf.find(0) || uf.find(5) == uf.find(0) {
		t.Error("Элементы 4 и 5 должны остаться отдельными множествами")
	}
}
