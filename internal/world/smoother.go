package world

import "github.com/annel0/world-forge/internal/vec"

// smoothPath сглаживает путь итеративным tent-фильтром: каждая внутренняя
// точка заменяется на (prev + 2·curr + next) / 4 покомпонентно, крайние точки
// не трогаются. Каждая итерация работает по результату предыдущей, не на
// месте. Пути короче трёх точек возвращаются без изменений.
func smoothPath(path []vec.Vec3Float, iterations int) []vec.Vec3Float {
	if len(path) < 3 || iterations <= 0 {
		return path
	}

	current := path
	for iter := 0; iter < iterations; iter++ {
		next := make([]vec.Vec3Float, len(current))
		next[0] = current[0]
		next[len(current)-1] = current[len(current)-1]

		for i := 1; i < len(current)-1; i++ {
			next[i] = current[i-1].
				Add(current[i].Mul(2)).
				Add(current[i+1]).
				Mul(0.25)
		}
		current = next
	}
	return current
}
