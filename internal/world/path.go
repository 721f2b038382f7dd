package world

import (
	"math"

	"github.com/annel0/world-forge/internal/vec"
	"github.com/annel0/world-forge/internal/world/terrain"
)

// pathClearance небольшой зазор дороги над водой/грунтом
const pathClearance = 0.1

// synthesizePath строит выборку пути между двумя городами с учётом террейна.
// Точки следуют от from к to; первая и последняя совпадают с позициями городов
// по (x, z). Возвращает путь и число точек, оставшихся под водой после
// неудачного поиска обхода.
func synthesizePath(from, to vec.Vec3Float, oracle terrain.Oracle, cfg *RoadNetworkConfig) ([]vec.Vec3Float, int) {
	distance := from.PlanarDistanceTo(to)
	steps := int(math.Max(2, math.Ceil(distance/cfg.PathStepSize)))

	path := make([]vec.Vec3Float, 0, steps+1)
	underwater := 0

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := from.XZ().Lerp(to.XZ(), t)

		height := oracle.QueryPoint(p.X, p.Z).Height

		// Обход воды: крайние точки не смещаем, они обязаны совпасть
		// с позициями городов
		if height < cfg.WaterThreshold && i > 0 && i < steps {
			nx, nz, nh, ok := avoidWater(p.X, p.Z, oracle, cfg)
			if ok {
				p.X, p.Z = nx, nz
				height = nh
			} else {
				// Обход не найден — точка остаётся под водой
				underwater++
			}
		}

		path = append(path, vec.Vec3Float{
			X: p.X,
			Y: math.Max(height, cfg.WaterThreshold) + pathClearance,
			Z: p.Z,
		})
	}

	return path, underwater
}

// avoidWater перебирает восемь смещений вокруг точки: четыре осевых на
// радиусе 2×step и четыре диагональных на радиусе 1.5×step. Жадно выбирается
// самый высокий кандидат с высотой не ниже порога воды.
func avoidWater(x, z float64, oracle terrain.Oracle, cfg *RoadNetworkConfig) (bestX, bestZ, bestH float64, found bool) {
	searchRadius := cfg.PathStepSize * 2
	diagonalRadius := cfg.PathStepSize * 1.5

	offsets := [8][2]float64{
		{searchRadius, 0},
		{-searchRadius, 0},
		{0, searchRadius},
		{0, -searchRadius},
		{diagonalRadius, diagonalRadius},
		{diagonalRadius, -diagonalRadius},
		{-diagonalRadius, diagonalRadius},
		{-diagonalRadius, -diagonalRadius},
	}

	bestH = math.Inf(-1)
	for _, off := range offsets {
		cx := x + off[0]
		cz := z + off[1]
		h := oracle.QueryPoint(cx, cz).Height
		if h >= cfg.WaterThreshold && h > bestH {
			bestX, bestZ, bestH = cx, cz, h
			found = true
		}
	}
	return bestX, bestZ, bestH, found
}
