package world

import (
	"github.com/annel0/world-forge/internal/vec"
	"github.com/annel0/world-forge/internal/world/terrain"
)

// stubOracle детерминированный оракул для тестов с подсчётом запросов
type stubOracle struct {
	heightFn func(x, z float64) float64
	biomeFn  func(x, z float64) string
	queries  int
}

func (s *stubOracle) QueryPoint(x, z float64) terrain.Sample {
	s.queries++
	sample := terrain.Sample{Height: s.heightFn(x, z), Biome: terrain.BiomePlains}
	if s.biomeFn != nil {
		sample.Biome = s.biomeFn(x, z)
	}
	return sample
}

func (s *stubOracle) HeightAt(x, z float64) float64 {
	return s.heightFn(x, z)
}

// flatOracle возвращает оракул с постоянной высотой по всему миру
func flatOracle(height float64) *stubOracle {
	return &stubOracle{heightFn: func(x, z float64) float64 { return height }}
}

func testTown(id string, x, y, z float64) *Town {
	return &Town{
		ID:       id,
		Position: vec.Vec3Float{X: x, Y: y, Z: z},
		Size:     10,
	}
}

func defaultRoadConfig() *RoadNetworkConfig {
	return &RoadNetworkConfig{
		RoadWidth:             4,
		ExtraConnectionsRatio: 0,
		WaterThreshold:        2,
		PathStepSize:          5,
		SmoothingIterations:   0,
		WaterPolicy:           WaterPolicyWarn,
	}
}
