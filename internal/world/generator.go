package world

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/annel0/world-forge/internal/logging"
	"github.com/annel0/world-forge/internal/world/terrain"
)

// GenerateRoadNetwork синтезирует межгородские дороги для набора городов.
//
// Пайплайн: полный граф пар городов → разбиение Крускалом на главные дороги и
// кандидатов → отбор избыточных связей по ExtraConnectionsRatio → для каждого
// выбранного ребра выборка пути с обходом воды → сглаживание. Внутригородские
// дороги сюда не входят — их добавляет вызывающая сторона.
//
// Для 0 или 1 города возвращается пустой список (не ошибка). Ошибка возможна
// только при невалидной конфигурации, nil-оракуле или WaterPolicyError.
func GenerateRoadNetwork(towns []*Town, oracle terrain.Oracle, cfg *RoadNetworkConfig) ([]*GeneratedRoad, *RoadNetworkReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if oracle == nil {
		return nil, nil, ErrNilOracle
	}

	report := &RoadNetworkReport{TownCount: len(towns)}
	if len(towns) < 2 {
		return []*GeneratedRoad{}, report, nil
	}

	edges := computeTownEdges(towns)
	report.CandidateEdges = len(edges)

	mstEdges, remainder := splitEdgesKruskal(edges, len(towns))
	extraEdges := selectExtraEdges(remainder, cfg.ExtraConnectionsRatio)

	logging.Debug("Дорожная сеть: %d городов, %d рёбер MST, %d избыточных из %d кандидатов",
		len(towns), len(mstEdges), len(extraEdges), len(remainder))

	roads := make([]*GeneratedRoad, 0, len(mstEdges)+len(extraEdges))

	build := func(e roadEdge, isMain bool) error {
		from := towns[e.from]
		to := towns[e.to]

		path, underwater := synthesizePath(from.Position, to.Position, oracle, cfg)
		if underwater > 0 {
			report.UnderwaterPoints += underwater
			underwaterFallbacksTotal.Add(float64(underwater))

			switch cfg.WaterPolicy {
			case WaterPolicyError:
				return fmt.Errorf("world: путь %s → %s содержит %d неустранимых подводных точек",
					from.ID, to.ID, underwater)
			case WaterPolicyWarn:
				logging.Warn("Путь %s → %s: %d точек остались под водой (обход не найден)",
					from.ID, to.ID, underwater)
			}
		}

		path = smoothPath(path, cfg.SmoothingIterations)

		roads = append(roads, &GeneratedRoad{
			ID:             "road_" + uuid.NewString(),
			Path:           path,
			Width:          cfg.RoadWidth,
			ConnectedTowns: [2]string{from.ID, to.ID},
			IsMainRoad:     isMain,
		})
		return nil
	}

	for _, e := range mstEdges {
		if err := build(e, true); err != nil {
			return nil, report, err
		}
	}
	for _, e := range extraEdges {
		if err := build(e, false); err != nil {
			return nil, report, err
		}
	}

	report.MainRoads = len(mstEdges)
	report.SecondaryRoads = len(extraEdges)

	roadsGeneratedTotal.WithLabelValues("main").Add(float64(report.MainRoads))
	roadsGeneratedTotal.WithLabelValues("secondary").Add(float64(report.SecondaryRoads))

	return roads, report, nil
}
