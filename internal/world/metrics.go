package world

import "github.com/prometheus/client_golang/prometheus"

// Метрики генерации публикуются в дефолтный регистр Prometheus.
//
// * worldforge_generation_duration_seconds — histogram, длительность прохода
// * worldforge_roads_generated_total{kind} — counter, дороги по типу
// * worldforge_underwater_fallbacks_total — counter, неустранимые подводные точки
// * worldforge_tiles_unassigned_total — counter, тайлы без подходящего биома
var (
	generationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "worldforge",
		Name:      "generation_duration_seconds",
		Help:      "Длительность одного прохода генерации фундамента мира.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})

	roadsGeneratedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "worldforge",
		Name:      "roads_generated_total",
		Help:      "Общее число сгенерированных дорог по типу (main/secondary).",
	}, []string{"kind"})

	underwaterFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worldforge",
		Name:      "underwater_fallbacks_total",
		Help:      "Число точек пути, оставшихся под водой после поиска обхода.",
	})

	tilesUnassignedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worldforge",
		Name:      "tiles_unassigned_total",
		Help:      "Число тайлов, чей доминирующий биом отсутствует в активном наборе.",
	})
)

func init() {
	prometheus.MustRegister(
		generationDuration,
		roadsGeneratedTotal,
		underwaterFallbacksTotal,
		tilesUnassignedTotal,
	)
}
