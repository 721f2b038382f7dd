package world

import (
	"time"

	"github.com/annel0/world-forge/internal/logging"
	"github.com/annel0/world-forge/internal/world/terrain"
)

// FoundationConfig параметры одного прохода "Apply & Lock"
type FoundationConfig struct {
	Roads            RoadNetworkConfig
	WorldSizeInTiles int
	TileSize         float64
}

// Validate проверяет все секции конфигурации
func (c *FoundationConfig) Validate() error {
	if err := c.Roads.Validate(); err != nil {
		return err
	}
	if c.WorldSizeInTiles <= 0 {
		return ErrInvalidWorldSize
	}
	if c.TileSize <= 0 {
		return ErrInvalidTileSize
	}
	return nil
}

// WorldFoundation результат прохода генерации: дороги, привязки к точкам
// входа и разбиение тайлов по биомам. После генерации структура не мутирует;
// ручные правки дизайнера работают по собственной копии.
type WorldFoundation struct {
	Towns       []*Town            `json:"towns"`
	Biomes      []*Biome           `json:"biomes"`
	Roads       []*GeneratedRoad   `json:"roads"`
	Bindings    []EntryBinding     `json:"bindings,omitempty"`
	Partition   *TilePartition     `json:"partition"`
	Report      *RoadNetworkReport `json:"report"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// GenerateWorldFoundation выполняет полный проход генерации по снимку городов
// и биомов: синтез дорожной сети, привязка дорог к точкам входа, разбиение
// тайлов по биомам. Каждый проход работает на своём снимке входа и отдаёт
// свежевыделенные структуры.
func GenerateWorldFoundation(towns []*Town, biomes []*Biome, oracle terrain.Oracle, cfg *FoundationConfig) (*WorldFoundation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()

	roads, report, err := GenerateRoadNetwork(towns, oracle, &cfg.Roads)
	if err != nil {
		return nil, err
	}

	bindings := BindEntryPoints(towns, roads)

	// Заполняем обратные ссылки городов на их дороги
	byID := make(map[string]*Town, len(towns))
	for _, t := range towns {
		byID[t.ID] = t
	}
	for _, road := range roads {
		for _, townID := range road.ConnectedTowns {
			if t, ok := byID[townID]; ok {
				t.ConnectedRoadIDs = append(t.ConnectedRoadIDs, road.ID)
			}
		}
	}

	partition, err := PartitionTilesByBiome(biomes, oracle, cfg.WorldSizeInTiles, cfg.TileSize)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(started)
	generationDuration.Observe(elapsed.Seconds())

	conflicts := 0
	for _, b := range bindings {
		if b.State == BindingConflict {
			conflicts++
		}
	}

	logging.Info("🗺️  Фундамент мира готов за %s: дорог %d (main=%d, extra=%d), конфликтов привязки %d, тайлов без биома %d",
		elapsed, len(roads), report.MainRoads, report.SecondaryRoads, conflicts, len(partition.Unassigned))

	return &WorldFoundation{
		Towns:       towns,
		Biomes:      biomes,
		Roads:       roads,
		Bindings:    bindings,
		Partition:   partition,
		Report:      report,
		GeneratedAt: started.UTC(),
	}, nil
}
