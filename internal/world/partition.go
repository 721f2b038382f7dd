package world

import (
	"fmt"

	"github.com/annel0/world-forge/internal/world/terrain"
)

// TilePartition результат разбиения тайловой сетки по биомам.
// Строится за один проход в свежевыделенные структуры; общих изменяемых
// коллекций во время сканирования нет, поэтому проход безопасно
// распараллеливается по тайлам.
type TilePartition struct {
	// Assignments отображает ключ тайла "tx,tz" в id биома
	Assignments map[string]string `json:"assignments"`
	// Unassigned тайлы, чей доминирующий тип не представлен в активном
	// наборе биомов. Не ошибка, а сигнал о качестве данных.
	Unassigned []string `json:"unassigned,omitempty"`
}

// TileKey возвращает ключ тайла в формате "tx,tz"
func TileKey(tx, tz int) string {
	return fmt.Sprintf("%d,%d", tx, tz)
}

// PartitionTilesByBiome закрепляет каждый тайл мира за биомом, чей тип
// доминирует в центре тайла по данным оракула. После сканирования множества
// TileKeys биомов материализуются заново из результата разбиения.
func PartitionTilesByBiome(biomes []*Biome, oracle terrain.Oracle, worldSizeInTiles int, tileSize float64) (*TilePartition, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	if worldSizeInTiles <= 0 {
		return nil, ErrInvalidWorldSize
	}
	if tileSize <= 0 {
		return nil, ErrInvalidTileSize
	}

	byType := make(map[string]*Biome, len(biomes))
	for _, b := range biomes {
		if _, exists := byType[b.Type]; !exists {
			byType[b.Type] = b
		}
	}

	partition := &TilePartition{
		Assignments: make(map[string]string, worldSizeInTiles*worldSizeInTiles),
	}

	for tx := 0; tx < worldSizeInTiles; tx++ {
		for tz := 0; tz < worldSizeInTiles; tz++ {
			// Центр тайла в мировых координатах
			cx := (float64(tx) + 0.5) * tileSize
			cz := (float64(tz) + 0.5) * tileSize

			key := TileKey(tx, tz)
			biomeType := oracle.QueryPoint(cx, cz).Biome

			if biome, ok := byType[biomeType]; ok {
				partition.Assignments[key] = biome.ID
			} else {
				partition.Unassigned = append(partition.Unassigned, key)
			}
		}
	}

	// Материализуем списки тайлов биомов из готового разбиения
	for _, b := range biomes {
		b.TileKeys = make(map[string]struct{})
	}
	byIDs := make(map[string]*Biome, len(biomes))
	for _, b := range biomes {
		byIDs[b.ID] = b
	}
	for key, biomeID := range partition.Assignments {
		if b, ok := byIDs[biomeID]; ok {
			b.TileKeys[key] = struct{}{}
		}
	}

	if len(partition.Unassigned) > 0 {
		tilesUnassignedTotal.Add(float64(len(partition.Unassigned)))
	}

	return partition, nil
}
