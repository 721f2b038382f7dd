package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/world-forge/internal/vec"
	"github.com/annel0/world-forge/internal/world/terrain"
)

func testBiome(id, biomeType string) *Biome {
	return &Biome{
		ID:              id,
		Type:            biomeType,
		Center:          vec.Vec3Float{},
		InfluenceRadius: 100,
	}
}

func TestPartitionTilesByBiome_Completeness(t *testing.T) {
	const size = 8
	const tileSize = 16.0

	// Левая половина мира — равнины, правая — лес
	oracle := &stubOracle{
		heightFn: func(x, z float64) float64 { return 10 },
		biomeFn: func(x, z float64) string {
			if x < size*tileSize/2 {
				return terrain.BiomePlains
			}
			return terrain.BiomeForest
		},
	}

	biomes := []*Biome{
		testBiome("b1", terrain.BiomePlains),
		testBiome("b2", terrain.BiomeForest),
	}

	partition, err := PartitionTilesByBiome(biomes, oracle, size, tileSize)
	require.NoError(t, err)

	// Сумма закреплённых и незакреплённых тайлов равна size²
	total := len(partition.Assignments) + len(partition.Unassigned)
	assert.Equal(t, size*size, total, "Каждый тайл должен быть учтён ровно один раз")
	assert.Empty(t, partition.Unassigned, "Все типы представлены — незакреплённых быть не должно")

	// TileKeys материализованы из разбиения
	assert.Len(t, biomes[0].TileKeys, size*size/2)
	assert.Len(t, biomes[1].TileKeys, size*size/2)

	// Конкретный тайл закреплён за правильным биомом
	assert.Equal(t, "b1", partition.Assignments[TileKey(0, 0)])
	assert.Equal(t, "b2", partition.Assignments[TileKey(size-1, 0)])
	_, ok := biomes[1].TileKeys[TileKey(size-1, 0)]
	assert.True(t, ok, "Ключ тайла должен присутствовать в множестве биома")
}

func TestPartitionTilesByBiome_UnmatchedType(t *testing.T) {
	const size = 4

	// Оракул сообщает тип, которого нет в активном наборе биомов
	oracle := &stubOracle{
		heightFn: func(x, z float64) float64 { return 10 },
		biomeFn: func(x, z float64) string {
			if x < 32 {
				return terrain.BiomeDesert
			}
			return terrain.BiomeMountains // Не представлен
		},
	}

	biomes := []*Biome{testBiome("b1", terrain.BiomeDesert)}

	partition, err := PartitionTilesByBiome(biomes, oracle, size, 16.0)
	require.NoError(t, err)

	assert.Equal(t, size*size, len(partition.Assignments)+len(partition.Unassigned))
	assert.NotEmpty(t, partition.Unassigned, "Тайлы с непредставленным типом остаются незакреплёнными")
	assert.Len(t, biomes[0].TileKeys, len(partition.Assignments))
}

func TestPartitionTilesByBiome_InvalidInput(t *testing.T) {
	biomes := []*Biome{testBiome("b1", terrain.BiomePlains)}

	_, err := PartitionTilesByBiome(biomes, nil, 4, 16.0)
	assert.ErrorIs(t, err, ErrNilOracle)

	_, err = PartitionTilesByBiome(biomes, flatOracle(10), 0, 16.0)
	assert.ErrorIs(t, err, ErrInvalidWorldSize)

	_, err = PartitionTilesByBiome(biomes, flatOracle(10), 4, 0)
	assert.ErrorIs(t, err, ErrInvalidTileSize)
}

func TestPartitionTilesByBiome_TileCenters(t *testing.T) {
	var centers [][2]float64
	oracle := &stubOracle{
		heightFn: func(x, z float64) float64 { return 10 },
		biomeFn: func(x, z float64) string {
			centers = append(centers, [2]float64{x, z})
			return terrain.BiomePlains
		},
	}

	_, err := PartitionTilesByBiome([]*Biome{testBiome("b1", terrain.BiomePlains)}, oracle, 2, 10.0)
	require.NoError(t, err)
	require.Len(t, centers, 4)

	// Первый запрошенный центр — тайл (0,0): (0.5*10, 0.5*10)
	assert.InDelta(t, 5.0, centers[0][0], 1e-9)
	assert.InDelta(t, 5.0, centers[0][1], 1e-9)
}
