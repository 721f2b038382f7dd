package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/world-forge/internal/vec"
)

func townWithEntries(id string, x, z float64) *Town {
	town := testTown(id, x, 0, z)
	town.EntryPoints = []EntryPoint{
		{Direction: "north", Position: vec.Vec3Float{X: x, Z: z + 5}},
		{Direction: "south", Position: vec.Vec3Float{X: x, Z: z - 5}},
		{Direction: "east", Position: vec.Vec3Float{X: x + 5, Z: z}},
		{Direction: "west", Position: vec.Vec3Float{X: x - 5, Z: z}},
	}
	return town
}

func TestBindEntryPoints_NearestEntry(t *testing.T) {
	from := townWithEntries("t1", 0, 0)
	to := townWithEntries("t2", 100, 0)

	// Терминальные точки лежат у восточной границы t1 и западной границы t2
	road := &GeneratedRoad{
		ID: "road_a",
		Path: []vec.Vec3Float{
			{X: 4, Z: 0},
			{X: 50, Z: 0},
			{X: 96, Z: 0},
		},
		ConnectedTowns: [2]string{"t1", "t2"},
	}

	bindings := BindEntryPoints([]*Town{from, to}, []*GeneratedRoad{road})
	require.Len(t, bindings, 2)

	// Дорога идёт на восток от t1 и приходит с запада в t2
	assert.Equal(t, "road_a", findEntry(t, from, "east").ConnectedRoadID,
		"Восточная точка входа t1 должна быть привязана")
	assert.Equal(t, "road_a", findEntry(t, to, "west").ConnectedRoadID,
		"Западная точка входа t2 должна быть привязана")
	assert.Empty(t, findEntry(t, from, "north").ConnectedRoadID)

	for _, b := range bindings {
		assert.Equal(t, BindingBound, b.State, "Конфликтов быть не должно")
	}
}

func findEntry(t *testing.T, town *Town, direction string) *EntryPoint {
	t.Helper()
	for i := range town.EntryPoints {
		if town.EntryPoints[i].Direction == direction {
			return &town.EntryPoints[i]
		}
	}
	t.Fatalf("Точка входа %s не найдена у города %s", direction, town.ID)
	return nil
}

func TestBindEntryPoints_Determinism(t *testing.T) {
	build := func() ([]*Town, []*GeneratedRoad) {
		towns := []*Town{
			townWithEntries("t1", 0, 0),
			townWithEntries("t2", 100, 0),
			townWithEntries("t3", 50, 90),
		}
		roads := []*GeneratedRoad{
			{ID: "road_1", Path: []vec.Vec3Float{{X: 0, Z: 0}, {X: 100, Z: 0}}, ConnectedTowns: [2]string{"t1", "t2"}},
			{ID: "road_2", Path: []vec.Vec3Float{{X: 0, Z: 0}, {X: 50, Z: 90}}, ConnectedTowns: [2]string{"t1", "t3"}},
			{ID: "road_3", Path: []vec.Vec3Float{{X: 100, Z: 0}, {X: 50, Z: 90}}, ConnectedTowns: [2]string{"t2", "t3"}},
		}
		return towns, roads
	}

	townsA, roadsA := build()
	townsB, roadsB := build()

	bindingsA := BindEntryPoints(townsA, roadsA)
	bindingsB := BindEntryPoints(townsB, roadsB)

	require.Equal(t, bindingsA, bindingsB, "Повторный запуск должен давать идентичные привязки")
	for i := range townsA {
		assert.Equal(t, townsA[i].EntryPoints, townsB[i].EntryPoints,
			"Состояние точек входа города %s должно совпадать", townsA[i].ID)
	}
}

func TestBindEntryPoints_ConflictReported(t *testing.T) {
	town := townWithEntries("t1", 0, 0)
	other := townWithEntries("t2", 100, 0)
	third := townWithEntries("t3", 200, 0)

	// Обе дороги подходят к t1 с востока и претендуют на одну точку входа
	roads := []*GeneratedRoad{
		{ID: "road_early", Path: []vec.Vec3Float{{X: 4, Z: 0}, {X: 100, Z: 0}}, ConnectedTowns: [2]string{"t1", "t2"}},
		{ID: "road_late", Path: []vec.Vec3Float{{X: 4, Z: 1}, {X: 200, Z: 0}}, ConnectedTowns: [2]string{"t1", "t3"}},
	}

	bindings := BindEntryPoints([]*Town{town, other, third}, roads)

	var conflict *EntryBinding
	for i := range bindings {
		if bindings[i].State == BindingConflict {
			conflict = &bindings[i]
		}
	}
	require.NotNil(t, conflict, "Повторная привязка той же точки входа должна дать конфликт")
	assert.Equal(t, "road_early", conflict.PreviousRoadID)
	assert.Equal(t, "road_late", conflict.RoadID)
	assert.Equal(t, "t1", conflict.TownID)

	// Побеждает обработанная последней
	assert.Equal(t, "road_late", findEntry(t, town, "east").ConnectedRoadID)
}

func TestBindEntryPoints_ShortPathSkipped(t *testing.T) {
	town := townWithEntries("t1", 0, 0)
	degenerate := &GeneratedRoad{ID: "road_x", Path: []vec.Vec3Float{{X: 0, Z: 0}}, ConnectedTowns: [2]string{"t1", "t1"}}

	bindings := BindEntryPoints([]*Town{town}, []*GeneratedRoad{degenerate})
	assert.Empty(t, bindings, "Дорога с путём короче двух точек игнорируется")
}
