package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/world-forge/internal/config"
	"github.com/annel0/world-forge/internal/vec"
	"github.com/annel0/world-forge/internal/world"
)

var (
	testServer     *RestServer
	testServerOnce sync.Once
)

// getTestServer создаёт сервер один раз: middleware регистрирует
// Prometheus-метрики в глобальном регистре
func getTestServer() *RestServer {
	testServerOnce.Do(func() {
		testServer = NewRestServer(config.Default())
	})
	return testServer
}

func postGenerate(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/foundation/generate", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	getTestServer().router.ServeHTTP(w, req)
	return w
}

func apiTown(id string, x, z float64) *world.Town {
	return &world.Town{
		ID:       id,
		Position: vec.Vec3Float{X: x, Z: z},
		Size:     10,
		EntryPoints: []world.EntryPoint{
			{Direction: "east", Position: vec.Vec3Float{X: x + 5, Z: z}},
			{Direction: "west", Position: vec.Vec3Float{X: x - 5, Z: z}},
		},
	}
}

func TestHandleGenerateFoundation_OK(t *testing.T) {
	ratio := 1.0
	req := GenerateRequest{
		Towns: []*world.Town{
			apiTown("t1", 0, 0),
			apiTown("t2", 100, 0),
			apiTown("t3", 50, 90),
		},
		Biomes: []*world.Biome{
			{ID: "b1", Type: "plains", InfluenceRadius: 200},
			{ID: "b2", Type: "water", InfluenceRadius: 200},
			{ID: "b3", Type: "deep_water", InfluenceRadius: 200},
			{ID: "b4", Type: "forest", InfluenceRadius: 200},
			{ID: "b5", Type: "desert", InfluenceRadius: 200},
			{ID: "b6", Type: "mountains", InfluenceRadius: 200},
		},
		Config: &GenerateOverride{ExtraConnectionsRatio: &ratio},
	}

	w := postGenerate(t, req)
	require.Equal(t, http.StatusOK, w.Code, "Тело ответа: %s", w.Body.String())

	var foundation world.WorldFoundation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &foundation))

	assert.Len(t, foundation.Roads, 3, "Три города при ratio=1.0 дают три дороги")
	assert.Equal(t, 2, foundation.Report.MainRoads)
	assert.Equal(t, 1, foundation.Report.SecondaryRoads)

	// Все типы биомов представлены — каждый тайл закреплён
	total := len(foundation.Partition.Assignments) + len(foundation.Partition.Unassigned)
	assert.Equal(t, 64*64, total)
	assert.Empty(t, foundation.Partition.Unassigned)
}

func TestHandleGenerateFoundation_InvalidConfig(t *testing.T) {
	badStep := 0.0
	req := GenerateRequest{
		Towns:  []*world.Town{apiTown("t1", 0, 0), apiTown("t2", 100, 0)},
		Config: &GenerateOverride{PathStepSize: &badStep},
	}

	w := postGenerate(t, req)
	assert.Equal(t, http.StatusBadRequest, w.Code, "Нулевой шаг пути должен давать 400")
}

func TestHandleGenerateFoundation_SingleTown(t *testing.T) {
	req := GenerateRequest{
		Towns:  []*world.Town{apiTown("t1", 0, 0)},
		Biomes: []*world.Biome{{ID: "b1", Type: "plains"}},
	}

	w := postGenerate(t, req)
	require.Equal(t, http.StatusOK, w.Code)

	var foundation world.WorldFoundation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &foundation))
	assert.Empty(t, foundation.Roads, "Для одного города дорог быть не должно")
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	getTestServer().router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
