package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/annel0/world-forge/internal/eventbus"
	"github.com/annel0/world-forge/internal/logging"
	"github.com/annel0/world-forge/internal/world"
	"github.com/annel0/world-forge/internal/world/terrain"
)

// GenerateRequest тело запроса прохода "Apply & Lock".
// Незаполненные параметры берутся из конфигурации сервиса.
type GenerateRequest struct {
	Seed   *int64            `json:"seed,omitempty"`
	Towns  []*world.Town     `json:"towns"`
	Biomes []*world.Biome    `json:"biomes"`
	Config *GenerateOverride `json:"config,omitempty"`
}

// GenerateOverride переопределяет параметры генерации для одного запроса
type GenerateOverride struct {
	RoadWidth             *float64 `json:"road_width,omitempty"`
	ExtraConnectionsRatio *float64 `json:"extra_connections_ratio,omitempty"`
	WaterThreshold        *float64 `json:"water_threshold,omitempty"`
	PathStepSize          *float64 `json:"path_step_size,omitempty"`
	SmoothingIterations   *int     `json:"smoothing_iterations,omitempty"`
	WaterPolicy           *string  `json:"water_policy,omitempty"`
	WorldSizeInTiles      *int     `json:"world_size_in_tiles,omitempty"`
	TileSize              *float64 `json:"tile_size,omitempty"`
}

// buildFoundationConfig собирает конфигурацию прохода из настроек сервиса и
// переопределений запроса
func (rs *RestServer) buildFoundationConfig(override *GenerateOverride) (*world.FoundationConfig, error) {
	roads := rs.cfg.Roads
	worldCfg := rs.cfg.World

	policy, err := world.ParseWaterPolicy(roads.WaterPolicy)
	if err != nil {
		return nil, err
	}

	cfg := &world.FoundationConfig{
		Roads: world.RoadNetworkConfig{
			RoadWidth:             roads.RoadWidth,
			ExtraConnectionsRatio: roads.ExtraConnectionsRatio,
			WaterThreshold:        roads.WaterThreshold,
			PathStepSize:          roads.PathStepSize,
			SmoothingIterations:   roads.SmoothingIterations,
			WaterPolicy:           policy,
		},
		WorldSizeInTiles: worldCfg.SizeInTiles,
		TileSize:         worldCfg.TileSize,
	}

	if override == nil {
		return cfg, nil
	}
	if override.RoadWidth != nil {
		cfg.Roads.RoadWidth = *override.RoadWidth
	}
	if override.ExtraConnectionsRatio != nil {
		cfg.Roads.ExtraConnectionsRatio = *override.ExtraConnectionsRatio
	}
	if override.WaterThreshold != nil {
		cfg.Roads.WaterThreshold = *override.WaterThreshold
	}
	if override.PathStepSize != nil {
		cfg.Roads.PathStepSize = *override.PathStepSize
	}
	if override.SmoothingIterations != nil {
		cfg.Roads.SmoothingIterations = *override.SmoothingIterations
	}
	if override.WaterPolicy != nil {
		policy, err := world.ParseWaterPolicy(*override.WaterPolicy)
		if err != nil {
			return nil, err
		}
		cfg.Roads.WaterPolicy = policy
	}
	if override.WorldSizeInTiles != nil {
		cfg.WorldSizeInTiles = *override.WorldSizeInTiles
	}
	if override.TileSize != nil {
		cfg.TileSize = *override.TileSize
	}
	return cfg, nil
}

// isConfigError распознаёт ошибки валидации конфигурации
func isConfigError(err error) bool {
	return errors.Is(err, world.ErrInvalidPathStep) ||
		errors.Is(err, world.ErrInvalidRoadWidth) ||
		errors.Is(err, world.ErrInvalidRatio) ||
		errors.Is(err, world.ErrInvalidSmoothing) ||
		errors.Is(err, world.ErrInvalidWorldSize) ||
		errors.Is(err, world.ErrInvalidTileSize) ||
		errors.Is(err, world.ErrUnknownWaterPolicy)
}

// handleGenerateFoundation выполняет проход "Apply & Lock" по снимку городов
// и биомов из запроса
func (rs *RestServer) handleGenerateFoundation(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "невалидное тело запроса: " + err.Error()})
		return
	}

	cfg, err := rs.buildFoundationConfig(req.Config)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed := rs.cfg.World.Seed
	if req.Seed != nil {
		seed = *req.Seed
	}
	oracle := terrain.NewNoiseOracle(seed)

	foundation, err := world.GenerateWorldFoundation(req.Towns, req.Biomes, oracle, cfg)
	if err != nil {
		if isConfigError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logging.Error("Ошибка генерации фундамента мира: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	rs.publishFoundationEvent(c, foundation)

	c.JSON(http.StatusOK, foundation)
}

// publishFoundationEvent отправляет сводку прохода в шину событий
func (rs *RestServer) publishFoundationEvent(c *gin.Context, foundation *world.WorldFoundation) {
	ev, err := eventbus.NewEnvelope(eventbus.EventFoundationGenerated, foundation.Report)
	if err != nil {
		logging.Warn("Не удалось собрать событие генерации: %v", err)
		return
	}
	if traceID, ok := c.Get("trace_id"); ok {
		ev.Metadata = map[string]string{"trace_id": traceID.(string)}
	}
	if err := eventbus.Publish(c.Request.Context(), ev); err != nil {
		logging.Warn("Не удалось опубликовать событие генерации: %v", err)
	}
}
