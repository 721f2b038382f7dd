package world

import (
	"errors"
	"fmt"

	"github.com/annel0/world-forge/internal/vec"
)

// Ошибки валидации конфигурации генерации.
// Невалидные параметры отклоняются сразу: иначе возможны бесконечные циклы
// выборки точек и деление на ноль.
var (
	ErrInvalidPathStep    = errors.New("world: path_step_size должен быть > 0")
	ErrInvalidRoadWidth   = errors.New("world: road_width должен быть > 0")
	ErrInvalidRatio       = errors.New("world: extra_connections_ratio должен быть в [0,1]")
	ErrInvalidSmoothing   = errors.New("world: smoothing_iterations должен быть >= 0")
	ErrInvalidWorldSize   = errors.New("world: world_size_in_tiles должен быть > 0")
	ErrInvalidTileSize    = errors.New("world: tile_size должен быть > 0")
	ErrNilOracle          = errors.New("world: оракул террейна не задан")
	ErrUnknownWaterPolicy = errors.New("world: неизвестная water_policy")
)

// EntryPoint точка подключения дороги на границе города
type EntryPoint struct {
	Direction       string        `json:"direction"`
	Position        vec.Vec3Float `json:"position"`
	ConnectedRoadID string        `json:"connected_road_id,omitempty"`
}

// Town город, размещённый внешним генератором
type Town struct {
	ID               string        `json:"id"`
	Position         vec.Vec3Float `json:"position"`
	Size             float64       `json:"size"`
	BiomeID          string        `json:"biome_id"`
	EntryPoints      []EntryPoint  `json:"entry_points"`
	ConnectedRoadIDs []string      `json:"connected_road_ids,omitempty"`
}

// GeneratedRoad готовая межгородская дорога.
// Path всегда содержит >= 2 точек и упорядочен от города from к городу to.
type GeneratedRoad struct {
	ID             string          `json:"id"`
	Path           []vec.Vec3Float `json:"path"`
	Width          float64         `json:"width"`
	ConnectedTowns [2]string       `json:"connected_towns"`
	IsMainRoad     bool            `json:"is_main_road"`
}

// Biome зона влияния биома с множеством закреплённых тайлов
type Biome struct {
	ID              string              `json:"id"`
	Type            string              `json:"type"`
	Center          vec.Vec3Float       `json:"center"`
	InfluenceRadius float64             `json:"influence_radius"`
	TileKeys        map[string]struct{} `json:"-"`
}

// WaterPolicy задаёт поведение при неустранимой подводной точке пути
type WaterPolicy int

const (
	// WaterPolicyAccept молча оставляет подводную точку
	WaterPolicyAccept WaterPolicy = iota
	// WaterPolicyWarn оставляет точку, но логирует и считает её в отчёте
	WaterPolicyWarn
	// WaterPolicyError прерывает генерацию при первой неустранимой точке
	WaterPolicyError
)

// ParseWaterPolicy разбирает строковое значение из конфигурации
func ParseWaterPolicy(s string) (WaterPolicy, error) {
	switch s {
	case "", "warn":
		return WaterPolicyWarn, nil
	case "accept":
		return WaterPolicyAccept, nil
	case "error":
		return WaterPolicyError, nil
	default:
		return WaterPolicyWarn, fmt.Errorf("%w: %q", ErrUnknownWaterPolicy, s)
	}
}

// RoadNetworkConfig распознаваемые параметры синтеза дорожной сети
type RoadNetworkConfig struct {
	RoadWidth             float64
	ExtraConnectionsRatio float64
	WaterThreshold        float64
	PathStepSize          float64
	SmoothingIterations   int
	WaterPolicy           WaterPolicy
}

// Validate отклоняет параметры, при которых генерация некорректна
func (c *RoadNetworkConfig) Validate() error {
	if c.PathStepSize <= 0 {
		return ErrInvalidPathStep
	}
	if c.RoadWidth <= 0 {
		return ErrInvalidRoadWidth
	}
	if c.ExtraConnectionsRatio < 0 || c.ExtraConnectionsRatio > 1 {
		return ErrInvalidRatio
	}
	if c.SmoothingIterations < 0 {
		return ErrInvalidSmoothing
	}
	return nil
}

// RoadNetworkReport сводка одного прохода генерации дорог
type RoadNetworkReport struct {
	TownCount        int `json:"town_count"`
	CandidateEdges   int `json:"candidate_edges"`
	MainRoads        int `json:"main_roads"`
	SecondaryRoads   int `json:"secondary_roads"`
	UnderwaterPoints int `json:"underwater_points"`
}
