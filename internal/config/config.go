package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
// Секции: сервер, шина событий, мир и дорожная сеть.

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	EventBus EventBusConfig `yaml:"eventbus"`
	World    WorldConfig    `yaml:"world"`
	Roads    RoadsConfig    `yaml:"roads"`
}

type ServerConfig struct {
	RESTPort    int `yaml:"rest_port"`
	MetricsPort int `yaml:"metrics_port"`
}

type EventBusConfig struct {
	URL       string `yaml:"url"`
	Stream    string `yaml:"stream"`
	Retention int    `yaml:"retention_hours"`
}

// WorldConfig описывает параметры тайловой сетки и террейна
type WorldConfig struct {
	Seed        int64   `yaml:"seed"`
	SizeInTiles int     `yaml:"size_in_tiles"`
	TileSize    float64 `yaml:"tile_size"`
}

// RoadsConfig описывает параметры синтеза дорожной сети
type RoadsConfig struct {
	RoadWidth             float64 `yaml:"road_width"`
	ExtraConnectionsRatio float64 `yaml:"extra_connections_ratio"`
	WaterThreshold        float64 `yaml:"water_threshold"`
	PathStepSize          float64 `yaml:"path_step_size"`
	SmoothingIterations   int     `yaml:"smoothing_iterations"`
	WaterPolicy           string  `yaml:"water_policy"` // accept | warn | error
}

// GetRESTPort возвращает REST API порт с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "WORLDFORGE_REST_PORT", 8090)
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(s.MetricsPort, "WORLDFORGE_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV WORLDFORGE_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("WORLDFORGE_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default возвращает конфигурацию по умолчанию (без файла)
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed:        12345,
			SizeInTiles: 64,
			TileSize:    16.0,
		},
		Roads: RoadsConfig{
			RoadWidth:             4.0,
			ExtraConnectionsRatio: 0.3,
			WaterThreshold:        2.0,
			PathStepSize:          5.0,
			SmoothingIterations:   3,
			WaterPolicy:           "warn",
		},
	}
}
