package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/world-forge/internal/api"
	"github.com/annel0/world-forge/internal/config"
	"github.com/annel0/world-forge/internal/eventbus"
	"github.com/annel0/world-forge/internal/logging"
	"github.com/annel0/world-forge/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (или ENV WORLDFORGE_CONFIG)")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("worldforge"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🗺️  Запуск World Forge — генератора фундамента мира...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = config.Default()
		logging.Info("Конфигурация не задана — используются значения по умолчанию")
	}

	restPort := cfg.Server.GetRESTPort()
	metricsPort := cfg.Server.GetMetricsPort()
	logging.Info("📡 Конфигурация: REST=:%d, Metrics=:%d, сид мира=%d, сетка %dx%d",
		restPort, metricsPort, cfg.World.Seed, cfg.World.SizeInTiles, cfg.World.SizeInTiles)

	// === OBSERVABILITY ===
	ctx := context.Background()
	shutdownTelemetry, err := observability.InitTelemetry(ctx, "worldforge")
	if err != nil {
		// Телеметрия опциональна: без OTLP-коллектора продолжаем работу
		logging.Warn("OpenTelemetry недоступен: %v", err)
		shutdownTelemetry = func(context.Context) error { return nil }
	}

	// === ШИНА СОБЫТИЙ ===
	var bus eventbus.EventBus
	if cfg.EventBus.URL != "" {
		retention := time.Duration(cfg.EventBus.Retention) * time.Hour
		jsBus, err := eventbus.NewJetStreamBus(cfg.EventBus.URL, cfg.EventBus.Stream, retention)
		if err != nil {
			logging.Warn("NATS недоступен (%v) — используется in-memory шина", err)
			bus = eventbus.NewMemoryBus(256)
		} else {
			bus = jsBus
			defer jsBus.Close()
			logging.Info("✅ Шина событий: NATS JetStream (%s)", cfg.EventBus.URL)
		}
	} else {
		bus = eventbus.NewMemoryBus(256)
		logging.Info("Шина событий: in-memory")
	}
	eventbus.Init(bus)

	exporter := eventbus.NewMetricsExporter(bus)
	exporter.StartHTTP(fmt.Sprintf(":%d", metricsPort))
	defer exporter.Stop()

	// === REST API ===
	restServer := api.NewRestServer(cfg)
	if err := restServer.Start(); err != nil {
		logging.Error("❌ Ошибка запуска REST API: %v", err)
		log.Fatalf("❌ Ошибка запуска REST API: %v", err)
	}

	logging.Info("✅ Сервис запущен и готов принимать проходы генерации")
	logging.Info("   🌐 REST API: http://localhost:%d", restPort)
	logging.Info("   ❤️  Health check: http://localhost:%d/health", restPort)
	logging.Info("   📈 Метрики: http://localhost:%d/metrics", metricsPort)
	logging.Info("💡 Пример: curl -X POST http://localhost:%d/api/foundation/generate -H 'Content-Type: application/json' -d '{\"towns\":[],\"biomes\":[]}'", restPort)

	// Канал для получения сигналов ОС
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logging.Info("📡 Получен сигнал %v, завершение работы...", sig)

	// === GRACEFUL SHUTDOWN ===
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logging.Warn("Ошибка остановки телеметрии: %v", err)
	}

	logging.Info("👋 World Forge остановлен")
}
