package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/annel0/world-forge/internal/config"
	"github.com/annel0/world-forge/internal/middleware"
)

// RestServer представляет REST API сервер инструмента миростроения
type RestServer struct {
	router  *gin.Engine
	cfg     *config.Config
	port    string
	metrics *ServerMetrics
}

// NewRestServer создает новый REST API сервер
func NewRestServer(cfg *config.Config) *RestServer {
	port := fmt.Sprintf(":%d", cfg.Server.GetRESTPort())

	// Устанавливаем режим релиза для gin
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	loggerMw := middleware.NewRequestLogger()
	router.Use(loggerMw.Handler())

	otelRouter := otelgin.Middleware("worldforge_api")
	router.Use(otelRouter)

	promMw := middleware.NewPrometheusMiddleware("worldforge_api")
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router)

	server := &RestServer{
		router:  router,
		cfg:     cfg,
		port:    port,
		metrics: NewServerMetrics(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	// Middleware для CORS: редактор мира живёт на другом origin
	rs.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	rs.router.GET("/health", rs.handleHealth)

	api := rs.router.Group("/api")
	{
		foundation := api.Group("/foundation")
		{
			foundation.POST("/generate", rs.handleGenerateFoundation)
			foundation.GET("/status", rs.handleStatus)
		}
	}
}

// Start запускает сервер в отдельной горутине
func (rs *RestServer) Start() error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- rs.router.Run(rs.port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("rest server: %w", err)
	default:
		return nil
	}
}

// handleHealth возвращает состояние сервиса
func (rs *RestServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": rs.metrics.GetUptime(),
	})
}
