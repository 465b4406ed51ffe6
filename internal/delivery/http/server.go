package http

import (
	"context"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "github.com/tile-explorer/docs"
	"github.com/tile-explorer/internal/config"
	"github.com/tile-explorer/internal/delivery/http/handler"
	"github.com/tile-explorer/internal/delivery/http/middleware"
	apperrors "github.com/tile-explorer/internal/pkg/errors"
	"github.com/tile-explorer/internal/pkg/metrics"
	"github.com/tile-explorer/internal/pkg/utils"
)

// Handlers - набор обработчиков, которые регистрирует сервер
type Handlers struct {
	Coverage *handler.CoverageHandler
	Ride     *handler.RideHandler
	Sync     *handler.SyncHandler
	Stats    *handler.StatsHandler
	Health   *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:     "Tile Explorer",
		ReadTimeout: 10 * time.Second,
		// пересчёт покрытия на холодном кеше может занять несколько секунд
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(metrics.Middleware())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", metrics.Handler())

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.Health.Health)
	api.Get("/ready", s.handlers.Health.Ready)

	// Coverage
	api.Get("/coverage", s.handlers.Coverage.GetCoverage)
	api.Get("/coverage.geojson", s.handlers.Coverage.GetCoverageGeoJSON)
	api.Get("/tiles/:x/:y/polygon", s.handlers.Coverage.GetTilePolygon)

	// Rides
	api.Get("/rides", s.handlers.Ride.ListRides)
	api.Post("/rides", s.handlers.Ride.CreateRide)
	api.Post("/sync", s.handlers.Sync.Sync)

	api.Get("/stats", s.handlers.Stats.GetStatistics)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperrors.From(err); ok {
			return utils.SendError(c, appErr)
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: apperrors.New(statusCode(code), err.Error(), code),
		})
	}
}

// statusCode - "Not Found" -> "NOT_FOUND"
func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(nethttp.StatusText(status), " ", "_"))
}
