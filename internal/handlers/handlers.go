package handlers

import (
	"DarkScope/internal/config"
	"DarkScope/internal/middleware"
	"DarkScope/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	scanService *service.ScanService,
	queryService *service.QueryService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	intelHandler := NewIntelHandler(scanService, queryService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/reset", userHandler.ResetPassword)
	r.Post("/api/user/test", userHandler.Status)

	// Intel routes
	r.Post("/api/scan", intelHandler.Scan)
	r.Post("/api/query", intelHandler.Query)

	return &Handler{Router: r}
}
