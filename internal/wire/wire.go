// internal/wire/wire.go
package wire

import (
	"net/http"

	"movie-scout/internal/adaptor"
	"movie-scout/internal/data/upstream"
	"movie-scout/internal/render"
	"movie-scout/internal/usecase"
	"movie-scout/pkg/middleware"
	"movie-scout/pkg/utils"
	"movie-scout/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(gw upstream.Gateway, renderer *render.Renderer, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(gw, renderer, config, logger)
	handler := adaptor.NewHandler(service, renderer, config, logger)

	// Setup router
	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wirePage(r, handler.Page, config, logger)
	wireSearch(r, handler.Search, config, logger)

	// Static assets (scroll reveal, suggestion chips, styles)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.StaticFS()))))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
