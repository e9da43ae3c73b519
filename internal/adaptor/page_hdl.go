package adaptor

import (
	"net/http"

	"movie-scout/internal/render"
	"movie-scout/pkg/utils"

	"go.uber.org/zap"
)

type PageHandler struct {
	renderer *render.Renderer
	config   *utils.Config
	log      *zap.Logger
}

func NewPageHandler(renderer *render.Renderer, config *utils.Config, log *zap.Logger) *PageHandler {
	return &PageHandler{
		renderer: renderer,
		config:   config,
		log:      log.With(zap.String("handler", "page")),
	}
}

// Index handles GET / with empty results and error areas
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.renderer.Page(render.PageData{
		Suggestions: h.config.Search.Suggestions,
	})
	if err != nil {
		h.log.Error("Failed to render index page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
