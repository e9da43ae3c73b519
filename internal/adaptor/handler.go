package adaptor

import (
	"movie-scout/internal/render"
	"movie-scout/internal/usecase"
	"movie-scout/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Page   *PageHandler
	Search *SearchHandler
}

func NewHandler(service *usecase.Service, renderer *render.Renderer, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Page:   NewPageHandler(renderer, config, log),
		Search: NewSearchHandler(service.Search, renderer, config, log),
	}
}
