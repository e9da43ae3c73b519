package usecase

import (
	"movie-scout/internal/data/upstream"
	"movie-scout/internal/render"
	"movie-scout/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Search SearchService
}

func NewService(gw upstream.Gateway, renderer *render.Renderer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Search: NewSearchService(gw, renderer, config, log),
	}
}
