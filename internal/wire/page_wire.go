package wire

import (
	"movie-scout/internal/adaptor"
	"movie-scout/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePage(
	r chi.Router,
	pageHandler *adaptor.PageHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// GET / - search page with empty output areas
	r.Get("/", pageHandler.Index)
}
