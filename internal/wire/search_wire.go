package wire

import (
	"movie-scout/internal/adaptor"
	"movie-scout/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSearch(
	r chi.Router,
	searchHandler *adaptor.SearchHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// GET /search - form submission, renders the combined results page
	r.Get("/search", searchHandler.Search)

	// GET /api/search - same flow, combined JSON payload
	r.Get("/api/search", searchHandler.SearchAPI)
}
