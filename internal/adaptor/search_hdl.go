package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"movie-scout/internal/dto/request"
	"movie-scout/internal/render"
	"movie-scout/internal/usecase"
	"movie-scout/pkg/utils"

	"go.uber.org/zap"
)

type SearchHandler struct {
	service  usecase.SearchService
	renderer *render.Renderer
	config   *utils.Config
	log      *zap.Logger
}

func NewSearchHandler(service usecase.SearchService, renderer *render.Renderer, config *utils.Config, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service:  service,
		renderer: renderer,
		config:   config,
		log:      log.With(zap.String("handler", "search")),
	}
}

// Search handles GET /search (the form submission surface). The page is
// regenerated whole on every submission, so no stale content survives.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("movie_name")

	data := render.PageData{
		Query:       strings.TrimSpace(query),
		Suggestions: h.config.Search.Suggestions,
	}

	req := &request.SearchRequest{MovieName: data.Query}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		h.log.Warn("Search validation failed",
			zap.String("errors", utils.FormatValidationErrors(errs)))
		data.Error = usecase.MsgEmptyQuery
		h.writePage(w, data)
		return
	}

	view, err := h.service.Search(r.Context(), query)
	switch {
	case errors.Is(err, usecase.ErrEmptyQuery):
		data.Error = usecase.MsgEmptyQuery
	case err != nil:
		// Diagnostic detail is logged by the service; the user gets the
		// generic message and an empty results area.
		data.Error = usecase.MsgFetchFailed
	default:
		data.Results = view.Results
	}

	h.writePage(w, data)
}

// SearchAPI handles GET /api/search, the JSON surface over the same flow
func (h *SearchHandler) SearchAPI(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.SearchRequest{
		MovieName: strings.TrimSpace(query.Get("movie_name")),
		K:         utils.ParseInt(query.Get("k"), h.config.Search.RecLimit),
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		h.log.Warn("Search API validation failed",
			zap.String("errors", utils.FormatValidationErrors(errs)))
		utils.ResponseBadRequest(w, usecase.MsgEmptyQuery, errs)
		return
	}

	result, err := h.service.SearchData(r.Context(), req.MovieName, req.K)
	switch {
	case errors.Is(err, usecase.ErrEmptyQuery):
		utils.ResponseBadRequest(w, usecase.MsgEmptyQuery, nil)
	case err != nil:
		utils.ResponseBadGateway(w, usecase.MsgFetchFailed)
	default:
		utils.ResponseSuccess(w, "success", result)
	}
}

func (h *SearchHandler) writePage(w http.ResponseWriter, data render.PageData) {
	page, err := h.renderer.Page(data)
	if err != nil {
		h.log.Error("Failed to render search page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
