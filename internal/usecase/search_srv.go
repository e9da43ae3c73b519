package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-scout/internal/data/upstream"
	"movie-scout/internal/dto/response"
	"movie-scout/internal/render"
	"movie-scout/pkg/middleware"
	"movie-scout/pkg/utils"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// ErrEmptyQuery is the local validation failure: no upstream call was made.
var ErrEmptyQuery = errors.New("empty query")

// User-facing messages; diagnostics stay in the logs.
const (
	MsgEmptyQuery  = "Please enter a movie name."
	MsgFetchFailed = "An error occurred while fetching data."
)

type SearchService interface {
	// Search runs the full submission flow and returns the combined markup,
	// details section first. ErrEmptyQuery means the flow stopped at
	// validation; any other error is a transport/decode failure and the
	// caller shows MsgFetchFailed.
	Search(ctx context.Context, query string) (*response.SearchView, error)

	// SearchData runs the same flow but returns the joined payloads for the
	// JSON surface. k caps the recommendation list (0 uses the configured
	// default).
	SearchData(ctx context.Context, query string, k int) (*response.CombinedResult, error)
}

type searchService struct {
	gw       upstream.Gateway
	renderer *render.Renderer
	config   *utils.Config
	log      *zap.Logger
}

func NewSearchService(
	gw upstream.Gateway,
	renderer *render.Renderer,
	config *utils.Config,
	log *zap.Logger,
) SearchService {
	return &searchService{
		gw:       gw,
		renderer: renderer,
		config:   config,
		log:      log.With(zap.String("service", "search")),
	}
}

func (s *searchService) Search(ctx context.Context, query string) (*response.SearchView, error) {
	details, recs, err := s.run(ctx, query, s.config.Search.RecLimit)
	if err != nil {
		return nil, err
	}

	detailsHTML, err := s.renderer.DetailsSection(details)
	if err != nil {
		s.log.Error("Failed to render details section", zap.Error(err))
		return nil, fmt.Errorf("render details: %w", err)
	}

	recsHTML, err := s.renderer.RecommendationsSection(recs)
	if err != nil {
		s.log.Error("Failed to render recommendations section", zap.Error(err))
		return nil, fmt.Errorf("render recommendations: %w", err)
	}

	// One combined update, details before recommendations
	return &response.SearchView{Results: detailsHTML + recsHTML}, nil
}

func (s *searchService) SearchData(ctx context.Context, query string, k int) (*response.CombinedResult, error) {
	if k <= 0 {
		k = s.config.Search.RecLimit
	}

	details, recs, err := s.run(ctx, query, k)
	if err != nil {
		return nil, err
	}

	return &response.CombinedResult{
		Details:         details,
		Recommendations: recs,
	}, nil
}

// run validates the query and performs both upstream fetches. Each
// submission is its own flow: nothing is shared with earlier or overlapping
// submissions, and the request id in the context tags its log lines.
func (s *searchService) run(ctx context.Context, query string, k int) (*response.DetailsResult, *response.RecommendationsResult, error) {
	movieName := strings.TrimSpace(query)
	if movieName == "" {
		return nil, nil, ErrEmptyQuery
	}

	details, recs, err := s.fetch(ctx, movieName, k)
	if err != nil {
		s.log.Error("Search fetch failed",
			zap.Error(err),
			zap.String("movie_name", movieName),
			zap.String("fetch_mode", s.config.Search.FetchMode),
			zap.String("request_id", middleware.GetRequestID(ctx)),
		)
		return nil, nil, fmt.Errorf("search %q: %w", movieName, err)
	}

	s.log.Info("Search completed",
		zap.String("movie_name", movieName),
		zap.Bool("details_ok", !details.Failed()),
		zap.Bool("recommendations_ok", !recs.Failed()),
		zap.Int("recommendation_count", len(recs.Movies)),
		zap.String("request_id", middleware.GetRequestID(ctx)),
	)

	return details, recs, nil
}

func (s *searchService) fetch(ctx context.Context, movieName string, k int) (*response.DetailsResult, *response.RecommendationsResult, error) {
	if s.config.Search.FetchMode == utils.FetchConcurrent {
		return s.fetchConcurrent(ctx, movieName, k)
	}

	// Sequential mode: the recommendations request is not issued until the
	// details response has fully resolved.
	details, err := s.gw.MovieDetails(ctx, movieName)
	if err != nil {
		return nil, nil, err
	}

	recs, err := s.gw.FullRecommendations(ctx, movieName, k)
	if err != nil {
		return nil, nil, err
	}

	return details, recs, nil
}

// fetchConcurrent issues both requests in parallel and joins before any
// rendering happens. Output ordering is identical to sequential mode.
func (s *searchService) fetchConcurrent(ctx context.Context, movieName string, k int) (*response.DetailsResult, *response.RecommendationsResult, error) {
	var (
		details *response.DetailsResult
		recs    *response.RecommendationsResult
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		details, err = s.gw.MovieDetails(ctx, movieName)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		recs, err = s.gw.FullRecommendations(ctx, movieName, k)
		return err
	})

	if err := p.Wait(); err != nil {
		return nil, nil, err
	}

	return details, recs, nil
}
