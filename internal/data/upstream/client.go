package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"movie-scout/internal/dto/response"
	"movie-scout/pkg/utils"

	"go.uber.org/zap"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(config utils.UpstreamConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		log: log.With(zap.String("client", "upstream")),
	}
}

// detailsPayload is the raw /movie_details body. The backend reports its own
// failures as an error field, usually alongside a non-2xx status; the body is
// authoritative either way.
type detailsPayload struct {
	Error string `json:"error"`
	response.MovieDetails
}

type recommendationsPayload struct {
	Error             string                      `json:"error"`
	RecommendedMovies []response.RecommendedMovie `json:"recommended_movies"`
}

func (c *Client) MovieDetails(ctx context.Context, movieName string) (*response.DetailsResult, error) {
	params := url.Values{}
	params.Set("movie_name", movieName)

	var payload detailsPayload
	if err := c.getJSON(ctx, "/movie_details", params, &payload); err != nil {
		return nil, fmt.Errorf("movie details: %w", err)
	}

	if payload.Error != "" {
		return &response.DetailsResult{Err: payload.Error}, nil
	}

	movie := payload.MovieDetails
	return &response.DetailsResult{Movie: &movie}, nil
}

func (c *Client) FullRecommendations(ctx context.Context, movieName string, k int) (*response.RecommendationsResult, error) {
	params := url.Values{}
	params.Set("movie_name", movieName)
	if k > 0 {
		params.Set("k", strconv.Itoa(k))
	}

	var payload recommendationsPayload
	if err := c.getJSON(ctx, "/full_recommendations", params, &payload); err != nil {
		return nil, fmt.Errorf("full recommendations: %w", err)
	}

	if payload.Error != "" {
		return &response.RecommendationsResult{Err: payload.Error}, nil
	}

	return &response.RecommendationsResult{Movies: payload.RecommendedMovies}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug("Upstream response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	// Decode regardless of status code; error statuses still carry the
	// {error} body this service surfaces to the user.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err)
	}

	return nil
}
