package upstream

import (
	"context"

	"movie-scout/internal/dto/response"
)

// Gateway is the data-access boundary of the service. Movie data lives
// behind two read-only HTTP endpoints implemented elsewhere; this interface
// is what the usecase layer orchestrates against (and what tests fake).
type Gateway interface {
	// MovieDetails fetches /movie_details for the given title.
	MovieDetails(ctx context.Context, movieName string) (*response.DetailsResult, error)

	// FullRecommendations fetches /full_recommendations, asking for up to k
	// entries. Order of the returned list is server relevance order.
	FullRecommendations(ctx context.Context, movieName string, k int) (*response.RecommendationsResult, error)
}
