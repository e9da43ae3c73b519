package render

import (
	"html/template"
	"strings"
	"testing"

	"movie-scout/internal/dto/response"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func parseHTML(t *testing.T, markup template.HTML) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(markup)))
	require.NoError(t, err)
	return doc
}

func strptr(s string) *string { return &s }

func sampleDetails() *response.DetailsResult {
	return &response.DetailsResult{
		Movie: &response.MovieDetails{
			Title:       "Inception",
			Overview:    "A thief who steals corporate secrets through dream-sharing.",
			Rating:      response.Rating{Value: 8.4, Known: true},
			ReleaseDate: "2010-07-15",
			Cast:        "Leonardo DiCaprio, Joseph Gordon-Levitt",
			Crew:        "Christopher Nolan",
			PosterURL:   strptr("https://image.tmdb.org/t/p/w500/inception.jpg"),
		},
	}
}

func TestDetailsSectionRendersAllFields(t *testing.T) {
	markup, err := newRenderer(t).DetailsSection(sampleDetails())
	require.NoError(t, err)

	doc := parseHTML(t, markup)
	card := doc.Find(".details-card")
	require.Equal(t, 1, card.Length())

	assert.Equal(t, "Inception", card.Find(".movie-title").Text())
	assert.Contains(t, card.Find(".overview").Text(), "dream-sharing")
	assert.Equal(t, "Rating: 8.4", card.Find(".rating").Text())
	assert.Equal(t, "Release Date: 2010-07-15", card.Find(".release-date").Text())
	assert.Contains(t, card.Find(".cast").Text(), "Leonardo DiCaprio")
	assert.Contains(t, card.Find(".crew").Text(), "Christopher Nolan")

	src, ok := card.Find("img.poster").Attr("src")
	require.True(t, ok)
	assert.Contains(t, src, "inception.jpg")
}

func TestDetailsSectionOmitsPosterWhenAbsent(t *testing.T) {
	details := sampleDetails()
	details.Movie.PosterURL = nil

	markup, err := newRenderer(t).DetailsSection(details)
	require.NoError(t, err)

	doc := parseHTML(t, markup)
	assert.Equal(t, 0, doc.Find("img").Length())
	assert.Equal(t, 1, doc.Find(".details-card").Length())
}

func TestDetailsSectionErrorCard(t *testing.T) {
	markup, err := newRenderer(t).DetailsSection(&response.DetailsResult{Err: "Movie not found."})
	require.NoError(t, err)

	doc := parseHTML(t, markup)
	assert.Equal(t, "Movie not found.", doc.Find(".error-card p").Text())
	assert.Equal(t, 0, doc.Find(".details-card").Length())
}

func TestRecommendationsHeadingAndOrder(t *testing.T) {
	recs := &response.RecommendationsResult{
		Movies: []response.RecommendedMovie{
			{MovieDetails: response.MovieDetails{Title: "Interstellar"}},
			{MovieDetails: response.MovieDetails{Title: "Tenet"}},
			{MovieDetails: response.MovieDetails{Title: "Memento"}},
		},
	}

	markup, err := newRenderer(t).RecommendationsSection(recs)
	require.NoError(t, err)

	doc := parseHTML(t, markup)
	assert.Equal(t, "Recommended Movies", doc.Find(".section-title").Text())

	var titles []string
	doc.Find(".recommendation-card .movie-title").Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, s.Text())
	})

	want := []string{"Interstellar", "Tenet", "Memento"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("card order mismatch (-want +got):\n%s", diff)
	}
}

func TestOttFreeEmptyPaidPopulated(t *testing.T) {
	recs := &response.RecommendationsResult{
		Movies: []response.RecommendedMovie{
			{
				MovieDetails: response.MovieDetails{Title: "Interstellar"},
				OTT:          &response.OttAvailability{Free: []string{}, Paid: []string{"Netflix"}},
			},
		},
	}

	markup, err := newRenderer(t).RecommendationsSection(recs)
	require.NoError(t, err)

	doc := parseHTML(t, markup)
	assert.Equal(t, "Free: Not Available", doc.Find(".ott-free").Text())
	assert.Equal(t, "Paid: Netflix", doc.Find(".ott-paid").Text())
}

func TestOttBothTiersPopulated(t *testing.T) {
	recs := &response.RecommendationsResult{
		Movies: []response.RecommendedMovie{
			{
				MovieDetails: response.MovieDetails{Title: "Interstellar"},
				OTT:          &response.OttAvailability{Free: []string{"Tubi"}, Paid: []string{"Netflix", "Prime Video"}},
			},
		},
	}

	markup, err := newRenderer(t).RecommendationsSection(recs)
	require.NoError(t, err)

	doc := parseHTML(t, markup)
	assert.Equal(t, "Free: Tubi", doc.Find(".ott-free").Text())
	assert.Equal(t, "Paid: Netflix, Prime Video", doc.Find(".ott-paid").Text())
}

func TestOttAbsentCollapsesToSingleLine(t *testing.T) {
	recs := &response.RecommendationsResult{
		Movies: []response.RecommendedMovie{
			{MovieDetails: response.MovieDetails{Title: "Tenet"}},
		},
	}

	markup, err := newRenderer(t).RecommendationsSection(recs)
	require.NoError(t, err)

	doc := parseHTML(t, markup)
	assert.Equal(t, "Not Available", strings.TrimSpace(doc.Find(".ott").Text()))
	assert.Equal(t, 0, doc.Find(".ott-free").Length())
	assert.Equal(t, 0, doc.Find(".ott-paid").Length())
}

func TestEmptyRecommendationList(t *testing.T) {
	markup, err := newRenderer(t).RecommendationsSection(&response.RecommendationsResult{Movies: []response.RecommendedMovie{}})
	require.NoError(t, err)

	doc := parseHTML(t, markup)
	assert.Equal(t, "No recommendations found.", doc.Find(".info-card p").Text())
	assert.Equal(t, 0, doc.Find(".recommendation-card").Length())
	assert.Equal(t, 0, doc.Find(".section-title").Length())
}

func TestRecommendationsErrorCard(t *testing.T) {
	markup, err := newRenderer(t).RecommendationsSection(&response.RecommendationsResult{Err: "Failed to fetch recommendations."})
	require.NoError(t, err)

	doc := parseHTML(t, markup)
	assert.Equal(t, "Failed to fetch recommendations.", doc.Find(".error-card p").Text())
}

func TestUpstreamMarkupIsStripped(t *testing.T) {
	details := sampleDetails()
	details.Movie.Overview = `Great <script>alert("x")</script> movie <b>really</b>`

	markup, err := newRenderer(t).DetailsSection(details)
	require.NoError(t, err)

	assert.NotContains(t, string(markup), "<script>")
	assert.NotContains(t, string(markup), "<b>")

	doc := parseHTML(t, markup)
	overview := doc.Find(".overview").Text()
	assert.Contains(t, overview, "Great")
	assert.Contains(t, overview, "movie")
}

func TestPageRendersAreasAndForm(t *testing.T) {
	page, err := newRenderer(t).Page(PageData{
		Query:       "inception",
		Results:     template.HTML(`<div class="movie-card details-card">x</div>`),
		Suggestions: []string{"Avatar", "Interstellar"},
	})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(page)))
	require.NoError(t, err)

	val, _ := doc.Find("#movie-name").Attr("value")
	assert.Equal(t, "inception", val)
	assert.Equal(t, 1, doc.Find("#results .details-card").Length())
	assert.Equal(t, "", strings.TrimSpace(doc.Find("#error-message").Text()))
	assert.Equal(t, 2, doc.Find(".suggestion").Length())
}

func TestPageRendersValidationError(t *testing.T) {
	page, err := newRenderer(t).Page(PageData{Error: "Please enter a movie name."})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(page)))
	require.NoError(t, err)

	assert.Equal(t, "Please enter a movie name.", strings.TrimSpace(doc.Find("#error-message").Text()))
	assert.Equal(t, "", strings.TrimSpace(doc.Find("#results").Text()))
}
