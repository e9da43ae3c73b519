package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"movie-scout/internal/dto/response"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer turns upstream payloads into the markup blocks of the results
// area. Every upstream-supplied text runs through a strict sanitizer before
// it is trusted as HTML.
type Renderer struct {
	tmpl   *template.Template
	policy *bluemonday.Policy
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{
		tmpl:   tmpl,
		policy: bluemonday.StrictPolicy(),
	}, nil
}

// movieCard is the per-card view model. Text fields are pre-sanitized, so
// templates may emit them without re-escaping.
type movieCard struct {
	PosterURL   string
	Title       template.HTML
	Overview    template.HTML
	Rating      string
	ReleaseDate template.HTML
	Cast        template.HTML
	Crew        template.HTML
	OTT         *ottLine
}

// ottLine drives the availability line: a Free/Paid split when either tier
// has providers, a single "Not Available" otherwise.
type ottLine struct {
	Split bool
	Free  template.HTML
	Paid  template.HTML
}

// DetailsSection renders the first block of the results area: the details
// card, or an error card carrying the endpoint-reported message.
func (r *Renderer) DetailsSection(res *response.DetailsResult) (template.HTML, error) {
	if res.Failed() {
		return r.exec("error_card.tmpl", r.clean(res.Err))
	}
	return r.exec("details_card.tmpl", r.card(res.Movie, nil))
}

// RecommendationsSection renders the second block: heading plus one card per
// recommended movie in list order, or the error/empty variants.
func (r *Renderer) RecommendationsSection(res *response.RecommendationsResult) (template.HTML, error) {
	if res.Failed() {
		return r.exec("error_card.tmpl", r.clean(res.Err))
	}

	if len(res.Movies) == 0 {
		return r.exec("info_card.tmpl", template.HTML("No recommendations found."))
	}

	var b strings.Builder

	heading, err := r.exec("heading.tmpl", nil)
	if err != nil {
		return "", err
	}
	b.WriteString(string(heading))

	for i := range res.Movies {
		movie := &res.Movies[i]
		card, err := r.exec("recommendation_card.tmpl", r.card(&movie.MovieDetails, r.ott(movie.OTT)))
		if err != nil {
			return "", err
		}
		b.WriteString(string(card))
	}

	return template.HTML(b.String()), nil
}

// PageData feeds the index template. Results and Error are both empty on the
// initial page; exactly one of them is populated after a submission.
type PageData struct {
	Query       string
	Results     template.HTML
	Error       string
	Suggestions []string
}

// Page renders the whole search page in one update.
func (r *Renderer) Page(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "index.tmpl", data); err != nil {
		return nil, fmt.Errorf("render index.tmpl: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) card(m *response.MovieDetails, ott *ottLine) *movieCard {
	card := &movieCard{
		Title:       r.clean(m.Title),
		Overview:    r.clean(m.Overview),
		Rating:      m.Rating.String(),
		ReleaseDate: r.clean(m.ReleaseDate),
		Cast:        r.clean(m.Cast),
		Crew:        r.clean(m.Crew),
		OTT:         ott,
	}
	if m.PosterURL != nil {
		card.PosterURL = *m.PosterURL
	}
	return card
}

func (r *Renderer) ott(o *response.OttAvailability) *ottLine {
	if !o.Available() {
		return &ottLine{}
	}
	return &ottLine{
		Split: true,
		Free:  r.providers(o.Free),
		Paid:  r.providers(o.Paid),
	}
}

func (r *Renderer) providers(names []string) template.HTML {
	if len(names) == 0 {
		return "Not Available"
	}
	cleaned := make([]string, len(names))
	for i, name := range names {
		cleaned[i] = r.policy.Sanitize(name)
	}
	return template.HTML(strings.Join(cleaned, ", "))
}

// clean strips any markup from upstream text. The result is emitted as-is by
// the templates, so sanitizer output must not be escaped a second time.
func (r *Renderer) clean(s string) template.HTML {
	return template.HTML(r.policy.Sanitize(s))
}

func (r *Renderer) exec(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
