package response

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Rating is a vote average the backend may emit as a JSON number, a numeric
// string, or the literal "N/A" when its own nested lookup failed.
type Rating struct {
	Value float64
	Known bool
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		r.Value = num
		r.Known = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("rating: unsupported JSON value %s", data)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		r.Value = f
		r.Known = true
	}
	// non-numeric strings ("N/A") stay unknown
	return nil
}

func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.Known {
		return json.Marshal("N/A")
	}
	return json.Marshal(r.Value)
}

func (r Rating) String() string {
	if !r.Known {
		return "N/A"
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

type MovieDetails struct {
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	Rating      Rating  `json:"rating"`
	ReleaseDate string  `json:"release_date"`
	Cast        string  `json:"cast"`
	Crew        string  `json:"crew"`
	PosterURL   *string `json:"poster_url,omitempty"`
}

// OttAvailability holds streaming provider names per tier. The backend
// substitutes the bare string "Not Available" when its provider lookup
// failed, so decoding accepts both forms.
type OttAvailability struct {
	Free []string `json:"Free,omitempty"`
	Paid []string `json:"Paid,omitempty"`
}

func (o *OttAvailability) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		// string form carries no provider lists
		return nil
	}

	type alias OttAvailability
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*o = OttAvailability(a)
	return nil
}

// Available reports whether any provider tier has entries.
func (o *OttAvailability) Available() bool {
	return o != nil && (len(o.Free) > 0 || len(o.Paid) > 0)
}

type RecommendedMovie struct {
	MovieDetails
	OTT *OttAvailability `json:"ott_availability,omitempty"`
}

// DetailsResult is the decoded /movie_details payload: either a movie or an
// endpoint-reported error message, never both.
type DetailsResult struct {
	Movie *MovieDetails
	Err   string
}

func (r *DetailsResult) Failed() bool {
	return r.Err != ""
}

func (r DetailsResult) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(map[string]string{"error": r.Err})
	}
	return json.Marshal(r.Movie)
}

// RecommendationsResult is the decoded /full_recommendations payload: an
// ordered movie list (server relevance order) or an endpoint-reported error.
type RecommendationsResult struct {
	Movies []RecommendedMovie
	Err    string
}

func (r *RecommendationsResult) Failed() bool {
	return r.Err != ""
}

func (r RecommendationsResult) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(map[string]string{"error": r.Err})
	}
	movies := r.Movies
	if movies == nil {
		movies = []RecommendedMovie{}
	}
	return json.Marshal(map[string][]RecommendedMovie{"recommended_movies": movies})
}
