package response

import "html/template"

// SearchView is the combined markup for one submission, regenerated whole
// each time: details section first, recommendations section after it.
type SearchView struct {
	Results template.HTML
}

// CombinedResult is the API-surface shape of one submission: both upstream
// payloads joined, each keeping its own success-or-error variant.
type CombinedResult struct {
	Details         *DetailsResult         `json:"details"`
	Recommendations *RecommendationsResult `json:"recommendations"`
}
