package request

type SearchRequest struct {
	MovieName string `json:"movie_name" validate:"required"`
	K         int    `json:"k,omitempty" validate:"omitempty,min=1,max=100"`
}
