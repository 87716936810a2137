package dtos

// SearchRequest runs a (simulated) natural-language candidate search.
type SearchRequest struct {
	Query  string `json:"query" binding:"required"`
	Source string `json:"source"`
	Level  string `json:"level" binding:"omitempty,oneof=all junior mid senior"`
}

// SourceCandidatesRequest copies selected search results into the
// candidate pool.
type SourceCandidatesRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
