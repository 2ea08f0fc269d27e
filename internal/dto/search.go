package dto

// SearchResponse is the combined result of a free-text search over
// grammar points and examples
// @Description Combined search results
type SearchResponse struct {
	Query    string              `json:"query"`
	Grammar  GrammarListResponse `json:"grammar"`
	Examples ExampleListResponse `json:"examples"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
