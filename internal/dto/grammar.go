package dto

import "jp-grammar/internal/domain"

// GrammarResponse represents a grammar point in the API response
// @Description Grammar point information
type GrammarResponse struct {
	ID        string   `json:"id"`
	LevelCode string   `json:"level_code"`
	Title     string   `json:"title"`
	Pattern   string   `json:"pattern,omitempty"`
	MeaningES string   `json:"meaning_es,omitempty"`
	MeaningEN string   `json:"meaning_en,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Source    string   `json:"source,omitempty"`
}

// ExampleResponse represents an example sentence in the API response
type ExampleResponse struct {
	ID        string `json:"id,omitempty"`
	GrammarID string `json:"grammar_id,omitempty"`
	LevelCode string `json:"level_code,omitempty"`
	Title     string `json:"title,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	JP        string `json:"jp"`
	Romaji    string `json:"romaji,omitempty"`
	ES        string `json:"es,omitempty"`
	EN        string `json:"en,omitempty"`
	Hint      string `json:"hint,omitempty"`
}

// GrammarListResponse is the paged envelope for grammar point listings
type GrammarListResponse struct {
	Items  []GrammarResponse `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// ExampleListResponse is the paged envelope for example listings
type ExampleListResponse struct {
	Items  []ExampleResponse `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// GrammarDetailResponse couples a grammar point with its examples
type GrammarDetailResponse struct {
	Point    GrammarResponse   `json:"point"`
	Examples []ExampleResponse `json:"examples"`
}

// FromGrammarPoint maps a domain grammar point to its response shape.
func FromGrammarPoint(p domain.GrammarPoint) GrammarResponse {
	return GrammarResponse{
		ID:        p.ID,
		LevelCode: p.LevelCode,
		Title:     p.Title,
		Pattern:   p.Pattern,
		MeaningES: p.MeaningES,
		MeaningEN: p.MeaningEN,
		Notes:     p.Notes,
		Tags:      p.Tags,
		Source:    p.Source,
	}
}

// FromGrammarPoints maps a slice of domain grammar points.
func FromGrammarPoints(points []domain.GrammarPoint) []GrammarResponse {
	out := make([]GrammarResponse, 0, len(points))
	for _, p := range points {
		out = append(out, FromGrammarPoint(p))
	}
	return out
}

// FromExample maps a domain example to its response shape.
func FromExample(e domain.Example) ExampleResponse {
	return ExampleResponse{
		ID:        e.ID,
		GrammarID: e.GrammarID,
		LevelCode: e.LevelCode,
		Title:     e.Title,
		Pattern:   e.Pattern,
		JP:        e.JP,
		Romaji:    e.Romaji,
		ES:        e.ES,
		EN:        e.EN,
		Hint:      e.Hint,
	}
}

// FromExamples maps a slice of domain examples.
func FromExamples(examples []domain.Example) []ExampleResponse {
	out := make([]ExampleResponse, 0, len(examples))
	for _, e := range examples {
		out = append(out, FromExample(e))
	}
	return out
}
