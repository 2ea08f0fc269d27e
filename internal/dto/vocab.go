package dto

import "jp-grammar/internal/domain"

// LevelResponse represents a proficiency level in the API response
type LevelResponse struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// LevelListResponse is the envelope for the levels listing
type LevelListResponse struct {
	Items []LevelResponse `json:"items"`
}

// VocabResponse represents a vocabulary entry in the API response
type VocabResponse struct {
	ID          string `json:"id"`
	Level       string `json:"level,omitempty"`
	Kanji       string `json:"kanji,omitempty"`
	ReadingKana string `json:"reading_kana,omitempty"`
	Meaning     string `json:"meaning,omitempty"`
}

// VocabListResponse is the paged envelope for vocabulary listings
type VocabListResponse struct {
	Items  []VocabResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// JotobaEntryResponse represents a cached dictionary entry in the API response
type JotobaEntryResponse struct {
	ID       string                 `json:"id"`
	Term     string                 `json:"term"`
	Level    string                 `json:"level,omitempty"`
	Language string                 `json:"language,omitempty"`
	Readings map[string]interface{} `json:"readings,omitempty"`
}

// JotobaListResponse is the paged envelope for cached dictionary listings
type JotobaListResponse struct {
	Items  []JotobaEntryResponse `json:"items"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// FromLevels maps domain levels to their response shape.
func FromLevels(levels []domain.Level) []LevelResponse {
	out := make([]LevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, LevelResponse{Code: l.Code, Name: l.Name})
	}
	return out
}

// FromVocabItems maps domain vocabulary entries to their response shape.
func FromVocabItems(items []domain.VocabItem) []VocabResponse {
	out := make([]VocabResponse, 0, len(items))
	for _, v := range items {
		out = append(out, VocabResponse{
			ID:          v.ID,
			Level:       v.Level,
			Kanji:       v.Kanji,
			ReadingKana: v.ReadingKana,
			Meaning:     v.Meaning,
		})
	}
	return out
}

// FromJotobaEntries maps domain dictionary entries to their response shape.
func FromJotobaEntries(entries []domain.JotobaEntry) []JotobaEntryResponse {
	out := make([]JotobaEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, JotobaEntryResponse{
			ID:       e.ID,
			Term:     e.Term,
			Level:    e.Level,
			Language: e.Language,
			Readings: e.Readings,
		})
	}
	return out
}
