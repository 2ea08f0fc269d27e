// Package models holds the wire-level row shapes the PostgREST interface
// returns and accepts. Domain structs stay free of serialization tags;
// the mapping lives here.
package models

import "jp-grammar/internal/domain"

// GrammarRow is one row of the grammar points table.
type GrammarRow struct {
	ID        string   `json:"id"`
	LevelCode string   `json:"level_code"`
	Title     string   `json:"title"`
	Pattern   string   `json:"pattern"`
	MeaningES string   `json:"meaning_es"`
	MeaningEN string   `json:"meaning_en"`
	Notes     string   `json:"notes"`
	Tags      []string `json:"tags"`
	Source    string   `json:"source"`
	Published bool     `json:"published"`
}

// ToDomain converts the row to its domain representation.
func (r GrammarRow) ToDomain() domain.GrammarPoint {
	return domain.GrammarPoint{
		ID:        r.ID,
		LevelCode: r.LevelCode,
		Title:     r.Title,
		Pattern:   r.Pattern,
		MeaningES: r.MeaningES,
		MeaningEN: r.MeaningEN,
		Notes:     r.Notes,
		Tags:      r.Tags,
		Source:    r.Source,
		Published: r.Published,
	}
}

// GrammarRowsToDomain converts a result set.
func GrammarRowsToDomain(rows []GrammarRow) []domain.GrammarPoint {
	out := make([]domain.GrammarPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToDomain())
	}
	return out
}

// NewGrammarInsert is the payload for creating a grammar point. The id
// is generated by the store; new points are published immediately, as
// the loader has no review step.
type NewGrammarInsert struct {
	LevelCode string   `json:"level_code"`
	Title     string   `json:"title"`
	Pattern   string   `json:"pattern"`
	MeaningES string   `json:"meaning_es,omitempty"`
	MeaningEN string   `json:"meaning_en,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Source    string   `json:"source,omitempty"`
	Published bool     `json:"published"`
}

// GrammarDetailsUpdate is the payload for refreshing a point's
// descriptive fields during a load.
type GrammarDetailsUpdate struct {
	MeaningES string   `json:"meaning_es,omitempty"`
	MeaningEN string   `json:"meaning_en,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Source    string   `json:"source,omitempty"`
}

// ExampleRow is one row of the examples table.
type ExampleRow struct {
	ID        string `json:"id"`
	GrammarID string `json:"grammar_id"`
	LevelCode string `json:"level_code"`
	Title     string `json:"title"`
	Pattern   string `json:"pattern"`
	JP        string `json:"jp"`
	Romaji    string `json:"romaji"`
	ES        string `json:"es"`
	EN        string `json:"en"`
	Hint      string `json:"hint"`
}

// ToDomain converts the row to its domain representation.
func (r ExampleRow) ToDomain() domain.Example {
	return domain.Example{
		ID:        r.ID,
		GrammarID: r.GrammarID,
		LevelCode: r.LevelCode,
		Title:     r.Title,
		Pattern:   r.Pattern,
		JP:        r.JP,
		Romaji:    r.Romaji,
		ES:        r.ES,
		EN:        r.EN,
		Hint:      r.Hint,
	}
}

// ExampleRowsToDomain converts a result set.
func ExampleRowsToDomain(rows []ExampleRow) []domain.Example {
	out := make([]domain.Example, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToDomain())
	}
	return out
}

// NewExampleInsert is the payload for creating an example sentence.
type NewExampleInsert struct {
	GrammarID string `json:"grammar_id,omitempty"`
	JP        string `json:"jp"`
	Romaji    string `json:"romaji,omitempty"`
	ES        string `json:"es,omitempty"`
	EN        string `json:"en,omitempty"`
	Hint      string `json:"hint,omitempty"`
}

// VocabRow is one row of the vocab table.
type VocabRow struct {
	ID          string `json:"id"`
	Level       string `json:"level"`
	Kanji       string `json:"kanji"`
	ReadingKana string `json:"reading_kana"`
	Meaning     string `json:"meaning"`
}

// ToDomain converts the row to its domain representation.
func (r VocabRow) ToDomain() domain.VocabItem {
	return domain.VocabItem{
		ID:          r.ID,
		Level:       r.Level,
		Kanji:       r.Kanji,
		ReadingKana: r.ReadingKana,
		Meaning:     r.Meaning,
	}
}

// JotobaRow is one row of the cached dictionary entries table. Readings
// is a jsonb column and arrives as an arbitrary document.
type JotobaRow struct {
	ID       string                 `json:"id"`
	Term     string                 `json:"term"`
	Level    string                 `json:"level"`
	Language string                 `json:"language"`
	Readings map[string]interface{} `json:"readings"`
}

// ToDomain converts the row to its domain representation.
func (r JotobaRow) ToDomain() domain.JotobaEntry {
	return domain.JotobaEntry{
		ID:       r.ID,
		Term:     r.Term,
		Level:    r.Level,
		Language: r.Language,
		Readings: r.Readings,
	}
}

// LevelRow is one row of the levels table.
type LevelRow struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ToDomain converts the row to its domain representation.
func (r LevelRow) ToDomain() domain.Level {
	return domain.Level{Code: r.Code, Name: r.Name}
}
