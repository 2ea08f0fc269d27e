package repository

import (
	"context"
	"fmt"
	"strings"

	"jp-grammar/internal/domain"
	"jp-grammar/internal/repository/models"
	"jp-grammar/internal/supabase"
)

var (
	vocabSearchColumns  = []string{"kanji", "meaning", "reading_kana"}
	jotobaSearchColumns = []string{"term", "readings::text"}
)

type vocabRepository struct {
	client      *supabase.Client
	vocabTable  string
	jotobaTable string
}

// NewVocabRepository returns a PostgREST-backed VocabRepository over the
// vocab table and the cached dictionary entries table.
func NewVocabRepository(client *supabase.Client, vocabTable, jotobaTable string) domain.VocabRepository {
	return &vocabRepository{client: client, vocabTable: vocabTable, jotobaTable: jotobaTable}
}

func (r *vocabRepository) ListVocab(ctx context.Context, filter domain.VocabFilter) ([]domain.VocabItem, int, error) {
	q := r.client.From(r.vocabTable).Count().
		Order("id", true).
		Limit(filter.Limit).
		Offset(filter.Offset)

	if filter.Level != "" {
		q.Eq("level", strings.ToUpper(filter.Level))
	}
	if filter.Search != "" {
		if needle := supabase.SanitizeSearchTerm(filter.Search); needle != "" {
			q.Or(supabase.BuildOrIlike(vocabSearchColumns, needle))
		}
	}

	var rows []models.VocabRow
	total, err := q.Get(ctx, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list vocab: %w", err)
	}

	items := make([]domain.VocabItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.ToDomain())
	}
	return items, total, nil
}

func (r *vocabRepository) ListJotoba(ctx context.Context, filter domain.JotobaFilter) ([]domain.JotobaEntry, int, error) {
	q := r.client.From(r.jotobaTable).Count().
		Order("term", true).
		Limit(filter.Limit).
		Offset(filter.Offset)

	if filter.Level != "" {
		q.Eq("level", strings.ToUpper(filter.Level))
	}
	if filter.Language != "" {
		q.Eq("language", filter.Language)
	}
	if filter.Search != "" {
		if needle := supabase.SanitizeSearchTerm(filter.Search); needle != "" {
			q.Or(supabase.BuildOrIlike(jotobaSearchColumns, needle))
		}
	}

	var rows []models.JotobaRow
	total, err := q.Get(ctx, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list jotoba entries: %w", err)
	}

	entries := make([]domain.JotobaEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.ToDomain())
	}
	return entries, total, nil
}
