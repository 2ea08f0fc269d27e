// Package repository implements the domain persistence ports on top of
// the PostgREST client. Each repository owns one table; query semantics
// (filters, ordering, progressive search fallback) live here so services
// stay free of wire concerns.
package repository

import (
	"context"
	"fmt"
	"strings"

	"jp-grammar/internal/domain"
	"jp-grammar/internal/logger"
	"jp-grammar/internal/repository/models"
	"jp-grammar/internal/supabase"

	"go.uber.org/zap"
)

// grammarSearchTiers are the column sets the free-text search tries in
// order. A tier that errors (a column missing on an older schema) falls
// through to the next, narrower one.
var grammarSearchTiers = [][]string{
	{"title", "pattern", "meaning_es", "meaning_en"},
	{"title", "pattern"},
	{"title"},
}

type grammarRepository struct {
	client *supabase.Client
	table  string
}

// NewGrammarRepository returns a PostgREST-backed GrammarRepository
// reading and writing the given table.
func NewGrammarRepository(client *supabase.Client, table string) domain.GrammarRepository {
	return &grammarRepository{client: client, table: table}
}

func (r *grammarRepository) List(ctx context.Context, filter domain.GrammarFilter) ([]domain.GrammarPoint, int, error) {
	q := r.client.From(r.table).Count().
		Order("level_code", true).
		Order("title", true).
		Limit(filter.Limit).
		Offset(filter.Offset)

	if filter.LevelCode != "" {
		q.Eq("level_code", strings.ToUpper(filter.LevelCode))
	}
	if filter.Search != "" {
		if needle := supabase.SanitizeSearchTerm(filter.Search); needle != "" {
			q.Or(supabase.BuildOrIlike(grammarSearchTiers[0], needle))
		}
	}

	var rows []models.GrammarRow
	total, err := q.Get(ctx, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list grammar points: %w", err)
	}
	return models.GrammarRowsToDomain(rows), total, nil
}

func (r *grammarRepository) GetByID(ctx context.Context, id string) (*domain.GrammarPoint, error) {
	var rows []models.GrammarRow
	if _, err := r.client.From(r.table).Eq("id", id).Limit(1).Get(ctx, &rows); err != nil {
		return nil, fmt.Errorf("get grammar point %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	point := rows[0].ToDomain()
	return &point, nil
}

func (r *grammarRepository) ListByLevel(ctx context.Context, levelCode string, limit int) ([]domain.GrammarPoint, error) {
	q := r.client.From(r.table).Order("level_code", true).Order("title", true).Limit(limit)
	if levelCode != "" {
		q.Eq("level_code", strings.ToUpper(levelCode))
	}

	var rows []models.GrammarRow
	if _, err := q.Get(ctx, &rows); err != nil {
		return nil, fmt.Errorf("list grammar points for level %q: %w", levelCode, err)
	}
	return models.GrammarRowsToDomain(rows), nil
}

func (r *grammarRepository) Search(ctx context.Context, needle string, limit int) ([]domain.GrammarPoint, int, error) {
	for _, columns := range grammarSearchTiers {
		var rows []models.GrammarRow
		total, err := r.client.From(r.table).Count().
			Or(supabase.BuildOrIlike(columns, needle)).
			Limit(limit).
			Get(ctx, &rows)
		if err != nil {
			logger.Get().Debug("grammar search tier failed, narrowing",
				zap.Strings("columns", columns),
				zap.Error(err),
			)
			continue
		}
		return models.GrammarRowsToDomain(rows), total, nil
	}
	return []domain.GrammarPoint{}, 0, nil
}

func (r *grammarRepository) GetByNaturalKey(ctx context.Context, levelCode, title, pattern string) (*domain.GrammarPoint, error) {
	var rows []models.GrammarRow
	_, err := r.client.From(r.table).
		Eq("level_code", levelCode).
		Eq("title", title).
		Eq("pattern", pattern).
		Limit(1).
		Get(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("get grammar point by natural key: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	point := rows[0].ToDomain()
	return &point, nil
}

func (r *grammarRepository) Create(ctx context.Context, point domain.GrammarPoint) (string, error) {
	payload := models.NewGrammarInsert{
		LevelCode: point.LevelCode,
		Title:     point.Title,
		Pattern:   point.Pattern,
		MeaningES: point.MeaningES,
		MeaningEN: point.MeaningEN,
		Notes:     point.Notes,
		Tags:      point.Tags,
		Source:    point.Source,
		Published: true,
	}

	var created []models.GrammarRow
	if err := r.client.Insert(ctx, r.table, []models.NewGrammarInsert{payload}, &created); err != nil {
		return "", fmt.Errorf("create grammar point %q: %w", point.Title, err)
	}
	if len(created) == 0 {
		return "", fmt.Errorf("create grammar point %q: empty representation returned", point.Title)
	}
	return created[0].ID, nil
}

func (r *grammarRepository) UpdateDetails(ctx context.Context, id string, point domain.GrammarPoint) error {
	payload := models.GrammarDetailsUpdate{
		MeaningES: point.MeaningES,
		MeaningEN: point.MeaningEN,
		Notes:     point.Notes,
		Tags:      point.Tags,
		Source:    point.Source,
	}
	if err := r.client.From(r.table).Eq("id", id).Update(ctx, payload); err != nil {
		return fmt.Errorf("update grammar point %s: %w", id, err)
	}
	return nil
}
