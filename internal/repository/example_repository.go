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

// exampleSearchTiers are the column sets the free-text search tries in
// order, widest first.
var exampleSearchTiers = [][]string{
	{"jp", "es", "title", "pattern"},
	{"jp", "es"},
	{"jp"},
}

// exampleListSearchColumns is the column set of the /examples q filter.
var exampleListSearchColumns = []string{"jp", "es", "en", "title", "pattern", "romaji", "hint"}

type exampleRepository struct {
	client *supabase.Client
	table  string
}

// NewExampleRepository returns a PostgREST-backed ExampleRepository
// reading and writing the given table.
func NewExampleRepository(client *supabase.Client, table string) domain.ExampleRepository {
	return &exampleRepository{client: client, table: table}
}

func (r *exampleRepository) List(ctx context.Context, filter domain.ExampleFilter) ([]domain.Example, int, error) {
	q := r.client.From(r.table).Count().
		Order("id", true).
		Limit(filter.Limit).
		Offset(filter.Offset)

	if filter.LevelCode != "" {
		q.Eq("level_code", strings.ToUpper(filter.LevelCode))
	}
	if filter.GrammarID != "" {
		q.Eq("grammar_id", filter.GrammarID)
	}
	if filter.Pattern != "" {
		if needle := supabase.SanitizeSearchTerm(filter.Pattern); needle != "" {
			q.Ilike("pattern", needle)
		}
	}
	if filter.Search != "" {
		if needle := supabase.SanitizeSearchTerm(filter.Search); needle != "" {
			q.Or(supabase.BuildOrIlike(exampleListSearchColumns, needle))
		}
	}

	var rows []models.ExampleRow
	total, err := q.Get(ctx, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list examples: %w", err)
	}
	return models.ExampleRowsToDomain(rows), total, nil
}

func (r *exampleRepository) ListByGrammarID(ctx context.Context, grammarID string, limit int) ([]domain.Example, error) {
	var rows []models.ExampleRow
	_, err := r.client.From(r.table).Eq("grammar_id", grammarID).Limit(limit).Get(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list examples for point %s: %w", grammarID, err)
	}
	return models.ExampleRowsToDomain(rows), nil
}

func (r *exampleRepository) ListByGrammarIDs(ctx context.Context, grammarIDs []string, limit int) ([]domain.Example, error) {
	if len(grammarIDs) == 0 {
		return []domain.Example{}, nil
	}

	var rows []models.ExampleRow
	_, err := r.client.From(r.table).In("grammar_id", grammarIDs).Limit(limit).Get(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list examples for %d points: %w", len(grammarIDs), err)
	}
	return models.ExampleRowsToDomain(rows), nil
}

// ListRelated finds examples for rows the loader never linked by
// grammar_id: first by the point's pattern/title copies, then by level.
func (r *exampleRepository) ListRelated(ctx context.Context, point domain.GrammarPoint, limit int) ([]domain.Example, error) {
	if point.Pattern != "" || point.Title != "" {
		q := r.client.From(r.table).Limit(limit)
		if point.Pattern != "" {
			if needle := supabase.SanitizeSearchTerm(point.Pattern); needle != "" {
				q.Ilike("pattern", needle)
			}
		}
		if point.Title != "" {
			if needle := supabase.SanitizeSearchTerm(point.Title); needle != "" {
				q.Ilike("title", needle)
			}
		}

		var rows []models.ExampleRow
		if _, err := q.Get(ctx, &rows); err != nil {
			return nil, fmt.Errorf("list related examples for point %s: %w", point.ID, err)
		}
		if len(rows) > 0 {
			return models.ExampleRowsToDomain(rows), nil
		}
	}

	if point.LevelCode == "" {
		return []domain.Example{}, nil
	}

	var rows []models.ExampleRow
	_, err := r.client.From(r.table).Eq("level_code", point.LevelCode).Limit(limit).Get(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list level examples for point %s: %w", point.ID, err)
	}
	return models.ExampleRowsToDomain(rows), nil
}

func (r *exampleRepository) Search(ctx context.Context, needle string, limit int) ([]domain.Example, int, error) {
	for _, columns := range exampleSearchTiers {
		var rows []models.ExampleRow
		total, err := r.client.From(r.table).Count().
			Or(supabase.BuildOrIlike(columns, needle)).
			Limit(limit).
			Get(ctx, &rows)
		if err != nil {
			logger.Get().Debug("example search tier failed, narrowing",
				zap.Strings("columns", columns),
				zap.Error(err),
			)
			continue
		}
		return models.ExampleRowsToDomain(rows), total, nil
	}
	return []domain.Example{}, 0, nil
}

func (r *exampleRepository) Exists(ctx context.Context, grammarID, jp, es string) (bool, error) {
	var rows []models.ExampleRow
	_, err := r.client.From(r.table).Select("id").
		Eq("grammar_id", grammarID).
		Eq("jp", jp).
		Eq("es", es).
		Limit(1).
		Get(ctx, &rows)
	if err != nil {
		return false, fmt.Errorf("check duplicate example: %w", err)
	}
	return len(rows) > 0, nil
}

func (r *exampleRepository) Create(ctx context.Context, example domain.Example) error {
	payload := models.NewExampleInsert{
		GrammarID: example.GrammarID,
		JP:        example.JP,
		Romaji:    example.Romaji,
		ES:        example.ES,
		EN:        example.EN,
		Hint:      example.Hint,
	}
	if err := r.client.Insert(ctx, r.table, []models.NewExampleInsert{payload}, nil); err != nil {
		return fmt.Errorf("create example: %w", err)
	}
	return nil
}
