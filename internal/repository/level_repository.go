package repository

import (
	"context"
	"fmt"

	"jp-grammar/internal/domain"
	"jp-grammar/internal/repository/models"
	"jp-grammar/internal/supabase"
)

type levelRepository struct {
	client *supabase.Client
	table  string
}

// NewLevelRepository returns a PostgREST-backed LevelRepository.
func NewLevelRepository(client *supabase.Client, table string) domain.LevelRepository {
	return &levelRepository{client: client, table: table}
}

func (r *levelRepository) List(ctx context.Context) ([]domain.Level, error) {
	var rows []models.LevelRow
	if _, err := r.client.From(r.table).Order("code", true).Get(ctx, &rows); err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}

	levels := make([]domain.Level, 0, len(rows))
	for _, row := range rows {
		levels = append(levels, row.ToDomain())
	}
	return levels, nil
}
