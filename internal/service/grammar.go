package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jp-grammar/internal/cache"
	"jp-grammar/internal/config"
	"jp-grammar/internal/domain"
	"jp-grammar/internal/dto"
	"jp-grammar/internal/logger"

	"go.uber.org/zap"
)

const (
	grammarMaxLimit     = 200
	grammarDefaultLimit = 20

	// detailExamplesLimit caps the examples attached to a detail view.
	detailExamplesLimit = 100

	defaultGrammarTTL = 15 * time.Minute
)

// GrammarService exposes the grammar point listing and detail view.
type GrammarService interface {
	ListGrammar(ctx context.Context, filter domain.GrammarFilter) (*dto.GrammarListResponse, error)
	GetGrammarDetail(ctx context.Context, id string) (*dto.GrammarDetailResponse, error)
}

type grammarService struct {
	grammarRepo domain.GrammarRepository
	exampleRepo domain.ExampleRepository
	cache       domain.Cache
	ttl         time.Duration
}

// NewGrammarService creates a new GrammarService. A nil cache disables
// detail-view caching.
func NewGrammarService(grammarRepo domain.GrammarRepository, exampleRepo domain.ExampleRepository, cacheClient domain.Cache, cfg *config.Config) GrammarService {
	return &grammarService{
		grammarRepo: grammarRepo,
		exampleRepo: exampleRepo,
		cache:       cacheClient,
		ttl:         cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Grammar, defaultGrammarTTL),
	}
}

// clampPage bounds limit and offset to their product ranges. Parameters
// out of range are clamped, never rejected.
func clampPage(limit, offset, def, max int) (int, int) {
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *grammarService) ListGrammar(ctx context.Context, filter domain.GrammarFilter) (*dto.GrammarListResponse, error) {
	filter.Limit, filter.Offset = clampPage(filter.Limit, filter.Offset, grammarDefaultLimit, grammarMaxLimit)

	points, total, err := s.grammarRepo.List(ctx, filter)
	if err != nil {
		return nil, domain.NewStorageError("Failed to list grammar points", err)
	}

	return &dto.GrammarListResponse{
		Items:  dto.FromGrammarPoints(points),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func (s *grammarService) GetGrammarDetail(ctx context.Context, id string) (*dto.GrammarDetailResponse, error) {
	cacheKey := cache.GenerateCacheKey("grammar", "detail", id)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var response dto.GrammarDetailResponse
			if jsonErr := json.Unmarshal([]byte(cached), &response); jsonErr == nil {
				return &response, nil
			}
			_ = s.cache.Delete(ctx, cacheKey)
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Grammar detail cache read failed",
				zap.String("id", id),
				zap.Error(err),
			)
		}
	}

	point, err := s.grammarRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewStorageError("Failed to get grammar point", err)
	}
	if point == nil {
		return nil, domain.NewGrammarPointNotFoundError(id)
	}

	examples, err := s.exampleRepo.ListByGrammarID(ctx, id, detailExamplesLimit)
	if err != nil {
		return nil, domain.NewStorageError("Failed to list examples", err)
	}
	if len(examples) == 0 {
		// Older datasets never linked examples by grammar_id; fall back
		// to pattern/title matching, then to the point's level.
		examples, err = s.exampleRepo.ListRelated(ctx, *point, detailExamplesLimit)
		if err != nil {
			return nil, domain.NewStorageError("Failed to list related examples", err)
		}
	}

	response := &dto.GrammarDetailResponse{
		Point:    dto.FromGrammarPoint(*point),
		Examples: dto.FromExamples(examples),
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(payload), s.ttl); err != nil {
				logger.Get().Warn("Grammar detail cache write failed",
					zap.String("id", id),
					zap.Error(err),
				)
			}
		}
	}

	return response, nil
}
