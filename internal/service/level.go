// Package service orchestrates repositories, the cache and the quiz
// generator behind the DTO shapes the handlers return.
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

const defaultLevelsTTL = 6 * time.Hour

// LevelService exposes the levels listing.
type LevelService interface {
	GetLevels(ctx context.Context) (*dto.LevelListResponse, error)
}

type levelService struct {
	repo  domain.LevelRepository
	cache domain.Cache
	ttl   time.Duration
}

// NewLevelService creates a new LevelService. A nil cache disables
// caching; the listing changes only when the catalogue is reloaded, so
// it gets the longest TTL of the API.
func NewLevelService(repo domain.LevelRepository, cacheClient domain.Cache, cfg *config.Config) LevelService {
	return &levelService{
		repo:  repo,
		cache: cacheClient,
		ttl:   cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Levels, defaultLevelsTTL),
	}
}

func (s *levelService) GetLevels(ctx context.Context) (*dto.LevelListResponse, error) {
	cacheKey := cache.GenerateCacheKey("level", "list", "all")

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var response dto.LevelListResponse
			if jsonErr := json.Unmarshal([]byte(cached), &response); jsonErr == nil {
				return &response, nil
			}
			// A corrupt entry is dropped and rebuilt below.
			_ = s.cache.Delete(ctx, cacheKey)
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Levels cache read failed", zap.Error(err))
		}
	}

	levels, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.NewStorageError("Failed to list levels", err)
	}

	response := &dto.LevelListResponse{Items: dto.FromLevels(levels)}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(payload), s.ttl); err != nil {
				logger.Get().Warn("Levels cache write failed", zap.Error(err))
			}
		}
	}

	return response, nil
}
