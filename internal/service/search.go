package service

import (
	"context"

	"jp-grammar/internal/domain"
	"jp-grammar/internal/dto"
	"jp-grammar/internal/supabase"

	"golang.org/x/sync/errgroup"
)

const (
	searchMaxLimit     = 100
	searchDefaultLimit = 10
)

// SearchService exposes the combined free-text search over grammar
// points and examples.
type SearchService interface {
	Search(ctx context.Context, query string, limit int) (*dto.SearchResponse, error)
}

type searchService struct {
	grammarRepo domain.GrammarRepository
	exampleRepo domain.ExampleRepository
}

// NewSearchService creates a new SearchService.
func NewSearchService(grammarRepo domain.GrammarRepository, exampleRepo domain.ExampleRepository) SearchService {
	return &searchService{grammarRepo: grammarRepo, exampleRepo: exampleRepo}
}

func (s *searchService) Search(ctx context.Context, query string, limit int) (*dto.SearchResponse, error) {
	if limit <= 0 {
		limit = searchDefaultLimit
	}
	if limit > searchMaxLimit {
		limit = searchMaxLimit
	}

	response := &dto.SearchResponse{
		Query:    query,
		Grammar:  dto.GrammarListResponse{Items: []dto.GrammarResponse{}, Limit: limit},
		Examples: dto.ExampleListResponse{Items: []dto.ExampleResponse{}, Limit: limit},
	}

	// A needle that is nothing but filter-breaking punctuation cannot be
	// searched; that is an empty result, not an error.
	needle := supabase.SanitizeSearchTerm(query)
	if needle == "" {
		return response, nil
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		points, total, err := s.grammarRepo.Search(gctx, needle, limit)
		if err != nil {
			return err
		}
		response.Grammar.Items = dto.FromGrammarPoints(points)
		response.Grammar.Total = total
		return nil
	})

	g.Go(func() error {
		examples, total, err := s.exampleRepo.Search(gctx, needle, limit)
		if err != nil {
			return err
		}
		response.Examples.Items = dto.FromExamples(examples)
		response.Examples.Total = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, domain.NewStorageError("Search failed", err)
	}

	return response, nil
}
