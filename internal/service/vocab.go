package service

import (
	"context"

	"jp-grammar/internal/domain"
	"jp-grammar/internal/dto"
)

const (
	vocabMaxLimit     = 200
	vocabDefaultLimit = 20
)

// VocabService exposes the vocabulary and cached dictionary listings.
type VocabService interface {
	ListVocab(ctx context.Context, filter domain.VocabFilter) (*dto.VocabListResponse, error)
	ListJotoba(ctx context.Context, filter domain.JotobaFilter) (*dto.JotobaListResponse, error)
}

type vocabService struct {
	repo domain.VocabRepository
}

// NewVocabService creates a new VocabService.
func NewVocabService(repo domain.VocabRepository) VocabService {
	return &vocabService{repo: repo}
}

func (s *vocabService) ListVocab(ctx context.Context, filter domain.VocabFilter) (*dto.VocabListResponse, error) {
	filter.Limit, filter.Offset = clampPage(filter.Limit, filter.Offset, vocabDefaultLimit, vocabMaxLimit)

	items, total, err := s.repo.ListVocab(ctx, filter)
	if err != nil {
		return nil, domain.NewStorageError("Failed to list vocab", err)
	}

	return &dto.VocabListResponse{
		Items:  dto.FromVocabItems(items),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func (s *vocabService) ListJotoba(ctx context.Context, filter domain.JotobaFilter) (*dto.JotobaListResponse, error) {
	filter.Limit, filter.Offset = clampPage(filter.Limit, filter.Offset, vocabDefaultLimit, vocabMaxLimit)

	entries, total, err := s.repo.ListJotoba(ctx, filter)
	if err != nil {
		return nil, domain.NewStorageError("Failed to list jotoba entries", err)
	}

	return &dto.JotobaListResponse{
		Items:  dto.FromJotobaEntries(entries),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}
