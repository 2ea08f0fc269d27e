package service

import (
	"context"

	"jp-grammar/internal/domain"
	"jp-grammar/internal/dto"
)

const (
	exampleMaxLimit     = 500
	exampleDefaultLimit = 20
)

// ExampleService exposes the example sentence listing.
type ExampleService interface {
	ListExamples(ctx context.Context, filter domain.ExampleFilter) (*dto.ExampleListResponse, error)
}

type exampleService struct {
	repo domain.ExampleRepository
}

// NewExampleService creates a new ExampleService.
func NewExampleService(repo domain.ExampleRepository) ExampleService {
	return &exampleService{repo: repo}
}

func (s *exampleService) ListExamples(ctx context.Context, filter domain.ExampleFilter) (*dto.ExampleListResponse, error) {
	filter.Limit, filter.Offset = clampPage(filter.Limit, filter.Offset, exampleDefaultLimit, exampleMaxLimit)

	examples, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, domain.NewStorageError("Failed to list examples", err)
	}

	return &dto.ExampleListResponse{
		Items:  dto.FromExamples(examples),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}
