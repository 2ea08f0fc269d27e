package service

import (
	"context"
	"time"

	"jp-grammar/internal/domain"
)

// Hand-rolled function-field mocks. Tests set only the fields the code
// under test is expected to call; a nil field panics, which is the
// point.

type mockGrammarRepo struct {
	ListFn            func(ctx context.Context, filter domain.GrammarFilter) ([]domain.GrammarPoint, int, error)
	GetByIDFn         func(ctx context.Context, id string) (*domain.GrammarPoint, error)
	ListByLevelFn     func(ctx context.Context, levelCode string, limit int) ([]domain.GrammarPoint, error)
	SearchFn          func(ctx context.Context, needle string, limit int) ([]domain.GrammarPoint, int, error)
	GetByNaturalKeyFn func(ctx context.Context, levelCode, title, pattern string) (*domain.GrammarPoint, error)
	CreateFn          func(ctx context.Context, point domain.GrammarPoint) (string, error)
	UpdateDetailsFn   func(ctx context.Context, id string, point domain.GrammarPoint) error
}

func (m *mockGrammarRepo) List(ctx context.Context, filter domain.GrammarFilter) ([]domain.GrammarPoint, int, error) {
	return m.ListFn(ctx, filter)
}

func (m *mockGrammarRepo) GetByID(ctx context.Context, id string) (*domain.GrammarPoint, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockGrammarRepo) ListByLevel(ctx context.Context, levelCode string, limit int) ([]domain.GrammarPoint, error) {
	return m.ListByLevelFn(ctx, levelCode, limit)
}

func (m *mockGrammarRepo) Search(ctx context.Context, needle string, limit int) ([]domain.GrammarPoint, int, error) {
	return m.SearchFn(ctx, needle, limit)
}

func (m *mockGrammarRepo) GetByNaturalKey(ctx context.Context, levelCode, title, pattern string) (*domain.GrammarPoint, error) {
	return m.GetByNaturalKeyFn(ctx, levelCode, title, pattern)
}

func (m *mockGrammarRepo) Create(ctx context.Context, point domain.GrammarPoint) (string, error) {
	return m.CreateFn(ctx, point)
}

func (m *mockGrammarRepo) UpdateDetails(ctx context.Context, id string, point domain.GrammarPoint) error {
	return m.UpdateDetailsFn(ctx, id, point)
}

type mockExampleRepo struct {
	ListFn             func(ctx context.Context, filter domain.ExampleFilter) ([]domain.Example, int, error)
	ListByGrammarIDFn  func(ctx context.Context, grammarID string, limit int) ([]domain.Example, error)
	ListByGrammarIDsFn func(ctx context.Context, grammarIDs []string, limit int) ([]domain.Example, error)
	ListRelatedFn      func(ctx context.Context, point domain.GrammarPoint, limit int) ([]domain.Example, error)
	SearchFn           func(ctx context.Context, needle string, limit int) ([]domain.Example, int, error)
	ExistsFn           func(ctx context.Context, grammarID, jp, es string) (bool, error)
	CreateFn           func(ctx context.Context, example domain.Example) error
}

func (m *mockExampleRepo) List(ctx context.Context, filter domain.ExampleFilter) ([]domain.Example, int, error) {
	return m.ListFn(ctx, filter)
}

func (m *mockExampleRepo) ListByGrammarID(ctx context.Context, grammarID string, limit int) ([]domain.Example, error) {
	return m.ListByGrammarIDFn(ctx, grammarID, limit)
}

func (m *mockExampleRepo) ListByGrammarIDs(ctx context.Context, grammarIDs []string, limit int) ([]domain.Example, error) {
	return m.ListByGrammarIDsFn(ctx, grammarIDs, limit)
}

func (m *mockExampleRepo) ListRelated(ctx context.Context, point domain.GrammarPoint, limit int) ([]domain.Example, error) {
	return m.ListRelatedFn(ctx, point, limit)
}

func (m *mockExampleRepo) Search(ctx context.Context, needle string, limit int) ([]domain.Example, int, error) {
	return m.SearchFn(ctx, needle, limit)
}

func (m *mockExampleRepo) Exists(ctx context.Context, grammarID, jp, es string) (bool, error) {
	return m.ExistsFn(ctx, grammarID, jp, es)
}

func (m *mockExampleRepo) Create(ctx context.Context, example domain.Example) error {
	return m.CreateFn(ctx, example)
}

type mockVocabRepo struct {
	ListVocabFn  func(ctx context.Context, filter domain.VocabFilter) ([]domain.VocabItem, int, error)
	ListJotobaFn func(ctx context.Context, filter domain.JotobaFilter) ([]domain.JotobaEntry, int, error)
}

func (m *mockVocabRepo) ListVocab(ctx context.Context, filter domain.VocabFilter) ([]domain.VocabItem, int, error) {
	return m.ListVocabFn(ctx, filter)
}

func (m *mockVocabRepo) ListJotoba(ctx context.Context, filter domain.JotobaFilter) ([]domain.JotobaEntry, int, error) {
	return m.ListJotobaFn(ctx, filter)
}

type mockLevelRepo struct {
	ListFn func(ctx context.Context) ([]domain.Level, error)
}

func (m *mockLevelRepo) List(ctx context.Context) ([]domain.Level, error) {
	return m.ListFn(ctx)
}

// memoryCache is a map-backed domain.Cache for cache-aside tests.
type memoryCache struct {
	values map[string]string
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string]string)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	c.values[key] = value
	c.sets++
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	delete(c.values, key)
	return nil
}

func (c *memoryCache) Ping(ctx context.Context) error {
	return nil
}
