package domain

import "context"

// GrammarFilter narrows a grammar point listing.
type GrammarFilter struct {
	LevelCode string
	Search    string
	Limit     int
	Offset    int
}

// ExampleFilter narrows an example listing.
type ExampleFilter struct {
	LevelCode string
	GrammarID string
	Pattern   string
	Search    string
	Limit     int
	Offset    int
}

// VocabFilter narrows a vocabulary listing.
type VocabFilter struct {
	Level  string
	Search string
	Limit  int
	Offset int
}

// JotobaFilter narrows a listing of cached Jotoba entries.
type JotobaFilter struct {
	Level    string
	Language string
	Search   string
	Limit    int
	Offset   int
}

// GrammarRepository is the persistence port for grammar points.
// Single-row lookups return (nil, nil) when no row matches.
type GrammarRepository interface {
	// List returns one page of points plus the exact total for the
	// same filters.
	List(ctx context.Context, filter GrammarFilter) ([]GrammarPoint, int, error)

	// GetByID retrieves a single point by its identifier.
	GetByID(ctx context.Context, id string) (*GrammarPoint, error)

	// ListByLevel returns up to limit points of one level, or of all
	// levels when levelCode is empty. Used to build quiz pools.
	ListByLevel(ctx context.Context, levelCode string, limit int) ([]GrammarPoint, error)

	// Search runs the free-text search with its progressive column
	// fallback and returns matches plus the exact total.
	Search(ctx context.Context, needle string, limit int) ([]GrammarPoint, int, error)

	// GetByNaturalKey looks a point up by (level, title, pattern),
	// the identity the CSV datasets carry.
	GetByNaturalKey(ctx context.Context, levelCode, title, pattern string) (*GrammarPoint, error)

	// Create inserts a new point and returns its generated identifier.
	Create(ctx context.Context, point GrammarPoint) (string, error)

	// UpdateDetails overwrites the point's descriptive fields
	// (meanings, notes, tags, source).
	UpdateDetails(ctx context.Context, id string, point GrammarPoint) error
}

// ExampleRepository is the persistence port for example sentences.
type ExampleRepository interface {
	// List returns one page of examples plus the exact total.
	List(ctx context.Context, filter ExampleFilter) ([]Example, int, error)

	// ListByGrammarID returns up to limit examples linked to one point.
	ListByGrammarID(ctx context.Context, grammarID string, limit int) ([]Example, error)

	// ListByGrammarIDs returns up to limit examples linked to any of
	// the given points. Used to build quiz pools.
	ListByGrammarIDs(ctx context.Context, grammarIDs []string, limit int) ([]Example, error)

	// ListRelated finds examples for a point whose rows are not linked
	// by grammar_id: by pattern/title match first, by level otherwise.
	ListRelated(ctx context.Context, point GrammarPoint, limit int) ([]Example, error)

	// Search runs the free-text search with its progressive column
	// fallback and returns matches plus the exact total.
	Search(ctx context.Context, needle string, limit int) ([]Example, int, error)

	// Exists reports whether an example with the same grammar link and
	// sentence pair is already stored.
	Exists(ctx context.Context, grammarID, jp, es string) (bool, error)

	// Create inserts a new example.
	Create(ctx context.Context, example Example) error
}

// VocabRepository is the persistence port for vocabulary and cached
// Jotoba entries.
type VocabRepository interface {
	ListVocab(ctx context.Context, filter VocabFilter) ([]VocabItem, int, error)
	ListJotoba(ctx context.Context, filter JotobaFilter) ([]JotobaEntry, int, error)
}

// LevelRepository is the persistence port for the levels table.
type LevelRepository interface {
	List(ctx context.Context) ([]Level, error)
}
