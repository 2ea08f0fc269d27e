package etl

import (
	"context"
	"fmt"

	"jp-grammar/internal/domain"
	"jp-grammar/internal/logger"

	"go.uber.org/zap"
)

// LoadStats counts what one load run did.
type LoadStats struct {
	PointsCreated    int
	PointsUpdated    int
	ExamplesInserted int
	ExamplesSkipped  int
}

// Loader upserts dataset rows into the hosted store through the
// repository ports. There is no transaction on the REST interface; each
// row operation is individually idempotent instead (find-or-create for
// points, duplicate check for examples), so a rerun converges.
type Loader struct {
	points   domain.GrammarRepository
	examples domain.ExampleRepository
}

// NewLoader creates a Loader over the two repositories.
func NewLoader(points domain.GrammarRepository, examples domain.ExampleRepository) *Loader {
	return &Loader{points: points, examples: examples}
}

type rowGroup struct {
	key  string
	rows []Row
}

// groupRows buckets rows by grammar point identity, preserving the
// input order of first appearance.
func groupRows(rows []Row) []rowGroup {
	index := make(map[string]int)
	var groups []rowGroup
	for _, row := range rows {
		key := row.GroupKey()
		if pos, ok := index[key]; ok {
			groups[pos].rows = append(groups[pos].rows, row)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, rowGroup{key: key, rows: []Row{row}})
	}
	return groups
}

func firstNonEmpty(rows []Row, get func(Row) string) string {
	for _, row := range rows {
		if v := get(row); v != "" {
			return v
		}
	}
	return ""
}

// Load upserts the given rows. Master fields of a point take the first
// non-empty value of its group; example rows need both jp and es and a
// not-yet-stored sentence pair.
func (l *Loader) Load(ctx context.Context, rows []Row) (LoadStats, error) {
	var stats LoadStats

	for _, group := range groupRows(NormalizeRows(rows)) {
		first := group.rows[0]
		if first.Title == "" && first.Pattern == "" {
			logger.Get().Warn("Skipping group without title or pattern",
				zap.String("level_code", first.LevelCode),
				zap.Int("rows", len(group.rows)),
			)
			stats.ExamplesSkipped += len(group.rows)
			continue
		}

		point := domain.GrammarPoint{
			LevelCode: first.LevelCode,
			Title:     first.Title,
			Pattern:   first.Pattern,
			MeaningES: firstNonEmpty(group.rows, func(r Row) string { return r.MeaningES }),
			MeaningEN: firstNonEmpty(group.rows, func(r Row) string { return r.MeaningEN }),
			Notes:     firstNonEmpty(group.rows, func(r Row) string { return r.Notes }),
			Tags:      ParseTags(firstNonEmpty(group.rows, func(r Row) string { return r.Tags })),
			Source:    firstNonEmpty(group.rows, func(r Row) string { return r.Source }),
		}

		existing, err := l.points.GetByNaturalKey(ctx, point.LevelCode, point.Title, point.Pattern)
		if err != nil {
			return stats, fmt.Errorf("lookup point %q: %w", point.Title, err)
		}

		var grammarID string
		if existing != nil {
			grammarID = existing.ID
			if err := l.points.UpdateDetails(ctx, grammarID, point); err != nil {
				return stats, fmt.Errorf("update point %q: %w", point.Title, err)
			}
			stats.PointsUpdated++
		} else {
			grammarID, err = l.points.Create(ctx, point)
			if err != nil {
				return stats, fmt.Errorf("create point %q: %w", point.Title, err)
			}
			stats.PointsCreated++
		}

		for _, row := range group.rows {
			if row.JP == "" || row.ES == "" {
				stats.ExamplesSkipped++
				continue
			}

			exists, err := l.examples.Exists(ctx, grammarID, row.JP, row.ES)
			if err != nil {
				return stats, fmt.Errorf("check example for point %q: %w", point.Title, err)
			}
			if exists {
				stats.ExamplesSkipped++
				continue
			}

			err = l.examples.Create(ctx, domain.Example{
				GrammarID: grammarID,
				JP:        row.JP,
				Romaji:    row.Romaji,
				ES:        row.ES,
				EN:        row.EN,
				Hint:      row.Hint,
			})
			if err != nil {
				return stats, fmt.Errorf("insert example for point %q: %w", point.Title, err)
			}
			stats.ExamplesInserted++
		}
	}

	return stats, nil
}
