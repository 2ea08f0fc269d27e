package etl

import (
	"context"
	"fmt"
	"time"

	"jp-grammar/internal/jotoba"
	"jp-grammar/internal/logger"
	"jp-grammar/internal/romaji"

	"go.uber.org/zap"
)

// MaxVariationsPerRow bounds the combinatorial expansion of one row.
const MaxVariationsPerRow = 200

// Variation phrase lists. The cartesian product of these four slots
// prefixed to a base sentence yields grammatically plain but valid
// drill material for the lower levels.
var (
	variationSubjects = []string{"私は", "彼は", "彼女は", "私たちは", "先生は"}
	variationObjects  = []string{"本を", "水を", "ご飯を", "日本語を", "音楽を"}
	variationPlaces   = []string{"学校で", "家で", "会社で", "公園で", "図書館で"}
	variationTimes    = []string{"毎日", "昨日", "今日", "明日", "時々"}
)

// ExpandVariations emits up to perRow combinatorial variations for each
// row with a base sentence, keeping the original row first. When a
// transliterator is supplied, each variation gets a fresh romaji reading
// instead of the stale copy of the base row's.
func ExpandVariations(rows []Row, perRow int, tr *romaji.Transliterator) []Row {
	if perRow <= 0 || perRow > MaxVariationsPerRow {
		perRow = MaxVariationsPerRow
	}

	var out []Row
	for _, row := range rows {
		out = append(out, row)
		if row.JP == "" {
			continue
		}

		count := 0
	product:
		for _, s := range variationSubjects {
			for _, o := range variationObjects {
				for _, p := range variationPlaces {
					for _, t := range variationTimes {
						variation := row
						variation.JP = fmt.Sprintf("%s %s %s %s %s", t, p, s, o, row.JP)
						if tr != nil {
							variation.Romaji = tr.Romaji(variation.JP)
						}
						out = append(out, variation)
						count++
						if count >= perRow {
							break product
						}
					}
				}
			}
		}
	}
	return out
}

// ExpandJotoba replaces each row's sentence pair with examples harvested
// from the dictionary API, one output row per harvested pair, capped at
// perRow. A row whose lookup fails or finds nothing is kept unchanged.
// Calls are throttled by delay to stay polite to the public instance.
func ExpandJotoba(ctx context.Context, rows []Row, client *jotoba.Client, perRow int, delay time.Duration) ([]Row, error) {
	var out []Row
	for i, row := range rows {
		if row.Pattern == "" {
			out = append(out, row)
			continue
		}

		sentences, err := client.SearchExamples(ctx, row.Pattern, perRow)
		if err != nil {
			logger.Get().Warn("Jotoba lookup failed, keeping original row",
				zap.String("pattern", row.Pattern),
				zap.Error(err),
			)
			out = append(out, row)
		} else if len(sentences) == 0 {
			out = append(out, row)
		} else {
			for _, sentence := range sentences {
				harvested := row
				harvested.JP = sentence.Japanese
				harvested.EN = sentence.English
				harvested.Romaji = ""
				out = append(out, harvested)
			}
		}

		if i < len(rows)-1 && delay > 0 {
			select {
			case <-ctx.Done():
				return out, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return out, nil
}
