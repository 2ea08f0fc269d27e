package quiz

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"jp-grammar/internal/domain"
)

// maxDistractors is how many wrong choices a builder tries to draw.
const maxDistractors = ChoiceCount - 1

// assembleChoices combines distractors and the correct answer into the
// fixed-size, shuffled choice list. Too few distractors are padded with
// the placeholder. The returned index is the first post-shuffle
// position holding the correct answer.
func assembleChoices(rng *rand.Rand, correct string, distractors []string) ([]string, int) {
	choices := make([]string, 0, ChoiceCount)
	choices = append(choices, distractors...)
	choices = append(choices, correct)
	for len(choices) < ChoiceCount {
		choices = append(choices, PlaceholderAnswer)
	}

	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices, slices.Index(choices, correct)
}

// distinctValues collects candidate distractor values: non-empty, not
// equal to the correct answer, first occurrence only. Pool order is
// preserved so a seeded run stays reproducible.
func distinctValues(values []string, correct string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" || v == correct {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// buildPatternQuestion asks which pattern belongs to the focal point's
// title. Distractors are other points' patterns.
func buildPatternQuestion(rng *rand.Rand, focal domain.GrammarPoint, pool []domain.GrammarPoint, lang domain.Language) (Question, bool) {
	correct := orPlaceholder(focal.Pattern)

	values := make([]string, 0, len(pool))
	for _, p := range pool {
		values = append(values, p.Pattern)
	}
	distractors := Sample(rng, distinctValues(values, correct), maxDistractors)

	choices, answer := assembleChoices(rng, correct, distractors)
	return Question{
		ID:          focal.ID,
		Type:        TypePattern,
		Prompt:      promptFor(lang, TypePattern, pointLabel(focal)),
		Choices:     choices,
		AnswerIndex: answer,
		Meta:        metaFields(focal.LevelCode, ""),
	}, true
}

// buildMeaningQuestion asks for the focal point's meaning in the
// selected language, falling back to the title when the row has no
// meaning in that language.
func buildMeaningQuestion(rng *rand.Rand, focal domain.GrammarPoint, pool []domain.GrammarPoint, lang domain.Language) (Question, bool) {
	correct := focal.MeaningIn(lang)
	if correct == "" {
		correct = focal.Title
	}
	correct = orPlaceholder(correct)

	values := make([]string, 0, len(pool))
	for _, p := range pool {
		values = append(values, p.MeaningIn(lang))
	}
	distractors := Sample(rng, distinctValues(values, correct), maxDistractors)

	choices, answer := assembleChoices(rng, correct, distractors)
	return Question{
		ID:          focal.ID,
		Type:        TypeMeaning,
		Prompt:      promptFor(lang, TypeMeaning, pointLabel(focal)),
		Choices:     choices,
		AnswerIndex: answer,
		Meta:        metaFields(focal.LevelCode, ""),
	}, true
}

// buildTranslationQuestion shows the focal example's original sentence
// and asks for its translation in the selected language. The builder
// fails when the example has no sentence or no translation to offer.
func buildTranslationQuestion(rng *rand.Rand, focal domain.Example, pool []domain.Example, lang domain.Language) (Question, bool) {
	correct := focal.TranslationIn(lang)
	if correct == "" || focal.JP == "" {
		return Question{}, false
	}

	values := make([]string, 0, len(pool))
	for _, e := range pool {
		values = append(values, e.TranslationIn(lang))
	}
	distractors := Sample(rng, distinctValues(values, correct), maxDistractors)

	choices, answer := assembleChoices(rng, correct, distractors)
	return Question{
		ID:          focal.ID,
		Type:        TypeTranslation,
		Prompt:      promptFor(lang, TypeTranslation, ""),
		Sentence:    focal.JP,
		Choices:     choices,
		AnswerIndex: answer,
		Meta:        metaFields(focal.LevelCode, focal.GrammarID),
	}, true
}

// buildClozeQuestion masks the focal example's pattern inside its
// sentence. The answer is the linked point's pattern, with the
// example's own pattern copy as fallback. Distractor patterns come
// from points at the linked level, widened to all levels when that
// slice is too thin.
func buildClozeQuestion(rng *rand.Rand, focal domain.Example, points []domain.GrammarPoint, lang domain.Language) (Question, bool) {
	if focal.JP == "" {
		return Question{}, false
	}

	var linked *domain.GrammarPoint
	if focal.GrammarID != "" {
		for i := range points {
			if points[i].ID == focal.GrammarID {
				linked = &points[i]
				break
			}
		}
	}

	target := ""
	if linked != nil {
		target = linked.Pattern
	}
	if target == "" {
		target = focal.Pattern
	}
	correct := orPlaceholder(target)

	level := focal.LevelCode
	if linked != nil && linked.LevelCode != "" {
		level = linked.LevelCode
	}

	candidates := clozePatterns(points, level, correct)
	if len(candidates) < maxDistractors {
		candidates = clozePatterns(points, "", correct)
	}
	distractors := Sample(rng, candidates, maxDistractors)

	masked, didMask := MaskSentence(focal.JP, target)
	if didMask && target != "" {
		// A pattern repeated in the sentence would leave the answer
		// readable next to the blank. Blank the later copies too.
		masked = strings.ReplaceAll(masked, target, BlankToken)
	}

	meta := metaFields(level, focal.GrammarID)
	meta["masked"] = strconv.FormatBool(didMask)

	choices, answer := assembleChoices(rng, correct, distractors)
	return Question{
		ID:          focal.ID,
		Type:        TypeCloze,
		Prompt:      promptFor(lang, TypeCloze, ""),
		Sentence:    masked,
		Choices:     choices,
		AnswerIndex: answer,
		Meta:        meta,
	}, true
}

// clozePatterns collects distinct candidate patterns, restricted to one
// level unless levelCode is empty.
func clozePatterns(points []domain.GrammarPoint, levelCode, correct string) []string {
	values := make([]string, 0, len(points))
	for _, p := range points {
		if levelCode != "" && p.LevelCode != levelCode {
			continue
		}
		values = append(values, p.Pattern)
	}
	return distinctValues(values, correct)
}
