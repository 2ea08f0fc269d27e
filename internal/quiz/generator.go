package quiz

import (
	"errors"
	"math/rand/v2"
	"time"

	"jp-grammar/internal/domain"
)

const (
	// MinCount and MaxCount bound questions per generated quiz.
	MinCount = 1
	MaxCount = 50

	// DefaultCount is applied by callers when no count was requested.
	DefaultCount = 10

	// maxAttempts bounds builder invocations for one Generate call so
	// sparse data can never loop forever.
	maxAttempts = 120
)

// ErrNoGrammarData is the only error Generate returns: there are no
// grammar points at all, so not a single question can be built. Any
// other scarcity degrades to fewer questions instead.
var ErrNoGrammarData = errors.New("no grammar points available")

// typeOrder is the preference order for mixed quizzes and for falling
// back when a requested type cannot be produced.
var typeOrder = [...]QuestionType{TypeCloze, TypePattern, TypeMeaning, TypeTranslation}

// Options configures one Generate call. A nil Rand gets a time-seeded
// source; tests inject a fixed seed for reproducible output.
type Options struct {
	Count    int
	Type     QuestionType
	Language domain.Language
	Rand     *rand.Rand
}

type generator struct {
	rng             *rand.Rand
	lang            domain.Language
	points          []domain.GrammarPoint
	clozePool       []domain.Example
	translationPool []domain.Example
	attempts        int
}

// Generate synthesizes up to opts.Count questions from the given pools.
// Examples unusable for a question type are filtered out up front;
// builders themselves never fail on merely incomplete optional fields.
func Generate(points []domain.GrammarPoint, examples []domain.Example, opts Options) ([]Question, error) {
	if len(points) == 0 {
		return nil, ErrNoGrammarData
	}

	count := opts.Count
	if count < MinCount {
		count = MinCount
	} else if count > MaxCount {
		count = MaxCount
	}

	lang := opts.Language
	if !lang.Valid() {
		lang = domain.LanguageES
	}

	rng := opts.Rand
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>17))
	}

	g := &generator{
		rng:    rng,
		lang:   lang,
		points: points,
	}
	for _, e := range examples {
		if e.JP != "" {
			g.clozePool = append(g.clozePool, e)
		}
		if e.TranslationIn(lang) != "" {
			g.translationPool = append(g.translationPool, e)
		}
	}

	qtype := opts.Type
	if qtype == "" {
		qtype = TypeMix
	}

	var questions []Question
	if qtype == TypeMix {
		questions = g.generateMix(count)
	} else {
		questions = g.generateSingle(qtype, count)
	}

	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

// generateMix cycles the preference order, at most one question per
// type per pass, skipping types whose pool is exhausted. A pass that
// produces nothing ends generation early.
func (g *generator) generateMix(count int) []Question {
	var out []Question
	for len(out) < count && g.attempts < maxAttempts {
		produced := false
		for _, t := range typeOrder {
			if len(out) >= count || g.attempts >= maxAttempts {
				break
			}
			if q, ok := g.build(t); ok {
				out = append(out, q)
				produced = true
			}
		}
		if !produced {
			break
		}
	}
	return out
}

// generateSingle keeps invoking one builder; when it cannot produce,
// the remaining types are tried in preference order so a quiz still
// comes back for data that lacks the requested kind.
func (g *generator) generateSingle(qtype QuestionType, count int) []Question {
	var out []Question
	for len(out) < count && g.attempts < maxAttempts {
		if q, ok := g.build(qtype); ok {
			out = append(out, q)
			continue
		}

		fell := false
		for _, t := range typeOrder {
			if g.attempts >= maxAttempts {
				break
			}
			if t == qtype {
				continue
			}
			if q, ok := g.build(t); ok {
				out = append(out, q)
				fell = true
				break
			}
		}
		if !fell {
			break
		}
	}
	return out
}

// build draws a random focal record for the type and runs its builder.
func (g *generator) build(t QuestionType) (Question, bool) {
	g.attempts++
	switch t {
	case TypePattern:
		focal := g.points[g.rng.IntN(len(g.points))]
		return buildPatternQuestion(g.rng, focal, g.points, g.lang)
	case TypeMeaning:
		focal := g.points[g.rng.IntN(len(g.points))]
		return buildMeaningQuestion(g.rng, focal, g.points, g.lang)
	case TypeTranslation:
		if len(g.translationPool) == 0 {
			return Question{}, false
		}
		focal := g.translationPool[g.rng.IntN(len(g.translationPool))]
		return buildTranslationQuestion(g.rng, focal, g.translationPool, g.lang)
	case TypeCloze:
		if len(g.clozePool) == 0 {
			return Question{}, false
		}
		focal := g.clozePool[g.rng.IntN(len(g.clozePool))]
		return buildClozeQuestion(g.rng, focal, g.points, g.lang)
	}
	return Question{}, false
}
