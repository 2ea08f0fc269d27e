package quiz

import (
	"strings"
	"testing"

	"jp-grammar/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNoPoints(t *testing.T) {
	_, err := Generate(nil, testExamples(), Options{Count: 5, Type: TypeMix, Rand: newTestRNG(1)})
	assert.ErrorIs(t, err, ErrNoGrammarData)

	_, err = Generate([]domain.GrammarPoint{}, nil, Options{Count: 5, Rand: newTestRNG(1)})
	assert.ErrorIs(t, err, ErrNoGrammarData)
}

func TestGenerateStructuralInvariants(t *testing.T) {
	points := testPoints()
	examples := testExamples()

	for seed := uint64(0); seed < 20; seed++ {
		questions, err := Generate(points, examples, Options{
			Count:    12,
			Type:     TypeMix,
			Language: domain.LanguageES,
			Rand:     newTestRNG(seed),
		})
		require.NoError(t, err)
		require.NotEmpty(t, questions)
		assert.LessOrEqual(t, len(questions), 12)

		for _, q := range questions {
			assert.Contains(t, []QuestionType{TypePattern, TypeMeaning, TypeTranslation, TypeCloze}, q.Type)
			assert.NotEmpty(t, q.Prompt)
			require.Len(t, q.Choices, ChoiceCount)
			require.GreaterOrEqual(t, q.AnswerIndex, 0)
			require.Less(t, q.AnswerIndex, ChoiceCount)
			assert.NotEmpty(t, q.Choices[q.AnswerIndex])

			if q.Type == TypeCloze {
				if q.Meta["masked"] == "true" {
					assert.Contains(t, q.Sentence, BlankToken)
					assert.NotContains(t, q.Sentence, q.Choices[q.AnswerIndex])
				}
			}
			if q.Type == TypeTranslation {
				assert.NotEmpty(t, q.Sentence)
				assert.NotContains(t, q.Sentence, BlankToken)
			}
		}
	}
}

func TestGenerateSinglePointNoExamples(t *testing.T) {
	points := testPoints()[:1]

	questions, err := Generate(points, nil, Options{
		Count: 5,
		Type:  TypeMix,
		Rand:  newTestRNG(9),
	})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(questions), 1)
	assert.LessOrEqual(t, len(questions), 5)
	for _, q := range questions {
		assert.Contains(t, []QuestionType{TypePattern, TypeMeaning}, q.Type,
			"example-backed types must not appear without examples")
	}
}

func TestGenerateFixedSeedReproduces(t *testing.T) {
	points := testPoints()
	examples := testExamples()
	opts := func() Options {
		return Options{Count: 8, Type: TypeMix, Language: domain.LanguageEN, Rand: newTestRNG(1234)}
	}

	first, err := Generate(points, examples, opts())
	require.NoError(t, err)
	second, err := Generate(points, examples, opts())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateCountBounds(t *testing.T) {
	points := testPoints()

	t.Run("ClampsAboveMax", func(t *testing.T) {
		questions, err := Generate(points, testExamples(), Options{Count: 500, Rand: newTestRNG(2)})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(questions), MaxCount)
	})

	t.Run("ClampsBelowMin", func(t *testing.T) {
		questions, err := Generate(points, testExamples(), Options{Count: -3, Rand: newTestRNG(3)})
		require.NoError(t, err)
		assert.Len(t, questions, MinCount)
	})
}

func TestGenerateSingleType(t *testing.T) {
	points := testPoints()
	examples := testExamples()

	t.Run("AllRequestedTypeWhenViable", func(t *testing.T) {
		questions, err := Generate(points, examples, Options{Count: 6, Type: TypeCloze, Rand: newTestRNG(4)})
		require.NoError(t, err)
		require.NotEmpty(t, questions)
		for _, q := range questions {
			assert.Equal(t, TypeCloze, q.Type)
		}
	})

	t.Run("FallsBackWhenTypeUnusable", func(t *testing.T) {
		// No examples at all: translation can never be built, but a
		// quiz still comes back from the remaining builders.
		questions, err := Generate(points, nil, Options{Count: 4, Type: TypeTranslation, Rand: newTestRNG(5)})
		require.NoError(t, err)
		require.NotEmpty(t, questions)
		for _, q := range questions {
			assert.NotEqual(t, TypeTranslation, q.Type)
		}
	})

	t.Run("LanguageFiltersTranslationPool", func(t *testing.T) {
		// Examples carrying only English translations are not viable
		// for a Spanish translation quiz.
		onlyEN := []domain.Example{
			{ID: "ex9", GrammarID: "gp1", JP: "これは本です。", EN: "This is a book."},
		}
		questions, err := Generate(points, onlyEN, Options{
			Count:    3,
			Type:     TypeTranslation,
			Language: domain.LanguageES,
			Rand:     newTestRNG(6),
		})
		require.NoError(t, err)
		for _, q := range questions {
			assert.NotEqual(t, TypeTranslation, q.Type)
		}
	})
}

func TestGenerateMixRoundRobin(t *testing.T) {
	points := testPoints()
	examples := testExamples()

	questions, err := Generate(points, examples, Options{Count: 8, Type: TypeMix, Rand: newTestRNG(7)})
	require.NoError(t, err)
	require.Len(t, questions, 8)

	counts := map[QuestionType]int{}
	for _, q := range questions {
		counts[q.Type]++
	}
	// Two full passes over four viable types: every type appears twice.
	assert.Equal(t, 2, counts[TypeCloze])
	assert.Equal(t, 2, counts[TypePattern])
	assert.Equal(t, 2, counts[TypeMeaning])
	assert.Equal(t, 2, counts[TypeTranslation])
}

func TestGenerateTerminatesOnSparseData(t *testing.T) {
	// A single point with nothing but an identifier: builders keep
	// producing placeholder-heavy questions, so the loop must stop at
	// the requested count rather than spin on retries.
	points := []domain.GrammarPoint{{ID: "gp1", LevelCode: "N5"}}

	questions, err := Generate(points, nil, Options{Count: 50, Type: TypeMix, Rand: newTestRNG(8)})
	require.NoError(t, err)
	assert.NotEmpty(t, questions)
	assert.LessOrEqual(t, len(questions), 50)
	for _, q := range questions {
		require.Len(t, q.Choices, ChoiceCount)
	}
}

func TestParseQuestionType(t *testing.T) {
	for _, valid := range []string{"mix", "pattern", "meaning", "translation", "cloze"} {
		got, ok := ParseQuestionType(valid)
		assert.True(t, ok)
		assert.Equal(t, QuestionType(valid), got)
	}

	got, ok := ParseQuestionType("")
	assert.True(t, ok)
	assert.Equal(t, TypeMix, got)

	_, ok = ParseQuestionType("essay")
	assert.False(t, ok)
}

func TestGenerateSentenceNeverRevealsAnswer(t *testing.T) {
	points := testPoints()
	examples := testExamples()

	for seed := uint64(0); seed < 10; seed++ {
		questions, err := Generate(points, examples, Options{Count: 10, Type: TypeCloze, Rand: newTestRNG(seed + 100)})
		require.NoError(t, err)
		for _, q := range questions {
			if q.Meta["masked"] != "true" {
				continue
			}
			correct := q.Choices[q.AnswerIndex]
			assert.False(t, strings.Contains(q.Sentence, correct),
				"masked sentence %q still contains answer %q", q.Sentence, correct)
		}
	}
}
