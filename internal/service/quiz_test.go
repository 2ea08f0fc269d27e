package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"jp-grammar/internal/domain"
	"jp-grammar/internal/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quizTestPoints() []domain.GrammarPoint {
	return []domain.GrammarPoint{
		{ID: "gp-1", LevelCode: "N5", Title: "ています", Pattern: "ている", MeaningES: "acción en curso", MeaningEN: "ongoing action"},
		{ID: "gp-2", LevelCode: "N5", Title: "たい", Pattern: "たい", MeaningES: "querer hacer", MeaningEN: "want to"},
		{ID: "gp-3", LevelCode: "N5", Title: "ながら", Pattern: "ながら", MeaningES: "mientras", MeaningEN: "while doing"},
		{ID: "gp-4", LevelCode: "N5", Title: "てから", Pattern: "てから", MeaningES: "después de", MeaningEN: "after doing"},
	}
}

func quizTestExamples() []domain.Example {
	return []domain.Example{
		{ID: "ex-1", GrammarID: "gp-1", LevelCode: "N5", Pattern: "ている", JP: "本を読んでいる。", ES: "Estoy leyendo.", EN: "I am reading."},
		{ID: "ex-2", GrammarID: "gp-2", LevelCode: "N5", Pattern: "たい", JP: "水が飲みたい。", ES: "Quiero beber agua.", EN: "I want to drink water."},
		{ID: "ex-3", GrammarID: "gp-3", LevelCode: "N5", Pattern: "ながら", JP: "音楽を聞きながら勉強する。", ES: "Estudio escuchando música.", EN: "I study while listening to music."},
	}
}

func TestGenerateQuiz(t *testing.T) {
	grammarRepo := &mockGrammarRepo{
		ListByLevelFn: func(ctx context.Context, levelCode string, limit int) ([]domain.GrammarPoint, error) {
			assert.Equal(t, "N5", levelCode)
			assert.Equal(t, 200, limit)
			return quizTestPoints(), nil
		},
	}
	exampleRepo := &mockExampleRepo{
		ListByGrammarIDsFn: func(ctx context.Context, grammarIDs []string, limit int) ([]domain.Example, error) {
			assert.Equal(t, []string{"gp-1", "gp-2", "gp-3", "gp-4"}, grammarIDs)
			assert.Equal(t, 500, limit)
			return quizTestExamples(), nil
		},
	}
	svc := NewQuizServiceWithRand(grammarRepo, exampleRepo, rand.New(rand.NewPCG(7, 7)))

	resp, err := svc.GenerateQuiz(context.Background(), QuizRequest{
		LevelCode: "N5",
		Count:     5,
		Type:      quiz.TypeMix,
		Language:  domain.LanguageES,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.QuizID)
	assert.Equal(t, "N5", resp.LevelCode)
	assert.Equal(t, "mix", resp.Type)
	assert.Equal(t, "es", resp.Language)
	assert.Equal(t, len(resp.Questions), resp.Count)
	require.NotEmpty(t, resp.Questions)
	for _, q := range resp.Questions {
		assert.Len(t, q.Choices, quiz.ChoiceCount)
		assert.GreaterOrEqual(t, q.AnswerIndex, 0)
		assert.Less(t, q.AnswerIndex, quiz.ChoiceCount)
	}
}

func TestGenerateQuizNoPoints(t *testing.T) {
	grammarRepo := &mockGrammarRepo{
		ListByLevelFn: func(ctx context.Context, levelCode string, limit int) ([]domain.GrammarPoint, error) {
			return nil, nil
		},
	}
	svc := NewQuizService(grammarRepo, &mockExampleRepo{})

	_, err := svc.GenerateQuiz(context.Background(), QuizRequest{LevelCode: "N1", Count: 5})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNoQuizData, domainErr.Code)
	assert.Equal(t, "N1", domainErr.Context["level_code"])
}

func TestGenerateQuizPointLookupFailure(t *testing.T) {
	grammarRepo := &mockGrammarRepo{
		ListByLevelFn: func(ctx context.Context, levelCode string, limit int) ([]domain.GrammarPoint, error) {
			return nil, errors.New("down")
		},
	}
	svc := NewQuizService(grammarRepo, &mockExampleRepo{})

	_, err := svc.GenerateQuiz(context.Background(), QuizRequest{LevelCode: "N5", Count: 5})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeStorageError, domainErr.Code)
}

func TestGenerateQuizDegradesWithoutExamples(t *testing.T) {
	grammarRepo := &mockGrammarRepo{
		ListByLevelFn: func(ctx context.Context, levelCode string, limit int) ([]domain.GrammarPoint, error) {
			return quizTestPoints(), nil
		},
	}
	exampleRepo := &mockExampleRepo{
		ListByGrammarIDsFn: func(ctx context.Context, grammarIDs []string, limit int) ([]domain.Example, error) {
			return nil, errors.New("examples table unavailable")
		},
	}
	svc := NewQuizServiceWithRand(grammarRepo, exampleRepo, rand.New(rand.NewPCG(7, 7)))

	resp, err := svc.GenerateQuiz(context.Background(), QuizRequest{
		LevelCode: "N5",
		Count:     4,
		Type:      quiz.TypeMix,
		Language:  domain.LanguageES,
	})
	require.NoError(t, err)

	// Sentence-based question types need examples; the quiz shrinks to
	// pattern and meaning questions instead of failing.
	require.NotEmpty(t, resp.Questions)
	for _, q := range resp.Questions {
		assert.Contains(t, []string{"pattern", "meaning"}, q.Type)
	}
}
