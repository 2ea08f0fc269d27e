package service

import (
	"context"
	"math/rand/v2"

	"jp-grammar/internal/domain"
	"jp-grammar/internal/dto"
	"jp-grammar/internal/logger"
	"jp-grammar/internal/quiz"
	"jp-grammar/internal/util"

	"go.uber.org/zap"
)

const (
	// quizPointPoolLimit caps the grammar points fetched for one quiz.
	quizPointPoolLimit = 200

	// quizExamplePoolLimit caps the examples fetched for one quiz.
	quizExamplePoolLimit = 500
)

// QuizRequest carries the generation parameters after validation.
type QuizRequest struct {
	LevelCode string
	Count     int
	Type      quiz.QuestionType
	Language  domain.Language
}

// QuizService exposes quiz generation over the stored catalogue.
type QuizService interface {
	GenerateQuiz(ctx context.Context, req QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	grammarRepo domain.GrammarRepository
	exampleRepo domain.ExampleRepository

	// rng is nil in production; quiz.Generate then seeds from the clock.
	// Tests inject a fixed seed for reproducible output.
	rng *rand.Rand
}

// NewQuizService creates a new QuizService.
func NewQuizService(grammarRepo domain.GrammarRepository, exampleRepo domain.ExampleRepository) QuizService {
	return &quizService{grammarRepo: grammarRepo, exampleRepo: exampleRepo}
}

// NewQuizServiceWithRand creates a QuizService whose generator draws
// from the given source. Used by tests.
func NewQuizServiceWithRand(grammarRepo domain.GrammarRepository, exampleRepo domain.ExampleRepository, rng *rand.Rand) QuizService {
	return &quizService{grammarRepo: grammarRepo, exampleRepo: exampleRepo, rng: rng}
}

func (s *quizService) GenerateQuiz(ctx context.Context, req QuizRequest) (*dto.QuizResponse, error) {
	points, err := s.grammarRepo.ListByLevel(ctx, req.LevelCode, quizPointPoolLimit)
	if err != nil {
		return nil, domain.NewStorageError("Failed to load grammar points for quiz", err)
	}
	if len(points) == 0 {
		return nil, domain.NewNoQuizDataError(req.LevelCode)
	}

	ids := make([]string, 0, len(points))
	for _, p := range points {
		ids = append(ids, p.ID)
	}

	// The examples table is reached through the points' ids rather than
	// its own level column, which older loads left empty. A failure here
	// costs cloze and translation questions, not the whole quiz.
	examples, err := s.exampleRepo.ListByGrammarIDs(ctx, ids, quizExamplePoolLimit)
	if err != nil {
		logger.Get().Warn("Failed to load examples for quiz, continuing with points only",
			zap.String("level_code", req.LevelCode),
			zap.Error(err),
		)
		examples = nil
	}

	questions, err := quiz.Generate(points, examples, quiz.Options{
		Count:    req.Count,
		Type:     req.Type,
		Language: req.Language,
		Rand:     s.rng,
	})
	if err != nil {
		// Only ErrNoGrammarData crosses the generator boundary, and the
		// empty-pool case was already handled above.
		return nil, domain.NewNoQuizDataError(req.LevelCode)
	}

	return &dto.QuizResponse{
		QuizID:    util.NewULID(),
		LevelCode: req.LevelCode,
		Type:      string(req.Type),
		Language:  string(req.Language),
		Count:     len(questions),
		Questions: dto.FromQuestions(questions),
	}, nil
}
