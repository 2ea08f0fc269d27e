package handler

import (
	"jp-grammar/internal/domain"
	"jp-grammar/internal/quiz"
	"jp-grammar/internal/service"
	"jp-grammar/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz generation HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GenerateQuiz godoc
// @Summary Generate a multiple-choice quiz
// @Description Builds up to count questions from the stored grammar points and examples
// @Tags quiz
// @Accept json
// @Produce json
// @Param level_code query string false "Level code (N5..N1)"
// @Param count query int false "Number of questions (1-50, default 10)"
// @Param type query string false "Question type: mix, pattern, meaning, translation or cloze (default mix)"
// @Param lang query string false "Answer language: es or en (default es)"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz [get]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	levelCode := c.Query("level_code")
	count := c.QueryInt("count", quiz.DefaultCount)
	typeParam := c.Query("type")
	langParam := c.Query("lang")

	if errs := h.validator.ValidateQuizRequest(levelCode, count, typeParam, langParam); len(errs) > 0 {
		return errs
	}

	questionType, _ := quiz.ParseQuestionType(typeParam)
	response, err := h.service.GenerateQuiz(c.Context(), service.QuizRequest{
		LevelCode: levelCode,
		Count:     count,
		Type:      questionType,
		Language:  domain.ParseLanguage(langParam),
	})
	if err != nil {
		return err
	}
	return c.JSON(response)
}
