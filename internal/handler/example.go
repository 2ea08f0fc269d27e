package handler

import (
	"jp-grammar/internal/domain"
	"jp-grammar/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ExampleHandler handles example sentence HTTP requests
type ExampleHandler struct {
	service service.ExampleService
}

// NewExampleHandler creates a new ExampleHandler instance
func NewExampleHandler(service service.ExampleService) *ExampleHandler {
	return &ExampleHandler{service: service}
}

// ListExamples godoc
// @Summary List example sentences
// @Description Returns a page of examples, optionally filtered by level, pattern and free text
// @Tags examples
// @Accept json
// @Produce json
// @Param level_code query string false "Level code (N5..N1)"
// @Param pattern query string false "Pattern contains filter"
// @Param q query string false "Search over sentence, translations, title, pattern, romaji and hint"
// @Param limit query int false "Page size (1-500, default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ExampleListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /examples [get]
func (h *ExampleHandler) ListExamples(c *fiber.Ctx) error {
	filter := domain.ExampleFilter{
		LevelCode: c.Query("level_code"),
		Pattern:   c.Query("pattern"),
		Search:    c.Query("q"),
		Limit:     c.QueryInt("limit"),
		Offset:    c.QueryInt("offset"),
	}

	response, err := h.service.ListExamples(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(response)
}
