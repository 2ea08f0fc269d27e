// Package handler wires the HTTP routes to the services. Handlers parse
// and clamp query parameters and hand errors to the central error
// middleware.
package handler

import (
	"jp-grammar/internal/domain"
	"jp-grammar/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GrammarHandler handles grammar point HTTP requests
type GrammarHandler struct {
	service service.GrammarService
}

// NewGrammarHandler creates a new GrammarHandler instance
func NewGrammarHandler(service service.GrammarService) *GrammarHandler {
	return &GrammarHandler{service: service}
}

// ListGrammar godoc
// @Summary List grammar points
// @Description Returns a page of grammar points, optionally filtered by level and free text
// @Tags grammar
// @Accept json
// @Produce json
// @Param level_code query string false "Level code (N5..N1)"
// @Param q query string false "Search over title, pattern and meanings"
// @Param limit query int false "Page size (1-200, default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.GrammarListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /grammar [get]
func (h *GrammarHandler) ListGrammar(c *fiber.Ctx) error {
	filter := domain.GrammarFilter{
		LevelCode: c.Query("level_code"),
		Search:    c.Query("q"),
		Limit:     c.QueryInt("limit"),
		Offset:    c.QueryInt("offset"),
	}

	response, err := h.service.ListGrammar(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// GetGrammar godoc
// @Summary Get one grammar point with its examples
// @Description Returns a grammar point and up to 100 linked or related examples
// @Tags grammar
// @Accept json
// @Produce json
// @Param id path string true "Grammar point ID"
// @Success 200 {object} dto.GrammarDetailResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /grammar/{id} [get]
func (h *GrammarHandler) GetGrammar(c *fiber.Ctx) error {
	response, err := h.service.GetGrammarDetail(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(response)
}
