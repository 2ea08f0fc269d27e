package handler

import (
	"jp-grammar/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SearchHandler handles the combined free-text search
type SearchHandler struct {
	service service.SearchService
}

// NewSearchHandler creates a new SearchHandler instance
func NewSearchHandler(service service.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search godoc
// @Summary Search grammar points and examples
// @Description Runs a combined free-text search over both tables
// @Tags search
// @Accept json
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Max results per table (1-100, default 10)"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if validated, ok := c.Locals("validated_query").(string); ok {
		query = validated
	}

	response, err := h.service.Search(c.Context(), query, c.QueryInt("limit"))
	if err != nil {
		return err
	}
	return c.JSON(response)
}
