package handler

import (
	"jp-grammar/internal/domain"
	"jp-grammar/internal/service"

	"github.com/gofiber/fiber/v2"
)

// VocabHandler handles vocabulary and cached dictionary HTTP requests
type VocabHandler struct {
	service service.VocabService
}

// NewVocabHandler creates a new VocabHandler instance
func NewVocabHandler(service service.VocabService) *VocabHandler {
	return &VocabHandler{service: service}
}

// ListVocab godoc
// @Summary List vocabulary entries
// @Description Returns a page of vocabulary, optionally filtered by level and free text
// @Tags vocab
// @Accept json
// @Produce json
// @Param level query string false "Level code (N5..N1)"
// @Param q query string false "Search over kanji, meaning and kana reading"
// @Param limit query int false "Page size (1-200, default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.VocabListResponse
// @Router /vocab [get]
func (h *VocabHandler) ListVocab(c *fiber.Ctx) error {
	filter := domain.VocabFilter{
		Level:  c.Query("level"),
		Search: c.Query("q"),
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}

	response, err := h.service.ListVocab(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// ListJotoba godoc
// @Summary List cached dictionary entries
// @Description Returns a page of imported Jotoba entries
// @Tags vocab
// @Accept json
// @Produce json
// @Param level query string false "Level code (N5..N1)"
// @Param language query string false "Entry language"
// @Param q query string false "Search over term and readings"
// @Param limit query int false "Page size (1-200, default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.JotobaListResponse
// @Router /jotoba [get]
func (h *VocabHandler) ListJotoba(c *fiber.Ctx) error {
	filter := domain.JotobaFilter{
		Level:    c.Query("level"),
		Language: c.Query("language"),
		Search:   c.Query("q"),
		Limit:    c.QueryInt("limit"),
		Offset:   c.QueryInt("offset"),
	}

	response, err := h.service.ListJotoba(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(response)
}
