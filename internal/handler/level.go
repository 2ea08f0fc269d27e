package handler

import (
	"jp-grammar/internal/dto"
	"jp-grammar/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LevelHandler handles the levels listing and liveness probe
type LevelHandler struct {
	service service.LevelService
}

// NewLevelHandler creates a new LevelHandler instance
func NewLevelHandler(service service.LevelService) *LevelHandler {
	return &LevelHandler{service: service}
}

// GetLevels godoc
// @Summary List proficiency levels
// @Description Returns all levels ordered by code
// @Tags levels
// @Accept json
// @Produce json
// @Success 200 {object} dto.LevelListResponse
// @Router /levels [get]
func (h *LevelHandler) GetLevels(c *fiber.Ctx) error {
	response, err := h.service.GetLevels(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// Health godoc
// @Summary Liveness probe
// @Description Reports that the service is up
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok", Service: "jp-grammar-api"})
}
