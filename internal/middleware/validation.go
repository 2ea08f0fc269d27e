package middleware

import (
	"jp-grammar/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSearchQuery requires a non-empty q parameter before the search
// handler runs. Validation errors are picked up by ErrorHandler.
func (vm *ValidationMiddleware) ValidateSearchQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")

		if errors := vm.validator.ValidateSearchRequest(query); len(errors) > 0 {
			return errors
		}

		c.Locals("validated_query", query)
		return c.Next()
	}
}

// ValidateLevelCode rejects structurally broken level_code parameters on
// the routes that accept one.
func (vm *ValidationMiddleware) ValidateLevelCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		levelCode := c.Query("level_code")

		if errors := vm.validator.ValidateLevelCode(levelCode); len(errors) > 0 {
			return errors
		}

		return c.Next()
	}
}
