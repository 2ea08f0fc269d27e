package validation

import (
	"regexp"
	"strings"

	"jp-grammar/internal/domain"
	"jp-grammar/internal/quiz"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// levelCodePattern matches the JLPT level codes the catalogue uses.
var levelCodePattern = regexp.MustCompile(`^[Nn][1-5]$`)

// ValidateLevelCode validates an optional level_code parameter.
func (v *Validator) ValidateLevelCode(levelCode string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if levelCode != "" && !levelCodePattern.MatchString(levelCode) {
		errors = append(errors, domain.NewInvalidFormatError("level_code", levelCode))
	}

	return errors
}

// ValidateQuizRequest validates the quiz generation parameters. The count
// is range-checked here; level, type and language degrade to defaults in
// the service, so only structurally broken values are rejected.
func (v *Validator) ValidateQuizRequest(levelCode string, count int, questionType, language string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.ValidateLevelCode(levelCode)...)

	if count < quiz.MinCount || count > quiz.MaxCount {
		errors = append(errors, domain.NewOutOfRangeError("count", count, quiz.MinCount, quiz.MaxCount))
	}

	if _, ok := quiz.ParseQuestionType(questionType); !ok {
		errors = append(errors, domain.NewInvalidFormatError("type", questionType))
	}

	if language != "" && !domain.Language(language).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("lang", language))
	}

	return errors
}

// ValidateSearchRequest validates the combined search parameters. The
// query is the only required parameter of the whole read API.
func (v *Validator) ValidateSearchRequest(query string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(query) == "" {
		errors = append(errors, domain.NewMissingFieldError("q"))
	}

	return errors
}
