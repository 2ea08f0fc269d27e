// Package quiz synthesizes multiple-choice questions from grammar
// points and example sentences. It performs no I/O; callers supply the
// pools and, for reproducible output, the random source.
package quiz

import (
	"fmt"

	"jp-grammar/internal/domain"
)

// QuestionType identifies the kind of question a builder produces.
type QuestionType string

const (
	TypeMix         QuestionType = "mix"
	TypePattern     QuestionType = "pattern"
	TypeMeaning     QuestionType = "meaning"
	TypeTranslation QuestionType = "translation"
	TypeCloze       QuestionType = "cloze"
)

// ParseQuestionType normalizes a user-supplied type selector.
func ParseQuestionType(s string) (QuestionType, bool) {
	switch QuestionType(s) {
	case TypeMix, TypePattern, TypeMeaning, TypeTranslation, TypeCloze:
		return QuestionType(s), true
	case "":
		return TypeMix, true
	}
	return TypeMix, false
}

const (
	// ChoiceCount is the number of answer choices every question carries.
	ChoiceCount = 4

	// PlaceholderAnswer stands in for a choice whose source field was
	// empty, and pads the choice list when too few distractors exist.
	PlaceholderAnswer = "—"

	// BlankToken marks the masked fragment of a cloze sentence.
	BlankToken = "____"
)

// Question is one generated multiple-choice question.
type Question struct {
	ID          string
	Type        QuestionType
	Prompt      string
	Sentence    string
	Choices     []string
	AnswerIndex int
	Meta        map[string]string
}

var prompts = map[domain.Language]map[QuestionType]string{
	domain.LanguageES: {
		TypePattern:     "¿Qué patrón corresponde a «%s»?",
		TypeMeaning:     "¿Qué significa «%s»?",
		TypeTranslation: "¿Cuál es la traducción correcta de esta frase?",
		TypeCloze:       "Completa la frase:",
	},
	domain.LanguageEN: {
		TypePattern:     "Which pattern corresponds to \"%s\"?",
		TypeMeaning:     "What does \"%s\" mean?",
		TypeTranslation: "Which is the correct translation of this sentence?",
		TypeCloze:       "Fill in the blank:",
	},
}

func promptFor(lang domain.Language, t QuestionType, label string) string {
	table, ok := prompts[lang]
	if !ok {
		table = prompts[domain.LanguageES]
	}
	tmpl := table[t]
	if t == TypePattern || t == TypeMeaning {
		return fmt.Sprintf(tmpl, label)
	}
	return tmpl
}

// pointLabel is the display name of a point inside a prompt.
func pointLabel(p domain.GrammarPoint) string {
	if p.Title != "" {
		return p.Title
	}
	return p.Pattern
}

func orPlaceholder(s string) string {
	if s == "" {
		return PlaceholderAnswer
	}
	return s
}

func metaFields(level, grammarID string) map[string]string {
	m := make(map[string]string, 3)
	if level != "" {
		m["level"] = level
	}
	if grammarID != "" {
		m["grammar_id"] = grammarID
	}
	return m
}
