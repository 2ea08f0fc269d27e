package dto

import "jp-grammar/internal/quiz"

// QuestionResponse represents a single quiz question in the API response
// @Description A multiple-choice question with four options
type QuestionResponse struct {
	ID          string            `json:"id,omitempty"`
	Type        string            `json:"type"`
	Prompt      string            `json:"prompt"`
	Sentence    string            `json:"sentence,omitempty"`
	Choices     []string          `json:"choices"`
	AnswerIndex int               `json:"answer_index"`
	Meta        map[string]string `json:"meta,omitempty"`
}

// QuizResponse is the envelope of one generated quiz
// @Description A generated quiz with its questions
type QuizResponse struct {
	QuizID    string             `json:"quiz_id"`
	LevelCode string             `json:"level_code,omitempty"`
	Type      string             `json:"type"`
	Language  string             `json:"language"`
	Count     int                `json:"count"`
	Questions []QuestionResponse `json:"questions"`
}

// FromQuestion maps a generated question to its response shape.
func FromQuestion(q quiz.Question) QuestionResponse {
	return QuestionResponse{
		ID:          q.ID,
		Type:        string(q.Type),
		Prompt:      q.Prompt,
		Sentence:    q.Sentence,
		Choices:     q.Choices,
		AnswerIndex: q.AnswerIndex,
		Meta:        q.Meta,
	}
}

// FromQuestions maps a slice of generated questions.
func FromQuestions(questions []quiz.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, FromQuestion(q))
	}
	return out
}
