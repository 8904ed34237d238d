package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"teachmate/internal/extract"
	"teachmate/internal/llm"
	"teachmate/internal/prompt"
	"teachmate/internal/schema"
)

// ErrMalformedResponse signals the backend returned text that fails
// the required parse or shape check. No partially populated result is
// ever returned in its place.
var ErrMalformedResponse = errors.New("assist: response does not match the requested shape")

// QuizQuestion is one multiple-choice question.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Quiz is the structured quiz result.
type Quiz struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

func quizContract() *schema.Contract {
	return schema.Object(
		schema.Field("title", schema.String("A creative title for the quiz")),
		schema.Field("questions", schema.Array(schema.Object(
			schema.Field("question", schema.String("")),
			schema.Field("options", &schema.Contract{
				Kind:        schema.KindArray,
				Description: fmt.Sprintf("Array of %d possible answers", prompt.QuizOptionCount),
				Items:       schema.String(""),
			}),
			schema.Field("correctAnswer", schema.String("The exact string match of the correct option")),
			schema.Field("explanation", schema.String("Brief explanation of why this answer is correct")),
		))),
	)
}

// GenerateQuiz produces a structured quiz via schema-constrained
// generation. The decoded value is shape-checked; correctAnswer being
// one of the options is a contract on the generation request, not
// re-enforced here, so a violating result is returned as-is for the
// caller to inspect.
func (s *Service) GenerateQuiz(ctx context.Context, topic, grade string, questionCount int) (*Quiz, error) {
	req := &llm.Request{
		Model:            s.models.Text,
		Prompt:           prompt.Quiz(topic, grade, questionCount),
		ResponseContract: quizContract(),
	}
	env, err := s.client.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	text, err := extract.Text(env)
	if err != nil {
		return nil, err
	}
	var quiz Quiz
	if err := json.Unmarshal([]byte(text), &quiz); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := validateQuizShape(&quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func validateQuizShape(q *Quiz) error {
	if q.Title == "" {
		return fmt.Errorf("%w: missing title", ErrMalformedResponse)
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrMalformedResponse)
	}
	for i, question := range q.Questions {
		if question.Question == "" || len(question.Options) == 0 ||
			question.CorrectAnswer == "" || question.Explanation == "" {
			return fmt.Errorf("%w: question %d is incomplete", ErrMalformedResponse, i)
		}
	}
	return nil
}
