package assist

import (
	"context"

	"teachmate/internal/extract"
	"teachmate/internal/llm"
	"teachmate/internal/payload"
	"teachmate/internal/prompt"
)

// CheckHomework grades a text submission against an assignment
// description and returns the markdown feedback.
func (s *Service) CheckHomework(ctx context.Context, assignment, studentWork string) (string, error) {
	env, err := s.client.Generate(ctx, &llm.Request{
		Model:  s.models.Text,
		Prompt: prompt.Homework(assignment, studentWork),
	})
	if err != nil {
		return "", err
	}
	return extract.Text(env)
}

// GradeAnswerSheet grades a scanned answer-sheet image, optionally
// against an answer-key document. The payload is ordered answer key
// first, then the submission, then the instruction text; oversized
// attachments are rejected before any backend call.
func (s *Service) GradeAnswerSheet(ctx context.Context, submission payload.Attachment, answerKey *payload.Attachment, assignmentContext string) (string, error) {
	attachments := make([]payload.Attachment, 0, 2)
	if answerKey != nil {
		key := *answerKey
		key.Role = llm.RoleReference
		attachments = append(attachments, key)
	}
	submission.Role = llm.RoleSubmission
	attachments = append(attachments, submission)

	parts, err := payload.Build(attachments, prompt.AnswerSheet(assignmentContext, answerKey != nil))
	if err != nil {
		return "", err
	}
	env, err := s.client.Generate(ctx, &llm.Request{
		Model: s.models.Text,
		Parts: parts,
	})
	if err != nil {
		return "", err
	}
	return extract.Text(env)
}
