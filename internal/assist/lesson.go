package assist

import (
	"context"
	"iter"

	"teachmate/internal/llm"
	"teachmate/internal/prompt"
)

// StreamLessonPlan generates a lesson plan as an ordered sequence of
// markdown text deltas. The concatenation of all deltas equals the
// complete plan; iteration ends at end-of-stream or at the first
// error, which is yielded as the terminal pair.
func (s *Service) StreamLessonPlan(ctx context.Context, cfg prompt.LessonPlanConfig) iter.Seq2[string, error] {
	req := &llm.Request{
		Model:             s.models.Text,
		Prompt:            prompt.LessonPlan(cfg),
		SystemInstruction: prompt.LessonPlanSystemInstruction,
	}
	return s.client.GenerateStream(ctx, req)
}
