package assist

import (
	"context"

	"teachmate/internal/extract"
	"teachmate/internal/llm"
)

// GenerateVisualAid renders a classroom visual from a free-form
// description and returns the first inline image of the response.
// A response without image data is an explicit failure, never a
// placeholder.
func (s *Service) GenerateVisualAid(ctx context.Context, description string) (*extract.Image, error) {
	env, err := s.client.Generate(ctx, &llm.Request{
		Model:  s.models.Image,
		Prompt: description,
	})
	if err != nil {
		return nil, err
	}
	return extract.FirstImage(env)
}
