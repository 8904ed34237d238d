package assist

import (
	"context"

	"teachmate/internal/extract"
	"teachmate/internal/llm"
	"teachmate/internal/prompt"
)

// PlagiarismReport is the outcome of an internet scan: the written
// analysis plus the deduplicated citation sources that grounded it.
type PlagiarismReport struct {
	Analysis string           `json:"analysis"`
	Sources  []extract.Source `json:"sources"`
}

// CheckPlagiarism scans a text against the web via search grounding.
func (s *Service) CheckPlagiarism(ctx context.Context, text string) (*PlagiarismReport, error) {
	env, err := s.client.Generate(ctx, &llm.Request{
		Model:  s.models.Text,
		Prompt: prompt.PlagiarismScan(text),
		Tools:  llm.Tools{WebSearch: true},
	})
	if err != nil {
		return nil, err
	}
	analysis, err := extract.Text(env)
	if err != nil {
		return nil, err
	}
	return &PlagiarismReport{Analysis: analysis, Sources: extract.Sources(env)}, nil
}

// CompareSubmissions checks two student submissions against each
// other and returns the markdown comparison.
func (s *Service) CompareSubmissions(ctx context.Context, a, b string) (string, error) {
	env, err := s.client.Generate(ctx, &llm.Request{
		Model:  s.models.Text,
		Prompt: prompt.CompareSubmissions(a, b),
	})
	if err != nil {
		return "", err
	}
	return extract.Text(env)
}
