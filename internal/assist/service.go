// Package assist orchestrates generation requests for the
// teacher-facing features: lesson planning, quiz generation, visual
// aids, homework grading and plagiarism checking. Every operation
// builds one immutable request, performs one backend exchange through
// the injected client, and returns a typed result or a typed error.
// Nothing is cached, persisted or retried here.
package assist

import "teachmate/internal/llm"

// Default backend model ids per task family.
const (
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultImageModel = "gemini-2.5-flash-image"
)

// Models selects the backend models used by the service.
type Models struct {
	Text  string
	Image string
}

// Service holds the injected backend client and model selection, and
// no other state. Concurrent calls are fully independent.
type Service struct {
	client llm.Client
	models Models
}

func New(client llm.Client, models Models) *Service {
	if models.Text == "" {
		models.Text = DefaultTextModel
	}
	if models.Image == "" {
		models.Image = DefaultImageModel
	}
	return &Service{client: client, models: models}
}
