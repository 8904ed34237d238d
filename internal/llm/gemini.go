package llm

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net"
	"strings"

	genai "google.golang.org/genai"

	"teachmate/internal/schema"
)

// GeminiClient is a thin wrapper around the official genai client. It
// only focuses on the API call itself; each method performs exactly
// one exchange.
type GeminiClient struct {
	cli *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{cli: cli}, nil
}

func (g *GeminiClient) Name() string { return "Gemini" }
func (g *GeminiClient) Close() error { return nil }

func (g *GeminiClient) Generate(ctx context.Context, req *Request) (*Envelope, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, req.Model, buildContents(req), buildConfig(req))
	if err != nil {
		return nil, classify(err)
	}
	if reason, ok := blockReason(resp); ok {
		return nil, fmt.Errorf("%w: %s", ErrSafetyBlocked, reason)
	}
	return envelopeFrom(resp), nil
}

func (g *GeminiClient) GenerateStream(ctx context.Context, req *Request) iter.Seq2[string, error] {
	contents := buildContents(req)
	cfg := buildConfig(req)
	return func(yield func(string, error) bool) {
		for resp, err := range g.cli.Models.GenerateContentStream(ctx, req.Model, contents, cfg) {
			if err != nil {
				yield("", classify(err))
				return
			}
			if reason, ok := blockReason(resp); ok {
				yield("", fmt.Errorf("%w: %s", ErrSafetyBlocked, reason))
				return
			}
			delta := textOf(resp)
			if delta == "" {
				continue
			}
			if !yield(delta, nil) {
				return
			}
		}
	}
}

func buildContents(req *Request) []*genai.Content {
	if len(req.Parts) == 0 {
		return genai.Text(req.Prompt)
	}
	parts := make([]*genai.Part, 0, len(req.Parts))
	for _, p := range req.Parts {
		switch p := p.(type) {
		case TextPart:
			parts = append(parts, &genai.Part{Text: p.Text})
		case InlineAttachmentPart:
			parts = append(parts, &genai.Part{
				InlineData: &genai.Blob{MIMEType: p.MediaType, Data: p.Data},
			})
		}
	}
	return []*genai.Content{{Role: genai.RoleUser, Parts: parts}}
}

func buildConfig(req *Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		}
	}
	if req.ResponseContract != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = genaiSchema(req.ResponseContract)
	}
	if req.Tools.WebSearch {
		cfg.Tools = append(cfg.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
	}
	return cfg
}

func genaiSchema(c *schema.Contract) *genai.Schema {
	if c == nil {
		return nil
	}
	switch c.Kind {
	case schema.KindObject:
		out := &genai.Schema{
			Type:        genai.TypeObject,
			Description: c.Description,
			Properties:  map[string]*genai.Schema{},
		}
		for _, p := range c.Properties {
			out.Properties[p.Name] = genaiSchema(p.Schema)
			if p.Required {
				out.Required = append(out.Required, p.Name)
			}
		}
		return out
	case schema.KindArray:
		return &genai.Schema{
			Type:        genai.TypeArray,
			Description: c.Description,
			Items:       genaiSchema(c.Items),
		}
	default:
		return &genai.Schema{Type: genai.TypeString, Description: c.Description}
	}
}

func envelopeFrom(resp *genai.GenerateContentResponse) *Envelope {
	env := &Envelope{}
	if len(resp.Candidates) == 0 {
		return env
	}
	cand := resp.Candidates[0]
	if cand.Content != nil {
		var text strings.Builder
		for _, p := range cand.Content.Parts {
			switch {
			case p.InlineData != nil:
				env.Parts = append(env.Parts, ResponsePart{
					Inline: &Blob{MIMEType: p.InlineData.MIMEType, Data: p.InlineData.Data},
				})
			case p.Text != "":
				env.Parts = append(env.Parts, ResponsePart{Text: p.Text})
				text.WriteString(p.Text)
			}
		}
		env.Text = text.String()
	}
	if md := cand.GroundingMetadata; md != nil {
		for _, ch := range md.GroundingChunks {
			gc := GroundingChunk{}
			if ch.Web != nil {
				gc.URI = ch.Web.URI
				gc.Title = ch.Web.Title
			}
			env.Grounding = append(env.Grounding, gc)
		}
	}
	return env
}

func textOf(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.InlineData == nil && p.Text != "" {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

func blockReason(resp *genai.GenerateContentResponse) (string, bool) {
	if fb := resp.PromptFeedback; fb != nil {
		reason := string(fb.BlockReason)
		if reason != "" && reason != "BLOCKED_REASON_UNSPECIFIED" {
			return reason, true
		}
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return string(genai.FinishReasonSafety), true
	}
	return "", false
}

// classify maps transport failures onto the package error taxonomy.
// Errors that fit no category propagate unchanged.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 429 || strings.EqualFold(apiErr.Status, "RESOURCE_EXHAUSTED") {
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, apiErr.Message)
		}
		if apiErr.Code == 503 || apiErr.Code == 502 {
			return fmt.Errorf("%w: %s", ErrNetwork, apiErr.Message)
		}
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return err
}
