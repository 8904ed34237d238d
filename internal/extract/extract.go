// Package extract pulls the task-relevant field out of a response
// envelope: the generated text, the first inline image, or the
// deduplicated citation list.
package extract

import (
	"errors"
	"strings"

	"teachmate/internal/llm"
)

var (
	// ErrEmptyResponse signals the backend returned no usable text.
	ErrEmptyResponse = errors.New("extract: no usable text in response")

	// ErrNoImageData signals the response carried no inline binary
	// image part.
	ErrNoImageData = errors.New("extract: no inline image data in response")
)

// Title used for a citation whose chunk carries a link but no title.
const defaultSourceTitle = "Web Source"

// Fallback media type when the backend omits one on an image blob.
const defaultImageMediaType = "image/png"

// Text returns the envelope's generated text. A missing or blank text
// field is an explicit failure, never an empty result.
func Text(env *llm.Envelope) (string, error) {
	if env == nil || strings.TrimSpace(env.Text) == "" {
		return "", ErrEmptyResponse
	}
	return env.Text, nil
}

// Image is generated inline image data.
type Image struct {
	MediaType string
	Data      []byte
}

// FirstImage scans the content parts in order and returns the first
// one carrying inline binary data. It never aggregates multiple
// images.
func FirstImage(env *llm.Envelope) (*Image, error) {
	if env == nil {
		return nil, ErrNoImageData
	}
	for _, p := range env.Parts {
		if p.Inline == nil || len(p.Inline.Data) == 0 {
			continue
		}
		mediaType := p.Inline.MIMEType
		if mediaType == "" {
			mediaType = defaultImageMediaType
		}
		return &Image{MediaType: mediaType, Data: p.Inline.Data}, nil
	}
	return nil, ErrNoImageData
}

// Source is one deduplicated web citation. Identity is the URI string,
// compared exactly.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Sources extracts the citation list: chunks without a usable link are
// dropped, a missing title defaults to a placeholder, and duplicates
// are collapsed by URI. A source keeps the position of its first
// occurrence, but when the same URI appears again the later title wins
// at that position.
func Sources(env *llm.Envelope) []Source {
	if env == nil {
		return nil
	}
	var out []Source
	seen := map[string]int{}
	for _, ch := range env.Grounding {
		if ch.URI == "" {
			continue
		}
		title := ch.Title
		if title == "" {
			title = defaultSourceTitle
		}
		if i, ok := seen[ch.URI]; ok {
			out[i].Title = title
			continue
		}
		seen[ch.URI] = len(out)
		out = append(out, Source{URI: ch.URI, Title: title})
	}
	return out
}
