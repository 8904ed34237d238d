package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teachmate/internal/llm"
)

func TestText(t *testing.T) {
	text, err := Text(&llm.Envelope{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	for _, env := range []*llm.Envelope{nil, {}, {Text: "   "}} {
		_, err := Text(env)
		assert.ErrorIs(t, err, ErrEmptyResponse)
	}
}

func TestFirstImage_ReturnsFirstInlinePart(t *testing.T) {
	env := &llm.Envelope{
		Parts: []llm.ResponsePart{
			{Text: "here is your image"},
			{Inline: &llm.Blob{MIMEType: "image/png", Data: []byte("png1")}},
			{Inline: &llm.Blob{MIMEType: "image/jpeg", Data: []byte("jpg2")}},
		},
	}
	img, err := FirstImage(env)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MediaType)
	assert.Equal(t, []byte("png1"), img.Data)
}

func TestFirstImage_NoInlineData(t *testing.T) {
	env := &llm.Envelope{
		Text:  "no image here",
		Parts: []llm.ResponsePart{{Text: "no image here"}},
	}
	_, err := FirstImage(env)
	require.True(t, errors.Is(err, ErrNoImageData), "got %v", err)

	_, err = FirstImage(nil)
	assert.ErrorIs(t, err, ErrNoImageData)
}

func TestFirstImage_DefaultsMediaType(t *testing.T) {
	env := &llm.Envelope{Parts: []llm.ResponsePart{{Inline: &llm.Blob{Data: []byte("raw")}}}}
	img, err := FirstImage(env)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MediaType)
}

func TestSources_FirstPositionLastValueDedup(t *testing.T) {
	env := &llm.Envelope{Grounding: []llm.GroundingChunk{
		{URI: "a", Title: "X"},
		{URI: "b", Title: "Y"},
		{URI: "a", Title: "Z"},
	}}
	got := Sources(env)
	require.Equal(t, []Source{{URI: "a", Title: "Z"}, {URI: "b", Title: "Y"}}, got)
}

func TestSources_DropsChunksWithoutLink(t *testing.T) {
	env := &llm.Envelope{Grounding: []llm.GroundingChunk{
		{Title: "no link"},
		{URI: "https://example.com", Title: "Example"},
	}}
	got := Sources(env)
	require.Equal(t, []Source{{URI: "https://example.com", Title: "Example"}}, got)
}

func TestSources_DefaultsMissingTitle(t *testing.T) {
	env := &llm.Envelope{Grounding: []llm.GroundingChunk{{URI: "https://example.com"}}}
	got := Sources(env)
	require.Len(t, got, 1)
	assert.Equal(t, "Web Source", got[0].Title)
}

func TestSources_CaseSensitiveIdentity(t *testing.T) {
	env := &llm.Envelope{Grounding: []llm.GroundingChunk{
		{URI: "https://example.com/A", Title: "one"},
		{URI: "https://example.com/a", Title: "two"},
	}}
	// Differently cased URIs are distinct sources; no normalization.
	require.Len(t, Sources(env), 2)
}
