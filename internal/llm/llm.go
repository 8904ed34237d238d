// Package llm is the boundary to the generation backend. It defines
// the request/response envelope types the rest of the system speaks
// and a Client interface with one batch and one streaming operation.
package llm

import (
	"context"
	"iter"

	"teachmate/internal/schema"
)

// Client is the generation backend. Implementations perform a single
// network exchange per call; retries, caching and rate limiting are
// the caller's concern.
type Client interface {
	Name() string

	// Generate issues a batch request and returns the completed
	// response envelope.
	Generate(ctx context.Context, req *Request) (*Envelope, error)

	// GenerateStream issues a streaming request. The returned sequence
	// yields text deltas in arrival order; iteration ends at the
	// backend's end-of-stream signal or at the first error, which is
	// yielded as the terminal pair. Abandoning the iterator stops
	// delivery of further deltas.
	GenerateStream(ctx context.Context, req *Request) iter.Seq2[string, error]

	Close() error
}

// Tools enables optional backend capabilities on a request.
type Tools struct {
	// WebSearch turns on search grounding; the response envelope then
	// carries citation chunks.
	WebSearch bool
}

// Request describes one generation exchange. It is immutable once
// built and owned solely by the call that constructs it. Parts, when
// non-empty, takes precedence over Prompt.
type Request struct {
	Model             string
	Prompt            string
	Parts             []Part
	SystemInstruction string

	// ResponseContract forces structured JSON output conforming to the
	// contract. Batch mode only; streamed requests are never
	// schema-constrained.
	ResponseContract *schema.Contract

	Tools Tools
}

// AttachmentRole tags what an inline attachment is to the task.
type AttachmentRole string

const (
	// RoleReference marks context material such as an answer key.
	RoleReference AttachmentRole = "reference"
	// RoleSubmission marks the work being graded.
	RoleSubmission AttachmentRole = "submission"
)

// Part is one element of a multimodal request payload. Sequence order
// is semantically meaningful: earlier parts establish context for
// later ones. The variant is sealed so payloads can only be assembled
// from the typed constructors.
type Part interface {
	isPart()
}

// TextPart carries instruction text.
type TextPart struct {
	Text string
}

// InlineAttachmentPart carries a binary attachment embedded in the
// request together with its media type.
type InlineAttachmentPart struct {
	MediaType string
	Data      []byte
	Role      AttachmentRole
}

func (TextPart) isPart()             {}
func (InlineAttachmentPart) isPart() {}

// Envelope is a completed batch response.
type Envelope struct {
	// Text is the concatenation of the textual content parts, in
	// order. Empty when the response carries no text.
	Text string

	// Parts preserves the ordered content parts, including inline
	// binary data for image generation.
	Parts []ResponsePart

	// Grounding carries the citation chunks attached by the web-search
	// tool, in response order.
	Grounding []GroundingChunk
}

// ResponsePart is one content part of a response: text or inline
// binary data.
type ResponsePart struct {
	Text   string
	Inline *Blob
}

// Blob is inline binary data with its media type.
type Blob struct {
	MIMEType string
	Data     []byte
}

// GroundingChunk is one citation as delivered by the backend. URI may
// be empty when the chunk carries no usable link.
type GroundingChunk struct {
	URI   string
	Title string
}
