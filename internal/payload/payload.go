// Package payload turns raw binary attachments into transportable
// inline parts and assembles multimodal part sequences in the order
// the backend expects.
package payload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"teachmate/internal/llm"
)

// MaxAttachmentSize bounds a single inline attachment. It matches the
// upload validation the UI applies before calling in.
const MaxAttachmentSize = 5 << 20 // 5 MiB

const fallbackMediaType = "application/octet-stream"

// Attachment is a raw binary file tagged with its media type and part
// role.
type Attachment struct {
	MediaType string
	Data      []byte
	Role      llm.AttachmentRole
}

// TooLargeError reports an attachment rejected before encoding. No
// network call is attempted for the request that carried it.
type TooLargeError struct {
	Size  int
	Limit int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("payload: attachment of %d bytes exceeds the %d byte limit", e.Size, e.Limit)
}

// Encode validates the attachment and produces its inline part
// representation. Encoding is lossless: the part carries the original
// bytes unchanged.
func Encode(a Attachment) (llm.InlineAttachmentPart, error) {
	if len(a.Data) > MaxAttachmentSize {
		return llm.InlineAttachmentPart{}, &TooLargeError{Size: len(a.Data), Limit: MaxAttachmentSize}
	}
	mediaType := a.MediaType
	if mediaType == "" {
		mediaType = fallbackMediaType
	}
	return llm.InlineAttachmentPart{MediaType: mediaType, Data: a.Data, Role: a.Role}, nil
}

// Build assembles the ordered part sequence for a multimodal request:
// all reference attachments first (in the order supplied), then all
// submission attachments (in the order supplied), then the
// instruction text as the final part. The backend reads parts in
// sequence and earlier parts establish context for later ones, so
// this ordering changes semantics, not just formatting. Attachments
// without a role are ordered with the submissions.
func Build(attachments []Attachment, instruction string) ([]llm.Part, error) {
	parts := make([]llm.Part, 0, len(attachments)+1)
	for _, a := range attachments {
		if a.Role != llm.RoleReference {
			continue
		}
		p, err := Encode(a)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	for _, a := range attachments {
		if a.Role == llm.RoleReference {
			continue
		}
		p, err := Encode(a)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	parts = append(parts, llm.TextPart{Text: instruction})
	return parts, nil
}

// DecodeDataURI splits a base64 data URI, as produced by the UI's
// file readers, into its media type and raw bytes.
func DecodeDataURI(uri string) (mediaType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, errors.New("payload: not a data URI")
	}
	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New("payload: malformed data URI")
	}
	mediaType, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, errors.New("payload: only base64 data URIs are supported")
	}
	data, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("payload: decode data URI: %w", err)
	}
	if mediaType == "" {
		mediaType = fallbackMediaType
	}
	return mediaType, data, nil
}

// EncodeDataURI is the inverse of DecodeDataURI.
func EncodeDataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
