package llm

import (
	"errors"
	"testing"

	genai "google.golang.org/genai"

	"teachmate/internal/schema"
)

func TestBuildContents_PartOrderAndTypes(t *testing.T) {
	req := &Request{
		Parts: []Part{
			InlineAttachmentPart{MediaType: "application/pdf", Data: []byte("key"), Role: RoleReference},
			InlineAttachmentPart{MediaType: "image/jpeg", Data: []byte("scan"), Role: RoleSubmission},
			TextPart{Text: "grade this"},
		},
	}
	contents := buildContents(req)
	if len(contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(contents))
	}
	parts := contents[0].Parts
	if len(parts) != 3 {
		t.Fatalf("got %d parts, want 3", len(parts))
	}
	if parts[0].InlineData == nil || parts[0].InlineData.MIMEType != "application/pdf" {
		t.Fatalf("part 0 = %#v, want pdf inline data", parts[0])
	}
	if parts[1].InlineData == nil || parts[1].InlineData.MIMEType != "image/jpeg" {
		t.Fatalf("part 1 = %#v, want jpeg inline data", parts[1])
	}
	if parts[2].Text != "grade this" {
		t.Fatalf("part 2 text = %q", parts[2].Text)
	}
}

func TestBuildContents_PlainPrompt(t *testing.T) {
	contents := buildContents(&Request{Prompt: "hello"})
	if len(contents) != 1 || len(contents[0].Parts) != 1 || contents[0].Parts[0].Text != "hello" {
		t.Fatalf("unexpected contents: %#v", contents)
	}
}

func TestBuildConfig_StructuredOutput(t *testing.T) {
	contract := schema.Object(
		schema.Field("title", schema.String("")),
		schema.OptionalField("notes", schema.String("")),
	)
	cfg := buildConfig(&Request{ResponseContract: contract})
	if cfg.ResponseMIMEType != "application/json" {
		t.Fatalf("mime type = %q", cfg.ResponseMIMEType)
	}
	if cfg.ResponseSchema == nil || cfg.ResponseSchema.Type != genai.TypeObject {
		t.Fatalf("schema = %#v", cfg.ResponseSchema)
	}
	if len(cfg.ResponseSchema.Required) != 1 || cfg.ResponseSchema.Required[0] != "title" {
		t.Fatalf("required = %v, want [title]", cfg.ResponseSchema.Required)
	}
}

func TestBuildConfig_WebSearchTool(t *testing.T) {
	cfg := buildConfig(&Request{Tools: Tools{WebSearch: true}})
	if len(cfg.Tools) != 1 || cfg.Tools[0].GoogleSearch == nil {
		t.Fatalf("tools = %#v, want google search", cfg.Tools)
	}
	if cfg.ResponseMIMEType != "" || cfg.ResponseSchema != nil {
		t.Fatal("grounded request must not be schema-constrained")
	}
}

func TestGenaiSchema_NestedContract(t *testing.T) {
	contract := schema.Object(
		schema.Field("questions", schema.Array(schema.Object(
			schema.Field("question", schema.String("")),
			schema.Field("options", schema.Array(schema.String(""))),
		))),
	)
	out := genaiSchema(contract)
	questions := out.Properties["questions"]
	if questions == nil || questions.Type != genai.TypeArray {
		t.Fatalf("questions = %#v", questions)
	}
	item := questions.Items
	if item == nil || item.Type != genai.TypeObject || len(item.Required) != 2 {
		t.Fatalf("items = %#v", item)
	}
	if item.Properties["options"].Items.Type != genai.TypeString {
		t.Fatalf("options items = %#v", item.Properties["options"].Items)
	}
}

func TestClassify_Quota(t *testing.T) {
	err := classify(genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "slow down"})
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("got %v, want ErrQuotaExceeded", err)
	}
}

func TestClassify_Unavailable(t *testing.T) {
	err := classify(genai.APIError{Code: 503, Status: "UNAVAILABLE"})
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("got %v, want ErrNetwork", err)
	}
}

func TestClassify_UnknownPropagatesUnchanged(t *testing.T) {
	sentinel := errors.New("weird failure")
	if got := classify(sentinel); got != sentinel {
		t.Fatalf("got %v, want the original error", got)
	}
	apiErr := genai.APIError{Code: 400, Status: "INVALID_ARGUMENT"}
	var out genai.APIError
	if got := classify(apiErr); !errors.As(got, &out) || out.Code != 400 {
		t.Fatalf("got %v, want the API error unchanged", got)
	}
}
