package assist

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/jobsift/jobsift/internal/extract"
	"github.com/jobsift/jobsift/internal/record"
)

// ChatClient mirrors the subset we need from the OpenAI client for
// testability.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Completer asks an OpenAI-compatible model to fill the company/location
// fields the heuristics left unresolved, given the fragment's plain text.
// Heuristic values are never overwritten, and any failure (transport, parse,
// refusal) leaves the record exactly as it was: the model is an optional
// assistant, not a dependency.
type Completer struct {
	Client ChatClient
	Model  string
}

type completion struct {
	Company  string `json:"company"`
	Location string `json:"location"`
}

// Complete implements scrape.FieldCompleter.
func (c *Completer) Complete(ctx context.Context, rec record.Record, fragment string) record.Record {
	if c == nil || c.Client == nil || strings.TrimSpace(c.Model) == "" {
		return rec
	}
	if !record.Unresolved(rec.Company) && !record.Unresolved(rec.Location) {
		return rec
	}
	if strings.TrimSpace(fragment) == "" {
		return rec
	}

	req := openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage()},
			{Role: openai.ChatMessageRoleUser, Content: userMessage(rec, fragment)},
		},
		Temperature: 0.0,
		N:           1,
	}
	resp, err := c.Client.CreateChatCompletion(ctx, req)
	if err != nil || len(resp.Choices) == 0 {
		log.Debug().Err(err).Msg("field completion skipped")
		return rec
	}

	var got completion
	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		log.Debug().Err(err).Msg("field completion returned non-JSON; ignoring")
		return rec
	}
	if record.Unresolved(rec.Company) {
		if v := extract.Clean(got.Company); v != "" {
			rec.Company = v
		}
	}
	if record.Unresolved(rec.Location) {
		if v := extract.Clean(got.Location); v != "" {
			rec.Location = v
		}
	}
	return rec
}

func systemMessage() string {
	return "You extract fields from job-listing text. Respond with strict JSON only: " +
		`{"company":string,"location":string}. ` +
		"Use the empty string for anything the text does not state. Never invent values."
}

func userMessage(rec record.Record, fragment string) string {
	var sb strings.Builder
	sb.WriteString("Listing title: ")
	sb.WriteString(rec.Role)
	sb.WriteString("\nListing text:\n")
	sb.WriteString(fragment)
	return sb.String()
}
