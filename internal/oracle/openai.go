package oracle

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dgallion1/pdfoutline/internal/outline"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is the detection model used when none is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIClient detects headings via the OpenAI chat completions API in
// JSON mode.
type OpenAIClient struct {
	client *openai.Client
	model  string

	// Stats tracks recent call latencies.
	Stats *Stats
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
		Stats:  NewStats(time.Hour),
	}
}

func (c *OpenAIClient) Model() string { return c.model }

func (c *OpenAIClient) DetectHeadings(ctx context.Context, doc outline.BoundedDocument, maxDepth int) ([]outline.Heading, error) {
	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(doc, maxDepth)},
		},
	})
	c.Stats.Record(time.Since(start).Milliseconds())
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			if apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500 {
				return nil, &RetryableError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
			}
		}
		return nil, &TransportError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &SchemaError{Reason: "no choices in response"}
	}
	return parseOutline(resp.Choices[0].Message.Content)
}
