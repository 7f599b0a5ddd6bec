// Package ai is the boundary to the external analysis backend. It
// dispatches the five analysis request kinds, validates every
// response against an embedded schema before decoding, and never lets
// a malformed response escape as anything but a typed error.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the generation model used unless configured
// otherwise.
const DefaultModel = "gemini-2.5-flash"

// Part is one piece of a prompt: either text or inline binary data.
type Part struct {
	Text     string
	Data     []byte
	MIMEType string
}

// TextPart wraps a string as a prompt part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// BlobPart wraps binary file content as an inline prompt part.
func BlobPart(mimeType string, data []byte) Part {
	return Part{Data: data, MIMEType: mimeType}
}

// Client is an abstraction over the generation backend.
type Client interface {
	// GenerateJSON sends the parts and returns the raw JSON response
	// text, stripped of any markdown wrapper.
	GenerateJSON(ctx context.Context, parts []Part) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed client. An empty model
// selects DefaultModel.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// GenerateJSON sends the prompt parts in JSON response mode.
func (c *GeminiClient) GenerateJSON(ctx context.Context, parts []Part) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	genaiParts := make([]genai.Part, 0, len(parts))
	for _, part := range parts {
		if part.MIMEType != "" {
			genaiParts = append(genaiParts, genai.Blob{MIMEType: part.MIMEType, Data: part.Data})
		} else {
			genaiParts = append(genaiParts, genai.Text(part.Text))
		}
	}

	resp, err := model.GenerateContent(ctx, genaiParts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}
	return cleanJSONBlock(text), nil
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from the API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
