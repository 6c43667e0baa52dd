package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/Shining04/Kcal.txt/internal/analyze"
)

// Client analyzes diary text with the Gemini API. The model is forced
// to answer in JSON via the response MIME type, matching the schema in
// the system instruction.
type Client struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}
	if strings.TrimSpace(model) == "" {
		model = analyze.DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

func (c *Client) Analyze(ctx context.Context, text string) (analyze.Analysis, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(analyze.SystemInstruction, genai.RoleUser),
	})
	if err != nil {
		return analyze.Analysis{}, fmt.Errorf("gemini request: %w", err)
	}

	body := result.Text()
	if strings.TrimSpace(body) == "" {
		return analyze.Analysis{}, analyze.ErrEmptyResponse
	}
	return analyze.Decode(body)
}
