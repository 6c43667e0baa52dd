package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/Shining04/Kcal.txt/internal/analyze"
)

const defaultModel = "gpt-4o-mini"

// Client analyzes diary text through an OpenAI-compatible chat
// completion endpoint. BaseURL and HTTPClient are overridable for
// tests and self-hosted gateways.
type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) Analyze(ctx context.Context, text string) (analyze.Analysis, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return analyze.Analysis{}, fmt.Errorf("missing OpenAI API key")
	}
	model := strings.TrimSpace(c.Model)
	if model == "" {
		model = defaultModel
	}

	cfg := goopenai.DefaultConfig(c.APIKey)
	if baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if c.HTTPClient != nil {
		cfg.HTTPClient = c.HTTPClient
	}
	client := goopenai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: analyze.SystemInstruction},
			{Role: goopenai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return analyze.Analysis{}, fmt.Errorf("openai request: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return analyze.Analysis{}, analyze.ErrEmptyResponse
	}
	return analyze.Decode(resp.Choices[0].Message.Content)
}
