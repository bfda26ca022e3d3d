package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/sashabaranov/go-openai"
)

// Completer is the text-completion collaborator boundary. One prompt in,
// one text response out; any failure surfaces as a single error.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient implements Completer on the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a completion client for the given API key and model.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete issues a single chat completion request and returns the raw
// response text.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.3,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	content := resp.Choices[0].Message.Content
	log.Printf("[AI] Completion ok: model=%s, prompt=%d chars, response=%d chars, tokens=%d",
		c.model, len(prompt), len(content), resp.Usage.TotalTokens)

	return content, nil
}
