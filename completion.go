package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aktagon/llmkit/anthropic"
	"github.com/aktagon/llmkit/anthropic/types"
	"github.com/sashabaranov/go-openai"
)

// Completer issues a single synchronous text completion: one call, one
// response, no retry, no streaming.
type Completer interface {
	Complete(model, prompt string) (string, error)
}

// NewCompleter selects a completion provider based on configuration. The API
// key comes from the provider's environment variable.
func NewCompleter(settings *Settings) (Completer, error) {
	switch settings.Provider {
	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required for the anthropic provider")
		}
		return &AnthropicCompleter{
			apiKey:      apiKey,
			maxTokens:   settings.MaxTokens,
			temperature: settings.Temperature,
		}, nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for the openai provider")
		}
		return &OpenAICompleter{
			client:      openai.NewClient(apiKey),
			maxTokens:   settings.MaxTokens,
			temperature: settings.Temperature,
		}, nil
	default:
		return nil, fmt.Errorf("unknown provider: %q (expected anthropic or openai)", settings.Provider)
	}
}

// AnthropicCompleter calls the Anthropic API through llmkit.
type AnthropicCompleter struct {
	apiKey      string
	maxTokens   int
	temperature float64
}

func (c *AnthropicCompleter) Complete(model, prompt string) (string, error) {
	settings := types.RequestSettings{
		Model:       model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	response, err := anthropic.PromptWithSettings("", prompt, "", c.apiKey, settings)
	if err != nil {
		return "", fmt.Errorf("anthropic completion: %w", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("no content in completion response")
	}

	return response.Content[0].Text, nil
}

// chatCompletionClient is the slice of the OpenAI client we use, kept as an
// interface so tests can substitute a fake.
type chatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAICompleter calls an OpenAI-compatible chat completion API.
type OpenAICompleter struct {
	client      chatCompletionClient
	maxTokens   int
	temperature float64
}

func (c *OpenAICompleter) Complete(model, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: float32(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}

	return resp.Choices[0].Message.Content, nil
}
