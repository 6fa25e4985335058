// Package generation wraps the Groq chat-completions API. Groq speaks the
// OpenAI wire protocol, so the client is go-openai pointed at the Groq host.
package generation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"careercatalyst/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

var ErrEmptyCompletion = errors.New("generation service returned no content")

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(cfg config.GenerationConfig) *Client {
	c := openai.DefaultConfig(cfg.APIKey)
	c.BaseURL = groqBaseURL

	return &Client{
		client: openai.NewClientWithConfig(c),
		model:  cfg.Model,
	}
}

// Complete issues a single chat completion. No retries: one upstream
// failure is one user-visible failure.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.7,
		MaxTokens:   4096,
		TopP:        1,
	})
	if err != nil {
		slog.Error("generation call failed",
			"component", "generation",
			"model", c.model,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	slog.Info("generation call completed",
		"component", "generation",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	return resp.Choices[0].Message.Content, nil
}
