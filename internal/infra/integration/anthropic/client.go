package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
)

const (
	DefaultModel     = "claude-sonnet-4-20250514"
	DefaultMaxTokens = 1024
)

var ErrEmptyCompletion = errors.New("anthropic returned an empty completion")

// Client turns a prompt into one completion. No streaming, no retries.
type Client struct {
	llm       llms.Model
	maxTokens int
}

func NewClient(apiKey, model string, maxTokens int) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic api key is not configured")
	}
	if model == "" {
		model = DefaultModel
	}

	llm, err := anthropic.New(
		anthropic.WithToken(apiKey),
		anthropic.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create anthropic client: %w", err)
	}

	return NewClientWithModel(llm, maxTokens), nil
}

// NewClientWithModel wraps any langchaingo model.
func NewClientWithModel(llm llms.Model, maxTokens int) *Client {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Client{llm: llm, maxTokens: maxTokens}
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, llms.WithMaxTokens(c.maxTokens))
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
