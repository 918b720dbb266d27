package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/schema"

	gissyerrors "gissy.dev/gissy/internal/errors"
)

const (
	// DefaultModel is the chat model used when none is configured
	DefaultModel = "gpt-3.5-turbo"
	// DefaultTimeout bounds a single request
	DefaultTimeout = 20 * time.Second

	maxTokens   = 100
	temperature = float32(0.3)
)

// OpenAIConfig configures the chat-completion endpoint.
type OpenAIConfig struct {
	Model   string
	BaseURL string
	Timeout time.Duration
}

func (c OpenAIConfig) withDefaults() OpenAIConfig {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// OpenAIClient implements Client with an OpenAI-compatible chat model.
type OpenAIClient struct {
	model   *openai.ChatModel
	timeout time.Duration
}

var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient creates a client authenticated with apiKey.
func NewOpenAIClient(ctx context.Context, apiKey string, cfg OpenAIConfig) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, gissyerrors.ErrMissingCredential
	}
	cfg = cfg.withDefaults()

	tokens := maxTokens
	temp := temperature
	model, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      apiKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Timeout:     cfg.Timeout,
		MaxTokens:   &tokens,
		Temperature: &temp,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	return &OpenAIClient{model: model, timeout: cfg.Timeout}, nil
}

// NewOpenAIFactory returns a Factory building OpenAI clients from cfg.
func NewOpenAIFactory(cfg OpenAIConfig) Factory {
	return func(ctx context.Context, apiKey string) (Client, error) {
		return NewOpenAIClient(ctx, apiKey, cfg)
	}
}

// GenerateCommitMessage implements Client.
func (c *OpenAIClient) GenerateCommitMessage(ctx context.Context, diff string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.model.Generate(ctx, []*schema.Message{
		schema.SystemMessage(SystemPrompt),
		schema.UserMessage(BuildCommitMessagePrompt(diff)),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if resp == nil {
		return "", gissyerrors.ErrEmptyAIResponse
	}

	message := CleanResponse(resp.Content)
	if message == "" {
		return "", gissyerrors.ErrEmptyAIResponse
	}
	return message, nil
}
