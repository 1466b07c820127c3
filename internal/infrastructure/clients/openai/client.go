package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/zatekoja/medfinder/backend/internal/domain/providers"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/genai"
	"github.com/zatekoja/medfinder/backend/pkg/config"
)

const providerName = "openai"

// Client implements providers.GenerativeProvider on the Chat Completions API
// with strict JSON schema output.
type Client struct {
	api     *goopenai.Client
	model   string
	limiter *genai.TokenBucket
}

var _ providers.GenerativeProvider = (*Client)(nil)

// Option customises a Client
type Option func(*goopenai.ClientConfig)

// WithBaseURL points the client at a compatible endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *goopenai.ClientConfig) { c.BaseURL = baseURL }
}

// NewClient creates a new OpenAI client.
func NewClient(cfg *config.AIConfig, opts ...Option) (*Client, error) {
	if cfg == nil || cfg.OpenAIAPIKey == "" {
		return nil, errors.New("openai api key is required")
	}

	model := cfg.OpenAIModel
	if model == "" {
		model = "gpt-4o-mini"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}

	clientCfg := goopenai.DefaultConfig(cfg.OpenAIAPIKey)
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}
	for _, opt := range opts {
		opt(&clientCfg)
	}

	return &Client{
		api:     goopenai.NewClientWithConfig(clientCfg),
		model:   model,
		limiter: genai.NewTokenBucket(60, 5),
	}, nil
}

// Name returns the provider name
func (c *Client) Name() string { return providerName }

// Close releases the rate limiter
func (c *Client) Close() error {
	c.limiter.Close()
	return nil
}

// GenerateJSON sends the system and user prompts and returns the JSON text
func (c *Client) GenerateJSON(ctx context.Context, req providers.GenerationRequest) (string, error) {
	waitStart := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		return "", &providers.GenerationError{Provider: providerName, Kind: providers.FailurePermanent, Reason: "rate limiter", Err: err}
	}
	genai.RecordRateLimitWait(ctx, providerName, c.model, time.Since(waitStart))

	schema, err := json.Marshal(req.Schema)
	if err != nil {
		return "", &providers.GenerationError{Provider: providerName, Kind: providers.FailurePermanent, Reason: "invalid schema", Err: err}
	}

	chatReq := goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: req.System},
			{Role: goopenai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: 0.2,
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &goopenai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.SchemaName,
				Schema: json.RawMessage(schema),
				Strict: true,
			},
		},
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		genErr := classify(err)
		genai.RecordRequest(ctx, providerName, c.model, req.Operation, genErr.StatusCode, time.Since(start), err)
		return "", genErr
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		err := &providers.GenerationError{Provider: providerName, Kind: providers.FailurePermanent, Reason: "empty response"}
		genai.RecordRequest(ctx, providerName, c.model, req.Operation, http.StatusOK, time.Since(start), err)
		return "", err
	}

	genai.RecordRequest(ctx, providerName, c.model, req.Operation, http.StatusOK, time.Since(start), nil)
	return genai.StripCodeFence(resp.Choices[0].Message.Content), nil
}

func classify(err error) *providers.GenerationError {
	genErr := &providers.GenerationError{Provider: providerName, Err: err}

	var apiErr *goopenai.APIError
	var reqErr *goopenai.RequestError
	switch {
	case errors.As(err, &apiErr):
		genErr.StatusCode = apiErr.HTTPStatusCode
		genErr.Reason = apiErr.Message
		genErr.Kind = genai.ClassifyStatus(apiErr.HTTPStatusCode)
	case errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0:
		genErr.StatusCode = reqErr.HTTPStatusCode
		genErr.Kind = genai.ClassifyStatus(reqErr.HTTPStatusCode)
	default:
		genErr.Kind = genai.ClassifyTransport(err)
	}
	return genErr
}
