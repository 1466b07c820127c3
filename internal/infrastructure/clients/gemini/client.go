package gemini

import (
	"context"
	"errors"
	"net/http"
	"time"

	gogenai "google.golang.org/genai"

	"github.com/zatekoja/medfinder/backend/internal/domain/providers"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/genai"
	"github.com/zatekoja/medfinder/backend/pkg/config"
)

const providerName = "gemini"

// Client implements providers.GenerativeProvider on the Gemini API with a
// JSON response schema.
type Client struct {
	api     *gogenai.Client
	model   string
	limiter *genai.TokenBucket
}

var _ providers.GenerativeProvider = (*Client)(nil)

// Option customises a Client
type Option func(*gogenai.ClientConfig)

// WithBaseURL points the client at another endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *gogenai.ClientConfig) { c.HTTPOptions.BaseURL = baseURL }
}

// NewClient creates a new Gemini client.
func NewClient(ctx context.Context, cfg *config.AIConfig, opts ...Option) (*Client, error) {
	if cfg == nil || cfg.GeminiAPIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	model := cfg.GeminiModel
	if model == "" {
		model = "gemini-2.5-pro"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}

	clientCfg := &gogenai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    gogenai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(clientCfg)
	}

	api, err := gogenai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		api:     api,
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

// GenerateJSON sends the prompts and returns the response text
func (c *Client) GenerateJSON(ctx context.Context, req providers.GenerationRequest) (string, error) {
	waitStart := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		return "", &providers.GenerationError{Provider: providerName, Kind: providers.FailurePermanent, Reason: "rate limiter", Err: err}
	}
	genai.RecordRateLimitWait(ctx, providerName, c.model, time.Since(waitStart))

	genCfg := &gogenai.GenerateContentConfig{
		SystemInstruction: gogenai.NewContentFromText(req.System, gogenai.RoleUser),
		ResponseMIMEType:  "application/json",
		Temperature:       gogenai.Ptr[float32](0.2),
	}
	if req.Schema != nil {
		genCfg.ResponseJsonSchema = req.Schema
	}

	start := time.Now()
	resp, err := c.api.Models.GenerateContent(ctx, c.model, gogenai.Text(req.User), genCfg)
	if err != nil {
		genErr := classify(err)
		genai.RecordRequest(ctx, providerName, c.model, req.Operation, genErr.StatusCode, time.Since(start), err)
		return "", genErr
	}

	text := genai.StripCodeFence(resp.Text())
	if text == "" {
		err := &providers.GenerationError{Provider: providerName, Kind: providers.FailurePermanent, StatusCode: http.StatusOK, Reason: "empty response"}
		genai.RecordRequest(ctx, providerName, c.model, req.Operation, http.StatusOK, time.Since(start), err)
		return "", err
	}

	genai.RecordRequest(ctx, providerName, c.model, req.Operation, http.StatusOK, time.Since(start), nil)
	return text, nil
}

func classify(err error) *providers.GenerationError {
	genErr := &providers.GenerationError{Provider: providerName, Err: err}

	var apiErr gogenai.APIError
	if !errors.As(err, &apiErr) {
		genErr.Kind = genai.ClassifyTransport(err)
		return genErr
	}

	genErr.StatusCode = apiErr.Code
	genErr.Kind = genai.ClassifyStatus(apiErr.Code)
	if apiErr.Status != "" {
		genErr.Reason = apiErr.Status + ": " + apiErr.Message
		if genai.ClassifyProviderStatus(apiErr.Status) == providers.FailureTransient {
			genErr.Kind = providers.FailureTransient
		}
	}
	return genErr
}
