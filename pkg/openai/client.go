package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client implements IOpenAI against an OpenAI-compatible HTTP API.
type Client struct {
	apiKey      string
	endpoint    string
	apiVersion  string
	deployment  string
	maxTokens   int
	temperature float64
	limiter     *rate.Limiter
	httpClient  *http.Client
}

var _ IOpenAI = (*Client)(nil)

// NewClient creates a new chat-completions client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}

	return &Client{
		apiKey:      cfg.APIKey,
		endpoint:    strings.TrimRight(cfg.Endpoint, "/"),
		apiVersion:  cfg.APIVersion,
		deployment:  cfg.Deployment,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		limiter:     limiter,
		// No overall client timeout: streamed completions read the body for
		// as long as the generation runs. The caller's ctx bounds the
		// request; the transport only bounds the wait for response headers.
		httpClient: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: responseHeaderTimeout,
			},
		},
	}, nil
}

// Model returns the configured deployment/model name.
func (c *Client) Model() string {
	return c.deployment
}

// Complete sends a non-streaming completion request.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string, memoryContext []string) (string, error) {
	resp, err := c.do(ctx, chatRequest{
		Model:       c.modelField(),
		Messages:    buildMessages(systemPrompt, userMessage, memoryContext),
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return result.Choices[0].Message.Content, nil
}

// StreamChat sends a streaming completion request and returns the live
// fragment stream. Aborting ctx aborts the underlying request.
func (c *Client) StreamChat(ctx context.Context, systemPrompt, userMessage string, memoryContext []string) (Stream, error) {
	resp, err := c.do(ctx, chatRequest{
		Model:       c.modelField(),
		Messages:    buildMessages(systemPrompt, userMessage, memoryContext),
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Stream:      true,
	})
	if err != nil {
		return nil, err
	}
	return newChatStream(resp.Body), nil
}

// do marshals the request, applies the rate limiter, and returns the raw
// HTTP response with a verified 200 status.
func (c *Client) do(ctx context.Context, req chatRequest) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiVersion != "" {
		httpReq.Header.Set("api-key", c.apiKey)
	} else {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call completions API: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)

		var errResp errorResponse
		message := string(raw)
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && errResp.Error.Message != "" {
			message = errResp.Error.Message
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	return resp, nil
}

// requestURL builds the Azure deployment path when an API version is set,
// otherwise the plain OpenAI-compatible path.
func (c *Client) requestURL() string {
	if c.apiVersion != "" {
		return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
			c.endpoint, c.deployment, c.apiVersion)
	}
	return c.endpoint + "/chat/completions"
}

// modelField is only sent on the non-Azure path; Azure routes by deployment.
func (c *Client) modelField() string {
	if c.apiVersion != "" {
		return ""
	}
	return c.deployment
}

// buildMessages assembles the chat transcript: system prompt, optional memory
// context as a second system message, then the user message.
func buildMessages(systemPrompt, userMessage string, memoryContext []string) []chatMessage {
	messages := []chatMessage{{Role: RoleSystem, Content: systemPrompt}}
	if len(memoryContext) > 0 {
		messages = append(messages, chatMessage{
			Role:    RoleSystem,
			Content: MemoryContextPreamble + strings.Join(memoryContext, "\n"),
		})
	}
	return append(messages, chatMessage{Role: RoleUser, Content: userMessage})
}
