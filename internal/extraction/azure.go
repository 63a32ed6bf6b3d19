package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const apiVersion = "2024-08-01-preview"

// Client talks to an Azure OpenAI chat-completions deployment and turns call
// transcripts into Analysis values. It is stateless per call and safe for
// concurrent use once constructed.
type Client struct {
	endpoint   string
	apiKey     string
	deployment string
	validate   bool
	httpClient *http.Client
}

// Config holds configuration for the extraction client. Endpoint, APIKey and
// Deployment all have to be set before Analyze will attempt a network call.
type Config struct {
	Endpoint   string // Base URL, e.g. https://myresource.openai.azure.com
	APIKey     string
	Deployment string

	// ValidateResponses re-checks decoded model output against the analysis
	// schema locally instead of trusting the provider's strict enforcement
	// alone.
	ValidateResponses bool

	// HTTPClient is used for outbound calls. Defaults to http.DefaultClient
	// semantics when nil.
	HTTPClient *http.Client
}

// NewClient creates a new extraction client. Construction never fails; a
// client built from incomplete configuration reports ErrNotConfigured on the
// first Analyze call instead.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		deployment: cfg.Deployment,
		validate:   cfg.ValidateResponses,
		httpClient: httpClient,
	}
}

// Ready reports whether all three configuration values are present.
func (c *Client) Ready() bool {
	return c.endpoint != "" && c.apiKey != "" && c.deployment != ""
}

// Deployment returns the configured deployment identifier.
func (c *Client) Deployment() string { return c.deployment }

// paramProfile is one set of generation-control arguments. Older model
// generations take temperature and max_tokens; newer ones reject both and
// want max_completion_tokens instead.
type paramProfile struct {
	temperature         *float64
	maxTokens           int
	maxCompletionTokens int
}

// legacyProfile biases toward deterministic extraction with a tight cap.
func legacyProfile() paramProfile {
	temp := 0.1
	return paramProfile{temperature: &temp, maxTokens: 1000}
}

// alternateProfile omits temperature and uses the newer token-limit name.
func alternateProfile() paramProfile {
	return paramProfile{maxCompletionTokens: 2000}
}

// completionRequest represents an Azure OpenAI chat completion request.
type completionRequest struct {
	Messages            []chatMessage  `json:"messages"`
	Temperature         *float64       `json:"temperature,omitempty"`
	MaxTokens           int            `json:"max_tokens,omitempty"`
	MaxCompletionTokens int            `json:"max_completion_tokens,omitempty"`
	ResponseFormat      map[string]any `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// completionResponse represents an Azure OpenAI chat completion response.
type completionResponse struct {
	Choices []struct {
		FinishReason string `json:"finish_reason"`
		Message      struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze extracts structured business data from a call transcript. The
// transcript goes to the model verbatim together with a strict response
// format; the result is the decoded Analysis or a classified failure from
// the taxonomy in errors.go.
func (c *Client) Analyze(ctx context.Context, transcript string) (*Analysis, error) {
	if !c.Ready() {
		return nil, fmt.Errorf("%w: endpoint, API key and deployment must all be set", ErrNotConfigured)
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, errors.New("transcript is empty")
	}

	messages := []chatMessage{
		{Role: "system", Content: SystemPrompt},
		{Role: "user", Content: AnalysisPrompt(transcript)},
	}

	completion, err := c.complete(ctx, messages, legacyProfile())
	if err != nil {
		if !isParameterMismatch(err) {
			return nil, c.classify(err)
		}
		// The first call doubles as a probe: a 400 naming the sampling or
		// token-limit parameter means the deployment runs a newer model
		// generation. Retry once with the alternate parameter shape. This is
		// the only automatic retry.
		completion, err = c.complete(ctx, messages, alternateProfile())
		if err != nil {
			return nil, c.classify(err)
		}
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices returned", ErrMalformedResponse)
	}
	choice := completion.Choices[0]
	if choice.FinishReason == "length" {
		return nil, fmt.Errorf("%w: finish_reason=length", ErrTruncated)
	}
	content := choice.Message.Content
	if content == "" {
		return nil, fmt.Errorf("%w: empty message content", ErrMalformedResponse)
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v (content: %s)", ErrInvalidJSON, err, content)
	}

	if c.validate {
		if err := ValidateAnalysisJSON([]byte(content)); err != nil {
			return nil, err
		}
	}

	return &analysis, nil
}

// complete issues one chat completion call with the given parameter profile.
// Non-2xx replies come back as *APIError with status and body preserved.
func (c *Client) complete(ctx context.Context, messages []chatMessage, profile paramProfile) (*completionResponse, error) {
	req := completionRequest{
		Messages:            messages,
		Temperature:         profile.temperature,
		MaxTokens:           profile.maxTokens,
		MaxCompletionTokens: profile.maxCompletionTokens,
		ResponseFormat:      responseFormat(),
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s", c.endpoint, c.deployment, apiVersion)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(respBody)}
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &completion, nil
}

// classify maps upstream HTTP failures onto the error taxonomy. Anything
// without a dedicated kind passes through with status and body intact.
func (c *Client) classify(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: deployment %q does not exist on %s", ErrDeploymentNotFound, c.deployment, c.endpoint)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: check the API key", ErrAuthenticationFailed)
	}
	return err
}

// isParameterMismatch reports whether err is the 400-class reply a newer
// model generation sends when it rejects the legacy parameter shape. The
// provider only signals this through the error text, so the substring match
// is kept in this one place.
func isParameterMismatch(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode < 400 || apiErr.StatusCode >= 500 {
		return false
	}
	msg := strings.ToLower(apiErr.Body)
	if !strings.Contains(msg, "max_tokens") && !strings.Contains(msg, "temperature") {
		return false
	}
	return strings.Contains(msg, "unsupported") || strings.Contains(msg, "not supported")
}
