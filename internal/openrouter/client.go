package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Each failure kind is distinct so the caller can surface it without
// reinterpretation. None of them is retried automatically; the user
// re-triggers generation manually.
var (
	// ErrAuth covers a missing or rejected API credential.
	ErrAuth = errors.New("openrouter credential missing or rejected")
	// ErrUpstream covers a non-success HTTP status or an error object in the
	// response body.
	ErrUpstream = errors.New("openrouter request failed")
	// ErrMalformedResponse covers a success status with missing or empty
	// choices, or a choice with no message content.
	ErrMalformedResponse = errors.New("openrouter response missing content")
	// ErrNetwork covers transport-level failures: timeout, DNS, reset.
	ErrNetwork = errors.New("openrouter unreachable")
)

// Provider model strings understood by OpenRouter, keyed by the short model
// identifiers the client sends. Anything unknown falls back to the default.
const (
	modelDeepseek = "deepseek/deepseek-r1-distill-llama-70b:free"
	modelLlama    = "meta-llama/llama-3.2-90b-vision-instruct"
	modelDefault  = "google/gemini-2.0-pro-exp-02-05:free"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// ResolveModel maps a short model identifier to the provider model string.
// A value already containing a provider prefix (a "/") passes through
// unchanged; unknown short names fall back to the default model.
func ResolveModel(modelID string) string {
	if strings.Contains(modelID, "/") {
		return modelID
	}
	switch strings.ToLower(modelID) {
	case "deepseek":
		return modelDeepseek
	case "llama":
		return modelLlama
	default:
		return modelDefault
	}
}

// GenerateCode sends one multimodal completion request carrying the
// generation instructions plus the wireframe description as a text part and
// the image URL as an image part, and returns the first choice's message
// content. One blocking request per call; no retry, no streaming.
func (c *Client) GenerateCode(ctx context.Context, description, imgURL, modelID string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: no API key configured", ErrAuth)
	}

	reqBody := chatRequest{
		Model: ResolveModel(modelID),
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: BuildPrompt(description, imgURL)},
					{Type: "image_url", ImageURL: &imageURL{URL: imgURL}},
				},
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response body: %v", ErrNetwork, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w: status %d, body: %s", ErrAuth, resp.StatusCode, string(body))
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d, body: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v, body: %s", ErrMalformedResponse, err, string(body))
	}

	if result.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrUpstream, result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices array", ErrMalformedResponse)
	}

	code := result.Choices[0].Message.Content
	if code == "" {
		return "", fmt.Errorf("%w: empty message content", ErrMalformedResponse)
	}

	return code, nil
}
