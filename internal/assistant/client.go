// Package assistant provides the client for the external generative
// language service used for legal Q&A and receipt photo analysis.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured is returned when no API address or key was supplied.
// The rest of the service keeps working without the assistant.
var ErrNotConfigured = errors.New("assistant client not configured")

// ErrEmptyResponse is returned when the model answered with no candidates
// or no text parts.
var ErrEmptyResponse = errors.New("empty model response")

// Client encapsulates HTTP interaction with the generative language API.
// Every call is a single bounded request; failures are reported to the
// caller, never retried silently.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a client for the given API address, key and model.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generatePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate sends the given parts to the model and returns the text of
// the first candidate.
func (c *Client) generate(ctx context.Context, parts []generatePart) (string, error) {
	if c == nil || c.baseURL == "" || c.apiKey == "" {
		return "", ErrNotConfigured
	}

	base := c.baseURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", base, c.model, c.apiKey)

	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: parts}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// Chat answers a free-text question about PWD/senior discounts, grounded
// by the system prompt.
func (c *Client) Chat(ctx context.Context, question string) (string, error) {
	return c.generate(ctx, []generatePart{
		{Text: systemPrompt + "\n\nUser Question: " + question},
	})
}

// AnalyzeReceipt sends a base64-encoded receipt photo for extraction and
// returns the raw model text. The caller is responsible for parsing and
// sanitizing the structured data out of it.
func (c *Client) AnalyzeReceipt(ctx context.Context, imageBase64, mimeType string) (string, error) {
	return c.generate(ctx, []generatePart{
		{Text: receiptPrompt},
		{InlineData: &inlineData{MimeType: mimeType, Data: imageBase64}},
	})
}
