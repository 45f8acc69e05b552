package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
)

const (
	defaultBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel     = "gemini-2.0-flash"
	maxAttempts      = 3
	defaultBaseDelay = 800 * time.Millisecond
)

// KeyStore resolves the learner's API key at call time. An empty key means
// the setup flow has not run yet.
type KeyStore interface {
	APIKey(ctx context.Context) (string, error)
}

// Provider is the surface the feature services depend on.
type Provider interface {
	Call(ctx context.Context, prompt string) (string, error)
}

// Client talks to the generateContent endpoint. 503/504 responses and
// network-level failures are retried with linear backoff; everything else
// fails immediately.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	Model     string
	BaseDelay time.Duration
	Keys      KeyStore
}

func NewClient(keys KeyStore, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		// No client-side timeout: callers bound the request through ctx,
		// and a hung request is otherwise left to the transport.
		HTTP:      &http.Client{},
		BaseURL:   defaultBaseURL,
		Model:     model,
		BaseDelay: defaultBaseDelay,
		Keys:      keys,
	}
}

var _ Provider = (*Client)(nil)

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Call sends the prompt and returns the generated text.
func (c *Client) Call(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	key, err := c.Keys.APIKey(ctx)
	if err != nil {
		return "", &Error{Kind: KindUnknown, Message: "loading api key", Err: err}
	}
	if key == "" {
		return "", &Error{Kind: KindMissingAPIKey}
	}

	var last *Error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, gerr := c.attempt(ctx, key, prompt)
		if gerr == nil {
			return text, nil
		}
		if !gerr.retryable {
			return "", gerr
		}
		last = gerr
		if attempt == maxAttempts {
			break
		}

		// Linear backoff: 800ms before the second attempt, 1600ms before
		// the third.
		delay := c.BaseDelay * time.Duration(attempt)
		log.WithError(gerr).Warnf("Gemini call failed, retrying in %s (attempt %d/%d)", delay, attempt, maxAttempts)
		select {
		case <-ctx.Done():
			return "", &Error{Kind: KindUnknown, Message: "request canceled", Err: ctx.Err()}
		case <-time.After(delay):
		}
	}

	log.WithError(last).Error("Gemini call failed after all retries")
	return "", last
}

// ValidateKey probes the endpoint with a candidate key before the setup flow
// persists it. Single attempt, no retries.
func (c *Client) ValidateKey(ctx context.Context, key string) error {
	if _, gerr := c.attempt(ctx, key, "Test connection"); gerr != nil {
		return gerr
	}
	return nil
}

func (c *Client) attempt(ctx context.Context, key, prompt string) (string, *Error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", &Error{Kind: KindUnknown, Message: "encoding request", Err: err}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.BaseURL, c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", &Error{Kind: KindUnknown, Message: "building request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", key)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", &Error{Kind: KindUnknown, Message: "request canceled", Err: ctx.Err()}
		}
		return "", &Error{Kind: KindOffline, Message: "network unreachable", Err: err, retryable: true}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: KindOffline, Message: "reading response", Err: err, retryable: true}
	}

	switch {
	case resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusGatewayTimeout:
		return "", &Error{Kind: KindServiceUnavailable, Message: apiMessage(body), retryable: true}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &Error{Kind: KindAuth, Message: apiMessage(body)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		msg := apiMessage(body)
		if keyRelated(msg) {
			return "", &Error{Kind: KindAuth, Message: msg}
		}
		return "", &Error{Kind: KindUnknown, Message: msg}
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &Error{Kind: KindMalformedResponse, Message: "invalid response body", Err: err}
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 ||
		out.Candidates[0].Content.Parts[0].Text == "" {
		return "", &Error{Kind: KindMalformedResponse, Message: "response has no generated text"}
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func apiMessage(body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error.Message != "" {
		return er.Error.Message
	}
	return "API request failed"
}

func keyRelated(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "api key") || strings.Contains(m, "authentication")
}
