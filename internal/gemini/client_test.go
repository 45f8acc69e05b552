package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type staticKeys string

func (s staticKeys) APIKey(ctx context.Context) (string, error) {
	return string(s), nil
}

func successBody(text string) string {
	body := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				},
			},
		},
	}
	b, _ := json.Marshal(body)
	return string(b)
}

func newTestClient(url string) *Client {
	c := NewClient(staticKeys("test-key"), "")
	c.BaseURL = url
	c.BaseDelay = 5 * time.Millisecond
	return c
}

func TestCallRetriesOn503ThenSucceeds(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(successBody("generated text")))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	start := time.Now()
	text, err := c.Call(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if text != "generated text" {
		t.Errorf("got %q, want %q", text, "generated text")
	}
	if attempts != 3 {
		t.Errorf("got %d attempts, want 3", attempts)
	}
	// Linear backoff: baseDelay*1 + baseDelay*2 before the third attempt.
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("expected backoff of at least 15ms, got %s", elapsed)
	}
}

func TestCallExhausts503Retries(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Call(context.Background(), "prompt")

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Kind != KindServiceUnavailable {
		t.Errorf("got kind %q, want %q", gerr.Kind, KindServiceUnavailable)
	}
	if attempts != 3 {
		t.Errorf("got %d attempts, want 3", attempts)
	}
}

func TestCallDoesNotRetryAuthErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"invalid authentication credentials"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Call(context.Background(), "prompt")

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Kind != KindAuth {
		t.Errorf("got kind %q, want %q", gerr.Kind, KindAuth)
	}
	if attempts != 1 {
		t.Errorf("got %d attempts, want 1 (no retry)", attempts)
	}
}

func TestCallClassifiesKeyErrorsAsAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid. Please pass a valid API key."}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Call(context.Background(), "prompt")

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Kind != KindAuth {
		t.Errorf("got kind %q, want %q", gerr.Kind, KindAuth)
	}
}

func TestCallMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Call(context.Background(), "prompt")

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Kind != KindMalformedResponse {
		t.Errorf("got kind %q, want %q", gerr.Kind, KindMalformedResponse)
	}
}

func TestCallMissingKeySkipsRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.Keys = staticKeys("")
	_, err := c.Call(context.Background(), "prompt")

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Kind != KindMissingAPIKey {
		t.Errorf("got kind %q, want %q", gerr.Kind, KindMissingAPIKey)
	}
	if requests != 0 {
		t.Errorf("no request should be issued without a key, got %d", requests)
	}
}

func TestCallOfflineAfterNetworkFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	c := newTestClient(srv.URL)
	_, err := c.Call(context.Background(), "prompt")

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Kind != KindOffline {
		t.Errorf("got kind %q, want %q", gerr.Kind, KindOffline)
	}
}

func TestValidateKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-goog-api-key") != "candidate" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid authentication credentials"}}`))
			return
		}
		w.Write([]byte(successBody("ok")))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if err := c.ValidateKey(context.Background(), "candidate"); err != nil {
		t.Errorf("valid key rejected: %v", err)
	}
	if err := c.ValidateKey(context.Background(), "wrong"); err == nil {
		t.Error("invalid key accepted")
	}
}
