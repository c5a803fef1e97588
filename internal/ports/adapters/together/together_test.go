package together

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mindreel/mindreel/internal/ports"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *Adapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	a := New("test-key", "test-model", srv.URL)
	a.client = srv.Client()
	return a
}

func TestCompleteSendsFixedSamplingParams(t *testing.T) {
	var got map[string]any
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"  hello  "}}]}`))
	})

	reply, err := a.Complete(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "hello" {
		t.Fatalf("expected trimmed reply, got %q", reply)
	}

	if got["model"] != "test-model" {
		t.Fatalf("unexpected model: %v", got["model"])
	}
	if got["temperature"] != 0.5 || got["top_p"] != 0.9 || got["max_tokens"] != float64(2048) {
		t.Fatalf("unexpected sampling params: %v", got)
	}
	msgs, ok := got["messages"].([]any)
	if !ok || len(msgs) != 2 {
		t.Fatalf("expected system+user messages, got %v", got["messages"])
	}
}

func TestCompleteNon2xxIsTransportError(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"overloaded","api_key":"test-key"}`))
	})

	_, err := a.Complete(context.Background(), "sys", "user")
	if !errors.Is(err, ports.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if strings.Contains(err.Error(), "test-key") {
		t.Fatalf("expected API key to be redacted, got %q", err.Error())
	}
}

func TestCompleteContentParts(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":[{"type":"text","text":"part one "},{"type":"text","text":"part two"}]}}]}`))
	})

	reply, err := a.Complete(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "part one part two" {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestCompleteEmptyChoicesIsTransportError(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := a.Complete(context.Background(), "sys", "user")
	if !errors.Is(err, ports.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestRedactSecrets(t *testing.T) {
	apiKey := "tk-super-secret"
	in := `status 401; Authorization: Bearer tk-super-secret; api_key=tk-super-secret`
	got := redactSecrets(in, apiKey)

	if strings.Contains(got, apiKey) {
		t.Fatalf("expected API key to be redacted, got: %q", got)
	}
	if !strings.Contains(got, "Authorization: [REDACTED]") {
		t.Fatalf("expected authorization header to be redacted, got: %q", got)
	}
	if !strings.Contains(got, "api_key=[REDACTED]") {
		t.Fatalf("expected api_key field to be redacted, got: %q", got)
	}
}
