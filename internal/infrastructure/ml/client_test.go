package ml

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClassifyText(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/classify" {
			t.Errorf("path = %s, want /classify", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization = %q", got)
		}

		var payload struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload.Text == "" {
			t.Error("empty text in payload")
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"label": "POSITIVE", "score": 0.92})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	label, score, err := client.ClassifyText(context.Background(), "실적이 크게 개선되었다")
	if err != nil {
		t.Fatalf("ClassifyText error: %v", err)
	}
	if label != "POSITIVE" {
		t.Fatalf("label = %s, want POSITIVE", label)
	}
	if score != 0.92 {
		t.Fatalf("score = %f, want 0.92", score)
	}
}

func TestClassifyTextNon200(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, _, err := client.ClassifyText(context.Background(), "텍스트"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
