package semantic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestOpenAIEncoderEncode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("request path = %s, want /embeddings", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		// Report vectors out of order; Encode must reorder by index.
		json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"model":  "test-embed",
			"data": []map[string]any{
				{"object": "embedding", "index": 1, "embedding": []float32{0, 1}},
				{"object": "embedding", "index": 0, "embedding": []float32{1, 0}},
			},
		})
	}))
	defer server.Close()

	enc := NewOpenAIEncoder("test-key", server.URL, "test-embed")
	vectors, err := enc.Encode(context.Background(), []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := [][]float32{{1, 0}, {0, 1}}
	if !reflect.DeepEqual(vectors, want) {
		t.Errorf("Encode() = %v, want input order %v", vectors, want)
	}
}

func TestOpenAIEncoderDefaults(t *testing.T) {
	enc := NewOpenAIEncoder("test-key", "", "")
	if enc.ModelName() != defaultOpenAIModel {
		t.Errorf("ModelName() = %q, want %q", enc.ModelName(), defaultOpenAIModel)
	}
}

func TestOpenAIEncoderErrors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "invalid key", "type": "invalid_request_error"},
			})
		}))
		defer server.Close()

		enc := NewOpenAIEncoder("bad-key", server.URL, "test-embed")
		if _, err := enc.Encode(context.Background(), []string{"x"}); err == nil {
			t.Error("Encode() succeeded on 401, want error")
		}
	})

	t.Run("vector count mismatch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"object": "list",
				"data": []map[string]any{
					{"object": "embedding", "index": 0, "embedding": []float32{1}},
				},
			})
		}))
		defer server.Close()

		enc := NewOpenAIEncoder("test-key", server.URL, "test-embed")
		if _, err := enc.Encode(context.Background(), []string{"x", "y"}); err == nil {
			t.Error("Encode() succeeded on short response, want error")
		}
	})
}

func TestOpenAIEncoderEmptyBatch(t *testing.T) {
	enc := NewOpenAIEncoder("test-key", "http://127.0.0.1:1", "test-embed")
	vectors, err := enc.Encode(context.Background(), nil)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if vectors != nil {
		t.Errorf("Encode(nil) = %v, want nil", vectors)
	}
}
