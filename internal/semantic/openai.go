// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semantic

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// defaultOpenAIModel is used when the config names no model.
const defaultOpenAIModel = "text-embedding-3-small"

// OpenAIEncoder produces embeddings through the OpenAI embeddings API or any
// OpenAI-compatible service.
type OpenAIEncoder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewOpenAIEncoder builds an encoder for the given API key. baseURL and
// model may be empty; empty baseURL targets api.openai.com and empty model
// selects text-embedding-3-small.
func NewOpenAIEncoder(apiKey, baseURL, model string) *OpenAIEncoder {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIEncoder{
		client: openai.NewClientWithConfig(cfg),
		model:  openai.EmbeddingModel(model),
	}
}

// Encode embeds all texts in one API request. Vectors are returned in input
// order regardless of the order the API reports them in.
func (e *OpenAIEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:          texts,
		Model:          e.model,
		EncodingFormat: openai.EmbeddingEncodingFormatFloat,
	})
	if err != nil {
		return nil, fmt.Errorf("embeddings API: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embeddings API returned %d vectors for %d inputs", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, fmt.Errorf("embeddings API returned out-of-range index %d", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}

// ModelName returns the embedding model identifier.
func (e *OpenAIEncoder) ModelName() string { return string(e.model) }
