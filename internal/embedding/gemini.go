package embedding

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/promptcraft/backend/pkg/utils"
)

// GeminiEmbedder produces embeddings through the Gemini embeddings API.
// Construction is cheap; Connect must be called before the first Embed.
type GeminiEmbedder struct {
	apiKey     string
	model      string
	dimensions int
	cache      *Cache
	client     *genai.Client
}

// NewGeminiEmbedder creates a remote embedder. No network calls are made until Connect.
func NewGeminiEmbedder(apiKey, model string, dimensions, cacheSize int) *GeminiEmbedder {
	return &GeminiEmbedder{
		apiKey:     apiKey,
		model:      model,
		dimensions: dimensions,
		cache:      NewCache(cacheSize),
	}
}

// Connect creates the API client. Safe to call more than once.
func (e *GeminiEmbedder) Connect(ctx context.Context) error {
	if e.client != nil {
		return nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  e.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("create genai client: %w", err)
	}
	e.client = client
	return nil
}

// Embed returns the embedding for a single text.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if cached, ok := e.cache.Get(text); ok {
		return cached, nil
	}
	out, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// EmbedBatch embeds all texts in a single API call, preserving input order.
func (e *GeminiEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if e.client == nil {
		return nil, fmt.Errorf("gemini embedder not connected")
	}
	if len(texts) == 0 {
		return nil, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}
	dim := int32(e.dimensions)
	resp, err := e.client.Models.EmbedContent(ctx, e.model, contents, &genai.EmbedContentConfig{
		OutputDimensionality: &dim,
	})
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(resp.Embeddings), len(texts))
	}

	out := make([][]float32, len(texts))
	for i, ce := range resp.Embeddings {
		emb := make([]float32, len(ce.Values))
		copy(emb, ce.Values)
		utils.NormalizeL2(emb)
		out[i] = emb
		e.cache.Set(texts[i], emb)
	}
	return out, nil
}

// Dimensions returns the requested output dimensionality.
func (e *GeminiEmbedder) Dimensions() int {
	return e.dimensions
}

// Close is a no-op; the underlying client needs no shutdown.
func (e *GeminiEmbedder) Close() error {
	return nil
}
