// Package embedding provides text embedding providers: a deterministic mock,
// a local ONNX model, and remote Gemini embeddings.
package embedding

import "context"

// Embedder produces fixed-dimension vector embeddings for text.
//
// EmbedBatch returns one vector per input in the same order. Implementations
// keep dimensionality constant across calls for a given instance.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
	Close() error
}
