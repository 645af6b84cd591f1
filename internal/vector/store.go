package vector

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/promptcraft/backend/internal/embedding"
	"github.com/promptcraft/backend/internal/models"
)

// Result is a single retrieval hit in rank order.
type Result struct {
	ID       string
	Content  string
	Metadata models.Metadata
	Distance float64 // 1 - cosine similarity; 0 = identical
}

// Store is an append-only in-memory vector store over (document, metadata, id)
// records. Documents, metadatas, ids, and vectors are parallel slices; index i
// describes one logical record, and insertion order is preserved.
//
// Appends take the write lock so concurrent Add calls never interleave rows;
// queries take the read lock and may observe a consistent prefix of the corpus
// during a concurrent append. Existing rows are never mutated.
type Store struct {
	embedder embedding.Embedder

	mu        sync.RWMutex
	documents []string
	metadatas []models.Metadata
	ids       []string
	vectors   [][]float32
	idSet     map[string]struct{}
}

// NewStore creates an empty store that embeds through the given provider.
func NewStore(embedder embedding.Embedder) *Store {
	return &Store{
		embedder: embedder,
		idSet:    make(map[string]struct{}),
	}
}

// Add embeds documents in a single batch call and appends the records.
// The three slices must have equal length; documents[i], metadatas[i], and
// ids[i] describe the same record. Empty input is a no-op.
//
// The call is atomic: on any failure (provider error, length mismatch,
// duplicate ID, dimension mismatch) nothing is appended.
func (s *Store) Add(ctx context.Context, documents []string, metadatas []models.Metadata, ids []string) error {
	if len(documents) == 0 {
		return nil
	}
	if len(documents) != len(metadatas) || len(documents) != len(ids) {
		return fmt.Errorf("documents, metadatas, and ids length mismatch: %d, %d, %d",
			len(documents), len(metadatas), len(ids))
	}

	// The provider call is the expensive part; it happens once per Add and
	// outside the lock so readers are never blocked on embedding.
	embs, err := s.embedder.EmbedBatch(ctx, documents)
	if err != nil {
		return fmt.Errorf("embed documents: %w", err)
	}
	if len(embs) != len(documents) {
		return fmt.Errorf("embedding count mismatch: got %d, want %d", len(embs), len(documents))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := s.idSet[id]; ok {
			return fmt.Errorf("duplicate document ID %q", id)
		}
		if _, ok := batch[id]; ok {
			return fmt.Errorf("duplicate document ID %q within batch", id)
		}
		batch[id] = struct{}{}
	}
	dim := s.dimensionsLocked()
	for i, emb := range embs {
		if dim != 0 && len(emb) != dim {
			return fmt.Errorf("vector dimension mismatch for %q: got %d, expected %d", ids[i], len(emb), dim)
		}
		if dim == 0 {
			dim = len(emb)
		}
	}

	for i := range documents {
		vec := make([]float32, len(embs[i]))
		copy(vec, embs[i])
		s.documents = append(s.documents, documents[i])
		s.metadatas = append(s.metadatas, metadatas[i])
		s.ids = append(s.ids, ids[i])
		s.vectors = append(s.vectors, vec)
		s.idSet[ids[i]] = struct{}{}
	}
	return nil
}

// Query embeds queryText once and returns up to nResults records ranked by
// descending cosine similarity, ties broken by insertion order. where is an
// optional exact-match metadata filter (all pairs must match). An empty store,
// a non-positive nResults, or a filter matching nothing yields an empty
// result, not an error.
func (s *Store) Query(ctx context.Context, queryText string, nResults int, where map[string]string) ([]Result, error) {
	if nResults <= 0 || s.Count() == 0 {
		return nil, nil
	}

	queryVec, err := s.embedder.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	type candidate struct {
		index      int
		similarity float64
	}
	candidates := make([]candidate, 0, len(s.vectors))
	for i := range s.vectors {
		if !s.metadatas[i].Matches(where) {
			continue
		}
		candidates = append(candidates, candidate{
			index:      i,
			similarity: CosineSimilarity(queryVec, s.vectors[i]),
		})
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	// Stable sort keeps insertion order among equal similarities, so repeated
	// queries return identical rankings.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})

	if nResults > len(candidates) {
		nResults = len(candidates)
	}
	results := make([]Result, nResults)
	for i := 0; i < nResults; i++ {
		c := candidates[i]
		results[i] = Result{
			ID:       s.ids[c.index],
			Content:  s.documents[c.index],
			Metadata: s.metadatas[c.index],
			Distance: 1 - c.similarity,
		}
	}
	return results, nil
}

// Count returns the number of stored records.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

func (s *Store) dimensionsLocked() int {
	if len(s.vectors) == 0 {
		return 0
	}
	return len(s.vectors[0])
}
