package knowledge

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/promptcraft/backend/internal/models"
	"github.com/promptcraft/backend/internal/vector"
)

// Results per category for ArchitectureContext.
const (
	architectureResults = 3
	patternResults      = 2
)

type serviceState int

const (
	stateUninitialized serviceState = iota
	stateInitializing
	stateReady
)

// Service owns the process-wide vector store and populates it from the static
// corpus. Initialization failures never block startup: the service still
// reaches ready and queries return empty results until (if ever) re-created.
type Service struct {
	store  *vector.Store
	logger *zap.Logger

	mu          sync.Mutex
	state       serviceState
	populateErr error
}

// NewService creates an uninitialized service around the given store.
func NewService(store *vector.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Initialize flattens the static corpus and ingests it in one batch.
// Calling again after the service is ready is a no-op. On population failure
// the error is logged and recorded, and the service still becomes ready.
func (s *Service) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateReady {
		return nil
	}
	s.state = stateInitializing

	err := s.populate(ctx)
	if err != nil {
		s.populateErr = err
		s.logger.Error("knowledge base population failed; continuing with empty corpus", zap.Error(err))
	} else {
		s.logger.Info("knowledge base initialized", zap.Int("documents", s.store.Count()))
	}
	s.state = stateReady
	return err
}

func (s *Service) populate(ctx context.Context) error {
	var (
		documents []string
		metadatas []models.Metadata
		ids       []string
	)
	for _, arch := range systemArchitectures {
		documents = append(documents, arch.document())
		metadatas = append(metadatas, arch.metadata())
		ids = append(ids, "arch_"+arch.ID)
	}
	for _, pattern := range designPatterns {
		documents = append(documents, pattern.document())
		metadatas = append(metadatas, pattern.metadata())
		ids = append(ids, "pattern_"+pattern.ID)
	}
	for _, stack := range techStacks {
		documents = append(documents, stack.document())
		metadatas = append(metadatas, stack.metadata())
		ids = append(ids, "stack_"+stack.ID)
	}

	// One Add call: the batch embedding is the expensive part.
	if err := s.store.Add(ctx, documents, metadatas, ids); err != nil {
		return fmt.Errorf("populate corpus: %w", err)
	}
	return nil
}

// Query retrieves up to nResults matches for query, optionally restricted to
// one corpus category. Initializes lazily if startup skipped it.
func (s *Service) Query(ctx context.Context, query string, nResults int, filterType models.Category) ([]models.Match, error) {
	s.ensureInitialized(ctx)

	var where map[string]string
	if filterType != "" {
		where = map[string]string{"type": string(filterType)}
	}
	results, err := s.store.Query(ctx, query, nResults, where)
	if err != nil {
		return nil, fmt.Errorf("knowledge query: %w", err)
	}

	matches := make([]models.Match, len(results))
	for i, r := range results {
		matches[i] = models.Match{Content: r.Content, Metadata: r.Metadata, Distance: r.Distance}
	}
	return matches, nil
}

// ArchitectureContext assembles the retrieval context handed to generation:
// the top architecture matches followed by the top pattern matches, under
// fixed section labels. Sections keep their labels even when empty.
func (s *Service) ArchitectureContext(ctx context.Context, query string) (string, error) {
	architectures, err := s.Query(ctx, query, architectureResults, models.CategoryArchitecture)
	if err != nil {
		return "", err
	}
	patterns, err := s.Query(ctx, query, patternResults, models.CategoryPattern)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("## Relevant System Architectures:\n\n")
	for _, m := range architectures {
		b.WriteString(m.Content)
		b.WriteString("\n\n---\n\n")
	}
	b.WriteString("\n## Relevant Design Patterns:\n\n")
	for _, m := range patterns {
		b.WriteString(m.Content)
		b.WriteString("\n\n---\n\n")
	}
	return b.String(), nil
}

// Count returns the number of corpus documents currently stored.
func (s *Service) Count() int {
	return s.store.Count()
}

// PopulateError returns the recorded population failure, if any.
func (s *Service) PopulateError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.populateErr
}

func (s *Service) ensureInitialized(ctx context.Context) {
	s.mu.Lock()
	ready := s.state == stateReady
	s.mu.Unlock()
	if !ready {
		// Defensive: normal callers initialize eagerly at startup.
		_ = s.Initialize(ctx)
	}
}
