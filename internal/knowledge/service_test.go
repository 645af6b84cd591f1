package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/promptcraft/backend/internal/embedding"
	"github.com/promptcraft/backend/internal/models"
	"github.com/promptcraft/backend/internal/vector"
)

func newTestService() *Service {
	store := vector.NewStore(embedding.NewMockEmbedder(32))
	return NewService(store, zap.NewNop())
}

func corpusSize() int {
	return len(systemArchitectures) + len(designPatterns) + len(techStacks)
}

func TestServiceInitialize(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.Initialize(ctx); err != nil {
		t.Fatal(err)
	}
	if svc.Count() != corpusSize() {
		t.Errorf("Count = %d, want %d", svc.Count(), corpusSize())
	}

	// Second call is a no-op.
	if err := svc.Initialize(ctx); err != nil {
		t.Fatal(err)
	}
	if svc.Count() != corpusSize() {
		t.Errorf("Count after re-initialize = %d", svc.Count())
	}
}

func TestServiceQuery_FilterByCategory(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	if err := svc.Initialize(ctx); err != nil {
		t.Fatal(err)
	}

	matches, err := svc.Query(ctx, "payment retries", 10, models.CategoryPattern)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != len(designPatterns) {
		t.Fatalf("matches: %d, want %d", len(matches), len(designPatterns))
	}
	for _, m := range matches {
		if m.Metadata.Type != models.CategoryPattern {
			t.Errorf("filter leaked: %+v", m.Metadata)
		}
	}
}

func TestServiceQuery_LazilyInitializes(t *testing.T) {
	svc := newTestService()
	matches, err := svc.Query(context.Background(), "event streaming", 3, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 3 {
		t.Errorf("matches: %d", len(matches))
	}
	if svc.Count() != corpusSize() {
		t.Errorf("lazy initialize did not populate: %d", svc.Count())
	}
}

type failingEmbedder struct{ embedding.MockEmbedder }

func (f *failingEmbedder) EmbedBatch(context.Context, []string) ([][]float32, error) {
	return nil, errors.New("provider down")
}

func TestServiceInitialize_DegradedOnFailure(t *testing.T) {
	store := vector.NewStore(&failingEmbedder{})
	svc := NewService(store, zap.NewNop())
	ctx := context.Background()

	if err := svc.Initialize(ctx); err == nil {
		t.Fatal("population failure not reported")
	}
	if svc.PopulateError() == nil {
		t.Error("populate error not recorded")
	}

	// Service is ready despite the failure: queries succeed with no results.
	matches, err := svc.Query(ctx, "anything", 5, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("matches on empty store: %d", len(matches))
	}
	if svc.Count() != 0 {
		t.Errorf("Count = %d", svc.Count())
	}
}

func TestArchitectureContext(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	if err := svc.Initialize(ctx); err != nil {
		t.Fatal(err)
	}

	contextText, err := svc.ArchitectureContext(ctx, "ride sharing matching")
	if err != nil {
		t.Fatal(err)
	}
	archIdx := strings.Index(contextText, "## Relevant System Architectures:")
	patternIdx := strings.Index(contextText, "## Relevant Design Patterns:")
	if archIdx == -1 || patternIdx == -1 {
		t.Fatalf("missing section labels:\n%s", contextText)
	}
	if archIdx > patternIdx {
		t.Error("architectures section must precede patterns section")
	}
	if !strings.Contains(contextText, "System: ") {
		t.Error("no architecture documents in context")
	}
	if !strings.Contains(contextText, "Pattern: ") {
		t.Error("no pattern documents in context")
	}
}

func TestArchitectureContext_EmptyCorpusKeepsLabels(t *testing.T) {
	store := vector.NewStore(&failingEmbedder{})
	svc := NewService(store, zap.NewNop())
	ctx := context.Background()
	_ = svc.Initialize(ctx) // fails, service degrades to empty corpus

	contextText, err := svc.ArchitectureContext(ctx, "anything")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(contextText, "## Relevant System Architectures:") ||
		!strings.Contains(contextText, "## Relevant Design Patterns:") {
		t.Errorf("section labels missing on empty corpus:\n%s", contextText)
	}
}

func TestDocumentRendering(t *testing.T) {
	arch := systemArchitectures[0]
	doc := arch.document()
	if doc != arch.document() {
		t.Error("architecture rendering not deterministic")
	}
	for _, want := range []string{"System: ", "Scale: ", "Key Components: ", "Technologies: ", "Patterns: ", "Use Cases: "} {
		if !strings.Contains(doc, want) {
			t.Errorf("architecture document missing %q", want)
		}
	}
	meta := arch.metadata()
	if meta.Type != models.CategoryArchitecture || meta.Name != arch.Name {
		t.Errorf("architecture metadata: %+v", meta)
	}
	if meta.Extra["scale"] != arch.Scale {
		t.Errorf("scale missing from metadata: %+v", meta.Extra)
	}

	pattern := designPatterns[0]
	pdoc := pattern.document()
	for _, want := range []string{"Pattern: ", "When to use: ", "Benefits: ", "Considerations: "} {
		if !strings.Contains(pdoc, want) {
			t.Errorf("pattern document missing %q", want)
		}
	}

	stack := techStacks[0]
	sdoc := stack.document()
	if !strings.Contains(sdoc, "Tech Stack: ") || !strings.Contains(sdoc, "Components: ") {
		t.Errorf("stack document malformed:\n%s", sdoc)
	}
	if sdoc != stack.document() {
		t.Error("stack rendering not deterministic")
	}
}

func TestCorpusIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	add := func(id string) {
		if seen[id] {
			t.Errorf("duplicate corpus ID %q", id)
		}
		seen[id] = true
	}
	for _, a := range systemArchitectures {
		add("arch_" + a.ID)
	}
	for _, p := range designPatterns {
		add("pattern_" + p.ID)
	}
	for _, s := range techStacks {
		add("stack_" + s.ID)
	}
}
