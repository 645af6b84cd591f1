// Package integration exercises the full request path: HTTP layer, agents,
// knowledge retrieval, and the response cache together.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/promptcraft/backend/internal/agent"
	"github.com/promptcraft/backend/internal/cache"
	"github.com/promptcraft/backend/internal/config"
	"github.com/promptcraft/backend/internal/embedding"
	"github.com/promptcraft/backend/internal/knowledge"
	"github.com/promptcraft/backend/internal/llm"
	"github.com/promptcraft/backend/internal/models"
	"github.com/promptcraft/backend/internal/server"
	"github.com/promptcraft/backend/internal/vector"
)

func newStack(t *testing.T, gen llm.Generator) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()

	store := vector.NewStore(embedding.NewMockEmbedder(32))
	kb := knowledge.NewService(store, logger)
	if err := kb.Initialize(context.Background()); err != nil {
		t.Fatal(err)
	}

	responseCache, err := cache.New(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = responseCache.Close() })

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	srv := server.NewServer(
		agent.NewArchitectureAgent(gen, kb, logger),
		agent.NewUIResearchAgent(gen, logger),
		kb,
		responseCache,
		cfg,
		logger,
	)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url string, body interface{}, out interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatal(err)
		}
	}
	return resp
}

func TestIntegration_ArchitectureFlow(t *testing.T) {
	gen := llm.NewMockGenerator("architecture for a marketplace")
	ts := newStack(t, gen)

	var resp models.ChatResponse
	httpResp := post(t, ts.URL+"/api/v1/chat/architecture", models.ArchitectureRequest{
		Prompt: "an e-commerce marketplace with flash sales",
	}, &resp)
	if httpResp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", httpResp.StatusCode)
	}
	if resp.Content != "architecture for a marketplace" {
		t.Errorf("content: %q", resp.Content)
	}
	if resp.Cached {
		t.Error("first response marked cached")
	}

	// The generation prompt carried retrieval context from the corpus.
	if len(gen.Calls) != 1 {
		t.Fatalf("generator calls: %d", len(gen.Calls))
	}
	prompt := gen.Calls[0].Prompt
	for _, want := range []string{"## Relevant System Architectures:", "## Relevant Design Patterns:"} {
		if !bytes.Contains([]byte(prompt), []byte(want)) {
			t.Errorf("generation prompt missing %q", want)
		}
	}

	// Second identical request is served from the cache without generating.
	var cached models.ChatResponse
	post(t, ts.URL+"/api/v1/chat/architecture", models.ArchitectureRequest{
		Prompt: "an e-commerce marketplace with flash sales",
	}, &cached)
	if !cached.Cached {
		t.Error("repeat request not cached")
	}
	if len(gen.Calls) != 1 {
		t.Errorf("generator called again for cached request: %d calls", len(gen.Calls))
	}
}

func TestIntegration_KnowledgeSearchAndStatus(t *testing.T) {
	ts := newStack(t, llm.NewMockGenerator("x"))

	var search struct {
		Results []models.Match `json:"results"`
		Count   int            `json:"count"`
	}
	httpResp := post(t, ts.URL+"/api/v1/knowledge/search", models.KnowledgeSearchRequest{
		Query: "video streaming at scale",
		Limit: 4,
		Type:  "architecture",
	}, &search)
	if httpResp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", httpResp.StatusCode)
	}
	if search.Count == 0 {
		t.Fatal("no results from populated corpus")
	}
	for _, m := range search.Results {
		if m.Metadata.Type != models.CategoryArchitecture {
			t.Errorf("type filter leaked: %+v", m.Metadata)
		}
	}

	statusResp, err := http.Get(ts.URL + "/api/v1/status")
	if err != nil {
		t.Fatal(err)
	}
	defer statusResp.Body.Close()
	var status struct {
		KnowledgeBase struct {
			Documents int  `json:"documents"`
			Degraded  bool `json:"degraded"`
		} `json:"knowledge_base"`
	}
	if err := json.NewDecoder(statusResp.Body).Decode(&status); err != nil {
		t.Fatal(err)
	}
	if status.KnowledgeBase.Documents == 0 || status.KnowledgeBase.Degraded {
		t.Errorf("unexpected status: %+v", status.KnowledgeBase)
	}
}
