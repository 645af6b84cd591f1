package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/promptcraft/backend/internal/agent"
	"github.com/promptcraft/backend/internal/cache"
	"github.com/promptcraft/backend/internal/config"
	"github.com/promptcraft/backend/internal/embedding"
	"github.com/promptcraft/backend/internal/knowledge"
	"github.com/promptcraft/backend/internal/llm"
	"github.com/promptcraft/backend/internal/models"
	"github.com/promptcraft/backend/internal/vector"
)

func newTestServer(t *testing.T, gen llm.Generator, withCache bool) *Server {
	t.Helper()
	logger := zap.NewNop()
	store := vector.NewStore(embedding.NewMockEmbedder(16))
	kb := knowledge.NewService(store, logger)
	if err := kb.Initialize(context.Background()); err != nil {
		t.Fatal(err)
	}

	var responseCache *cache.Cache
	if withCache {
		c, err := cache.New(filepath.Join(t.TempDir(), "cache.db"))
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = c.Close() })
		responseCache = c
	}

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	return NewServer(
		agent.NewArchitectureAgent(gen, kb, logger),
		agent.NewUIResearchAgent(gen, logger),
		kb,
		responseCache,
		cfg,
		logger,
	)
}

func postJSON(t *testing.T, handler http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func TestHandleArchitectureChat(t *testing.T) {
	gen := llm.NewMockGenerator("a full architecture document")
	srv := newTestServer(t, gen, false)
	router := srv.Router()

	w := postJSON(t, router, "/api/v1/chat/architecture", models.ArchitectureRequest{
		Prompt:  "design a ticketing platform",
		Context: "flash sales",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}
	var resp models.ChatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Content != "a full architecture document" {
		t.Errorf("content: %q", resp.Content)
	}
	if resp.Cached {
		t.Error("fresh generation marked cached")
	}
	if resp.Metadata["generation_id"] == "" {
		t.Error("generation_id missing")
	}
}

func TestHandleArchitectureChat_Validation(t *testing.T) {
	srv := newTestServer(t, llm.NewMockGenerator("x"), false)
	router := srv.Router()

	w := postJSON(t, router, "/api/v1/chat/architecture", models.ArchitectureRequest{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty prompt: status %d", w.Code)
	}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/chat/architecture", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status %d", rec.Code)
	}
}

func TestHandleChatCaching(t *testing.T) {
	gen := llm.NewMockGenerator("generated once")
	srv := newTestServer(t, gen, true)
	router := srv.Router()
	req := models.ChatRequest{Prompt: "a schema for orders"}

	w := postJSON(t, router, "/api/v1/chat/database", req)
	if w.Code != http.StatusOK {
		t.Fatalf("first call: status %d", w.Code)
	}
	var first models.ChatResponse
	if err := json.NewDecoder(w.Body).Decode(&first); err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Error("first response marked cached")
	}

	w = postJSON(t, router, "/api/v1/chat/database", req)
	var second models.ChatResponse
	if err := json.NewDecoder(w.Body).Decode(&second); err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Error("second response not served from cache")
	}
	if second.Content != first.Content {
		t.Errorf("cache returned different content: %q vs %q", second.Content, first.Content)
	}
	if len(gen.Calls) != 1 {
		t.Errorf("generator called %d times, want 1", len(gen.Calls))
	}
}

func TestHandleChat_GeneratorFailure(t *testing.T) {
	gen := llm.NewMockGenerator("")
	gen.Err = context.DeadlineExceeded
	srv := newTestServer(t, gen, false)

	w := postJSON(t, srv.Router(), "/api/v1/chat/api", models.ChatRequest{Prompt: "anything"})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status: %d", w.Code)
	}
	var out map[string]string
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out["error"] == "" {
		t.Error("error body missing")
	}
}

func TestHandleUIResearchChat(t *testing.T) {
	gen := llm.NewMockGenerator(`{"analysis": "ui analysis", ` +
		`"color_palettes": [{"primary": "#0066FF", "secondary": "#06B6D4", "accent": "#10B981", "background": "#fff", "text": "#111"}], ` +
		`"fonts": {"heading": "Inter", "body": "Inter"}}`)
	srv := newTestServer(t, gen, true)
	router := srv.Router()
	req := models.UIResearchRequest{Prompt: "a saas dashboard", Industry: "technology"}

	w := postJSON(t, router, "/api/v1/chat/ui", req)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d, body %s", w.Code, w.Body.String())
	}
	var resp models.UIResearchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Content != "ui analysis" {
		t.Errorf("content: %q", resp.Content)
	}
	if resp.ColorPalettes[0].Primary != "#0066FF" {
		t.Errorf("palette: %+v", resp.ColorPalettes)
	}
	if resp.Cached {
		t.Error("fresh response marked cached")
	}

	// Second call comes back from cache with the structure intact.
	w = postJSON(t, router, "/api/v1/chat/ui", req)
	var cached models.UIResearchResponse
	if err := json.NewDecoder(w.Body).Decode(&cached); err != nil {
		t.Fatal(err)
	}
	if !cached.Cached {
		t.Error("second response not cached")
	}
	if cached.ColorPalettes[0].Primary != "#0066FF" {
		t.Errorf("cached palette lost: %+v", cached.ColorPalettes)
	}
}

func TestHandleKnowledgeSearch(t *testing.T) {
	srv := newTestServer(t, llm.NewMockGenerator("x"), false)
	router := srv.Router()

	w := postJSON(t, router, "/api/v1/knowledge/search", models.KnowledgeSearchRequest{
		Query: "resilience under partial failure",
		Limit: 3,
		Type:  "pattern",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	var out struct {
		Results []models.Match `json:"results"`
		Count   int            `json:"count"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 3 || len(out.Results) != 3 {
		t.Fatalf("count: %d, results: %d", out.Count, len(out.Results))
	}
	for _, m := range out.Results {
		if m.Metadata.Type != models.CategoryPattern {
			t.Errorf("type filter leaked: %+v", m.Metadata)
		}
	}

	w = postJSON(t, router, "/api/v1/knowledge/search", models.KnowledgeSearchRequest{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty query: status %d", w.Code)
	}
}

func TestHandleStatusAndHealth(t *testing.T) {
	srv := newTestServer(t, llm.NewMockGenerator("x"), true)
	router := srv.Router()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status endpoint: %d", w.Code)
	}
	var out struct {
		KnowledgeBase struct {
			Documents int  `json:"documents"`
			Degraded  bool `json:"degraded"`
		} `json:"knowledge_base"`
		CacheEnabled bool `json:"cache_enabled"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.KnowledgeBase.Documents == 0 {
		t.Error("knowledge base empty in status")
	}
	if out.KnowledgeBase.Degraded {
		t.Error("healthy knowledge base reported degraded")
	}
	if !out.CacheEnabled {
		t.Error("cache_enabled false with cache configured")
	}

	r = httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("health: %d", w.Code)
	}
}
