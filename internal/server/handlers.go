package server

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/promptcraft/backend/internal/cache"
	"github.com/promptcraft/backend/internal/models"
	"github.com/promptcraft/backend/pkg/utils"
)

func (s *Server) handleArchitectureChat(w http.ResponseWriter, r *http.Request) {
	var req models.ArchitectureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.logger.Debug("architecture chat request",
		zap.String("prompt", utils.Truncate(req.Prompt, 120)),
		zap.String("scale", req.Scale))

	key := cacheKey("arch", req.Prompt)
	if cached, ok := s.safeCacheGet(r.Context(), key); ok {
		s.respondJSON(w, http.StatusOK, models.ChatResponse{Content: cached, Cached: true})
		return
	}

	content, err := s.archAgent.Generate(r.Context(), req.Prompt, req.Context)
	if err != nil {
		s.logger.Error("architecture generation failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to generate response")
		return
	}
	s.safeCacheSet(r.Context(), key, content)
	s.respondJSON(w, http.StatusOK, models.ChatResponse{
		Content:  content,
		Metadata: map[string]string{"generation_id": uuid.NewString()},
	})
}

func (s *Server) handleDatabaseChat(w http.ResponseWriter, r *http.Request) {
	s.handleChat(w, r, "db", s.archAgent.GenerateDatabaseSchema)
}

func (s *Server) handleAPIDesignChat(w http.ResponseWriter, r *http.Request) {
	s.handleChat(w, r, "api", s.archAgent.GenerateAPIDesign)
}

func (s *Server) handlePromptsChat(w http.ResponseWriter, r *http.Request) {
	s.handleChat(w, r, "prompts", s.archAgent.GeneratePromptTemplate)
}

// handleChat is the shared decode/validate/cache/generate path for the chat
// endpoints that take a bare prompt.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request, prefix string,
	generate func(ctx context.Context, prompt string) (string, error)) {

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.logger.Debug("chat request",
		zap.String("endpoint", prefix),
		zap.String("prompt", utils.Truncate(req.Prompt, 120)))

	key := cacheKey(prefix, req.Prompt)
	if cached, ok := s.safeCacheGet(r.Context(), key); ok {
		s.respondJSON(w, http.StatusOK, models.ChatResponse{Content: cached, Cached: true})
		return
	}

	content, err := generate(r.Context(), req.Prompt)
	if err != nil {
		s.logger.Error("generation failed", zap.String("endpoint", prefix), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to generate response")
		return
	}
	s.safeCacheSet(r.Context(), key, content)
	s.respondJSON(w, http.StatusOK, models.ChatResponse{
		Content:  content,
		Metadata: map[string]string{"generation_id": uuid.NewString()},
	})
}

func (s *Server) handleUIResearchChat(w http.ResponseWriter, r *http.Request) {
	var req models.UIResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := cacheKey("ui", req.Prompt)
	if cached, ok := s.safeCacheGet(r.Context(), key); ok {
		var resp models.UIResearchResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			resp.Cached = true
			s.respondJSON(w, http.StatusOK, resp)
			return
		}
		// Stale or corrupt entry: regenerate.
	}

	resp, err := s.uiAgent.Research(r.Context(), req.Prompt, req.Industry)
	if err != nil {
		s.logger.Error("ui research failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to generate response")
		return
	}
	if data, err := json.Marshal(resp); err == nil {
		s.safeCacheSet(r.Context(), key, string(data))
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleKnowledgeSearch(w http.ResponseWriter, r *http.Request) {
	var req models.KnowledgeSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	matches, err := s.kb.Query(r.Context(), req.Query, req.Limit, models.Category(req.Type))
	if err != nil {
		s.logger.Error("knowledge search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if matches == nil {
		matches = []models.Match{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"results": matches,
		"count":   len(matches),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	kbStatus := map[string]interface{}{
		"documents": s.kb.Count(),
		"degraded":  s.kb.PopulateError() != nil,
	}
	if err := s.kb.PopulateError(); err != nil {
		kbStatus["populate_error"] = err.Error()
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"knowledge_base": kbStatus,
		"cache_enabled":  s.cache != nil,
		"model":          s.config.LLM.Model,
	})
}

// safeCacheGet treats every cache failure as a miss. Only real errors are
// logged; ordinary misses are silent.
func (s *Server) safeCacheGet(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	value, err := s.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrMiss) {
		return "", false
	}
	if err != nil {
		s.logger.Warn("cache get failed", zap.Error(err))
		return "", false
	}
	return value, true
}

// safeCacheSet stores best-effort; failures are logged and ignored.
func (s *Server) safeCacheSet(ctx context.Context, key, value string) {
	if s.cache == nil {
		return
	}
	ttl := time.Duration(s.config.Cache.TTL) * time.Second
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		s.logger.Warn("cache set failed", zap.Error(err))
	}
}

func cacheKey(prefix, prompt string) string {
	return fmt.Sprintf("%s:%x", prefix, sha256.Sum256([]byte(prompt)))
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
