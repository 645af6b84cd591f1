package models

import "fmt"

const maxPromptLength = 5000

// ChatRequest is the common request body for generation endpoints.
type ChatRequest struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context,omitempty"`
}

// Validate ensures the request has a usable prompt.
func (r *ChatRequest) Validate() error {
	return validatePrompt(r.Prompt)
}

// ArchitectureRequest is the request body for architecture generation.
type ArchitectureRequest struct {
	Prompt       string   `json:"prompt"`
	Context      string   `json:"context,omitempty"`
	Scale        string   `json:"scale,omitempty"` // small, medium, large, enterprise
	Requirements []string `json:"requirements,omitempty"`
}

// Validate ensures the request has a usable prompt and normalizes the scale.
func (r *ArchitectureRequest) Validate() error {
	if err := validatePrompt(r.Prompt); err != nil {
		return err
	}
	if r.Scale == "" {
		r.Scale = "large"
	}
	return nil
}

// UIResearchRequest is the request body for UI research.
type UIResearchRequest struct {
	Prompt           string   `json:"prompt"`
	Industry         string   `json:"industry,omitempty"`
	StylePreferences []string `json:"style_preferences,omitempty"`
}

// Validate ensures the request has a usable prompt.
func (r *UIResearchRequest) Validate() error {
	return validatePrompt(r.Prompt)
}

// KnowledgeSearchRequest is the request body for the diagnostic retrieval endpoint.
type KnowledgeSearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
	Type  string `json:"type,omitempty"`
}

// Validate ensures the query is non-empty and normalizes the limit.
func (r *KnowledgeSearchRequest) Validate() error {
	if r.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if r.Limit <= 0 {
		r.Limit = 5
	}
	if r.Limit > 50 {
		r.Limit = 50
	}
	return nil
}

func validatePrompt(prompt string) error {
	if prompt == "" {
		return fmt.Errorf("prompt cannot be empty")
	}
	if len(prompt) > maxPromptLength {
		return fmt.Errorf("prompt exceeds %d characters", maxPromptLength)
	}
	return nil
}
