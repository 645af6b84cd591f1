package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultGeminiModel = "gemini-2.0-flash"
	defaultTemperature = 0.7
	defaultMaxTokens   = 8192
)

// GeminiGenerator generates text through the Gemini API. Construction is
// two-phase: NewGeminiGenerator validates configuration without touching the
// network, Connect builds the API client.
type GeminiGenerator struct {
	apiKey      string
	model       string
	temperature float32
	maxTokens   int32
	logger      *zap.Logger

	client *genai.Client
}

// NewGeminiGenerator creates an unconnected generator. Call Connect before Generate.
func NewGeminiGenerator(apiKey, model string, temperature float64, maxTokens int, logger *zap.Logger) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiGenerator{
		apiKey:      apiKey,
		model:       model,
		temperature: float32(temperature),
		maxTokens:   int32(maxTokens),
		logger:      logger,
	}, nil
}

// Connect creates the underlying API client.
func (g *GeminiGenerator) Connect(ctx context.Context) error {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("gemini: create client: %w", err)
	}
	g.client = client
	g.logger.Info("gemini generator connected", zap.String("model", g.model))
	return nil
}

// Generate sends prompt to the model under systemPrompt and returns the text
// output. An empty model response yields a fallback message, not an error.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("gemini: not connected")
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.temperature),
		MaxOutputTokens: g.maxTokens,
	}
	if systemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		g.logger.Warn("gemini returned empty response", zap.String("model", g.model))
		return emptyResponseFallback, nil
	}
	return text, nil
}

// Close releases the generator. The genai client holds no persistent
// connections, so there is nothing to tear down.
func (g *GeminiGenerator) Close() error {
	g.client = nil
	return nil
}
