package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/promptcraft/backend/internal/llm"
	"github.com/promptcraft/backend/internal/models"
)

// UIResearchAgent produces structured UI/UX recommendations: a long-form
// analysis plus machine-readable palettes, fonts, and inspirations. The model
// is asked for JSON; anything that fails to parse degrades to the raw text
// with a default palette instead of an error.
type UIResearchAgent struct {
	generator llm.Generator
	logger    *zap.Logger
}

// NewUIResearchAgent creates an agent around generator.
func NewUIResearchAgent(generator llm.Generator, logger *zap.Logger) *UIResearchAgent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UIResearchAgent{generator: generator, logger: logger}
}

// Research runs UI research for prompt, optionally biased by industry.
func (a *UIResearchAgent) Research(ctx context.Context, prompt, industry string) (*models.UIResearchResponse, error) {
	researchContext := buildResearchContext(prompt, industry)

	var b strings.Builder
	fmt.Fprintf(&b, "User Request: %s\n\n", prompt)
	if industry == "" {
		b.WriteString("Industry: Not specified\n\n")
	} else {
		fmt.Fprintf(&b, "Industry: %s\n\n", industry)
	}
	fmt.Fprintf(&b, "Reference Information:\n%s\n\n", researchContext)
	b.WriteString("Research and recommend UI design elements for this project. Consider:\n" +
		"1. Similar successful platforms in this space\n" +
		"2. Color psychology relevant to the industry/use case\n" +
		"3. Typography that enhances the user experience\n" +
		"4. Image styles that would resonate with the target audience\n" +
		"5. Key design principles to follow\n\n" +
		"Provide your response in the specified JSON format.")

	raw, err := a.generator.Generate(ctx, b.String(), uiResearchSystemPrompt)
	if err != nil {
		return nil, fmt.Errorf("ui research: %w", err)
	}
	return a.parseResponse(raw), nil
}

// buildResearchContext assembles reference material matched against the
// prompt: inspiration platforms by keyword, industry color psychology, and
// font pairings whose style name appears in the prompt.
func buildResearchContext(prompt, industry string) string {
	promptLower := strings.ToLower(prompt)
	var parts []string

	for _, insp := range uiInspirations {
		for _, keyword := range insp.Keywords {
			if strings.Contains(promptLower, keyword) {
				parts = append(parts, fmt.Sprintf("Reference Platform - %s:\n%s", insp.Name, insp.Description))
				break
			}
		}
	}

	if palette, ok := industryPalettes[strings.ToLower(industry)]; ok {
		parts = append(parts, fmt.Sprintf(
			"Industry Color Psychology (%s): %s. Primary colors: %s. Accent colors: %s. %s.",
			industry, palette.Description,
			strings.Join(palette.PrimaryColors, ", "),
			strings.Join(palette.AccentColors, ", "),
			palette.Psychology))
	}

	styles := make([]string, 0, len(fontPairings))
	for style := range fontPairings {
		styles = append(styles, style)
	}
	sort.Strings(styles)
	for _, style := range styles {
		if strings.Contains(promptLower, style) {
			pairing := fontPairings[style]
			parts = append(parts, fmt.Sprintf(
				"Recommended Font Pairing for %s: heading %s, body %s (%s).",
				style, pairing.Heading, pairing.Body, pairing.Description))
		}
	}

	if len(parts) == 0 {
		return "No specific references found."
	}
	return strings.Join(parts, "\n\n")
}

// uiResearchPayload mirrors the JSON shape requested from the model.
type uiResearchPayload struct {
	Analysis         string                      `json:"analysis"`
	ColorPalettes    []models.ColorPalette       `json:"color_palettes"`
	Fonts            *models.FontRecommendation  `json:"fonts"`
	Inspirations     []models.UIInspiration      `json:"inspirations"`
	DesignPrinciples []string                    `json:"design_principles"`
	ImageSuggestions []string                    `json:"image_suggestions"`
}

// parseResponse extracts the JSON object from the model output. Models wrap
// JSON in prose or code fences, so parsing spans the first "{" through the
// last "}". Unparseable output falls back to the raw text with defaults.
func (a *UIResearchAgent) parseResponse(raw string) *models.UIResearchResponse {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		var payload uiResearchPayload
		if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err == nil {
			return buildResponse(raw, payload)
		}
		a.logger.Warn("ui research response is not valid JSON, using raw text")
	}
	return fallbackResponse(raw)
}

func buildResponse(raw string, payload uiResearchPayload) *models.UIResearchResponse {
	content := payload.Analysis
	if content == "" {
		content = raw
	}
	palettes := payload.ColorPalettes
	if len(palettes) == 0 {
		palettes = []models.ColorPalette{defaultPalette()}
	}
	fonts := defaultFonts()
	if payload.Fonts != nil {
		fonts = *payload.Fonts
		if fonts.Heading == "" {
			fonts.Heading = "Inter"
		}
		if fonts.Body == "" {
			fonts.Body = "Inter"
		}
		if len(fonts.Fallbacks) == 0 {
			fonts.Fallbacks = []string{"system-ui", "sans-serif"}
		}
	}
	return &models.UIResearchResponse{
		Content:          content,
		ColorPalettes:    palettes,
		Fonts:            fonts,
		Inspirations:     payload.Inspirations,
		DesignPrinciples: payload.DesignPrinciples,
		ImageSuggestions: payload.ImageSuggestions,
	}
}

func fallbackResponse(raw string) *models.UIResearchResponse {
	return &models.UIResearchResponse{
		Content:       raw,
		ColorPalettes: []models.ColorPalette{defaultPalette()},
		Fonts:         defaultFonts(),
	}
}

func defaultPalette() models.ColorPalette {
	return models.ColorPalette{
		Primary:    "#6366f1",
		Secondary:  "#8b5cf6",
		Accent:     "#06b6d4",
		Background: "#0a0a0b",
		Text:       "#f5f5f5",
		Additional: []string{"#10b981", "#f59e0b"},
	}
}

func defaultFonts() models.FontRecommendation {
	return models.FontRecommendation{
		Heading:   "Inter",
		Body:      "Inter",
		Fallbacks: []string{"system-ui", "sans-serif"},
	}
}
