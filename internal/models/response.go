package models

// ChatResponse is the response body for text generation endpoints.
type ChatResponse struct {
	Content  string            `json:"content"`
	Cached   bool              `json:"cached"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ColorPalette is a recommended set of UI colors.
type ColorPalette struct {
	Primary    string   `json:"primary"`
	Secondary  string   `json:"secondary"`
	Accent     string   `json:"accent"`
	Background string   `json:"background"`
	Text       string   `json:"text"`
	Additional []string `json:"additional,omitempty"`
}

// FontRecommendation is a recommended font pairing.
type FontRecommendation struct {
	Heading   string   `json:"heading"`
	Body      string   `json:"body"`
	Accent    string   `json:"accent,omitempty"`
	Fallbacks []string `json:"fallbacks,omitempty"`
}

// UIInspiration references an existing platform whose UI is worth studying.
type UIInspiration struct {
	PlatformName string   `json:"platform_name"`
	Description  string   `json:"description"`
	KeyFeatures  []string `json:"key_features"`
	URL          string   `json:"url,omitempty"`
}

// UIResearchResponse is the structured response for UI research.
type UIResearchResponse struct {
	Content          string             `json:"content"`
	ColorPalettes    []ColorPalette     `json:"color_palettes"`
	Fonts            FontRecommendation `json:"fonts"`
	Inspirations     []UIInspiration    `json:"inspirations"`
	DesignPrinciples []string           `json:"design_principles"`
	ImageSuggestions []string           `json:"image_suggestions"`
	Cached           bool               `json:"cached"`
}
