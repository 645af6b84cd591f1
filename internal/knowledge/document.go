package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/promptcraft/backend/internal/models"
)

// Corpus items are flattened into one text document per item. The rendering is
// deterministic (map fields sorted by key) so re-ingestion always produces
// identical documents.

func (a Architecture) document() string {
	var b strings.Builder
	fmt.Fprintf(&b, "System: %s\n\n%s\n\n", a.Name, a.Description)
	fmt.Fprintf(&b, "Scale: %s\n", a.Scale)
	fmt.Fprintf(&b, "Key Components: %s\n", strings.Join(a.Components, ", "))
	fmt.Fprintf(&b, "Technologies: %s\n", renderGroups(a.Technologies))
	fmt.Fprintf(&b, "Patterns: %s\n", strings.Join(a.Patterns, ", "))
	fmt.Fprintf(&b, "Use Cases: %s", strings.Join(a.UseCases, ", "))
	return b.String()
}

func (a Architecture) metadata() models.Metadata {
	return models.Metadata{
		Type:  models.CategoryArchitecture,
		Name:  a.Name,
		Extra: map[string]string{"scale": a.Scale},
	}
}

func (p Pattern) document() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pattern: %s\n\n%s\n\n", p.Name, p.Description)
	fmt.Fprintf(&b, "When to use: %s\n", p.WhenToUse)
	fmt.Fprintf(&b, "Benefits: %s\n", strings.Join(p.Benefits, ", "))
	fmt.Fprintf(&b, "Considerations: %s", strings.Join(p.Considerations, ", "))
	return b.String()
}

func (p Pattern) metadata() models.Metadata {
	category := p.Category
	if category == "" {
		category = "general"
	}
	return models.Metadata{
		Type:  models.CategoryPattern,
		Name:  p.Name,
		Extra: map[string]string{"category": category},
	}
}

func (s TechStack) document() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tech Stack: %s\n\n%s\n\n", s.Name, s.Description)
	fmt.Fprintf(&b, "Best for: %s\n", strings.Join(s.BestFor, ", "))
	fmt.Fprintf(&b, "Components: %s", renderPairs(s.Components))
	return b.String()
}

func (s TechStack) metadata() models.Metadata {
	return models.Metadata{
		Type: models.CategoryTechStack,
		Name: s.Name,
	}
}

func renderGroups(groups map[string][]string) string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(groups[k], ", ")))
	}
	return strings.Join(parts, "; ")
}

func renderPairs(pairs map[string]string) string {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, pairs[k]))
	}
	return strings.Join(parts, "; ")
}
