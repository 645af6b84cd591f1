package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/promptcraft/backend/internal/knowledge"
	"github.com/promptcraft/backend/internal/llm"
)

const schemaContextResults = 2

// ArchitectureAgent turns free-text prompts into long-form architecture
// documents. The knowledge base is optional: when present its retrieval
// context is prepended to the prompt, when nil or failing the agent generates
// from the prompt alone.
type ArchitectureAgent struct {
	generator llm.Generator
	kb        *knowledge.Service
	logger    *zap.Logger
}

// NewArchitectureAgent creates an agent. kb may be nil.
func NewArchitectureAgent(generator llm.Generator, kb *knowledge.Service, logger *zap.Logger) *ArchitectureAgent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArchitectureAgent{generator: generator, kb: kb, logger: logger}
}

// Generate produces a system architecture recommendation for prompt.
// extraContext is caller-supplied background carried into the prompt verbatim.
func (a *ArchitectureAgent) Generate(ctx context.Context, prompt, extraContext string) (string, error) {
	kbContext := a.architectureContext(ctx, prompt)

	var b strings.Builder
	fmt.Fprintf(&b, "User Request: %s\n\n", prompt)
	if extraContext != "" {
		fmt.Fprintf(&b, "Additional Context: %s\n\n", extraContext)
	}
	fmt.Fprintf(&b, "Reference Information from Knowledge Base:\n%s\n\n", kbContext)
	b.WriteString("Based on the user's request and the reference architectures above, " +
		"provide a comprehensive system architecture recommendation. Include specific " +
		"technologies, design patterns, and scalability considerations.")

	return a.generate(ctx, b.String(), architectureSystemPrompt)
}

// GenerateDatabaseSchema produces a database design for prompt, seeded with
// the closest corpus documents.
func (a *ArchitectureAgent) GenerateDatabaseSchema(ctx context.Context, prompt string) (string, error) {
	var kbContext string
	if a.kb != nil {
		matches, err := a.kb.Query(ctx, prompt, schemaContextResults, "")
		if err != nil {
			a.logger.Warn("schema retrieval failed, generating without context", zap.Error(err))
		} else {
			contents := make([]string, len(matches))
			for i, m := range matches {
				contents[i] = m.Content
			}
			kbContext = strings.Join(contents, "\n")
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User Request: %s\n\n", prompt)
	fmt.Fprintf(&b, "Reference Information:\n%s\n\n", kbContext)
	b.WriteString("Design a comprehensive database schema for this use case. Include:\n" +
		"1. Entity relationship diagram description\n" +
		"2. Table/collection definitions with data types\n" +
		"3. Indexes and constraints\n" +
		"4. Query patterns and optimization\n" +
		"5. Scaling strategy")

	return a.generate(ctx, b.String(), databaseSystemPrompt)
}

// GenerateAPIDesign produces an API specification for prompt. API design needs
// no retrieval context; the system prompt carries the structure.
func (a *ArchitectureAgent) GenerateAPIDesign(ctx context.Context, prompt string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "User Request: %s\n\n", prompt)
	b.WriteString("Design a comprehensive API specification including:\n" +
		"1. Resource endpoints with HTTP methods\n" +
		"2. Request/response schemas\n" +
		"3. Authentication approach\n" +
		"4. Error handling\n" +
		"5. Pagination and filtering\n" +
		"6. Rate limiting strategy")

	return a.generate(ctx, b.String(), apiSystemPrompt)
}

// GeneratePromptTemplate produces prompt templates for AI coding assistants.
func (a *ArchitectureAgent) GeneratePromptTemplate(ctx context.Context, prompt string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "User Request: %s\n\n", prompt)
	b.WriteString("Create effective prompt templates for AI coding assistants that will help with this use case. Include:\n" +
		"1. System/role prompts\n" +
		"2. Task-specific prompts\n" +
		"3. Context setting examples\n" +
		"4. Output format specifications")

	return a.generate(ctx, b.String(), promptsSystemPrompt)
}

func (a *ArchitectureAgent) generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	out, err := a.generator.Generate(ctx, prompt, systemPrompt)
	if err != nil {
		return "", fmt.Errorf("architecture agent: %w", err)
	}
	return out, nil
}

func (a *ArchitectureAgent) architectureContext(ctx context.Context, prompt string) string {
	if a.kb == nil {
		return ""
	}
	kbContext, err := a.kb.ArchitectureContext(ctx, prompt)
	if err != nil {
		a.logger.Warn("architecture retrieval failed, generating without context", zap.Error(err))
		return ""
	}
	return kbContext
}
