package llm

import "context"

// Generator produces text from a user prompt under a system instruction.
// Implementations must be safe for concurrent use.
type Generator interface {
	// Generate returns the model output for prompt. A successful call never
	// returns an empty string; providers substitute a fallback message when
	// the model produces no text.
	Generate(ctx context.Context, prompt, systemPrompt string) (string, error)

	// Close releases provider resources.
	Close() error
}

// emptyResponseFallback is returned in place of an empty model output so
// callers and clients always receive displayable content.
const emptyResponseFallback = "I apologize, but I couldn't generate a response for this request. " +
	"Please try rephrasing your question."
