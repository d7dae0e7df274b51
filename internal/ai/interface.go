// README: Contract for the generative model collaborator.
package ai

import "context"

// Generator is the narrow contract the planner has with the language model.
// The model is a black box: a prompt goes in, plain text comes out. The
// interface allows swapping providers (Gemini, OpenAI, etc.) later.
type Generator interface {
	// Generate produces itinerary text from a fully assembled prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// Chat continues a conversation. The returned history includes the new
	// user message and the model's reply.
	Chat(ctx context.Context, message string, history []Message) (string, []Message, error)
}
