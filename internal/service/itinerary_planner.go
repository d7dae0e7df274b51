// README: Itinerary planner orchestrating context compilation, the model, and persistence.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"wayfarer/internal/ai"
	"wayfarer/internal/modules/briefing"
	"wayfarer/internal/prompt"
)

// ErrEmptyPrompt is returned when the caller supplied no usable text. The
// model call is skipped entirely in that case.
var ErrEmptyPrompt = errors.New("prompt text is required")

// ContextCompiler compiles destination context for a query. Satisfied by
// *briefing.Compiler.
type ContextCompiler interface {
	Compile(ctx context.Context, q briefing.DestinationQuery) (briefing.ContextBundle, string)
}

// ConversationStore persists preferences, itineraries, and chat history.
// Satisfied by *conversation.Service.
type ConversationStore interface {
	RecordPreferences(ctx context.Context, uid, prompt string, answers map[string]any) error
	RecordItinerary(ctx context.Context, uid, itinerary string) error
	SaveHistory(ctx context.Context, uid string, history []ai.Message) error
	LoadHistory(ctx context.Context, uid string) ([]ai.Message, error)
}

// PlanRequest carries one itinerary generation request.
type PlanRequest struct {
	Destination   string
	Prompt        string // the user's formatted answers, already flattened by the client
	CustomRequest string
	Interests     []string
	Dietary       []string
	Budget        string
	Answers       map[string]any // raw answers, persisted verbatim
}

// Planner wires the context pipeline, the prompt template, the model, and the
// conversation store into the two itinerary operations.
type Planner struct {
	compiler  ContextCompiler
	generator ai.Generator
	convo     ConversationStore
	template  string
	logger    *zap.Logger
}

// NewPlanner creates a Planner. The template is loaded once at startup and
// reused read-only across requests.
func NewPlanner(compiler ContextCompiler, generator ai.Generator, convo ConversationStore, template string, logger *zap.Logger) *Planner {
	return &Planner{
		compiler:  compiler,
		generator: generator,
		convo:     convo,
		template:  template,
		logger:    logger,
	}
}

// Generate runs the full pipeline for one request: compile destination
// context, assemble the prompt, call the model, persist. An empty prompt
// skips the model call and returns ErrEmptyPrompt. Persistence failures are
// logged but never fail the request; uid may be empty for anonymous callers,
// which skips persistence altogether.
func (p *Planner) Generate(ctx context.Context, uid string, req PlanRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", ErrEmptyPrompt
	}

	_, rendered := p.compiler.Compile(ctx, briefing.DestinationQuery{
		Name:      req.Destination,
		Interests: req.Interests,
		Dietary:   req.Dietary,
		Budget:    req.Budget,
	})

	assembled := prompt.Assemble(p.template, req.Prompt, req.CustomRequest, rendered)

	if uid != "" {
		if err := p.convo.RecordPreferences(ctx, uid, req.Prompt, req.Answers); err != nil {
			p.logger.Warn("failed to record preferences", zap.String("uid", uid), zap.Error(err))
		}
	}

	itinerary, err := p.generator.Generate(ctx, assembled)
	if err != nil {
		return "", fmt.Errorf("generate itinerary: %w", err)
	}

	if uid != "" {
		if err := p.convo.RecordItinerary(ctx, uid, itinerary); err != nil {
			p.logger.Warn("failed to record itinerary", zap.String("uid", uid), zap.Error(err))
		}
	}
	return itinerary, nil
}

// Chat continues an itinerary conversation. When the client sends no history
// and the caller is authenticated, the stored history is used instead. The
// updated history is persisted for authenticated callers and always returned
// to the client.
func (p *Planner) Chat(ctx context.Context, uid, message string, history []ai.Message) (string, []ai.Message, error) {
	if strings.TrimSpace(message) == "" {
		return "", nil, ErrEmptyPrompt
	}

	if uid != "" && len(history) == 0 {
		stored, err := p.convo.LoadHistory(ctx, uid)
		if err != nil {
			p.logger.Warn("failed to load chat history", zap.String("uid", uid), zap.Error(err))
		} else {
			history = stored
		}
	}

	reply, updated, err := p.generator.Chat(ctx, message, history)
	if err != nil {
		return "", nil, fmt.Errorf("chat: %w", err)
	}

	if uid != "" {
		if err := p.convo.SaveHistory(ctx, uid, updated); err != nil {
			p.logger.Warn("failed to save chat history", zap.String("uid", uid), zap.Error(err))
		}
	}
	return reply, updated, nil
}
