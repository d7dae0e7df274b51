// README: Conversation service combining trip persistence and chat history.
package conversation

import (
	"context"

	"wayfarer/internal/ai"
)

// Service is the narrow persistence contract the planner depends on. It only
// writes after compiling context and receiving model output; nothing is ever
// read back into the pipeline.
type Service struct {
	store   *Store
	history *HistoryStore
}

// NewService creates a Service over the Postgres store and the Redis history.
func NewService(store *Store, history *HistoryStore) *Service {
	return &Service{store: store, history: history}
}

// RecordPreferences persists the user's prompt and structured answers.
func (s *Service) RecordPreferences(ctx context.Context, uid, prompt string, answers map[string]any) error {
	return s.store.SavePreferences(ctx, uid, prompt, answers)
}

// RecordItinerary persists the generated itinerary text.
func (s *Service) RecordItinerary(ctx context.Context, uid, itinerary string) error {
	return s.store.SaveItinerary(ctx, uid, itinerary)
}

// SaveHistory replaces the user's stored chat history.
func (s *Service) SaveHistory(ctx context.Context, uid string, history []ai.Message) error {
	return s.history.Save(ctx, uid, history)
}

// LoadHistory returns the user's stored chat history, oldest first.
func (s *Service) LoadHistory(ctx context.Context, uid string) ([]ai.Message, error) {
	return s.history.Load(ctx, uid)
}
