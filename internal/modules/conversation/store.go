// README: Trip preference and itinerary persistence backed by PostgreSQL.
package conversation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles user_trips persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// SavePreferences upserts the user's formatted prompt and raw answers. It is
// called before the model, so a later generation failure still leaves the
// preferences recorded.
func (s *Store) SavePreferences(ctx context.Context, uid, prompt string, answers map[string]any) error {
	encoded, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO user_trips (uid, prompt, answers, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (uid) DO UPDATE SET
			prompt = EXCLUDED.prompt,
			answers = EXCLUDED.answers,
			updated_at = now()
	`, uid, prompt, string(encoded))
	return err
}

// SaveItinerary upserts the generated itinerary text for the user.
func (s *Store) SaveItinerary(ctx context.Context, uid, itinerary string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO user_trips (uid, itinerary, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (uid) DO UPDATE SET
			itinerary = EXCLUDED.itinerary,
			updated_at = now()
	`, uid, itinerary)
	return err
}
