// README: Per-user chat history backed by Redis lists.
package conversation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"wayfarer/internal/ai"
)

// HistoryStore keeps the rolling chat history of each user in Redis so a
// returning client can resume a conversation without resending it.
type HistoryStore struct {
	redis *redis.Client
}

// NewHistoryStore returns a HistoryStore backed by the given client.
func NewHistoryStore(client *redis.Client) *HistoryStore {
	return &HistoryStore{redis: client}
}

func historyKey(uid string) string {
	return "convo:history:" + uid
}

// Save replaces the stored history with the given one, trimmed to the most
// recent MaxHistoryMessages turns, and refreshes the TTL.
func (s *HistoryStore) Save(ctx context.Context, uid string, history []ai.Message) error {
	key := historyKey(uid)

	pipe := s.redis.TxPipeline()
	pipe.Del(ctx, key)
	for _, m := range history {
		encoded, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("encode history message: %w", err)
		}
		pipe.RPush(ctx, key, encoded)
	}
	pipe.LTrim(ctx, key, int64(-MaxHistoryMessages), -1)
	pipe.Expire(ctx, key, HistoryTTL)

	_, err := pipe.Exec(ctx)
	return err
}

// Load returns the stored history for the user, oldest first. A user with no
// stored conversation gets an empty history, not an error.
func (s *HistoryStore) Load(ctx context.Context, uid string) ([]ai.Message, error) {
	raw, err := s.redis.LRange(ctx, historyKey(uid), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	history := make([]ai.Message, 0, len(raw))
	for _, item := range raw {
		var m ai.Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, fmt.Errorf("decode history message: %w", err)
		}
		history = append(history, m)
	}
	return history, nil
}
