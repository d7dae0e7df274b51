// README: Conversation persistence constants.
package conversation

import "time"

const (
	// MaxHistoryMessages bounds how many chat turns are retained per user.
	MaxHistoryMessages = 40
	// HistoryTTL is how long an idle conversation survives in Redis.
	HistoryTTL = 7 * 24 * time.Hour
)
