package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const dlqKey = "jobs:dlq"

// DLQEntry preserves a permanently failed job plus its failure context
// so it can be inspected and requeued by hand.
type DLQEntry struct {
	Queue    string          `json:"queue"`
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Error    string          `json:"error"`
	Attempts int             `json:"attempts"`
	FailedAt time.Time       `json:"failed_at"`
}

func SendToDLQ(ctx context.Context, rdb *redis.Client, queue, jobType string, payload json.RawMessage, errMsg string, attempts int) {
	entry := DLQEntry{
		Queue:    queue,
		Type:     jobType,
		Payload:  payload,
		Error:    errMsg,
		Attempts: attempts,
		FailedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal DLQ entry")
		return
	}
	if err := rdb.LPush(ctx, dlqKey, data).Err(); err != nil {
		log.Error().Err(err).Msg("failed to push to DLQ")
		return
	}
	log.Warn().
		Str("queue", queue).
		Str("type", jobType).
		Int("attempts", attempts).
		Str("error", errMsg).
		Msg("job sent to DLQ")
}

// DLQLength reports the number of dead jobs pending inspection.
func DLQLength(ctx context.Context, rdb *redis.Client) (int64, error) {
	return rdb.LLen(ctx, dlqKey).Result()
}
