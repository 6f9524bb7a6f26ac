package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RunLedger records which (run, period) pairs have already been
// generated, so a restarted worker does not regenerate a period it
// published before its last restart. The artifact tree itself stays
// the source of truth; the ledger only suppresses redundant runs.
type RunLedger struct {
	rdb *redis.Client
}

func NewRunLedger(rdb *redis.Client) *RunLedger {
	return &RunLedger{rdb: rdb}
}

func publishedKey(run, period string) string {
	return fmt.Sprintf("curator:published:%s:%s", run, period)
}

// IsPublished reports whether the run already completed for the period.
func (l *RunLedger) IsPublished(ctx context.Context, run, period string) (bool, error) {
	_, err := l.rdb.Get(ctx, publishedKey(run, period)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MarkPublished records a completed run for the period. Entries expire
// well after they stop mattering.
func (l *RunLedger) MarkPublished(ctx context.Context, run, period string) error {
	return l.rdb.Set(ctx, publishedKey(run, period), "1", 45*24*time.Hour).Err()
}
