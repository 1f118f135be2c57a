package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const feedTTL = 24 * time.Hour

// Feed is the short-lived status-change ticker kept in Redis. Unlike the
// notifications table, entries here expire on their own: the feed covers
// "what just changed", the table covers "what I was told".
type Feed struct {
	redis *redis.Client
}

func NewFeed(rdb *redis.Client) *Feed {
	return &Feed{redis: rdb}
}

func feedKey(userID uint) string {
	return fmt.Sprintf("uniteam:feed:%d", userID)
}

// Push appends a message to the user's feed and refreshes its expiry.
func (f *Feed) Push(ctx context.Context, userID uint, message string) error {
	if f.redis == nil {
		return nil
	}
	key := feedKey(userID)
	entry := fmt.Sprintf("%s|%s", time.Now().UTC().Format(time.RFC3339), message)
	if err := f.redis.RPush(ctx, key, entry).Err(); err != nil {
		return err
	}
	return f.redis.Expire(ctx, key, feedTTL).Err()
}

// List returns the user's pending feed entries, oldest first.
func (f *Feed) List(ctx context.Context, userID uint) ([]string, error) {
	if f.redis == nil {
		return nil, nil
	}
	return f.redis.LRange(ctx, feedKey(userID), 0, -1).Result()
}

// Clear drops the user's feed, typically once the client has displayed it.
func (f *Feed) Clear(ctx context.Context, userID uint) error {
	if f.redis == nil {
		return nil
	}
	return f.redis.Del(ctx, feedKey(userID)).Err()
}
