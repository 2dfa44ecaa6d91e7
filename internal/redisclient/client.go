package redisclient

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client wraps redis as a best-effort cache for generated marketing copy.
// Nothing in it is authoritative: a miss or an error just means the copy
// service calls the generator again.
type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client and verifies connectivity.
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// copyKey derives the cache key for a prompt. Prompts are hashed so long
// free-form text never becomes a key.
func copyKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("copy:%s", hex.EncodeToString(sum[:16]))
}

// GetCopy retrieves cached copy for a prompt. A missing key is returned as
// an empty string with no error.
func (c *Client) GetCopy(ctx context.Context, prompt string) (string, error) {
	text, err := c.rdb.Get(ctx, copyKey(prompt)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("copy cache get failed: %w", err)
	}
	return text, nil
}

// SetCopy stores generated copy for a prompt with a TTL.
func (c *Client) SetCopy(ctx context.Context, prompt, text string, ttl time.Duration) error {
	return c.rdb.Set(ctx, copyKey(prompt), text, ttl).Err()
}
