package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/job-board/internal/domain"
)

const (
	jobsVersionKey = "jobs:list:version"
	jobsKeyPrefix  = "jobs:list"
)

// JobListCache caches job listing results in Redis. Entries are keyed by a
// generation counter, so bumping the counter retires every cached listing.
type JobListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewJobListCache returns a cache bound to client.
func NewJobListCache(client *redis.Client, ttl time.Duration) *JobListCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &JobListCache{client: client, ttl: ttl}
}

// Generation returns the current listing generation. Callers read it once,
// before loading from the database, and pass it to both Get and Set: a
// listing loaded before an Invalidate is then stored under the retired
// generation and never served.
func (c *JobListCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, jobsVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Get returns the listing cached for filter in generation gen, if present.
func (c *JobListCache) Get(ctx context.Context, gen int64, filter domain.JobFilter) ([]domain.Job, bool, error) {
	key, err := entryKey(gen, filter)
	if err != nil {
		return nil, false, err
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var jobs []domain.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, false, fmt.Errorf("decode cached jobs: %w", err)
	}
	return jobs, true, nil
}

// Set stores a listing for filter under generation gen.
func (c *JobListCache) Set(ctx context.Context, gen int64, filter domain.JobFilter, jobs []domain.Job) error {
	key, err := entryKey(gen, filter)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(jobs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate retires all cached listings.
func (c *JobListCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, jobsVersionKey).Err()
}

func entryKey(gen int64, filter domain.JobFilter) (string, error) {
	digest, err := FilterDigest(filter)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d:%s", jobsKeyPrefix, gen, digest), nil
}

// FilterDigest returns a stable identifier for a filter.
func FilterDigest(filter domain.JobFilter) (string, error) {
	raw, err := json.Marshal(filter)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:16]), nil
}
