package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"kelasboard/internal/livesync"
)

// SnapshotCache keeps the last applied dashboard state in redis so a
// restarted front end can paint something while the backend is down.
type SnapshotCache struct {
	r   *Redis
	key string
	ttl time.Duration
}

type snapshotRecord struct {
	SavedAt time.Time      `json:"saved_at"`
	State   livesync.State `json:"state"`
}

// NewSnapshotCache builds a cache on the given key.
func NewSnapshotCache(r *Redis, key string) *SnapshotCache {
	if key == "" {
		key = "kelasboard:snapshot"
	}
	return &SnapshotCache{r: r, key: key, ttl: 24 * time.Hour}
}

// Save persists the state with a save timestamp.
func (c *SnapshotCache) Save(ctx context.Context, st livesync.State) error {
	b, err := json.Marshal(snapshotRecord{SavedAt: time.Now().UTC(), State: st})
	if err != nil {
		return err
	}
	return c.r.Client.Set(ctx, c.key, b, c.ttl).Err()
}

// Load returns the persisted state and when it was saved. A missing key
// returns a zero time and no error.
func (c *SnapshotCache) Load(ctx context.Context) (livesync.State, time.Time, error) {
	b, err := c.r.Client.Get(ctx, c.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return livesync.State{}, time.Time{}, nil
		}
		return livesync.State{}, time.Time{}, err
	}
	var rec snapshotRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return livesync.State{}, time.Time{}, err
	}
	return rec.State, rec.SavedAt, nil
}
