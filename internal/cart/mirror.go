package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const mirrorTTL = 24 * time.Hour

// Mirror caches the latest cart snapshot in redis so the SSE visibility path
// can read cart membership without a database round trip. Best effort: a
// failed write is logged by the caller and the database remains the source
// of truth.
type Mirror struct {
	rdb *redis.Client
}

func NewMirror(rdb *redis.Client) *Mirror {
	return &Mirror{rdb: rdb}
}

func mirrorKey(userID int) string {
	return fmt.Sprintf("driveslot:cart:%d", userID)
}

func (m *Mirror) Set(ctx context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return m.rdb.Set(ctx, mirrorKey(c.UserID), data, mirrorTTL).Err()
}

// Get returns the cached cart, or (nil, nil) on a miss.
func (m *Mirror) Get(ctx context.Context, userID int) (*Cart, error) {
	data, err := m.rdb.Get(ctx, mirrorKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (m *Mirror) Invalidate(ctx context.Context, userID int) error {
	return m.rdb.Del(ctx, mirrorKey(userID)).Err()
}
