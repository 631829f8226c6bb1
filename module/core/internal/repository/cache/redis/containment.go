package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/cache"
)

var _ cache.ContainmentStore = (*ContainmentStore)(nil)

// ContainmentStore keeps the per-vehicle containing-geofence set in a
// Redis set. The TTL bounds staleness for vehicles that stop reporting;
// an expired key simply re-notifies on the next contained reading.
type ContainmentStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewContainmentStore(client *redis.Client, ttl time.Duration) *ContainmentStore {
	return &ContainmentStore{client: client, ttl: ttl}
}

func containmentKey(vehicleID string) string {
	return fmt.Sprintf("vehicle:%s:geofences", vehicleID)
}

func (s *ContainmentStore) LastContained(ctx context.Context, vehicleID string) ([]string, error) {
	names, err := s.client.SMembers(ctx, containmentKey(vehicleID)).Result()
	if err != nil {
		return nil, fmt.Errorf("containment read for %s: %w", vehicleID, err)
	}
	return names, nil
}

func (s *ContainmentStore) SetContained(ctx context.Context, vehicleID string, locationNames []string) error {
	key := containmentKey(vehicleID)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	if len(locationNames) > 0 {
		members := make([]interface{}, len(locationNames))
		for i, n := range locationNames {
			members[i] = n
		}
		pipe.SAdd(ctx, key, members...)
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("containment write for %s: %w", vehicleID, err)
	}
	return nil
}
