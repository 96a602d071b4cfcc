package predcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/surfapp/recommender/internal/domain/recommend"
)

// ValkeyCache shares the prediction slot across replicas. The fresh key
// expires with the TTL; the stale key is only ever overwritten, so the last
// known-good set survives upstream outages.
type ValkeyCache struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyCache constructs a cache backed by a Valkey-compatible database.
func NewValkeyCache(client valkey.Client, prefix string, ttl time.Duration) *ValkeyCache {
	if prefix == "" {
		prefix = "predictions"
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ValkeyCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *ValkeyCache) Get(ctx context.Context) ([]recommend.SpotForecast, bool, error) {
	return c.read(ctx, c.freshKey())
}

func (c *ValkeyCache) GetStale(ctx context.Context) ([]recommend.SpotForecast, bool, error) {
	return c.read(ctx, c.staleKey())
}

func (c *ValkeyCache) Put(ctx context.Context, data []recommend.SpotForecast) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	ttl := c.ttl
	if ttl < time.Second {
		ttl = time.Second
	}
	if err := c.client.Do(ctx, c.client.B().Set().Key(c.freshKey()).Value(string(payload)).Ex(ttl).Build()).Error(); err != nil {
		return err
	}
	return c.client.Do(ctx, c.client.B().Set().Key(c.staleKey()).Value(string(payload)).Build()).Error()
}

func (c *ValkeyCache) read(ctx context.Context, key string) ([]recommend.SpotForecast, bool, error) {
	result := c.client.Do(ctx, c.client.B().Get().Key(key).Build())
	payload, err := result.ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var data []recommend.SpotForecast
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (c *ValkeyCache) freshKey() string {
	return c.prefix + ":fresh"
}

func (c *ValkeyCache) staleKey() string {
	return c.prefix + ":stale"
}

var _ recommend.PredictionCache = (*ValkeyCache)(nil)
