package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartair/travelsearch/internal/aggregator"
	"github.com/smartair/travelsearch/internal/models"
)

// Cache memoizes multi-date aggregation results per search criteria. Offers
// drift slowly upstream, so a short TTL saves the expensive weekly fan-out
// on repeated searches without serving stale winners.
type Cache interface {
	Get(ctx context.Context, req models.SearchRequest) (*aggregator.Result, bool)
	Set(ctx context.Context, req models.SearchRequest, result *aggregator.Result) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
		TTL:  10 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, req models.SearchRequest) (*aggregator.Result, bool) {
	data, err := c.client.Get(ctx, generateKey(req)).Bytes()
	if err != nil {
		return nil, false
	}

	var result aggregator.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}
	if result.Aggregation == nil {
		return nil, false
	}

	return &result, true
}

func (c *RedisCache) Set(ctx context.Context, req models.SearchRequest, result *aggregator.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, generateKey(req), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, req models.SearchRequest) (*aggregator.Result, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, req models.SearchRequest, result *aggregator.Result) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// The key covers everything that changes the merge. Months matters because it
// widens the candidate-date window; the day boundary matters because the
// window starts at "today".
func generateKey(req models.SearchRequest) string {
	keyData := struct {
		Origin      string
		Destination string
		Months      int
		Day         string
	}{
		Origin:      req.Origin,
		Destination: req.Destination,
		Months:      req.Months,
		Day:         time.Now().Format("2006-01-02"),
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "flightsearch:" + hex.EncodeToString(hash[:])
}
