// ABOUTME: Redis blob store implementation using go-redis and ReJSON
// ABOUTME: Persists the article document as a single JSON value under one key

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nitishm/go-rejson/v4"
	goredis "github.com/redis/go-redis/v9"

	"readstash-api/pkg/config"
)

// DefaultBlobKey is the Redis key holding the persisted article document.
const DefaultBlobKey = "readstash:articles"

// RedisBlobStore implements the BlobStore interface using Redis JSON storage
type RedisBlobStore struct {
	client  *goredis.Client
	handler *rejson.Handler
	key     string
}

// NewRedisBlobStore creates a Redis-backed blob store and verifies the connection
func NewRedisBlobStore(cfg config.RedisConfig) (*RedisBlobStore, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClient(client)

	return &RedisBlobStore{
		client:  client,
		handler: handler,
		key:     DefaultBlobKey,
	}, nil
}

// ReadBlob retrieves the persisted document, returning nil when none exists
func (s *RedisBlobStore) ReadBlob(ctx context.Context) ([]byte, error) {
	val, err := s.handler.JSONGet(s.key, ".")
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	data, ok := val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected redis JSON value type %T", val)
	}

	return data, nil
}

// WriteBlob replaces the persisted document
func (s *RedisBlobStore) WriteBlob(ctx context.Context, data []byte) error {
	if !json.Valid(data) {
		return errors.New("blob is not valid JSON")
	}

	_, err := s.handler.JSONSet(s.key, ".", json.RawMessage(data))
	return err
}

// Close closes the Redis connection
func (s *RedisBlobStore) Close() error {
	return s.client.Close()
}
