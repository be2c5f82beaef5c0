package cache

import (
	"fmt"

	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/config"
	"go.uber.org/zap"
)

// CounterStoreFactory creates counter stores based on configuration
type CounterStoreFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// CounterStoreFactoryOption is a functional option for configuring the factory
type CounterStoreFactoryOption func(*CounterStoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) CounterStoreFactoryOption {
	return func(f *CounterStoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to in-memory store when Redis is unavailable
// Default is true (allow fallback)
func WithInMemoryFallback(allow bool) CounterStoreFactoryOption {
	return func(f *CounterStoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewCounterStoreFactory creates a new factory
func NewCounterStoreFactory(cfg config.RedisConfig, opts ...CounterStoreFactoryOption) *CounterStoreFactory {
	f := &CounterStoreFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateRedisStore creates a Redis-based counter store
func (f *CounterStoreFactory) CreateRedisStore() (*RedisCounterStore, error) {
	store, err := NewRedisCounterStore(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis counter store: %w", err)
	}
	return store, nil
}

// CreateStore returns a Redis store when Redis is enabled and reachable.
// Otherwise it falls back to an in-memory store if fallback is allowed.
func (f *CounterStoreFactory) CreateStore() (CounterStore, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-memory counter store")
		return NewInMemoryCounterStore(), nil
	}

	store, err := f.CreateRedisStore()
	if err == nil {
		f.logger.Info("using Redis counter store")
		return store, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for counters but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory counter store. "+
		"Rate limits will not be shared across instances.",
		zap.Error(err),
	)
	return NewInMemoryCounterStore(), nil
}
