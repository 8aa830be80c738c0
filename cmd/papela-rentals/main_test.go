package main

import (
	"testing"

	"github.com/aaravmahajanofficial/papela-rentals/internal/cache"
	"github.com/aaravmahajanofficial/papela-rentals/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestCloseIdentityStorage(t *testing.T) {

	cacheCfg := &config.CacheConfig{}

	t.Run("Success - Redis client closed", func(t *testing.T) {
		// Arrange
		client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
		storage := cache.NewRedisCache(client, cacheCfg)

		// Act
		closeIdentityStorage(storage, client)

		// Assert
		assert.ErrorIs(t, client.Ping(t.Context()).Err(), redis.ErrClosed)
	})

	t.Run("Success - Memory mode without redis", func(t *testing.T) {
		// Arrange
		storage := cache.NewMemoryCache(cacheCfg)

		// Act & Assert
		assert.NotPanics(t, func() { closeIdentityStorage(storage, nil) })
	})
}
