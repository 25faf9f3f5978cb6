package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tokenregistry/internal/platform/config"
)

func TestNew(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		c, err := New(context.Background(), config.RedisConfig{})
		require.ErrorIs(t, err, ErrNotConfigured)
		require.Nil(t, c)
	})

	t.Run("malformed url", func(t *testing.T) {
		_, err := New(context.Background(), config.RedisConfig{URL: "http://not-redis"})
		require.ErrorContains(t, err, "parse redis URL")
	})
}
