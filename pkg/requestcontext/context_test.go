package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tokenregistry/pkg/domain"
)

func TestCaller(t *testing.T) {
	ctx := context.Background()
	assert.True(t, Caller(ctx).IsZero(), "missing caller is anonymous")

	alice := domain.DeriveAddress([]byte("alice"))
	assert.Equal(t, alice, Caller(WithCaller(ctx, alice)))
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))
	assert.Equal(t, "req-1", RequestID(WithRequestID(ctx, "req-1")))
}

func TestNow(t *testing.T) {
	fixed := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, fixed, Now(WithTime(context.Background(), fixed)))
	assert.WithinDuration(t, time.Now(), Now(context.Background()), time.Second)
}
