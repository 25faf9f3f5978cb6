package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenregistry/internal/audit"
	"tokenregistry/internal/registry"
	"tokenregistry/pkg/domain"
)

var (
	regA  = domain.DeriveAddress([]byte("registry-a"))
	regB  = domain.DeriveAddress([]byte("registry-b"))
	alice = domain.DeriveAddress([]byte("alice"))
)

func record(kind registry.EventKind, reg domain.Address, id domain.TokenID, block uint64) audit.Record {
	return audit.FromEvent(context.Background(), registry.Event{
		Kind:     kind,
		Registry: reg,
		TokenID:  id,
		To:       alice,
		Block:    block,
	})
}

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("registry history is newest first and limited", func(t *testing.T) {
		s := NewInMemoryStore()
		require.NoError(t, s.Append(ctx,
			record(registry.EventTransfer, regA, 1, 1),
			record(registry.EventLocked, regA, 1, 2),
			record(registry.EventTransfer, regA, 2, 3),
		))

		got, err := s.ListByRegistry(ctx, regA, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, uint64(3), got[0].Block)
		assert.Equal(t, uint64(2), got[1].Block)

		all, err := s.ListByRegistry(ctx, regA, 0)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("token history is oldest first and scoped", func(t *testing.T) {
		s := NewInMemoryStore()
		require.NoError(t, s.Append(ctx,
			record(registry.EventTransfer, regA, 1, 1),
			record(registry.EventTransfer, regB, 1, 2),
			record(registry.EventLocked, regA, 1, 3),
			record(registry.EventApprovalForAll, regA, 0, 4),
		))

		got, err := s.ListByToken(ctx, regA, 1)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, registry.EventTransfer, got[0].Kind)
		assert.Equal(t, registry.EventLocked, got[1].Kind)

		none, err := s.ListByToken(ctx, regA, 0)
		require.NoError(t, err)
		assert.Empty(t, none, "registry-wide records are not token history")
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		s := NewInMemoryStore()
		require.NoError(t, s.Append(ctx, record(registry.EventTransfer, regA, 1, 1)))

		got, err := s.ListByToken(ctx, regA, 1)
		require.NoError(t, err)
		got[0].Block = 99

		again, err := s.ListByToken(ctx, regA, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), again[0].Block)
	})

	t.Run("clear", func(t *testing.T) {
		s := NewInMemoryStore()
		require.NoError(t, s.Append(ctx, record(registry.EventTransfer, regA, 1, 1)))
		s.Clear()

		got, err := s.ListByRegistry(ctx, regA, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("concurrent appends", func(t *testing.T) {
		s := NewInMemoryStore()
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = s.Append(ctx, record(registry.EventTransfer, regA, domain.TokenID(i), uint64(i)))
			}()
		}
		wg.Wait()

		got, err := s.ListByRegistry(ctx, regA, 0)
		require.NoError(t, err)
		assert.Len(t, got, 50)
	})
}
