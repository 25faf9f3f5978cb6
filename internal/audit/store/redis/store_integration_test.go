//go:build integration

package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"tokenregistry/internal/audit"
	auditredis "tokenregistry/internal/audit/store/redis"
	"tokenregistry/internal/registry"
	"tokenregistry/pkg/domain"
	"tokenregistry/pkg/testutil/containers"
)

type StreamStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *auditredis.StreamStore
}

func TestStreamStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(StreamStoreSuite))
}

func (s *StreamStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.store = auditredis.New(s.redis.Client, auditredis.WithPrefix("test-audit"))
}

func (s *StreamStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

var (
	reg   = domain.DeriveAddress([]byte("stream-registry"))
	owner = domain.DeriveAddress([]byte("stream-owner"))
)

func rec(kind registry.EventKind, id domain.TokenID, block uint64) audit.Record {
	return audit.FromEvent(context.Background(), registry.Event{
		Kind: kind, Registry: reg, TokenID: id, To: owner, Block: block,
		Master: &registry.TokenRef{Registry: reg, TokenID: 7},
	})
}

func (s *StreamStoreSuite) TestAppendAndList() {
	ctx := context.Background()
	first := rec(registry.EventTransfer, 1, 1)
	s.Require().NoError(s.store.Append(ctx,
		first,
		rec(registry.EventLocked, 1, 2),
		rec(registry.EventApprovalForAll, 0, 3),
	))

	latest, err := s.store.ListByRegistry(ctx, reg, 2)
	s.Require().NoError(err)
	s.Require().Len(latest, 2)
	s.Equal(uint64(3), latest[0].Block)
	s.Equal(uint64(2), latest[1].Block)

	history, err := s.store.ListByToken(ctx, reg, 1)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(first.ID, history[0].ID)
	s.Equal(owner, history[0].To)
	s.Require().NotNil(history[0].Master)
	s.Equal(domain.TokenID(7), history[0].Master.TokenID)
}

func (s *StreamStoreSuite) TestUnknownStreamsAreEmpty() {
	ctx := context.Background()
	got, err := s.store.ListByToken(ctx, reg, 404)
	s.Require().NoError(err)
	s.Empty(got)

	got, err = s.store.ListByRegistry(ctx, reg, 0)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *StreamStoreSuite) TestStreamLayout() {
	ctx := context.Background()
	s.Require().NoError(s.store.Append(ctx,
		rec(registry.EventTransfer, 1, 1),
		rec(registry.EventApprovalForAll, 0, 2),
	))

	keys, err := s.redis.Keys(ctx, "test-audit:*")
	s.Require().NoError(err)
	s.Equal([]string{
		"test-audit:registry:" + reg.String(),
		"test-audit:token:" + reg.String() + ":1",
	}, keys)
}
