package registry

import (
	"context"
	"sync"

	"tokenregistry/pkg/domain"
	dErrors "tokenregistry/pkg/domain-errors"
)

func (s *RegistrySuite) TestDeploy() {
	s.Run("deployer administers the registry", func() {
		r, err := s.ledger.Deploy(as(alice), "Other", "OTH")
		s.Require().NoError(err)
		s.Equal(alice, r.Admin())
		s.Equal("Other", r.Name())
		s.Equal("OTH", r.Symbol())

		found, err := s.ledger.Registry(r.Address())
		s.Require().NoError(err)
		s.Same(r, found)
	})

	s.Run("addresses are distinct per deployment", func() {
		a, err := s.ledger.Deploy(as(alice), "Same", "S")
		s.Require().NoError(err)
		b, err := s.ledger.Deploy(as(alice), "Same", "S")
		s.Require().NoError(err)
		s.NotEqual(a.Address(), b.Address())
		s.Len(s.ledger.Registries(), 4)
	})

	s.Run("unknown registry", func() {
		_, err := s.ledger.Registry(domain.DeriveAddress([]byte("missing")))
		s.ErrorIs(err, ErrRegistryNotFound)
		_, err = s.ledger.Collection(domain.DeriveAddress([]byte("missing")))
		s.ErrorIs(err, ErrRegistryNotFound)
	})
}

func (s *RegistrySuite) TestSubscribers() {
	s.Run("committed calls are published with the sampled height", func() {
		var got []Event
		s.ledger.Subscribe(func(_ context.Context, events []Event) {
			got = append(got, events...)
		})
		s.clock.Advance(4)

		s.Require().NoError(s.master.LockMint(as(admin), alice, 0, 9, []byte{1}))
		s.Require().Len(got, 2)
		s.Equal(EventTransfer, got[0].Kind)
		s.True(got[0].From.IsZero())
		s.Equal(alice, got[0].To)
		s.Equal(EventLocked, got[1].Kind)
		s.Equal(uint64(9), got[1].Expiry)
		s.Equal([]byte{1}, got[1].Data)
		s.Equal(uint64(4), got[1].Block)
	})

	s.Run("cascades are published with the master transfer", func() {
		s.Require().NoError(s.master.AddCollection(as(admin), s.slave.Address()))
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.Require().NoError(s.slave.SlaveMint(as(admin), alice, 1, s.master.Address(), 0))

		var got []Event
		s.ledger.Subscribe(func(_ context.Context, events []Event) {
			got = append(got, events...)
		})
		s.Require().NoError(s.master.TransferFrom(as(alice), alice, bob, 0))

		s.Require().Len(got, 2)
		registries := []domain.Address{got[0].Registry, got[1].Registry}
		s.ElementsMatch([]domain.Address{s.master.Address(), s.slave.Address()}, registries)
	})

	s.Run("failed calls publish nothing", func() {
		calls := 0
		s.ledger.Subscribe(func(context.Context, []Event) { calls++ })
		s.Error(s.master.Mint(as(alice), alice, 0))
		s.Zero(calls)
	})
}

func (s *RegistrySuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(as(admin))
	cancel()
	err := s.master.Mint(ctx, alice, 0)
	s.True(dErrors.HasCode(err, dErrors.CodeTimeout))
	s.False(s.master.Exists(0))
}

func (s *RegistrySuite) TestConcurrentCallsAreSerialized() {
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(id domain.TokenID) {
			defer wg.Done()
			_ = s.master.Mint(as(admin), alice, id)
			_ = s.master.Mint(as(admin), bob, id)
		}(domain.TokenID(i))
	}
	wg.Wait()

	s.Equal(uint64(64), s.master.TotalSupply())
	aliceBalance, _ := s.master.BalanceOf(alice)
	bobBalance, _ := s.master.BalanceOf(bob)
	s.Equal(uint64(64), aliceBalance+bobBalance)
}
