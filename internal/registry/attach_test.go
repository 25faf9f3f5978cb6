package registry

import (
	"tokenregistry/pkg/domain"
	dErrors "tokenregistry/pkg/domain-errors"
)

func (s *RegistrySuite) attachable() {
	s.Require().NoError(s.master.AddCollection(as(admin), s.slave.Address()))
}

// Scenario A: a slave follows its master to the new owner.
func (s *RegistrySuite) TestMasterTransferMovesSlave() {
	s.attachable()
	s.Require().NoError(s.master.Mint(as(admin), alice, 0))
	s.Require().NoError(s.slave.SlaveMint(as(admin), alice, 1, s.master.Address(), 0))

	s.True(s.slave.IsSlaveToken(1))
	master, err := s.slave.MasterOf(1)
	s.Require().NoError(err)
	s.Equal(TokenRef{Registry: s.master.Address(), TokenID: 0}, master)
	s.Equal(uint64(1), s.master.AllSlaveTokenLength(0))
	ref, err := s.master.SlaveTokenByIndex(0, 0)
	s.Require().NoError(err)
	s.Equal(TokenRef{Registry: s.slave.Address(), TokenID: 1}, ref)

	s.Require().NoError(s.master.TransferFrom(as(alice), alice, bob, 0))

	owner, err := s.slave.OwnerOf(1)
	s.Require().NoError(err)
	s.Equal(bob, owner)
	balance, _ := s.slave.BalanceOf(alice)
	s.Equal(uint64(0), balance)
	s.Equal(uint64(1), s.master.AllSlaveTokenLength(0))
}

func (s *RegistrySuite) TestSlaveMint() {
	s.Run("master registry must accept the slave registry", func() {
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		err := s.slave.SlaveMint(as(admin), alice, 1, s.master.Address(), 0)
		s.EqualError(err, "ERC721Attachable: slave to non boundERC721 receiver")
		s.True(dErrors.HasCode(err, dErrors.CodeRelation))
		s.False(s.slave.Exists(1))
	})

	s.Run("unknown master registry", func() {
		unknown := domain.DeriveAddress([]byte("unknown"))
		s.ErrorIs(s.slave.SlaveMint(as(admin), alice, 1, unknown, 0), ErrSlaveNotReceiver)
	})

	s.Run("master token must exist", func() {
		s.attachable()
		err := s.slave.SlaveMint(as(admin), alice, 1, s.master.Address(), 0)
		s.EqualError(err, "ERC721: owner query for nonexistent token")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("recipient must own the master", func() {
		s.attachable()
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		err := s.slave.SlaveMint(as(admin), bob, 1, s.master.Address(), 0)
		s.EqualError(err, "ERC721Attachable: slave to incorrect owner")
		s.Equal(uint64(0), s.master.AllSlaveTokenLength(0))
	})

	s.Run("slave id must be new", func() {
		s.attachable()
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.Require().NoError(s.slave.Mint(as(admin), alice, 1))
		s.ErrorIs(s.slave.SlaveMint(as(admin), alice, 1, s.master.Address(), 0), ErrTokenAlreadyMinted)
		s.False(s.slave.IsSlaveToken(1))
		s.Equal(uint64(0), s.master.AllSlaveTokenLength(0))
	})

	s.Run("admin only", func() {
		s.attachable()
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.ErrorIs(s.slave.SlaveMint(as(alice), alice, 1, s.master.Address(), 0), ErrNotAdmin)
	})

	s.Run("registry may attach to itself", func() {
		s.Require().NoError(s.master.AddCollection(as(admin), s.master.Address()))
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.Require().NoError(s.master.SlaveMint(as(admin), alice, 1, s.master.Address(), 0))

		s.Require().NoError(s.master.TransferFrom(as(alice), alice, carol, 0))
		owner, _ := s.master.OwnerOf(1)
		s.Equal(carol, owner)
	})
}

func (s *RegistrySuite) TestSlaveQueries() {
	_, err := s.slave.MasterOf(5)
	s.EqualError(err, "ERC721Attachable: master query for non-slave token")
	_, err = s.master.SlaveTokenByIndex(0, 0)
	s.ErrorIs(err, ErrSlaveIndexOutOfBounds)
	s.Equal(uint64(0), s.master.AllSlaveTokenLength(0))
}

func (s *RegistrySuite) TestDirectSlaveTransfer() {
	s.Run("is rejected for callers outside the allowlist", func() {
		s.attachable()
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.Require().NoError(s.slave.SlaveMint(as(admin), alice, 1, s.master.Address(), 0))

		err := s.slave.TransferFrom(as(alice), alice, bob, 1)
		s.EqualError(err, "ERC721Attachable: slave token transfer not allowed")
		s.True(dErrors.HasCode(err, dErrors.CodeRelation))
		owner, _ := s.slave.OwnerOf(1)
		s.Equal(alice, owner)
	})

	s.Run("is allowed for allowlisted callers", func() {
		s.attachable()
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.Require().NoError(s.slave.SlaveMint(as(admin), alice, 1, s.master.Address(), 0))
		s.Require().NoError(s.slave.AddTransferApproval(as(admin), alice))
		s.True(s.slave.IsTransferApproved(alice))

		s.Require().NoError(s.slave.TransferFrom(as(alice), alice, bob, 1))
		owner, _ := s.slave.OwnerOf(1)
		s.Equal(bob, owner)

		// the next master transfer pulls the slave back under the master's owner
		s.Require().NoError(s.master.TransferFrom(as(alice), alice, carol, 0))
		owner, _ = s.slave.OwnerOf(1)
		s.Equal(carol, owner)
	})
}

func (s *RegistrySuite) TestCascadeIsAtomic() {
	s.Run("locked slave blocks the master transfer", func() {
		s.attachable()
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.Require().NoError(s.slave.SlaveMint(as(admin), alice, 1, s.master.Address(), 0))
		s.Require().NoError(s.slave.SlaveMint(as(admin), alice, 2, s.master.Address(), 0))
		s.Require().NoError(s.slave.LockFrom(as(alice), alice, 2, 10))

		s.EqualError(s.master.TransferFrom(as(alice), alice, bob, 0), "ERC5058: token transfer while locked")

		for _, id := range []domain.TokenID{1, 2} {
			owner, _ := s.slave.OwnerOf(id)
			s.Equal(alice, owner)
		}
		owner, _ := s.master.OwnerOf(0)
		s.Equal(alice, owner)
		balance, _ := s.master.BalanceOf(bob)
		s.Equal(uint64(0), balance)
	})

	s.Run("locked slave blocks the master burn", func() {
		s.attachable()
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.Require().NoError(s.slave.SlaveMint(as(admin), alice, 1, s.master.Address(), 0))
		s.Require().NoError(s.slave.LockFrom(as(alice), alice, 1, 10))

		s.ErrorIs(s.master.Burn(as(alice), 0), ErrTransferWhileLocked)
		s.True(s.master.Exists(0))
		s.True(s.slave.Exists(1))
		s.Equal(uint64(1), s.master.AllSlaveTokenLength(0))
	})

	s.Run("locked master moves nothing", func() {
		s.attachable()
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.Require().NoError(s.slave.SlaveMint(as(admin), alice, 1, s.master.Address(), 0))
		s.Require().NoError(s.master.LockFrom(as(alice), alice, 0, 10))

		s.ErrorIs(s.master.TransferFrom(as(alice), alice, bob, 0), ErrTransferWhileLocked)
		owner, _ := s.slave.OwnerOf(1)
		s.Equal(alice, owner)
	})
}

func (s *RegistrySuite) TestBurnCascade() {
	s.Run("master burn removes every slave", func() {
		s.attachable()
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.Require().NoError(s.slave.SlaveMint(as(admin), alice, 1, s.master.Address(), 0))
		s.Require().NoError(s.slave.SlaveMint(as(admin), alice, 2, s.master.Address(), 0))

		s.Require().NoError(s.master.Burn(as(alice), 0))

		s.False(s.master.Exists(0))
		s.False(s.slave.Exists(1))
		s.False(s.slave.Exists(2))
		s.False(s.slave.IsSlaveToken(1))
		s.Equal(uint64(0), s.master.AllSlaveTokenLength(0))
		s.Equal(uint64(0), s.slave.TotalSupply())
		balance, _ := s.slave.BalanceOf(alice)
		s.Equal(uint64(0), balance)
	})

	s.Run("slave burn removes only its own edge", func() {
		s.attachable()
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.Require().NoError(s.slave.SlaveMint(as(admin), alice, 1, s.master.Address(), 0))
		s.Require().NoError(s.slave.SlaveMint(as(admin), alice, 2, s.master.Address(), 0))

		s.Require().NoError(s.slave.Burn(as(alice), 1))

		s.True(s.master.Exists(0))
		s.False(s.slave.Exists(1))
		s.True(s.slave.Exists(2))
		s.Equal(uint64(1), s.master.AllSlaveTokenLength(0))
		ref, err := s.master.SlaveTokenByIndex(0, 0)
		s.Require().NoError(err)
		s.Equal(domain.TokenID(2), ref.TokenID)
	})
}

func (s *RegistrySuite) TestAddCollection() {
	s.Run("is idempotent", func() {
		s.Require().NoError(s.master.AddCollection(as(admin), s.slave.Address()))
		s.Require().NoError(s.master.AddCollection(as(admin), s.slave.Address()))
		s.True(s.master.AcceptsCollection(s.slave.Address()))
		s.Equal(uint64(0), s.master.AllSlaveTokenLength(0))
	})

	s.Run("admin only", func() {
		s.ErrorIs(s.master.AddCollection(as(alice), s.slave.Address()), ErrNotAdmin)
		s.ErrorIs(s.slave.AddTransferApproval(as(alice), alice), ErrNotAdmin)
		s.False(s.master.AcceptsCollection(s.slave.Address()))
	})
}

func (s *RegistrySuite) TestInspectAttachment() {
	s.attachable()
	s.Require().NoError(s.master.Mint(as(admin), alice, 0))
	s.Require().NoError(s.slave.SlaveMint(as(admin), alice, 7, s.master.Address(), 0))

	st, err := s.master.Inspect(0)
	s.Require().NoError(err)
	s.Equal([]TokenRef{{Registry: s.slave.Address(), TokenID: 7}}, st.Slaves)

	st, err = s.slave.Inspect(7)
	s.Require().NoError(err)
	s.Require().NotNil(st.Master)
	s.Equal(domain.TokenID(0), st.Master.TokenID)
}
