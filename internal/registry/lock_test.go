package registry

import (
	"tokenregistry/pkg/domain"
	dErrors "tokenregistry/pkg/domain-errors"
)

func (s *RegistrySuite) TestIsLocked() {
	s.Run("no record means unlocked", func() {
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.False(s.master.IsLocked(0))
		s.False(s.master.IsLocked(99))
	})

	s.Run("lock lapses once the height reaches expiry", func() {
		s.Require().NoError(s.master.LockMint(as(admin), alice, 0, 2, nil))
		s.True(s.master.IsLocked(0))
		s.clock.Mine()
		s.True(s.master.IsLocked(0))
		s.clock.Mine()
		s.False(s.master.IsLocked(0))

		_, err := s.master.LockerOf(0)
		s.EqualError(err, "ERC5058: locker query for non-locked token")
	})
}

// Scenario B: a lock expires without an explicit unlock.
func (s *RegistrySuite) TestLockMintExpiresThenTransfers() {
	now := s.ledger.Height()
	s.Require().NoError(s.master.LockMint(as(admin), bob, 0, now+3, []byte("0x")))
	s.True(s.master.IsLocked(0))

	locker, err := s.master.LockerOf(0)
	s.Require().NoError(err)
	s.Equal(admin, locker)

	s.clock.Advance(3)
	s.False(s.master.IsLocked(0))
	s.Require().NoError(s.master.TransferFrom(as(bob), bob, carol, 0))
	owner, _ := s.master.OwnerOf(0)
	s.Equal(carol, owner)
}

func (s *RegistrySuite) TestLockMint() {
	s.Run("expiry must be in the future", func() {
		s.clock.Advance(5)
		err := s.master.LockMint(as(admin), alice, 0, 5, nil)
		s.EqualError(err, "ERC5058: expired time must be greater than current block number")
		s.False(s.master.Exists(0))
	})

	s.Run("admin only", func() {
		s.ErrorIs(s.master.LockMint(as(alice), alice, 0, 5, nil), ErrNotAdmin)
	})

	s.Run("existing id is rejected without locking it", func() {
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.ErrorIs(s.master.LockMint(as(admin), alice, 0, 5, nil), ErrTokenAlreadyMinted)
		s.False(s.master.IsLocked(0))
	})
}

func (s *RegistrySuite) TestTransferWhileLocked() {
	s.Run("transfer is rejected", func() {
		s.Require().NoError(s.master.LockMint(as(admin), alice, 0, 10, nil))
		err := s.master.TransferFrom(as(alice), alice, bob, 0)
		s.EqualError(err, "ERC5058: token transfer while locked")
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		owner, _ := s.master.OwnerOf(0)
		s.Equal(alice, owner)
	})

	s.Run("burn is rejected", func() {
		s.Require().NoError(s.master.LockMint(as(admin), alice, 0, 10, nil))
		s.ErrorIs(s.master.Burn(as(alice), 0), ErrTransferWhileLocked)
		s.True(s.master.Exists(0))
	})
}

func (s *RegistrySuite) TestLockFrom() {
	s.Run("relocking a locked token fails until it lapses", func() {
		now := s.ledger.Height()
		s.Require().NoError(s.master.LockMint(as(admin), admin, 0, now+3, nil))
		s.clock.Mine()

		s.EqualError(s.master.LockFrom(as(admin), admin, 0, now+5), "ERC5058: token is locked")

		s.clock.Advance(2)
		s.Require().NoError(s.master.LockFrom(as(admin), admin, 0, now+5))
		s.True(s.master.IsLocked(0))
	})

	s.Run("stranger cannot lock", func() {
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		err := s.master.LockFrom(as(bob), alice, 0, 5)
		s.EqualError(err, "ERC5058: lock caller is not owner nor approved")
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("expiry must be in the future", func() {
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.ErrorIs(s.master.LockFrom(as(alice), alice, 0, 0), ErrExpiryNotInFuture)
	})

	s.Run("nonexistent token", func() {
		s.ErrorIs(s.master.LockFrom(as(alice), alice, 0, 5), ErrNonexistentToken)
	})
}

func (s *RegistrySuite) TestUnlockFrom() {
	s.Run("unlocked token cannot be unlocked", func() {
		s.Require().NoError(s.master.Mint(as(admin), admin, 0))
		err := s.master.UnlockFrom(as(admin), admin, 0)
		s.EqualError(err, "ERC5058: locker query for non-locked token")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("locker unlocks and the record is cleared", func() {
		s.Require().NoError(s.master.Mint(as(admin), admin, 0))
		s.Require().NoError(s.master.LockFrom(as(admin), admin, 0, 3))
		s.True(s.master.IsLocked(0))

		s.Require().NoError(s.master.UnlockFrom(as(admin), admin, 0))
		s.False(s.master.IsLocked(0))
		_, err := s.master.LockerOf(0)
		s.ErrorIs(err, ErrLockerNonLocked)
		s.Require().NoError(s.master.TransferFrom(as(admin), admin, alice, 0))
	})

	s.Run("lock minted token unlocks", func() {
		s.Require().NoError(s.master.LockMint(as(admin), admin, 0, 3, nil))
		s.Require().NoError(s.master.UnlockFrom(as(admin), admin, 0))
		s.False(s.master.IsLocked(0))
	})

	s.Run("only the locker unlocks", func() {
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.Require().NoError(s.master.LockFrom(as(alice), alice, 0, 3))
		s.ErrorIs(s.master.UnlockFrom(as(bob), alice, 0), ErrUnlockNotLocker)
		s.ErrorIs(s.master.UnlockFrom(as(alice), bob, 0), ErrUnlockWrongOwner)
		s.True(s.master.IsLocked(0))
	})
}

func (s *RegistrySuite) TestLockApprove() {
	s.Run("per-token delegate locks on behalf of the owner", func() {
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.EqualError(s.master.LockFrom(as(admin), alice, 0, 2), "ERC5058: lock caller is not owner nor approved")

		s.Require().NoError(s.master.LockApprove(as(alice), admin, 0))
		delegate, err := s.master.GetLockApproved(0)
		s.Require().NoError(err)
		s.Equal(admin, delegate)

		s.EqualError(s.master.LockFrom(as(admin), admin, 0, 4), "ERC5058: lock from incorrect owner")
		s.Require().NoError(s.master.LockFrom(as(admin), alice, 0, 6))
		s.True(s.master.IsLocked(0))

		s.EqualError(s.master.LockApprove(as(admin), alice, 0), "ERC5058: token is locked")
		s.EqualError(s.master.LockApprove(as(alice), bob, 0), "ERC5058: token is locked")
	})

	s.Run("approval to the owner is rejected", func() {
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.ErrorIs(s.master.LockApprove(as(alice), alice, 0), ErrLockApprovalToOwner)
	})

	s.Run("stranger cannot delegate", func() {
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.ErrorIs(s.master.LockApprove(as(bob), carol, 0), ErrLockApproveForbidden)
	})

	s.Run("transfer clears the delegate", func() {
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.Require().NoError(s.master.LockApprove(as(alice), bob, 0))
		s.Require().NoError(s.master.TransferFrom(as(alice), alice, carol, 0))
		delegate, err := s.master.GetLockApproved(0)
		s.Require().NoError(err)
		s.True(delegate.IsZero())
	})

	s.Run("delegate query for nonexistent token", func() {
		_, err := s.master.GetLockApproved(0)
		s.ErrorIs(err, ErrLockApprovedNonexist)
	})
}

func (s *RegistrySuite) TestSetLockApprovalForAll() {
	s.Run("operator locks any token of the owner", func() {
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.EqualError(s.master.LockFrom(as(admin), alice, 0, 2), "ERC5058: lock caller is not owner nor approved")

		s.Require().NoError(s.master.SetLockApprovalForAll(as(alice), admin, true))
		s.True(s.master.IsLockApprovedForAll(alice, admin))
		s.Require().NoError(s.master.LockFrom(as(admin), alice, 0, 6))

		s.Require().NoError(s.master.SetLockApprovalForAll(as(alice), admin, false))
		s.False(s.master.IsLockApprovedForAll(alice, admin))
	})

	s.Run("granting while holding a locked token is rejected", func() {
		s.Require().NoError(s.master.Mint(as(admin), alice, 0))
		s.Require().NoError(s.master.LockFrom(as(alice), alice, 0, 4))
		s.EqualError(s.master.SetLockApprovalForAll(as(alice), bob, true), "ERC5058: token is locked")
		s.False(s.master.IsLockApprovedForAll(alice, bob))
	})

	s.Run("operator approval to caller is rejected", func() {
		s.ErrorIs(s.master.SetLockApprovalForAll(as(alice), alice, true), ErrLockApproveToCaller)
	})
}

// Scenario C: a delegate locks, and nobody can lock again before expiry.
func (s *RegistrySuite) TestDelegatedLockBlocksSecondLock() {
	s.Require().NoError(s.master.Mint(as(admin), alice, 0))
	s.Require().NoError(s.master.LockApprove(as(alice), bob, 0))
	s.Require().NoError(s.master.LockFrom(as(bob), alice, 0, 10))

	locker, err := s.master.LockerOf(0)
	s.Require().NoError(err)
	s.Equal(bob, locker)

	for _, caller := range []domain.Address{bob, alice, carol} {
		s.EqualError(s.master.LockFrom(as(caller), alice, 0, 20), "ERC5058: token is locked")
	}
}
