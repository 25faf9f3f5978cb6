package registry

import (
	"tokenregistry/pkg/domain"
)

func (s *RegistrySuite) TestMintBatch() {
	s.Run("mints every id", func() {
		s.Require().NoError(s.master.MintBatch(as(admin), alice, []domain.TokenID{4, 2, 9}))
		s.Equal(uint64(3), s.master.TotalSupply())
		s.Equal([]domain.TokenID{2, 4, 9}, s.master.TokensOf(alice))
	})

	s.Run("one existing id aborts the whole batch", func() {
		s.Require().NoError(s.master.Mint(as(admin), bob, 2))
		err := s.master.MintBatch(as(admin), alice, []domain.TokenID{1, 2, 3})
		s.EqualError(err, "ERC721: token already minted")
		s.False(s.master.Exists(1))
		s.False(s.master.Exists(3))
		s.Equal(uint64(1), s.master.TotalSupply())
	})

	s.Run("duplicate ids inside the batch abort it", func() {
		s.ErrorIs(s.master.MintBatch(as(admin), alice, []domain.TokenID{1, 1}), ErrTokenAlreadyMinted)
		s.False(s.master.Exists(1))
	})

	s.Run("oversized batch is rejected", func() {
		ids := make([]domain.TokenID, MaxBatchSize+1)
		for i := range ids {
			ids[i] = domain.TokenID(i)
		}
		s.ErrorIs(s.master.MintBatch(as(admin), alice, ids), ErrBatchTooLarge)
		s.Equal(uint64(0), s.master.TotalSupply())
	})

	s.Run("admin only", func() {
		s.ErrorIs(s.master.MintBatch(as(alice), alice, []domain.TokenID{1}), ErrNotAdmin)
	})
}

func (s *RegistrySuite) TestMintRange() {
	s.Run("range is inclusive", func() {
		s.Require().NoError(s.master.MintRange(as(admin), alice, 3, 5))
		s.Equal([]domain.TokenID{3, 4, 5}, s.master.TokensOf(alice))
	})

	s.Run("single id range", func() {
		s.Require().NoError(s.master.MintRange(as(admin), alice, 7, 7))
		s.True(s.master.Exists(7))
	})

	s.Run("inverted range is rejected", func() {
		s.ErrorIs(s.master.MintRange(as(admin), alice, 5, 3), ErrInvalidRange)
	})

	s.Run("overlap with existing ids mints nothing", func() {
		s.Require().NoError(s.master.Mint(as(admin), bob, 5))
		s.ErrorIs(s.master.MintRange(as(admin), alice, 3, 6), ErrTokenAlreadyMinted)
		s.Equal(uint64(1), s.master.TotalSupply())
	})

	s.Run("oversized range is rejected", func() {
		s.ErrorIs(s.master.MintRange(as(admin), alice, 0, MaxBatchSize), ErrBatchTooLarge)
	})
}
