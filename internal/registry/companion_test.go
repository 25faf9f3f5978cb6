package registry

import (
	"fmt"
	"sync"

	"tokenregistry/pkg/domain"
)

type fakeCompanion struct {
	mu     sync.Mutex
	prefix string
	exists map[domain.TokenID]bool
}

func (c *fakeCompanion) TokenURI(id domain.TokenID) (string, error) {
	return fmt.Sprintf("%s%d", c.prefix, id), nil
}

func (c *fakeCompanion) Mirror(id domain.TokenID, exists bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exists[id] = exists
}

type fakeFactory struct {
	addr   domain.Address
	bounds map[domain.Address]Companion
}

func (f fakeFactory) Address() domain.Address { return f.addr }

func (f fakeFactory) BoundOf(registry domain.Address) (Companion, bool) {
	c, ok := f.bounds[registry]
	return c, ok
}

func (s *RegistrySuite) newFactory() (fakeFactory, *fakeCompanion) {
	c := &fakeCompanion{prefix: "bound://", exists: make(map[domain.TokenID]bool)}
	f := fakeFactory{
		addr:   domain.DeriveAddress([]byte("factory")),
		bounds: map[domain.Address]Companion{s.master.Address(): c},
	}
	s.ledger.RegisterFactory(f)
	return f, c
}

func (s *RegistrySuite) TestTokenURI() {
	s.Run("falls back to the base uri", func() {
		s.Require().NoError(s.master.Mint(as(admin), alice, 12))
		uri, err := s.master.TokenURI(12)
		s.Require().NoError(err)
		s.Equal("https://meta.example/12", uri)
	})

	s.Run("empty without a base uri", func() {
		s.Require().NoError(s.slave.Mint(as(admin), alice, 1))
		uri, err := s.slave.TokenURI(1)
		s.Require().NoError(err)
		s.Empty(uri)
	})

	s.Run("nonexistent token", func() {
		_, err := s.master.TokenURI(1)
		s.EqualError(err, "ERC721Metadata: URI query for nonexistent token")
	})

	s.Run("bound companion serves the uri", func() {
		f, _ := s.newFactory()
		s.Require().NoError(s.master.Mint(as(admin), alice, 3))
		s.Require().NoError(s.master.SetFactory(as(admin), f.Address()))
		s.Equal(f.Address(), s.master.Factory())

		uri, err := s.master.TokenURI(3)
		s.Require().NoError(err)
		s.Equal("bound://3", uri)
	})
}

func (s *RegistrySuite) TestSetFactory() {
	s.Run("mirrors existing and later tokens", func() {
		f, c := s.newFactory()
		s.Require().NoError(s.master.Mint(as(admin), alice, 1))
		s.Require().NoError(s.master.SetFactory(as(admin), f.Address()))
		s.True(c.exists[1])

		s.Require().NoError(s.master.LockMint(as(admin), alice, 2, 5, nil))
		s.True(c.exists[2])

		s.Require().NoError(s.master.Burn(as(alice), 1))
		s.False(c.exists[1])
	})

	s.Run("unknown factory", func() {
		s.ErrorIs(s.master.SetFactory(as(admin), domain.DeriveAddress([]byte("nope"))), ErrFactoryNotFound)
	})

	s.Run("factory without a companion for this registry", func() {
		f, _ := s.newFactory()
		s.ErrorIs(s.slave.SetFactory(as(admin), f.Address()), ErrBoundNotDeployed)
	})

	s.Run("admin only", func() {
		f, _ := s.newFactory()
		s.ErrorIs(s.master.SetFactory(as(alice), f.Address()), ErrNotAdmin)
		s.True(s.master.Factory().IsZero())
	})
}
