package registry

import "tokenregistry/pkg/domain"

// Collection is the read capability a registry exposes to other registries.
// Any implementation can serve as a master for attachment.
type Collection interface {
	Address() domain.Address
	OwnerOf(id domain.TokenID) (domain.Address, error)
	Exists(id domain.TokenID) bool
}

// MasterCollection is a Collection that keeps an allowlist of slave registries.
type MasterCollection interface {
	Collection
	AcceptsCollection(addr domain.Address) bool
}

var (
	_ MasterCollection = (*Registry)(nil)
	_ MasterCollection = collectionView{}
)

// collectionView reads a registry from inside a Tx, where the ledger lock is
// already held.
type collectionView struct {
	r *Registry
}

func (v collectionView) Address() domain.Address { return v.r.address }

func (v collectionView) OwnerOf(id domain.TokenID) (domain.Address, error) {
	return v.r.base.ownerOf(id)
}

func (v collectionView) Exists(id domain.TokenID) bool {
	return v.r.base.exists(id)
}

func (v collectionView) AcceptsCollection(addr domain.Address) bool {
	_, ok := v.r.attach.collections[addr]
	return ok
}
