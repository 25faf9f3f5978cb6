package registry

import (
	"context"

	"tokenregistry/pkg/domain"
)

// Factory resolves the bound companion deployed for a registry.
type Factory interface {
	Address() domain.Address
	BoundOf(reg domain.Address) (Companion, bool)
}

// Companion holds presentation metadata for one registry. Mirror is called
// at commit for every mint and burn once the companion is bound.
type Companion interface {
	TokenURI(id domain.TokenID) (string, error)
	Mirror(id domain.TokenID, exists bool)
}

// SetFactory binds the companion that factory addr deployed for this
// registry, mirroring the tokens that already exist. Admin only.
func (r *Registry) SetFactory(ctx context.Context, addr domain.Address) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		if err := r.requireAdmin(tx); err != nil {
			return err
		}
		f, ok := r.ledger.factories[addr]
		if !ok {
			return ErrFactoryNotFound
		}
		c, ok := f.BoundOf(r.address)
		if !ok {
			return ErrBoundNotDeployed
		}

		tx.stage(func() {
			r.factory = addr
			r.companion = c
			for id := range r.base.owners {
				c.Mirror(id, true)
			}
		})
		tx.emit(Event{Kind: EventFactorySet, Registry: r.address, To: addr, Operator: tx.caller})
		return nil
	})
}

// Factory returns the address of the bound factory, zero when unset.
func (r *Registry) Factory() domain.Address {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.factory
}

// TokenURI delegates to the bound companion, falling back to the base URI.
func (r *Registry) TokenURI(id domain.TokenID) (string, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	if !r.base.exists(id) {
		return "", ErrURINonexistent
	}
	if r.companion != nil {
		return r.companion.TokenURI(id)
	}
	if r.baseURI == "" {
		return "", nil
	}
	return r.baseURI + id.String(), nil
}

func (r *Registry) mirror(id domain.TokenID, exists bool) {
	if r.companion != nil {
		r.companion.Mirror(id, exists)
	}
}
