package registry

import (
	"context"
	"slices"

	"tokenregistry/pkg/domain"
)

// TokenRef names a token in a specific registry.
type TokenRef struct {
	Registry domain.Address `json:"registry"`
	TokenID  domain.TokenID `json:"token_id"`
}

type attachState struct {
	// masters maps each slave token of this registry to its master.
	masters map[domain.TokenID]TokenRef
	// slaves is the ordered index of tokens attached to each master of this registry.
	slaves           map[domain.TokenID][]TokenRef
	collections      map[domain.Address]struct{}
	transferApproved map[domain.Address]struct{}
}

func newAttachState() *attachState {
	return &attachState{
		masters:          make(map[domain.TokenID]TokenRef),
		slaves:           make(map[domain.TokenID][]TokenRef),
		collections:      make(map[domain.Address]struct{}),
		transferApproved: make(map[domain.Address]struct{}),
	}
}

func (s *attachState) detach(master domain.TokenID, slave TokenRef) {
	idx := slices.Index(s.slaves[master], slave)
	if idx < 0 {
		return
	}
	s.slaves[master] = slices.Delete(s.slaves[master], idx, idx+1)
	if len(s.slaves[master]) == 0 {
		delete(s.slaves, master)
	}
}

// attachGuard keeps slave ownership derived from the master: direct slave
// transfers need an allowlisted caller, and master transfers and burns
// cascade to every attached slave in the same call.
type attachGuard struct {
	r *Registry
}

func (g attachGuard) BeforeUpdate(tx *Tx, u Update) error {
	if u.IsMint() {
		return nil
	}
	r := g.r
	self := TokenRef{Registry: r.address, TokenID: u.TokenID}

	if master, ok := r.attach.masters[u.TokenID]; ok {
		switch {
		case u.IsBurn():
			tx.stage(func() {
				delete(r.attach.masters, u.TokenID)
				if mr, ok := tx.registry(master.Registry); ok {
					mr.attach.detach(master.TokenID, self)
				}
			})
		case !u.Cascade:
			if _, ok := r.attach.transferApproved[tx.caller]; !ok {
				return ErrSlaveTransfer
			}
		}
	}

	slaves := r.attach.slaves[u.TokenID]
	if len(slaves) == 0 {
		return nil
	}
	for _, ref := range slaves {
		sr, ok := tx.registry(ref.Registry)
		if !ok {
			continue
		}
		owner, exists := sr.base.owners[ref.TokenID]
		if !exists {
			continue
		}
		if u.IsBurn() {
			if err := sr.planBurn(tx, ref.TokenID, u.Operator, true); err != nil {
				return err
			}
			continue
		}
		if owner == u.To {
			continue
		}
		if err := sr.planTransfer(tx, owner, u.To, ref.TokenID, u.Operator, true); err != nil {
			return err
		}
	}
	if u.IsBurn() {
		tx.stage(func() {
			delete(r.attach.slaves, u.TokenID)
		})
	}
	return nil
}

// AddCollection allows tokens of the slave registry at addr to attach to
// tokens of this registry. Admin only; adding twice is a no-op.
func (r *Registry) AddCollection(ctx context.Context, addr domain.Address) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		if err := r.requireAdmin(tx); err != nil {
			return err
		}
		if _, ok := r.attach.collections[addr]; ok {
			return nil
		}
		tx.stage(func() {
			r.attach.collections[addr] = struct{}{}
		})
		tx.emit(Event{Kind: EventCollectionAdded, Registry: r.address, To: addr, Operator: tx.caller})
		return nil
	})
}

// AddTransferApproval allowlists addr for direct slave token transfers.
// Admin only; adding twice is a no-op.
func (r *Registry) AddTransferApproval(ctx context.Context, addr domain.Address) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		if err := r.requireAdmin(tx); err != nil {
			return err
		}
		if _, ok := r.attach.transferApproved[addr]; ok {
			return nil
		}
		tx.stage(func() {
			r.attach.transferApproved[addr] = struct{}{}
		})
		tx.emit(Event{Kind: EventTransferApprovalAdded, Registry: r.address, To: addr, Operator: tx.caller})
		return nil
	})
}

// SlaveMint mints slaveID to to and attaches it to masterID of the master
// registry. Admin only.
func (r *Registry) SlaveMint(ctx context.Context, to domain.Address, slaveID domain.TokenID, masterRegistry domain.Address, masterID domain.TokenID) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		if err := r.requireAdmin(tx); err != nil {
			return err
		}
		master, ok := tx.Collection(masterRegistry)
		if !ok || !master.AcceptsCollection(r.address) {
			return ErrSlaveNotReceiver
		}
		if !master.Exists(masterID) {
			return ErrNonexistentToken
		}
		masterOwner, err := master.OwnerOf(masterID)
		if err != nil {
			return err
		}
		if to != masterOwner {
			return ErrSlaveIncorrectOwner
		}
		if err := r.planMint(tx, to, slaveID); err != nil {
			return err
		}

		mr, _ := tx.registry(masterRegistry)
		ref := TokenRef{Registry: masterRegistry, TokenID: masterID}
		self := TokenRef{Registry: r.address, TokenID: slaveID}
		tx.stage(func() {
			r.attach.masters[slaveID] = ref
			mr.attach.slaves[masterID] = append(mr.attach.slaves[masterID], self)
		})
		tx.emit(Event{Kind: EventSlaveAttached, Registry: r.address, TokenID: slaveID, To: to, Operator: tx.caller, Master: &ref})
		return nil
	})
}

// IsSlaveToken reports whether id is attached to a master.
func (r *Registry) IsSlaveToken(id domain.TokenID) bool {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	_, ok := r.attach.masters[id]
	return ok
}

// MasterOf returns the master id is attached to.
func (r *Registry) MasterOf(id domain.TokenID) (TokenRef, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	ref, ok := r.attach.masters[id]
	if !ok {
		return TokenRef{}, ErrMasterOfNonSlave
	}
	return ref, nil
}

// AllSlaveTokenLength counts the tokens attached to masterID.
func (r *Registry) AllSlaveTokenLength(masterID domain.TokenID) uint64 {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return uint64(len(r.attach.slaves[masterID]))
}

// SlaveTokenByIndex returns the idx-th token attached to masterID, in
// attachment order.
func (r *Registry) SlaveTokenByIndex(masterID domain.TokenID, idx uint64) (TokenRef, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	slaves := r.attach.slaves[masterID]
	if idx >= uint64(len(slaves)) {
		return TokenRef{}, ErrSlaveIndexOutOfBounds
	}
	return slaves[idx], nil
}

// AcceptsCollection reports whether tokens of addr may attach to this registry.
func (r *Registry) AcceptsCollection(addr domain.Address) bool {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	_, ok := r.attach.collections[addr]
	return ok
}

// IsTransferApproved reports whether addr may transfer slave tokens directly.
func (r *Registry) IsTransferApproved(addr domain.Address) bool {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	_, ok := r.attach.transferApproved[addr]
	return ok
}
