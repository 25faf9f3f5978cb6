package registry

import (
	"context"

	"tokenregistry/pkg/domain"
)

// LockRecord is the lock imposed on a token. The token counts as locked
// while the block height is below Expiry.
type LockRecord struct {
	Expiry uint64         `json:"expiry"`
	Locker domain.Address `json:"locker"`
}

type lockState struct {
	records   map[domain.TokenID]LockRecord
	approvals map[domain.TokenID]domain.Address
	operators map[domain.Address]map[domain.Address]bool
}

func newLockState() *lockState {
	return &lockState{
		records:   make(map[domain.TokenID]LockRecord),
		approvals: make(map[domain.TokenID]domain.Address),
		operators: make(map[domain.Address]map[domain.Address]bool),
	}
}

func (s *lockState) isLocked(id domain.TokenID, now uint64) bool {
	rec, ok := s.records[id]
	return ok && now < rec.Expiry
}

func (s *lockState) forget(id domain.TokenID) {
	delete(s.records, id)
	delete(s.approvals, id)
}

// lockGuard rejects every transfer or burn of a locked token, cascades included.
type lockGuard struct {
	r *Registry
}

func (g lockGuard) BeforeUpdate(tx *Tx, u Update) error {
	if u.IsMint() {
		return nil
	}
	if g.r.locks.isLocked(u.TokenID, tx.now) {
		return ErrTransferWhileLocked
	}
	return nil
}

// LockMint mints id to to and locks it until expiry in one call. The caller
// is recorded as locker. Admin only.
func (r *Registry) LockMint(ctx context.Context, to domain.Address, id domain.TokenID, expiry uint64, data []byte) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		if err := r.requireAdmin(tx); err != nil {
			return err
		}
		if expiry <= tx.now {
			return ErrExpiryNotInFuture
		}
		if err := r.planMint(tx, to, id); err != nil {
			return err
		}

		rec := LockRecord{Expiry: expiry, Locker: tx.caller}
		tx.stage(func() {
			r.locks.records[id] = rec
		})
		tx.emit(Event{Kind: EventLocked, Registry: r.address, TokenID: id, From: to, Operator: tx.caller, Expiry: expiry, Data: data})
		return nil
	})
}

// LockFrom locks an existing token of owner until expiry.
func (r *Registry) LockFrom(ctx context.Context, owner domain.Address, id domain.TokenID, expiry uint64) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		actual, err := r.base.ownerOf(id)
		if err != nil {
			return err
		}
		if r.locks.isLocked(id, tx.now) {
			return ErrTokenLocked
		}
		if !r.isLockApprovedOrOwner(tx.caller, id) {
			return ErrLockNotApproved
		}
		if actual != owner {
			return ErrLockWrongOwner
		}
		if expiry <= tx.now {
			return ErrExpiryNotInFuture
		}

		rec := LockRecord{Expiry: expiry, Locker: tx.caller}
		tx.stage(func() {
			r.locks.records[id] = rec
		})
		tx.emit(Event{Kind: EventLocked, Registry: r.address, TokenID: id, From: owner, Operator: tx.caller, Expiry: expiry})
		return nil
	})
}

// UnlockFrom removes the lock on id. Only the locker may unlock, and only
// while the lock is still in force.
func (r *Registry) UnlockFrom(ctx context.Context, owner domain.Address, id domain.TokenID) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		if !r.locks.isLocked(id, tx.now) {
			return ErrLockerNonLocked
		}
		if r.locks.records[id].Locker != tx.caller {
			return ErrUnlockNotLocker
		}
		if r.base.owners[id] != owner {
			return ErrUnlockWrongOwner
		}

		tx.stage(func() {
			delete(r.locks.records, id)
		})
		tx.emit(Event{Kind: EventUnlocked, Registry: r.address, TokenID: id, From: owner, Operator: tx.caller})
		return nil
	})
}

// LockApprove delegates lock rights over id to spender. The zero address
// clears the delegate.
func (r *Registry) LockApprove(ctx context.Context, spender domain.Address, id domain.TokenID) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		owner, err := r.base.ownerOf(id)
		if err != nil {
			return err
		}
		if r.locks.isLocked(id, tx.now) {
			return ErrTokenLocked
		}
		if spender == owner {
			return ErrLockApprovalToOwner
		}
		if tx.caller != owner && !r.locks.operators[owner][tx.caller] {
			return ErrLockApproveForbidden
		}

		tx.stage(func() {
			if spender.IsZero() {
				delete(r.locks.approvals, id)
				return
			}
			r.locks.approvals[id] = spender
		})
		tx.emit(Event{Kind: EventLockApproval, Registry: r.address, TokenID: id, From: owner, To: spender, Operator: tx.caller})
		return nil
	})
}

// SetLockApprovalForAll grants or revokes lock rights over all of the
// caller's tokens. Granting is refused while any of them is locked.
func (r *Registry) SetLockApprovalForAll(ctx context.Context, operator domain.Address, approved bool) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		if operator == tx.caller {
			return ErrLockApproveToCaller
		}
		if approved && r.ownsLockedToken(tx.caller, tx.now) {
			return ErrTokenLocked
		}

		owner := tx.caller
		tx.stage(func() {
			setFlag(r.locks.operators, owner, operator, approved)
		})
		tx.emit(Event{Kind: EventLockApprovalForAll, Registry: r.address, From: owner, Operator: operator, Approved: approved})
		return nil
	})
}

// IsLocked reports whether id is locked at the current block height.
func (r *Registry) IsLocked(id domain.TokenID) bool {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.locks.isLocked(id, r.ledger.clock.Now())
}

// LockerOf returns the address that locked id.
func (r *Registry) LockerOf(id domain.TokenID) (domain.Address, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	if !r.locks.isLocked(id, r.ledger.clock.Now()) {
		return domain.ZeroAddress, ErrLockerNonLocked
	}
	return r.locks.records[id].Locker, nil
}

// GetLockApproved returns the per-token lock delegate of id.
func (r *Registry) GetLockApproved(id domain.TokenID) (domain.Address, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	if !r.base.exists(id) {
		return domain.ZeroAddress, ErrLockApprovedNonexist
	}
	return r.locks.approvals[id], nil
}

// IsLockApprovedForAll reports whether operator may lock all of owner's tokens.
func (r *Registry) IsLockApprovedForAll(owner, operator domain.Address) bool {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.locks.operators[owner][operator]
}

func (r *Registry) isLockApprovedOrOwner(spender domain.Address, id domain.TokenID) bool {
	owner := r.base.owners[id]
	return spender == owner || r.locks.approvals[id] == spender || r.locks.operators[owner][spender]
}

func (r *Registry) ownsLockedToken(owner domain.Address, now uint64) bool {
	for id := range r.base.owned[owner] {
		if r.locks.isLocked(id, now) {
			return true
		}
	}
	return false
}
