package registry

import (
	"context"
	"slices"

	"tokenregistry/pkg/domain"
)

// Registry is one token collection: base ownership bookkeeping plus the lock
// and attach extensions, each held in its own sparse per-token maps.
//
// Every mutating method runs as a single ledger call with the caller taken
// from the context (requestcontext.WithCaller). Views take a read lock and
// evaluate lock expiry against the current block height.
type Registry struct {
	ledger  *Ledger
	address domain.Address
	name    string
	symbol  string
	baseURI string
	admin   domain.Address

	base   *baseState
	locks  *lockState
	attach *attachState

	factory   domain.Address
	companion Companion
	guards    []Guard
}

// Option configures a registry at deploy time.
type Option func(*Registry)

// WithBaseURI sets the prefix TokenURI uses when no bound companion is set.
func WithBaseURI(uri string) Option {
	return func(r *Registry) {
		r.baseURI = uri
	}
}

// WithGuard appends a guard that runs after the lock and attach guards.
func WithGuard(g Guard) Option {
	return func(r *Registry) {
		r.guards = append(r.guards, g)
	}
}

func newRegistry(l *Ledger, addr domain.Address, name, symbol string, admin domain.Address, opts ...Option) *Registry {
	r := &Registry{
		ledger:  l,
		address: addr,
		name:    name,
		symbol:  symbol,
		admin:   admin,
		base:    newBaseState(),
		locks:   newLockState(),
		attach:  newAttachState(),
	}
	r.guards = []Guard{lockGuard{r: r}, attachGuard{r: r}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Address() domain.Address { return r.address }
func (r *Registry) Name() string            { return r.name }
func (r *Registry) Symbol() string          { return r.symbol }
func (r *Registry) Admin() domain.Address   { return r.admin }

func (r *Registry) requireAdmin(tx *Tx) error {
	if tx.caller != r.admin {
		return ErrNotAdmin
	}
	return nil
}

func (r *Registry) runGuards(tx *Tx, u Update) error {
	for _, g := range r.guards {
		if err := g.BeforeUpdate(tx, u); err != nil {
			return err
		}
	}
	return nil
}

// Mint creates id for to. Admin only.
func (r *Registry) Mint(ctx context.Context, to domain.Address, id domain.TokenID) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		if err := r.requireAdmin(tx); err != nil {
			return err
		}
		return r.planMint(tx, to, id)
	})
}

// Burn destroys id together with every token attached to it.
func (r *Registry) Burn(ctx context.Context, id domain.TokenID) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		return r.planBurn(tx, id, tx.caller, false)
	})
}

// TransferFrom moves id from from to to, carrying attached tokens along.
func (r *Registry) TransferFrom(ctx context.Context, from, to domain.Address, id domain.TokenID) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		return r.planTransfer(tx, from, to, id, tx.caller, false)
	})
}

// Approve lets spender transfer id until the next ownership change.
// The zero address clears the approval.
func (r *Registry) Approve(ctx context.Context, spender domain.Address, id domain.TokenID) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		return r.planApprove(tx, spender, id)
	})
}

// SetApprovalForAll grants or revokes operator rights over all of the caller's tokens.
func (r *Registry) SetApprovalForAll(ctx context.Context, operator domain.Address, approved bool) error {
	return r.ledger.update(ctx, func(tx *Tx) error {
		return r.planApprovalForAll(tx, operator, approved)
	})
}

// BalanceOf counts the tokens owned by owner.
func (r *Registry) BalanceOf(owner domain.Address) (uint64, error) {
	if owner.IsZero() {
		return 0, ErrBalanceOfZero
	}
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.base.balances[owner], nil
}

// TotalSupply counts existing tokens.
func (r *Registry) TotalSupply() uint64 {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.base.supply
}

// OwnerOf returns the current owner of id.
func (r *Registry) OwnerOf(id domain.TokenID) (domain.Address, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.base.ownerOf(id)
}

// Exists reports whether id is currently minted.
func (r *Registry) Exists(id domain.TokenID) bool {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.base.exists(id)
}

// GetApproved returns the per-token transfer approval of id.
func (r *Registry) GetApproved(id domain.TokenID) (domain.Address, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	if !r.base.exists(id) {
		return domain.ZeroAddress, ErrApprovedNonexistent
	}
	return r.base.approvals[id], nil
}

// IsApprovedForAll reports whether operator may move all of owner's tokens.
func (r *Registry) IsApprovedForAll(owner, operator domain.Address) bool {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.base.operators[owner][operator]
}

// TokensOf lists the ids owned by owner in ascending order.
func (r *Registry) TokensOf(owner domain.Address) []domain.TokenID {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	ids := make([]domain.TokenID, 0, len(r.base.owned[owner]))
	for id := range r.base.owned[owner] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// TokenState is a consistent snapshot of everything known about one token.
type TokenState struct {
	TokenID      domain.TokenID `json:"token_id"`
	Owner        domain.Address `json:"owner"`
	Approved     domain.Address `json:"approved"`
	Locked       bool           `json:"locked"`
	Locker       domain.Address `json:"locker,omitempty"`
	Expiry       uint64         `json:"expiry,omitempty"`
	LockApproved domain.Address `json:"lock_approved"`
	Master       *TokenRef      `json:"master,omitempty"`
	Slaves       []TokenRef     `json:"slaves"`
	Block        uint64         `json:"block"`
}

// Inspect snapshots id under a single read lock.
func (r *Registry) Inspect(id domain.TokenID) (TokenState, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	now := r.ledger.clock.Now()

	owner, err := r.base.ownerOf(id)
	if err != nil {
		return TokenState{}, err
	}
	st := TokenState{
		TokenID:      id,
		Owner:        owner,
		Approved:     r.base.approvals[id],
		LockApproved: r.locks.approvals[id],
		Slaves:       slices.Clone(r.attach.slaves[id]),
		Block:        now,
	}
	if st.Slaves == nil {
		st.Slaves = []TokenRef{}
	}
	if r.locks.isLocked(id, now) {
		rec := r.locks.records[id]
		st.Locked, st.Locker, st.Expiry = true, rec.Locker, rec.Expiry
	}
	if m, ok := r.attach.masters[id]; ok {
		st.Master = &m
	}
	return st, nil
}
