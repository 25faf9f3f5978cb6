package registry

import "tokenregistry/pkg/domain"

// baseState is the ERC-721 bookkeeping of one registry. A token exists iff it
// has an entry in owners.
type baseState struct {
	owners    map[domain.TokenID]domain.Address
	balances  map[domain.Address]uint64
	owned     map[domain.Address]map[domain.TokenID]struct{}
	approvals map[domain.TokenID]domain.Address
	operators map[domain.Address]map[domain.Address]bool
	supply    uint64
}

func newBaseState() *baseState {
	return &baseState{
		owners:    make(map[domain.TokenID]domain.Address),
		balances:  make(map[domain.Address]uint64),
		owned:     make(map[domain.Address]map[domain.TokenID]struct{}),
		approvals: make(map[domain.TokenID]domain.Address),
		operators: make(map[domain.Address]map[domain.Address]bool),
	}
}

func (b *baseState) exists(id domain.TokenID) bool {
	_, ok := b.owners[id]
	return ok
}

func (b *baseState) ownerOf(id domain.TokenID) (domain.Address, error) {
	owner, ok := b.owners[id]
	if !ok {
		return domain.ZeroAddress, ErrNonexistentToken
	}
	return owner, nil
}

// isApprovedOrOwner expects an existing token and a non-zero spender.
func (b *baseState) isApprovedOrOwner(spender domain.Address, id domain.TokenID) bool {
	owner := b.owners[id]
	return spender == owner || b.approvals[id] == spender || b.operators[owner][spender]
}

// move reassigns id to to, minting when id has no owner and burning when to
// is the zero address. The per-token approval never survives a move.
func (b *baseState) move(id domain.TokenID, to domain.Address) {
	if from, ok := b.owners[id]; ok {
		b.balances[from]--
		if b.balances[from] == 0 {
			delete(b.balances, from)
		}
		delete(b.owned[from], id)
		if len(b.owned[from]) == 0 {
			delete(b.owned, from)
		}
	} else {
		b.supply++
	}
	delete(b.approvals, id)

	if to.IsZero() {
		delete(b.owners, id)
		b.supply--
		return
	}
	b.owners[id] = to
	b.balances[to]++
	if b.owned[to] == nil {
		b.owned[to] = make(map[domain.TokenID]struct{})
	}
	b.owned[to][id] = struct{}{}
}

func (r *Registry) planMint(tx *Tx, to domain.Address, id domain.TokenID) error {
	if to.IsZero() {
		return ErrMintToZero
	}
	if r.base.exists(id) {
		return ErrTokenAlreadyMinted
	}
	if err := r.runGuards(tx, Update{Registry: r.address, TokenID: id, To: to, Operator: tx.caller}); err != nil {
		return err
	}

	tx.stage(func() {
		r.base.move(id, to)
		r.mirror(id, true)
	})
	tx.emit(Event{Kind: EventTransfer, Registry: r.address, TokenID: id, To: to, Operator: tx.caller})
	return nil
}

// planTransfer stages a transfer. Cascaded transfers skip the caller
// authorization check: the master's transfer already passed it.
func (r *Registry) planTransfer(tx *Tx, from, to domain.Address, id domain.TokenID, operator domain.Address, cascade bool) error {
	owner, err := r.base.ownerOf(id)
	if err != nil {
		return err
	}
	if !cascade && !r.base.isApprovedOrOwner(tx.caller, id) {
		return ErrTransferNotApproved
	}
	if owner != from {
		return ErrTransferWrongOwner
	}
	if to.IsZero() {
		return ErrTransferToZero
	}
	u := Update{Registry: r.address, TokenID: id, From: from, To: to, Operator: operator, Cascade: cascade}
	if err := r.runGuards(tx, u); err != nil {
		return err
	}

	tx.stage(func() {
		r.base.move(id, to)
		delete(r.locks.approvals, id)
	})
	tx.emit(Event{Kind: EventTransfer, Registry: r.address, TokenID: id, From: from, To: to, Operator: operator})
	return nil
}

func (r *Registry) planBurn(tx *Tx, id domain.TokenID, operator domain.Address, cascade bool) error {
	owner, err := r.base.ownerOf(id)
	if err != nil {
		return err
	}
	if !cascade && !r.base.isApprovedOrOwner(tx.caller, id) {
		return ErrBurnNotApproved
	}
	u := Update{Registry: r.address, TokenID: id, From: owner, Operator: operator, Cascade: cascade}
	if err := r.runGuards(tx, u); err != nil {
		return err
	}

	tx.stage(func() {
		r.base.move(id, domain.ZeroAddress)
		r.locks.forget(id)
		r.mirror(id, false)
	})
	tx.emit(Event{Kind: EventTransfer, Registry: r.address, TokenID: id, From: owner, Operator: operator})
	return nil
}

func (r *Registry) planApprove(tx *Tx, spender domain.Address, id domain.TokenID) error {
	owner, err := r.base.ownerOf(id)
	if err != nil {
		return err
	}
	if spender == owner {
		return ErrApprovalToOwner
	}
	if tx.caller != owner && !r.base.operators[owner][tx.caller] {
		return ErrApproveNotApproved
	}

	tx.stage(func() {
		if spender.IsZero() {
			delete(r.base.approvals, id)
			return
		}
		r.base.approvals[id] = spender
	})
	tx.emit(Event{Kind: EventApproval, Registry: r.address, TokenID: id, From: owner, To: spender, Operator: tx.caller})
	return nil
}

func (r *Registry) planApprovalForAll(tx *Tx, operator domain.Address, approved bool) error {
	owner := tx.caller
	if operator == owner {
		return ErrApproveToCaller
	}

	tx.stage(func() {
		setFlag(r.base.operators, owner, operator, approved)
	})
	tx.emit(Event{Kind: EventApprovalForAll, Registry: r.address, From: owner, Operator: operator, Approved: approved})
	return nil
}

func setFlag(m map[domain.Address]map[domain.Address]bool, owner, operator domain.Address, on bool) {
	if !on {
		delete(m[owner], operator)
		if len(m[owner]) == 0 {
			delete(m, owner)
		}
		return
	}
	if m[owner] == nil {
		m[owner] = make(map[domain.Address]bool)
	}
	m[owner][operator] = true
}
