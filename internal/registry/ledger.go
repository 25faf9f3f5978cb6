package registry

import (
	"bytes"
	"context"
	"encoding/binary"
	"slices"
	"sync"

	"tokenregistry/pkg/domain"
	dErrors "tokenregistry/pkg/domain-errors"
	"tokenregistry/pkg/requestcontext"
)

// Clock supplies the block height lock expiry is evaluated against.
type Clock interface {
	Now() uint64
}

// Subscriber observes the events of one committed call. It runs after the
// ledger lock is released, so it may read from the ledger.
type Subscriber func(ctx context.Context, events []Event)

// Ledger hosts a set of registries and serializes every call against them.
//
// A mutating call runs in a Tx: the block height is sampled once, the call
// and its guards validate against committed state and stage their changes,
// and the staged changes are applied only if nothing failed. A failed call
// therefore leaves every registry untouched, including registries reached
// through attachment cascades.
type Ledger struct {
	mu          sync.RWMutex
	clock       Clock
	registries  map[domain.Address]*Registry
	factories   map[domain.Address]Factory
	subscribers []Subscriber
	nonce       uint64
}

// NewLedger creates an empty ledger driven by clock.
func NewLedger(clock Clock) *Ledger {
	return &Ledger{
		clock:      clock,
		registries: make(map[domain.Address]*Registry),
		factories:  make(map[domain.Address]Factory),
	}
}

// Height returns the current block height.
func (l *Ledger) Height() uint64 {
	return l.clock.Now()
}

// Subscribe registers s for the events of every subsequent committed call.
func (l *Ledger) Subscribe(s Subscriber) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subscribers = append(l.subscribers, s)
}

// RegisterFactory makes a bound companion factory resolvable by address.
func (l *Ledger) RegisterFactory(f Factory) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.factories[f.Address()] = f
}

// Deploy creates a registry administered by the caller.
func (l *Ledger) Deploy(ctx context.Context, name, symbol string, opts ...Option) (*Registry, error) {
	var deployed *Registry
	err := l.update(ctx, func(tx *Tx) error {
		var nonce [8]byte
		binary.BigEndian.PutUint64(nonce[:], l.nonce)
		addr := domain.DeriveAddress([]byte(name), tx.caller[:], nonce[:])
		if _, exists := l.registries[addr]; exists {
			return ErrRegistryExists
		}

		r := newRegistry(l, addr, name, symbol, tx.caller, opts...)
		tx.stage(func() {
			l.registries[addr] = r
			l.nonce++
		})
		tx.emit(Event{Kind: EventRegistryDeployed, Registry: addr, Operator: tx.caller})
		deployed = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deployed, nil
}

// Registry looks up a deployed registry.
func (l *Ledger) Registry(addr domain.Address) (*Registry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.registries[addr]
	if !ok {
		return nil, ErrRegistryNotFound
	}
	return r, nil
}

// Collection returns the capability handle of a deployed registry.
func (l *Ledger) Collection(addr domain.Address) (MasterCollection, error) {
	r, err := l.Registry(addr)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Registries lists deployed registries ordered by address.
func (l *Ledger) Registries() []*Registry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Registry, 0, len(l.registries))
	for _, r := range l.registries {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b *Registry) int {
		return bytes.Compare(a.address[:], b.address[:])
	})
	return out
}

func (l *Ledger) update(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	caller := requestcontext.Caller(ctx)
	if caller.IsZero() {
		return ErrAnonymousCaller
	}

	l.mu.Lock()
	tx := &Tx{ledger: l, now: l.clock.Now(), caller: caller}
	if err := fn(tx); err != nil {
		l.mu.Unlock()
		return err
	}
	tx.commit()
	subscribers := slices.Clone(l.subscribers)
	l.mu.Unlock()

	if len(tx.events) > 0 {
		for _, s := range subscribers {
			s(ctx, tx.events)
		}
	}
	return nil
}

// Tx is one serialized call. Guards read committed state through it and
// stage follow-up changes; staged changes become visible only at commit.
type Tx struct {
	ledger  *Ledger
	now     uint64
	caller  domain.Address
	changes []func()
	events  []Event
}

// Now is the block height sampled when the call started.
func (tx *Tx) Now() uint64 {
	return tx.now
}

// Caller is the address that issued the call.
func (tx *Tx) Caller() domain.Address {
	return tx.caller
}

// Collection resolves another registry's capability handle without
// re-entering the ledger lock.
func (tx *Tx) Collection(addr domain.Address) (MasterCollection, bool) {
	r, ok := tx.ledger.registries[addr]
	if !ok {
		return nil, false
	}
	return collectionView{r: r}, true
}

func (tx *Tx) registry(addr domain.Address) (*Registry, bool) {
	r, ok := tx.ledger.registries[addr]
	return r, ok
}

// stage queues a state change. Changes must be relative to the state they
// find at commit (increment, delete) so their order inside a call is free.
func (tx *Tx) stage(apply func()) {
	tx.changes = append(tx.changes, apply)
}

func (tx *Tx) emit(e Event) {
	e.Block = tx.now
	tx.events = append(tx.events, e)
}

func (tx *Tx) commit() {
	for _, apply := range tx.changes {
		apply()
	}
}
