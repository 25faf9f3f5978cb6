package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tokenregistry/internal/registry"
	"tokenregistry/pkg/domain"
	"tokenregistry/pkg/requestcontext"
)

// Category groups records by the part of the registry that produced them.
type Category string

const (
	CategoryOwnership Category = "ownership"
	CategoryLock      Category = "lock"
	CategoryAttach    Category = "attach"
	CategoryAdmin     Category = "admin"
)

var kindCategories = map[registry.EventKind]Category{
	registry.EventTransfer:              CategoryOwnership,
	registry.EventApproval:              CategoryOwnership,
	registry.EventApprovalForAll:        CategoryOwnership,
	registry.EventLocked:                CategoryLock,
	registry.EventUnlocked:              CategoryLock,
	registry.EventLockApproval:          CategoryLock,
	registry.EventLockApprovalForAll:    CategoryLock,
	registry.EventSlaveAttached:         CategoryAttach,
	registry.EventCollectionAdded:       CategoryAttach,
	registry.EventTransferApprovalAdded: CategoryAttach,
	registry.EventFactorySet:            CategoryAdmin,
	registry.EventRegistryDeployed:      CategoryAdmin,
}

// CategoryOf returns the category of kind; unknown kinds are admin records.
func CategoryOf(kind registry.EventKind) Category {
	if c, ok := kindCategories[kind]; ok {
		return c
	}
	return CategoryAdmin
}

// Record is one committed registry event as persisted by a Store.
type Record struct {
	ID         uuid.UUID          `json:"id"`
	Kind       registry.EventKind `json:"kind"`
	Category   Category           `json:"category"`
	Registry   domain.Address     `json:"registry"`
	TokenID    domain.TokenID     `json:"token_id"`
	From       domain.Address     `json:"from"`
	To         domain.Address     `json:"to"`
	Operator   domain.Address     `json:"operator"`
	Approved   bool               `json:"approved,omitempty"`
	Expiry     uint64             `json:"expiry,omitempty"`
	Block      uint64             `json:"block"`
	Master     *registry.TokenRef `json:"master,omitempty"`
	RequestID  string             `json:"request_id,omitempty"`
	RecordedAt time.Time          `json:"recorded_at"`
}

// FromEvent builds the record of e, stamping request id and time from ctx.
func FromEvent(ctx context.Context, e registry.Event) Record {
	return Record{
		ID:         uuid.New(),
		Kind:       e.Kind,
		Category:   CategoryOf(e.Kind),
		Registry:   e.Registry,
		TokenID:    e.TokenID,
		From:       e.From,
		To:         e.To,
		Operator:   e.Operator,
		Approved:   e.Approved,
		Expiry:     e.Expiry,
		Block:      e.Block,
		Master:     e.Master,
		RequestID:  requestcontext.RequestID(ctx),
		RecordedAt: requestcontext.Now(ctx).UTC(),
	}
}

// HasToken reports whether the record concerns one token rather than a
// registry-wide setting.
func (r Record) HasToken() bool {
	switch r.Kind {
	case registry.EventApprovalForAll, registry.EventLockApprovalForAll,
		registry.EventCollectionAdded, registry.EventTransferApprovalAdded,
		registry.EventFactorySet, registry.EventRegistryDeployed:
		return false
	}
	return true
}
