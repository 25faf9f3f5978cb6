package registry

import "tokenregistry/pkg/domain"

// EventKind names a committed state change.
type EventKind string

const (
	EventTransfer              EventKind = "Transfer"
	EventApproval              EventKind = "Approval"
	EventApprovalForAll        EventKind = "ApprovalForAll"
	EventLocked                EventKind = "Locked"
	EventUnlocked              EventKind = "Unlocked"
	EventLockApproval          EventKind = "LockApproval"
	EventLockApprovalForAll    EventKind = "LockApprovalForAll"
	EventSlaveAttached         EventKind = "SlaveAttached"
	EventCollectionAdded       EventKind = "CollectionAdded"
	EventTransferApprovalAdded EventKind = "TransferApprovalAdded"
	EventFactorySet            EventKind = "FactorySet"
	EventRegistryDeployed      EventKind = "RegistryDeployed"
)

// Event describes one committed change. Fields that do not apply to a kind are
// left zero. A mint is a Transfer from the zero address, a burn a Transfer to it.
type Event struct {
	Kind     EventKind      `json:"kind"`
	Registry domain.Address `json:"registry"`
	TokenID  domain.TokenID `json:"token_id"`
	From     domain.Address `json:"from"`
	To       domain.Address `json:"to"`
	Operator domain.Address `json:"operator"`
	Approved bool           `json:"approved,omitempty"`
	Expiry   uint64         `json:"expiry,omitempty"`
	Block    uint64         `json:"block"`
	Data     []byte         `json:"data,omitempty"`
	Master   *TokenRef      `json:"master,omitempty"`
}
