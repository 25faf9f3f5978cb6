package handler

import (
	"strings"

	"tokenregistry/internal/registry"
	"tokenregistry/pkg/domain"
	dErrors "tokenregistry/pkg/domain-errors"
)

const (
	maxNameLength   = 64
	maxSymbolLength = 16
	maxBaseURI      = 512
	maxLockData     = 4096
)

type DeployRequest struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	BaseURI string `json:"base_uri"`
}

func (r *DeployRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Symbol = strings.TrimSpace(r.Symbol)
	r.BaseURI = strings.TrimSpace(r.BaseURI)
}

func (r *DeployRequest) Validate() error {
	switch {
	case r.Name == "" || r.Symbol == "":
		return dErrors.New(dErrors.CodeValidation, "name and symbol are required")
	case len(r.Name) > maxNameLength:
		return dErrors.New(dErrors.CodeValidation, "name too long")
	case len(r.Symbol) > maxSymbolLength:
		return dErrors.New(dErrors.CodeValidation, "symbol too long")
	case len(r.BaseURI) > maxBaseURI:
		return dErrors.New(dErrors.CodeValidation, "base_uri too long")
	}
	return nil
}

type MintRequest struct {
	To      domain.Address `json:"to"`
	TokenID domain.TokenID `json:"token_id"`
}

type MintBatchRequest struct {
	To       domain.Address   `json:"to"`
	TokenIDs []domain.TokenID `json:"token_ids"`
}

func (r *MintBatchRequest) Validate() error {
	if len(r.TokenIDs) == 0 {
		return dErrors.New(dErrors.CodeValidation, "token_ids must not be empty")
	}
	if len(r.TokenIDs) > registry.MaxBatchSize {
		return registry.ErrBatchTooLarge
	}
	return nil
}

type MintRangeRequest struct {
	To     domain.Address `json:"to"`
	FromID domain.TokenID `json:"from_id"`
	ToID   domain.TokenID `json:"to_id"`
}

type BurnRequest struct {
	TokenID domain.TokenID `json:"token_id"`
}

type TransferRequest struct {
	From    domain.Address `json:"from"`
	To      domain.Address `json:"to"`
	TokenID domain.TokenID `json:"token_id"`
}

// ApproveRequest serves both approve and lock-approve.
type ApproveRequest struct {
	Spender domain.Address `json:"spender"`
	TokenID domain.TokenID `json:"token_id"`
}

// ApprovalForAllRequest serves both approval-for-all and lock-approval-for-all.
type ApprovalForAllRequest struct {
	Operator domain.Address `json:"operator"`
	Approved bool           `json:"approved"`
}

type LockMintRequest struct {
	To      domain.Address `json:"to"`
	TokenID domain.TokenID `json:"token_id"`
	Expiry  uint64         `json:"expiry"`
	Data    []byte         `json:"data,omitempty"`
}

func (r *LockMintRequest) Validate() error {
	if len(r.Data) > maxLockData {
		return dErrors.New(dErrors.CodeValidation, "data too large")
	}
	return nil
}

type LockRequest struct {
	Owner   domain.Address `json:"owner"`
	TokenID domain.TokenID `json:"token_id"`
	Expiry  uint64         `json:"expiry"`
}

type UnlockRequest struct {
	Owner   domain.Address `json:"owner"`
	TokenID domain.TokenID `json:"token_id"`
}

type CollectionRequest struct {
	Collection domain.Address `json:"collection"`
}

type SlaveMintRequest struct {
	To             domain.Address `json:"to"`
	TokenID        domain.TokenID `json:"token_id"`
	MasterRegistry domain.Address `json:"master_registry"`
	MasterTokenID  domain.TokenID `json:"master_token_id"`
}

type TransferApprovalRequest struct {
	Address domain.Address `json:"address"`
}

type FactoryRequest struct {
	Factory domain.Address `json:"factory"`
}

type MineRequest struct {
	Blocks uint64 `json:"blocks"`
}

func (r *MineRequest) Normalize() {
	if r.Blocks == 0 {
		r.Blocks = 1
	}
}

// CommitResponse acknowledges a committed mutation.
type CommitResponse struct {
	Registry domain.Address `json:"registry"`
	Block    uint64         `json:"block"`
}

type SupplyResponse struct {
	Registry    domain.Address `json:"registry"`
	TotalSupply uint64         `json:"total_supply"`
}

type HeightResponse struct {
	Height uint64 `json:"height"`
}
