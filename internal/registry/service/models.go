package service

import (
	"tokenregistry/internal/registry"
	"tokenregistry/pkg/domain"
)

// RegistryInfo describes a deployed registry.
type RegistryInfo struct {
	Address     domain.Address `json:"address"`
	Name        string         `json:"name"`
	Symbol      string         `json:"symbol"`
	Admin       domain.Address `json:"admin"`
	Factory     domain.Address `json:"factory"`
	TotalSupply uint64         `json:"total_supply"`
}

func infoOf(r *registry.Registry) *RegistryInfo {
	return &RegistryInfo{
		Address:     r.Address(),
		Name:        r.Name(),
		Symbol:      r.Symbol(),
		Admin:       r.Admin(),
		Factory:     r.Factory(),
		TotalSupply: r.TotalSupply(),
	}
}

type TokenView struct {
	registry.TokenState
	Registry domain.Address `json:"registry"`
	URI      string         `json:"uri"`
}

type BalanceView struct {
	Owner   domain.Address   `json:"owner"`
	Balance uint64           `json:"balance"`
	Tokens  []domain.TokenID `json:"tokens"`
}

type SlaveView struct {
	Index uint64            `json:"index"`
	Total uint64            `json:"total"`
	Slave registry.TokenRef `json:"slave"`
}

type OperatorView struct {
	Owner        domain.Address `json:"owner"`
	Operator     domain.Address `json:"operator"`
	Approved     bool           `json:"approved"`
	LockApproved bool           `json:"lock_approved"`
}
