package registry

import "tokenregistry/pkg/domain"

// Update describes one ownership change about to be staged: a mint when From
// is zero, a burn when To is zero, a transfer otherwise.
type Update struct {
	Registry domain.Address
	TokenID  domain.TokenID
	From     domain.Address
	To       domain.Address
	Operator domain.Address
	// Cascade marks changes derived from a master token's transfer or burn.
	Cascade bool
}

func (u Update) IsMint() bool { return u.From.IsZero() }
func (u Update) IsBurn() bool { return u.To.IsZero() }

// Guard vets an ownership change before it is staged. Returning an error
// aborts the whole call. Guards may stage further changes through tx,
// including ownership changes on other registries.
type Guard interface {
	BeforeUpdate(tx *Tx, u Update) error
}

// GuardFunc adapts a function to Guard.
type GuardFunc func(tx *Tx, u Update) error

func (f GuardFunc) BeforeUpdate(tx *Tx, u Update) error {
	return f(tx, u)
}
