package registry

import (
	"context"

	"tokenregistry/pkg/domain"
)

// MaxBatchSize bounds the number of ids one batch call may mint.
const MaxBatchSize = 1000

// MintBatch mints every id in ids to to, or none of them. Admin only.
func (r *Registry) MintBatch(ctx context.Context, to domain.Address, ids []domain.TokenID) error {
	if len(ids) > MaxBatchSize {
		return ErrBatchTooLarge
	}
	return r.ledger.update(ctx, func(tx *Tx) error {
		if err := r.requireAdmin(tx); err != nil {
			return err
		}
		return r.planMintAll(tx, to, ids)
	})
}

// MintRange mints fromID through toID inclusive, or none of them. Admin only.
func (r *Registry) MintRange(ctx context.Context, to domain.Address, fromID, toID domain.TokenID) error {
	if fromID > toID {
		return ErrInvalidRange
	}
	if toID-fromID >= MaxBatchSize {
		return ErrBatchTooLarge
	}
	ids := make([]domain.TokenID, 0, toID-fromID+1)
	for id := fromID; ; id++ {
		ids = append(ids, id)
		if id == toID {
			break
		}
	}
	return r.ledger.update(ctx, func(tx *Tx) error {
		if err := r.requireAdmin(tx); err != nil {
			return err
		}
		return r.planMintAll(tx, to, ids)
	})
}

// planMintAll validates each id against committed state and against the
// ids earlier in the same batch.
func (r *Registry) planMintAll(tx *Tx, to domain.Address, ids []domain.TokenID) error {
	seen := make(map[domain.TokenID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return ErrTokenAlreadyMinted
		}
		seen[id] = struct{}{}
		if err := r.planMint(tx, to, id); err != nil {
			return err
		}
	}
	return nil
}
