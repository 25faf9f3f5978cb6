package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tokenregistry/internal/audit"
	"tokenregistry/pkg/domain"
	"tokenregistry/pkg/platform/sentinel"
)

const schema = `
CREATE TABLE IF NOT EXISTS audit_events (
	seq         BIGSERIAL PRIMARY KEY,
	id          UUID NOT NULL UNIQUE,
	kind        TEXT NOT NULL,
	category    TEXT NOT NULL,
	registry    TEXT NOT NULL,
	token_id    TEXT,
	block       BIGINT NOT NULL,
	payload     JSONB NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS audit_events_registry_idx ON audit_events (registry, seq);
CREATE INDEX IF NOT EXISTS audit_events_token_idx ON audit_events (registry, token_id, seq);
`

// Store persists records in the audit_events table. Records are stored whole
// as JSONB; the other columns exist for filtering.
type Store struct {
	db *sql.DB
}

var _ audit.Store = (*Store)(nil)

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the table and its indexes when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create audit schema: %w", err)
	}
	return nil
}

func (s *Store) Append(ctx context.Context, records ...audit.Record) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin audit tx: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO audit_events (id, kind, category, registry, token_id, block, payload, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`
	for _, r := range records {
		payload, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal audit record: %w", err)
		}
		var tokenID sql.NullString
		if r.HasToken() {
			tokenID = sql.NullString{String: r.TokenID.String(), Valid: true}
		}
		_, err = tx.ExecContext(ctx, query,
			r.ID,
			string(r.Kind),
			string(r.Category),
			r.Registry.String(),
			tokenID,
			int64(r.Block), //nolint:gosec // block heights stay far below MaxInt64
			payload,
			r.RecordedAt,
		)
		if err != nil {
			return fmt.Errorf("insert audit event: %w: %w", sentinel.ErrUnavailable, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit audit tx: %w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) ListByRegistry(ctx context.Context, reg domain.Address, limit int) ([]audit.Record, error) {
	query := `SELECT payload FROM audit_events WHERE registry = $1 ORDER BY seq DESC`
	args := []any{reg.String()}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	return s.query(ctx, query, args...)
}

func (s *Store) ListByToken(ctx context.Context, reg domain.Address, id domain.TokenID) ([]audit.Record, error) {
	query := `SELECT payload FROM audit_events WHERE registry = $1 AND token_id = $2 ORDER BY seq ASC`
	return s.query(ctx, query, reg.String(), id.String())
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]audit.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer rows.Close()

	var out []audit.Record
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		var r audit.Record
		if err := json.Unmarshal(payload, &r); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return out, nil
}
