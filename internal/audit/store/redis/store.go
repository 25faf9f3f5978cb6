package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"tokenregistry/internal/audit"
	"tokenregistry/pkg/domain"
	"tokenregistry/pkg/platform/sentinel"
)

const (
	defaultPrefix = "audit"
	recordField   = "record"
)

// StreamStore appends records to redis streams: one stream per registry and
// one per token. Each entry holds the JSON record under a single field.
type StreamStore struct {
	client redis.UniversalClient
	prefix string
	maxLen int64
}

var _ audit.Store = (*StreamStore)(nil)

type Option func(*StreamStore)

// WithPrefix sets the key prefix, "audit" by default.
func WithPrefix(prefix string) Option {
	return func(s *StreamStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithMaxLen caps each stream approximately at n entries.
func WithMaxLen(n int64) Option {
	return func(s *StreamStore) {
		s.maxLen = n
	}
}

func New(client redis.UniversalClient, opts ...Option) *StreamStore {
	s := &StreamStore{client: client, prefix: defaultPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *StreamStore) registryKey(reg domain.Address) string {
	return fmt.Sprintf("%s:registry:%s", s.prefix, reg)
}

func (s *StreamStore) tokenKey(reg domain.Address, id domain.TokenID) string {
	return fmt.Sprintf("%s:token:%s:%s", s.prefix, reg, id)
}

func (s *StreamStore) xadd(ctx context.Context, pipe redis.Pipeliner, key string, payload []byte) {
	args := &redis.XAddArgs{
		Stream: key,
		Values: map[string]any{recordField: payload},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}
	pipe.XAdd(ctx, args)
}

// Append writes all records in one MULTI/EXEC.
func (s *StreamStore) Append(ctx context.Context, records ...audit.Record) error {
	if len(records) == 0 {
		return nil
	}
	payloads := make([][]byte, len(records))
	for i, r := range records {
		payload, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal audit record: %w", err)
		}
		payloads[i] = payload
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, r := range records {
			s.xadd(ctx, pipe, s.registryKey(r.Registry), payloads[i])
			if r.HasToken() {
				s.xadd(ctx, pipe, s.tokenKey(r.Registry, r.TokenID), payloads[i])
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("append audit stream: %w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}

func (s *StreamStore) ListByRegistry(ctx context.Context, reg domain.Address, limit int) ([]audit.Record, error) {
	var (
		msgs []redis.XMessage
		err  error
	)
	if limit > 0 {
		msgs, err = s.client.XRevRangeN(ctx, s.registryKey(reg), "+", "-", int64(limit)).Result()
	} else {
		msgs, err = s.client.XRevRange(ctx, s.registryKey(reg), "+", "-").Result()
	}
	if err != nil {
		return nil, fmt.Errorf("read audit stream: %w: %w", sentinel.ErrUnavailable, err)
	}
	return decode(msgs)
}

func (s *StreamStore) ListByToken(ctx context.Context, reg domain.Address, id domain.TokenID) ([]audit.Record, error) {
	msgs, err := s.client.XRange(ctx, s.tokenKey(reg, id), "-", "+").Result()
	if err != nil {
		return nil, fmt.Errorf("read audit stream: %w: %w", sentinel.ErrUnavailable, err)
	}
	return decode(msgs)
}

func decode(msgs []redis.XMessage) ([]audit.Record, error) {
	out := make([]audit.Record, 0, len(msgs))
	for _, m := range msgs {
		raw, ok := m.Values[recordField].(string)
		if !ok {
			return nil, fmt.Errorf("stream entry %s has no %s field", m.ID, recordField)
		}
		var r audit.Record
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("decode stream entry %s: %w", m.ID, err)
		}
		out = append(out, r)
	}
	return out, nil
}
