package audit

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"tokenregistry/internal/registry"
	"tokenregistry/pkg/domain"
)

// ErrBufferFull is returned by Emit in async mode when the worker lags.
var ErrBufferFull = errors.New("audit buffer full")

// ErrClosed is returned by Emit after Close.
var ErrClosed = errors.New("audit publisher closed")

// Publisher records committed registry events. In sync mode every Emit
// appends directly; with WithAsyncBuffer a Worker appends in the background.
type Publisher struct {
	store  Store
	logger *slog.Logger

	mu     sync.RWMutex
	inbox  chan []Record
	closed bool
	done   chan struct{}
}

type Option func(*Publisher)

// WithAsyncBuffer makes Emit non-blocking with room for n pending batches.
func WithAsyncBuffer(n int) Option {
	return func(p *Publisher) {
		if n > 0 {
			p.inbox = make(chan []Record, n)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{
		store:  store,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.inbox != nil {
		p.done = make(chan struct{})
		w := NewWorker(store, p.inbox, p.logger)
		go func() {
			defer close(p.done)
			_ = w.Run(context.Background())
		}()
	}
	return p
}

// Emit records a batch.
func (p *Publisher) Emit(ctx context.Context, records ...Record) error {
	if len(records) == 0 {
		return nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	if p.inbox == nil {
		return p.store.Append(ctx, records...)
	}
	select {
	case p.inbox <- records:
		return nil
	default:
		return ErrBufferFull
	}
}

// Subscriber adapts the publisher to the ledger's event fan-out.
func (p *Publisher) Subscriber() registry.Subscriber {
	return func(ctx context.Context, events []registry.Event) {
		records := make([]Record, 0, len(events))
		for _, e := range events {
			records = append(records, FromEvent(ctx, e))
		}
		if err := p.Emit(ctx, records...); err != nil {
			p.logger.ErrorContext(ctx, "failed to emit audit records",
				"error", err,
				"count", len(records),
			)
		}
	}
}

func (p *Publisher) ListByRegistry(ctx context.Context, reg domain.Address, limit int) ([]Record, error) {
	return p.store.ListByRegistry(ctx, reg, limit)
}

func (p *Publisher) ListByToken(ctx context.Context, reg domain.Address, id domain.TokenID) ([]Record, error) {
	return p.store.ListByToken(ctx, reg, id)
}

// Close stops accepting records and, in async mode, waits for the worker
// to drain what is pending.
func (p *Publisher) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	if p.inbox != nil {
		close(p.inbox)
	}
	p.mu.Unlock()

	if p.done != nil {
		<-p.done
	}
}
