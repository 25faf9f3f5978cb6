package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tokenregistry/internal/audit"
	"tokenregistry/internal/bound"
	"tokenregistry/internal/registry"
	"tokenregistry/internal/registry/metrics"
	"tokenregistry/pkg/domain"
	dErrors "tokenregistry/pkg/domain-errors"
	"tokenregistry/pkg/platform/sentinel"
	"tokenregistry/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mocks.go -package=mocks

// MaxMineBlocks bounds a single Mine call.
const MaxMineBlocks = 10_000

// AuditReader serves recorded registry history.
type AuditReader interface {
	ListByRegistry(ctx context.Context, reg domain.Address, limit int) ([]audit.Record, error)
	ListByToken(ctx context.Context, reg domain.Address, id domain.TokenID) ([]audit.Record, error)
}

// Chain is the block producer behind the ledger clock.
type Chain interface {
	Now() uint64
	Advance(n uint64) uint64
}

// BoundFactory deploys bound companions for new registries.
type BoundFactory interface {
	registry.Factory
	Deploy(reg domain.Address) *bound.Companion
}

// Service is the application boundary over a ledger: it resolves registries
// by address, traces and measures every call, and serves audit history.
type Service struct {
	ledger  *registry.Ledger
	chain   Chain
	factory BoundFactory
	history AuditReader
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithAuditReader enables the history queries.
func WithAuditReader(r AuditReader) Option {
	return func(s *Service) {
		s.history = r
	}
}

// WithBoundFactory registers f on the ledger and deploys a companion for
// every registry deployed through the service.
func WithBoundFactory(f BoundFactory) Option {
	return func(s *Service) {
		s.factory = f
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func New(ledger *registry.Ledger, chain Chain, opts ...Option) *Service {
	s := &Service{
		ledger: ledger,
		chain:  chain,
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer("tokenregistry/internal/registry/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.factory != nil {
		ledger.RegisterFactory(s.factory)
	}
	return s
}

// Deploy creates a registry administered by the caller.
func (s *Service) Deploy(ctx context.Context, name, symbol, baseURI string) (*RegistryInfo, error) {
	if name == "" || symbol == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "name and symbol are required")
	}
	ctx, span := s.tracer.Start(ctx, "registry.deploy", trace.WithAttributes(
		attribute.String("name", name),
		attribute.String("symbol", symbol),
	))
	defer span.End()
	start := time.Now()

	var opts []registry.Option
	if baseURI != "" {
		opts = append(opts, registry.WithBaseURI(baseURI))
	}
	r, err := s.ledger.Deploy(ctx, name, symbol, opts...)
	s.finish(ctx, span, "deploy", start, err)
	if err != nil {
		return nil, err
	}
	if s.factory != nil {
		s.factory.Deploy(r.Address())
	}
	if s.metrics != nil {
		s.metrics.IncrementRegistriesDeployed()
	}
	s.logger.InfoContext(ctx, "registry deployed",
		"registry", r.Address().String(),
		"name", name,
		"admin", r.Admin().String(),
	)
	return infoOf(r), nil
}

// Registries lists every deployed registry.
func (s *Service) Registries(_ context.Context) []*RegistryInfo {
	regs := s.ledger.Registries()
	out := make([]*RegistryInfo, 0, len(regs))
	for _, r := range regs {
		out = append(out, infoOf(r))
	}
	return out
}

func (s *Service) Registry(_ context.Context, reg domain.Address) (*RegistryInfo, error) {
	r, err := s.ledger.Registry(reg)
	if err != nil {
		return nil, err
	}
	return infoOf(r), nil
}

// mutate runs fn against reg inside a span and records its outcome.
func (s *Service) mutate(ctx context.Context, op string, reg domain.Address, fn func(context.Context, *registry.Registry) error, attrs ...attribute.KeyValue) error {
	attrs = append(attrs, attribute.String("registry", reg.String()))
	ctx, span := s.tracer.Start(ctx, "registry."+op, trace.WithAttributes(attrs...))
	defer span.End()
	start := time.Now()

	r, err := s.ledger.Registry(reg)
	if err == nil {
		err = fn(ctx, r)
	}
	s.finish(ctx, span, op, start, err)
	return err
}

func (s *Service) finish(ctx context.Context, span trace.Span, op string, start time.Time, err error) {
	result := metrics.ResultOK
	switch {
	case err == nil:
	case dErrors.CodeOf(err) == dErrors.CodeInternal || dErrors.CodeOf(err) == dErrors.CodeTimeout:
		result = metrics.ResultError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "registry operation failed",
			"op", op,
			"caller", requestcontext.Caller(ctx).String(),
			"error", err,
		)
	default:
		result = metrics.ResultRejected
		span.SetAttributes(attribute.String("rejection", err.Error()))
		s.logger.InfoContext(ctx, "registry operation rejected",
			"op", op,
			"caller", requestcontext.Caller(ctx).String(),
			"reason", err.Error(),
		)
	}
	if s.metrics != nil {
		s.metrics.ObserveOperation(op, result, start)
	}
}

func tokenAttr(id domain.TokenID) attribute.KeyValue {
	return attribute.String("token_id", id.String())
}

func (s *Service) Mint(ctx context.Context, reg, to domain.Address, id domain.TokenID) error {
	return s.mutate(ctx, "mint", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.Mint(ctx, to, id)
	}, tokenAttr(id))
}

func (s *Service) MintBatch(ctx context.Context, reg, to domain.Address, ids []domain.TokenID) error {
	return s.mutate(ctx, "mint_batch", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.MintBatch(ctx, to, ids)
	}, attribute.Int("count", len(ids)))
}

func (s *Service) MintRange(ctx context.Context, reg, to domain.Address, fromID, toID domain.TokenID) error {
	return s.mutate(ctx, "mint_range", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.MintRange(ctx, to, fromID, toID)
	}, attribute.String("from_id", fromID.String()), attribute.String("to_id", toID.String()))
}

func (s *Service) Burn(ctx context.Context, reg domain.Address, id domain.TokenID) error {
	return s.mutate(ctx, "burn", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.Burn(ctx, id)
	}, tokenAttr(id))
}

func (s *Service) Transfer(ctx context.Context, reg, from, to domain.Address, id domain.TokenID) error {
	return s.mutate(ctx, "transfer", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.TransferFrom(ctx, from, to, id)
	}, tokenAttr(id))
}

func (s *Service) Approve(ctx context.Context, reg, spender domain.Address, id domain.TokenID) error {
	return s.mutate(ctx, "approve", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.Approve(ctx, spender, id)
	}, tokenAttr(id))
}

func (s *Service) SetApprovalForAll(ctx context.Context, reg, operator domain.Address, approved bool) error {
	return s.mutate(ctx, "set_approval_for_all", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.SetApprovalForAll(ctx, operator, approved)
	}, attribute.Bool("approved", approved))
}

func (s *Service) LockMint(ctx context.Context, reg, to domain.Address, id domain.TokenID, expiry uint64, data []byte) error {
	return s.mutate(ctx, "lock_mint", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.LockMint(ctx, to, id, expiry, data)
	}, tokenAttr(id), attribute.Int64("expiry", int64(expiry))) //nolint:gosec // heights fit int64
}

func (s *Service) Lock(ctx context.Context, reg, owner domain.Address, id domain.TokenID, expiry uint64) error {
	return s.mutate(ctx, "lock", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.LockFrom(ctx, owner, id, expiry)
	}, tokenAttr(id), attribute.Int64("expiry", int64(expiry))) //nolint:gosec // heights fit int64
}

func (s *Service) Unlock(ctx context.Context, reg, owner domain.Address, id domain.TokenID) error {
	return s.mutate(ctx, "unlock", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.UnlockFrom(ctx, owner, id)
	}, tokenAttr(id))
}

func (s *Service) LockApprove(ctx context.Context, reg, spender domain.Address, id domain.TokenID) error {
	return s.mutate(ctx, "lock_approve", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.LockApprove(ctx, spender, id)
	}, tokenAttr(id))
}

func (s *Service) SetLockApprovalForAll(ctx context.Context, reg, operator domain.Address, approved bool) error {
	return s.mutate(ctx, "set_lock_approval_for_all", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.SetLockApprovalForAll(ctx, operator, approved)
	}, attribute.Bool("approved", approved))
}

func (s *Service) AddCollection(ctx context.Context, reg, collection domain.Address) error {
	return s.mutate(ctx, "add_collection", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.AddCollection(ctx, collection)
	}, attribute.String("collection", collection.String()))
}

func (s *Service) AddTransferApproval(ctx context.Context, reg, addr domain.Address) error {
	return s.mutate(ctx, "add_transfer_approval", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.AddTransferApproval(ctx, addr)
	}, attribute.String("approved_address", addr.String()))
}

func (s *Service) SlaveMint(ctx context.Context, reg, to domain.Address, slaveID domain.TokenID, master registry.TokenRef) error {
	return s.mutate(ctx, "slave_mint", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.SlaveMint(ctx, to, slaveID, master.Registry, master.TokenID)
	}, tokenAttr(slaveID), attribute.String("master_registry", master.Registry.String()))
}

func (s *Service) SetFactory(ctx context.Context, reg, factory domain.Address) error {
	return s.mutate(ctx, "set_factory", reg, func(ctx context.Context, r *registry.Registry) error {
		return r.SetFactory(ctx, factory)
	}, attribute.String("factory", factory.String()))
}

// Token snapshots one token together with its URI.
func (s *Service) Token(_ context.Context, reg domain.Address, id domain.TokenID) (*TokenView, error) {
	r, err := s.ledger.Registry(reg)
	if err != nil {
		return nil, err
	}
	st, err := r.Inspect(id)
	if err != nil {
		return nil, err
	}
	uri, err := r.TokenURI(id)
	if err != nil {
		return nil, err
	}
	return &TokenView{TokenState: st, Registry: reg, URI: uri}, nil
}

func (s *Service) Balance(_ context.Context, reg, owner domain.Address) (*BalanceView, error) {
	r, err := s.ledger.Registry(reg)
	if err != nil {
		return nil, err
	}
	n, err := r.BalanceOf(owner)
	if err != nil {
		return nil, err
	}
	return &BalanceView{Owner: owner, Balance: n, Tokens: r.TokensOf(owner)}, nil
}

func (s *Service) Supply(_ context.Context, reg domain.Address) (uint64, error) {
	r, err := s.ledger.Registry(reg)
	if err != nil {
		return 0, err
	}
	return r.TotalSupply(), nil
}

// SlaveByIndex returns the idx-th slave attached to masterID and how many there are.
func (s *Service) SlaveByIndex(_ context.Context, reg domain.Address, masterID domain.TokenID, idx uint64) (*SlaveView, error) {
	r, err := s.ledger.Registry(reg)
	if err != nil {
		return nil, err
	}
	ref, err := r.SlaveTokenByIndex(masterID, idx)
	if err != nil {
		return nil, err
	}
	return &SlaveView{Index: idx, Total: r.AllSlaveTokenLength(masterID), Slave: ref}, nil
}

func (s *Service) Operators(_ context.Context, reg, owner, operator domain.Address) (*OperatorView, error) {
	r, err := s.ledger.Registry(reg)
	if err != nil {
		return nil, err
	}
	return &OperatorView{
		Owner:        owner,
		Operator:     operator,
		Approved:     r.IsApprovedForAll(owner, operator),
		LockApproved: r.IsLockApprovedForAll(owner, operator),
	}, nil
}

// TokenHistory returns the audit trail of one token, oldest first.
func (s *Service) TokenHistory(ctx context.Context, reg domain.Address, id domain.TokenID) ([]audit.Record, error) {
	if s.history == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "audit history not enabled")
	}
	if _, err := s.ledger.Registry(reg); err != nil {
		return nil, err
	}
	records, err := s.history.ListByToken(ctx, reg, id)
	if err != nil {
		return nil, historyError(err, "failed to load token history")
	}
	return records, nil
}

// RegistryHistory returns up to limit records of reg, newest first.
func (s *Service) RegistryHistory(ctx context.Context, reg domain.Address, limit int) ([]audit.Record, error) {
	if s.history == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "audit history not enabled")
	}
	if _, err := s.ledger.Registry(reg); err != nil {
		return nil, err
	}
	records, err := s.history.ListByRegistry(ctx, reg, limit)
	if err != nil {
		return nil, historyError(err, "failed to load registry history")
	}
	return records, nil
}

func historyError(err error, msg string) error {
	if errors.Is(err, sentinel.ErrUnavailable) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "audit store unavailable")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

func (s *Service) Height(_ context.Context) uint64 {
	return s.chain.Now()
}

// Mine advances the chain by n blocks and returns the new height.
func (s *Service) Mine(ctx context.Context, n uint64) (uint64, error) {
	if n == 0 || n > MaxMineBlocks {
		return 0, dErrors.New(dErrors.CodeValidation, "blocks must be between 1 and 10000")
	}
	h := s.chain.Advance(n)
	s.ObserveBlock(h)
	s.logger.InfoContext(ctx, "blocks mined", "count", n, "height", h)
	return h, nil
}

// ObserveBlock publishes the current height to metrics.
func (s *Service) ObserveBlock(height uint64) {
	if s.metrics != nil {
		s.metrics.SetBlockHeight(height)
	}
}
