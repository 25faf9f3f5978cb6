package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tokenregistry/internal/audit"
	"tokenregistry/internal/platform/metrics"
	"tokenregistry/internal/registry"
	"tokenregistry/internal/registry/service"
	"tokenregistry/pkg/domain"
	dErrors "tokenregistry/pkg/domain-errors"
	"tokenregistry/pkg/platform/httputil"
	adminmw "tokenregistry/pkg/platform/middleware/admin"
	authmw "tokenregistry/pkg/platform/middleware/auth"
	request "tokenregistry/pkg/platform/middleware/request"
	"tokenregistry/pkg/platform/middleware/requesttime"
)

//go:generate mockgen -source=handler.go -destination=mocks/handler_mocks.go -package=mocks Service

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// Service is the registry application service the handler drives.
type Service interface {
	Deploy(ctx context.Context, name, symbol, baseURI string) (*service.RegistryInfo, error)
	Registries(ctx context.Context) []*service.RegistryInfo
	Registry(ctx context.Context, reg domain.Address) (*service.RegistryInfo, error)

	Mint(ctx context.Context, reg, to domain.Address, id domain.TokenID) error
	MintBatch(ctx context.Context, reg, to domain.Address, ids []domain.TokenID) error
	MintRange(ctx context.Context, reg, to domain.Address, fromID, toID domain.TokenID) error
	Burn(ctx context.Context, reg domain.Address, id domain.TokenID) error
	Transfer(ctx context.Context, reg, from, to domain.Address, id domain.TokenID) error
	Approve(ctx context.Context, reg, spender domain.Address, id domain.TokenID) error
	SetApprovalForAll(ctx context.Context, reg, operator domain.Address, approved bool) error

	LockMint(ctx context.Context, reg, to domain.Address, id domain.TokenID, expiry uint64, data []byte) error
	Lock(ctx context.Context, reg, owner domain.Address, id domain.TokenID, expiry uint64) error
	Unlock(ctx context.Context, reg, owner domain.Address, id domain.TokenID) error
	LockApprove(ctx context.Context, reg, spender domain.Address, id domain.TokenID) error
	SetLockApprovalForAll(ctx context.Context, reg, operator domain.Address, approved bool) error

	AddCollection(ctx context.Context, reg, collection domain.Address) error
	AddTransferApproval(ctx context.Context, reg, addr domain.Address) error
	SlaveMint(ctx context.Context, reg, to domain.Address, slaveID domain.TokenID, master registry.TokenRef) error
	SetFactory(ctx context.Context, reg, factory domain.Address) error

	Token(ctx context.Context, reg domain.Address, id domain.TokenID) (*service.TokenView, error)
	Balance(ctx context.Context, reg, owner domain.Address) (*service.BalanceView, error)
	Supply(ctx context.Context, reg domain.Address) (uint64, error)
	SlaveByIndex(ctx context.Context, reg domain.Address, masterID domain.TokenID, idx uint64) (*service.SlaveView, error)
	Operators(ctx context.Context, reg, owner, operator domain.Address) (*service.OperatorView, error)
	TokenHistory(ctx context.Context, reg domain.Address, id domain.TokenID) ([]audit.Record, error)
	RegistryHistory(ctx context.Context, reg domain.Address, limit int) ([]audit.Record, error)

	Height(ctx context.Context) uint64
	Mine(ctx context.Context, n uint64) (uint64, error)
}

// Handler serves the registry HTTP API.
type Handler struct {
	svc          Service
	logger       *slog.Logger
	metrics      *metrics.Metrics
	jwtValidator authmw.JWTValidator
	adminToken   string
	timeout      time.Duration
}

func New(svc Service, logger *slog.Logger, m *metrics.Metrics, jwtValidator authmw.JWTValidator, adminToken string) *Handler {
	return &Handler{
		svc:          svc,
		logger:       logger,
		metrics:      m,
		jwtValidator: jwtValidator,
		adminToken:   adminToken,
		timeout:      30 * time.Second,
	}
}

// Register mounts the registry and chain routes on r.
func (h *Handler) Register(r chi.Router) {
	api := chi.NewRouter()
	api.Use(request.Recovery(h.logger))
	api.Use(request.RequestID)
	api.Use(requesttime.Middleware)
	api.Use(request.Logger(h.logger))
	api.Use(request.Timeout(h.timeout))
	api.Use(request.ContentTypeJSON)
	api.Use(metrics.LatencyMiddleware(h.metrics))

	api.Get("/registries", h.handleListRegistries)
	api.Get("/registries/{registry}", h.handleGetRegistry)
	api.Get("/registries/{registry}/supply", h.handleSupply)
	api.Get("/registries/{registry}/tokens/{id}", h.handleGetToken)
	api.Get("/registries/{registry}/tokens/{id}/slaves/{index}", h.handleSlaveByIndex)
	api.Get("/registries/{registry}/tokens/{id}/history", h.handleTokenHistory)
	api.Get("/registries/{registry}/history", h.handleRegistryHistory)
	api.Get("/registries/{registry}/balances/{address}", h.handleBalance)
	api.Get("/registries/{registry}/operators/{owner}/{operator}", h.handleOperators)
	api.Get("/chain/height", h.handleHeight)

	api.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(h.jwtValidator, h.logger))
		r.Post("/registries", h.handleDeploy)
		r.Post("/registries/{registry}/mint", h.handleMint)
		r.Post("/registries/{registry}/mint-batch", h.handleMintBatch)
		r.Post("/registries/{registry}/mint-range", h.handleMintRange)
		r.Post("/registries/{registry}/burn", h.handleBurn)
		r.Post("/registries/{registry}/transfer", h.handleTransfer)
		r.Post("/registries/{registry}/approve", h.handleApprove)
		r.Post("/registries/{registry}/approval-for-all", h.handleApprovalForAll)
		r.Post("/registries/{registry}/lock-mint", h.handleLockMint)
		r.Post("/registries/{registry}/lock", h.handleLock)
		r.Post("/registries/{registry}/unlock", h.handleUnlock)
		r.Post("/registries/{registry}/lock-approve", h.handleLockApprove)
		r.Post("/registries/{registry}/lock-approval-for-all", h.handleLockApprovalForAll)
		r.Post("/registries/{registry}/collections", h.handleAddCollection)
		r.Post("/registries/{registry}/slave-mint", h.handleSlaveMint)
		r.Post("/registries/{registry}/transfer-approvals", h.handleAddTransferApproval)
		r.Post("/registries/{registry}/factory", h.handleSetFactory)
	})

	api.With(adminmw.RequireAdminToken(h.adminToken, h.logger)).Post("/chain/mine", h.handleMine)

	r.Mount("/", api)
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "request failed",
			"request_id", request.GetRequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}

func pathAddress(r *http.Request, key string) (domain.Address, error) {
	a, err := domain.ParseAddress(chi.URLParam(r, key))
	if err != nil {
		return domain.Address{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid "+key+" address")
	}
	return a, nil
}

func pathTokenID(r *http.Request, key string) (domain.TokenID, error) {
	id, err := domain.ParseTokenID(chi.URLParam(r, key))
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid "+key)
	}
	return id, nil
}

// commit decodes a body into req, resolves the registry path parameter and
// runs fn; the response reports the height the mutation committed at.
func commit[T any](h *Handler, w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, reg domain.Address, req *T) error) {
	ctx := r.Context()
	reg, err := pathAddress(r, "registry")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	req := new(T)
	if err := httputil.DecodeJSON(r, req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if n, ok := any(req).(interface{ Normalize() }); ok {
		n.Normalize()
	}
	if v, ok := any(req).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			h.writeError(ctx, w, err)
			return
		}
	}
	if err := fn(ctx, reg, req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CommitResponse{Registry: reg, Block: h.svc.Height(ctx)})
}

func (h *Handler) handleDeploy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req DeployRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	info, err := h.svc.Deploy(ctx, req.Name, req.Symbol, req.BaseURI)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, info)
}

func (h *Handler) handleMint(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *MintRequest) error {
		return h.svc.Mint(ctx, reg, req.To, req.TokenID)
	})
}

func (h *Handler) handleMintBatch(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *MintBatchRequest) error {
		return h.svc.MintBatch(ctx, reg, req.To, req.TokenIDs)
	})
}

func (h *Handler) handleMintRange(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *MintRangeRequest) error {
		return h.svc.MintRange(ctx, reg, req.To, req.FromID, req.ToID)
	})
}

func (h *Handler) handleBurn(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *BurnRequest) error {
		return h.svc.Burn(ctx, reg, req.TokenID)
	})
}

func (h *Handler) handleTransfer(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *TransferRequest) error {
		return h.svc.Transfer(ctx, reg, req.From, req.To, req.TokenID)
	})
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *ApproveRequest) error {
		return h.svc.Approve(ctx, reg, req.Spender, req.TokenID)
	})
}

func (h *Handler) handleApprovalForAll(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *ApprovalForAllRequest) error {
		return h.svc.SetApprovalForAll(ctx, reg, req.Operator, req.Approved)
	})
}

func (h *Handler) handleLockMint(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *LockMintRequest) error {
		return h.svc.LockMint(ctx, reg, req.To, req.TokenID, req.Expiry, req.Data)
	})
}

func (h *Handler) handleLock(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *LockRequest) error {
		return h.svc.Lock(ctx, reg, req.Owner, req.TokenID, req.Expiry)
	})
}

func (h *Handler) handleUnlock(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *UnlockRequest) error {
		return h.svc.Unlock(ctx, reg, req.Owner, req.TokenID)
	})
}

func (h *Handler) handleLockApprove(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *ApproveRequest) error {
		return h.svc.LockApprove(ctx, reg, req.Spender, req.TokenID)
	})
}

func (h *Handler) handleLockApprovalForAll(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *ApprovalForAllRequest) error {
		return h.svc.SetLockApprovalForAll(ctx, reg, req.Operator, req.Approved)
	})
}

func (h *Handler) handleAddCollection(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *CollectionRequest) error {
		return h.svc.AddCollection(ctx, reg, req.Collection)
	})
}

func (h *Handler) handleSlaveMint(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *SlaveMintRequest) error {
		master := registry.TokenRef{Registry: req.MasterRegistry, TokenID: req.MasterTokenID}
		return h.svc.SlaveMint(ctx, reg, req.To, req.TokenID, master)
	})
}

func (h *Handler) handleAddTransferApproval(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *TransferApprovalRequest) error {
		return h.svc.AddTransferApproval(ctx, reg, req.Address)
	})
}

func (h *Handler) handleSetFactory(w http.ResponseWriter, r *http.Request) {
	commit(h, w, r, func(ctx context.Context, reg domain.Address, req *FactoryRequest) error {
		return h.svc.SetFactory(ctx, reg, req.Factory)
	})
}

func (h *Handler) handleListRegistries(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.svc.Registries(r.Context()))
}

func (h *Handler) handleGetRegistry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reg, err := pathAddress(r, "registry")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	info, err := h.svc.Registry(ctx, reg)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, info)
}

func (h *Handler) handleSupply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reg, err := pathAddress(r, "registry")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	n, err := h.svc.Supply(ctx, reg)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SupplyResponse{Registry: reg, TotalSupply: n})
}

func (h *Handler) handleGetToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reg, err := pathAddress(r, "registry")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	id, err := pathTokenID(r, "id")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	view, err := h.svc.Token(ctx, reg, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleSlaveByIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reg, err := pathAddress(r, "registry")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	id, err := pathTokenID(r, "id")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	idx, err := strconv.ParseUint(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		h.writeError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "invalid index"))
		return
	}
	view, err := h.svc.SlaveByIndex(ctx, reg, id, idx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleTokenHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reg, err := pathAddress(r, "registry")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	id, err := pathTokenID(r, "id")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	records, err := h.svc.TokenHistory(ctx, reg, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) handleRegistryHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reg, err := pathAddress(r, "registry")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxHistoryLimit {
			h.writeError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "limit must be between 1 and 500"))
			return
		}
	}
	records, err := h.svc.RegistryHistory(ctx, reg, limit)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reg, err := pathAddress(r, "registry")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	owner, err := pathAddress(r, "address")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	view, err := h.svc.Balance(ctx, reg, owner)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleOperators(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reg, err := pathAddress(r, "registry")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	owner, err := pathAddress(r, "owner")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	operator, err := pathAddress(r, "operator")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	view, err := h.svc.Operators(ctx, reg, owner, operator)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleHeight(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, HeightResponse{Height: h.svc.Height(r.Context())})
}

func (h *Handler) handleMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req MineRequest
	if r.ContentLength != 0 {
		if err := httputil.DecodeJSON(r, &req); err != nil {
			h.writeError(ctx, w, err)
			return
		}
	}
	req.Normalize()
	height, err := h.svc.Mine(ctx, req.Blocks)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, HeightResponse{Height: height})
}
