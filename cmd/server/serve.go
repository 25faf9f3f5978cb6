package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"tokenregistry/internal/audit"
	auditmemory "tokenregistry/internal/audit/store/memory"
	auditpostgres "tokenregistry/internal/audit/store/postgres"
	auditredis "tokenregistry/internal/audit/store/redis"
	"tokenregistry/internal/bound"
	"tokenregistry/internal/chain"
	jwttoken "tokenregistry/internal/jwt_token"
	"tokenregistry/internal/platform/config"
	"tokenregistry/internal/platform/httpserver"
	"tokenregistry/internal/platform/logger"
	platformmetrics "tokenregistry/internal/platform/metrics"
	"tokenregistry/internal/platform/postgres"
	platformredis "tokenregistry/internal/platform/redis"
	"tokenregistry/internal/registry"
	"tokenregistry/internal/registry/handler"
	registrymetrics "tokenregistry/internal/registry/metrics"
	"tokenregistry/internal/registry/service"
	httptransport "tokenregistry/internal/transport/http"
	"tokenregistry/pkg/domain"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the registry API and block producer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("addr", "", "listen address")
	cmd.Flags().Duration("block-interval", 0, "interval between produced blocks, 0 disables the producer")
	cmd.Flags().String("audit-sink", "", "audit sink (memory, redis, postgres)")
	_ = v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = v.BindPFlag("chain.block_interval", cmd.Flags().Lookup("block-interval"))
	_ = v.BindPFlag("audit.sink", cmd.Flags().Lookup("audit-sink"))
	return cmd
}

// auditSink is an opened audit store with its health check and teardown.
type auditSink struct {
	store  audit.Store
	checks map[string]httptransport.HealthCheck
	close  func() error
}

func openAuditSink(ctx context.Context, cfg config.Config) (*auditSink, error) {
	switch cfg.Audit.Sink {
	case config.SinkRedis:
		client, err := platformredis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return &auditSink{
			store:  auditredis.New(client.Client, auditredis.WithPrefix(cfg.Audit.Stream)),
			checks: map[string]httptransport.HealthCheck{"redis": client.Health},
			close:  client.Close,
		}, nil
	case config.SinkPostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		store := auditpostgres.New(db)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create audit schema: %w", err)
		}
		return &auditSink{
			store:  store,
			checks: map[string]httptransport.HealthCheck{"postgres": db.PingContext},
			close:  db.Close,
		}, nil
	default:
		return &auditSink{
			store: auditmemory.NewInMemoryStore(),
			close: func() error { return nil },
		}, nil
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	log := logger.New(cfg.Server.LogLevel)

	sink, err := openAuditSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.close(); err != nil {
			log.Error("failed to close audit sink", "error", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	clock := chain.NewClock(cfg.Chain.StartHeight)
	ledger := registry.NewLedger(clock)

	publisher := audit.NewPublisher(sink.store,
		audit.WithAsyncBuffer(cfg.Audit.BufferSize),
		audit.WithLogger(log),
	)
	defer publisher.Close()
	ledger.Subscribe(publisher.Subscriber())

	factory := bound.NewFactory(domain.DeriveAddress([]byte("bound-factory")), cfg.Bound.BaseURI)

	svc := service.New(ledger, clock,
		service.WithLogger(log),
		service.WithMetrics(registrymetrics.New(reg)),
		service.WithAuditReader(publisher),
		service.WithBoundFactory(factory),
	)

	jwt := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, apiAudience)
	h := handler.New(svc, log, platformmetrics.New(reg), jwttoken.NewJWTServiceAdapter(jwt), cfg.Server.AdminToken)
	router := httptransport.NewRouter(reg, sink.checks, h)
	srv := httpserver.New(cfg.Server.Addr, router, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("registry API listening",
			"addr", cfg.Server.Addr,
			"audit_sink", cfg.Audit.Sink,
			"bound_factory", factory.Address().String(),
			"height", clock.Now(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if cfg.Chain.BlockInterval > 0 {
		g.Go(func() error {
			err := clock.Run(gctx, cfg.Chain.BlockInterval, svc.ObserveBlock)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	} else {
		log.Info("block producer disabled; blocks advance only through /chain/mine")
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		return err
	}
	log.Info("server stopped", slog.Uint64("height", clock.Now()))
	return nil
}
