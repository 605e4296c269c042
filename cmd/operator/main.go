package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/zkmesh/rollupcore-backend/internal/chain"
	"github.com/zkmesh/rollupcore-backend/internal/clock"
	"github.com/zkmesh/rollupcore-backend/internal/metrics"
	"github.com/zkmesh/rollupcore-backend/internal/repository/clickhouse"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/state"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/verifier"
	"github.com/zkmesh/rollupcore-backend/internal/service/operator"
	"github.com/zkmesh/rollupcore-backend/internal/transport"
	"github.com/zkmesh/rollupcore-backend/pkg/batcher"
	"github.com/zkmesh/rollupcore-backend/pkg/safe"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"OPERATOR_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network       model.Network `long:"network" env:"OPERATOR_NETWORK" description:"network name" required:"true"`
	HTTPAddr      string        `long:"http-addr" env:"OPERATOR_HTTP_ADDR" description:"address for the operator API" default:":8000"`
	MetricsAddr   string        `long:"metrics-addr" env:"OPERATOR_METRICS_ADDR" description:"address for metrics server" default:":2112"`

	L1RPCURL    string `long:"l1-rpc-url" env:"OPERATOR_L1_RPC_URL" description:"L1 RPC endpoint; empty uses a simulated height source"`
	DevL1Height int64  `long:"dev-l1-height" env:"OPERATOR_DEV_L1_HEIGHT" description:"starting height for the simulated L1" default:"1"`

	Validator            string        `long:"validator" env:"OPERATOR_VALIDATOR" description:"validator address recorded on committed blocks" required:"true"`
	GenesisRoot          string        `long:"genesis-root" env:"OPERATOR_GENESIS_ROOT" description:"genesis state root"`
	PriorityExpiration   uint64        `long:"priority-expiration" env:"OPERATOR_PRIORITY_EXPIRATION" description:"L1 blocks an open priority request may wait before exodus" default:"17280"`
	ExpectVerificationIn uint64        `long:"expect-verification-in" env:"OPERATOR_EXPECT_VERIFICATION_IN" description:"L1 blocks a committed block may stay unverified before exodus" default:"1920"`
	AcceptAllProofs      bool          `long:"accept-all-proofs" env:"OPERATOR_ACCEPT_ALL_PROOFS" description:"accept any non-empty proof, devnet only"`
	InboxPruneInterval   time.Duration `long:"inbox-prune-interval" env:"OPERATOR_INBOX_PRUNE_INTERVAL" description:"how often verified proposals and proofs are pruned" default:"1m"`

	EventFlushSize     int           `long:"event-flush-size" env:"OPERATOR_EVENT_FLUSH_SIZE" description:"event journal batch size" default:"64"`
	EventFlushInterval time.Duration `long:"event-flush-interval" env:"OPERATOR_EVENT_FLUSH_INTERVAL" description:"event journal flush interval" default:"5s"`
	EventFlushRPS      int           `long:"event-flush-rps" env:"OPERATOR_EVENT_FLUSH_RPS" description:"event journal flushes per second" default:"10"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}
	if !common.IsHexAddress(cfg.Validator) {
		logger.Fatal("validator must be a hex address", zap.String("validator", cfg.Validator))
	}

	if err := run(ctx, stop, cfg, logger); err != nil {
		logger.Fatal("operator failed", zap.Error(err))
	}
}

func run(ctx context.Context, stop context.CancelFunc, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Network, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("close repository", zap.Error(err))
		}
	}()

	heights, closeHeights, err := newHeightSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeHeights()

	events := batcher.New(logger, repo.InsertEvents, cfg.EventFlushSize, cfg.EventFlushInterval, cfg.EventFlushRPS)
	events.Start(ctx)
	defer events.Stop()

	st := state.New(state.Params{
		PriorityExpiration:   cfg.PriorityExpiration,
		ExpectVerificationIn: cfg.ExpectVerificationIn,
		GenesisRoot:          common.HexToHash(cfg.GenesisRoot),
	}, newProofVerifier(cfg, logger))

	inbox := transport.NewInbox(logger)

	committer, err := operator.NewCommitterService(
		st,
		inbox,
		heights,
		repo,
		events,
		cfg.Network,
		common.HexToAddress(cfg.Validator),
		logger,
		metrics.NewCommitter(cfg.Network),
	)
	if err != nil {
		return err
	}
	verify, err := operator.NewVerifierService(
		st,
		inbox,
		heights,
		repo,
		events,
		cfg.Network,
		logger,
		metrics.NewVerifier(cfg.Network),
	)
	if err != nil {
		return err
	}
	exodus, err := operator.NewExodusService(
		st,
		heights,
		repo,
		events,
		cfg.Network,
		logger,
		metrics.NewExodus(cfg.Network),
	)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	services := map[string]func(context.Context) error{
		"committer": committer.Run,
		"verifier":  verify.Run,
		"exodus":    exodus.Run,
	}
	for name, runFn := range services {
		wg.Add(1)
		go func(name string, runFn func(context.Context) error) {
			defer wg.Done()
			if err := runFn(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("service stopped", zap.String("service", name), zap.Error(err))
				stop()
			}
		}(name, runFn)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		pruneInbox(ctx, inbox, st, cfg.InboxPruneInterval)
	}()

	serveErr := serveAPI(ctx, cfg, st, inbox, heights, repo, events, logger)
	stop()

	wg.Wait()
	return serveErr
}

// newHeightSource picks the L1 height source: a real RPC connection when an
// endpoint is configured, otherwise a local counter for devnet runs.
func newHeightSource(ctx context.Context, cfg config, logger *zap.Logger) (operator.ChainHeight, func(), error) {
	if cfg.L1RPCURL != "" {
		client, err := chain.Dial(ctx, cfg.L1RPCURL, metrics.NewEthClient(cfg.Network))
		if err != nil {
			return nil, nil, fmt.Errorf("init l1 client: %w", err)
		}
		return client, client.Close, nil
	}

	start, err := safe.Uint64(cfg.DevL1Height)
	if err != nil {
		return nil, nil, fmt.Errorf("dev l1 height: %w", err)
	}
	logger.Warn("no L1 RPC configured, using simulated height source",
		zap.Uint64("start", start))
	return chain.NewFixed(start), func() {}, nil
}

func newProofVerifier(cfg config, logger *zap.Logger) verifier.ProofVerifier {
	if cfg.AcceptAllProofs {
		logger.Warn("accepting all proofs, do not use outside devnet")
		return verifier.AcceptAll{}
	}
	return verifier.CommitmentBinding{}
}

// pruneInbox drops buffered proposals and proofs for blocks that are already
// verified.
func pruneInbox(ctx context.Context, inbox *transport.Inbox, st *state.State, interval time.Duration) {
	for {
		if err := clock.SleepWithContext(ctx, interval); err != nil {
			return
		}
		inbox.Drop(st.TotalBlocksVerified())
	}
}

func serveAPI(
	ctx context.Context,
	cfg config,
	st *state.State,
	inbox *transport.Inbox,
	heights operator.ChainHeight,
	repo *clickhouse.Repository,
	events *batcher.Batcher[model.Event],
	logger *zap.Logger,
) error {
	mux := http.NewServeMux()
	inbox.Register(mux)
	transport.NewStatusHandler(st, cfg.Network, logger).Register(mux)
	transport.NewRequestHandler(st, heights, repo, events, logger).Register(mux)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down the operator API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown operator API", zap.Error(err))
		}
	}()

	logger.Info("starting operator API", zap.String("addr", cfg.HTTPAddr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
