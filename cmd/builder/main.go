// Command builder is the orchestration engine's composition root: it
// loads configuration, connects to PostgreSQL (running migrations),
// wires the engine components together, and serves the HTTP API until
// SIGTERM/SIGINT, draining in-flight requests before exit.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codeready-toolchain/builder/pkg/api"
	"github.com/codeready-toolchain/builder/pkg/artifact"
	pkgcontext "github.com/codeready-toolchain/builder/pkg/context"
	"github.com/codeready-toolchain/builder/pkg/config"
	"github.com/codeready-toolchain/builder/pkg/database"
	"github.com/codeready-toolchain/builder/pkg/devloop"
	"github.com/codeready-toolchain/builder/pkg/events"
	"github.com/codeready-toolchain/builder/pkg/health"
	"github.com/codeready-toolchain/builder/pkg/internalauth"
	"github.com/codeready-toolchain/builder/pkg/llmexec"
	"github.com/codeready-toolchain/builder/pkg/parallel"
	"github.com/codeready-toolchain/builder/pkg/ratelimit"
	"github.com/codeready-toolchain/builder/pkg/registry"
	"github.com/codeready-toolchain/builder/pkg/sandbox"
	"github.com/codeready-toolchain/builder/pkg/workflow"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the engine YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath, true)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg.Server.LogLevel)
	slog.Info("starting builder", "listen_addr", cfg.Server.ListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbCfg, err := database.NewConfig(cfg.Database)
	if err != nil {
		slog.Error("failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("error closing database client", "error", err)
		}
	}()
	slog.Info("connected to postgres, migrations applied")

	reg := registry.Default()
	if cfg.SubagentCatalogPath != "" {
		reg, err = registry.LoadCatalog(cfg.SubagentCatalogPath)
		if err != nil {
			slog.Error("failed to load subagent catalog", "error", err, "path", cfg.SubagentCatalogPath)
			os.Exit(1)
		}
	}
	slog.Info("subagent registry loaded", "count", len(reg.Names()))

	store := artifact.NewStore(dbClient.Client)

	publisher := events.NewEventPublisher(dbClient.DB())

	// connManager fans session/global status events out to this pod's
	// WebSocket clients (GET /events/ws); listener LISTENs on the
	// PostgreSQL channels EventPublisher NOTIFYs — per-session channels
	// on demand as clients subscribe, plus the fixed
	// SessionCancelChannel on Start, so a cancel handled by a different
	// pod still reaches this one's in-flight /claude/execute streams.
	connManager := events.NewConnectionManager(10 * time.Second)
	listener := events.NewNotifyListener(dbCfg.DSN(), connManager)
	connManager.SetListener(listener)

	var srv *api.Server
	listener.RegisterHandler(events.SessionCancelChannel, func(payload []byte) {
		var msg struct {
			SessionID string `json:"session_id"`
		}
		if err := json.Unmarshal(payload, &msg); err != nil {
			slog.Warn("malformed session cancel payload", "error", err)
			return
		}
		if srv != nil {
			srv.CancelLocalStream(msg.SessionID)
		}
	})

	if err := listener.Start(ctx); err != nil {
		slog.Error("failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(context.Background())

	sandboxProvider := sandbox.NewHTTPProvider(cfg.Sandbox.BaseURL, cfg.Sandbox.APIKey(), false)
	sandboxMgr := sandbox.NewManager(dbClient.Client, sandboxProvider)

	sessions := pkgcontext.NewEntSession(dbClient.Client)
	synchronizer := pkgcontext.NewSynchronizer(store, sandboxMgr, sessions)

	recovery := health.NewRecovery(dbClient.Client, sandboxMgr, sandboxProvider).WithContextSync(synchronizer)
	if cfg.Health.WarmPoolSize > 0 {
		warmPool := health.NewWarmPool(sandboxProvider, cfg.Health.WarmPoolTemplateID, cfg.Health.WarmPoolSize)
		if err := warmPool.TopUp(ctx); err != nil {
			slog.Warn("failed to pre-warm failover backup pool", "error", err)
		}
		recovery = recovery.WithWarmPool(warmPool)
		go func() {
			ticker := time.NewTicker(time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if err := warmPool.TopUp(ctx); err != nil {
						slog.Warn("failed to top up failover backup pool", "error", err)
					}
				}
			}
		}()
	}
	pollInterval := time.Duration(cfg.Health.PollIntervalMs) * time.Millisecond
	monitor := health.NewMonitor(dbClient.Client, sandboxProvider, recovery, pollInterval)
	monitor.Start(ctx)
	defer monitor.Stop()

	llmProvider := llmexec.NewHTTPProvider(cfg.LLM.BaseURL, cfg.LLM.APIKey(), false)
	executor := llmexec.NewExecutor(llmProvider, store)

	processor := parallel.NewProcessor(dbClient.Client, store, executor, publisher)
	if n, err := processor.Reconcile(ctx); err != nil {
		slog.Error("failed to reconcile in-flight parallel tasks", "error", err)
	} else if n > 0 {
		slog.Info("requeued orphaned parallel tasks", "count", n)
	}

	devManager := devloop.NewManager(dbClient.Client, store, executor, publisher)

	workflowMgr := workflow.NewManager(dbClient.Client, store, reg, executor, processor, devManager, publisher)

	signer := internalauth.NewSigner([]byte(cfg.InternalAuth.SigningSecret()), "builder")
	limiter := ratelimit.New(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	srv = api.New(cfg.Server.ListenAddr, api.Deps{
		Workflow:    workflowMgr,
		LLM:         executor,
		Sync:        synchronizer,
		Sandbox:     sandboxMgr,
		Parallel:    processor,
		Monitor:     monitor,
		Recovery:    recovery,
		Artifacts:   store,
		Signer:      signer,
		Limiter:     limiter,
		ConnManager: connManager,
		Publisher:   publisher,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining in-flight requests")
	case err := <-errCh:
		if err != nil {
			slog.Error("http server exited unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("error during graceful shutdown", "error", err)
	}
}

// setupLogging installs a process-wide slog handler at the configured
// level.
func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
