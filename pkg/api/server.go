// Package api implements the builder engine's HTTP surface: workflow
// turns, direct LLM execution, the sandbox/context-sync bridge,
// parallel batch dispatch, dependency analysis, error recovery, and the
// artifact store.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/codeready-toolchain/builder/pkg/apierr"
	"github.com/codeready-toolchain/builder/pkg/artifact"
	pkgcontext "github.com/codeready-toolchain/builder/pkg/context"
	"github.com/codeready-toolchain/builder/pkg/events"
	"github.com/codeready-toolchain/builder/pkg/health"
	"github.com/codeready-toolchain/builder/pkg/internalauth"
	"github.com/codeready-toolchain/builder/pkg/llmexec"
	"github.com/codeready-toolchain/builder/pkg/parallel"
	"github.com/codeready-toolchain/builder/pkg/ratelimit"
	"github.com/codeready-toolchain/builder/pkg/sandbox"
	"github.com/codeready-toolchain/builder/pkg/workflow"
)

// maxRequestBody bounds any single JSON request body; the ceiling on
// one sandbox write_file or artifact payload.
const maxRequestBody = 2 * 1024 * 1024

// Server is the HTTP composition root: it owns the echo instance and a
// handle to every engine component its routes dispatch to.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	listenAddr string

	workflow  *workflow.Manager
	llm       *llmexec.Executor
	sync      *pkgcontext.Synchronizer
	sandbox   *sandbox.Manager
	parallel  *parallel.Processor
	monitor   *health.Monitor
	recovery  *health.Recovery
	artifacts *artifact.Store

	signer  *internalauth.Signer
	limiter *ratelimit.Limiter

	// connManager and publisher are nil unless cmd/builder wires a
	// NotifyListener (they require a live PostgreSQL LISTEN connection).
	// When nil, handleEventsWS reports 503 and handleCancelSession skips the
	// cross-pod relay, falling back to single-pod local cancellation.
	connManager *events.ConnectionManager
	publisher   *events.EventPublisher
	streams     *streamRegistry

	health healthCache
}

// Deps bundles every component Server dispatches to; built by the
// cmd/builder composition root and handed to New.
type Deps struct {
	Workflow    *workflow.Manager
	LLM         *llmexec.Executor
	Sync        *pkgcontext.Synchronizer
	Sandbox     *sandbox.Manager
	Parallel    *parallel.Processor
	Monitor     *health.Monitor
	Recovery    *health.Recovery
	Artifacts   *artifact.Store
	Signer      *internalauth.Signer
	Limiter     *ratelimit.Limiter
	ConnManager *events.ConnectionManager
	Publisher   *events.EventPublisher
}

// New constructs a Server bound to listenAddr and deps and registers
// every route.
func New(listenAddr string, deps Deps) *Server {
	e := echo.New()

	s := &Server{
		echo:        e,
		listenAddr:  listenAddr,
		workflow:    deps.Workflow,
		llm:         deps.LLM,
		sync:        deps.Sync,
		sandbox:     deps.Sandbox,
		parallel:    deps.Parallel,
		monitor:     deps.Monitor,
		recovery:    deps.Recovery,
		artifacts:   deps.Artifacts,
		signer:      deps.Signer,
		limiter:     deps.Limiter,
		connManager: deps.ConnManager,
		publisher:   deps.Publisher,
		streams:     newStreamRegistry(),
		health:      newHealthCache(30 * time.Second),
	}

	s.echo.Use(middleware.BodyLimit(maxRequestBody))
	s.echo.Use(securityHeaders())

	s.setupRoutes()
	return s
}

// setupRoutes registers the engine's HTTP surface. /health is
// exempt from internal-auth and rate-limiting: it is polled by
// unauthenticated infrastructure (load balancers, orchestrators).
func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.handleHealth)

	g := s.echo.Group("")
	if s.limiter != nil {
		g.Use(ratelimit.Middleware(s.limiter, s.rateLimitKey))
	}
	if s.signer != nil {
		g.Use(internalauth.RequireToken(s.signer))
	}

	g.POST("/workflow/advance", s.handleWorkflowAdvance)
	g.POST("/sessions", s.handleCreateSession)
	g.GET("/sessions", s.handleListSessions)
	g.GET("/sessions/:sessionId", s.handleGetSession)
	g.POST("/sessions/:sessionId/cancel", s.handleCancelSession)

	g.POST("/claude/execute", s.handleClaudeExecute)
	g.POST("/claude/sync", s.handleClaudeSync)

	g.POST("/sandbox", s.handleSandbox)

	g.POST("/parallel", s.handleParallelAction)
	g.GET("/parallel", s.handleParallelStatus)
	g.GET("/dependencies/:sessionId", s.handleDependencies)

	g.POST("/error-recovery", s.handleErrorRecovery)

	g.GET("/artifacts/:sessionId", s.handleArtifactsGet)
	g.POST("/artifacts/:sessionId", s.handleArtifactsPost)

	// Debug/dashboard real-time surface. /claude/execute's SSE body is
	// the primary transport; this WebSocket lets a
	// second observer (a reconnecting tab, a dashboard) watch session,
	// batch, and sandbox status events live without polling.
	g.GET("/events/ws", s.handleEventsWS)
}

// rateLimitKey prefers the verified internal-auth subject over the
// client IP, so a misbehaving internal caller is throttled by identity
// rather than by whatever address its requests happen to arrive from.
func (s *Server) rateLimitKey(c *echo.Context) string {
	if claims, ok := internalauth.ClaimsFrom(c); ok {
		return "sub:" + claims.Subject
	}
	return ratelimit.ByClientIP(c)
}

// Handler returns the server's routed http.Handler, for tests that want
// to drive requests through httptest without binding a real listener.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins serving HTTP, blocking until the listener stops. A
// graceful Shutdown surfaces as http.ErrServerClosed, not an error.
func (s *Server) Start() error {
	s.httpServer = &http.Server{Addr: s.listenAddr, Handler: s.echo}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains in-flight requests within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// writeError renders err as the {error, kind, details?, retryable}
// envelope.
func writeError(c *echo.Context, err error) error {
	env, status := apierr.ToEnvelope(err)
	return c.JSON(status, env)
}

// bindJSON decodes the request body into dst, tagging any failure as a
// ValidationError rather than letting echo's raw bind error escape.
func bindJSON(c *echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return apierr.Wrap(apierr.KindValidation, "malformed request body", err)
	}
	return nil
}

func requireField(name, value string) error {
	if value == "" {
		return apierr.New(apierr.KindValidation, name+" is required")
	}
	return nil
}
