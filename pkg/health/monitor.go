// Package health implements the health and recovery subsystem: a
// background poller that tracks sandbox liveness and applies the
// recovery strategy table when a sandbox degrades.
package health

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/builder/ent"
	"github.com/codeready-toolchain/builder/ent/sandboxenv"
	"github.com/codeready-toolchain/builder/pkg/sandbox"
)

// DefaultPollInterval is the default sandbox liveness poll cadence.
const DefaultPollInterval = 30 * time.Second

// Status is the in-memory snapshot of one sandbox's health.
type Status struct {
	SessionID           string
	SandboxID           string
	Healthy             bool
	LastCheck           time.Time
	ConsecutiveFailures int
	Error               string
}

// Monitor polls every registered sandbox on a fixed interval and drives
// both the ent-persisted status field and the in-process recovery engine.
type Monitor struct {
	client   *ent.Client
	provider sandbox.Provider
	recovery *Recovery

	pollInterval time.Duration
	pingTimeout  time.Duration

	statuses   map[string]*Status
	statusesMu sync.RWMutex

	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// NewMonitor creates a new sandbox health Monitor.
func NewMonitor(client *ent.Client, provider sandbox.Provider, recovery *Recovery, pollInterval time.Duration) *Monitor {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Monitor{
		client:       client,
		provider:     provider,
		recovery:     recovery,
		pollInterval: pollInterval,
		pingTimeout:  5 * time.Second,
		statuses:     make(map[string]*Status),
		logger:       slog.Default(),
	}
}

// Start launches the background poll loop. Calling Start twice is a no-op.
func (m *Monitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	go m.loop(ctx)
}

// Stop gracefully shuts down the poll loop.
func (m *Monitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	if m.done != nil {
		<-m.done
	}
	m.cancel = nil
	m.done = nil
}

func (m *Monitor) loop(ctx context.Context) {
	defer close(m.done)

	m.checkAll(ctx)
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.checkAll(ctx)
		}
	}
}

// Poll runs a single health check pass synchronously over every tracked
// sandbox. Exposed for manual invocation and tests; the background loop
// calls the same checkAll.
func (m *Monitor) Poll(ctx context.Context) {
	m.checkAll(ctx)
}

func (m *Monitor) checkAll(ctx context.Context) {
	envs, err := m.client.SandboxEnv.Query().
		Where(sandboxenv.StatusNEQ(sandboxenv.StatusTerminated)).
		All(ctx)
	if err != nil {
		m.logger.Warn("health: failed to list sandboxes", "error", err)
		return
	}
	for _, env := range envs {
		m.checkOne(ctx, env)
	}
}

func (m *Monitor) checkOne(ctx context.Context, env *ent.SandboxEnv) {
	checkCtx, cancel := context.WithTimeout(ctx, m.pingTimeout)
	defer cancel()

	start := time.Now()
	_, err := m.provider.Liveness(checkCtx, env.ID)
	elapsed := time.Since(start)

	failures := env.ConsecutiveFailures
	newStatus := sandboxenv.StatusReady
	switch {
	case err == nil && elapsed <= 5*time.Second:
		failures = 0
		newStatus = sandboxenv.StatusReady
	case err == nil:
		failures++
		newStatus = sandboxenv.StatusDegraded
	case failures+1 >= 3:
		failures++
		newStatus = sandboxenv.StatusUnhealthy
	default:
		failures++
		newStatus = sandboxenv.StatusDegraded
	}
	if env.LastHeartbeat != nil && time.Since(*env.LastHeartbeat) > 2*m.pollInterval {
		newStatus = sandboxenv.StatusUnresponsive
	}

	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}

	update := m.client.SandboxEnv.UpdateOneID(env.ID).
		SetStatus(newStatus).
		SetConsecutiveFailures(failures).
		SetLastHeartbeat(time.Now())
	if err != nil {
		update = update.SetLastError(errMsg)
	}
	if upErr := update.Exec(ctx); upErr != nil {
		m.logger.Warn("health: failed to persist sandbox status", "sandbox", env.ID, "error", upErr)
	}

	m.setStatus(env.SessionID, env.ID, newStatus == sandboxenv.StatusReady, failures, errMsg)

	if newStatus == sandboxenv.StatusUnhealthy || newStatus == sandboxenv.StatusUnresponsive {
		if m.recovery != nil {
			go func() {
				if recErr := m.recovery.Recover(context.Background(), env.SessionID, classifyFailure(err)); recErr != nil {
					m.logger.Warn("health: recovery failed", "session", env.SessionID, "error", recErr)
				}
			}()
		}
	}
}

func (m *Monitor) setStatus(sessionID, sandboxID string, healthy bool, failures int, errMsg string) {
	m.statusesMu.Lock()
	defer m.statusesMu.Unlock()
	m.statuses[sessionID] = &Status{
		SessionID: sessionID, SandboxID: sandboxID, Healthy: healthy,
		LastCheck: time.Now(), ConsecutiveFailures: failures, Error: errMsg,
	}
}

// Statuses returns a snapshot of every tracked sandbox's health.
func (m *Monitor) Statuses() map[string]*Status {
	m.statusesMu.RLock()
	defer m.statusesMu.RUnlock()
	result := make(map[string]*Status, len(m.statuses))
	for k, v := range m.statuses {
		cp := *v
		result[k] = &cp
	}
	return result
}

func classifyFailure(err error) FailureKind {
	if err == nil {
		return FailureUnknown
	}
	return FailureCommandFailure
}
