package health

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/builder/ent"
	"github.com/codeready-toolchain/builder/ent/sandboxenv"
	pkgcontext "github.com/codeready-toolchain/builder/pkg/context"
	"github.com/codeready-toolchain/builder/pkg/sandbox"
)

// FailureKind classifies why a sandbox failed, which in turn picks the
// starting point in the recovery strategy table.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureCommandFailure
	FailureUnresponsive
	FailureCorruptedState
	FailureQuotaExceeded
)

// Strategy is one of the four escalating recovery actions.
type Strategy int

const (
	// StrategyRestart (S1) re-probes the sandbox's liveness: if it answers,
	// the sandbox is marked ready again with its failure count reset; if
	// not, recovery moves straight to a state-preserving recreate. No
	// command is re-run and no restart is issued to the sandbox.
	StrategyRestart Strategy = iota
	// StrategyRecreate (S2) tears down and reprovisions the sandbox,
	// preserving session state via a from_sandbox sync beforehand.
	StrategyRecreate
	// StrategyCleanSlate (S3) reprovisions with no attempt to preserve
	// sandbox-local state.
	StrategyCleanSlate
	// StrategyFailover (S4) swaps the session onto a pre-warmed backup
	// sandbox when one is available, preserving .pria/ context across the
	// swap; when no backup is available it falls back to marking the
	// session failed for manual operator intervention.
	StrategyFailover
)

func (s Strategy) String() string {
	switch s {
	case StrategyRestart:
		return "restart"
	case StrategyRecreate:
		return "recreate"
	case StrategyCleanSlate:
		return "clean_slate"
	case StrategyFailover:
		return "failover"
	default:
		return "unknown"
	}
}

// strategyFor maps a failure kind to its first applicable recovery
// strategy, per the ordered priority table: transient command failures
// are restarted in place; unresponsive, corrupted, or quota-exhausted
// sandboxes are recreated (a fresh environment releases whatever the
// old one was holding) before escalating to failover.
func strategyFor(kind FailureKind, attempt int) Strategy {
	switch kind {
	case FailureQuotaExceeded:
		if attempt == 0 {
			return StrategyRecreate
		}
		return StrategyFailover
	case FailureCorruptedState:
		if attempt == 0 {
			return StrategyCleanSlate
		}
		return StrategyFailover
	case FailureUnresponsive:
		switch attempt {
		case 0:
			return StrategyRecreate
		case 1:
			return StrategyCleanSlate
		default:
			return StrategyFailover
		}
	default: // FailureCommandFailure, FailureUnknown
		switch attempt {
		case 0:
			return StrategyRestart
		case 1:
			return StrategyRecreate
		default:
			return StrategyFailover
		}
	}
}

// MaxRecoveryAttemptsPerHour caps how many recovery actions a single
// sandbox may undergo in a rolling hour before the system gives up and
// fails over.
const MaxRecoveryAttemptsPerHour = 3

// warmSandbox is one sandbox a WarmPool has provisioned ahead of time and
// not yet bound to any session.
type warmSandbox struct {
	ExternalID string
	WorkingDir string
}

// WarmPool maintains a small buffer of sandboxes provisioned ahead of
// need, so StrategyFailover can swap a terminated session onto one
// immediately instead of waiting on a fresh Provider.Create call. It is
// deliberately dumb: TopUp is expected to be driven on a timer (e.g. from
// cmd/builder alongside the health Monitor), and Claim is non-blocking —
// an empty pool just means failover falls back to the exhaustion policy.
type WarmPool struct {
	provider   sandbox.Provider
	templateID string
	size       int

	mu     sync.Mutex
	spares []warmSandbox
}

// NewWarmPool creates a WarmPool that keeps up to size spare sandboxes
// provisioned from templateID.
func NewWarmPool(provider sandbox.Provider, templateID string, size int) *WarmPool {
	return &WarmPool{provider: provider, templateID: templateID, size: size}
}

// TopUp provisions spares until the pool reaches its configured size.
func (p *WarmPool) TopUp(ctx context.Context) error {
	p.mu.Lock()
	deficit := p.size - len(p.spares)
	p.mu.Unlock()

	for i := 0; i < deficit; i++ {
		externalID, workingDir, err := p.provider.Create(ctx, sandbox.CreateOptions{TemplateID: p.templateID})
		if err != nil {
			return fmt.Errorf("health: failed to pre-warm backup sandbox: %w", err)
		}
		p.mu.Lock()
		p.spares = append(p.spares, warmSandbox{ExternalID: externalID, WorkingDir: workingDir})
		p.mu.Unlock()
	}
	return nil
}

// Claim removes and returns one spare sandbox, or false if none are
// currently available.
func (p *WarmPool) Claim() (warmSandbox, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.spares) == 0 {
		return warmSandbox{}, false
	}
	spare := p.spares[len(p.spares)-1]
	p.spares = p.spares[:len(p.spares)-1]
	return spare, true
}

// Len reports the number of spares currently available.
func (p *WarmPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.spares)
}

// Recovery implements the recovery strategy escalation for unhealthy
// sandboxes. It is deliberately decoupled from Monitor so it can
// also be driven by an operator-triggered manual recovery request.
type Recovery struct {
	client   *ent.Client
	manager  *sandbox.Manager
	provider sandbox.Provider
	sync     *pkgcontext.Synchronizer
	warmPool *WarmPool

	attemptsMu sync.Mutex
	attempts   map[string][]time.Time // session_id -> recovery timestamps in the last hour
}

// WithContextSync wires the context synchronizer used to preserve a
// session's .pria/ state across a sandbox recreation. Optional: a
// Recovery with no synchronizer wired just skips the preserve step, per
// strategy S3's clean-slate behavior.
func (r *Recovery) WithContextSync(sync *pkgcontext.Synchronizer) *Recovery {
	r.sync = sync
	return r
}

// WithWarmPool wires the pre-warmed backup pool StrategyFailover claims
// from. A Recovery with no pool wired always falls back to marking the
// session failed, which is the documented behavior when S4's precondition
// ("a pre-warmed backup exists") isn't met.
func (r *Recovery) WithWarmPool(pool *WarmPool) *Recovery {
	r.warmPool = pool
	return r
}

// NewRecovery creates a Recovery engine bound to a sandbox Manager.
func NewRecovery(client *ent.Client, manager *sandbox.Manager, provider sandbox.Provider) *Recovery {
	return &Recovery{
		client:   client,
		manager:  manager,
		provider: provider,
		attempts: make(map[string][]time.Time),
	}
}

// Recover runs the recovery strategy table against a session's sandbox.
func (r *Recovery) Recover(ctx context.Context, sessionID string, kind FailureKind) error {
	attempt := r.recordAttempt(sessionID)
	if attempt >= MaxRecoveryAttemptsPerHour {
		return r.failover(ctx, sessionID, fmt.Errorf("exceeded %d recovery attempts in the last hour", MaxRecoveryAttemptsPerHour))
	}

	strategy := strategyFor(kind, attempt)
	switch strategy {
	case StrategyRestart:
		return r.restart(ctx, sessionID)
	case StrategyRecreate:
		return r.recreate(ctx, sessionID, true)
	case StrategyCleanSlate:
		return r.recreate(ctx, sessionID, false)
	default:
		return r.failover(ctx, sessionID, fmt.Errorf("recovery strategy table exhausted for session %s", sessionID))
	}
}

// TriggerManual lets an operator start recovery out of band. It runs the
// same strategy table as Recover for the given failure kind, and the
// attempt counts toward MaxRecoveryAttemptsPerHour; it does not let the
// caller pick a strategy.
func (r *Recovery) TriggerManual(ctx context.Context, sessionID string, kind FailureKind) error {
	return r.Recover(ctx, sessionID, kind)
}

func (r *Recovery) recordAttempt(sessionID string) int {
	r.attemptsMu.Lock()
	defer r.attemptsMu.Unlock()

	cutoff := time.Now().Add(-time.Hour)
	recent := r.attempts[sessionID][:0]
	for _, t := range r.attempts[sessionID] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	recent = append(recent, time.Now())
	r.attempts[sessionID] = recent
	return len(recent) - 1
}

func (r *Recovery) restart(ctx context.Context, sessionID string) error {
	env, err := r.client.SandboxEnv.Query().
		Where(sandboxenv.SessionID(sessionID)).
		Order(ent.Desc(sandboxenv.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return fmt.Errorf("recovery: failed to look up sandbox: %w", err)
	}
	if _, err := r.provider.Liveness(ctx, env.ID); err != nil {
		return r.recreate(ctx, sessionID, true)
	}
	return r.client.SandboxEnv.UpdateOneID(env.ID).
		SetStatus(sandboxenv.StatusReady).
		SetConsecutiveFailures(0).
		SetRecoveryAttempts(env.RecoveryAttempts+1).
		Exec(ctx)
}

// templateOf recovers the template a sandbox was provisioned from, so a
// recreate reprovisions the same environment shape.
func templateOf(env *ent.SandboxEnv) string {
	if v, ok := env.Metadata["template_id"].(string); ok && v != "" {
		return v
	}
	return "node-20"
}

func (r *Recovery) recreate(ctx context.Context, sessionID string, preserveState bool) error {
	env, err := r.client.SandboxEnv.Query().
		Where(sandboxenv.SessionID(sessionID)).
		Order(ent.Desc(sandboxenv.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return fmt.Errorf("recovery: failed to look up sandbox: %w", err)
	}
	workspaceID := env.WorkspaceID

	if preserveState && r.sync != nil {
		if err := r.sync.FromSandbox(ctx, sessionID); err != nil {
			slog.Warn("recovery: failed to absorb sandbox context before recreate", "session_id", sessionID, "error", err)
		}
	}

	if err := r.manager.Terminate(ctx, sessionID); err != nil {
		return fmt.Errorf("recovery: failed to terminate sandbox: %w", err)
	}

	newEnv, err := r.manager.Create(ctx, sessionID, workspaceID, templateOf(env), nil)
	if err != nil {
		return fmt.Errorf("recovery: failed to reprovision sandbox: %w", err)
	}

	if preserveState && r.sync != nil {
		if err := r.sync.ToSandbox(ctx, sessionID); err != nil {
			slog.Warn("recovery: failed to restore context into recreated sandbox", "session_id", sessionID, "error", err)
		}
	}

	return r.client.SandboxEnv.UpdateOneID(newEnv.ID).
		SetRecoveryAttempts(env.RecoveryAttempts + 1).
		Exec(ctx)
}

// failover implements S4. When a pre-warmed backup is available, the
// session's sandbox mapping is swapped onto it and its .pria/ context
// re-projected, and the session is left active; this is the strategy the
// priority table names, distinct from the exhaustion policy below it
// takes when no backup exists.
func (r *Recovery) failover(ctx context.Context, sessionID string, cause error) error {
	if r.warmPool != nil {
		if backup, err := r.swapToBackup(ctx, sessionID); err == nil {
			slog.Warn("recovery: swapped session onto pre-warmed backup sandbox", "session_id", sessionID, "backup_id", backup.ID, "cause", cause)
			return nil
		} else {
			slog.Warn("recovery: no pre-warmed backup available, falling back to exhaustion policy", "session_id", sessionID, "error", err)
		}
	}

	if err := r.client.Session.UpdateOneID(sessionID).
		SetStatus("failed").
		SetErrorMessage(cause.Error()).
		Exec(ctx); err != nil {
		return fmt.Errorf("recovery: failed to mark session failed: %w", err)
	}
	return cause
}

// swapToBackup claims a sandbox from the warm pool and re-points
// sessionID's mapping at it, retiring the old sandbox and re-projecting
// the session's .pria/ context the same way recreate does for S2/S3.
func (r *Recovery) swapToBackup(ctx context.Context, sessionID string) (*ent.SandboxEnv, error) {
	spare, ok := r.warmPool.Claim()
	if !ok {
		return nil, fmt.Errorf("recovery: no pre-warmed backup available")
	}

	env, err := r.client.SandboxEnv.Query().
		Where(sandboxenv.SessionID(sessionID)).
		Order(ent.Desc(sandboxenv.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("recovery: failed to look up sandbox: %w", err)
	}
	workspaceID := env.WorkspaceID

	if err := r.client.SandboxEnv.UpdateOneID(env.ID).
		SetStatus(sandboxenv.StatusTerminated).
		SetTerminatedAt(time.Now()).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("recovery: failed to retire old sandbox mapping: %w", err)
	}

	backup, err := r.client.SandboxEnv.Create().
		SetID(spare.ExternalID).
		SetSessionID(sessionID).
		SetWorkspaceID(workspaceID).
		SetWorkingDir(spare.WorkingDir).
		SetStatus(sandboxenv.StatusReady).
		SetLastHeartbeat(time.Now()).
		SetRecoveryAttempts(env.RecoveryAttempts + 1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("recovery: failed to bind backup sandbox: %w", err)
	}

	if err := r.client.Session.UpdateOneID(sessionID).SetSandboxID(backup.ID).Exec(ctx); err != nil {
		return nil, fmt.Errorf("recovery: failed to re-point session at backup sandbox: %w", err)
	}

	if r.sync != nil {
		if err := r.sync.ToSandbox(ctx, sessionID); err != nil {
			slog.Warn("recovery: failed to project context onto backup sandbox", "session_id", sessionID, "error", err)
		}
	}

	return backup, nil
}

// ForceRecoveryAll triggers recovery for every unhealthy or unresponsive
// sandbox, bounded to maxConcurrent simultaneous recoveries.
func (r *Recovery) ForceRecoveryAll(ctx context.Context, maxConcurrent int) error {
	if maxConcurrent <= 0 {
		maxConcurrent = 3
	}
	envs, err := r.client.SandboxEnv.Query().
		Where(sandboxenv.StatusIn(sandboxenv.StatusUnhealthy, sandboxenv.StatusUnresponsive)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("recovery: failed to list unhealthy sandboxes: %w", err)
	}

	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	var errsMu sync.Mutex
	var errs []error

	for _, env := range envs {
		wg.Add(1)
		sem <- struct{}{}
		go func(sessionID string) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := r.Recover(ctx, sessionID, FailureUnresponsive); err != nil {
				errsMu.Lock()
				errs = append(errs, err)
				errsMu.Unlock()
			}
		}(env.SessionID)
	}
	wg.Wait()

	if len(errs) > 0 {
		return fmt.Errorf("recovery: %d of %d sandboxes failed to recover: %v", len(errs), len(envs), errs[0])
	}
	return nil
}
