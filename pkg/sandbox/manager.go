package sandbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/codeready-toolchain/builder/ent"
	"github.com/codeready-toolchain/builder/ent/sandboxenv"
)

// Manager owns the session_id -> sandbox_id mapping and serializes
// commands per sandbox.
type Manager struct {
	client   *ent.Client
	provider Provider

	// cmdLocks serializes Execute/WriteFile per sandbox to honor
	// the "serializes commands per sandbox" contract.
	cmdLocks sync.Map // session_id -> *sync.Mutex
}

// NewManager creates a new sandbox Manager.
func NewManager(client *ent.Client, provider Provider) *Manager {
	return &Manager{client: client, provider: provider}
}

func (m *Manager) lockFor(sessionID string) *sync.Mutex {
	muI, _ := m.cmdLocks.LoadOrStore(sessionID, &sync.Mutex{})
	return muI.(*sync.Mutex)
}

// Create provisions a sandbox for a session, or reuses the existing one if
// it is still ready or degraded. Idempotent on session_id.
func (m *Manager) Create(ctx context.Context, sessionID, workspaceID, templateID string, envVars map[string]string) (*ent.SandboxEnv, error) {
	existing, err := m.client.SandboxEnv.Query().
		Where(sandboxenv.SessionID(sessionID)).
		Order(ent.Desc(sandboxenv.FieldCreatedAt)).
		First(ctx)
	if err == nil && (existing.Status == sandboxenv.StatusReady || existing.Status == sandboxenv.StatusDegraded) {
		return existing, nil
	}
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query existing sandbox: %w", err)
	}

	externalID, workingDir, err := m.provider.Create(ctx, CreateOptions{TemplateID: templateID, EnvVars: envVars})
	if err != nil {
		return nil, fmt.Errorf("failed to provision sandbox: %w", err)
	}

	env, err := m.client.SandboxEnv.Create().
		SetID(externalID).
		SetSessionID(sessionID).
		SetWorkspaceID(workspaceID).
		SetWorkingDir(workingDir).
		SetStatus(sandboxenv.StatusReady).
		SetLastHeartbeat(time.Now()).
		SetMetadata(map[string]interface{}{"template_id": templateID}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist sandbox mapping: %w", err)
	}

	if err := m.client.Session.UpdateOneID(sessionID).SetSandboxID(env.ID).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to link session to sandbox: %w", err)
	}

	return env, nil
}

// Execute runs a command in a session's sandbox, serialized per sandbox.
func (m *Manager) Execute(ctx context.Context, sessionID, command string, opts ExecOptions) (*ExecResult, error) {
	if err := ValidateCommand(command); err != nil {
		return nil, err
	}

	lock := m.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	env, err := m.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return m.provider.Execute(ctx, env.ID, command, opts)
}

// WriteFile writes a file into a session's sandbox, serialized per sandbox.
func (m *Manager) WriteFile(ctx context.Context, sessionID, path, content string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	lock := m.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	env, err := m.get(ctx, sessionID)
	if err != nil {
		return err
	}
	return m.provider.WriteFile(ctx, env.ID, path, content)
}

// ReadFile reads a file from a session's sandbox.
func (m *Manager) ReadFile(ctx context.Context, sessionID, path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	env, err := m.get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return m.provider.ReadFile(ctx, env.ID, path)
}

// List lists a directory inside a session's sandbox.
func (m *Manager) List(ctx context.Context, sessionID, dir string) ([]string, error) {
	env, err := m.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return m.provider.List(ctx, env.ID, dir)
}

// PreviewURL returns a publicly reachable URL for a port inside the
// sandbox.
func (m *Manager) PreviewURL(ctx context.Context, sessionID string, port int) (string, error) {
	env, err := m.get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return m.provider.PreviewURL(ctx, env.ID, port)
}

// Terminate stops a session's sandbox and marks it terminated.
func (m *Manager) Terminate(ctx context.Context, sessionID string) error {
	env, err := m.get(ctx, sessionID)
	if err != nil {
		if err == ErrNotFound {
			return nil
		}
		return err
	}
	if err := m.provider.Terminate(ctx, env.ID); err != nil {
		return fmt.Errorf("failed to terminate sandbox: %w", err)
	}
	return m.client.SandboxEnv.UpdateOneID(env.ID).
		SetStatus(sandboxenv.StatusTerminated).
		SetTerminatedAt(time.Now()).
		Exec(ctx)
}

// Get returns the current sandbox registered for sessionID, or
// ErrNotFound if none has been created — pinging a session that was
// never registered never implicitly creates one.
func (m *Manager) Get(ctx context.Context, sessionID string) (*ent.SandboxEnv, error) {
	return m.get(ctx, sessionID)
}

func (m *Manager) get(ctx context.Context, sessionID string) (*ent.SandboxEnv, error) {
	env, err := m.client.SandboxEnv.Query().
		Where(sandboxenv.SessionID(sessionID)).
		Order(ent.Desc(sandboxenv.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up sandbox: %w", err)
	}
	return env, nil
}
