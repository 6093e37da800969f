package sandbox

import (
	"context"
	"time"
)

// ExecResult is the outcome of one command run inside a sandbox.
type ExecResult struct {
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMs int64
}

// ExecOptions configures a single command dispatch.
type ExecOptions struct {
	WorkingDir string
	Env        map[string]string
	TimeoutMs  int
}

// CreateOptions configures sandbox provisioning.
type CreateOptions struct {
	TemplateID string
	EnvVars    map[string]string
}

// Provider is the remote execution environment client (the "Target App"
// runtime). Implementations talk to an opaque external sandbox service
// over HTTP; see HTTPProvider for the production implementation.
type Provider interface {
	Create(ctx context.Context, opts CreateOptions) (externalID string, workingDir string, err error)
	Execute(ctx context.Context, externalID, command string, opts ExecOptions) (*ExecResult, error)
	WriteFile(ctx context.Context, externalID, path, content string) error
	ReadFile(ctx context.Context, externalID, path string) (string, error)
	List(ctx context.Context, externalID, dir string) ([]string, error)
	PreviewURL(ctx context.Context, externalID string, port int) (string, error)
	Terminate(ctx context.Context, externalID string) error
	// Liveness runs a trivial command used by the health poller.
	Liveness(ctx context.Context, externalID string) (time.Duration, error)
}
