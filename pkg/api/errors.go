package api

import (
	"errors"

	"github.com/codeready-toolchain/builder/pkg/apierr"
	"github.com/codeready-toolchain/builder/pkg/artifact"
	"github.com/codeready-toolchain/builder/pkg/parallel"
	"github.com/codeready-toolchain/builder/pkg/sandbox"
	"github.com/codeready-toolchain/builder/pkg/workflow"
)

// mapWorkflowError tags a workflow.Manager error with the Kind a client
// needs to decide what to do next.
func mapWorkflowError(err error) error {
	switch {
	case errors.Is(err, workflow.ErrSessionNotFound):
		return apierr.Wrap(apierr.KindNotFound, "session not found", err)
	case errors.Is(err, workflow.ErrSessionNotActive):
		return apierr.Wrap(apierr.KindConflict, "session is not active", err)
	case errors.Is(err, workflow.ErrUnknownPhase), errors.Is(err, workflow.ErrNoSubagentForPhase):
		return apierr.Wrap(apierr.KindInternal, "workflow phase misconfigured", err)
	case errors.Is(err, workflow.ErrInvalidRegression):
		return apierr.Wrap(apierr.KindValidation, "invalid phase regression", err)
	default:
		return apierr.Wrap(apierr.KindInternal, "workflow operation failed", err)
	}
}

// mapSandboxError tags a pkg/sandbox error.
func mapSandboxError(err error) error {
	switch {
	case errors.Is(err, sandbox.ErrNotFound):
		return apierr.Wrap(apierr.KindNotFound, "sandbox not found", err)
	case errors.Is(err, sandbox.ErrTimeout):
		return apierr.Wrap(apierr.KindSandboxTimeout, "sandbox command timed out", err)
	case errors.Is(err, sandbox.ErrInvalidPath), errors.Is(err, sandbox.ErrInvalidCommand):
		return apierr.Wrap(apierr.KindValidation, "invalid sandbox request", err)
	default:
		return apierr.Wrap(apierr.KindSandboxCommand, "sandbox operation failed", err)
	}
}

// mapParallelError tags a pkg/parallel error.
func mapParallelError(err error) error {
	switch {
	case errors.Is(err, parallel.ErrCyclicDependency):
		return apierr.Wrap(apierr.KindDependencyCycle, "task dependencies form a cycle", err)
	case errors.Is(err, parallel.ErrUnknownDependency):
		return apierr.Wrap(apierr.KindValidation, "task depends on unknown task id", err)
	case errors.Is(err, parallel.ErrBatchNotFound):
		return apierr.Wrap(apierr.KindNotFound, "batch not found", err)
	case errors.Is(err, parallel.ErrBatchAlreadyActive):
		return apierr.Wrap(apierr.KindConflict, "session already has an active batch", err)
	case errors.Is(err, parallel.ErrTaskTimeout):
		return apierr.Wrap(apierr.KindTimeout, "task timed out", err)
	default:
		return apierr.Wrap(apierr.KindInternal, "parallel operation failed", err)
	}
}

// mapArtifactError tags a pkg/artifact error.
func mapArtifactError(err error) error {
	if errors.Is(err, artifact.ErrNotFound) {
		return apierr.Wrap(apierr.KindNotFound, "artifact not found", err)
	}
	return apierr.Wrap(apierr.KindInternal, "artifact operation failed", err)
}
