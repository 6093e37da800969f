package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/builder/pkg/apierr"
	"github.com/codeready-toolchain/builder/pkg/health"
)

// errorRecoveryRequest is the single envelope POST /error-recovery
// accepts, shaped by its action field (register_sandbox,
// trigger_manual_recovery, force_recovery_all).
type errorRecoveryRequest struct {
	Action        string `json:"action"`
	SessionID     string `json:"session_id,omitempty"`
	FailureKind   string `json:"failure_kind,omitempty"`
	MaxConcurrent int    `json:"max_concurrent,omitempty"`
}

// failureKindFromString maps the wire failure_kind string onto the
// health package's FailureKind enum, defaulting to FailureUnknown for
// anything unrecognized.
func failureKindFromString(s string) health.FailureKind {
	switch s {
	case "command_failure":
		return health.FailureCommandFailure
	case "unresponsive":
		return health.FailureUnresponsive
	case "corrupted_state":
		return health.FailureCorruptedState
	case "quota_exceeded":
		return health.FailureQuotaExceeded
	default:
		return health.FailureUnknown
	}
}

// handleErrorRecovery handles POST /error-recovery
// (action=register_sandbox|trigger_manual_recovery|force_recovery_all).
func (s *Server) handleErrorRecovery(c *echo.Context) error {
	var req errorRecoveryRequest
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	ctx := c.Request().Context()

	switch req.Action {
	case "register_sandbox":
		if err := requireField("session_id", req.SessionID); err != nil {
			return writeError(c, err)
		}
		env, err := s.sandbox.Get(ctx, req.SessionID)
		if err != nil {
			return writeError(c, mapSandboxError(err))
		}
		return c.JSON(http.StatusOK, env)

	case "trigger_manual_recovery":
		if err := requireField("session_id", req.SessionID); err != nil {
			return writeError(c, err)
		}
		if err := s.recovery.TriggerManual(ctx, req.SessionID, failureKindFromString(req.FailureKind)); err != nil {
			return writeError(c, apierr.Wrap(apierr.KindSandboxCommand, "manual recovery failed", err))
		}
		return c.NoContent(http.StatusAccepted)

	case "force_recovery_all":
		maxConcurrent := req.MaxConcurrent
		if maxConcurrent <= 0 {
			maxConcurrent = 5
		}
		if err := s.recovery.ForceRecoveryAll(ctx, maxConcurrent); err != nil {
			return writeError(c, apierr.Wrap(apierr.KindSandboxCommand, "force recovery failed", err))
		}
		return c.NoContent(http.StatusAccepted)

	default:
		return writeError(c, apierr.New(apierr.KindValidation, "unknown error-recovery action: "+req.Action))
	}
}
