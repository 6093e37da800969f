package workflow

import "errors"

// Errors returned by the workflow manager.
var (
	// ErrSessionNotFound is returned when a session id does not exist in
	// the caller's workspace. A session owned by another tenant reports
	// the same error, so probing foreign session ids leaks nothing.
	ErrSessionNotFound = errors.New("workflow: session not found")
	// ErrSessionNotActive is returned when a turn is submitted against a
	// session that has already completed, failed, or been paused.
	ErrSessionNotActive = errors.New("workflow: session is not active")
	// ErrUnknownPhase is returned when a session's current_phase is
	// outside the 1..7 phase table, a programming error in whatever set it.
	ErrUnknownPhase = errors.New("workflow: unknown phase")
	// ErrNoSubagentForPhase is returned when the registry has no subagent
	// bound to a phase that requires one.
	ErrNoSubagentForPhase = errors.New("workflow: no subagent registered for phase")
	// ErrInvalidRegression is returned when Regress is asked to move to a
	// phase that is not strictly earlier than the session's current one.
	ErrInvalidRegression = errors.New("workflow: target phase must be earlier than the current phase")
)
