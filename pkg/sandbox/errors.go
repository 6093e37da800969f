package sandbox

import "errors"

var (
	// ErrNotFound is returned when no sandbox mapping exists for a session.
	ErrNotFound = errors.New("sandbox: not found")
	// ErrTimeout is returned when a command exceeds its timeout budget.
	ErrTimeout = errors.New("sandbox: command timed out")
	// ErrInvalidPath is returned for path-escape attempts.
	ErrInvalidPath = errors.New("sandbox: invalid path")
	// ErrInvalidCommand is returned for shell-metacharacter injection or
	// oversized commands.
	ErrInvalidCommand = errors.New("sandbox: invalid command")
)
