package parallel

import "errors"

// Errors returned by the dependency graph builder and processor.
var (
	// ErrCyclicDependency is returned when a ParallelTask's dependencies[]
	// form a cycle; no task is executed.
	ErrCyclicDependency = errors.New("parallel: cyclic dependency among tasks")
	// ErrUnknownDependency is returned when a task declares a dependency id
	// that is not itself a task in the same batch.
	ErrUnknownDependency = errors.New("parallel: task depends on unknown task id")
	// ErrBatchNotFound is returned when a batch id is looked up in the
	// wrong tenant or does not exist.
	ErrBatchNotFound = errors.New("parallel: batch not found")
	// ErrBatchAlreadyActive is returned when a new batch is dispatched for
	// a session that already has one in a non-terminal state. A session
	// may have at most one active batch.
	ErrBatchAlreadyActive = errors.New("parallel: session already has an active batch")
	// ErrTaskTimeout is returned when a task exceeds the processor's
	// TaskTimeout budget, which covers all of its retry attempts together.
	ErrTaskTimeout = errors.New("parallel: task timed out")
)
