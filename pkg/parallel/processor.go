package parallel

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/semaphore"

	"github.com/codeready-toolchain/builder/ent"
	"github.com/codeready-toolchain/builder/ent/parallelbatch"
	"github.com/codeready-toolchain/builder/ent/paralleltask"
	"github.com/codeready-toolchain/builder/pkg/artifact"
	"github.com/codeready-toolchain/builder/pkg/events"
	"github.com/codeready-toolchain/builder/pkg/llmexec"
	"github.com/codeready-toolchain/builder/pkg/models"
)

// DefaultMaxConcurrentTasks bounds how many tasks within one wave run
// at once.
const DefaultMaxConcurrentTasks = 3

// DefaultTaskTimeout is the per-task execution budget.
const DefaultTaskTimeout = 300 * time.Second

// DefaultRetryAttempts is the number of retries a failing task gets
// before its status is finalized as failed.
const DefaultRetryAttempts = 2

// Processor turns a ParallelBatch's tasks into a dependency graph,
// executes it wave by wave with bounded concurrency, and persists
// terminal state as it goes so a crash mid-batch
// only loses in-flight (not completed) work, per the crash-replay open
// question decision in DESIGN.md.
type Processor struct {
	client    *ent.Client
	store     *artifact.Store
	llm       *llmexec.Executor
	publisher *events.EventPublisher

	MaxConcurrentTasks int
	TaskTimeout        time.Duration
	RetryAttempts      int

	mu     sync.Mutex
	cancel map[string]context.CancelFunc // batch_id -> cancel for an in-flight Execute
}

// NewProcessor creates a Processor. publisher may be nil (progress events
// disabled, e.g. in tests).
func NewProcessor(client *ent.Client, store *artifact.Store, llm *llmexec.Executor, publisher *events.EventPublisher) *Processor {
	return &Processor{
		client:             client,
		store:              store,
		llm:                llm,
		publisher:          publisher,
		MaxConcurrentTasks: DefaultMaxConcurrentTasks,
		TaskTimeout:        DefaultTaskTimeout,
		RetryAttempts:      DefaultRetryAttempts,
		cancel:             make(map[string]context.CancelFunc),
	}
}

// CreateAndExecute validates and persists a new batch, then runs it to a
// terminal state. The dependency graph is validated before anything is
// written: a cyclic or unknown-dependency batch creates nothing and
// executes nothing. A session may have at most one active
// (non-terminal) batch at a time.
func (p *Processor) CreateAndExecute(ctx context.Context, req models.CreateBatchRequest) (*ent.ParallelBatch, error) {
	active, err := p.client.ParallelBatch.Query().
		Where(
			parallelbatch.SessionID(req.SessionID),
			parallelbatch.StatusIn(parallelbatch.StatusPending, parallelbatch.StatusRunning),
		).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("parallel: failed to check for an active batch: %w", err)
	}
	if active {
		return nil, ErrBatchAlreadyActive
	}

	nodes, meta, err := buildNodes(req.Tasks)
	if err != nil {
		return nil, err
	}
	waves, err := BuildWaves(nodes)
	if err != nil {
		return nil, err
	}

	batch, err := p.persist(ctx, req, waves, meta)
	if err != nil {
		return nil, err
	}

	return p.Execute(ctx, batch.ID)
}

// taskMeta carries request-scoped fields that have no home on taskNode but
// are needed once the graph is validated: the persisted task id keyed by
// LocalID, plus the artifact shape the task's output should be stored as.
type taskMeta struct {
	req  models.CreateTaskRequest
	dbID string
}

// buildNodes translates CreateTaskRequests (whose dependencies are
// expressed against LocalID) into graph nodes keyed by a stable local id,
// defaulting LocalID to the task's index when left blank.
func buildNodes(tasks []models.CreateTaskRequest) ([]taskNode, map[string]*taskMeta, error) {
	meta := make(map[string]*taskMeta, len(tasks))
	nodes := make([]taskNode, 0, len(tasks))
	for i, t := range tasks {
		localID := t.LocalID
		if localID == "" {
			localID = fmt.Sprintf("%d", i)
		}
		if _, dup := meta[localID]; dup {
			return nil, nil, fmt.Errorf("parallel: duplicate local_id %q", localID)
		}
		priority := t.Priority
		if priority == "" {
			priority = "medium"
		}
		meta[localID] = &taskMeta{req: t}
		nodes = append(nodes, taskNode{
			ID:           localID,
			Priority:     priority,
			DurationMs:   t.EstimatedDurationMs,
			Dependencies: t.Dependencies,
		})
	}
	return nodes, meta, nil
}

// persist writes the batch and its tasks, recording each task's computed
// wave_index so execution can resume from stored state.
func (p *Processor) persist(ctx context.Context, req models.CreateBatchRequest, waves [][]string, meta map[string]*taskMeta) (*ent.ParallelBatch, error) {
	tx, err := p.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("parallel: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// ULIDs, not UUIDs: batch/task ids are lexically sortable by creation
	// time.
	batchID := ulid.Make().String()
	status := parallelbatch.StatusPending
	if len(req.Tasks) == 0 {
		status = parallelbatch.StatusCompleted
	}
	batch, err := tx.ParallelBatch.Create().
		SetID(batchID).
		SetSessionID(req.SessionID).
		SetWorkspaceID(req.WorkspaceID).
		SetPhase(req.Phase).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("parallel: failed to create batch: %w", err)
	}

	for waveIdx, wave := range waves {
		for _, localID := range wave {
			m := meta[localID]
			taskID := ulid.Make().String()
			m.dbID = taskID
			create := tx.ParallelTask.Create().
				SetID(taskID).
				SetBatchID(batchID).
				SetSessionID(req.SessionID).
				SetWaveIndex(waveIdx).
				SetAgentName(m.req.AgentName).
				SetPrompt(m.req.Prompt).
				SetContextRefs(m.req.ContextRefs).
				SetPriority(paralleltask.Priority(orDefault(m.req.Priority, "medium")))
			if m.req.ArtifactType != "" {
				create = create.SetArtifactType(m.req.ArtifactType)
			}
			if m.req.ReferenceKey != "" {
				create = create.SetReferenceKey(m.req.ReferenceKey)
			}
			if m.req.EstimatedDurationMs > 0 {
				create = create.SetEstimatedDurationMs(m.req.EstimatedDurationMs)
			}
			deps := make([]string, 0, len(m.req.Dependencies))
			for _, d := range m.req.Dependencies {
				deps = append(deps, meta[d].dbID)
			}
			create = create.SetDependencies(deps)
			if _, err := create.Save(ctx); err != nil {
				return nil, fmt.Errorf("parallel: failed to create task %q: %w", localID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("parallel: failed to commit batch: %w", err)
	}
	return batch, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Execute runs every wave of a persisted, pending-or-running batch to a
// terminal state: completed, failed, or cancelled. It is safe to call
// again on a batch recovered by Reconcile.
func (p *Processor) Execute(ctx context.Context, batchID string) (*ent.ParallelBatch, error) {
	batch, err := p.client.ParallelBatch.Get(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("parallel: failed to load batch: %w", err)
	}
	if batch.Status == parallelbatch.StatusCompleted || batch.Status == parallelbatch.StatusCancelled || batch.Status == parallelbatch.StatusFailed {
		return batch, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.cancel[batchID] = cancel
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		delete(p.cancel, batchID)
		p.mu.Unlock()
		cancel()
	}()

	started := time.Now()
	if batch.StartedAt == nil {
		if err := p.client.ParallelBatch.UpdateOneID(batchID).
			SetStatus(parallelbatch.StatusRunning).
			SetStartedAt(started).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("parallel: failed to mark batch running: %w", err)
		}
	}

	tasks, err := p.client.ParallelTask.Query().
		Where(paralleltask.BatchID(batchID)).
		Order(ent.Asc(paralleltask.FieldWaveIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("parallel: failed to load tasks: %w", err)
	}

	byID := make(map[string]*ent.ParallelTask, len(tasks))
	byWave := map[int][]*ent.ParallelTask{}
	maxWave := -1
	for _, t := range tasks {
		byID[t.ID] = t
		byWave[t.WaveIndex] = append(byWave[t.WaveIndex], t)
		if t.WaveIndex > maxWave {
			maxWave = t.WaveIndex
		}
	}

	unresolved := map[string]bool{} // task ids that failed or were cancelled

	for wave := 0; wave <= maxWave; wave++ {
		if runCtx.Err() != nil {
			return p.cancelRemaining(ctx, batchID, tasks)
		}

		waveTasks := byWave[wave]
		sortWave(waveTasks)

		var toRun []*ent.ParallelTask
		for _, t := range waveTasks {
			if t.Status == paralleltask.StatusSucceeded || t.Status == paralleltask.StatusFailed || t.Status == paralleltask.StatusCancelled {
				if t.Status != paralleltask.StatusSucceeded {
					unresolved[t.ID] = true
				}
				continue
			}
			if dependsOnUnresolved(t, unresolved) {
				if err := p.markCancelled(ctx, t.ID); err != nil {
					return nil, err
				}
				unresolved[t.ID] = true
				continue
			}
			toRun = append(toRun, t)
		}

		p.runWave(runCtx, batch, toRun, byID)
		for _, t := range toRun {
			refreshed, err := p.client.ParallelTask.Get(ctx, t.ID)
			if err != nil {
				continue
			}
			byID[t.ID] = refreshed
			if refreshed.Status == paralleltask.StatusFailed || refreshed.Status == paralleltask.StatusCancelled {
				unresolved[t.ID] = true
			}
		}

		p.publishProgress(ctx, batch, byID)
	}

	return p.finish(ctx, batchID, len(unresolved) == 0)
}

// dependsOnUnresolved reports whether any of t's dependencies ended up
// failed or cancelled, which short-circuits the dependent to cancelled.
func dependsOnUnresolved(t *ent.ParallelTask, unresolved map[string]bool) bool {
	for _, dep := range t.Dependencies {
		if unresolved[dep] {
			return true
		}
	}
	return false
}

// sortWave orders tasks within a wave by priority (high -> low), then by
// estimated duration (shortest first), mirroring BuildWaves' ordering so
// persisted tasks dispatch in the same order they were planned in.
func sortWave(tasks []*ent.ParallelTask) {
	sort.Slice(tasks, func(i, j int) bool {
		pi, pj := priorityRank[string(tasks[i].Priority)], priorityRank[string(tasks[j].Priority)]
		if pi != pj {
			return pi < pj
		}
		di, dj := 0, 0
		if tasks[i].EstimatedDurationMs != nil {
			di = *tasks[i].EstimatedDurationMs
		}
		if tasks[j].EstimatedDurationMs != nil {
			dj = *tasks[j].EstimatedDurationMs
		}
		if di != dj {
			return di < dj
		}
		return tasks[i].ID < tasks[j].ID
	})
}

// runWave dispatches every ready task in a wave concurrently, bounded by
// MaxConcurrentTasks, and blocks until all of them reach a terminal
// state. A task's failure never aborts its siblings.
func (p *Processor) runWave(ctx context.Context, batch *ent.ParallelBatch, tasks []*ent.ParallelTask, byID map[string]*ent.ParallelTask) {
	if len(tasks) == 0 {
		return
	}
	sem := semaphore.NewWeighted(int64(p.MaxConcurrentTasks))
	var wg sync.WaitGroup
	var resultsMu sync.Mutex
	results := map[string]string{}
	errs := map[string]string{}
	for _, t := range tasks {
		t := t
		if err := sem.Acquire(ctx, 1); err != nil {
			p.markCancelled(context.Background(), t.ID) //nolint:errcheck
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			ref, taskErr := p.runTask(ctx, batch, t, byID)
			resultsMu.Lock()
			if taskErr != nil {
				errs[t.ID] = taskErr.Error()
			} else if ref != "" {
				results[t.ID] = ref
			}
			resultsMu.Unlock()
		}()
	}
	wg.Wait()
	p.recordBatchOutcome(ctx, batch.ID, results, errs)
}

// recordBatchOutcome merges a wave's task_id -> artifact_ref / error
// entries into the batch's results/errors maps.
func (p *Processor) recordBatchOutcome(ctx context.Context, batchID string, results, errs map[string]string) {
	if len(results) == 0 && len(errs) == 0 {
		return
	}
	batch, err := p.client.ParallelBatch.Get(ctx, batchID)
	if err != nil {
		return
	}
	merged := map[string]string{}
	for k, v := range batch.Results {
		merged[k] = v
	}
	for k, v := range results {
		merged[k] = v
	}
	mergedErrs := map[string]string{}
	for k, v := range batch.Errors {
		mergedErrs[k] = v
	}
	for k, v := range errs {
		mergedErrs[k] = v
	}
	_ = p.client.ParallelBatch.UpdateOneID(batchID).
		SetResults(merged).
		SetErrors(mergedErrs).
		Exec(ctx)
}

// runTask executes a single task with retry and backoff, and persists
// its terminal state and result artifact reference. Returns the
// artifact reference key on success, or the terminal error on failure.
func (p *Processor) runTask(ctx context.Context, batch *ent.ParallelBatch, t *ent.ParallelTask, byID map[string]*ent.ParallelTask) (string, error) {
	log := slog.With("batch_id", batch.ID, "task_id", t.ID, "agent", t.AgentName)

	if err := p.client.ParallelTask.UpdateOneID(t.ID).
		SetStatus(paralleltask.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx); err != nil {
		log.Error("failed to mark task running", "error", err)
	}

	taskCtx, cancel := context.WithTimeout(ctx, p.TaskTimeout)
	defer cancel()

	var resultRef string
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(time.Second),
		backoff.WithMaxInterval(30*time.Second),
	), uint64(p.RetryAttempts))

	attempts := 0
	runErr := backoff.Retry(func() error {
		attempts++
		ref, err := p.execOnce(taskCtx, batch, t)
		if err != nil {
			if taskCtx.Err() != nil {
				return backoff.Permanent(fmt.Errorf("parallel: task %s timed out: %w", t.ID, ErrTaskTimeout))
			}
			return err
		}
		resultRef = ref
		return nil
	}, backoff.WithContext(policy, taskCtx))

	started := time.Now()
	if t.StartedAt != nil {
		started = *t.StartedAt
	}
	duration := int(time.Since(started).Milliseconds())

	update := p.client.ParallelTask.UpdateOneID(t.ID).
		SetAttempts(attempts).
		SetCompletedAt(time.Now()).
		SetDurationMs(duration)
	if runErr != nil {
		log.Warn("task failed", "attempts", attempts, "error", runErr)
		update = update.SetStatus(paralleltask.StatusFailed).SetErrorMessage(runErr.Error())
	} else {
		update = update.SetStatus(paralleltask.StatusSucceeded).SetResultRef(resultRef)
	}
	if err := update.Exec(context.Background()); err != nil {
		log.Error("failed to persist task result", "error", err)
	}
	return resultRef, runErr
}

// execOnce resolves context, invokes the LLM executor once, and stores
// the result as an artifact on success.
func (p *Processor) execOnce(ctx context.Context, batch *ent.ParallelBatch, t *ent.ParallelTask) (string, error) {
	refs := make([]models.ArtifactRef, 0, len(t.ContextRefs))
	for _, r := range t.ContextRefs {
		refs = append(refs, models.ArtifactRef{ReferenceKey: r})
	}
	systemPrompt, err := p.llm.AssembleSystemPrompt(ctx, batch.WorkspaceID, batch.SessionID, t.AgentName, refs)
	if err != nil {
		return "", fmt.Errorf("parallel: failed to assemble context for task %s: %w", t.ID, err)
	}

	result, err := p.llm.Execute(ctx, llmexec.Request{
		SessionID: batch.SessionID,
		AgentName: t.AgentName,
		Messages: []llmexec.Message{
			{Role: llmexec.RoleSystem, Content: systemPrompt},
			{Role: llmexec.RoleUser, Content: t.Prompt},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("parallel: llm execution failed for task %s: %w", t.ID, err)
	}

	artifactType := "task"
	if t.ArtifactType != nil && *t.ArtifactType != "" {
		artifactType = *t.ArtifactType
	}
	referenceKey := fmt.Sprintf("@%s/%s", t.AgentName, t.ID)
	if t.ReferenceKey != nil && *t.ReferenceKey != "" {
		referenceKey = *t.ReferenceKey
	}

	_, err = p.store.Put(ctx, models.PutArtifactRequest{
		WorkspaceID:  batch.WorkspaceID,
		SessionID:    batch.SessionID,
		SourceAgent:  t.AgentName,
		ArtifactType: artifactType,
		ReferenceKey: referenceKey,
		Phase:        batch.Phase,
		Payload:      map[string]interface{}{"text": result.Text},
	})
	if err != nil {
		return "", fmt.Errorf("parallel: failed to store result for task %s: %w", t.ID, err)
	}

	for _, fileReq := range result.FileArtifactRequests(batch.WorkspaceID, batch.SessionID, t.AgentName, batch.Phase) {
		if _, err := p.store.Put(ctx, fileReq); err != nil {
			return "", fmt.Errorf("parallel: failed to store file artifact for task %s: %w", t.ID, err)
		}
	}
	return referenceKey, nil
}

func (p *Processor) markCancelled(ctx context.Context, taskID string) error {
	return p.client.ParallelTask.UpdateOneID(taskID).
		SetStatus(paralleltask.StatusCancelled).
		SetCompletedAt(time.Now()).
		Exec(ctx)
}

// cancelRemaining marks every non-terminal task cancelled and ends the
// batch in the cancelled state.
func (p *Processor) cancelRemaining(ctx context.Context, batchID string, tasks []*ent.ParallelTask) (*ent.ParallelBatch, error) {
	for _, t := range tasks {
		if t.Status == paralleltask.StatusPending || t.Status == paralleltask.StatusReady || t.Status == paralleltask.StatusRunning {
			if err := p.markCancelled(ctx, t.ID); err != nil {
				return nil, err
			}
		}
	}
	now := time.Now()
	if err := p.client.ParallelBatch.UpdateOneID(batchID).
		SetStatus(parallelbatch.StatusCancelled).
		SetCompletedAt(now).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("parallel: failed to mark batch cancelled: %w", err)
	}
	return p.client.ParallelBatch.Get(ctx, batchID)
}

// Status loads a batch and its tasks for GET /parallel?action=status.
func (p *Processor) Status(ctx context.Context, batchID string) (*models.BatchResponse, error) {
	batch, err := p.client.ParallelBatch.Get(ctx, batchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrBatchNotFound
		}
		return nil, fmt.Errorf("parallel: failed to load batch %s: %w", batchID, err)
	}
	tasks, err := p.client.ParallelTask.Query().Where(paralleltask.BatchID(batchID)).
		Order(ent.Asc(paralleltask.FieldWaveIndex), ent.Asc(paralleltask.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("parallel: failed to load tasks for batch %s: %w", batchID, err)
	}
	return &models.BatchResponse{ParallelBatch: batch, Tasks: tasks}, nil
}

// Cancel stops a running batch: no new tasks start, in-flight tasks are
// detached per the underlying llmexec Executor's cancel semantics, and
// the batch ends in the cancelled state.
func (p *Processor) Cancel(sessionID, batchID string) {
	p.mu.Lock()
	cancel, ok := p.cancel[batchID]
	p.mu.Unlock()
	if ok {
		cancel()
	}
	p.llm.Cancel(sessionID)
}

// finish marks the batch completed or failed depending on whether every
// task resolved cleanly, and publishes a final progress event.
func (p *Processor) finish(ctx context.Context, batchID string, allResolved bool) (*ent.ParallelBatch, error) {
	status := parallelbatch.StatusCompleted
	if !allResolved {
		status = parallelbatch.StatusFailed
	}
	now := time.Now()
	if err := p.client.ParallelBatch.UpdateOneID(batchID).
		SetStatus(status).
		SetCompletedAt(now).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("parallel: failed to finalize batch: %w", err)
	}
	batch, err := p.client.ParallelBatch.Get(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("parallel: failed to reload finalized batch: %w", err)
	}
	p.publishProgress(ctx, batch, nil)
	return batch, nil
}

// publishProgress emits a BatchProgress event after a task transition.
// A nil byID re-queries current task state.
func (p *Processor) publishProgress(ctx context.Context, batch *ent.ParallelBatch, byID map[string]*ent.ParallelTask) {
	if p.publisher == nil {
		return
	}
	tasks, err := p.client.ParallelTask.Query().Where(paralleltask.BatchID(batch.ID)).All(ctx)
	if err != nil {
		return
	}
	completed := 0
	var inFlight []string
	for _, t := range tasks {
		switch t.Status {
		case paralleltask.StatusSucceeded, paralleltask.StatusFailed, paralleltask.StatusCancelled:
			completed++
		case paralleltask.StatusRunning:
			inFlight = append(inFlight, t.ID)
		}
	}
	_ = p.publisher.PublishBatchProgress(ctx, batch.SessionID, batch.ID, completed, len(tasks), inFlight)
}

// Reconcile requeues any task left in a non-terminal, in-flight status
// (running, ready) as pending on process restart, resolving the
// crash-mid-batch replay open question: terminal state is durable, but
// in-flight state is lost and must be redone.
func (p *Processor) Reconcile(ctx context.Context) (int, error) {
	orphaned, err := p.client.ParallelTask.Query().
		Where(paralleltask.StatusIn(paralleltask.StatusRunning, paralleltask.StatusReady)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("parallel: failed to query orphaned tasks: %w", err)
	}
	for _, t := range orphaned {
		if err := p.client.ParallelTask.UpdateOneID(t.ID).
			SetStatus(paralleltask.StatusPending).
			Exec(ctx); err != nil {
			return 0, fmt.Errorf("parallel: failed to requeue task %s: %w", t.ID, err)
		}
	}
	if len(orphaned) > 0 {
		slog.Info("parallel: requeued orphaned tasks on startup", "count", len(orphaned))
	}
	return len(orphaned), nil
}
