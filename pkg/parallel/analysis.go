package parallel

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/builder/ent/paralleltask"
)

// Analysis is the dependency-graph view over one batch's tasks, exposed
// via GET /dependencies/{sessionId}.
type Analysis struct {
	Waves [][]string `json:"waves"`
	// CriticalPath is the highest-total-estimated-duration chain of
	// dependent tasks: the lower bound on the batch's wall-clock time
	// assuming unlimited concurrency.
	CriticalPath     []string `json:"critical_path"`
	CriticalPathMs   int      `json:"critical_path_ms"`
}

// Analyze loads batchID's tasks and recomputes their wave structure and
// critical path from persisted state (so it also reflects tasks added,
// not just the original request).
func (p *Processor) Analyze(ctx context.Context, batchID string) (*Analysis, error) {
	tasks, err := p.client.ParallelTask.Query().Where(paralleltask.BatchID(batchID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("parallel: failed to load tasks for batch %s: %w", batchID, err)
	}

	nodes := make([]taskNode, 0, len(tasks))
	durationByID := make(map[string]int, len(tasks))
	for _, t := range tasks {
		dur := 0
		if t.EstimatedDurationMs != nil {
			dur = *t.EstimatedDurationMs
		}
		durationByID[t.ID] = dur
		nodes = append(nodes, taskNode{
			ID:           t.ID,
			Priority:     string(t.Priority),
			DurationMs:   dur,
			Dependencies: t.Dependencies,
		})
	}

	waves, err := BuildWaves(nodes)
	if err != nil {
		return nil, err
	}

	path, total := criticalPath(nodes, durationByID)
	return &Analysis{Waves: waves, CriticalPath: path, CriticalPathMs: total}, nil
}

// criticalPath finds the dependency chain with the largest sum of
// estimated durations via a straightforward longest-path-in-a-DAG walk
// over the same dependency edges BuildWaves validated as acyclic.
func criticalPath(nodes []taskNode, duration map[string]int) ([]string, int) {
	byID := make(map[string]taskNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	memo := make(map[string]int)
	best := make(map[string][]string)

	var longestTo func(id string) int
	longestTo = func(id string) int {
		if v, ok := memo[id]; ok {
			return v
		}
		n := byID[id]
		maxPrefix := 0
		var maxPrefixPath []string
		for _, dep := range n.Dependencies {
			if l := longestTo(dep); l > maxPrefix {
				maxPrefix = l
				maxPrefixPath = best[dep]
			}
		}
		total := maxPrefix + duration[id]
		memo[id] = total
		best[id] = append(append([]string{}, maxPrefixPath...), id)
		return total
	}

	var overallBest []string
	overallTotal := 0
	for _, n := range nodes {
		if l := longestTo(n.ID); l > overallTotal {
			overallTotal = l
			overallBest = best[n.ID]
		}
	}
	return overallBest, overallTotal
}
