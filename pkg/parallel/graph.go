package parallel

import "sort"

// taskNode is the graph builder's working copy of one task's identity and
// dependency edges; it never touches the ent/DB layer so it can be unit
// tested in isolation.
type taskNode struct {
	ID           string
	Priority     string
	DurationMs   int
	Dependencies []string
}

// priorityRank orders "high" before "medium" before "low".
var priorityRank = map[string]int{"high": 0, "medium": 1, "low": 2}

// BuildWaves runs Kahn's algorithm over the tasks' dependencies[] edges,
// producing the maximal sets of tasks ("waves") whose dependencies are
// all satisfied by earlier waves. Returns ErrCyclicDependency if the
// graph has a cycle, ErrUnknownDependency if a task names a dependency id
// absent from the batch — in both cases no wave is returned and the
// caller must execute nothing.
//
// Within a wave, tasks are ordered by priority (high -> low) then by
// estimated duration (shortest first).
func BuildWaves(tasks []taskNode) ([][]string, error) {
	byID := make(map[string]taskNode, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			if _, ok := byID[dep]; !ok {
				return nil, ErrUnknownDependency
			}
		}
	}

	// indegree[t] = number of unresolved dependencies of t.
	indegree := make(map[string]int, len(tasks))
	// dependents[d] = tasks that depend on d.
	dependents := make(map[string][]string, len(tasks))
	for _, t := range tasks {
		indegree[t.ID] = len(t.Dependencies)
		for _, dep := range t.Dependencies {
			dependents[dep] = append(dependents[dep], t.ID)
		}
	}

	var waves [][]string
	remaining := len(tasks)
	resolved := make(map[string]bool, len(tasks))

	for remaining > 0 {
		var ready []string
		for id, deg := range indegree {
			if deg == 0 && !resolved[id] {
				ready = append(ready, id)
			}
		}
		if len(ready) == 0 {
			// Every remaining task has an unresolved dependency: a cycle.
			return nil, ErrCyclicDependency
		}

		sort.Slice(ready, func(i, j int) bool {
			ti, tj := byID[ready[i]], byID[ready[j]]
			pi, pj := priorityRank[ti.Priority], priorityRank[tj.Priority]
			if pi != pj {
				return pi < pj
			}
			if ti.DurationMs != tj.DurationMs {
				return ti.DurationMs < tj.DurationMs
			}
			return ti.ID < tj.ID
		})

		waves = append(waves, ready)
		for _, id := range ready {
			resolved[id] = true
			delete(indegree, id)
			remaining--
		}
		for _, id := range ready {
			for _, dep := range dependents[id] {
				indegree[dep]--
			}
		}
	}

	return waves, nil
}
