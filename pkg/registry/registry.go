package registry

import (
	"fmt"
	"sort"
)

// Registry holds the catalog of subagents eligible for phase dispatch,
// loaded once at startup and treated as immutable thereafter.
type Registry struct {
	byName  map[string]SubagentDescriptor
	byPhase map[int][]string // phase -> sorted descriptor names
}

// New builds a Registry from a slice of descriptors. Descriptors with
// duplicate names are rejected; this is a startup-time programming error,
// not a runtime condition.
func New(descriptors []SubagentDescriptor) (*Registry, error) {
	byName := make(map[string]SubagentDescriptor, len(descriptors))
	byPhase := make(map[int][]string)

	for _, d := range descriptors {
		if d.Name == "" {
			return nil, fmt.Errorf("registry: descriptor with empty name")
		}
		if _, dup := byName[d.Name]; dup {
			return nil, fmt.Errorf("registry: duplicate subagent name %q", d.Name)
		}
		stored := d.clone()
		stored.AllowedTools = toolsForCapabilities(stored.Capabilities)
		byName[d.Name] = stored
		byPhase[d.Phase] = append(byPhase[d.Phase], d.Name)
	}
	for phase := range byPhase {
		sort.Strings(byPhase[phase])
	}

	return &Registry{byName: byName, byPhase: byPhase}, nil
}

// ByName returns the descriptor for name, or false if the catalog has no
// such subagent.
func (r *Registry) ByName(name string) (SubagentDescriptor, bool) {
	d, ok := r.byName[name]
	if !ok {
		return SubagentDescriptor{}, false
	}
	return d.clone(), true
}

// ByPhase returns the descriptors bound to the given phase, sorted by
// name for deterministic iteration.
func (r *Registry) ByPhase(phase int) []SubagentDescriptor {
	names := r.byPhase[phase]
	out := make([]SubagentDescriptor, 0, len(names))
	for _, n := range names {
		out = append(out, r.byName[n].clone())
	}
	return out
}

// ToolsFor returns the tool-shaped capabilities allowed for the named
// subagent. Returns nil if the subagent is unknown.
func (r *Registry) ToolsFor(name string) []Capability {
	d, ok := r.byName[name]
	if !ok {
		return nil
	}
	return append([]Capability(nil), d.AllowedTools...)
}

// Names returns every registered subagent name, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for n := range r.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
