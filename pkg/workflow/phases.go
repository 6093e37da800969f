package workflow

// Phase is the static description of one of the seven workflow phases. It
// binds a phase number to the artifact type its primary subagent produces
// and, for phase 4, the utility subagents the primary may delegate
// sub-tasks to via the parallel processor.
type Phase struct {
	Number       int
	Title        string
	ArtifactType string
	Utility      []string
}

// ConfidenceThreshold is the minimum self-reported confidence a phase's
// output must reach before the workflow advances automatically; below
// this, the caller must set Confirm to force the transition.
const ConfidenceThreshold = 0.8

// phases is the fixed seven-phase table. Primary-agent binding is resolved
// at runtime against the subagent registry by phase number; this table
// only carries what the registry cannot derive (the artifact type a
// phase's output is stored as, and which utility agents a phase may fan
// out to).
var phases = []Phase{
	{Number: 1, Title: "discovery", ArtifactType: "requirement"},
	{Number: 2, Title: "architecture", ArtifactType: "architecture"},
	{Number: 3, Title: "planning", ArtifactType: "plan"},
	{Number: 4, Title: "development", ArtifactType: "code", Utility: []string{"component-researcher", "integration-expert"}},
	{Number: 5, Title: "testing", ArtifactType: "test"},
	{Number: 6, Title: "validation", ArtifactType: "review"},
	{Number: 7, Title: "completion", ArtifactType: "artifact_index"},
}

func phaseByNumber(n int) *Phase {
	for i := range phases {
		if phases[i].Number == n {
			return &phases[i]
		}
	}
	return nil
}

// TotalPhases is the number of phases in the workflow.
const TotalPhases = 7
