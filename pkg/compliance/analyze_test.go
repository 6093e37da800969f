package compliance_test

import (
	"testing"

	"github.com/codeready-toolchain/builder/pkg/compliance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_TenantIsolationMissingFilter(t *testing.T) {
	files := []compliance.File{
		{Path: "db/query.go", Content: `db.Query("SELECT * FROM sessions WHERE id = $1", id)`},
	}
	report := compliance.Analyze(files)
	require.NotEmpty(t, report.Issues)
	assert.Equal(t, compliance.SeverityCritical, report.Issues[0].Severity)
	assert.Equal(t, "tenant-isolation", report.Issues[0].RuleID)
}

func TestAnalyze_TenantIsolationWithFilterIsClean(t *testing.T) {
	files := []compliance.File{
		{Path: "db/query.go", Content: `db.Query("SELECT * FROM sessions WHERE workspace_id = $1", wsID)`},
	}
	report := compliance.Analyze(files)
	for _, iss := range report.Issues {
		assert.NotEqual(t, "tenant-isolation", iss.RuleID)
	}
}

func TestAnalyze_SecretsDetected(t *testing.T) {
	files := []compliance.File{
		{Path: "config.go", Content: `apiKey := "sk-ab12cd34ef56gh78ij90"`},
	}
	report := compliance.Analyze(files)
	require.NotEmpty(t, report.Issues)
	assert.Equal(t, "secrets", report.Issues[0].RuleID)
	assert.NotContains(t, report.Issues[0].Code, "ab12cd34ef56gh78ij90")
}

func TestAnalyze_ScoringFormula(t *testing.T) {
	files := []compliance.File{
		{Path: "a.go", Content: `db.Query("DELETE FROM users WHERE id = $1")`}, // critical: tenant-isolation
	}
	report := compliance.Analyze(files)
	assert.Equal(t, 75, report.Score)
}

func TestAnalyze_DeterministicOrdering(t *testing.T) {
	files := []compliance.File{
		{Path: "b.go", Content: "var x any"},
		{Path: "a.go", Content: "var y any"},
	}
	r1 := compliance.Analyze(files)
	r2 := compliance.Analyze(files)
	assert.Equal(t, r1, r2)
	require.Len(t, r1.Issues, 2)
	assert.Equal(t, "a.go", r1.Issues[0].File)
}

func TestReport_Gates(t *testing.T) {
	report := &compliance.Report{Score: 90}
	gates := report.Gates()
	assert.True(t, gates.OverallQuality)
	assert.True(t, gates.Security)

	report.Issues = []compliance.Issue{{Severity: compliance.SeverityCritical, Category: compliance.CategorySecurity, RuleID: "secrets"}}
	gates = report.Gates()
	assert.False(t, gates.Security)
}
