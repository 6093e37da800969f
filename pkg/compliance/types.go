// Package compliance implements the compliance checker: a stateless
// rule engine run over a generated file set, producing a scored report
// of PRIA violations.
package compliance

// File is one generated file submitted for analysis.
type File struct {
	Path    string
	Content string
}

// Severity is the severity of a single compliance issue.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// severityOrder gives the tie-break ordering of issues by severity; lower
// index sorts first.
var severityOrder = map[Severity]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
	SeverityInfo:     4,
}

// Category classifies the area of a compliance issue.
type Category string

const (
	CategorySecurity        Category = "security"
	CategoryArchitecture    Category = "architecture"
	CategoryPerformance     Category = "performance"
	CategoryMaintainability Category = "maintainability"
	CategoryAccessibility   Category = "accessibility"
)

// Issue is one finding from a single rule applied to a single file.
type Issue struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Category Category `json:"category"`
	File     string   `json:"file"`
	Line     int      `json:"line,omitempty"`
	Code     string   `json:"code,omitempty"`
	Fix      string   `json:"fix,omitempty"`
	RuleID   string   `json:"rule_id"`
}

// Report is the full output of Analyze.
type Report struct {
	Score            int                `json:"score"`
	IssueCountsBySeverity map[Severity]int `json:"issue_counts_by_severity"`
	Issues           []Issue            `json:"issues"`
	Summary          string             `json:"summary"`
	Recommendations  []string           `json:"recommendations"`
}

// QualityGates summarizes phase 4's pass/fail categories, used by the
// development iteration loop.
type QualityGates struct {
	TenantIsolation  bool `json:"tenant_isolation"`
	Authentication   bool `json:"authentication"`
	ErrorHandling    bool `json:"error_handling"`
	TypeDiscipline   bool `json:"type_discipline"`
	Security         bool `json:"security"`
	Accessibility    bool `json:"accessibility"`
	OverallQuality   bool `json:"overall_quality"`
}

// Gates derives pass/fail quality gates from the report: tenant isolation
// fails when the report has a tenant-isolation issue together with a
// critical or high security issue; authentication, error handling and
// type discipline fail on any issue from that rule, whatever its
// severity; security and accessibility fail on any critical or high
// issue in their category; overall quality requires Score >= 85.
func (r *Report) Gates() QualityGates {
	hasSevereIn := func(cat Category) bool {
		for _, iss := range r.Issues {
			if iss.Category == cat && (iss.Severity == SeverityCritical || iss.Severity == SeverityHigh) {
				return true
			}
		}
		return false
	}
	return QualityGates{
		TenantIsolation: !hasSevereIn(CategorySecurity) || !hasAny(r.Issues, "tenant-isolation"),
		Authentication:  !hasAny(r.Issues, "authentication"),
		ErrorHandling:   !hasAny(r.Issues, "error-handling"),
		TypeDiscipline:  !hasAny(r.Issues, "type-discipline"),
		Security:        !hasSevereIn(CategorySecurity),
		Accessibility:   !hasSevereIn(CategoryAccessibility),
		OverallQuality:  r.Score >= 85,
	}
}

func hasAny(issues []Issue, rulePrefix string) bool {
	for _, iss := range issues {
		if len(iss.RuleID) >= len(rulePrefix) && iss.RuleID[:len(rulePrefix)] == rulePrefix {
			return true
		}
	}
	return false
}
