package compliance

import "sort"

// Analyze runs every rule family independently over every file and
// produces a deterministic, scored Report. Same input files always
// produce the same report, byte for byte.
func Analyze(files []File) *Report {
	var issues []Issue
	for _, f := range files {
		for _, r := range allRules() {
			issues = append(issues, r.check(f)...)
		}
	}

	sortIssues(issues)

	counts := map[Severity]int{}
	for _, iss := range issues {
		counts[iss.Severity]++
	}

	report := &Report{
		Score:                 score(counts),
		IssueCountsBySeverity: counts,
		Issues:                issues,
		Summary:               summarize(counts, len(files)),
		Recommendations:       recommendations(issues),
	}
	return report
}

func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if severityOrder[issues[i].Severity] != severityOrder[issues[j].Severity] {
			return severityOrder[issues[i].Severity] < severityOrder[issues[j].Severity]
		}
		if issues[i].File != issues[j].File {
			return issues[i].File < issues[j].File
		}
		return issues[i].Line < issues[j].Line
	})
}

func score(counts map[Severity]int) int {
	s := 100 - 25*counts[SeverityCritical] - 10*counts[SeverityHigh] - 5*counts[SeverityMedium] - 2*counts[SeverityLow]
	if s < 0 {
		s = 0
	}
	return s
}

func summarize(counts map[Severity]int, fileCount int) string {
	if len(counts) == 0 {
		return "no issues found across the generated file set"
	}
	if counts[SeverityCritical] > 0 {
		return "critical issues found; phase 4 quality gate blocked"
	}
	return "no critical issues; review high/medium findings before proceeding"
}

func recommendations(issues []Issue) []string {
	seen := map[string]bool{}
	var recs []string
	for _, iss := range issues {
		if seen[iss.RuleID] {
			continue
		}
		seen[iss.RuleID] = true
		recs = append(recs, iss.Fix)
	}
	return recs
}
