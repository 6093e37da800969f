package compliance

import (
	"regexp"
	"strings"
)

// rule is one independently-applied check over a single file's lines.
type rule struct {
	id       string
	category Category
	check    func(f File) []Issue
}

// secretPattern is a named, compiled secret-shape matcher used for
// detection: a finding, not a replacement.
type secretPattern struct {
	name    string
	regex   *regexp.Regexp
	fix     string
}

// The assignment matcher (?::=|[:=]) accepts Go's := alongside = and
// the object-literal colon.
var secretPatterns = []secretPattern{
	{"api-key", regexp.MustCompile(`(?i)(api[_-]?key|apikey)\s*(?::=|[:=])\s*['"][a-zA-Z0-9_\-]{16,}['"]`), "load from environment or secret manager instead of a literal"},
	{"password", regexp.MustCompile(`(?i)password\s*(?::=|[:=])\s*['"][^'"]{4,}['"]`), "load from environment or secret manager instead of a literal"},
	{"token", regexp.MustCompile(`(?i)(secret|token|bearer)\s*(?::=|[:=])\s*['"][a-zA-Z0-9_\-.]{16,}['"]`), "load from environment or secret manager instead of a literal"},
	{"aws-key", regexp.MustCompile(`AKIA[0-9A-Z]{16}`), "rotate this key and load credentials from environment"},
}

var sqlTenantPattern = regexp.MustCompile(`(?i)(select|insert|update|delete)\b`)
var tenantFilterPattern = regexp.MustCompile(`(?i)workspace_id|tenant_id`)
var dynamicSQLPattern = regexp.MustCompile(`(?i)(query|exec)\s*\(\s*["'].*\+|fmt\.Sprintf\(\s*["'][^"']*(select|insert|update|delete)`)
var anyTypePattern = regexp.MustCompile(`\bany\b|\binterface\{\}`)
var imgTagPattern = regexp.MustCompile(`(?i)<img\b[^>]*>`)
var inputTagPattern = regexp.MustCompile(`(?i)<input\b[^>]*>`)

func allRules() []rule {
	return []rule{
		{id: "tenant-isolation", category: CategorySecurity, check: ruleTenantIsolation},
		{id: "authentication", category: CategorySecurity, check: ruleAuthentication},
		{id: "error-handling", category: CategoryMaintainability, check: ruleErrorHandling},
		{id: "type-discipline", category: CategoryMaintainability, check: ruleTypeDiscipline},
		{id: "secrets", category: CategorySecurity, check: ruleSecrets},
		{id: "injection", category: CategorySecurity, check: ruleInjection},
		{id: "accessibility", category: CategoryAccessibility, check: ruleAccessibility},
		{id: "performance", category: CategoryPerformance, check: rulePerformance},
	}
}

func forEachLine(f File, fn func(lineNo int, line string)) {
	for i, line := range strings.Split(f.Content, "\n") {
		fn(i+1, line)
	}
}

// ruleTenantIsolation flags data-layer statements that omit a tenant filter.
func ruleTenantIsolation(f File) []Issue {
	var issues []Issue
	forEachLine(f, func(lineNo int, line string) {
		if !sqlTenantPattern.MatchString(line) {
			return
		}
		if tenantFilterPattern.MatchString(line) {
			return
		}
		issues = append(issues, Issue{
			Severity: SeverityCritical, Category: CategorySecurity,
			File: f.Path, Line: lineNo, Code: strings.TrimSpace(line),
			Fix: "add a workspace_id/tenant_id filter to this statement",
			RuleID: "tenant-isolation",
		})
	})
	return issues
}

// ruleAuthentication flags server entry points lacking an identity check.
func ruleAuthentication(f File) []Issue {
	var issues []Issue
	if !strings.Contains(f.Path, "handler") && !strings.Contains(f.Path, "route") {
		return issues
	}
	forEachLine(f, func(lineNo int, line string) {
		if !strings.Contains(line, "func ") || !strings.Contains(strings.ToLower(line), "handler") {
			return
		}
		body := f.Content
		if !strings.Contains(body, "VerifyIdentity") && !strings.Contains(body, "Authenticate") {
			issues = append(issues, Issue{
				Severity: SeverityCritical, Category: CategorySecurity,
				File: f.Path, Line: lineNo, Code: strings.TrimSpace(line),
				Fix: "call the identity verifier and validate workspace access before handling the request",
				RuleID: "authentication",
			})
		}
	})
	return issues
}

// ruleErrorHandling flags async functions with no structured recovery and
// error returns that are never logged.
func ruleErrorHandling(f File) []Issue {
	var issues []Issue
	forEachLine(f, func(lineNo int, line string) {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "func ") && strings.Contains(trimmed, "go ") {
			if !strings.Contains(f.Content, "recover()") {
				issues = append(issues, Issue{
					Severity: SeverityMedium, Category: CategoryMaintainability,
					File: f.Path, Line: lineNo, Code: trimmed,
					Fix: "wrap goroutine bodies with a deferred recover",
					RuleID: "error-handling",
				})
			}
		}
		if strings.Contains(trimmed, "if err != nil") && !strings.Contains(f.Content, "log") {
			issues = append(issues, Issue{
				Severity: SeverityMedium, Category: CategoryMaintainability,
				File: f.Path, Line: lineNo, Code: trimmed,
				Fix: "log the error before returning or swallowing it",
				RuleID: "error-handling",
			})
		}
	})
	return issues
}

// ruleTypeDiscipline flags untyped escape hatches and missing return types.
func ruleTypeDiscipline(f File) []Issue {
	var issues []Issue
	forEachLine(f, func(lineNo int, line string) {
		if anyTypePattern.MatchString(line) {
			issues = append(issues, Issue{
				Severity: SeverityHigh, Category: CategoryMaintainability,
				File: f.Path, Line: lineNo, Code: strings.TrimSpace(line),
				Fix: "replace the untyped escape hatch with a concrete type",
				RuleID: "type-discipline",
			})
		}
	})
	return issues
}

// ruleSecrets flags literal strings matching api-key/password/token shapes.
func ruleSecrets(f File) []Issue {
	var issues []Issue
	forEachLine(f, func(lineNo int, line string) {
		for _, p := range secretPatterns {
			if p.regex.MatchString(line) {
				issues = append(issues, Issue{
					Severity: SeverityCritical, Category: CategorySecurity,
					File: f.Path, Line: lineNo, Code: redact(line),
					Fix: p.fix, RuleID: "secrets",
				})
			}
		}
	})
	return issues
}

// redact cuts the reported code snippet off at the opening quote so the
// secret value itself never lands in a report.
func redact(line string) string {
	if i := strings.IndexAny(line, `'"`); i >= 0 {
		return strings.TrimSpace(line[:i+1]) + "..."
	}
	return strings.TrimSpace(line[:min(len(line), 40)]) + "..."
}

// ruleInjection flags raw dynamic SQL construction.
func ruleInjection(f File) []Issue {
	var issues []Issue
	forEachLine(f, func(lineNo int, line string) {
		if dynamicSQLPattern.MatchString(line) {
			issues = append(issues, Issue{
				Severity: SeverityCritical, Category: CategorySecurity,
				File: f.Path, Line: lineNo, Code: strings.TrimSpace(line),
				Fix: "use a parameterized query instead of string concatenation",
				RuleID: "injection",
			})
		}
	})
	return issues
}

// ruleAccessibility flags images without alt text and inputs without labels.
func ruleAccessibility(f File) []Issue {
	var issues []Issue
	if !strings.HasSuffix(f.Path, ".tsx") && !strings.HasSuffix(f.Path, ".jsx") && !strings.HasSuffix(f.Path, ".html") {
		return issues
	}
	forEachLine(f, func(lineNo int, line string) {
		imgNoAlt, inputNoLabel := false, false
		for _, tag := range imgTagPattern.FindAllString(line, -1) {
			if !strings.Contains(strings.ToLower(tag), "alt=") {
				imgNoAlt = true
			}
		}
		for _, tag := range inputTagPattern.FindAllString(line, -1) {
			lower := strings.ToLower(tag)
			if !strings.Contains(lower, "aria-label") && !strings.Contains(lower, "id=") {
				inputNoLabel = true
			}
		}
		if imgNoAlt {
			issues = append(issues, Issue{
				Severity: SeverityHigh, Category: CategoryAccessibility,
				File: f.Path, Line: lineNo, Code: strings.TrimSpace(line),
				Fix: "add an alt attribute describing the image", RuleID: "accessibility",
			})
		}
		if inputNoLabel {
			issues = append(issues, Issue{
				Severity: SeverityHigh, Category: CategoryAccessibility,
				File: f.Path, Line: lineNo, Code: strings.TrimSpace(line),
				Fix: "associate the control with a label via aria-label or id/for", RuleID: "accessibility",
			})
		}
	})
	return issues
}

// rulePerformance flags legacy router patterns and oversized import blocks.
func rulePerformance(f File) []Issue {
	var issues []Issue
	importCount := strings.Count(f.Content, "\n\t\"")
	if importCount > 30 {
		issues = append(issues, Issue{
			Severity: SeverityLow, Category: CategoryPerformance,
			File: f.Path, Fix: "split this file; an oversized import block suggests low cohesion",
			RuleID: "performance",
		})
	}
	if strings.Contains(f.Content, "http.HandleFunc(") {
		issues = append(issues, Issue{
			Severity: SeverityMedium, Category: CategoryArchitecture,
			File: f.Path, Fix: "use the project's router instead of the default mux",
			RuleID: "performance",
		})
	}
	return issues
}
