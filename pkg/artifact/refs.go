package artifact

import "regexp"

var refPattern = regexp.MustCompile(`@([a-zA-Z0-9_-]+)/([a-zA-Z0-9_*-]+)`)

// ParseRefs scans free text for `@agent/name` patterns, returning the
// matched reference strings in order of first appearance with duplicates
// removed. A `*` name means "all of this agent's artifacts" and is
// preserved verbatim for the caller to expand.
func ParseRefs(text string) []string {
	matches := refPattern.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(matches))
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		refs = append(refs, m)
	}
	return refs
}
