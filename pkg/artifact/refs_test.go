package artifact_test

import (
	"testing"

	"github.com/codeready-toolchain/builder/pkg/artifact"
	"github.com/stretchr/testify/assert"
)

func TestParseRefs_OrderPreservingDeduplicated(t *testing.T) {
	text := "See @system-architect/api-spec and also @requirements-analyst/spec, " +
		"then again @system-architect/api-spec and @code-generator/*."

	refs := artifact.ParseRefs(text)

	assert.Equal(t, []string{
		"@system-architect/api-spec",
		"@requirements-analyst/spec",
		"@code-generator/*",
	}, refs)
}

func TestParseRefs_NoMatches(t *testing.T) {
	assert.Empty(t, artifact.ParseRefs("nothing to see here"))
}
