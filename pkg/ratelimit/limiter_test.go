package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowRespectsBurst(t *testing.T) {
	l := New(1, 2)

	assert.True(t, l.Allow("workspace-a"))
	assert.True(t, l.Allow("workspace-a"))
	assert.False(t, l.Allow("workspace-a"))
}

func TestAllowIsPerKey(t *testing.T) {
	l := New(1, 1)

	assert.True(t, l.Allow("workspace-a"))
	assert.False(t, l.Allow("workspace-a"))
	assert.True(t, l.Allow("workspace-b"))
}
