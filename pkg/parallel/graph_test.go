package parallel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWaves_IndependentTasksSingleWave(t *testing.T) {
	waves, err := BuildWaves([]taskNode{
		{ID: "t1", Priority: "medium"},
		{ID: "t2", Priority: "medium"},
		{ID: "t3", Priority: "medium"},
	})
	require.NoError(t, err)
	require.Len(t, waves, 1)
	assert.ElementsMatch(t, []string{"t1", "t2", "t3"}, waves[0])
}

func TestBuildWaves_LinearChainThreeWaves(t *testing.T) {
	waves, err := BuildWaves([]taskNode{
		{ID: "t1"},
		{ID: "t2", Dependencies: []string{"t1"}},
		{ID: "t3", Dependencies: []string{"t2"}},
	})
	require.NoError(t, err)
	require.Len(t, waves, 3)
	assert.Equal(t, []string{"t1"}, waves[0])
	assert.Equal(t, []string{"t2"}, waves[1])
	assert.Equal(t, []string{"t3"}, waves[2])
}

func TestBuildWaves_MixedIndependentAndDependentTasks(t *testing.T) {
	// T1 (no deps), T2 (depends on T1), T3 (no deps): wave1={T1,T3}, wave2={T2}.
	waves, err := BuildWaves([]taskNode{
		{ID: "T1"},
		{ID: "T2", Dependencies: []string{"T1"}},
		{ID: "T3"},
	})
	require.NoError(t, err)
	require.Len(t, waves, 2)
	assert.ElementsMatch(t, []string{"T1", "T3"}, waves[0])
	assert.Equal(t, []string{"T2"}, waves[1])
}

func TestBuildWaves_DirectCycleRejected(t *testing.T) {
	_, err := BuildWaves([]taskNode{
		{ID: "A", Dependencies: []string{"B"}},
		{ID: "B", Dependencies: []string{"A"}},
	})
	assert.ErrorIs(t, err, ErrCyclicDependency)
}

func TestBuildWaves_SelfDependencyRejected(t *testing.T) {
	_, err := BuildWaves([]taskNode{
		{ID: "A", Dependencies: []string{"A"}},
	})
	assert.ErrorIs(t, err, ErrCyclicDependency)
}

func TestBuildWaves_UnknownDependencyRejected(t *testing.T) {
	_, err := BuildWaves([]taskNode{
		{ID: "A", Dependencies: []string{"ghost"}},
	})
	assert.ErrorIs(t, err, ErrUnknownDependency)
}

func TestBuildWaves_EmptyTaskSet(t *testing.T) {
	waves, err := BuildWaves(nil)
	require.NoError(t, err)
	assert.Empty(t, waves)
}

func TestBuildWaves_OrdersByPriorityThenDuration(t *testing.T) {
	waves, err := BuildWaves([]taskNode{
		{ID: "low", Priority: "low", DurationMs: 100},
		{ID: "high-slow", Priority: "high", DurationMs: 500},
		{ID: "high-fast", Priority: "high", DurationMs: 50},
		{ID: "medium", Priority: "medium", DurationMs: 10},
	})
	require.NoError(t, err)
	require.Len(t, waves, 1)
	assert.Equal(t, []string{"high-fast", "high-slow", "medium", "low"}, waves[0])
}
