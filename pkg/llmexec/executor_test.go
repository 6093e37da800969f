package llmexec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	chunks []Chunk
}

func (p *fakeProvider) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	ch := make(chan Chunk, len(p.chunks))
	for _, c := range p.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func TestExecuteClassifiesFileWriteToolCallAsArtifact(t *testing.T) {
	provider := &fakeProvider{chunks: []Chunk{
		{Type: ChunkText, Text: "done"},
		{Type: ChunkToolUse, ToolCallID: "1", ToolName: ToolWriteFile, ToolArgs: `{"path":"main.go","content":"package main"}`},
		{Type: ChunkToolUse, ToolCallID: "2", ToolName: "search", ToolArgs: `{"query":"foo"}`},
		{Type: ChunkUsage, InputTokens: 10, OutputTokens: 5},
	}}
	exec := NewExecutor(provider, nil)

	result, err := exec.Execute(context.Background(), Request{SessionID: "s1", AgentName: "code-generator"}, nil)
	require.NoError(t, err)

	require.Len(t, result.Artifacts, 1)
	assert.Equal(t, "file", result.Artifacts[0].Type)
	assert.Equal(t, "main.go", result.Artifacts[0].Path)
	assert.Equal(t, "package main", result.Artifacts[0].Content)
	assert.Equal(t, FileOperationWrite, result.Artifacts[0].Operation)
	assert.Equal(t, []string{"main.go"}, result.FilesModified)
	assert.Len(t, result.ToolCalls, 2)
	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
}

func TestExecuteDeduplicatesRepeatedFileEdits(t *testing.T) {
	provider := &fakeProvider{chunks: []Chunk{
		{Type: ChunkToolUse, ToolCallID: "1", ToolName: ToolEditFile, ToolArgs: `{"path":"main.go","content":"v1"}`},
		{Type: ChunkToolUse, ToolCallID: "2", ToolName: ToolEditFile, ToolArgs: `{"path":"main.go","content":"v2"}`},
	}}
	exec := NewExecutor(provider, nil)

	result, err := exec.Execute(context.Background(), Request{SessionID: "s1", AgentName: "code-generator"}, nil)
	require.NoError(t, err)

	assert.Len(t, result.Artifacts, 2)
	assert.Equal(t, []string{"main.go"}, result.FilesModified)
}

func TestExecuteSurfacesStreamErrorAsFailedResult(t *testing.T) {
	provider := &fakeProvider{chunks: []Chunk{
		{Type: ChunkText, Text: "partial"},
		{Type: ChunkError, Kind: ErrorKindNetwork, Err: assert.AnError},
	}}
	exec := NewExecutor(provider, nil)

	result, err := exec.Execute(context.Background(), Request{SessionID: "s1", AgentName: "code-generator"}, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, assert.AnError.Error(), result.Error)
}

func TestFileArtifactRequestsBuildsOneRequestPerFile(t *testing.T) {
	result := &Result{Artifacts: []FileArtifact{
		{Type: "file", Path: "a.go", Content: "package a", Operation: FileOperationWrite},
		{Type: "file", Path: "b.go", Content: "package b", Operation: FileOperationEdit},
	}}

	reqs := result.FileArtifactRequests("ws-1", "sess-1", "code-generator", 4)

	require.Len(t, reqs, 2)
	assert.Equal(t, "@code-generator/file/a.go", reqs[0].ReferenceKey)
	assert.Equal(t, "code", reqs[0].ArtifactType)
	assert.Equal(t, "write", reqs[0].Payload["operation"])
	assert.Equal(t, "@code-generator/file/b.go", reqs[1].ReferenceKey)
	assert.Equal(t, "edit", reqs[1].Payload["operation"])
}
