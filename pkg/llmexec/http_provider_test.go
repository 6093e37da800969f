package llmexec

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProviderStreamsChunks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/x-ndjson")
		w.WriteHeader(http.StatusOK)
		flusher, _ := w.(http.Flusher)
		for _, line := range []string{
			`{"type":"text","text":"hello "}`,
			`{"type":"text","text":"world"}`,
			`{"type":"tool_use","tool_call_id":"1","tool_name":"search","tool_args":"{}"}`,
			`{"type":"usage","input_tokens":10,"output_tokens":5}`,
			`{"type":"done"}`,
		} {
			w.Write([]byte(line + "\n"))
			if flusher != nil {
				flusher.Flush()
			}
		}
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "test-key", false)
	ch, err := p.Stream(context.Background(), Request{SessionID: "s1", AgentName: "code-generator"})
	require.NoError(t, err)

	var text string
	var sawToolUse, sawUsage bool
	for c := range ch {
		switch c.Type {
		case ChunkText:
			text += c.Text
		case ChunkToolUse:
			sawToolUse = true
			assert.Equal(t, "search", c.ToolName)
		case ChunkUsage:
			sawUsage = true
		case ChunkError:
			t.Fatalf("unexpected error chunk: %v", c.Err)
		}
	}

	assert.Equal(t, "hello world", text)
	assert.True(t, sawToolUse)
	assert.True(t, sawUsage)
}

func TestHTTPProviderSurfacesGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "bad-key", false)
	_, err := p.Stream(context.Background(), Request{SessionID: "s1"})
	require.Error(t, err)
}
