package llmexec

import (
	"bufio"
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// HTTPProvider implements Provider by calling an external LLM gateway
// over HTTP, streaming newline-delimited JSON chunks from a chunked
// response body. The auth/retry shape (bearer transport, exponential
// backoff on connection establishment) mirrors pkg/sandbox's
// HTTPProvider.
//
// The stream itself is not retried: once the model has started
// producing chunks, a reconnect would duplicate partial output, so
// only the initial connection attempt gets backoff.Retry. Mid-stream
// errors surface as a ChunkError and are left to the caller's own
// retry policy (pkg/parallel's task-level retry, or the workflow
// manager regressing a phase).
type HTTPProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries uint64
}

// NewHTTPProvider creates a provider bound to an LLM gateway endpoint
// and API key (LLM_API_KEY).
func NewHTTPProvider(baseURL, apiKey string, insecureSkipVerify bool) *HTTPProvider {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.IdleConnTimeout = idleConnTimeout
	if insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true, MinVersion: tls.VersionTLS12} //nolint:gosec
	}
	return &HTTPProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Transport: &bearerTransport{base: transport, token: apiKey},
			// No overall timeout: streaming responses are long-lived.
			// Per-turn deadlines come from the caller's context.
		},
		maxRetries: 3,
	}
}

type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}

// wireRequest is the JSON body posted to the gateway's /generate route.
type wireRequest struct {
	SessionID string          `json:"session_id"`
	AgentName string          `json:"agent_name"`
	Model     string          `json:"model,omitempty"`
	MaxTokens int             `json:"max_tokens,omitempty"`
	Messages  []wireMessage   `json:"messages"`
	Tools     []wireToolDef   `json:"tools,omitempty"`
}

type wireMessage struct {
	Role       string `json:"role"`
	Content    string `json:"content,omitempty"`
	ToolCallID string `json:"tool_call_id,omitempty"`
	ToolName   string `json:"tool_name,omitempty"`
}

type wireToolDef struct {
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	ParametersSchema string `json:"parameters_schema,omitempty"`
}

// wireChunk is one newline-delimited JSON line of the streamed response.
type wireChunk struct {
	Type         string `json:"type"`
	Text         string `json:"text,omitempty"`
	ToolCallID   string `json:"tool_call_id,omitempty"`
	ToolName     string `json:"tool_name,omitempty"`
	ToolArgs     string `json:"tool_args,omitempty"`
	InputTokens  int    `json:"input_tokens,omitempty"`
	OutputTokens int    `json:"output_tokens,omitempty"`
	Error        string `json:"error,omitempty"`
	ErrorKind    string `json:"error_kind,omitempty"`
}

// Stream implements Provider by POSTing req to baseURL+"/generate" and
// decoding the chunked NDJSON response body into the Chunk channel.
func (p *HTTPProvider) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	body, err := json.Marshal(toWireRequest(req))
	if err != nil {
		return nil, fmt.Errorf("llmexec: failed to marshal request: %w", err)
	}

	var resp *http.Response
	op := func() error {
		u, err := url.JoinPath(p.baseURL, "/generate")
		if err != nil {
			return backoff.Permanent(fmt.Errorf("llmexec: failed to build request url: %w", err))
		}
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("llmexec: failed to build request: %w", err))
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Accept", "application/x-ndjson")

		r, err := p.httpClient.Do(httpReq)
		if err != nil {
			return fmt.Errorf("llmexec: gateway request failed: %w", err)
		}
		if r.StatusCode == http.StatusUnauthorized {
			r.Body.Close()
			return backoff.Permanent(fmt.Errorf("llmexec: gateway returned 401"))
		}
		if r.StatusCode >= 500 {
			r.Body.Close()
			return fmt.Errorf("llmexec: gateway returned %d", r.StatusCode)
		}
		if r.StatusCode >= 400 {
			r.Body.Close()
			return backoff.Permanent(fmt.Errorf("llmexec: gateway returned %d", r.StatusCode))
		}
		resp = r
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), p.maxRetries)
	if err := backoff.Retry(op, backoff.WithContext(policy, ctx)); err != nil {
		return nil, classifyConnectError(err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			var wc wireChunk
			if err := json.Unmarshal([]byte(line), &wc); err != nil {
				sendOrDone(ctx, ch, Chunk{Type: ChunkError, Err: fmt.Errorf("llmexec: malformed chunk: %w", err), Kind: ErrorKindSDK})
				return
			}
			chunk, done := fromWireChunk(wc)
			sendOrDone(ctx, ch, chunk)
			if done {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			sendOrDone(ctx, ch, Chunk{Type: ChunkError, Err: err, Kind: ErrorKindNetwork})
		}
	}()

	return ch, nil
}

func sendOrDone(ctx context.Context, ch chan<- Chunk, c Chunk) {
	select {
	case ch <- c:
	case <-ctx.Done():
	}
}

func toWireRequest(req Request) wireRequest {
	wr := wireRequest{
		SessionID: req.SessionID,
		AgentName: req.AgentName,
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
	}
	for _, m := range req.Messages {
		wr.Messages = append(wr.Messages, wireMessage{
			Role: string(m.Role), Content: m.Content,
			ToolCallID: m.ToolCallID, ToolName: m.ToolName,
		})
	}
	for _, t := range req.Tools {
		wr.Tools = append(wr.Tools, wireToolDef{
			Name: t.Name, Description: t.Description, ParametersSchema: t.ParametersSchema,
		})
	}
	return wr
}

func fromWireChunk(wc wireChunk) (chunk Chunk, terminal bool) {
	switch wc.Type {
	case "text":
		return Chunk{Type: ChunkText, Text: wc.Text}, false
	case "tool_use":
		return Chunk{Type: ChunkToolUse, ToolCallID: wc.ToolCallID, ToolName: wc.ToolName, ToolArgs: wc.ToolArgs}, false
	case "usage":
		return Chunk{Type: ChunkUsage, InputTokens: wc.InputTokens, OutputTokens: wc.OutputTokens}, false
	case "error":
		return Chunk{Type: ChunkError, Err: fmt.Errorf("llmexec: %s", wc.Error), Kind: ErrorKind(wc.ErrorKind)}, true
	case "done":
		return Chunk{Type: ChunkUsage, InputTokens: wc.InputTokens, OutputTokens: wc.OutputTokens}, true
	default:
		return Chunk{Type: ChunkError, Err: fmt.Errorf("llmexec: unknown chunk type %q", wc.Type), Kind: ErrorKindSDK}, true
	}
}

func classifyConnectError(err error) error {
	return fmt.Errorf("llmexec: failed to start stream: %w", err)
}

// idleConnTimeout bounds how long the underlying transport keeps an
// idle connection to the gateway open.
const idleConnTimeout = 90 * time.Second
