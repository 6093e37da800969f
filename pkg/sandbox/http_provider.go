package sandbox

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// HTTPProvider talks to an external sandbox service over HTTP. The wire
// protocol is a flat JSON request/response per operation, bearer
// authenticated, with exponential-backoff retry on transient failures.
type HTTPProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries uint64
}

// NewHTTPProvider creates a provider bound to a sandbox service endpoint.
func NewHTTPProvider(baseURL, apiKey string, insecureSkipVerify bool) *HTTPProvider {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true, MinVersion: tls.VersionTLS12} //nolint:gosec
	}
	return &HTTPProvider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Transport: &bearerTokenTransport{base: transport, token: apiKey}, Timeout: 30 * time.Second},
		maxRetries: 3,
	}
}

type bearerTokenTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}

func (p *HTTPProvider) do(ctx context.Context, method, path string, body, out interface{}) error {
	op := func() error {
		var reqBody io.Reader
		if body != nil {
			b, err := json.Marshal(body)
			if err != nil {
				return backoff.Permanent(fmt.Errorf("failed to marshal request: %w", err))
			}
			reqBody = bytes.NewReader(b)
		}

		u, err := url.JoinPath(p.baseURL, path)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to build request url: %w", err))
		}

		req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to build request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := p.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("sandbox provider request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("sandbox provider returned %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			data, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("sandbox provider returned %d: %s", resp.StatusCode, data))
		}
		if out == nil {
			return nil
		}
		return backoff.Permanent(json.NewDecoder(resp.Body).Decode(out))
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), p.maxRetries)
	return backoff.Retry(op, backoff.WithContext(policy, ctx))
}

type createResponse struct {
	ID         string `json:"id"`
	WorkingDir string `json:"working_dir"`
}

func (p *HTTPProvider) Create(ctx context.Context, opts CreateOptions) (string, string, error) {
	var resp createResponse
	err := p.do(ctx, http.MethodPost, "/sandboxes", map[string]any{
		"template_id": opts.TemplateID,
		"env_vars":    opts.EnvVars,
	}, &resp)
	if err != nil {
		return "", "", err
	}
	return resp.ID, resp.WorkingDir, nil
}

func (p *HTTPProvider) Execute(ctx context.Context, externalID, command string, opts ExecOptions) (*ExecResult, error) {
	timeout := time.Duration(opts.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var resp ExecResult
	err := p.do(execCtx, http.MethodPost, fmt.Sprintf("/sandboxes/%s/exec", externalID), map[string]any{
		"command":     command,
		"working_dir": opts.WorkingDir,
		"env":         opts.Env,
		"timeout_ms":  opts.TimeoutMs,
	}, &resp)
	if execCtx.Err() != nil {
		return nil, ErrTimeout
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *HTTPProvider) WriteFile(ctx context.Context, externalID, path, content string) error {
	return p.do(ctx, http.MethodPut, fmt.Sprintf("/sandboxes/%s/files", externalID), map[string]any{
		"path": path, "content": content,
	}, nil)
}

type readFileResponse struct {
	Content string `json:"content"`
}

func (p *HTTPProvider) ReadFile(ctx context.Context, externalID, path string) (string, error) {
	var resp readFileResponse
	err := p.do(ctx, http.MethodGet, fmt.Sprintf("/sandboxes/%s/files?path=%s", externalID, url.QueryEscape(path)), nil, &resp)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

type listResponse struct {
	Entries []string `json:"entries"`
}

func (p *HTTPProvider) List(ctx context.Context, externalID, dir string) ([]string, error) {
	var resp listResponse
	err := p.do(ctx, http.MethodGet, fmt.Sprintf("/sandboxes/%s/list?dir=%s", externalID, url.QueryEscape(dir)), nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

type previewResponse struct {
	URL string `json:"url"`
}

func (p *HTTPProvider) PreviewURL(ctx context.Context, externalID string, port int) (string, error) {
	var resp previewResponse
	err := p.do(ctx, http.MethodGet, fmt.Sprintf("/sandboxes/%s/preview?port=%d", externalID, port), nil, &resp)
	if err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (p *HTTPProvider) Terminate(ctx context.Context, externalID string) error {
	return p.do(ctx, http.MethodDelete, fmt.Sprintf("/sandboxes/%s", externalID), nil, nil)
}

func (p *HTTPProvider) Liveness(ctx context.Context, externalID string) (time.Duration, error) {
	start := time.Now()
	livenessCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := p.Execute(livenessCtx, externalID, "true", ExecOptions{TimeoutMs: 5000})
	return time.Since(start), err
}
