// Command builderctl is a thin command-line wrapper around the builder
// engine's HTTP API, for scripting session creation, workflow turns,
// artifact lookups, and one-off sandbox commands without hand-rolling
// curl invocations. It signs its own short-lived internal-auth token
// from the same shared secret the server verifies against.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/codeready-toolchain/builder/pkg/internalauth"
)

// Exit codes: 0 success, 64 usage, 70 internal, 74 I/O, 75 temporary
// failure.
const (
	exitOK        = 0
	exitUsage     = 64
	exitInternal  = 70
	exitIO        = 74
	exitTemporary = 75
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 2 {
		usage()
		return exitUsage
	}

	baseURL := os.Getenv("BUILDER_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	secretEnv := os.Getenv("BUILDER_INTERNAL_SECRET_ENV")
	if secretEnv == "" {
		secretEnv = "INTERNAL_SIGNING_SECRET"
	}
	secret := os.Getenv(secretEnv)
	if secret == "" {
		fmt.Fprintf(os.Stderr, "builderctl: %s is not set\n", secretEnv)
		return exitUsage
	}

	signer := internalauth.NewSigner([]byte(secret), "builderctl")
	token, err := signer.IssueWithTTL("builderctl", "cli", 5*time.Minute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "builderctl: failed to sign request token: %v\n", err)
		return exitInternal
	}

	c := &client{baseURL: baseURL, token: token, http: &http.Client{Timeout: 30 * time.Second}}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	group, sub := args[0], args[1]
	rest := args[2:]

	switch group {
	case "session":
		return runSession(ctx, c, sub, rest)
	case "artifact":
		return runArtifact(ctx, c, sub, rest)
	case "sandbox":
		return runSandbox(ctx, c, sub, rest)
	default:
		usage()
		return exitUsage
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: builderctl <group> <subcommand> [flags]

  session create   -workspace-id ID -prompt TEXT
  session advance  -session-id ID -workspace-id ID -turn TEXT [-confirm]
  artifact get     -session-id ID -workspace-id ID -ref @agent/key
  sandbox exec     -session-id ID -command CMD [-working-dir DIR]

environment:
  BUILDER_URL                   base URL of the builder API (default http://localhost:8080)
  BUILDER_INTERNAL_SECRET_ENV   name of the env var holding the signing secret (default INTERNAL_SIGNING_SECRET)`)
}

func runSession(ctx context.Context, c *client, sub string, args []string) int {
	switch sub {
	case "create":
		fs := flag.NewFlagSet("session create", flag.ContinueOnError)
		workspaceID := fs.String("workspace-id", "", "workspace id")
		prompt := fs.String("prompt", "", "initial prompt")
		if err := fs.Parse(args); err != nil {
			return exitUsage
		}
		if *workspaceID == "" || *prompt == "" {
			fmt.Fprintln(os.Stderr, "builderctl: -workspace-id and -prompt are required")
			return exitUsage
		}
		body := map[string]string{"workspace_id": *workspaceID, "initial_prompt": *prompt}
		return c.doAndPrint(ctx, http.MethodPost, "/sessions", body)

	case "advance":
		fs := flag.NewFlagSet("session advance", flag.ContinueOnError)
		sessionID := fs.String("session-id", "", "session id")
		workspaceID := fs.String("workspace-id", "", "workspace id")
		turn := fs.String("turn", "", "user turn text")
		confirm := fs.Bool("confirm", false, "force the current phase transition")
		if err := fs.Parse(args); err != nil {
			return exitUsage
		}
		if *sessionID == "" || *workspaceID == "" || *turn == "" {
			fmt.Fprintln(os.Stderr, "builderctl: -session-id, -workspace-id and -turn are required")
			return exitUsage
		}
		body := map[string]any{"session_id": *sessionID, "workspace_id": *workspaceID, "user_turn": *turn, "confirm": *confirm}
		return c.doAndPrint(ctx, http.MethodPost, "/workflow/advance", body)

	default:
		usage()
		return exitUsage
	}
}

func runArtifact(ctx context.Context, c *client, sub string, args []string) int {
	switch sub {
	case "get":
		fs := flag.NewFlagSet("artifact get", flag.ContinueOnError)
		sessionID := fs.String("session-id", "", "session id")
		workspaceID := fs.String("workspace-id", "", "workspace id")
		ref := fs.String("ref", "", "reference key, e.g. @agent/key")
		if err := fs.Parse(args); err != nil {
			return exitUsage
		}
		if *sessionID == "" || *workspaceID == "" || *ref == "" {
			fmt.Fprintln(os.Stderr, "builderctl: -session-id, -workspace-id and -ref are required")
			return exitUsage
		}
		path := fmt.Sprintf("/artifacts/%s?action=get&workspace_id=%s&reference_key=%s",
			*sessionID, *workspaceID, *ref)
		return c.doAndPrint(ctx, http.MethodGet, path, nil)

	default:
		usage()
		return exitUsage
	}
}

func runSandbox(ctx context.Context, c *client, sub string, args []string) int {
	switch sub {
	case "exec":
		fs := flag.NewFlagSet("sandbox exec", flag.ContinueOnError)
		sessionID := fs.String("session-id", "", "session id")
		command := fs.String("command", "", "command to run")
		workingDir := fs.String("working-dir", "", "working directory inside the sandbox")
		if err := fs.Parse(args); err != nil {
			return exitUsage
		}
		if *sessionID == "" || *command == "" {
			fmt.Fprintln(os.Stderr, "builderctl: -session-id and -command are required")
			return exitUsage
		}
		body := map[string]any{
			"action":      "execute",
			"session_id":  *sessionID,
			"command":     *command,
			"working_dir": *workingDir,
		}
		return c.doAndPrint(ctx, http.MethodPost, "/sandbox", body)

	default:
		usage()
		return exitUsage
	}
}

// client is a minimal internal-auth-signed HTTP client for the builder API.
type client struct {
	baseURL string
	token   string
	http    *http.Client
}

// doAndPrint performs one request and prints the response body to
// stdout, translating transport/HTTP-status failures into exit codes.
func (c *client) doAndPrint(ctx context.Context, method, path string, body any) int {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "builderctl: failed to encode request: %v\n", err)
			return exitInternal
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "builderctl: failed to build request: %v\n", err)
		return exitInternal
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			fmt.Fprintf(os.Stderr, "builderctl: request timed out: %v\n", err)
			return exitTemporary
		}
		fmt.Fprintf(os.Stderr, "builderctl: request failed: %v\n", err)
		return exitIO
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "builderctl: failed to read response: %v\n", err)
		return exitIO
	}

	var pretty bytes.Buffer
	if json.Indent(&pretty, data, "", "  ") == nil {
		fmt.Println(pretty.String())
	} else {
		fmt.Println(string(data))
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return exitOK
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusGatewayTimeout:
		return exitTemporary
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		return exitUsage
	default:
		return exitInternal
	}
}
