package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPayloads_AllContainSessionID verifies that every payload type
// published on a session channel carries a non-empty session_id once
// marshaled, so a client can route a message before knowing its
// concrete payload shape.
func TestPayloads_AllContainSessionID(t *testing.T) {
	base := BasePayload{Type: "test.event", SessionID: "session-contract-1", Timestamp: "2026-01-01T00:00:00Z"}

	cases := []struct {
		name    string
		payload any
	}{
		{"StreamStartPayload", StreamStartPayload{BasePayload: base, SubagentName: "qa-engineer", Phase: 5}},
		{"StreamMessagePayload", StreamMessagePayload{BasePayload: base, Content: "hi", MessageNumber: 1}},
		{"StreamToolUsePayload", StreamToolUsePayload{BasePayload: base, ToolName: "search", Input: "{}"}},
		{"StreamCompletePayload", StreamCompletePayload{BasePayload: base, TotalMessages: 3}},
		{"StreamErrorPayload", StreamErrorPayload{BasePayload: base, Kind: "timeout", Message: "x", Retryable: true}},
		{"SessionStatusPayload", SessionStatusPayload{BasePayload: base, Phase: 2, Status: "in_progress"}},
		{"BatchProgressPayload", BatchProgressPayload{BasePayload: base, BatchID: "b1", Completed: 1, Total: 2}},
		{"SandboxStatusPayload", SandboxStatusPayload{BasePayload: base, SandboxID: "sb1", Status: "ready"}},
		{"DevIterationPayload", DevIterationPayload{BasePayload: base, IterationNumber: 1, Score: 80, NextAction: "code_review"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.payload)
			require.NoError(t, err)

			var m map[string]any
			require.NoError(t, json.Unmarshal(data, &m))

			sessionID, ok := m["session_id"].(string)
			require.True(t, ok, "%s must serialize a session_id field", tc.name)
			assert.NotEmpty(t, sessionID)

			typ, ok := m["type"].(string)
			require.True(t, ok, "%s must serialize a type field", tc.name)
			assert.NotEmpty(t, typ)
		})
	}
}
