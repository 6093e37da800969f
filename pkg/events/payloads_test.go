package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamStartPayload(t *testing.T) {
	payload := StreamStartPayload{
		BasePayload:  BasePayload{Type: EventTypeStreamStart, SessionID: "session-abc", Timestamp: time.Now().Format(time.RFC3339Nano)},
		SubagentName: "code-generator",
		Phase:        4,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, EventTypeStreamStart, m["type"])
	assert.Equal(t, "session-abc", m["session_id"])
	assert.Equal(t, "code-generator", m["subagent_name"])
	assert.Equal(t, float64(4), m["phase"])
}

func TestStreamMessagePayload_SequenceNumbering(t *testing.T) {
	chunks := []string{"The ", "answer ", "is ", "42."}
	var payloads []StreamMessagePayload
	for i, content := range chunks {
		payloads = append(payloads, StreamMessagePayload{
			BasePayload:   BasePayload{Type: EventTypeMessage, SessionID: "session-456"},
			Content:       content,
			MessageNumber: i + 1,
		})
	}

	require.Len(t, payloads, 4)
	for i, p := range payloads {
		assert.Equal(t, i+1, p.MessageNumber)
	}
	assert.Equal(t, "42.", payloads[3].Content)
}

func TestStreamToolUsePayload(t *testing.T) {
	payload := StreamToolUsePayload{
		BasePayload: BasePayload{Type: EventTypeToolUse, SessionID: "session-1"},
		ToolName:    "file_write",
		Input:       `{"path":"main.go"}`,
	}
	assert.Equal(t, "file_write", payload.ToolName)
	assert.JSONEq(t, `{"path":"main.go"}`, payload.Input)
}

func TestStreamCompletePayload(t *testing.T) {
	payload := StreamCompletePayload{
		BasePayload:   BasePayload{Type: EventTypeStreamComplete, SessionID: "session-1"},
		TotalMessages: 7,
	}
	assert.Equal(t, 7, payload.TotalMessages)
}

func TestStreamErrorPayload(t *testing.T) {
	payload := StreamErrorPayload{
		BasePayload: BasePayload{Type: EventTypeStreamError, SessionID: "session-1"},
		Kind:        "rate_limit",
		Message:     "rate limit exceeded",
		Retryable:   true,
	}
	assert.True(t, payload.Retryable)
	assert.Contains(t, payload.Message, "rate limit")
}

func TestSessionStatusPayload(t *testing.T) {
	payload := SessionStatusPayload{
		BasePayload: BasePayload{Type: EventTypeSessionStatus, SessionID: "session-123"},
		Phase:       3,
		Status:      "in_progress",
	}
	assert.Equal(t, 3, payload.Phase)
	assert.Equal(t, "in_progress", payload.Status)
}

func TestBatchProgressPayload(t *testing.T) {
	payload := BatchProgressPayload{
		BasePayload: BasePayload{Type: EventTypeBatchProgress, SessionID: "session-1"},
		BatchID:     "batch-1",
		Completed:   2,
		Total:       5,
		Percentage:  40,
		InFlight:    []string{"T3", "T4"},
	}
	assert.Equal(t, 40.0, payload.Percentage)
	assert.ElementsMatch(t, []string{"T3", "T4"}, payload.InFlight)
}

func TestSandboxStatusPayload(t *testing.T) {
	payload := SandboxStatusPayload{
		BasePayload: BasePayload{Type: EventTypeSandboxStatus, SessionID: "session-1"},
		SandboxID:   "sandbox-1",
		Status:      "degraded",
		Reason:      "health check timed out",
	}
	assert.Equal(t, "degraded", payload.Status)
	assert.NotEmpty(t, payload.Reason)
}

func TestDevIterationPayload(t *testing.T) {
	payload := DevIterationPayload{
		BasePayload:     BasePayload{Type: EventTypeDevIteration, SessionID: "session-1"},
		IterationNumber: 2,
		Score:           95,
		NextAction:      "completed",
	}
	assert.Equal(t, 95, payload.Score)
	assert.Equal(t, "completed", payload.NextAction)
}
