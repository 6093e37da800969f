package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(SessionStatusPayload{
			BasePayload: BasePayload{Type: EventTypeSessionStatus, SessionID: "abc-123"},
			Status:      "in_progress",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeSessionStatus)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		longContent := make([]byte, 8000)
		for i := range longContent {
			longContent[i] = 'a'
		}
		payload, _ := json.Marshal(StreamMessagePayload{
			BasePayload: BasePayload{Type: EventTypeMessage, SessionID: "abc-123"},
			Content:     string(longContent),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(StreamMessagePayload{
			BasePayload: BasePayload{Type: EventTypeMessage},
			Content:     "hello",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		longContent := make([]byte, 8000)
		for i := range longContent {
			longContent[i] = 'x'
		}
		payload, _ := json.Marshal(StreamMessagePayload{
			BasePayload: BasePayload{Type: EventTypeMessage, SessionID: "sess-789"},
			Content:     string(longContent),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeMessage)
		assert.Contains(t, result, "sess-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		base, _ := json.Marshal(StreamMessagePayload{BasePayload: BasePayload{Type: "t"}})
		contentSize := 7900 - len(base) - 20
		content := make([]byte, contentSize)
		for i := range content {
			content[i] = 'b'
		}
		payload, _ := json.Marshal(StreamMessagePayload{
			BasePayload: BasePayload{Type: "t"},
			Content:     string(content),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestSessionStatusPayload_JSON(t *testing.T) {
	payload := SessionStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeSessionStatus,
			SessionID: "sess-123",
			Timestamp: "2026-02-10T12:00:00Z",
		},
		Phase:  4,
		Status: "in_progress",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded SessionStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeSessionStatus, decoded.Type)
	assert.Equal(t, "sess-123", decoded.SessionID)
	assert.Equal(t, 4, decoded.Phase)
	assert.Equal(t, "in_progress", decoded.Status)
	assert.Equal(t, "2026-02-10T12:00:00Z", decoded.Timestamp)
}

func TestBatchProgressPayload_JSON(t *testing.T) {
	payload := BatchProgressPayload{
		BasePayload: BasePayload{
			Type:      EventTypeBatchProgress,
			SessionID: "sess-100",
			Timestamp: "2026-02-13T10:00:00Z",
		},
		BatchID:    "batch-1",
		Completed:  2,
		Total:      3,
		Percentage: 66.67,
		InFlight:   []string{"T3"},
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded BatchProgressPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeBatchProgress, decoded.Type)
	assert.Equal(t, "sess-100", decoded.SessionID)
	assert.Equal(t, "batch-1", decoded.BatchID)
	assert.Equal(t, 2, decoded.Completed)
	assert.Equal(t, 3, decoded.Total)
	assert.Equal(t, []string{"T3"}, decoded.InFlight)
}

func TestSandboxStatusPayload_JSON(t *testing.T) {
	payload := SandboxStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeSandboxStatus,
			SessionID: "sess-200",
			Timestamp: "2026-02-13T10:00:00Z",
		},
		SandboxID: "sb-1",
		Status:    "unhealthy",
		Reason:    "health check timed out",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded SandboxStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeSandboxStatus, decoded.Type)
	assert.Equal(t, "sb-1", decoded.SandboxID)
	assert.Equal(t, "unhealthy", decoded.Status)
	assert.Equal(t, "health check timed out", decoded.Reason)
}
