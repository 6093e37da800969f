package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// EventPublisher broadcasts events via PostgreSQL NOTIFY. Every event
// here is transient: nothing is written to a table, so a disconnected
// client must re-derive state from the REST surface on reconnect
// rather than request a catch-up feed.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher. db should be the
// *sql.DB backing the ent client.
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// PublishStreamStart broadcasts the start of a subagent execute stream
// to the session channel.
func (p *EventPublisher) PublishStreamStart(ctx context.Context, sessionID, subagentName string, phase int) error {
	return p.notify(ctx, SessionChannel(sessionID), StreamStartPayload{
		BasePayload:  BasePayload{Type: EventTypeStreamStart, SessionID: sessionID, Timestamp: now()},
		SubagentName: subagentName,
		Phase:        phase,
	})
}

// PublishStreamMessage broadcasts one assistant text chunk.
func (p *EventPublisher) PublishStreamMessage(ctx context.Context, sessionID, content string, messageNumber int) error {
	return p.notify(ctx, SessionChannel(sessionID), StreamMessagePayload{
		BasePayload:   BasePayload{Type: EventTypeMessage, SessionID: sessionID, Timestamp: now()},
		Content:       content,
		MessageNumber: messageNumber,
	})
}

// PublishStreamToolUse broadcasts a tool invocation made during a
// subagent turn.
func (p *EventPublisher) PublishStreamToolUse(ctx context.Context, sessionID, toolName, inputJSON string) error {
	return p.notify(ctx, SessionChannel(sessionID), StreamToolUsePayload{
		BasePayload: BasePayload{Type: EventTypeToolUse, SessionID: sessionID, Timestamp: now()},
		ToolName:    toolName,
		Input:       inputJSON,
	})
}

// PublishStreamComplete broadcasts the successful end of a stream.
func (p *EventPublisher) PublishStreamComplete(ctx context.Context, sessionID string, totalMessages int) error {
	return p.notify(ctx, SessionChannel(sessionID), StreamCompletePayload{
		BasePayload:   BasePayload{Type: EventTypeStreamComplete, SessionID: sessionID, Timestamp: now()},
		TotalMessages: totalMessages,
	})
}

// PublishStreamError broadcasts the failed end of a stream.
func (p *EventPublisher) PublishStreamError(ctx context.Context, sessionID, kind, message string, retryable bool) error {
	return p.notify(ctx, SessionChannel(sessionID), StreamErrorPayload{
		BasePayload: BasePayload{Type: EventTypeStreamError, SessionID: sessionID, Timestamp: now()},
		Kind:        kind,
		Message:     message,
		Retryable:   retryable,
	})
}

// PublishSessionStatus broadcasts a workflow phase advance or terminal
// status change to the session channel and, best-effort, to the global
// sessions channel for a session-list view. Returns the first error
// encountered, if any; a failure on one channel does not block the
// other.
func (p *EventPublisher) PublishSessionStatus(ctx context.Context, sessionID string, phase int, status string) error {
	payload := SessionStatusPayload{
		BasePayload: BasePayload{Type: EventTypeSessionStatus, SessionID: sessionID, Timestamp: now()},
		Phase:       phase,
		Status:      status,
	}
	var firstErr error
	if err := p.notify(ctx, SessionChannel(sessionID), payload); err != nil {
		firstErr = err
	}
	if err := p.notify(ctx, GlobalSessionsChannel, payload); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// PublishBatchProgress broadcasts parallel batch progress after a task
// transition.
func (p *EventPublisher) PublishBatchProgress(ctx context.Context, sessionID, batchID string, completed, total int, inFlight []string) error {
	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total) * 100
	}
	return p.notify(ctx, SessionChannel(sessionID), BatchProgressPayload{
		BasePayload: BasePayload{Type: EventTypeBatchProgress, SessionID: sessionID, Timestamp: now()},
		BatchID:     batchID,
		Completed:   completed,
		Total:       total,
		Percentage:  pct,
		InFlight:    inFlight,
	})
}

// PublishSandboxStatus broadcasts a sandbox health state transition.
func (p *EventPublisher) PublishSandboxStatus(ctx context.Context, sessionID, sandboxID, status, reason string) error {
	return p.notify(ctx, SessionChannel(sessionID), SandboxStatusPayload{
		BasePayload: BasePayload{Type: EventTypeSandboxStatus, SessionID: sessionID, Timestamp: now()},
		SandboxID:   sandboxID,
		Status:      status,
		Reason:      reason,
	})
}

// PublishDevIteration broadcasts a newly recorded DevelopmentIteration.
func (p *EventPublisher) PublishDevIteration(ctx context.Context, sessionID string, iterationNumber, score int, nextAction string) error {
	return p.notify(ctx, SessionChannel(sessionID), DevIterationPayload{
		BasePayload:     BasePayload{Type: EventTypeDevIteration, SessionID: sessionID, Timestamp: now()},
		IterationNumber: iterationNumber,
		Score:           score,
		NextAction:      nextAction,
	})
}

// PublishSessionCancel broadcasts a cancellation on the fixed
// cross-pod SessionCancelChannel, not the per-session channel: every
// pod listens on it from startup (see NotifyListener.RegisterHandler
// wiring in cmd/builder), so whichever pod is holding the session's
// /claude/execute stream open learns to abort it even though the
// cancel request itself landed on a different pod.
func (p *EventPublisher) PublishSessionCancel(ctx context.Context, sessionID string) error {
	return p.notify(ctx, SessionCancelChannel, SessionCancelPayload{
		BasePayload: BasePayload{Type: EventTypeSessionCancel, SessionID: sessionID, Timestamp: now()},
	})
}

// notify marshals payload and broadcasts it via pg_notify on channel.
func (p *EventPublisher) notify(ctx context.Context, channel string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", payload, err)
	}
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the
// full JSON payload bytes, extracting only the routing fields a client
// needs to know it missed content and should re-fetch current state.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":       routing.Type,
		"session_id": routing.SessionID,
		"truncated":  true,
	}
	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
