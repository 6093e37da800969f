// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// ════════════════════════════════════════════════════════════════
// Event kinds
// ════════════════════════════════════════════════════════════════
//
// Two independent event families share this transport:
//
//   - Execute-stream events (stream_start, message, tool_use,
//     stream_complete, error): framed onto the SSE response of a single
//     in-flight /claude/execute call. A client that only consumes the
//     SSE body never touches the WebSocket at all; the same payloads
//     are additionally broadcast on the session channel so a second
//     observer (a dashboard, a reconnecting tab) can watch the same
//     turn live.
//
//   - Session-level events (session.status, batch.progress,
//     sandbox.status): asynchronous state changes not tied to any one
//     HTTP request — workflow phase advances, parallel batch progress,
//     sandbox health transitions. These are WebSocket-only.
//
// All events are transient: nothing here is replayed from a database.
// A client that misses an event while disconnected re-derives current
// state from the REST surface (GET session, GET parallel batch, GET
// sandbox) on reconnect rather than requesting a catch-up feed.
// ════════════════════════════════════════════════════════════════
package events

import "strings"

// Execute-stream event types, framed over SSE and mirrored to the
// session's WebSocket channel.
const (
	EventTypeStreamStart    = "stream_start"
	EventTypeMessage        = "message"
	EventTypeToolUse        = "tool_use"
	EventTypeStreamComplete = "stream_complete"
	EventTypeStreamError    = "error"
)

// Session and workflow lifecycle event types (WebSocket only).
const (
	EventTypeSessionStatus  = "session.status"
	EventTypeBatchProgress  = "batch.progress"
	EventTypeSandboxStatus  = "sandbox.status"
	EventTypeDevIteration   = "dev_iteration.recorded"
	EventTypeSessionCancel  = "session.cancel"
)

// GlobalSessionsChannel is the channel for cross-session status events,
// e.g. a session list view that needs updates for every session.
const GlobalSessionsChannel = "sessions"

// SessionCancelChannel is a fixed, always-LISTENed channel (unlike
// SessionChannel, which is opened per-session on demand): every pod
// subscribes to it at startup via NotifyListener.RegisterHandler so a
// DELETE /sessions/:id/cancel handled by one pod can stop an
// in-flight /claude/execute stream held open by another.
const SessionCancelChannel = "session_cancellations"

// SessionChannel returns the channel name for a specific session's
// events. Format: "session:{session_id}".
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// sessionChannelPrefix is the namespace every per-session channel lives
// under; SubscribableChannel keys off it.
const sessionChannelPrefix = "session:"

// SubscribableChannel reports whether a WebSocket client may subscribe
// to the named channel: the global sessions feed, or one session's own
// channel. Everything else — SessionCancelChannel included, which is a
// backend-to-backend relay — is rejected, so a client cannot make a pod
// LISTEN on arbitrary PostgreSQL channels.
func SubscribableChannel(name string) bool {
	if name == GlobalSessionsChannel {
		return true
	}
	return strings.HasPrefix(name, sessionChannelPrefix) && len(name) > len(sessionChannelPrefix)
}

// ClientMessage is the JSON structure for client -> server WebSocket
// messages.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "ping"
	Channel string `json:"channel,omitempty"` // e.g. "session:abc-123"
}
