package events

// BasePayload carries the fields common to every event payload so a
// client can route on type/session_id before parsing the rest of the
// message.
type BasePayload struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"` // RFC3339Nano, set by the caller
}

// StreamStartPayload announces the beginning of one subagent turn's
// execute stream.
type StreamStartPayload struct {
	BasePayload
	SubagentName string `json:"subagent_name"`
	Phase        int    `json:"phase"`
}

// StreamMessagePayload carries one assistant text chunk. MessageNumber
// is a monotonically increasing sequence within the stream, letting a
// client detect gaps.
type StreamMessagePayload struct {
	BasePayload
	Content       string `json:"content"`
	MessageNumber int    `json:"message_number"`
}

// StreamToolUsePayload announces a tool invocation the subagent made
// during the turn.
type StreamToolUsePayload struct {
	BasePayload
	ToolName string `json:"tool_name"`
	Input    string `json:"input"` // raw JSON, opaque to the transport
}

// StreamCompletePayload marks the terminal, successful end of a stream.
type StreamCompletePayload struct {
	BasePayload
	TotalMessages int `json:"total_messages"`
}

// StreamErrorPayload marks the terminal, failed end of a stream. Kind
// mirrors llmexec.ErrorKind so a client can decide whether retrying is
// worthwhile without string-matching Message.
type StreamErrorPayload struct {
	BasePayload
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// SessionStatusPayload announces a workflow phase advance or a terminal
// session status change.
type SessionStatusPayload struct {
	BasePayload
	Phase  int    `json:"phase"`
	Status string `json:"status"`
}

// BatchProgressPayload mirrors the parallel batch progress shape emitted
// after every task transition.
type BatchProgressPayload struct {
	BasePayload
	BatchID    string   `json:"batch_id"`
	Completed  int      `json:"completed"`
	Total      int      `json:"total"`
	Percentage float64  `json:"percentage"`
	InFlight   []string `json:"in_flight"`
}

// SandboxStatusPayload announces a sandbox health state transition.
type SandboxStatusPayload struct {
	BasePayload
	SandboxID string `json:"sandbox_id"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

// DevIterationPayload announces a new DevelopmentIteration record so a
// live dashboard can render the inner dev loop without polling.
type DevIterationPayload struct {
	BasePayload
	IterationNumber int    `json:"iteration_number"`
	Score           int    `json:"score"`
	NextAction      string `json:"next_action"`
}

// SessionCancelPayload is broadcast on SessionCancelChannel so every
// pod, not just the one that handled the cancel request, stops any
// /claude/execute stream it is holding open for the session.
type SessionCancelPayload struct {
	BasePayload
}
