package api

import (
	"context"
	"sync"
)

// streamRegistry tracks this pod's in-flight /claude/execute SSE
// streams by session id. A cancellation — whether it arrives locally
// via handleCancelSession or is relayed from another pod over
// events.SessionCancelChannel — looks the session up here and cancels
// its stream's context immediately instead of waiting for the LLM call
// to time out on its own.
type streamRegistry struct {
	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

func newStreamRegistry() *streamRegistry {
	return &streamRegistry{cancels: make(map[string]context.CancelFunc)}
}

// register associates sessionID with cancel for the lifetime of one
// stream. The caller must call unregister when the stream ends.
func (r *streamRegistry) register(sessionID string, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancels[sessionID] = cancel
}

func (r *streamRegistry) unregister(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cancels, sessionID)
}

// CancelLocalStream stops sessionID's /claude/execute stream if this
// pod is holding one open. Called by cmd/builder's NotifyListener
// handler when a cancellation relayed from another pod arrives over
// events.SessionCancelChannel.
func (s *Server) CancelLocalStream(sessionID string) bool {
	return s.streams.cancel(sessionID)
}

// cancel stops sessionID's stream if this pod is holding one open.
// Reports whether a stream was found, purely for logging/testing —
// callers must not treat "not found" as an error, since the stream may
// simply be held by a different pod.
func (r *streamRegistry) cancel(sessionID string) bool {
	r.mu.Lock()
	cancel, ok := r.cancels[sessionID]
	r.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}
