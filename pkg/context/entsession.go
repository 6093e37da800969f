package context

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/builder/ent"
)

// EntSession adapts an *ent.Client to the Session interface the
// synchronizer needs, without giving it the whole client surface.
type EntSession struct {
	client *ent.Client
}

// NewEntSession wraps client as a Session.
func NewEntSession(client *ent.Client) *EntSession {
	return &EntSession{client: client}
}

// Snapshot implements Session.
func (e *EntSession) Snapshot(ctx context.Context, sessionID string) (string, int, string, error) {
	sess, err := e.client.Session.Get(ctx, sessionID)
	if err != nil {
		return "", 0, "", fmt.Errorf("context: failed to get session %s: %w", sessionID, err)
	}
	return sess.WorkspaceID, sess.CurrentPhase, string(sess.Status), nil
}
