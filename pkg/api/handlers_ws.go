package api

import (
	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// handleEventsWS upgrades an HTTP connection to WebSocket and delegates
// to the ConnectionManager, which fans session/global status events
// (session.status, batch.progress, sandbox.status, dev_iteration) out
// to whichever channels the client subscribes to after connecting. A
// client that only consumes /claude/execute's SSE body never needs
// this endpoint at all.
func (s *Server) handleEventsWS(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(503, "event stream not available")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// Origin validation is left to an edge proxy/ingress allowlist;
		// this endpoint carries no credentials of its own beyond the
		// caller already having a valid session id to subscribe on.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	s.connManager.HandleConnection(c.Request().Context(), conn)
	return nil
}
