package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/codeready-toolchain/builder/pkg/database"
	"github.com/codeready-toolchain/builder/test/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient  *database.Client
	publisher *EventPublisher
	manager   *ConnectionManager
	listener  *NotifyListener
	server    *httptest.Server
	sessionID string
	channel   string // session:<sessionID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	entClient, sqlDB := util.SetupTestDatabase(t)
	dbClient := database.NewClientFromEnt(entClient, sqlDB)
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := dbClient.Session.Create().
		SetID(sessionID).
		SetWorkspaceID("integration-test-workspace").
		SetInitialPrompt("build a todo app").
		Save(ctx)
	require.NoError(t, err)

	channel := SessionChannel(sessionID)

	publisher := NewEventPublisher(dbClient.DB())
	manager := NewConnectionManager(5 * time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:  dbClient,
		publisher: publisher,
		manager:   manager,
		listener:  listener,
		server:    server,
		sessionID: sessionID,
		channel:   channel,
	}
}

// connectWS opens a WebSocket to the test server. The connection is
// automatically closed on test cleanup.
func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the env's channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: env.channel})

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for the async LISTEN goroutine to complete on the NotifyListener's
	// dedicated connection, polling instead of sleeping.
	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return conn
}

// --- Tests ---

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	err := env.publisher.PublishStreamStart(ctx, env.sessionID, "code-generator", 4)
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, EventTypeStreamStart, msg["type"])
	require.Equal(t, "code-generator", msg["subagent_name"])
	require.Equal(t, env.sessionID, msg["session_id"])
}

func TestIntegration_DeltaStreamingProtocol(t *testing.T) {
	// Verifies the execute-stream protocol end to end:
	// stream_start, a run of message chunks, stream_complete.
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	err := env.publisher.PublishStreamStart(ctx, env.sessionID, "code-generator", 4)
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, EventTypeStreamStart, msg["type"])

	chunks := []string{"The pod ", "is in ", "CrashLoopBackOff ", "due to ", "a missing ConfigMap."}
	for i, chunk := range chunks {
		err := env.publisher.PublishStreamMessage(ctx, env.sessionID, chunk, i+1)
		require.NoError(t, err)

		msg := readJSONTimeout(t, conn, 5*time.Second)
		require.Equal(t, EventTypeMessage, msg["type"])
		require.Equal(t, chunk, msg["content"])
		require.Equal(t, float64(i+1), msg["message_number"])
	}

	err = env.publisher.PublishStreamComplete(ctx, env.sessionID, len(chunks))
	require.NoError(t, err)

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, EventTypeStreamComplete, msg["type"])
	require.Equal(t, float64(len(chunks)), msg["total_messages"])
}

func TestIntegration_BatchProgressBroadcastsOnGlobalChannel(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: GlobalSessionsChannel})
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	require.Eventually(t, func() bool {
		return env.listener.isListening(GlobalSessionsChannel)
	}, 2*time.Second, 10*time.Millisecond)

	err := env.publisher.PublishSessionStatus(ctx, env.sessionID, 3, "in_progress")
	require.NoError(t, err)

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, EventTypeSessionStatus, msg["type"])
	require.Equal(t, env.sessionID, msg["session_id"])
}

func TestIntegration_ResubscribeAfterUnsubscribe_KeepsListen(t *testing.T) {
	// Regression test for the race condition where a rapid unsubscribe/resubscribe
	// cycle (as caused by React StrictMode double-render) would drop the PG LISTEN.
	//
	// The race was:
	//   1. subscribe → LISTEN active
	//   2. unsubscribe → async goroutine: UNLISTEN (deferred)
	//   3. resubscribe → l.Subscribe saw "already listening" → returned early
	//   4. goroutine fired UNLISTEN → PG dropped the LISTEN
	//   5. all subsequent NOTIFY events were silently lost
	//
	// The fix has two parts:
	//   - l.Subscribe always sends LISTEN (no early return; PG handles duplicates)
	//   - the UNLISTEN goroutine re-checks m.channels and skips if resubscribed
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: env.channel})
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "initial LISTEN should propagate")

	// Rapid unsubscribe + resubscribe (mimics React StrictMode cleanup/remount)
	writeJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: env.channel})
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: env.channel})

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for the UNLISTEN goroutine to settle and verify LISTEN is still active.
	time.Sleep(200 * time.Millisecond)
	require.True(t, env.listener.isListening(env.channel),
		"LISTEN must survive a rapid unsubscribe/resubscribe cycle")

	err := env.publisher.PublishStreamStart(ctx, env.sessionID, "code-generator", 4)
	require.NoError(t, err)

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, EventTypeStreamStart, msg["type"])
	require.Equal(t, env.sessionID, msg["session_id"])
}

func TestIntegration_ListenerGenerationCounter_StaleUnlistenSkipped(t *testing.T) {
	// Tests the generation counter inside NotifyListener directly, bypassing
	// the ConnectionManager. This exercises the exact scenario from code review:
	//
	//   1. Subscribe → LISTEN, gen=1
	//   2. Concurrent Unsubscribe → captures gen=1, enqueues UNLISTEN(gen=1)
	//   3. Subscribe again → gen=2, enqueues LISTEN
	//   4. cmdCh processes: could be LISTEN then UNLISTEN(gen=1)
	//   5. processPendingCmds detects gen mismatch → skips stale UNLISTEN
	//   6. PG stays listened, l.channels stays true
	env := setupStreamingTest(t)
	ctx := context.Background()
	channel := env.channel

	require.NoError(t, env.listener.Subscribe(ctx, channel))
	require.True(t, env.listener.isListening(channel))

	unsubDone := make(chan struct{})
	go func() {
		defer close(unsubDone)
		_ = env.listener.Unsubscribe(context.Background(), channel)
	}()

	require.NoError(t, env.listener.Subscribe(ctx, channel))

	<-unsubDone

	require.True(t, env.listener.isListening(channel),
		"l.channels must stay true after stale UNLISTEN is skipped")

	conn := env.subscribeAndWait(t)

	err := env.publisher.PublishStreamStart(ctx, env.sessionID, "code-generator", 4)
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, EventTypeStreamStart, msg["type"])
	require.Equal(t, env.sessionID, msg["session_id"])
}
