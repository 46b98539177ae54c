package websocket

import (
	"sync"
	"testing"
	"time"

	"ai-salescoach-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type hubNoopLogger struct{}

func (hubNoopLogger) Debug(tag, msg string, fields map[string]interface{}) {}
func (hubNoopLogger) Info(tag, msg string, fields map[string]interface{})  {}
func (hubNoopLogger) Warn(tag, msg string, fields map[string]interface{})  {}
func (hubNoopLogger) Error(tag, msg string, fields map[string]interface{}) {}
func (hubNoopLogger) Sync() error                                          { return nil }

func waitForClientCount(t *testing.T, hub *Hub, userID uuid.UUID, want int) {
	t.Helper()
	assert.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients[userID]) == want
	}, time.Second, 5*time.Millisecond, "client count for user never reached %d", want)
}

// A client that stops draining its buffer must be dropped by the hub, and the
// hub loop has to survive it: only Run's unregister case may close the Send
// channel.
func TestSlowClientDroppedWithoutKillingHub(t *testing.T) {
	hub := NewHub(nil, hubNoopLogger{})
	go hub.Run()

	userID := uuid.New()
	slow := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	hub.register <- slow
	waitForClientCount(t, hub, userID, 1)
	slow.Send <- []byte("backlog") // nothing is draining; the buffer is now full

	hub.Send(userID, dto.CuePayload{Text: "Pivot to value over price."})
	waitForClientCount(t, hub, userID, 0)

	// The backlog is still readable, then the channel is closed exactly once.
	assert.Equal(t, []byte("backlog"), <-slow.Send)
	_, open := <-slow.Send
	assert.False(t, open, "hub should have closed the dropped client's channel")

	// Another cue for the now-empty user is a no-op, not a crash.
	hub.Send(userID, dto.CuePayload{Text: "Ask about their timeline."})

	// And the hub loop is still alive: a fresh client keeps receiving cues.
	healthy := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	hub.register <- healthy
	waitForClientCount(t, hub, userID, 1)

	hub.Send(userID, dto.CuePayload{Text: "Quantify the migration cost."})
	select {
	case msg := <-healthy.Send:
		assert.Contains(t, string(msg), "Quantify the migration cost.")
	case <-time.After(time.Second):
		t.Fatal("hub stopped delivering after dropping the slow client")
	}
}

// Two goroutines hitting the same full client at once must both come back and
// leave the hub serving; the unregister path has to tolerate the second
// request finding the client already gone.
func TestConcurrentSendsToFullClient(t *testing.T) {
	hub := NewHub(nil, hubNoopLogger{})
	go hub.Run()

	userID := uuid.New()
	// Unbuffered channel with no reader: every send attempt overflows.
	slow := &Client{Hub: hub, UserID: userID, Send: make(chan []byte)}
	hub.register <- slow
	waitForClientCount(t, hub, userID, 1)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Send(userID, dto.CuePayload{Text: "Hold the price firm."})
		}()
	}
	wg.Wait()
	waitForClientCount(t, hub, userID, 0)

	healthy := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	hub.register <- healthy
	waitForClientCount(t, hub, userID, 1)

	hub.Send(userID, dto.CuePayload{Text: "Offer the pilot program."})
	select {
	case msg := <-healthy.Send:
		assert.Contains(t, string(msg), "Offer the pilot program.")
	case <-time.After(time.Second):
		t.Fatal("hub loop died under concurrent overflow sends")
	}
}
