package controller

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"ai-salescoach-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type recordingCoachingService struct {
	events chan *dto.VoiceEvent
}

func (r *recordingCoachingService) ProcessVoiceEvent(ctx context.Context, event *dto.VoiceEvent) {
	r.events <- event
}

type silentLogger struct{}

func (silentLogger) Debug(tag, msg string, fields map[string]interface{}) {}
func (silentLogger) Info(tag, msg string, fields map[string]interface{})  {}
func (silentLogger) Warn(tag, msg string, fields map[string]interface{})  {}
func (silentLogger) Error(tag, msg string, fields map[string]interface{}) {}
func (silentLogger) Sync() error                                          { return nil }

func newWebhookApp(token string) (*fiber.App, *recordingCoachingService) {
	svc := &recordingCoachingService{events: make(chan *dto.VoiceEvent, 1)}
	app := fiber.New()
	NewWebhookController(svc, token, silentLogger{}).RegisterRoutes(app.Group("/api"))
	return app, svc
}

func postEvent(t *testing.T, app *fiber.App, url, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest("POST", url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(respBody)
}

func TestVoiceEventAlwaysAcknowledgesEmpty(t *testing.T) {
	app, svc := newWebhookApp("")

	status, body := postEvent(t, app, "/api/webhook/v1/voice-events",
		`{"role":"customer","type":"transcript","text":"too expensive","call_id":"c1"}`)

	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{}`, body, "webhook body must stay empty so nothing reaches the voice channel")

	select {
	case event := <-svc.events:
		assert.Equal(t, "too expensive", event.UtteranceText())
		assert.Equal(t, "c1", event.Call())
		assert.False(t, event.ReceivedAt.IsZero())
	case <-time.After(time.Second):
		t.Fatal("pipeline was not invoked")
	}
}

func TestVoiceEventBadTokenAcknowledgedButDropped(t *testing.T) {
	app, svc := newWebhookApp("secret")

	status, body := postEvent(t, app, "/api/webhook/v1/voice-events?token=wrong",
		`{"role":"customer","text":"hello","call_id":"c1"}`)

	// Still 200 with an empty body: a rejection status would surface to the
	// transcription provider.
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{}`, body)

	select {
	case <-svc.events:
		t.Fatal("unauthenticated event must not reach the pipeline")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestVoiceEventValidTokenAccepted(t *testing.T) {
	app, svc := newWebhookApp("secret")

	status, _ := postEvent(t, app, "/api/webhook/v1/voice-events?token=secret",
		`{"role":"customer","text":"hello","call_id":"c1"}`)

	assert.Equal(t, 200, status)
	select {
	case <-svc.events:
	case <-time.After(time.Second):
		t.Fatal("authenticated event should reach the pipeline")
	}
}

func TestVoiceEventMalformedBodyAcknowledged(t *testing.T) {
	app, svc := newWebhookApp("")

	status, body := postEvent(t, app, "/api/webhook/v1/voice-events", `{not json`)

	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{}`, body)

	select {
	case <-svc.events:
		t.Fatal("unparseable event must not reach the pipeline")
	case <-time.After(100 * time.Millisecond):
	}
}
