package controller

import (
	"context"
	"time"

	"ai-salescoach-be/internal/dto"
	"ai-salescoach-be/internal/pkg/logger"
	"ai-salescoach-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	VoiceEvent(ctx *fiber.Ctx) error
}

type webhookController struct {
	coachingService service.ICoachingService
	webhookToken    string
	logger          logger.ILogger
}

func NewWebhookController(coachingService service.ICoachingService, webhookToken string, log logger.ILogger) IWebhookController {
	return &webhookController{
		coachingService: coachingService,
		webhookToken:    webhookToken,
		logger:          log,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/webhook/v1")
	h.Post("voice-events", c.VoiceEvent)
}

// VoiceEvent always acknowledges with an empty JSON object, whatever happens
// downstream. A non-200 would make the transcription provider retry or, worse,
// surface an error into the call.
func (c *webhookController) VoiceEvent(ctx *fiber.Ctx) error {
	if c.webhookToken != "" && ctx.Query("token") != c.webhookToken {
		c.logger.Warn("Webhook", "Voice event with bad token rejected", map[string]interface{}{
			"ip": ctx.IP(),
		})
		return ctx.JSON(fiber.Map{})
	}

	var event dto.VoiceEvent
	if err := ctx.BodyParser(&event); err != nil {
		c.logger.Warn("Webhook", "Unparseable voice event payload", map[string]interface{}{
			"error": err.Error(),
		})
		return ctx.JSON(fiber.Map{})
	}
	event.ReceivedAt = time.Now()

	// Detached context: generation must survive the webhook response and
	// even the call hanging up mid-flight.
	go c.coachingService.ProcessVoiceEvent(context.Background(), &event)

	return ctx.JSON(fiber.Map{})
}
