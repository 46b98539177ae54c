package controller

import (
	"ai-salescoach-be/internal/dto"
	"ai-salescoach-be/internal/pkg/serverutils"
	"ai-salescoach-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICallController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	End(ctx *fiber.Ctx) error
	SelectPlaybook(ctx *fiber.Ctx) error
	ListCues(ctx *fiber.Ctx) error
}

type callController struct {
	callService service.ICallService
}

func NewCallController(callService service.ICallService) ICallController {
	return &callController{
		callService: callService,
	}
}

func (c *callController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/call/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Register)
	h.Delete(":callId", c.End)
	h.Put(":callId/playbook", c.SelectPlaybook)
	h.Get(":callId/cues", c.ListCues)
}

func (c *callController) Register(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.RegisterCallRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.callService.Register(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success register call", res))
}

func (c *callController) End(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	callId := ctx.Params("callId")

	if err := c.callService.End(ctx.Context(), userId, callId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success end call", nil))
}

func (c *callController) SelectPlaybook(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	callId := ctx.Params("callId")

	var req dto.SelectPlaybookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.callService.SelectPlaybook(ctx.Context(), userId, callId, req.PlaybookId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success select playbook", nil))
}

func (c *callController) ListCues(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	callId := ctx.Params("callId")

	res, err := c.callService.ListCues(ctx.Context(), userId, callId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list call cues", res))
}
