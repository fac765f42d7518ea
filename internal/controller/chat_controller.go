package controller

import (
	"gamechat-be/internal/dto"
	"gamechat-be/internal/pkg/serverutils"
	"gamechat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetHistory(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
}

type chatController struct {
	service    service.IChatService
	sessionMid fiber.Handler
}

func NewChatController(service service.IChatService, sessionMid fiber.Handler) IChatController {
	return &chatController{
		service:    service,
		sessionMid: sessionMid,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(c.sessionMid)
	h.Get(":gameId/history", c.GetHistory)
	h.Post(":gameId", c.SendChat)
	h.Delete(":gameId", c.ClearHistory)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)
	gameId := ctx.Params("gameId")

	res, err := c.service.GetHistory(ctx.Context(), sessionId, gameId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)
	gameId := ctx.Params("gameId")

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendChat(ctx.Context(), sessionId, gameId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) ClearHistory(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)
	gameId := ctx.Params("gameId")

	if err := c.service.ClearHistory(ctx.Context(), sessionId, gameId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear chat history", nil))
}
