package controller

import (
	"gamechat-be/internal/dto"
	"gamechat-be/internal/pkg/serverutils"
	"gamechat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGameController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Reload(ctx *fiber.Ctx) error
}

type gameController struct {
	service service.IGameService
}

func NewGameController(service service.IGameService) IGameController {
	return &gameController{service: service}
}

func (c *gameController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/game/v1")
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
	h.Post("reload", c.Reload)
}

func (c *gameController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all games", res))
}

func (c *gameController) Show(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	game, err := c.service.GetGameById(ctx.Context(), id)
	if err != nil {
		return err
	}

	res := &dto.GameResponse{
		Id:          game.Id,
		DisplayName: game.DisplayName,
		Description: game.Description,
		Thumbnail:   game.Thumbnail,
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show game", res))
}

func (c *gameController) Reload(ctx *fiber.Ctx) error {
	if err := c.service.Reload(); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success reload game catalog", nil))
}
