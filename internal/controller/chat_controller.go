package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/dto"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/apperror"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/serverutils"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
	r.Get("/history", c.History)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.Context(), identity, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat reply", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	sessionId, err := uuid.Parse(ctx.Query("sessionId"))
	if err != nil {
		return apperror.Validation("invalid or missing sessionId")
	}

	res, err := c.service.History(ctx.Context(), identity, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}
