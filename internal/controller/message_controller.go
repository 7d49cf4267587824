package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/dto"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/apperror"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/serverutils"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/service"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetBySession(ctx *fiber.Ctx) error
}

type messageController struct {
	service service.IMessageService
}

func NewMessageController(service service.IMessageService) IMessageController {
	return &messageController{service: service}
}

func (c *messageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/messages")
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get("/by-session/:id", c.GetBySession)
}

func (c *messageController) Create(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	var req dto.CreateMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), identity, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Message created", res))
}

func (c *messageController) GetAll(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	res, err := c.service.GetAll(ctx.Context(), identity)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Message list", res))
}

func (c *messageController) GetBySession(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid session id")
	}

	res, err := c.service.GetBySession(ctx.Context(), identity, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session messages", res))
}
