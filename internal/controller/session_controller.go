package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/dto"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/apperror"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/serverutils"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetByUser(ctx *fiber.Ctx) error
	Claim(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sessions")
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get("/by-user/:id", c.GetByUser)
	h.Post("/claim", c.Claim)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	// The body is optional; an empty one creates an anonymous session.
	var req dto.CreateSessionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return err
		}
	}

	res, err := c.service.Create(ctx.Context(), identity, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *sessionController) GetAll(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	res, err := c.service.GetAll(ctx.Context(), identity)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session list", res))
}

func (c *sessionController) GetByUser(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid user id")
	}

	res, err := c.service.GetByUser(ctx.Context(), identity, userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("User sessions", res))
}

func (c *sessionController) Claim(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	var req dto.ClaimSessionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Claim(ctx.Context(), identity, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Sessions claimed", res))
}
