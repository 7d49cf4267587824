package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/serverutils"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/service"
)

type IIngestController interface {
	RegisterRoutes(r fiber.Router)
	IngestFaq(ctx *fiber.Ctx) error
}

type ingestController struct {
	service service.IIngestService
}

func NewIngestController(service service.IIngestService) IIngestController {
	return &ingestController{service: service}
}

func (c *ingestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ingest")
	h.Post("/faq", c.IngestFaq)
}

func (c *ingestController) IngestFaq(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	res, err := c.service.IngestFaq(ctx.Context(), identity)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Ingest queued", res))
}
