package controller

import (
	"wealth-advisor-be/internal/constant"
	"wealth-advisor-be/internal/dto"
	"wealth-advisor-be/internal/pkg/serverutils"
	"wealth-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type chatController struct {
	conversationService service.IConversationService
}

func NewChatController(conversationService service.IConversationService) IChatController {
	return &chatController{
		conversationService: conversationService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/api/chat", c.Ask)
	r.Get("/health", c.Health)
}

// Ask answers one conversation turn. The response body is the flat shape
// the widget consumes, not an envelope.
func (c *chatController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &dto.ValidationError{Message: constant.ErrMissingQuestion}
	}

	// The only required field is the question, so any validation failure
	// maps to the one message the widget knows how to display.
	if err := serverutils.ValidateRequest(&req); err != nil {
		return &dto.ValidationError{Message: constant.ErrMissingQuestion}
	}

	res, err := c.conversationService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}
