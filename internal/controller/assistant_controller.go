package controller

import (
	"vaul-ai-be/internal/dto"
	"vaul-ai-be/internal/pkg/serverutils"
	"vaul-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Ask)
	h.Get("/history", c.GetHistory)
}

// Ask uses the fixed wire contract {"prompt"} -> {"response"} / {"error"}
// rather than the standard envelope.
func (c *assistantController) Ask(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.AskAssistantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.AssistantErrorResponse{Error: "Prompt is required"})
	}

	if req.Prompt == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.AssistantErrorResponse{Error: "Prompt is required"})
	}

	res, err := c.assistantService.Ask(ctx.Context(), userId, req.Prompt)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "Failed to process request"
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.AssistantErrorResponse{Error: msg})
	}

	return ctx.JSON(res)
}

func (c *assistantController) GetHistory(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.assistantService.GetHistory(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.AssistantErrorResponse{Error: err.Error()})
	}

	return ctx.JSON(res)
}
