package controller

import (
	"vilaw-chatbot-be/internal/dto"
	"vilaw-chatbot-be/internal/pkg/apperr"
	"vilaw-chatbot-be/internal/pkg/serverutils"
	"vilaw-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Ping(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	r.Get("/ping", c.Ping)
	r.Post("/chat", c.Chat)
}

// Ping is the liveness probe; no side effects.
func (c *chatbotController) Ping(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.PingResponse{
		Status:  "ok",
		Message: "ViLawAI Chatbot is running",
	})
}

func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.chatbotService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
