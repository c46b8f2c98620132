package controller

import (
	"schemekhoj-be/internal/dto"
	"schemekhoj-be/internal/pkg/serverutils"
	"schemekhoj-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
	GetTranscript(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type agentController struct {
	agentService service.IAgentService
}

func NewAgentController(agentService service.IAgentService) IAgentController {
	return &agentController{
		agentService: agentService,
	}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent/v1")
	h.Post("session", c.CreateSession)
	h.Post("chat", c.Chat)
	h.Get("session/:id/transcript", c.GetTranscript)
	h.Delete("session/:id", c.DeleteSession)
}

func (c *agentController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.agentService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *agentController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.agentService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}

func (c *agentController) GetTranscript(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.BadRequestError("Invalid session id")
	}

	res, err := c.agentService.GetTranscript(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get transcript", res))
}

func (c *agentController) DeleteSession(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.BadRequestError("Invalid session id")
	}

	err = c.agentService.DeleteSession(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete session", nil))
}
