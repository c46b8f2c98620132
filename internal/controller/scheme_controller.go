package controller

import (
	"schemekhoj-be/internal/dto"
	"schemekhoj-be/internal/pkg/serverutils"
	"schemekhoj-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISchemeController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
}

type schemeController struct {
	schemeService service.ISchemeService
}

func NewSchemeController(schemeService service.ISchemeService) ISchemeController {
	return &schemeController{
		schemeService: schemeService,
	}
}

func (c *schemeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/scheme/v1")
	h.Post("", c.Create)
	h.Get("", c.Index)
}

func (c *schemeController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSchemeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.schemeService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create scheme", res))
}

func (c *schemeController) Index(ctx *fiber.Ctx) error {
	res, err := c.schemeService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get schemes", res))
}
