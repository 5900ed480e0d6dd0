package controller

import (
	"babybook-be/internal/dto"
	"babybook-be/internal/pkg/serverutils"
	"babybook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	UpdateFamilyName(ctx *fiber.Ctx) error
	UpdateChild(ctx *fiber.Ctx) error
	UpdateCover(ctx *fiber.Ctx) error
	UpdateTheme(ctx *fiber.Ctx) error
}

type settingsController struct {
	service service.ISettingsService
}

func NewSettingsController(service service.ISettingsService) ISettingsController {
	return &settingsController{service: service}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/settings/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Get)
	h.Put("family-name", c.UpdateFamilyName)
	h.Put("child", c.UpdateChild)
	h.Put("cover", c.UpdateCover)
	h.Put("theme", c.UpdateTheme)
}

func (c *settingsController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.GetSettings(ctx.Context(), callerID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get settings", res))
}

func (c *settingsController) UpdateFamilyName(ctx *fiber.Ctx) error {
	var req dto.UpdateFamilyNameRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateFamilyName(ctx.Context(), callerID(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update family name", nil))
}

func (c *settingsController) UpdateChild(ctx *fiber.Ctx) error {
	var req dto.UpdateChildRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateChild(ctx.Context(), callerID(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update child", nil))
}

func (c *settingsController) UpdateCover(ctx *fiber.Ctx) error {
	var req dto.UpdateCoverRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateCover(ctx.Context(), callerID(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update cover", nil))
}

func (c *settingsController) UpdateTheme(ctx *fiber.Ctx) error {
	var req dto.UpdateThemeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateTheme(ctx.Context(), callerID(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update theme", nil))
}
