package controller

import (
	"babybook-be/internal/dto"
	"babybook-be/internal/pkg/serverutils"
	"babybook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOnboardingController interface {
	RegisterRoutes(r fiber.Router)
	Complete(ctx *fiber.Ctx) error
}

type onboardingController struct {
	service service.IOnboardingService
}

func NewOnboardingController(service service.IOnboardingService) IOnboardingController {
	return &onboardingController{service: service}
}

func (c *onboardingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/onboarding/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("complete", c.Complete)
}

func (c *onboardingController) Complete(ctx *fiber.Ctx) error {
	var req dto.CompleteOnboardingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CompleteOnboarding(ctx.Context(), callerID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success complete onboarding", res))
}
