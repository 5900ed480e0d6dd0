package controller

import (
	"babybook-be/internal/dto"
	"babybook-be/internal/pkg/serverutils"
	"babybook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMemberController interface {
	RegisterRoutes(r fiber.Router)
	Invite(ctx *fiber.Ctx) error
	AcceptInvite(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type memberController struct {
	service service.IMemberService
}

func NewMemberController(service service.IMemberService) IMemberController {
	return &memberController{service: service}
}

func (c *memberController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/member/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("invite", c.Invite)
	h.Post("invite/accept", c.AcceptInvite)
}

func (c *memberController) Invite(ctx *fiber.Ctx) error {
	var req dto.InviteMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.InviteMember(ctx.Context(), callerID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success invite member", res))
}

func (c *memberController) AcceptInvite(ctx *fiber.Ctx) error {
	var req dto.AcceptInviteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.AcceptInvite(ctx.Context(), callerID(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success accept invite", nil))
}

func (c *memberController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetMembers(ctx.Context(), callerID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get members", res))
}
