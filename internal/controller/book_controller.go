package controller

import (
	"babybook-be/internal/pkg/serverutils"
	"babybook-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBookController interface {
	RegisterRoutes(r fiber.Router)
	GetBook(ctx *fiber.Ctx) error
	GetPage(ctx *fiber.Ctx) error
}

type bookController struct {
	service service.IBookService
}

func NewBookController(service service.IBookService) IBookController {
	return &bookController{service: service}
}

func (c *bookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/book/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetBook)
	h.Get("page/:id", c.GetPage)
}

func (c *bookController) GetBook(ctx *fiber.Ctx) error {
	res, err := c.service.GetBook(ctx.Context(), callerID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get book", res))
}

func (c *bookController) GetPage(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.GetPage(ctx.Context(), callerID(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get page", res))
}
