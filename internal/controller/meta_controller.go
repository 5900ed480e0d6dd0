package controller

import (
	"babybook-be/internal/constant"
	"babybook-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// metaController serves the static catalogs the page editor needs:
// themes, milestone types, and page templates.
type IMetaController interface {
	RegisterRoutes(r fiber.Router)
	GetThemes(ctx *fiber.Ctx) error
	GetMilestoneTypes(ctx *fiber.Ctx) error
	GetPageTemplates(ctx *fiber.Ctx) error
}

type metaController struct{}

func NewMetaController() IMetaController {
	return &metaController{}
}

func (c *metaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/meta/v1")
	h.Get("themes", c.GetThemes)
	h.Get("milestone-types", c.GetMilestoneTypes)
	h.Get("page-templates", c.GetPageTemplates)
}

func (c *metaController) GetThemes(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get themes", constant.Themes))
}

func (c *metaController) GetMilestoneTypes(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get milestone types", constant.MilestoneTypes))
}

func (c *metaController) GetPageTemplates(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get page templates", constant.PageTemplates))
}
