package controller

import (
	"estate-listing-be/internal/dto"
	"estate-listing-be/internal/pkg/serverutils"
	"estate-listing-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IListingController interface {
	RegisterRoutes(r fiber.Router)
	Browse(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type listingController struct {
	listingService service.IListingService
}

func NewListingController(listingService service.IListingService) IListingController {
	return &listingController{
		listingService: listingService,
	}
}

// Browsing is public; no token required.
func (c *listingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/listing/v1")
	h.Get("", c.Browse)
	h.Get(":id", c.Show)
}

func (c *listingController) Browse(ctx *fiber.Ctx) error {
	var req dto.BrowseListingsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.listingService.Browse(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success browse listings", res))
}

func (c *listingController) Show(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.listingService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show listing", res))
}
