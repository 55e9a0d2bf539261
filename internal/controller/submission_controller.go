package controller

import (
	"estate-listing-be/internal/dto"
	"estate-listing-be/internal/pkg/serverutils"
	"estate-listing-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISubmissionController interface {
	RegisterRoutes(r fiber.Router)
	Quote(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	GetMine(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type submissionController struct {
	submissionService service.ISubmissionService
}

func NewSubmissionController(submissionService service.ISubmissionService) ISubmissionController {
	return &submissionController{
		submissionService: submissionService,
	}
}

func (c *submissionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/submission/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("quote", c.Quote)
	h.Post("", c.Create)
	h.Get("", c.GetMine)
	h.Get(":id", c.Show)
}

func (c *submissionController) Quote(ctx *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.submissionService.Quote(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success quote commission", res))
}

func (c *submissionController) Create(ctx *fiber.Ctx) error {
	owner, err := serverutils.OwnerFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateSubmissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.submissionService.Create(ctx.Context(), owner, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create submission", res))
}

func (c *submissionController) GetMine(ctx *fiber.Ctx) error {
	owner, err := serverutils.OwnerFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.submissionService.GetMine(ctx.Context(), owner)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list submissions", res))
}

func (c *submissionController) Show(ctx *fiber.Ctx) error {
	owner, err := serverutils.OwnerFromCtx(ctx)
	if err != nil {
		return err
	}

	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.submissionService.Show(ctx.Context(), owner, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show submission", res))
}
