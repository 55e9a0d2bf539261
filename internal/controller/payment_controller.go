package controller

import (
	"estate-listing-be/internal/dto"
	"estate-listing-be/internal/pkg/serverutils"
	"estate-listing-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	CreateIntent(ctx *fiber.Ctx) error
	CreateCheckout(ctx *fiber.Ctx) error
	GetInstructions(ctx *fiber.Ctx) error
	SelfReport(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type paymentController struct {
	paymentService service.IPaymentService
}

func NewPaymentController(paymentService service.IPaymentService) IPaymentController {
	return &paymentController{
		paymentService: paymentService,
	}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment/v1")

	// The webhook authenticates with the processor signature, not a JWT.
	h.Post("webhook", c.Webhook)

	authed := h.Group("")
	authed.Use(serverutils.JwtMiddleware)
	authed.Post("intent", c.CreateIntent)
	authed.Post("checkout", c.CreateCheckout)
	authed.Get("instructions/:submissionId", c.GetInstructions)
	authed.Post("self-report/:submissionId", c.SelfReport)
}

func (c *paymentController) CreateIntent(ctx *fiber.Ctx) error {
	owner, err := serverutils.OwnerFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateIntentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.CreateIntent(ctx.Context(), owner, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create payment intent", res))
}

func (c *paymentController) CreateCheckout(ctx *fiber.Ctx) error {
	owner, err := serverutils.OwnerFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateCheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.CreateCheckout(ctx.Context(), owner, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create checkout session", res))
}

func (c *paymentController) GetInstructions(ctx *fiber.Ctx) error {
	owner, err := serverutils.OwnerFromCtx(ctx)
	if err != nil {
		return err
	}

	submissionId, _ := uuid.Parse(ctx.Params("submissionId"))

	res, err := c.paymentService.GetInstructions(ctx.Context(), owner, submissionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get payment instructions", res))
}

func (c *paymentController) SelfReport(ctx *fiber.Ctx) error {
	owner, err := serverutils.OwnerFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.SelfReportPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SubmissionId, _ = uuid.Parse(ctx.Params("submissionId"))

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.paymentService.SelfReport(ctx.Context(), owner, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Payment report received", nil))
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	signature := ctx.Get("Stripe-Signature")

	if err := c.paymentService.HandleWebhook(ctx.Context(), ctx.Body(), signature); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Webhook processed", nil))
}
