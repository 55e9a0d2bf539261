package controller

import (
	"estate-listing-be/internal/dto"
	"estate-listing-be/internal/pkg/serverutils"
	"estate-listing-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)

	h.Get("submissions", c.ListSubmissions)
	h.Get("submissions/:id", c.ShowSubmission)
	h.Post("submissions/:id/approve", c.ApproveSubmission)
	h.Post("submissions/:id/reject", c.RejectSubmission)
	h.Post("submissions/:id/mark-paid", c.MarkPaid)

	h.Post("listings", c.CreateListing)
	h.Put("listings/:id", c.UpdateListing)
	h.Delete("listings/:id", c.DeleteListing)

	h.Get("settings/commission", c.ListCommissionSettings)
	h.Put("settings/commission", c.SaveCommissionSetting)
	h.Get("settings/payment", c.ListPaymentSettings)
	h.Put("settings/payment", c.SavePaymentSetting)

	h.Get("payments", c.ListPaymentRecords)
	h.Get("dashboard", c.DashboardStats)
	h.Post("sweep", c.RunSweep)

	h.Get("logs", c.ListSystemLogs)
	h.Get("logs/:id", c.ShowSystemLog)
}

func (c *adminController) ListSubmissions(ctx *fiber.Ctx) error {
	if _, err := serverutils.AdminActorFromCtx(ctx); err != nil {
		return err
	}

	var req dto.ListSubmissionsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.ListSubmissions(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list submissions", res))
}

func (c *adminController) ShowSubmission(ctx *fiber.Ctx) error {
	if _, err := serverutils.AdminActorFromCtx(ctx); err != nil {
		return err
	}

	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.adminService.ShowSubmission(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show submission", res))
}

func (c *adminController) ApproveSubmission(ctx *fiber.Ctx) error {
	actor, err := serverutils.AdminActorFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.ApproveSubmissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id, _ = uuid.Parse(ctx.Params("id"))

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.ApproveSubmission(ctx.Context(), actor, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success approve submission", res))
}

func (c *adminController) RejectSubmission(ctx *fiber.Ctx) error {
	actor, err := serverutils.AdminActorFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.RejectSubmissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id, _ = uuid.Parse(ctx.Params("id"))

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.RejectSubmission(ctx.Context(), actor, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success reject submission", nil))
}

func (c *adminController) MarkPaid(ctx *fiber.Ctx) error {
	actor, err := serverutils.AdminActorFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.MarkPaidRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id, _ = uuid.Parse(ctx.Params("id"))

	if err := c.adminService.MarkPaid(ctx.Context(), actor, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success mark submission paid", nil))
}

func (c *adminController) CreateListing(ctx *fiber.Ctx) error {
	if _, err := serverutils.AdminActorFromCtx(ctx); err != nil {
		return err
	}

	var req dto.CreateListingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.CreateListing(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create listing", res))
}

func (c *adminController) UpdateListing(ctx *fiber.Ctx) error {
	if _, err := serverutils.AdminActorFromCtx(ctx); err != nil {
		return err
	}

	var req dto.UpdateListingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id, _ = uuid.Parse(ctx.Params("id"))

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.UpdateListing(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update listing", nil))
}

func (c *adminController) DeleteListing(ctx *fiber.Ctx) error {
	actor, err := serverutils.AdminActorFromCtx(ctx)
	if err != nil {
		return err
	}

	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.adminService.DeleteListing(ctx.Context(), actor, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete listing", nil))
}

func (c *adminController) ListCommissionSettings(ctx *fiber.Ctx) error {
	if _, err := serverutils.AdminActorFromCtx(ctx); err != nil {
		return err
	}

	res, err := c.adminService.ListCommissionSettings(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list commission settings", res))
}

func (c *adminController) SaveCommissionSetting(ctx *fiber.Ctx) error {
	if _, err := serverutils.AdminActorFromCtx(ctx); err != nil {
		return err
	}

	var req dto.CommissionSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.SaveCommissionSetting(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save commission setting", res))
}

func (c *adminController) ListPaymentSettings(ctx *fiber.Ctx) error {
	if _, err := serverutils.AdminActorFromCtx(ctx); err != nil {
		return err
	}

	res, err := c.adminService.ListPaymentSettings(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list payment settings", res))
}

func (c *adminController) SavePaymentSetting(ctx *fiber.Ctx) error {
	if _, err := serverutils.AdminActorFromCtx(ctx); err != nil {
		return err
	}

	var req dto.PaymentSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.SavePaymentSetting(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save payment setting", res))
}

func (c *adminController) ListPaymentRecords(ctx *fiber.Ctx) error {
	if _, err := serverutils.AdminActorFromCtx(ctx); err != nil {
		return err
	}

	var submissionId *uuid.UUID
	if raw := ctx.Query("submission_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err == nil {
			submissionId = &id
		}
	}

	res, err := c.adminService.ListPaymentRecords(ctx.Context(), submissionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list payment records", res))
}

func (c *adminController) DashboardStats(ctx *fiber.Ctx) error {
	if _, err := serverutils.AdminActorFromCtx(ctx); err != nil {
		return err
	}

	res, err := c.adminService.DashboardStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}

func (c *adminController) ListSystemLogs(ctx *fiber.Ctx) error {
	if _, err := serverutils.AdminActorFromCtx(ctx); err != nil {
		return err
	}

	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	level := ctx.Query("level", "")

	res, err := c.adminService.ListSystemLogs(page, limit, level)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list system logs", res))
}

func (c *adminController) ShowSystemLog(ctx *fiber.Ctx) error {
	if _, err := serverutils.AdminActorFromCtx(ctx); err != nil {
		return err
	}

	// Log ids are content hashes, not UUIDs.
	res, err := c.adminService.ShowSystemLog(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show system log", res))
}

func (c *adminController) RunSweep(ctx *fiber.Ctx) error {
	if _, err := serverutils.AdminActorFromCtx(ctx); err != nil {
		return err
	}

	res, err := c.adminService.RunSweep(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success run sweep", res))
}
