// file: internals/features/enrollment/payments/controller/payment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"helpdesku_backend/internals/configs"
	enrollmentService "helpdesku_backend/internals/features/enrollment/enrollments/service"
	dto "helpdesku_backend/internals/features/enrollment/payments/dto"
	model "helpdesku_backend/internals/features/enrollment/payments/model"
	service "helpdesku_backend/internals/features/enrollment/payments/service"
	helper "helpdesku_backend/internals/helpers"
)

type PaymentController struct {
	DB          *gorm.DB
	Service     *service.PaymentService
	Enrollments *enrollmentService.EnrollmentService
	Validator   *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:          db,
		Service:     service.NewPaymentService(db),
		Enrollments: enrollmentService.NewEnrollmentService(db),
		Validator:   validator.New(),
	}
}

/* =======================================================================
   Handlers
======================================================================= */

// POST /api/payments — provider notification (public, signature checked).
// Responds with plaintext like the legacy endpoint: payment providers only
// look at the status code and body string.
func (ctl *PaymentController) Notification(c *fiber.Ctx) error {
	var req dto.PaymentNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid payload: " + err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid payload")
	}
	// validator/v10 cannot range-check decimal.Decimal, so amounts are
	// checked here.
	if req.GrossAmount.IsNegative() || req.NetAmount.IsNegative() || req.FeeAmount.IsNegative() {
		return c.Status(fiber.StatusBadRequest).SendString("amounts must not be negative")
	}
	if req.NetAmount.GreaterThan(req.GrossAmount) {
		return c.Status(fiber.StatusBadRequest).SendString("net amount exceeds gross amount")
	}

	// Midtrans notifications carry a sha512 signature we can verify.
	if req.ServiceProvider == model.PaymentProviderMidtrans && configs.MidtransServerKey != "" {
		ok := service.VerifyNotificationSignature(
			req.EnrollmentID.String(),
			req.PaymentStatus,
			req.GrossAmount.StringFixed(2),
			configs.MidtransServerKey,
			req.Signature,
		)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).SendString("invalid signature")
		}
	}

	if _, err := ctl.Service.RecordPayment(c.Context(), req.ToModel()); err != nil {
		switch {
		case errors.Is(err, service.ErrEnrollmentNotFound):
			return c.Status(fiber.StatusNotFound).SendString("Enrollment not found.")
		case errors.Is(err, service.ErrAlreadyPaid):
			return c.Status(fiber.StatusBadRequest).SendString("Enrollment already paid.")
		default:
			return c.Status(fiber.StatusInternalServerError).
				SendString("Transaction aborted. Error occurred: " + err.Error())
		}
	}

	return c.SendString("Transaction Successful")
}

// POST /api/payments/checkout — hosted checkout for an unpaid enrollment.
func (ctl *PaymentController) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	enrollment, err := ctl.Enrollments.Lookup(c.Context(), req.EnrollmentID, req.CustomerID)
	if err != nil {
		if errors.Is(err, enrollmentService.ErrEnrollmentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load enrollment")
	}
	if enrollment.EnrollmentPaid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Enrollment already paid.")
	}

	token, redirectURL, err := service.GenerateSnapToken(enrollment, req.CustomerEmail)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "gateway error: "+err.Error())
	}

	return helper.JsonOK(c, "Checkout created", dto.CheckoutResponse{
		Token:       token,
		RedirectURL: redirectURL,
	})
}

// GET /api/payments
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	var payments []model.PaymentModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("payment_product_invoice DESC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list payments")
	}
	return helper.JsonOK(c, "", payments)
}

// GET /api/payments/:id
func (ctl *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var payment model.PaymentModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The payment with the given ID was not found.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load payment")
	}
	return helper.JsonOK(c, "", payment)
}

// GET /api/payments/enrollment/:enrollmentId
func (ctl *PaymentController) GetByEnrollment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("enrollmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}
	payment, err := ctl.Service.FindByEnrollment(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The payment with the enrollment ID was not found.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load payment")
	}
	return helper.JsonOK(c, "", payment)
}
